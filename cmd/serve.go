package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/carson-networks/finance-inspector/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the hosted link webhook",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(os.Stdout)
		if err != nil {
			return err
		}
		defer a.Close()

		a.logger.WithField("version", version).Info("finance-inspector starting")

		rest := api.Rest{
			Logger:         a.logger,
			Port:           a.env.Port,
			Service:        a.svc,
			AllowedOrigins: a.env.AllowedOrigins,
			JWTSecret:      a.env.JWTSecret,
		}
		return rest.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
