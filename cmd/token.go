package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carson-networks/finance-inspector/internal/operator/actions"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the stored access token",
}

var tokenSetCmd = &cobra.Command{
	Use:   "set <access-token>",
	Short: "Store an access token obtained elsewhere",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(os.Stderr)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.credentials.Process(cmd.Context(), &actions.SetAccessToken{AccessToken: args[0]}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Stored access token in the %s backend\n", a.env.TokenBackend)
		return nil
	},
}

var tokenExchangeCmd = &cobra.Command{
	Use:   "exchange <public-token>",
	Short: "Exchange a public token and store the resulting access token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(os.Stderr)
		if err != nil {
			return err
		}
		defer a.Close()

		if a.plaid == nil {
			return errors.New("PLAID_CLIENT_ID and PLAID_SECRET are required to exchange a public token")
		}

		action := &actions.StoreAccessToken{PublicToken: args[0], Exchanger: a.plaid}
		if err := a.credentials.Process(cmd.Context(), action); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Stored access token in the %s backend\n", a.env.TokenBackend)
		return nil
	},
}

func init() {
	tokenCmd.AddCommand(tokenSetCmd, tokenExchangeCmd)
	rootCmd.AddCommand(tokenCmd)
}
