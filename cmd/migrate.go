package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carson-networks/finance-inspector/internal/storage"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the access token schema for the postgres or sqlite backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadConfig()
		if err != nil {
			return err
		}

		result, ok, err := storage.RunMigrations(env)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "Token backend %q has no schema\n", env.TokenBackend)
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Pre-migration version: %d\n", result.PreMigrationVersion)
		fmt.Fprintf(cmd.OutOrStdout(), "Post-migration version: %d\n", result.PostMigrationVersion)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
