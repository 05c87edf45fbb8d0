package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/carson-networks/finance-inspector/internal/toolserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the report tools over MCP stdio",
	Long: `Serve get_spending_summary, get_account_balance, search_transactions and
get_hosted_link to an MCP client over stdin/stdout. Logs go to stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// stdout carries the protocol.
		a, err := newApp(os.Stderr)
		if err != nil {
			return err
		}
		defer a.Close()

		tools := toolserver.NewTools(a.svc.Spending, a.svc.Link, a.logger)
		return tools.Serve(cmd.Context(), tools.MCPServer(version), os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
