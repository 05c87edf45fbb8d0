package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// envFile is loaded before the environment is read. Variables already set win.
var envFile string

var rootCmd = &cobra.Command{
	Use:   "finance-inspector",
	Short: "Spending reports over a linked bank account",
	Long: `finance-inspector summarizes, searches and exports transactions from a
Plaid-linked account. It runs as an HTTP server, as an MCP tool server over
stdio, or as one-shot commands.

Example Usage:
  finance-inspector serve
  finance-inspector mcp
  finance-inspector summary --range last_week --category food
  finance-inspector search --term coffee --limit 5`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute runs the CLI until completion or until SIGINT/SIGTERM.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to a dotenv file with PLAID_* and token settings")
}
