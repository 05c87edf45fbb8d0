package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carson-networks/finance-inspector/internal/analytics"
)

var (
	summaryRange    string
	summaryCategory string
	searchTerm      string
	searchLimit     int
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print a spending summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(os.Stderr)
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Fprintln(cmd.OutOrStdout(), a.svc.Spending.GetSpendingSummary(cmd.Context(), summaryRange, summaryCategory))
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search transactions by merchant name or category",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(os.Stderr)
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Fprintln(cmd.OutOrStdout(), a.svc.Spending.SearchTransactions(cmd.Context(), searchTerm, searchLimit))
		return nil
	},
}

var balancesCmd = &cobra.Command{
	Use:   "balances",
	Short: "Print account balances",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(os.Stderr)
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Fprintln(cmd.OutOrStdout(), a.svc.Spending.GetAccountBalance(cmd.Context()))
		return nil
	},
}

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Create a hosted link for connecting a bank account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(os.Stderr)
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Fprintln(cmd.OutOrStdout(), a.svc.Link.CreateHostedLink(cmd.Context()))
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVar(&summaryRange, "range", analytics.RangeLastMonth, "today, yesterday, last_week or last_month; anything else covers 90 days")
	summaryCmd.Flags().StringVar(&summaryCategory, "category", "", "Only count categories containing this text")

	searchCmd.Flags().StringVar(&searchTerm, "term", "", "Text to find in merchant names and categories")
	searchCmd.Flags().IntVar(&searchLimit, "limit", analytics.DefaultSearchLimit, "Maximum number of results")
	_ = searchCmd.MarkFlagRequired("term")

	rootCmd.AddCommand(summaryCmd, searchCmd, balancesCmd, linkCmd)
}
