package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carson-networks/finance-inspector/internal/analytics"
	"github.com/carson-networks/finance-inspector/internal/export"
)

var (
	exportRange    string
	exportCategory string
	exportOut      string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a spending summary to an XLSX workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(os.Stderr)
		if err != nil {
			return err
		}
		defer a.Close()

		report, err := a.svc.Spending.BuildSummary(cmd.Context(), exportRange, exportCategory)
		if err != nil {
			return fmt.Errorf("build summary: %w", err)
		}

		out, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportOut, err)
		}
		if err := export.WriteSummary(out, report); err != nil {
			out.Close()
			return err
		}
		if err := out.Close(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d categories to %s\n", report.Totals.Len(), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportRange, "range", analytics.RangeLastMonth, "Time range token")
	exportCmd.Flags().StringVar(&exportCategory, "category", "", "Only count categories containing this text")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "summary.xlsx", "Output workbook path")

	rootCmd.AddCommand(exportCmd)
}
