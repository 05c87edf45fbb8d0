// Package export writes spending summaries as XLSX workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/carson-networks/finance-inspector/internal/analytics"
)

const SheetName = "Summary"

// firstCategoryRow is the row of the first category line; rows above it hold the header block.
const firstCategoryRow = 8

// WriteSummary writes report to w as a single-sheet workbook. Category rows
// keep the report's first-seen order.
func WriteSummary(w io.Writer, report analytics.SummaryReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := [][]any{
		{"Spending Summary", analytics.Label(report.RangeToken)},
		{"Period Start", report.Window.Start.Format(analytics.DateLayout)},
		{"Period End", report.Window.End.Format(analytics.DateLayout)},
		{"Filter", report.FilterLabel()},
		{"Total Spending", analytics.Truncate(report.Total).InexactFloat64()},
		{"Transaction Count", report.Count},
		{"Category", "Amount", "Percent"},
	}
	for i, row := range header {
		if err := setRow(f, i+1, row); err != nil {
			return err
		}
	}

	for i, line := range report.Lines() {
		row := []any{line.Label, line.Amount.InexactFloat64(), line.Percent.IntPart()}
		if err := setRow(f, firstCategoryRow+i, row); err != nil {
			return err
		}
	}

	if err := styleSheet(f); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

func styleSheet(f *excelize.File) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "A7", bold); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "B7", "C7", bold); err != nil {
		return err
	}

	money, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "B5", "B5", money); err != nil {
		return err
	}

	return f.SetColWidth(SheetName, "A", "A", 24)
}
