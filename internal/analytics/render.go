package analytics

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SummaryReport holds everything needed to render a spending summary.
type SummaryReport struct {
	RangeToken string
	Window     TimeWindow
	Category   string
	Total      decimal.Decimal
	Count      int
	Totals     *CategoryTotals
}

// Summarize runs the filter and aggregation pipeline over one snapshot.
func Summarize(snapshot []Transaction, window TimeWindow, rangeToken, category string) SummaryReport {
	filtered := FilterWindow(snapshot, window)

	return SummaryReport{
		RangeToken: rangeToken,
		Window:     window,
		Category:   category,
		Total:      filtered.Total,
		Count:      filtered.Count,
		Totals:     Aggregate(filtered.Included, category),
	}
}

// CategoryLine is one rendered row of a summary.
type CategoryLine struct {
	Label   string
	Amount  decimal.Decimal
	Percent decimal.Decimal
}

// Lines returns one line per category in first-seen order.
func (r SummaryReport) Lines() []CategoryLine {
	if r.Totals == nil {
		return nil
	}

	lines := make([]CategoryLine, 0, r.Totals.Len())
	for _, label := range r.Totals.Labels() {
		amount := r.Totals.Amount(label)
		lines = append(lines, CategoryLine{
			Label:   Label(label),
			Amount:  Truncate(amount),
			Percent: Percentage(amount, r.Total),
		})
	}
	return lines
}

// FilterLabel describes the active category filter.
func (r SummaryReport) FilterLabel() string {
	if r.Category == "" {
		return "All Categories"
	}
	return "Category Filter: " + r.Category
}

func (r SummaryReport) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 Spending Summary (%s)\n", Label(r.RangeToken))
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	fmt.Fprintf(&b, "Period: %s to %s\n",
		r.Window.Start.Format(DateLayout), r.Window.End.Format(DateLayout))
	b.WriteString(r.FilterLabel() + "\n\n")
	fmt.Fprintf(&b, "💰 Total Spending: $%s\n", FormatMoney(r.Total))
	fmt.Fprintf(&b, "📈 Transaction Count: %d\n\n", r.Count)
	b.WriteString("Top Categories:\n")

	lines := r.Lines()
	if len(lines) == 0 {
		b.WriteString("• None\n")
	}
	for _, line := range lines {
		fmt.Fprintf(&b, "• %s: $%s (%s%%)\n", line.Label, line.Amount.StringFixed(2), line.Percent.String())
	}

	return b.String()
}

// RenderSearch formats search hits, numbered from zero.
func RenderSearch(hits []SearchHit) string {
	var b strings.Builder

	b.WriteString("🔍 Transaction Search Results\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	if len(hits) == 0 {
		b.WriteString("No matching transactions.\n")
	}
	for i, hit := range hits {
		fmt.Fprintf(&b, "%d. %s\n", i, hit.MerchantName)
		fmt.Fprintf(&b, "     Date: %s\n", hit.Date.Format(DateLayout))
		fmt.Fprintf(&b, "     Amount: -$%s\n", hit.Amount.String())
		fmt.Fprintf(&b, "     Category: %s\n\n", Label(hit.Category))
	}

	return b.String()
}

// RenderBalances lists accounts that report a name, mask and both balances.
func RenderBalances(accounts []Account) string {
	var b strings.Builder

	b.WriteString("🏦 Account Balances\n")
	b.WriteString(strings.Repeat("=", 30) + "\n\n")

	for _, account := range accounts {
		name, ok := presentString(account.Name)
		if !ok {
			continue
		}
		mask, ok := presentString(account.Mask)
		if !ok {
			continue
		}
		available, ok := account.Available.Get()
		if !ok {
			continue
		}
		current, ok := account.Current.Get()
		if !ok {
			continue
		}

		fmt.Fprintf(&b, "%s (****%s)\n", name, mask)
		fmt.Fprintf(&b, "• Available: $%s\n", available.String())
		fmt.Fprintf(&b, "• Current: $%s\n\n", current.String())
	}

	return b.String()
}

// Label turns provider tokens like FOOD_AND_DRINK into "Food And Drink".
func Label(s string) string {
	// Casers keep state between calls and cannot be shared across goroutines.
	return cases.Title(language.Und).String(strings.ReplaceAll(s, "_", " "))
}
