package analytics

import (
	"strings"
	"testing"

	"github.com/aarondl/opt/omit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_EndToEnd(t *testing.T) {
	snapshot := []Transaction{
		txn("10", daysAgo(1), "Grocer", "food"),
		txn("20", daysAgo(5), "Bistro", "food"),
		txn("5", daysAgo(40), "Metro", "transport"),
	}
	window := NewResolver(fixedClock).Resolve(RangeLastWeek)

	report := Summarize(snapshot, window, RangeLastWeek, "food")

	assert.True(t, dec("30").Equal(report.Total))
	assert.Equal(t, 2, report.Count)

	lines := report.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Food", lines[0].Label)

	text := report.Render()
	assert.Contains(t, text, "• Food: $30.00 (100%)\n")
	assert.Equal(t, 1, strings.Count(text, "• "))
	assert.Contains(t, text, "📊 Spending Summary (Last Week)\n")
	assert.Contains(t, text, "Period: 2026-10-12 to 2026-10-19\n")
	assert.Contains(t, text, "Category Filter: food\n")
	assert.Contains(t, text, "💰 Total Spending: $30.00\n")
	assert.Contains(t, text, "📈 Transaction Count: 2\n")
}

func TestSummaryReport_RenderAllCategoriesInInsertionOrder(t *testing.T) {
	snapshot := []Transaction{
		txn("1.999", daysAgo(1), "Metro", "TRANSPORTATION"),
		txn("8", daysAgo(2), "Grocer", "FOOD_AND_DRINK"),
		{Amount: omit.From(dec("0.001")), AuthorizedDate: omit.From(daysAgo(2))},
	}
	window := NewResolver(fixedClock).Resolve("unknown")

	text := Summarize(snapshot, window, "unknown", "").Render()

	assert.Contains(t, text, "All Categories\n")
	transport := strings.Index(text, "• Transportation: $1.99 (19%)")
	food := strings.Index(text, "• Food And Drink: $8.00 (80%)")
	uncategorized := strings.Index(text, "• Uncategorized: $0.00 (0%)")
	assert.True(t, transport >= 0 && food > transport && uncategorized > food, text)
}

func TestSummaryReport_RenderEmpty(t *testing.T) {
	window := NewResolver(fixedClock).Resolve(RangeToday)

	text := Summarize(nil, window, RangeToday, "").Render()

	assert.Contains(t, text, "💰 Total Spending: $0.00\n")
	assert.Contains(t, text, "• None\n")
}

func TestRenderSearch(t *testing.T) {
	hits := []SearchHit{
		{MerchantName: "Blue Bottle Coffee", Date: daysAgo(2), Amount: dec("4.33"), Category: "FOOD_AND_DRINK"},
		{MerchantName: "Metro", Date: daysAgo(3), Amount: dec("2.75"), Category: "TRANSPORTATION"},
	}

	text := RenderSearch(hits)

	assert.Contains(t, text, "0. Blue Bottle Coffee\n")
	assert.Contains(t, text, "Date: 2026-10-17\n")
	assert.Contains(t, text, "Amount: -$4.33\n")
	assert.Contains(t, text, "Category: Food And Drink\n")
	assert.Contains(t, text, "1. Metro\n")
	assert.Contains(t, RenderSearch(nil), "No matching transactions.")
}

func TestRenderBalances_SkipsIncompleteAccounts(t *testing.T) {
	accounts := []Account{
		{
			Name:      omit.From("Plaid Checking"),
			Mask:      omit.From("0000"),
			Available: omit.From(dec("100")),
			Current:   omit.From(dec("110")),
		},
		{
			Name:    omit.From("Plaid Credit Card"),
			Mask:    omit.From("3333"),
			Current: omit.From(dec("410")),
		},
		{
			Name:      omit.From("Plaid Saving"),
			Available: omit.From(dec("200")),
			Current:   omit.From(dec("210")),
		},
	}

	text := RenderBalances(accounts)

	assert.Contains(t, text, "Plaid Checking (****0000)\n• Available: $100\n• Current: $110\n")
	assert.NotContains(t, text, "Plaid Credit Card")
	assert.NotContains(t, text, "Plaid Saving")
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Food And Drink", Label("FOOD_AND_DRINK"))
	assert.Equal(t, "Last Week", Label("last_week"))
	assert.Equal(t, "Today", Label("today"))
}

func TestOptionalHelpers(t *testing.T) {
	empty := ""
	name := "Cafe"
	badDate := "18/10/2026"
	goodDate := "2026-10-18"
	amount := 12.5

	assert.True(t, OptionalString(nil).IsUnset())
	assert.True(t, OptionalString(&empty).IsUnset())
	assert.Equal(t, "Cafe", OptionalString(&name).MustGet())

	assert.True(t, OptionalDate(&badDate).IsUnset())
	assert.Equal(t, daysAgo(1), OptionalDate(&goodDate).MustGet())

	assert.True(t, OptionalAmount(nil).IsUnset())
	assert.True(t, dec("12.5").Equal(OptionalAmount(&amount).MustGet()))
}
