package analytics

import (
	"testing"

	"github.com/aarondl/opt/omit"
	"github.com/stretchr/testify/assert"
)

func TestAggregate_UnfilteredKeepsFirstSeenOrder(t *testing.T) {
	included := []Transaction{
		txn("4", daysAgo(1), "Metro", "TRANSPORTATION"),
		txn("-10", daysAgo(1), "Grocer", "FOOD_AND_DRINK"),
		txn("100", daysAgo(2), "Landlord", "RENT_AND_UTILITIES"),
		txn("2.5", daysAgo(3), "Cafe", "FOOD_AND_DRINK"),
		{Amount: omit.From(dec("1")), AuthorizedDate: omit.From(daysAgo(3))},
	}

	totals := Aggregate(included, "")

	assert.Equal(t, []string{"TRANSPORTATION", "FOOD_AND_DRINK", "RENT_AND_UTILITIES", Uncategorized}, totals.Labels())
	assert.True(t, dec("12.5").Equal(totals.Amount("FOOD_AND_DRINK")))
	assert.True(t, dec("1").Equal(totals.Amount(Uncategorized)))
}

func TestAggregate_UnfilteredSumMatchesFilterTotal(t *testing.T) {
	window := NewResolver(fixedClock).Resolve(RangeLastMonth)
	snapshot := []Transaction{
		txn("12.399", daysAgo(1), "A", "FOOD"),
		txn("-7.01", daysAgo(3), "B", "TRAVEL"),
		txn("0.333", daysAgo(9), "C", "FOOD"),
		txn("1000", daysAgo(60), "D", "RENT"),
		{Amount: omit.From(dec("5")), AuthorizedDate: omit.From(daysAgo(2))},
		{Amount: omit.From(dec("5")), Category: omit.From("FOOD")},
	}

	filtered := FilterWindow(snapshot, window)
	totals := Aggregate(filtered.Included, "")

	assert.True(t, filtered.Total.Equal(totals.Sum()), "sum %s != total %s", totals.Sum(), filtered.Total)
}

func TestAggregate_FilteredUsesFilterTermAsKey(t *testing.T) {
	included := []Transaction{
		txn("10", daysAgo(1), "Grocer", "FOOD_AND_DRINK"),
		txn("5", daysAgo(1), "Metro", "TRANSPORTATION"),
		txn("-20", daysAgo(2), "Bistro", "food"),
		{Amount: omit.From(dec("3")), AuthorizedDate: omit.From(daysAgo(2))},
	}

	totals := Aggregate(included, "Food")

	assert.Equal(t, []string{"Food"}, totals.Labels())
	assert.True(t, dec("30").Equal(totals.Amount("Food")))
}

func TestAggregate_FilteredNoMatches(t *testing.T) {
	included := []Transaction{
		txn("10", daysAgo(1), "Grocer", "FOOD_AND_DRINK"),
	}

	totals := Aggregate(included, "travel")

	assert.Equal(t, 0, totals.Len())
	assert.True(t, totals.Sum().IsZero())
}

func TestCategoryTotals_LabelsIsACopy(t *testing.T) {
	totals := NewCategoryTotals()
	totals.Add("A", dec("1"))

	labels := totals.Labels()
	labels[0] = "mutated"

	assert.Equal(t, []string{"A"}, totals.Labels())
}

func TestMatchesTerm(t *testing.T) {
	assert.True(t, MatchesTerm(omit.From("Blue Bottle Coffee"), "coffee"))
	assert.True(t, MatchesTerm(omit.From("FOOD_AND_DRINK"), "and_dr"))
	assert.False(t, MatchesTerm(omit.From("Metro"), "coffee"))
	assert.False(t, MatchesTerm(omit.Val[string]{}, "coffee"))
	assert.False(t, MatchesTerm(omit.From(""), ""))
}
