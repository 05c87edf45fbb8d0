package analytics

import (
	"testing"

	"github.com/aarondl/opt/omit"
	"github.com/stretchr/testify/assert"
)

func TestFilterWindow_MembershipAndTotal(t *testing.T) {
	window := NewResolver(fixedClock).Resolve(RangeLastWeek)

	snapshot := []Transaction{
		txn("10", daysAgo(1), "Blue Bottle Coffee", "FOOD_AND_DRINK"),
		txn("-20.50", daysAgo(7), "Payroll", "INCOME"),
		txn("5", daysAgo(8), "Metro", "TRANSPORTATION"),
		txn("3", daysAgo(0), "Kiosk", "GENERAL_MERCHANDISE"),
		{Amount: omit.From(dec("99")), MerchantName: omit.From("No Date")},
	}

	result := FilterWindow(snapshot, window)

	assert.Equal(t, 2, result.Count)
	assert.Len(t, result.Included, 2)
	assert.True(t, dec("30.50").Equal(result.Total), "absolute amounts, got %s", result.Total)
	assert.Equal(t, "Blue Bottle Coffee", result.Included[0].MerchantName.MustGet())
	assert.Equal(t, "Payroll", result.Included[1].MerchantName.MustGet())
}

func TestFilterWindow_MembershipProperty(t *testing.T) {
	window := NewResolver(fixedClock).Resolve(RangeLastMonth)

	var snapshot []Transaction
	for i := 0; i < 45; i++ {
		snapshot = append(snapshot, txn("1", daysAgo(i), "m", "c"))
	}
	snapshot = append(snapshot, Transaction{Amount: omit.From(dec("1"))})

	result := FilterWindow(snapshot, window)

	included := make(map[int]bool)
	for _, t := range result.Included {
		included[int(fixedNow.Sub(t.AuthorizedDate.MustGet()).Hours()/24)] = true
	}
	for i := 0; i < 45; i++ {
		want := i >= 1 && i <= 30
		assert.Equal(t, want, included[i], "day -%d", i)
	}
	assert.Equal(t, 30, result.Count)
}

func TestFilterWindow_Empty(t *testing.T) {
	result := FilterWindow(nil, NewResolver(fixedClock).Resolve(RangeToday))

	assert.Equal(t, 0, result.Count)
	assert.Empty(t, result.Included)
	assert.True(t, result.Total.IsZero())
}

func TestFilterWindow_MissingAmountCountsAsZero(t *testing.T) {
	window := NewResolver(fixedClock).Resolve(RangeLastWeek)
	snapshot := []Transaction{
		{AuthorizedDate: omit.From(daysAgo(2)), Category: omit.From("FOOD")},
	}

	result := FilterWindow(snapshot, window)

	assert.Equal(t, 1, result.Count)
	assert.True(t, result.Total.IsZero())
}
