package analytics

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

func daysAgo(n int) time.Time {
	return dateOf(fixedNow.AddDate(0, 0, -n))
}

// txn builds a transaction with every field present.
func txn(amount string, date time.Time, merchant, category string) Transaction {
	return Transaction{
		Amount:         omit.From(decimal.RequireFromString(amount)),
		AuthorizedDate: omit.From(date),
		MerchantName:   omit.From(merchant),
		Category:       omit.From(category),
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
