package analytics

import (
	"strings"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used by the provider.
const DateLayout = "2006-01-02"

// Transaction is a provider record. Every field may be absent.
type Transaction struct {
	Amount         omit.Val[decimal.Decimal]
	AuthorizedDate omit.Val[time.Time]
	MerchantName   omit.Val[string]
	Category       omit.Val[string]
}

// Account is a provider account with its reported balances.
type Account struct {
	Name      omit.Val[string]
	Mask      omit.Val[string]
	Available omit.Val[decimal.Decimal]
	Current   omit.Val[decimal.Decimal]
}

// ParseDate parses a provider calendar date into midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
}

// OptionalString treats the empty string as absent.
func OptionalString(s *string) omit.Val[string] {
	if s == nil || *s == "" {
		return omit.Val[string]{}
	}
	return omit.From(*s)
}

// OptionalDate parses s, treating nil or unparseable input as absent.
func OptionalDate(s *string) omit.Val[time.Time] {
	if s == nil {
		return omit.Val[time.Time]{}
	}
	d, err := ParseDate(*s)
	if err != nil {
		return omit.Val[time.Time]{}
	}
	return omit.From(d)
}

// OptionalAmount converts a provider float amount.
func OptionalAmount(f *float64) omit.Val[decimal.Decimal] {
	if f == nil {
		return omit.Val[decimal.Decimal]{}
	}
	return omit.From(decimal.NewFromFloat(*f))
}

func presentString(v omit.Val[string]) (string, bool) {
	s, ok := v.Get()
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// dateOf drops the time of day, keeping the calendar date of t in its own location.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
