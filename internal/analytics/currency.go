package analytics

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Truncate cuts value to two decimal places toward zero. It never rounds.
func Truncate(value decimal.Decimal) decimal.Decimal {
	return value.Truncate(2)
}

// Percentage returns part/total*100 truncated toward zero. A zero total yields 0.
func Percentage(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(total).Truncate(0)
}

// FormatMoney renders a truncated amount with exactly two decimals.
func FormatMoney(value decimal.Decimal) string {
	return Truncate(value).StringFixed(2)
}
