package analytics

import "github.com/shopspring/decimal"

// FilterResult is the output of a single pass over a snapshot.
type FilterResult struct {
	Included []Transaction
	Total    decimal.Decimal
	Count    int
}

// FilterWindow keeps records whose authorized date falls inside window.
// Records without an authorized date are skipped. Total sums absolute amounts.
func FilterWindow(snapshot []Transaction, window TimeWindow) FilterResult {
	result := FilterResult{Total: decimal.Zero}

	for _, t := range snapshot {
		authorized, ok := t.AuthorizedDate.Get()
		if !ok || !window.Contains(authorized) {
			continue
		}

		result.Total = result.Total.Add(absAmount(t))
		result.Count++
		result.Included = append(result.Included, t)
	}

	return result
}

func absAmount(t Transaction) decimal.Decimal {
	return t.Amount.GetOr(decimal.Zero).Abs()
}
