package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-inspector/internal/apperr"
)

const DefaultSearchLimit = 10

// SearchHit is a matching record with every displayed field present.
type SearchHit struct {
	MerchantName string
	Date         time.Time
	Amount       decimal.Decimal
	Category     string
}

// Search scans the whole snapshot in order for records whose merchant name or
// category contains term. Matches missing a displayed field are skipped and do
// not count toward limit. Scanning stops once limit hits are collected.
func Search(snapshot []Transaction, term string, limit int) []SearchHit {
	if limit < 1 {
		limit = DefaultSearchLimit
	}

	var hits []SearchHit
	for _, t := range snapshot {
		if len(hits) >= limit {
			break
		}
		if !MatchesTerm(t.MerchantName, term) && !MatchesTerm(t.Category, term) {
			continue
		}

		hit, err := searchHit(t)
		if err != nil {
			continue
		}
		hits = append(hits, hit)
	}

	return hits
}

func searchHit(t Transaction) (SearchHit, error) {
	const op = "analytics.searchHit"

	merchant, ok := presentString(t.MerchantName)
	if !ok {
		return SearchHit{}, apperr.Newf(apperr.KindMissingField, op, "merchant_name is absent")
	}
	date, ok := t.AuthorizedDate.Get()
	if !ok {
		return SearchHit{}, apperr.Newf(apperr.KindMissingField, op, "authorized_date is absent")
	}
	amount, ok := t.Amount.Get()
	if !ok {
		return SearchHit{}, apperr.Newf(apperr.KindMissingField, op, "amount is absent")
	}
	category, ok := presentString(t.Category)
	if !ok {
		return SearchHit{}, apperr.Newf(apperr.KindMissingField, op, "category is absent")
	}

	return SearchHit{
		MerchantName: merchant,
		Date:         date,
		Amount:       amount,
		Category:     category,
	}, nil
}
