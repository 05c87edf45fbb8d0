package analytics

import (
	"strings"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

// Uncategorized labels records that carry no category.
const Uncategorized = "Uncategorized"

// CategoryTotals maps category labels to absolute amounts, remembering the
// order in which each label was first added.
type CategoryTotals struct {
	labels  []string
	amounts map[string]decimal.Decimal
}

func NewCategoryTotals() *CategoryTotals {
	return &CategoryTotals{amounts: make(map[string]decimal.Decimal)}
}

func (c *CategoryTotals) Add(label string, amount decimal.Decimal) {
	current, seen := c.amounts[label]
	if !seen {
		c.labels = append(c.labels, label)
		current = decimal.Zero
	}
	c.amounts[label] = current.Add(amount)
}

// Labels returns labels in first-seen order.
func (c *CategoryTotals) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

func (c *CategoryTotals) Amount(label string) decimal.Decimal {
	return c.amounts[label]
}

func (c *CategoryTotals) Len() int {
	return len(c.labels)
}

func (c *CategoryTotals) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, label := range c.labels {
		sum = sum.Add(c.amounts[label])
	}
	return sum
}

// Aggregate groups included records by category.
//
// With an empty filter every record is added under its own category (or
// Uncategorized). With a filter, only records whose category contains the
// filter term are added, all under the filter term itself.
func Aggregate(included []Transaction, filter string) *CategoryTotals {
	totals := NewCategoryTotals()

	for _, t := range included {
		amount := absAmount(t)

		if filter != "" {
			if MatchesTerm(t.Category, filter) {
				totals.Add(filter, amount)
			}
			continue
		}

		label, ok := presentString(t.Category)
		if !ok {
			label = Uncategorized
		}
		totals.Add(label, amount)
	}

	return totals
}

// MatchesTerm reports whether field is present and contains term, ignoring case.
func MatchesTerm(field omit.Val[string], term string) bool {
	value, ok := presentString(field)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(term))
}
