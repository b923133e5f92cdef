package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/availlac/releve/internal/domain/statement"
)

// AggregateRow is one spending bucket. Mean is nil for single-record
// buckets and Percentage is nil when the grouped total is zero.
type AggregateRow struct {
	Key        string           `json:"key"`
	Total      decimal.Decimal  `json:"total"`
	Count      int              `json:"count"`
	Mean       *decimal.Decimal `json:"mean,omitempty"`
	Percentage *decimal.Decimal `json:"percentage,omitempty"`
}

// GroupKey selects the grouping dimension for Aggregate.
type GroupKey func(statement.Transaction) string

// ByCategory groups on the assigned category.
func ByCategory(r statement.Transaction) string { return r.Category }

// ByDescription groups on the raw description text.
func ByDescription(r statement.Transaction) string { return r.Description }

var oneHundred = decimal.NewFromInt(100)

// Aggregate buckets the spending records (negative amounts only) by key and
// reports absolute totals. Rows come back in descending total order; ties
// keep first-seen order so repeated runs over the same input are identical.
func Aggregate(records []statement.Transaction, key GroupKey) []AggregateRow {
	totals := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	var order []string

	for _, r := range records {
		if !r.Amount.IsNegative() {
			continue
		}
		k := key(r)
		if _, seen := totals[k]; !seen {
			order = append(order, k)
		}
		totals[k] = totals[k].Add(r.Amount.Abs())
		counts[k]++
	}

	grand := decimal.Zero
	for _, k := range order {
		grand = grand.Add(totals[k])
	}

	rows := make([]AggregateRow, 0, len(order))
	for _, k := range order {
		row := AggregateRow{Key: k, Total: totals[k], Count: counts[k]}
		if row.Count > 1 {
			mean := row.Total.DivRound(decimal.NewFromInt(int64(row.Count)), 2)
			row.Mean = &mean
		}
		if grand.IsPositive() {
			pct := row.Total.Mul(oneHundred).DivRound(grand, 2)
			row.Percentage = &pct
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total.GreaterThan(rows[j].Total)
	})
	return rows
}
