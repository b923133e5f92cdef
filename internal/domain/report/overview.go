package report

import (
	"github.com/shopspring/decimal"

	"github.com/availlac/releve/internal/domain/statement"
)

// Overview is the headline summary of a record set.
type Overview struct {
	TotalSpend   decimal.Decimal `json:"total_spend"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	FinalBalance decimal.Decimal `json:"final_balance"`
	RecordCount  int             `json:"record_count"`
}

// BalancePoint is one step of the reconstructed balance curve.
type BalancePoint struct {
	Date    string          `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// BuildOverview computes the headline figures. The final balance is taken
// from the last record carrying a printed balance; when no record does, it
// falls back to the running sum of signed amounts.
func BuildOverview(records []statement.Transaction) Overview {
	o := Overview{RecordCount: len(records)}
	running := decimal.Zero
	var lastBalance *decimal.Decimal

	for _, r := range records {
		if r.Amount.IsNegative() {
			o.TotalSpend = o.TotalSpend.Add(r.Amount.Abs())
		} else {
			o.TotalIncome = o.TotalIncome.Add(r.Amount)
		}
		running = running.Add(r.Amount)
		if r.Balance != nil {
			lastBalance = r.Balance
		}
	}

	if lastBalance != nil {
		o.FinalBalance = *lastBalance
	} else {
		o.FinalBalance = running
	}
	return o
}

// BalanceSeries reconstructs the balance curve over the date-sorted records.
// Printed balances re-anchor the running value; between anchors the signed
// amounts accumulate from the last known point.
func BalanceSeries(records []statement.Transaction) []BalancePoint {
	sorted := SortByDate(records)
	points := make([]BalancePoint, 0, len(sorted))

	running := decimal.Zero
	for _, r := range sorted {
		if r.Balance != nil {
			running = *r.Balance
		} else {
			running = running.Add(r.Amount)
		}
		points = append(points, BalancePoint{Date: r.Date.String(), Balance: running})
	}
	return points
}
