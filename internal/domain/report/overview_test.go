package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/availlac/releve/internal/domain/statement"
)

func balancePtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestBuildOverview(t *testing.T) {
	t.Run("totals split by sign", func(t *testing.T) {
		o := BuildOverview([]statement.Transaction{
			{Amount: dec("-4.50")},
			{Amount: dec("-45.00")},
			{Amount: dec("2100.00")},
		})

		assert.Equal(t, 3, o.RecordCount)
		assert.Equal(t, "49.5", o.TotalSpend.String())
		assert.Equal(t, "2100", o.TotalIncome.String())
	})

	t.Run("final balance comes from the last printed balance", func(t *testing.T) {
		o := BuildOverview([]statement.Transaction{
			{Amount: dec("-4.50"), Balance: balancePtr("995.50")},
			{Amount: dec("-45.00")},
			{Amount: dec("100.00"), Balance: balancePtr("1050.50")},
			{Amount: dec("-10.00")},
		})
		assert.Equal(t, "1050.5", o.FinalBalance.String())
	})

	t.Run("without printed balances the signed sum stands in", func(t *testing.T) {
		o := BuildOverview([]statement.Transaction{
			{Amount: dec("-4.50")},
			{Amount: dec("100.00")},
		})
		assert.Equal(t, "95.5", o.FinalBalance.String())
	})

	t.Run("empty set", func(t *testing.T) {
		o := BuildOverview(nil)
		assert.Equal(t, 0, o.RecordCount)
		assert.True(t, o.FinalBalance.IsZero())
	})
}

func TestBalanceSeries(t *testing.T) {
	records := []statement.Transaction{
		{Date: day(2024, time.March, 16), Amount: dec("-45.00")},
		{Date: day(2024, time.March, 15), Amount: dec("-4.50"), Balance: balancePtr("995.50")},
		{Date: statement.DateResult{Raw: "31 février 2024"}, Amount: dec("-99.00")},
		{Date: day(2024, time.March, 17), Amount: dec("100.00"), Balance: balancePtr("1046.00")},
	}

	points := BalanceSeries(records)

	require.Len(t, points, 3)

	// printed balance anchors the curve
	assert.Equal(t, "2024-03-15", points[0].Date)
	assert.Equal(t, "995.5", points[0].Balance.String())

	// amounts accumulate from the anchor
	assert.Equal(t, "950.5", points[1].Balance.String())

	// next printed balance re-anchors
	assert.Equal(t, "1046", points[2].Balance.String())
}
