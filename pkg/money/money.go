// Package money formats statement amounts for display. Statements are
// euro-denominated; arithmetic stays in shopspring/decimal and only the
// presentation layer goes through go-money.
package money

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const EUR = "EUR"

// FromDecimal converts a decimal euro amount to integer-cent Money.
func FromDecimal(amount decimal.Decimal) *money.Money {
	cents := amount.Mul(decimal.New(1, 2)).Round(0).IntPart()
	return money.New(cents, EUR)
}

// Display renders a decimal euro amount the way the locale expects,
// e.g. "€1,234.56".
func Display(amount decimal.Decimal) string {
	return FromDecimal(amount).Display()
}

// DisplayPtr renders an optional amount; nil comes back empty.
func DisplayPtr(amount *decimal.Decimal) string {
	if amount == nil {
		return ""
	}
	return Display(*amount)
}
