// Package statement extracts transaction records from positioned text tokens
// of a card statement. The layout carries no schema: transaction boundaries,
// field columns and dates are all recovered from geometric heuristics.
package statement

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Token is one positioned piece of text produced by a token source.
// Coordinates are in PDF points; only X0 drives classification.
type Token struct {
	X0   float64
	Y0   float64
	X1   float64
	Y1   float64
	Text string
	Page int
}

// Group is a contiguous run of tokens on one page belonging to a single
// candidate transaction line, starting at a day anchor.
type Group struct {
	Page   int
	Tokens []Token
}

// DateResult is the outcome of resolving day/month/year tokens. When the
// triple does not form a valid calendar date the record keeps the raw
// concatenation instead of being dropped.
type DateResult struct {
	Time     time.Time
	Raw      string
	Resolved bool
	Reason   string // set when Resolved is false
}

// String renders the canonical YYYY-MM-DD form, or the raw fallback.
func (d DateResult) String() string {
	if d.Resolved {
		return d.Time.Format("2006-01-02")
	}
	return d.Raw
}

// MarshalJSON renders the date as its display string, resolved or not.
func (d DateResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// AmountResult is the outcome of parsing one amount token. A failed parse
// keeps the band's default value and records why.
type AmountResult struct {
	Value  decimal.Decimal
	OK     bool
	Reason string
}

// FieldIssue records a row-level degradation that was swallowed during
// extraction, so graceful degradation stays observable.
type FieldIssue struct {
	Field  string
	Token  string
	Reason string
}

// Transaction is the structured output of one statement line.
// Records are emitted in page order, then in-page positional order;
// consumers needing calendar order must sort explicitly.
type Transaction struct {
	Date        DateResult       `json:"date"`
	Type        string           `json:"type"`
	Description string           `json:"description"`
	Amount      decimal.Decimal  `json:"amount"`
	Balance     *decimal.Decimal `json:"balance,omitempty"`
	Category    string           `json:"category,omitempty"`
	Page        int              `json:"page"`
	Issues      []FieldIssue     `json:"-"`
}

// HasBalance reports whether a balance-band token parsed on this line.
func (t Transaction) HasBalance() bool {
	return t.Balance != nil
}
