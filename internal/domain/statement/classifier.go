package statement

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

type fieldKind int

const (
	fieldType fieldKind = iota
	fieldDescription
	fieldCredit
	fieldDebit
	fieldBalance
)

func (k fieldKind) String() string {
	switch k {
	case fieldType:
		return "type"
	case fieldDescription:
		return "description"
	case fieldCredit:
		return "credit"
	case fieldDebit:
		return "debit"
	case fieldBalance:
		return "balance"
	}
	return "unknown"
}

// band maps a half-open x0 interval [Min,Max) to a semantic column.
type band struct {
	Min  float64
	Max  float64
	Kind fieldKind
}

// classifierBands is the column geometry of the statement layout, evaluated
// top to bottom, first match wins. Tokens left of the first band are dropped.
var classifierBands = []band{
	{Min: 80, Max: 170, Kind: fieldType},
	{Min: 170, Max: 429, Kind: fieldDescription},
	{Min: 429, Max: 470, Kind: fieldCredit},
	{Min: 470, Max: 510, Kind: fieldDebit},
	{Min: 510, Max: math.Inf(1), Kind: fieldBalance},
}

// footerPrefixes mark pagination/boilerplate tokens that must never be
// classified, whatever band they fall in.
var footerPrefixes = []string{"page ", "généré"}

func isFooterToken(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range footerPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

// classifiedFields accumulates column values for one transaction group.
// Text columns concatenate; amount columns overwrite, last token wins.
type classifiedFields struct {
	typeParts []string
	descParts []string
	credit    decimal.Decimal
	debit     decimal.Decimal
	balance   *decimal.Decimal
	issues    []FieldIssue
}

// classify assigns every token after the date triple to a column by
// horizontal position. Amount parse failures leave the column at its default
// (zero for credit/debit, absent for balance) and are recorded as issues.
func classify(tokens []Token) classifiedFields {
	var f classifiedFields
	for _, t := range tokens {
		if isFooterToken(t.Text) {
			continue
		}

		kind, ok := bandFor(t.X0)
		if !ok {
			continue
		}

		switch kind {
		case fieldType:
			f.typeParts = append(f.typeParts, t.Text)
		case fieldDescription:
			f.descParts = append(f.descParts, t.Text)
		case fieldCredit, fieldDebit, fieldBalance:
			res := ParseAmount(t.Text)
			if !res.OK {
				f.issues = append(f.issues, FieldIssue{Field: kind.String(), Token: t.Text, Reason: res.Reason})
				continue
			}
			switch kind {
			case fieldCredit:
				f.credit = res.Value
			case fieldDebit:
				f.debit = res.Value
			case fieldBalance:
				v := res.Value
				f.balance = &v
			}
		}
	}
	return f
}

func bandFor(x0 float64) (fieldKind, bool) {
	for _, b := range classifierBands {
		if x0 >= b.Min && x0 < b.Max {
			return b.Kind, true
		}
	}
	return 0, false
}

// typeText finalizes the type column: one trim after accumulation.
func (f classifiedFields) typeText() string {
	return strings.TrimSpace(strings.Join(f.typeParts, " "))
}

func (f classifiedFields) descriptionText() string {
	return strings.TrimSpace(strings.Join(f.descParts, " "))
}
