package statement

import "github.com/shopspring/decimal"

// BuildTransaction assembles one record from a segmented group. The first
// three tokens are the day/month/year triple; the rest classify by band.
//
// Sign convention: the credit value wins when non-zero, otherwise the debit
// magnitude is negated, otherwise the amount is zero. A genuine zero credit
// is indistinguishable from an absent one; the observed behavior is kept.
func BuildTransaction(g Group) Transaction {
	date := ResolveDate(g.Tokens[0].Text, g.Tokens[1].Text, g.Tokens[2].Text)

	f := classify(g.Tokens[minGroupTokens:])

	var amount decimal.Decimal
	switch {
	case !f.credit.IsZero():
		amount = f.credit
	case !f.debit.IsZero():
		amount = f.debit.Neg()
	default:
		amount = decimal.Zero
	}

	issues := f.issues
	if !date.Resolved {
		issues = append(issues, FieldIssue{Field: "date", Token: date.Raw, Reason: date.Reason})
	}

	return Transaction{
		Date:        date,
		Type:        f.typeText(),
		Description: f.descriptionText(),
		Amount:      amount,
		Balance:     f.balance,
		Page:        g.Page,
		Issues:      issues,
	}
}
