package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dateGroup(rest ...Token) Group {
	tokens := []Token{tok(50, "15"), tok(100, "mars"), tok(130, "2024")}
	return Group{Tokens: append(tokens, rest...)}
}

func TestBuildTransaction(t *testing.T) {
	t.Run("full card purchase row", func(t *testing.T) {
		g := dateGroup(
			tok(90, "Carte"),
			tok(200, "Boulangerie"),
			tok(480, "4,50"),
			tok(520, "120,00"),
		)

		tx := BuildTransaction(g)

		require.True(t, tx.Date.Resolved)
		assert.Equal(t, "2024-03-15", tx.Date.String())
		assert.Equal(t, "Carte", tx.Type)
		assert.Equal(t, "Boulangerie", tx.Description)
		assert.Equal(t, "-4.5", tx.Amount.String())
		require.True(t, tx.HasBalance())
		assert.Equal(t, "120", tx.Balance.String())
		assert.Empty(t, tx.Issues)
	})

	t.Run("credit wins over debit", func(t *testing.T) {
		g := dateGroup(tok(440, "100,00"), tok(480, "30,00"))
		tx := BuildTransaction(g)
		assert.Equal(t, "100", tx.Amount.String())
	})

	t.Run("debit becomes negative", func(t *testing.T) {
		g := dateGroup(tok(480, "30,00"))
		tx := BuildTransaction(g)
		assert.Equal(t, "-30", tx.Amount.String())
	})

	t.Run("no amount tokens yields zero", func(t *testing.T) {
		g := dateGroup(tok(200, "Frais"))
		tx := BuildTransaction(g)
		assert.True(t, tx.Amount.IsZero())
		assert.False(t, tx.HasBalance())
	})

	t.Run("zero credit falls through to debit", func(t *testing.T) {
		g := dateGroup(tok(440, "0,00"), tok(480, "12,00"))
		tx := BuildTransaction(g)
		assert.Equal(t, "-12", tx.Amount.String())
	})

	t.Run("unresolved date is kept with an issue", func(t *testing.T) {
		g := Group{Tokens: []Token{
			tok(50, "31"), tok(100, "février"), tok(130, "2023"),
			tok(200, "Abonnement"),
		}}

		tx := BuildTransaction(g)

		assert.False(t, tx.Date.Resolved)
		assert.Equal(t, "31 février 2023", tx.Date.String())
		assert.Equal(t, "Abonnement", tx.Description)
		require.Len(t, tx.Issues, 1)
		assert.Equal(t, "date", tx.Issues[0].Field)
	})
}
