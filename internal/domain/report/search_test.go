package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/availlac/releve/internal/domain/statement"
)

func TestSuggestIndex(t *testing.T) {
	records := []statement.Transaction{
		{Description: "Boulangerie du Centre", Category: "Food & Dining", Amount: dec("-4.50")},
		{Description: "Boulangerie du Centre", Category: "Food & Dining", Amount: dec("-3.20")},
		{Description: "SNCF INTERNET", Category: "Transport", Amount: dec("-45.00")},
		{Description: "NETFLIX.COM", Category: "Leisure", Amount: dec("-13.49")},
		{Description: "", Category: "Other"},
	}

	si, err := NewSuggestIndex(records)
	require.NoError(t, err)
	defer si.Close()

	t.Run("duplicates and empties collapse", func(t *testing.T) {
		count, err := si.DocumentCount()
		require.NoError(t, err)
		assert.Equal(t, uint64(3), count)
	})

	t.Run("word match", func(t *testing.T) {
		got, err := si.Suggest("boulangerie", 5)
		require.NoError(t, err)
		require.NotEmpty(t, got)
		assert.Equal(t, "Boulangerie du Centre", got[0].Description)
		assert.Equal(t, "Food & Dining", got[0].Category)
		assert.Greater(t, got[0].Score, 0.0)
	})

	t.Run("one typo is tolerated", func(t *testing.T) {
		got, err := si.Suggest("boulangeri", 5)
		require.NoError(t, err)
		require.NotEmpty(t, got)
		assert.Equal(t, "Boulangerie du Centre", got[0].Description)
	})

	t.Run("fuzzy fallback catches prefixes", func(t *testing.T) {
		got, err := si.Suggest("sncf", 5)
		require.NoError(t, err)
		require.NotEmpty(t, got)
		assert.Equal(t, "SNCF INTERNET", got[0].Description)
	})

	t.Run("limit caps results", func(t *testing.T) {
		got, err := si.Suggest("du", 1)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(got), 1)
	})

	t.Run("nothing matches", func(t *testing.T) {
		got, err := si.Suggest("zzzzqqq", 5)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
