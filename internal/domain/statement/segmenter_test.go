package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tok(x0 float64, text string) Token {
	return Token{X0: x0, X1: x0 + 10, Text: text}
}

func TestIsDayAnchor(t *testing.T) {
	tests := []struct {
		name  string
		token Token
		want  bool
	}{
		{"day in anchor band", tok(50, "15"), true},
		{"lower band edge", tok(45, "1"), true},
		{"upper band edge", tok(55, "31"), true},
		{"left of band", tok(44.9, "15"), false},
		{"right of band", tok(55.1, "15"), false},
		{"zero is not a day", tok(50, "0"), false},
		{"32 is not a day", tok(50, "32"), false},
		{"not numeric", tok(50, "1a"), false},
		{"empty text", tok(50, ""), false},
		{"year-like value in band", tok(50, "2023"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDayAnchor(tt.token))
		})
	}
}

func TestSegmentPage(t *testing.T) {
	t.Run("each anchor starts a group", func(t *testing.T) {
		tokens := []Token{
			tok(50, "15"), tok(100, "mars"), tok(120, "2024"), tok(200, "Boulangerie"),
			tok(50, "16"), tok(100, "mars"), tok(120, "2024"), tok(200, "SNCF"),
		}

		groups := SegmentPage(0, tokens)
		require.Len(t, groups, 2)
		assert.Len(t, groups[0].Tokens, 4)
		assert.Len(t, groups[1].Tokens, 4)
		assert.Equal(t, "Boulangerie", groups[0].Tokens[3].Text)
		assert.Equal(t, "SNCF", groups[1].Tokens[3].Text)
	})

	t.Run("tokens before first anchor are discarded", func(t *testing.T) {
		tokens := []Token{
			tok(100, "RELEVE"), tok(200, "DE COMPTE"),
			tok(50, "3"), tok(100, "avril"), tok(120, "2024"),
		}

		groups := SegmentPage(0, tokens)
		require.Len(t, groups, 1)
		assert.Equal(t, "3", groups[0].Tokens[0].Text)
	})

	t.Run("groups under three tokens are dropped", func(t *testing.T) {
		tokens := []Token{
			tok(50, "15"), tok(100, "mars"),
			tok(50, "16"), tok(100, "mars"), tok(120, "2024"),
		}

		groups := SegmentPage(0, tokens)
		require.Len(t, groups, 1)
		assert.Equal(t, "16", groups[0].Tokens[0].Text)
	})

	t.Run("no anchors yields no groups", func(t *testing.T) {
		tokens := []Token{tok(100, "mars"), tok(200, "Boulangerie")}
		assert.Empty(t, SegmentPage(0, tokens))
	})

	t.Run("empty page", func(t *testing.T) {
		assert.Empty(t, SegmentPage(0, nil))
	})

	t.Run("stray numeric token in band splits the group", func(t *testing.T) {
		// A quantity like "12" drifting into the anchor band is taken for a
		// day anchor and cuts the running group short.
		tokens := []Token{
			tok(50, "15"), tok(100, "mars"), tok(120, "2024"), tok(200, "Retrait"),
			tok(50, "12"), tok(200, "articles"), tok(430, "12,00"),
		}

		groups := SegmentPage(0, tokens)
		require.Len(t, groups, 2)
		assert.Equal(t, "15", groups[0].Tokens[0].Text)
		assert.Equal(t, "12", groups[1].Tokens[0].Text)
	})

	t.Run("page number is carried onto groups", func(t *testing.T) {
		tokens := []Token{tok(50, "1"), tok(100, "mai"), tok(120, "2024")}
		groups := SegmentPage(3, tokens)
		require.Len(t, groups, 1)
		assert.Equal(t, 3, groups[0].Page)
	})
}
