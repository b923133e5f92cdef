package statement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDate(t *testing.T) {
	tests := []struct {
		name  string
		day   string
		month string
		year  string
		want  time.Time
	}{
		{"plain date", "15", "mars", "2024", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{"accented month", "1", "février", "2023", time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC)},
		{"unaccented fevrier", "1", "fevrier", "2023", time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC)},
		{"accented août", "31", "août", "2024", time.Date(2024, time.August, 31, 0, 0, 0, 0, time.UTC)},
		{"unaccented aout", "31", "aout", "2024", time.Date(2024, time.August, 31, 0, 0, 0, 0, time.UTC)},
		{"unaccented decembre", "25", "decembre", "2023", time.Date(2023, time.December, 25, 0, 0, 0, 0, time.UTC)},
		{"uppercase month", "10", "JUILLET", "2024", time.Date(2024, time.July, 10, 0, 0, 0, 0, time.UTC)},
		{"trailing period on abbreviation", "5", "janv.", "2024", time.Time{}},
		{"trailing period on full month", "5", "janvier.", "2024", time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDate(tt.day, tt.month, tt.year)
			if tt.want.IsZero() {
				assert.False(t, got.Resolved)
				return
			}
			require.True(t, got.Resolved, "reason: %s", got.Reason)
			assert.Equal(t, tt.want, got.Time)
		})
	}
}

func TestResolveDateFallback(t *testing.T) {
	t.Run("impossible calendar date keeps raw form", func(t *testing.T) {
		got := ResolveDate("31", "février", "2023")
		assert.False(t, got.Resolved)
		assert.Equal(t, "31 février 2023", got.Raw)
		assert.Equal(t, "31 février 2023", got.String())
	})

	t.Run("unknown month keeps raw form", func(t *testing.T) {
		got := ResolveDate("15", "brumaire", "2024")
		assert.False(t, got.Resolved)
		assert.Equal(t, "15 brumaire 2024", got.Raw)
	})

	t.Run("non numeric day keeps raw form", func(t *testing.T) {
		got := ResolveDate("1er", "mai", "2024")
		assert.False(t, got.Resolved)
		assert.Equal(t, "1er mai 2024", got.Raw)
	})

	t.Run("resolved date formats ISO", func(t *testing.T) {
		got := ResolveDate("7", "juin", "2024")
		require.True(t, got.Resolved)
		assert.Equal(t, "2024-06-07", got.String())
	})
}
