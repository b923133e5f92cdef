package report

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/availlac/releve/internal/domain/categorize"
	"github.com/availlac/releve/internal/domain/statement"
)

// fakeSource replays fixed token pages regardless of document bytes.
type fakeSource struct {
	pages [][]statement.Token
}

func (f *fakeSource) PageCount() int { return len(f.pages) }

func (f *fakeSource) PageTokens(page int) ([]statement.Token, error) {
	return f.pages[page], nil
}

func statementTok(x0 float64, text string) statement.Token {
	return statement.Token{X0: x0, X1: x0 + 10, Text: text}
}

func fixturePages() [][]statement.Token {
	return [][]statement.Token{
		{
			statementTok(50, "15"), statementTok(100, "mars"), statementTok(130, "2024"),
			statementTok(90, "Carte"), statementTok(200, "Boulangerie"),
			statementTok(480, "4,50"), statementTok(520, "120,00"),

			statementTok(50, "16"), statementTok(100, "mars"), statementTok(130, "2024"),
			statementTok(90, "Virement"), statementTok(200, "SALAIRE"),
			statementTok(440, "2100,00"),
		},
		{
			statementTok(50, "17"), statementTok(100, "mars"), statementTok(130, "2024"),
			statementTok(90, "Carte"), statementTok(200, "SNCF"),
			statementTok(480, "45,00"),
		},
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	svc := NewService(logger, categorize.NewEngine(), time.Minute, 10)
	svc.newSource = func(data []byte) (statement.TokenSource, error) {
		return &fakeSource{pages: fixturePages()}, nil
	}
	return svc
}

func TestService_Analyze(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a, err := svc.Analyze(ctx, []byte("doc-1"))
	require.NoError(t, err)

	t.Run("records in page order with categories", func(t *testing.T) {
		require.Len(t, a.Records, 3)
		assert.Equal(t, "Boulangerie", a.Records[0].Description)
		assert.Equal(t, categorize.CategoryFood, a.Records[0].Category)
		assert.Equal(t, "-4.5", a.Records[0].Amount.String())
		assert.Equal(t, categorize.CategoryTransfer, a.Records[1].Category)
		assert.Equal(t, "SNCF", a.Records[2].Description)
		assert.Equal(t, 1, a.Records[2].Page)
		assert.Equal(t, 2, a.PageCount)
	})

	t.Run("same bytes hit the cache", func(t *testing.T) {
		again, err := svc.Analyze(ctx, []byte("doc-1"))
		require.NoError(t, err)
		assert.Equal(t, a.ID, again.ID)
	})

	t.Run("different bytes get a fresh analysis", func(t *testing.T) {
		other, err := svc.Analyze(ctx, []byte("doc-2"))
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, other.ID)
	})

	t.Run("analysis is addressable by id", func(t *testing.T) {
		got, ok := svc.Get(a.ID.String())
		require.True(t, ok)
		assert.Equal(t, a.ID, got.ID)

		_, ok = svc.Get("unknown")
		assert.False(t, ok)
	})
}

func TestService_Report(t *testing.T) {
	svc := newTestService(t)

	a, err := svc.Analyze(context.Background(), []byte("doc"))
	require.NoError(t, err)

	t.Run("unfiltered", func(t *testing.T) {
		result := svc.Report(a, FilterSpec{})
		assert.Equal(t, 3, result.Overview.RecordCount)
		assert.Equal(t, "49.5", result.Overview.TotalSpend.String())
		assert.Equal(t, "2100", result.Overview.TotalIncome.String())
		require.Len(t, result.ByCategory, 2)
		assert.Equal(t, categorize.CategoryTransport, result.ByCategory[0].Key)
		assert.Len(t, result.Balances, 3)
	})

	t.Run("filtered to card transactions", func(t *testing.T) {
		result := svc.Report(a, FilterSpec{TypeContains: "carte"})
		assert.Equal(t, 2, result.Overview.RecordCount)
		assert.Equal(t, "49.5", result.Overview.TotalSpend.String())
		assert.True(t, result.Overview.TotalIncome.IsZero())
	})
}

func TestService_Suggest(t *testing.T) {
	svc := newTestService(t)

	a, err := svc.Analyze(context.Background(), []byte("doc"))
	require.NoError(t, err)

	got, err := svc.Suggest(a.ID.String(), "boulangerie")
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "Boulangerie", got[0].Description)

	_, err = svc.Suggest("missing", "boulangerie")
	assert.ErrorIs(t, err, ErrAnalysisNotFound)
}
