package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/availlac/releve/internal/domain/categorize"
	"github.com/availlac/releve/internal/domain/statement"
	"github.com/availlac/releve/pkg/cache"
	"github.com/availlac/releve/pkg/observability"
	"github.com/availlac/releve/pkg/storage"
)

// Analysis is the outcome of parsing one statement document.
type Analysis struct {
	ID        uuid.UUID               `json:"id"`
	Records   []statement.Transaction `json:"records"`
	PageCount int                     `json:"page_count"`
	CreatedAt time.Time               `json:"created_at"`

	suggest *SuggestIndex
}

// Result bundles the filtered view of an analysis for presentation.
type Result struct {
	Records       []statement.Transaction `json:"records"`
	Overview      Overview                `json:"overview"`
	ByCategory    []AggregateRow          `json:"by_category"`
	ByDescription []AggregateRow          `json:"by_description"`
	Balances      []BalancePoint          `json:"balances"`
}

// Service analyzes statement documents and serves reports over the results.
// Analyses are cached by document content so re-uploading the same bytes is
// free, and kept addressable by ID for follow-up queries.
type Service struct {
	logger  *slog.Logger
	engine  *categorize.Engine
	tracer  trace.Tracer
	byHash  *cache.Cache[*Analysis]
	byID    *cache.Cache[*Analysis]
	archive storage.Archive
	suggest int

	// newSource builds the token source for a document; swapped out in
	// tests to feed synthetic tokens.
	newSource func(data []byte) (statement.TokenSource, error)
}

// NewService creates the analysis service. cacheTTL bounds how long results
// stay addressable; suggestLimit caps suggestion responses.
func NewService(logger *slog.Logger, engine *categorize.Engine, cacheTTL time.Duration, suggestLimit int) *Service {
	if suggestLimit <= 0 {
		suggestLimit = 10
	}
	return &Service{
		logger:  logger,
		engine:  engine,
		tracer:  observability.Tracer(),
		byHash:  cache.New[*Analysis](cacheTTL),
		byID:    cache.New[*Analysis](cacheTTL),
		suggest: suggestLimit,
		newSource: func(data []byte) (statement.TokenSource, error) {
			return statement.NewPDFTokenSource(data)
		},
	}
}

// Cache exposes the content-keyed cache for janitor wiring.
func (s *Service) Cache() *cache.Cache[*Analysis] { return s.byHash }

// WithArchive makes the service keep a copy of every analyzed document.
func (s *Service) WithArchive(a storage.Archive) *Service {
	s.archive = a
	return s
}

// OpenDocument returns the archived bytes of an analyzed statement.
func (s *Service) OpenDocument(ctx context.Context, id uuid.UUID) (io.ReadCloser, *storage.DocumentInfo, error) {
	if s.archive == nil {
		return nil, nil, ErrAnalysisNotFound
	}
	return s.archive.Open(ctx, id)
}

// Analyze parses the document, categorizes its records and indexes them for
// suggestions. Identical document bytes return the cached analysis.
func (s *Service) Analyze(ctx context.Context, data []byte) (*Analysis, error) {
	ctx, span := s.tracer.Start(ctx, "report.Analyze", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	start := time.Now()

	key := cache.Key(data)
	if a, ok := s.byHash.Get(key); ok {
		observability.CacheHits.WithLabelValues("hit").Inc()
		s.logger.Debug("analysis cache hit", slog.String("key", key[:12]))
		return a, nil
	}
	observability.CacheHits.WithLabelValues("miss").Inc()

	src, err := s.newSource(data)
	if err != nil {
		span.RecordError(err)
		observability.StatementsAnalyzed.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to open document: %w", err)
	}

	records, err := statement.Parse(ctx, src)
	if err != nil {
		span.RecordError(err)
		observability.StatementsAnalyzed.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	s.engine.Apply(records)

	suggest, err := NewSuggestIndex(records)
	if err != nil {
		span.RecordError(err)
		observability.StatementsAnalyzed.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to index descriptions: %w", err)
	}

	a := &Analysis{
		ID:        uuid.New(),
		Records:   records,
		PageCount: src.PageCount(),
		CreatedAt: time.Now().UTC(),
		suggest:   suggest,
	}

	s.byHash.Set(key, a)
	s.byID.Set(a.ID.String(), a)

	if s.archive != nil {
		name := a.ID.String() + ".pdf"
		if _, err := s.archive.Store(ctx, a.ID, name, bytes.NewReader(data)); err != nil {
			// archive failure does not fail the analysis
			s.logger.Warn("failed to archive document",
				slog.String("analysis_id", a.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	s.recordMetrics(a)
	observability.StatementsAnalyzed.WithLabelValues("ok").Inc()
	observability.AnalyzeDuration.Observe(time.Since(start).Seconds())

	s.logger.Info("statement analyzed",
		slog.String("analysis_id", a.ID.String()),
		slog.Int("pages", a.PageCount),
		slog.Int("records", len(a.Records)),
		slog.Duration("took", time.Since(start)),
	)
	return a, nil
}

func (s *Service) recordMetrics(a *Analysis) {
	observability.PagesParsed.Add(float64(a.PageCount))
	observability.RecordsExtracted.Add(float64(len(a.Records)))
	for _, r := range a.Records {
		for _, issue := range r.Issues {
			observability.DegradedFields.WithLabelValues(issue.Field).Inc()
		}
	}
}

// Get returns a previously computed analysis by ID.
func (s *Service) Get(id string) (*Analysis, bool) {
	return s.byID.Get(id)
}

// Report applies the filter to the analysis and assembles the full view.
func (s *Service) Report(a *Analysis, spec FilterSpec) Result {
	records := Apply(a.Records, spec)
	return Result{
		Records:       records,
		Overview:      BuildOverview(records),
		ByCategory:    Aggregate(records, ByCategory),
		ByDescription: Aggregate(records, ByDescription),
		Balances:      BalanceSeries(records),
	}
}

// Suggest returns description completions for a stored analysis.
func (s *Service) Suggest(id, query string) ([]Suggestion, error) {
	a, ok := s.byID.Get(id)
	if !ok {
		return nil, fmt.Errorf("analysis %s: %w", id, ErrAnalysisNotFound)
	}
	return a.suggest.Suggest(query, s.suggest)
}
