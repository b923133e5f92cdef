// Package observability centralizes Prometheus metrics and OpenTelemetry
// tracing for the extraction pipeline.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var (
	// StatementsAnalyzed counts analyzed statements by outcome.
	StatementsAnalyzed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "releve_statements_analyzed_total",
			Help: "Total number of statement documents analyzed",
		},
		[]string{"status"},
	)

	// PagesParsed counts parsed statement pages.
	PagesParsed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "releve_pages_parsed_total",
			Help: "Total number of statement pages parsed",
		},
	)

	// RecordsExtracted counts transaction records recovered from statements.
	RecordsExtracted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "releve_records_extracted_total",
			Help: "Total number of transaction records extracted",
		},
	)

	// DegradedFields counts fields that fell back to a default value,
	// labeled by field name (date, credit, debit, balance).
	DegradedFields = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "releve_degraded_fields_total",
			Help: "Total number of fields that could not be parsed and kept their default",
		},
		[]string{"field"},
	)

	// AnalyzeDuration observes end-to-end analysis latency.
	AnalyzeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "releve_analyze_duration_seconds",
			Help:    "Statement analysis duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// CacheHits counts analysis cache hits and misses.
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "releve_analysis_cache_total",
			Help: "Analysis cache lookups by result",
		},
		[]string{"result"},
	)
)

// Tracer returns the tracer used by the statement services.
func Tracer() trace.Tracer {
	return otel.Tracer("releve")
}
