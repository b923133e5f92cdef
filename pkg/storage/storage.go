// Package storage archives analyzed statement documents so a report can be
// re-derived after the in-memory analysis expires.
package storage

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// DocumentInfo contains metadata about an archived document.
type DocumentInfo struct {
	AnalysisID uuid.UUID `json:"analysis_id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	StoredAt   time.Time `json:"stored_at"`
}

// Archive stores statement documents keyed by analysis ID.
type Archive interface {
	// Store persists a document under its analysis ID.
	Store(ctx context.Context, analysisID uuid.UUID, name string, r io.Reader) (*DocumentInfo, error)

	// Open returns the document bytes for re-analysis or download.
	Open(ctx context.Context, analysisID uuid.UUID) (io.ReadCloser, *DocumentInfo, error)

	// Delete removes an archived document.
	Delete(ctx context.Context, analysisID uuid.UUID) error

	// List returns every archived document, newest first.
	List(ctx context.Context) ([]*DocumentInfo, error)
}
