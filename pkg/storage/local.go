package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalArchive implements Archive on the local filesystem. Each document is
// stored as <id>.pdf next to a <id>.json metadata sidecar.
type LocalArchive struct {
	basePath string
}

// NewLocalArchive creates the archive directory if needed.
func NewLocalArchive(basePath string) (*LocalArchive, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}
	return &LocalArchive{basePath: basePath}, nil
}

func (a *LocalArchive) documentPath(id uuid.UUID) string {
	return filepath.Join(a.basePath, id.String()+".pdf")
}

func (a *LocalArchive) metaPath(id uuid.UUID) string {
	return filepath.Join(a.basePath, id.String()+".json")
}

// Store persists a document under its analysis ID.
func (a *LocalArchive) Store(ctx context.Context, analysisID uuid.UUID, name string, r io.Reader) (*DocumentInfo, error) {
	path := a.documentPath(analysisID)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create document file: %w", err)
	}
	defer f.Close()

	size, err := io.Copy(f, r)
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to write document: %w", err)
	}

	info := &DocumentInfo{
		AnalysisID: analysisID,
		Name:       name,
		Size:       size,
		StoredAt:   time.Now().UTC(),
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(a.metaPath(analysisID), data, 0o644); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to write metadata: %w", err)
	}

	return info, nil
}

// Open returns the document bytes for re-analysis or download.
func (a *LocalArchive) Open(ctx context.Context, analysisID uuid.UUID) (io.ReadCloser, *DocumentInfo, error) {
	info, err := a.info(analysisID)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(a.documentPath(analysisID))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open document: %w", err)
	}
	return f, info, nil
}

// Delete removes an archived document.
func (a *LocalArchive) Delete(ctx context.Context, analysisID uuid.UUID) error {
	if err := os.Remove(a.documentPath(analysisID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	os.Remove(a.metaPath(analysisID))
	return nil
}

// List returns every archived document, newest first.
func (a *LocalArchive) List(ctx context.Context) ([]*DocumentInfo, error) {
	entries, err := os.ReadDir(a.basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to list archive: %w", err)
	}

	infos := make([]*DocumentInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		id, err := uuid.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			continue
		}
		info, err := a.info(id)
		if err != nil {
			continue
		}
		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].StoredAt.After(infos[j].StoredAt)
	})
	return infos, nil
}

func (a *LocalArchive) info(id uuid.UUID) (*DocumentInfo, error) {
	data, err := os.ReadFile(a.metaPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("document not found: %s", id)
		}
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}

	var info DocumentInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}
	return &info, nil
}
