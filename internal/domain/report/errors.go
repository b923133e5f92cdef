package report

import "errors"

// ErrAnalysisNotFound is returned when an analysis ID is unknown or its
// cache entry has expired.
var ErrAnalysisNotFound = errors.New("analysis not found")
