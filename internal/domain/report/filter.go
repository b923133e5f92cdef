// Package report filters, aggregates and summarizes extracted transactions
// for presentation. Everything here operates on read-only views: the
// underlying record sequence is never mutated.
package report

import (
	"sort"
	"strings"
	"time"

	"github.com/availlac/releve/internal/domain/statement"
)

// FilterSpec narrows a record set. Predicates are combined with AND; zero
// values disable their predicate.
type FilterSpec struct {
	DateFrom time.Time `json:"date_from,omitempty"`
	DateTo   time.Time `json:"date_to,omitempty"`

	// Categories keeps only records whose category is in the set.
	Categories []string `json:"categories,omitempty"`

	// SearchText is matched case-insensitively as a substring of the
	// description; empty matches everything.
	SearchText string `json:"search_text,omitempty"`

	// TypeContains keeps only records whose type contains the value,
	// case-insensitively (e.g. "carte" for card transactions only).
	TypeContains string `json:"type_contains,omitempty"`
}

// Apply returns the records that pass every predicate, preserving the input
// order (page order, in-page position). Callers needing calendar order must
// sort explicitly with SortByDate.
func Apply(records []statement.Transaction, spec FilterSpec) []statement.Transaction {
	var categorySet map[string]bool
	if len(spec.Categories) > 0 {
		categorySet = make(map[string]bool, len(spec.Categories))
		for _, c := range spec.Categories {
			categorySet[c] = true
		}
	}

	search := strings.ToLower(spec.SearchText)
	typeNeedle := strings.ToLower(spec.TypeContains)

	out := make([]statement.Transaction, 0, len(records))
	for _, r := range records {
		if !matchesDate(r.Date, spec.DateFrom, spec.DateTo) {
			continue
		}
		if categorySet != nil && !categorySet[r.Category] {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(r.Description), search) {
			continue
		}
		if typeNeedle != "" && !strings.Contains(strings.ToLower(r.Type), typeNeedle) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// matchesDate applies the inclusive [from,to] bound. A record whose date
// never resolved passes only when no bound is set: strict date handling is a
// consumer decision, not the resolver's.
func matchesDate(d statement.DateResult, from, to time.Time) bool {
	if from.IsZero() && to.IsZero() {
		return true
	}
	if !d.Resolved {
		return false
	}
	if !from.IsZero() && d.Time.Before(from) {
		return false
	}
	if !to.IsZero() && d.Time.After(to) {
		return false
	}
	return true
}

// SortByDate returns a new slice in ascending calendar order, dropping
// records whose date never resolved. The sort is stable, so records sharing
// a date keep their page/positional order.
func SortByDate(records []statement.Transaction) []statement.Transaction {
	out := make([]statement.Transaction, 0, len(records))
	for _, r := range records {
		if r.Date.Resolved {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Time.Before(out[j].Date.Time)
	})
	return out
}
