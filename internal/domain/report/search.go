package report

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/simple"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/availlac/releve/internal/domain/statement"
)

// suggestDoc is the indexed shape of one transaction description.
type suggestDoc struct {
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Suggestion is one autocomplete hit for a description query.
type Suggestion struct {
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Score       float64 `json:"score"`
}

// SuggestIndex offers typo-tolerant description lookup over an analyzed
// statement. The index lives in memory and is rebuilt per statement; there
// is nothing durable to manage.
type SuggestIndex struct {
	mu    sync.RWMutex
	index bleve.Index

	// descriptions backs the fuzzy fallback when the full-text match
	// returns nothing (very short or heavily misspelled queries).
	descriptions []string
	categories   map[string]string
}

// NewSuggestIndex builds an in-memory index over the unique descriptions of
// the given records.
func NewSuggestIndex(records []statement.Transaction) (*SuggestIndex, error) {
	index, err := bleve.NewMemOnly(suggestMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create suggestion index: %w", err)
	}

	si := &SuggestIndex{
		index:      index,
		categories: make(map[string]string),
	}

	batch := index.NewBatch()
	for _, r := range records {
		desc := strings.TrimSpace(r.Description)
		if desc == "" {
			continue
		}
		if _, seen := si.categories[desc]; seen {
			continue
		}
		si.categories[desc] = r.Category
		si.descriptions = append(si.descriptions, desc)

		doc := suggestDoc{Description: desc, Category: r.Category}
		if err := batch.Index(desc, doc); err != nil {
			return nil, fmt.Errorf("failed to index description %q: %w", desc, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("failed to execute batch index: %w", err)
	}

	return si, nil
}

func suggestMapping() mapping.IndexMapping {
	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = simple.Name

	keywordFieldMapping := bleve.NewTextFieldMapping()
	keywordFieldMapping.Analyzer = keyword.Name

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("description", textFieldMapping)
	docMapping.AddFieldMappingsAt("category", keywordFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = docMapping
	indexMapping.DefaultAnalyzer = simple.Name
	return indexMapping
}

// Suggest returns up to limit descriptions matching the query, best first.
// The full-text match allows one edit of typo tolerance; when it comes back
// empty a rank-based fuzzy pass over the raw descriptions takes over.
func (si *SuggestIndex) Suggest(query string, limit int) ([]Suggestion, error) {
	si.mu.RLock()
	defer si.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	matchQuery := bleve.NewMatchQuery(query)
	matchQuery.SetFuzziness(1)

	searchRequest := bleve.NewSearchRequest(matchQuery)
	searchRequest.Size = limit
	searchRequest.Fields = []string{"description", "category"}

	searchResults, err := si.index.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("suggestion search failed: %w", err)
	}

	suggestions := make([]Suggestion, 0, len(searchResults.Hits))
	for _, hit := range searchResults.Hits {
		s := Suggestion{Score: hit.Score}
		if desc, ok := hit.Fields["description"].(string); ok {
			s.Description = desc
		}
		if cat, ok := hit.Fields["category"].(string); ok {
			s.Category = cat
		}
		suggestions = append(suggestions, s)
	}

	if len(suggestions) == 0 {
		suggestions = si.fuzzyFallback(query, limit)
	}
	return suggestions, nil
}

func (si *SuggestIndex) fuzzyFallback(query string, limit int) []Suggestion {
	ranks := fuzzy.RankFindNormalizedFold(query, si.descriptions)
	sort.Sort(ranks)

	out := make([]Suggestion, 0, limit)
	for _, r := range ranks {
		if len(out) == limit {
			break
		}
		out = append(out, Suggestion{
			Description: r.Target,
			Category:    si.categories[r.Target],
			Score:       1.0 / float64(1+r.Distance),
		})
	}
	return out
}

// DocumentCount reports the number of indexed descriptions.
func (si *SuggestIndex) DocumentCount() (uint64, error) {
	si.mu.RLock()
	defer si.mu.RUnlock()
	return si.index.DocCount()
}

// Close releases the underlying index.
func (si *SuggestIndex) Close() error {
	si.mu.Lock()
	defer si.mu.Unlock()
	if si.index != nil {
		return si.index.Close()
	}
	return nil
}
