package statement

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// TokenSource supplies positioned text tokens per page in document reading
// order. A source that cannot decode its document reports a single error;
// the core never looks inside the document format itself.
type TokenSource interface {
	PageCount() int
	PageTokens(page int) ([]Token, error)
}

// Parse runs the full extraction over every page of the source and returns
// records in page order, then in-page positional order. Pages are segmented
// and classified in parallel; results are re-joined in ascending page order
// before being returned, because output ordering is an observable contract.
//
// Row-level failures degrade fields and never abort the parse. Only a token
// source failure makes the whole operation fail, with zero records.
func Parse(ctx context.Context, src TokenSource) ([]Transaction, error) {
	pageCount := src.PageCount()
	if pageCount == 0 {
		return nil, nil
	}

	perPage := make([][]Transaction, pageCount)
	pageErrs := make([]error, pageCount)

	workers := runtime.GOMAXPROCS(0)
	if workers > pageCount {
		workers = pageCount
	}

	pages := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for page := range pages {
				if ctx.Err() != nil {
					return
				}
				perPage[page], pageErrs[page] = parsePage(src, page)
			}
		}()
	}

	for page := 0; page < pageCount; page++ {
		select {
		case pages <- page:
		case <-ctx.Done():
			close(pages)
			wg.Wait()
			return nil, ctx.Err()
		}
	}
	close(pages)
	wg.Wait()

	// A cancelled context may have made workers skip pages; those pages
	// carry no error, so the result would pass as complete. All pages or
	// nothing.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for page, err := range pageErrs {
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}
	}

	var records []Transaction
	for _, txs := range perPage {
		records = append(records, txs...)
	}
	return records, nil
}

func parsePage(src TokenSource, page int) ([]Transaction, error) {
	tokens, err := src.PageTokens(page)
	if err != nil {
		return nil, fmt.Errorf("extract tokens: %w", err)
	}

	groups := SegmentPage(page, tokens)
	if len(groups) == 0 {
		return nil, nil
	}

	records := make([]Transaction, 0, len(groups))
	for _, g := range groups {
		records = append(records, BuildTransaction(g))
	}
	return records, nil
}
