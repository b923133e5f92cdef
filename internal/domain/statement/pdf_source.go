package statement

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PDFTokenSource adapts an in-memory PDF document to the TokenSource
// interface using positioned word extraction.
type PDFTokenSource struct {
	reader *pdf.Reader
}

// NewPDFTokenSource opens a PDF from its raw bytes. A document that cannot
// be opened fails here, once, with no tokens produced.
func NewPDFTokenSource(data []byte) (src *PDFTokenSource, err error) {
	// The pdf library panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			src = nil
			err = fmt.Errorf("open pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return &PDFTokenSource{reader: reader}, nil
}

// PageCount returns the number of pages in the document.
func (s *PDFTokenSource) PageCount() int {
	return s.reader.NumPage()
}

// PageTokens extracts positioned word tokens for a zero-based page index,
// row by row in reading order.
func (s *PDFTokenSource) PageTokens(page int) (tokens []Token, err error) {
	defer func() {
		if r := recover(); r != nil {
			tokens = nil
			err = fmt.Errorf("extract page %d: %v", page, r)
		}
	}()

	p := s.reader.Page(page + 1)
	if p.V.IsNull() {
		return nil, nil
	}

	rows, err := p.GetTextByRow()
	if err != nil {
		return nil, fmt.Errorf("read rows of page %d: %w", page, err)
	}

	for _, row := range rows {
		for _, word := range row.Content {
			if word.S == "" {
				continue
			}
			tokens = append(tokens, Token{
				X0:   word.X,
				Y0:   word.Y,
				X1:   word.X + word.W,
				Y1:   word.Y + word.FontSize,
				Text: word.S,
				Page: page,
			})
		}
	}
	return tokens, nil
}
