// Package export writes analysis results to CSV and XLSX files.
package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/availlac/releve/internal/domain/statement"
)

// csvRecord is the flat CSV shape of one transaction.
type csvRecord struct {
	Date        string `csv:"date"`
	Type        string `csv:"type"`
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
	Balance     string `csv:"balance"`
	Category    string `csv:"category"`
	Page        int    `csv:"page"`
}

// WriteCSV writes the records as CSV. Amounts keep their decimal string
// form; the balance column is empty when the statement printed none.
func WriteCSV(w io.Writer, records []statement.Transaction) error {
	rows := make([]csvRecord, 0, len(records))
	for _, r := range records {
		row := csvRecord{
			Date:        r.Date.String(),
			Type:        r.Type,
			Description: r.Description,
			Amount:      r.Amount.String(),
			Category:    r.Category,
			Page:        r.Page,
		}
		if r.Balance != nil {
			row.Balance = r.Balance.String()
		}
		rows = append(rows, row)
	}

	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}
