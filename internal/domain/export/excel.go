package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/availlac/releve/internal/domain/report"
	"github.com/availlac/releve/internal/domain/statement"
	"github.com/availlac/releve/pkg/money"
)

const (
	recordsSheet    = "Transactions"
	aggregatesSheet = "Spending"
)

// WriteXLSX writes a workbook with a transactions sheet and a per-category
// spending sheet. Amount cells carry the locale display form.
func WriteXLSX(w io.Writer, records []statement.Transaction, aggregates []report.AggregateRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeRecordsSheet(f, records); err != nil {
		return err
	}
	if err := writeAggregatesSheet(f, aggregates); err != nil {
		return err
	}

	// Drop the default sheet excelize creates.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRecordsSheet(f *excelize.File, records []statement.Transaction) error {
	if _, err := f.NewSheet(recordsSheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", recordsSheet, err)
	}

	headers := []any{"Date", "Type", "Description", "Amount", "Balance", "Category", "Page"}
	if err := f.SetSheetRow(recordsSheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, r := range records {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{
			r.Date.String(),
			r.Type,
			r.Description,
			money.Display(r.Amount),
			money.DisplayPtr(r.Balance),
			r.Category,
			r.Page,
		}
		if err := f.SetSheetRow(recordsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	return nil
}

func writeAggregatesSheet(f *excelize.File, aggregates []report.AggregateRow) error {
	if _, err := f.NewSheet(aggregatesSheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", aggregatesSheet, err)
	}

	headers := []any{"Category", "Total", "Count", "Mean", "Share %"}
	if err := f.SetSheetRow(aggregatesSheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range aggregates {
		cell := fmt.Sprintf("A%d", i+2)
		values := []any{
			row.Key,
			money.Display(row.Total),
			row.Count,
			money.DisplayPtr(row.Mean),
		}
		if row.Percentage != nil {
			values = append(values, row.Percentage.String())
		} else {
			values = append(values, "")
		}
		if err := f.SetSheetRow(aggregatesSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	return nil
}
