// Command releve analyzes a bank statement PDF from the command line and
// prints or exports the results.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/availlac/releve/internal/domain/categorize"
	"github.com/availlac/releve/internal/domain/export"
	"github.com/availlac/releve/internal/domain/report"
	"github.com/availlac/releve/pkg/money"
)

func main() {
	var (
		outPath      = flag.String("o", "", "export path (.csv, .xlsx or .json)")
		dateFrom     = flag.String("from", "", "keep records on or after this date (YYYY-MM-DD)")
		dateTo       = flag.String("to", "", "keep records on or before this date (YYYY-MM-DD)")
		categories   = flag.String("categories", "", "comma-separated category filter")
		search       = flag.String("search", "", "description substring filter")
		typeContains = flag.String("type", "", "transaction type substring filter (e.g. carte)")
		verbose      = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] statement.pdf\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	spec, err := buildFilter(*dateFrom, *dateTo, *categories, *search, *typeContains)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(logger, flag.Arg(0), *outPath, spec); err != nil {
		logger.Error("analysis failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func buildFilter(from, to, categories, search, typeContains string) (report.FilterSpec, error) {
	spec := report.FilterSpec{SearchText: search, TypeContains: typeContains}

	if from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return spec, fmt.Errorf("invalid -from date %q, expected YYYY-MM-DD", from)
		}
		spec.DateFrom = t
	}
	if to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return spec, fmt.Errorf("invalid -to date %q, expected YYYY-MM-DD", to)
		}
		spec.DateTo = t
	}
	if categories != "" {
		for _, c := range strings.Split(categories, ",") {
			spec.Categories = append(spec.Categories, strings.TrimSpace(c))
		}
	}
	return spec, nil
}

func run(logger *slog.Logger, path, outPath string, spec report.FilterSpec) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	svc := report.NewService(logger, categorize.NewEngine(), 0, 0)
	analysis, err := svc.Analyze(context.Background(), data)
	if err != nil {
		return err
	}

	result := svc.Report(analysis, spec)

	if outPath == "" {
		printSummary(result)
		return nil
	}
	return writeOutput(outPath, result)
}

func writeOutput(path string, result report.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return export.WriteCSV(f, result.Records)
	case ".xlsx":
		return export.WriteXLSX(f, result.Records, result.ByCategory)
	case ".json":
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	default:
		return fmt.Errorf("unsupported export format %q", filepath.Ext(path))
	}
}

func printSummary(result report.Result) {
	fmt.Printf("Records:       %d\n", result.Overview.RecordCount)
	fmt.Printf("Total spend:   %s\n", money.Display(result.Overview.TotalSpend))
	fmt.Printf("Total income:  %s\n", money.Display(result.Overview.TotalIncome))
	fmt.Printf("Final balance: %s\n", money.Display(result.Overview.FinalBalance))

	if len(result.ByCategory) == 0 {
		return
	}
	fmt.Println("\nSpending by category:")
	for _, row := range result.ByCategory {
		line := fmt.Sprintf("  %-16s %12s  x%d", row.Key, money.Display(row.Total), row.Count)
		if row.Percentage != nil {
			line += fmt.Sprintf("  (%s%%)", row.Percentage.StringFixed(1))
		}
		fmt.Println(line)
	}
}
