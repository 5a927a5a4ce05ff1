package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	datalake "github.com/miorlan/datalake-validator"
	"github.com/miorlan/datalake-validator/internal/domain"
	"github.com/miorlan/datalake-validator/internal/infrastructure"
)

var rule = strings.Repeat("=", 80)

// report - содержимое файла --report
type report struct {
	Results []datalake.ValidationResult `json:"results" yaml:"results"`
	Summary datalake.Summary            `json:"summary" yaml:"summary"`
}

// printResults печатает валидные и невалидные файлы раздельно
func printResults(w io.Writer, results []datalake.ValidationResult) {
	var valid, invalid []datalake.ValidationResult
	for _, r := range results {
		if r.IsValid {
			valid = append(valid, r)
		} else {
			invalid = append(invalid, r)
		}
	}

	fmt.Fprintf(w, "\n%s\nVALIDATION RESULTS\n%s\n", rule, rule)

	if len(valid) > 0 {
		fmt.Fprintf(w, "\n✓ VALID FILES (%d):\n", len(valid))
		for _, r := range valid {
			fmt.Fprintf(w, "  %s → %s\n", r.FilePath, r.SchemaName)
		}
	}

	if len(invalid) > 0 {
		fmt.Fprintf(w, "\n✗ INVALID FILES (%d):\n", len(invalid))
		for _, r := range invalid {
			fmt.Fprintf(w, "  %s → %s\n", r.FilePath, r.SchemaName)
			for _, e := range r.Errors {
				fmt.Fprintf(w, "    ERROR: %s\n", e)
			}
		}
	}
}

// printSummary печатает итоговую статистику
func printSummary(w io.Writer, s datalake.Summary) {
	fmt.Fprintf(w, "\n%s\nVALIDATION SUMMARY\n%s\n", rule, rule)
	fmt.Fprintf(w, "Total files processed: %d\n", s.TotalFiles)
	fmt.Fprintf(w, "Valid files: %d\n", s.ValidFiles)
	fmt.Fprintf(w, "Invalid files: %d\n", s.InvalidFiles)
	fmt.Fprintf(w, "Success rate: %.1f%%\n", s.SuccessRate)
	fmt.Fprintln(w, rule)
}

// printSchemas печатает отсортированный список схем
func printSchemas(w io.Writer, schemas []string) {
	sorted := append([]string(nil), schemas...)
	sort.Strings(sorted)

	fmt.Fprintf(w, "\nAvailable schemas (%d):\n", len(sorted))
	for _, s := range sorted {
		fmt.Fprintf(w, "  %s\n", s)
	}
}

// writeReport сохраняет результаты в YAML или JSON в зависимости от расширения
func writeReport(path string, results []datalake.ValidationResult, summary datalake.Summary) error {
	format := domain.DetectFormat(path)
	if format != domain.FormatYAML {
		format = domain.FormatJSON
	}

	if results == nil {
		results = []datalake.ValidationResult{}
	}

	data, err := infrastructure.NewParser().Marshal(report{Results: results, Summary: summary}, format)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err := infrastructure.NewFileWriter().Write(path, data); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
