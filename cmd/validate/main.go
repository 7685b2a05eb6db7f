// Command validate checks a summary workbook against the export it was built
// from. It re-aggregates the CSV with the domain package and verifies the
// header layout, one row per identity, per-hour counts (blank read as zero)
// and that no zero is written as a literal "0".
//
// Usage:
//
//	go run ./cmd/validate \
//	  -csv Baixados/export_20240312_080000.csv \
//	  -xlsx Filtradas/Filtrada_12-03-2024.xlsx
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/couchcryptid/access-hourly-etl/internal/adapter/csvfile"
	"github.com/couchcryptid/access-hourly-etl/internal/adapter/xlsx"
	"github.com/couchcryptid/access-hourly-etl/internal/domain"
)

const identityCols = 3

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	csvPath := flag.String("csv", "", "source export (Latin-1, ';'-delimited)")
	xlsxPath := flag.String("xlsx", "", "summary workbook produced from the export")
	flag.Parse()

	if *csvPath == "" || *xlsxPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	os.Exit(run(os.Stdout, *csvPath, *xlsxPath))
}

func run(out io.Writer, csvPath, xlsxPath string) int {
	fmt.Fprintln(out, "=== Hourly Summary Validation ===")

	table, err := csvfile.Load(csvPath)
	if err != nil {
		fmt.Fprintf(out, "FATAL: load export: %v\n", err)
		return 1
	}
	want, err := domain.Aggregate(table)
	if err != nil {
		fmt.Fprintf(out, "FATAL: aggregate export: %v\n", err)
		return 1
	}
	sheet, err := xlsx.ReadSheet(xlsxPath)
	if err != nil {
		fmt.Fprintf(out, "FATAL: read workbook: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateLayout(sheet),
		validateIdentities(sheet, want),
		validateCounts(sheet, want),
		validateBlankZeros(sheet),
	}

	fmt.Fprintln(out)
	allPassed := true
	for _, p := range phases {
		status := "PASS"
		if !p.passed() {
			status = fmt.Sprintf("FAIL (%d errors)", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(out, "  %-28s %s\n", p.name, status)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Records: %d export rows, %d identities expected, %d workbook rows\n",
		want.Stats.Rows, len(want.Rows), max(len(sheet)-1, 0))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(out, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Fprintln(out, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(out, "\nValidation FAILED.")
	return 1
}

func validateLayout(sheet [][]string) *phase {
	p := &phase{name: "Workbook layout"}
	if len(sheet) == 0 {
		p.errorf("sheet %s is empty", xlsx.SheetName)
		return p
	}
	if got, want := sheet[0], domain.SummaryHeader(); !slices.Equal(got, want) {
		p.errorf("header = %v, want %v", got, want)
	}
	return p
}

// sheetIdentity reads the identity columns of a data row. Numeric cells come
// back as their display text, which is already the aggregator's plain decimal
// form; text cells are kept as written.
func sheetIdentity(row []string) domain.Identity {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return domain.Identity{
		Station:  strings.TrimSpace(cell(0)),
		UserID:   strings.TrimSpace(cell(1)),
		UserName: strings.TrimSpace(cell(2)),
	}
}

func validateIdentities(sheet [][]string, want domain.Summary) *phase {
	p := &phase{name: "One row per identity"}
	if len(sheet) == 0 {
		return p
	}

	expected := make(map[domain.Identity]bool, len(want.Rows))
	for _, r := range want.Rows {
		expected[r.Identity] = true
	}

	seen := make(map[domain.Identity]int)
	for i, row := range sheet[1:] {
		id := sheetIdentity(row)
		if prev, dup := seen[id]; dup {
			p.errorf("row %d duplicates row %d: %+v", i+2, prev, id)
			continue
		}
		seen[id] = i + 2
		if !expected[id] {
			p.errorf("row %d: identity %+v not in export", i+2, id)
		}
	}
	for _, r := range want.Rows {
		if _, ok := seen[r.Identity]; !ok {
			p.errorf("identity %+v missing from workbook", r.Identity)
		}
	}
	return p
}

func validateCounts(sheet [][]string, want domain.Summary) *phase {
	p := &phase{name: "Hour bucket counts"}
	if len(sheet) == 0 {
		return p
	}

	expected := make(map[domain.Identity]domain.SummaryRow, len(want.Rows))
	for _, r := range want.Rows {
		expected[r.Identity] = r
	}

	for i, row := range sheet[1:] {
		id := sheetIdentity(row)
		exp, ok := expected[id]
		if !ok {
			continue
		}
		for h := 0; h < domain.HourBuckets; h++ {
			got, err := countCell(row, identityCols+h)
			if err != nil {
				p.errorf("row %d %s: %v", i+2, domain.HourLabel(h), err)
				continue
			}
			if got != exp.Hours[h] {
				p.errorf("row %d %s: got %d, want %d", i+2, domain.HourLabel(h), got, exp.Hours[h])
			}
		}
	}
	return p
}

// countCell reads an hour cell; a blank or absent cell is zero.
func countCell(row []string, i int) (int, error) {
	if i >= len(row) || strings.TrimSpace(row[i]) == "" {
		return 0, nil
	}
	return strconv.Atoi(strings.TrimSpace(row[i]))
}

func validateBlankZeros(sheet [][]string) *phase {
	p := &phase{name: "Zero counts blank"}
	if len(sheet) == 0 {
		return p
	}
	for i, row := range sheet[1:] {
		for j := identityCols; j < len(row); j++ {
			if strings.TrimSpace(row[j]) == "0" {
				p.errorf("row %d %s: zero written as %q", i+2, domain.HourLabel(j-identityCols), row[j])
			}
		}
	}
	return p
}
