// Package xlsx writes hourly summaries as Excel workbooks.
package xlsx

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/couchcryptid/access-hourly-etl/internal/domain"
)

// SheetName is the single sheet of every summary workbook.
const SheetName = "Filtrada"

const defaultSheet = "Sheet1"

// FileName returns the output file name for a run on the given day,
// e.g. "Filtrada_05-03-2024.xlsx".
func FileName(day time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", SheetName, day.Format("02-01-2006"))
}

// Writer saves summaries into a fixed output directory.
// It implements pipeline.Loader.
type Writer struct {
	dir    string
	logger *slog.Logger
}

// NewWriter creates a Writer for dir. The directory must already exist.
func NewWriter(dir string, logger *slog.Logger) *Writer {
	return &Writer{dir: dir, logger: logger}
}

// Load writes the summary to <dir>/Filtrada_<DD-MM-YYYY>.xlsx, replacing a
// file from an earlier run on the same day, and returns the path written.
func (w *Writer) Load(ctx context.Context, summary domain.Summary) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	info, err := os.Stat(w.dir)
	if err != nil {
		return "", fmt.Errorf("%w: output dir: %w", domain.ErrWriteFailure, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: output dir %s is not a directory", domain.ErrWriteFailure, w.dir)
	}

	path := filepath.Join(w.dir, FileName(domain.Clock().Now()))
	if err := writeWorkbook(path, summary); err != nil {
		return "", fmt.Errorf("%w: %s: %w", domain.ErrWriteFailure, path, err)
	}

	w.logger.Debug("workbook written", "path", path, "rows", len(summary.Rows))
	return path, nil
}

func writeWorkbook(path string, summary domain.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	header := domain.SummaryHeader()
	for i, name := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, name); err != nil {
			return err
		}
	}
	first, _ := excelize.CoordinatesToCellName(1, 1)
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(SheetName, first, last, headerStyle); err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for i, row := range Rows(summary) {
		for j, v := range row {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

// Rows lays the summary out as cell values in SummaryHeader order. Station and
// user id are numbers when their whole column is numeric; blank hour counts
// are nil.
func Rows(summary domain.Summary) [][]any {
	stations := make([]string, len(summary.Rows))
	users := make([]string, len(summary.Rows))
	for i, r := range summary.Rows {
		stations[i] = r.Station
		users[i] = r.UserID
	}
	stationCol := domain.ClassifyColumn(domain.ColStation, stations)
	userCol := domain.ClassifyColumn(domain.ColUserID, users)

	out := make([][]any, len(summary.Rows))
	for i, r := range summary.Rows {
		row := make([]any, 0, 3+domain.HourBuckets)
		row = append(row, stationCol.Value(i), userCol.Value(i), r.UserName)
		for _, c := range r.Counts() {
			if !c.Valid {
				row = append(row, nil)
				continue
			}
			row = append(row, c.N)
		}
		out[i] = row
	}
	return out
}
