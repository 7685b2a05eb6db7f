package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadSheet returns the cell text of the summary sheet, header first.
// Trailing blank cells of a row are omitted, as excelize does.
func ReadSheet(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", SheetName, err)
	}
	return rows, nil
}
