package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/couchcryptid/access-hourly-etl/internal/domain"
)

// Separator is the field delimiter of the exports.
const Separator = ';'

// Load reads a Latin-1, semicolon-delimited export. The header is
// ASCII-folded; cells are returned as decoded. Short rows are padded with
// empty cells; a row with more fields than the header is malformed.
func Load(path string) (domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("%w: open %s: %w", domain.ErrMalformedInput, path, err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return domain.Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read parses an export from r. See Load.
func Read(r io.Reader) (domain.Table, error) {
	reader := csv.NewReader(transform.NewReader(r, charmap.ISO8859_1.NewDecoder()))
	reader.Comma = Separator
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return domain.Table{}, fmt.Errorf("%w: empty file", domain.ErrMalformedInput)
	}
	if err != nil {
		return domain.Table{}, fmt.Errorf("%w: header: %w", domain.ErrMalformedInput, err)
	}

	t := domain.Table{Header: domain.NormalizeHeaders(header)}
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.Table{}, fmt.Errorf("%w: %w", domain.ErrMalformedInput, err)
		}
		if len(rec) > len(header) {
			line, _ := reader.FieldPos(0)
			return domain.Table{}, fmt.Errorf("%w: line %d: expected %d fields, saw %d",
				domain.ErrMalformedInput, line, len(header), len(rec))
		}
		for len(rec) < len(header) {
			rec = append(rec, "")
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}
