package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numericRe matches plain and scientific decimal literals. It deliberately
// rejects the "Inf", "NaN" and hex forms strconv.ParseFloat would accept.
var numericRe = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// integerRe matches integer literals, which are canonicalized without a
// float round trip so long badge numbers keep every digit.
var integerRe = regexp.MustCompile(`^[+-]?\d+$`)

// nullMarkers are cell values exporters use for "no value".
var nullMarkers = map[string]struct{}{
	"":         {},
	"NA":       {},
	"N/A":      {},
	"n/a":      {},
	"#N/A":     {},
	"<NA>":     {},
	"NULL":     {},
	"null":     {},
	"NaN":      {},
	"nan":      {},
	"None":     {},
	"-NaN":     {},
	"-nan":     {},
	"#NA":      {},
	"#N/A N/A": {},
}

// IsNull reports whether a cell holds no value.
func IsNull(s string) bool {
	_, ok := nullMarkers[strings.TrimSpace(s)]
	return ok
}

// CanonicalText returns the textual form used for grouping: trimmed, and for
// numeric-looking values the plain decimal form ("007" -> "7", "1e3" -> "1000",
// "42.0" -> "42"). Anything else is returned trimmed but otherwise untouched.
// Aggregate applies it only to columns whose values are all numeric-looking.
func CanonicalText(s string) string {
	s = strings.TrimSpace(s)
	if !numericRe.MatchString(s) {
		return s
	}
	if integerRe.MatchString(s) {
		return canonicalInteger(s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return s
	}
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func canonicalInteger(s string) string {
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	if neg {
		return "-" + s
	}
	return s
}

// ColumnKind tells how a column is written out.
type ColumnKind int

const (
	// KindText columns are written as strings.
	KindText ColumnKind = iota
	// KindNumeric columns are written as numbers.
	KindNumeric
)

func (k ColumnKind) String() string {
	if k == KindNumeric {
		return "numeric"
	}
	return "text"
}

// Column is a typed output column, decided once for all of its values.
// Numbers is set only for KindNumeric columns.
type Column struct {
	Name    string
	Kind    ColumnKind
	Text    []string
	Numbers []float64
}

// Value returns the cell at row i as the type the column was classified as.
func (c Column) Value(i int) any {
	if c.Kind == KindNumeric {
		f := c.Numbers[i]
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int64(f)
		}
		return f
	}
	return c.Text[i]
}

// ClassifyColumn makes a numeric column when every value converts to a
// float64 and back to the same canonical text; otherwise the column stays
// text. An empty column is text.
func ClassifyColumn(name string, values []string) Column {
	col := Column{Name: name, Kind: KindText, Text: values}
	if len(values) == 0 {
		return col
	}

	numbers := make([]float64, len(values))
	for i, v := range values {
		f, ok := losslessFloat(v)
		if !ok {
			return col
		}
		numbers[i] = f
	}
	col.Kind = KindNumeric
	col.Numbers = numbers
	return col
}

func losslessFloat(s string) (float64, bool) {
	canonical := CanonicalText(s)
	if !numericRe.MatchString(canonical) {
		return 0, false
	}
	f, err := strconv.ParseFloat(canonical, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	if strconv.FormatFloat(f, 'f', -1, 64) != canonical {
		return 0, false
	}
	return f, true
}
