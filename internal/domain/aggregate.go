package domain

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ValidateColumns checks the required columns in order and reports the first
// one missing from the header.
func ValidateColumns(t Table) error {
	for _, name := range RequiredColumns {
		if t.ColumnIndex(name) < 0 {
			return &MissingColumnError{Name: name}
		}
	}
	return nil
}

// Aggregate pivots the export into one row per identity with per-hour event
// counts. Identities keep first-occurrence order. Rows whose timestamp does
// not parse still define an identity but add to no bucket.
func Aggregate(t Table) (Summary, error) {
	if err := ValidateColumns(t); err != nil {
		return Summary{}, err
	}

	ids := identities(t)
	dateIdx := t.ColumnIndex(ColDate)

	stats := Stats{Rows: len(t.Rows)}
	index := make(map[Identity]int)
	rows := make([]SummaryRow, 0)

	for i, rec := range t.Rows {
		id := ids[i]
		pos, ok := index[id]
		if !ok {
			pos = len(rows)
			index[id] = pos
			rows = append(rows, SummaryRow{Identity: id})
		}

		ts, ok := ParseTimestamp(cell(rec, dateIdx))
		if !ok {
			stats.UnparsedTimestamps++
			continue
		}
		stats.ParsedTimestamps++
		rows[pos].Hours[ts.Hour()]++
	}

	stats.Identities = len(rows)
	return Summary{Rows: rows, Stats: stats}, nil
}

// identities builds the grouping key of every row. A null name falls back to
// the row's user id. Each field is canonicalized per column: a column whose
// values are all numeric-looking gets CanonicalText, any other column is only
// trimmed, so "0123" survives next to "A7".
func identities(t Table) []Identity {
	var (
		nameIdx    = t.ColumnIndex(ColUserName)
		userIdx    = t.ColumnIndex(ColUserID)
		stationIdx = t.ColumnIndex(ColStation)
	)

	stations := columnValues(t, stationIdx)
	users := columnValues(t, userIdx)
	canonicalColumn(stations)
	canonicalColumn(users)

	names := columnValues(t, nameIdx)
	for i, name := range names {
		if IsNull(name) {
			names[i] = users[i]
		}
	}
	canonicalColumn(names)

	out := make([]Identity, len(t.Rows))
	for i := range out {
		out[i] = Identity{Station: stations[i], UserID: users[i], UserName: names[i]}
	}
	return out
}

func columnValues(t Table, idx int) []string {
	values := make([]string, len(t.Rows))
	for i, rec := range t.Rows {
		values[i] = cell(rec, idx)
	}
	return values
}

// canonicalColumn rewrites values in place to their textual form.
func canonicalColumn(values []string) {
	numeric := len(values) > 0
	for i, v := range values {
		values[i] = strings.TrimSpace(v)
		if !numericRe.MatchString(values[i]) {
			numeric = false
		}
	}
	if !numeric {
		return
	}
	for i, v := range values {
		values[i] = CanonicalText(v)
	}
}

func cell(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}

// dateLayouts are the export's own day-first layouts, tried before the
// lenient parser. Single-digit day, month and hour are accepted.
var dateLayouts = []string{
	"2/1/2006 15:04:05", "2/1/2006 15:04", "2/1/2006",
	"2-1-2006 15:04:05", "2-1-2006 15:04", "2-1-2006",
	"2.1.2006 15:04:05", "2.1.2006 15:04", "2.1.2006",
}

// timeLayouts cover cells holding only a time of day.
var timeLayouts = []string{"15:04:05", "15:04"}

// ParseTimestamp parses a DATA cell. Day-first layouts with '/', '-' or '.'
// separators and bare times of day are tried first; anything else goes to a
// lenient parser (ISO 8601, month-first when day-first is impossible, named
// months). Bare digit strings are rejected rather than read as Unix epochs.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || integerRe.MatchString(s) {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}

	ts, err := dateparse.ParseAny(s,
		dateparse.PreferMonthFirst(false),
		dateparse.RetryAmbiguousDateWithSwap(true),
	)
	if err != nil || ts.Year() == 0 {
		return time.Time{}, false
	}
	return ts, true
}
