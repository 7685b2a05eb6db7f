package domain

import "fmt"

// Column names after ASCII folding.
const (
	ColUserName = "NOME USUARIO"
	ColUserID   = "USUARIO"
	ColDate     = "DATA"
	ColStation  = "ESTACAO"
)

// RequiredColumns lists the columns an export must carry, in the order they are checked.
var RequiredColumns = []string{ColUserName, ColUserID, ColDate, ColStation}

// HourBuckets is the number of hour-of-day buckets in a summary row.
const HourBuckets = 24

// HourLabel returns the bucket label for hour h, e.g. 8 -> "08:00-08:59".
func HourLabel(h int) string {
	return fmt.Sprintf("%02d:00-%02d:59", h, h)
}

// HourLabels returns the 24 bucket labels in hour order.
func HourLabels() []string {
	labels := make([]string, HourBuckets)
	for h := range labels {
		labels[h] = HourLabel(h)
	}
	return labels
}

// SummaryHeader is the output column layout: identity columns then hour buckets.
func SummaryHeader() []string {
	return append([]string{ColStation, ColUserID, ColUserName}, HourLabels()...)
}

// Table is a loaded export: ASCII-folded header plus raw string cells.
// Every row has exactly len(Header) cells.
type Table struct {
	Header []string
	Rows   [][]string
}

// ColumnIndex returns the position of the first column named name, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Identity is the (station, user id, user name) grouping key.
type Identity struct {
	Station  string
	UserID   string
	UserName string
}

// Count is an hourly count that may be blank. A blank count means zero.
type Count struct {
	N     int
	Valid bool
}

// NewCount returns a blank Count for zero and a valid Count otherwise.
func NewCount(n int) Count {
	if n == 0 {
		return Count{}
	}
	return Count{N: n, Valid: true}
}

// Int returns the count, 0 when blank.
func (c Count) Int() int {
	if !c.Valid {
		return 0
	}
	return c.N
}

// SummaryRow holds the hourly counts for one identity.
type SummaryRow struct {
	Identity
	Hours [HourBuckets]int
}

// Total returns the sum of all hour buckets.
func (r SummaryRow) Total() int {
	total := 0
	for _, n := range r.Hours {
		total += n
	}
	return total
}

// Counts returns the hour buckets with zeros blanked out.
func (r SummaryRow) Counts() [HourBuckets]Count {
	var out [HourBuckets]Count
	for h, n := range r.Hours {
		out[h] = NewCount(n)
	}
	return out
}

// Stats describes one aggregation run.
type Stats struct {
	Rows               int
	ParsedTimestamps   int
	UnparsedTimestamps int
	Identities         int
}

// Summary is the aggregated result, one row per identity in first-seen order.
type Summary struct {
	Rows  []SummaryRow
	Stats Stats
}
