package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/access-hourly-etl/internal/adapter/csvfile"
	"github.com/couchcryptid/access-hourly-etl/internal/domain"
)

func testOptions() options {
	return options{
		rows:     300,
		users:    10,
		stations: 3,
		blankPct: 10,
		badPct:   5,
		day:      time.Date(2024, 3, 12, 0, 0, 0, 0, time.Local),
		seed:     7,
	}
}

func TestGenerate_LoadsAndAggregates(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, generate(&buf, testOptions()))

	tbl, err := csvfile.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"USUARIO", "NOME USUARIO", "DATA", "ESTACAO", "EVENTO"}, tbl.Header)
	assert.Len(t, tbl.Rows, 300)

	sum, err := domain.Aggregate(tbl)
	require.NoError(t, err)
	assert.NotEmpty(t, sum.Rows)
	assert.Equal(t, 300, sum.Stats.ParsedTimestamps+sum.Stats.UnparsedTimestamps)
}

func TestGenerate_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, generate(&a, testOptions()))
	require.NoError(t, generate(&b, testOptions()))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestGenerate_IsLatin1(t *testing.T) {
	var buf bytes.Buffer
	opts := testOptions()
	opts.rows = 0
	require.NoError(t, generate(&buf, opts))

	// "ESTAÇÃO" in Latin-1: Ç = 0xC7, Ã = 0xC3.
	assert.Contains(t, buf.String(), "ESTA\xc7\xc3O")
}
