package csvfile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/couchcryptid/access-hourly-etl/internal/adapter/csvfile"
	"github.com/couchcryptid/access-hourly-etl/internal/domain"
)

// latin1 encodes s the way the terminal software writes exports.
func latin1(t *testing.T, s string) []byte {
	t.Helper()
	b, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return b
}

func writeExport(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestLoad_Latin1Export(t *testing.T) {
	path := writeExport(t, latin1(t,
		"USUARIO;NOME USUARIO;DATA;ESTAÇÃO;EVENTO\r\n"+
			"7;João Conceição;12/03/2024 08:15:00;1;ACESSO\r\n"+
			"8;;12/03/2024 09:00:00;2\r\n"))

	tbl, err := csvfile.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"USUARIO", "NOME USUARIO", "DATA", "ESTACAO", "EVENTO"}, tbl.Header)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "João Conceição", tbl.Rows[0][1], "cells are decoded but not folded")
	assert.Equal(t, []string{"8", "", "12/03/2024 09:00:00", "2", ""}, tbl.Rows[1], "short rows padded")
}

func TestLoad_HeaderOnly(t *testing.T) {
	tbl, err := csvfile.Load(writeExport(t, []byte("USUARIO;NOME USUARIO;DATA;ESTACAO\n")))
	require.NoError(t, err)
	assert.Len(t, tbl.Header, 4)
	assert.Empty(t, tbl.Rows)
}

func TestLoad_EmptyHeaderNamePreserved(t *testing.T) {
	tbl, err := csvfile.Load(writeExport(t, []byte("USUARIO;;DATA\n1;x;y\n")))
	require.NoError(t, err)
	assert.Equal(t, []string{"USUARIO", "", "DATA"}, tbl.Header)
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{"empty file", nil},
		{"too many fields", []byte("A;B\n1;2;3\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := csvfile.Load(writeExport(t, tt.content))
			require.ErrorIs(t, err, domain.ErrMalformedInput)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := csvfile.Load(filepath.Join(t.TempDir(), "gone.csv"))
	require.ErrorIs(t, err, domain.ErrMalformedInput)
}

func TestRead_QuotedSeparator(t *testing.T) {
	tbl, err := csvfile.Read(bytes.NewReader([]byte("A;B\n\"x;y\";z\n")))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"x;y", "z"}}, tbl.Rows)
}
