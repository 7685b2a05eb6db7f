package csvfile_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/access-hourly-etl/internal/adapter/csvfile"
	"github.com/couchcryptid/access-hourly-etl/internal/domain"
)

func TestSource_Extract(t *testing.T) {
	dir := t.TempDir()
	older := filepath.Join(dir, "old.csv")
	newer := filepath.Join(dir, "new.csv")
	require.NoError(t, os.WriteFile(older, latin1(t, "ESTAÇÃO\nold\n"), 0o644))
	require.NoError(t, os.WriteFile(newer, latin1(t, "ESTAÇÃO\nnew\n"), 0o644))
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(older, past, past))

	tbl, err := csvfile.NewSource(dir, slog.Default()).Extract(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{domain.ColStation}, tbl.Header)
	assert.Equal(t, [][]string{{"new"}}, tbl.Rows)
}

func TestSource_Extract_Empty(t *testing.T) {
	_, err := csvfile.NewSource(t.TempDir(), slog.Default()).Extract(context.Background())
	require.ErrorIs(t, err, domain.ErrNoInputFileFound)
}

func TestSource_Extract_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := csvfile.NewSource(t.TempDir(), slog.Default()).Extract(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
