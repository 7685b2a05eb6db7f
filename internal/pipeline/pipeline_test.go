package pipeline_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/access-hourly-etl/internal/domain"
	"github.com/couchcryptid/access-hourly-etl/internal/observability"
	"github.com/couchcryptid/access-hourly-etl/internal/pipeline"
)

// --- mocks ---

type mockExtractor struct {
	table domain.Table
	err   error
	calls int
}

func (m *mockExtractor) Extract(_ context.Context) (domain.Table, error) {
	m.calls++
	return m.table, m.err
}

type mockLoader struct {
	loaded []domain.Summary
	err    error
}

func (m *mockLoader) Load(_ context.Context, s domain.Summary) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.loaded = append(m.loaded, s)
	return "/out/Filtrada_05-03-2024.xlsx", nil
}

func testTable() domain.Table {
	return domain.Table{
		Header: []string{domain.ColUserID, domain.ColUserName, domain.ColDate, domain.ColStation},
		Rows: [][]string{
			{"7", "Ana", "2024-03-12 08:15:00", "A"},
			{"7", "Ana", "2024-03-12 08:45:00", "A"},
			{"7", "Ana", "invalid", "A"},
			{"8", "", "2024-03-12 14:00:00", "B"},
		},
	}
}

// --- tests ---

func TestPipeline_Run_HappyPath(t *testing.T) {
	now := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	domain.SetClock(clockwork.NewFakeClockAt(now))
	defer domain.SetClock(nil)

	ext := &mockExtractor{table: testTable()}
	ldr := &mockLoader{}
	metrics := observability.NewMetricsForTesting()

	p := pipeline.New(ext, pipeline.NewTransformer(slog.Default()), ldr, slog.Default(), metrics)

	path, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/out/Filtrada_05-03-2024.xlsx", path)
	assert.Equal(t, 1, ext.calls)

	require.Len(t, ldr.loaded, 1)
	sum := ldr.loaded[0]
	require.Len(t, sum.Rows, 2)
	assert.Equal(t, 2, sum.Rows[0].Hours[8])
	assert.Equal(t, "8", sum.Rows[1].UserName)
	assert.Equal(t, 1, sum.Rows[1].Hours[14])

	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.RowsRead))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.TimestampsUnparsed))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.IdentitiesWritten))
	assert.Equal(t, float64(now.Unix()), testutil.ToFloat64(metrics.LastSuccess))
}

func TestPipeline_Run_ExtractError(t *testing.T) {
	ext := &mockExtractor{err: domain.ErrNoInputFileFound}
	ldr := &mockLoader{}
	metrics := observability.NewMetricsForTesting()

	p := pipeline.New(ext, pipeline.NewTransformer(slog.Default()), ldr, slog.Default(), metrics)

	_, err := p.Run(context.Background())
	require.ErrorIs(t, err, domain.ErrNoInputFileFound)
	assert.Empty(t, ldr.loaded)
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.LastSuccess))
}

func TestPipeline_Run_MissingColumn(t *testing.T) {
	tbl := testTable()
	tbl.Header[3] = "ESTAAAO"
	ext := &mockExtractor{table: tbl}
	ldr := &mockLoader{}

	p := pipeline.New(ext, pipeline.NewTransformer(slog.Default()), ldr, slog.Default(), observability.NewMetricsForTesting())

	_, err := p.Run(context.Background())
	var mce *domain.MissingColumnError
	require.ErrorAs(t, err, &mce)
	assert.Equal(t, domain.ColStation, mce.Name)
	assert.Empty(t, ldr.loaded, "no partial output")
}

func TestPipeline_Run_LoadError(t *testing.T) {
	ext := &mockExtractor{table: testTable()}
	ldr := &mockLoader{err: domain.ErrWriteFailure}
	metrics := observability.NewMetricsForTesting()

	p := pipeline.New(ext, pipeline.NewTransformer(slog.Default()), ldr, slog.Default(), metrics)

	_, err := p.Run(context.Background())
	require.ErrorIs(t, err, domain.ErrWriteFailure)
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.IdentitiesWritten))
}

func TestPipeline_Run_CancelledBeforeLoad(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ext := &cancellingExtractor{table: testTable(), cancel: cancel}
	ldr := &mockLoader{}

	p := pipeline.New(ext, pipeline.NewTransformer(slog.Default()), ldr, slog.Default(), observability.NewMetricsForTesting())

	_, err := p.Run(ctx)
	require.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, ldr.loaded)
}

type cancellingExtractor struct {
	table  domain.Table
	cancel context.CancelFunc
}

func (c *cancellingExtractor) Extract(_ context.Context) (domain.Table, error) {
	c.cancel()
	return c.table, nil
}
