package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/access-hourly-etl/internal/domain"
	"github.com/couchcryptid/access-hourly-etl/internal/observability"
)

// Extractor produces the loaded export for this run.
type Extractor interface {
	Extract(ctx context.Context) (domain.Table, error)
}

// Transformer pivots the export into an hourly summary.
type Transformer interface {
	Transform(ctx context.Context, t domain.Table) (domain.Summary, error)
}

// Loader persists the summary and returns where it was written.
type Loader interface {
	Load(ctx context.Context, s domain.Summary) (string, error)
}

// Pipeline orchestrates one extract-transform-load pass.
type Pipeline struct {
	extractor   Extractor
	transformer Transformer
	loader      Loader
	logger      *slog.Logger
	metrics     *observability.Metrics
}

// New creates a Pipeline with the given stages and observability.
func New(e Extractor, t Transformer, l Loader, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		loader:      l,
		logger:      logger,
		metrics:     metrics,
	}
}

// Run executes the stages in order and returns the path of the written
// workbook. The first error aborts the run; nothing is retried and no partial
// output is written.
func (p *Pipeline) Run(ctx context.Context) (string, error) {
	start := time.Now()

	table, err := p.extractor.Extract(ctx)
	if err != nil {
		return "", fmt.Errorf("extract: %w", err)
	}
	p.metrics.RowsRead.Add(float64(len(table.Rows)))

	if err := ctx.Err(); err != nil {
		return "", err
	}
	summary, err := p.transformer.Transform(ctx, table)
	if err != nil {
		return "", fmt.Errorf("transform: %w", err)
	}
	p.metrics.TimestampsUnparsed.Add(float64(summary.Stats.UnparsedTimestamps))

	if err := ctx.Err(); err != nil {
		return "", err
	}
	path, err := p.loader.Load(ctx, summary)
	if err != nil {
		return "", fmt.Errorf("load: %w", err)
	}
	p.metrics.IdentitiesWritten.Add(float64(len(summary.Rows)))

	elapsed := time.Since(start)
	p.metrics.RunDuration.Set(elapsed.Seconds())
	p.metrics.LastSuccess.Set(float64(domain.Clock().Now().Unix()))

	p.logger.Info("processed file saved", "path", path, "identities", len(summary.Rows), "duration", elapsed)
	return path, nil
}
