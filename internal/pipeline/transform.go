package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/access-hourly-etl/internal/domain"
)

// HourlyTransformer implements Transformer using domain.Aggregate.
type HourlyTransformer struct {
	logger *slog.Logger
}

// NewTransformer creates an HourlyTransformer.
func NewTransformer(logger *slog.Logger) *HourlyTransformer {
	return &HourlyTransformer{logger: logger}
}

func (t *HourlyTransformer) Transform(_ context.Context, table domain.Table) (domain.Summary, error) {
	summary, err := domain.Aggregate(table)
	if err != nil {
		return domain.Summary{}, err
	}

	if n := summary.Stats.UnparsedTimestamps; n > 0 {
		t.logger.Warn("rows with unparseable DATA left out of hour buckets",
			"rows", n,
			"total_rows", summary.Stats.Rows,
		)
	}
	t.logger.Debug("aggregated",
		"rows", summary.Stats.Rows,
		"identities", summary.Stats.Identities,
		"parsed_timestamps", summary.Stats.ParsedTimestamps,
	)
	return summary, nil
}
