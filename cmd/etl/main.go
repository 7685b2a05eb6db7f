// Command etl summarizes the newest access-log export in the input folder
// into a dated hourly workbook in the output folder.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/access-hourly-etl/internal/adapter/csvfile"
	"github.com/couchcryptid/access-hourly-etl/internal/adapter/xlsx"
	"github.com/couchcryptid/access-hourly-etl/internal/config"
	"github.com/couchcryptid/access-hourly-etl/internal/observability"
	"github.com/couchcryptid/access-hourly-etl/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := pipeline.New(
		csvfile.NewSource(cfg.InputDir, logger),
		pipeline.NewTransformer(logger),
		xlsx.NewWriter(cfg.OutputDir, logger),
		logger,
		metrics,
	)

	_, runErr := p.Run(ctx)

	if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
		logger.Error("metrics textfile write failed", "path", cfg.MetricsTextfile, "error", err)
	}

	if runErr != nil {
		logger.Error("run failed", "input_dir", cfg.InputDir, "output_dir", cfg.OutputDir, "error", runErr)
		stop()
		os.Exit(1)
	}
}
