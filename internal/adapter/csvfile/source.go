package csvfile

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/access-hourly-etl/internal/domain"
)

// Source extracts the newest export from an input directory.
// It implements pipeline.Extractor.
type Source struct {
	dir    string
	logger *slog.Logger
}

// NewSource creates a Source reading from dir.
func NewSource(dir string, logger *slog.Logger) *Source {
	return &Source{dir: dir, logger: logger}
}

// Extract locates the most recently modified CSV in the input directory and loads it.
func (s *Source) Extract(ctx context.Context) (domain.Table, error) {
	if err := ctx.Err(); err != nil {
		return domain.Table{}, err
	}

	path, err := Locate(s.dir)
	if err != nil {
		return domain.Table{}, err
	}
	s.logger.Info("opening latest csv", "path", path)

	t, err := Load(path)
	if err != nil {
		return domain.Table{}, err
	}
	s.logger.Info("columns found", "columns", t.Header, "rows", len(t.Rows))
	return t, nil
}
