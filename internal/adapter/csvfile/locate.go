// Package csvfile finds and loads the access-log export dropped in the input folder.
package csvfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/couchcryptid/access-hourly-etl/internal/domain"
)

// Locate returns the path of the most recently modified .csv file (any case)
// in dir. When several files share the newest modification time the first in
// directory order wins.
func Locate(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("%w in %s: %w", domain.ErrNoInputFileFound, dir, err)
	}

	var (
		latest     string
		latestTime time.Time
	)
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().After(latestTime) {
			latest = filepath.Join(dir, entry.Name())
			latestTime = info.ModTime()
		}
	}

	if latest == "" {
		return "", fmt.Errorf("%w in %s", domain.ErrNoInputFileFound, dir)
	}
	return latest, nil
}
