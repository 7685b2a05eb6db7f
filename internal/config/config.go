package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Default folder names, relative to BaseDir.
const (
	DefaultInputDir  = "Baixados"
	DefaultOutputDir = "Filtradas"
)

// Config holds all run settings, populated from environment variables.
// Every variable is optional; the defaults reproduce the fixed folder layout
// next to the executable.
type Config struct {
	BaseDir   string
	InputDir  string
	OutputDir string
	LogLevel  string
	LogFormat string

	// MetricsTextfile, when set, receives a Prometheus textfile dump after the run.
	MetricsTextfile string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	baseDir := os.Getenv("BASE_DIR")
	if baseDir == "" {
		dir, err := executableDir()
		if err != nil {
			return nil, fmt.Errorf("resolve BASE_DIR: %w", err)
		}
		baseDir = dir
	}

	cfg := &Config{
		BaseDir:         baseDir,
		InputDir:        resolve(baseDir, sharedcfg.EnvOrDefault("INPUT_DIR", DefaultInputDir)),
		OutputDir:       resolve(baseDir, sharedcfg.EnvOrDefault("OUTPUT_DIR", DefaultOutputDir)),
		LogLevel:        strings.ToLower(sharedcfg.EnvOrDefault("LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(sharedcfg.EnvOrDefault("LOG_FORMAT", "text")),
		MetricsTextfile: os.Getenv("METRICS_TEXTFILE"),
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	return cfg, nil
}

func resolve(base, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(base, dir)
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
