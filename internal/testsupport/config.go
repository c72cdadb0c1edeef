package testsupport

import (
	"path/filepath"
	"testing"

	"montage/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.AssetsDir = filepath.Join(base, "assets")
	cfg.Paths.TimelineDir = filepath.Join(base, "assets", "timeline")
	cfg.Paths.AudioDir = filepath.Join(base, "assets", "audio")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}

	return &cfg
}

// WithOverwrite sets the timeline overwrite policy on the test config.
func WithOverwrite(enabled bool) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Timeline.OverwriteExisting = enabled
	}
}
