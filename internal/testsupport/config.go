package testsupport

import (
	"path/filepath"
	"testing"

	"marquee/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// File logging is off unless WithFileLogging is passed.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataFile = filepath.Join(base, "data", "movies.json")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Logging.FileEnabled = false

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithFileLogging enables the rotating log file under the temp log directory.
func WithFileLogging() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.FileEnabled = true
	}
}

// WithGenreCutoff overrides the genre similarity cutoff.
func WithGenreCutoff(cutoff float64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Genre.Cutoff = cutoff
	}
}

// WithRecommendThreshold overrides the minimum rating used by recommend.
func WithRecommendThreshold(threshold float64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Catalog.RecommendThreshold = threshold
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.LogDir)
}
