package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	appName                   = "marquee"
	defaultDataFileName       = "movies.json"
	defaultConfigFileName     = "config.toml"
	defaultProjectConfigName  = "marquee.toml"
	defaultRecommendThreshold = 8.0
	defaultGenreCutoff        = 0.5
	defaultGenreAlgorithm     = "ratio"
	defaultLogFormat          = "console"
	defaultLogLevel           = "warn"
	defaultLogFileMaxSizeMB   = 1
	defaultLogFileMaxBackups  = 2
	dataFileEnv               = "MARQUEE_DATA_FILE"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataFile: defaultDataFile(),
			LogDir:   defaultLogDir(),
		},
		Catalog: Catalog{
			RecommendThreshold: defaultRecommendThreshold,
		},
		Genre: Genre{
			Cutoff:    defaultGenreCutoff,
			Algorithm: defaultGenreAlgorithm,
		},
		Logging: Logging{
			Format:      defaultLogFormat,
			Level:       defaultLogLevel,
			FileEnabled: true,
			MaxSizeMB:   defaultLogFileMaxSizeMB,
			MaxBackups:  defaultLogFileMaxBackups,
		},
	}
}

func defaultDataFile() string {
	return filepath.Join(xdg.DataHome, appName, defaultDataFileName)
}

func defaultLogDir() string {
	return filepath.Join(xdg.StateHome, appName, "logs")
}
