package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeGenre()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if value, ok := os.LookupEnv(dataFileEnv); ok && strings.TrimSpace(value) != "" {
		c.Paths.DataFile = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.DataFile) == "" {
		c.Paths.DataFile = defaultDataFile()
	}
	if c.Paths.DataFile, err = expandPath(c.Paths.DataFile); err != nil {
		return fmt.Errorf("paths.data_file: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir()
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeGenre() {
	c.Genre.Algorithm = strings.ToLower(strings.TrimSpace(c.Genre.Algorithm))
	switch c.Genre.Algorithm {
	case "":
		c.Genre.Algorithm = defaultGenreAlgorithm
	case "jarowinkler", "jaro_winkler":
		c.Genre.Algorithm = "jaro-winkler"
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.MaxSizeMB <= 0 {
		c.Logging.MaxSizeMB = defaultLogFileMaxSizeMB
	}
	if c.Logging.MaxBackups < 0 {
		c.Logging.MaxBackups = 0
	}
}
