package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var validAlgorithms = []string{"ratio", "jaro-winkler", "levenshtein"}

var validLevels = []string{"debug", "info", "warn", "error"}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateGenre(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.DataFile) == "" {
		return errors.New("paths.data_file must be set")
	}
	if strings.HasSuffix(c.Paths.DataFile, "/") {
		return fmt.Errorf("paths.data_file must name a file, got directory %q", c.Paths.DataFile)
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if math.IsNaN(c.Catalog.RecommendThreshold) || math.IsInf(c.Catalog.RecommendThreshold, 0) {
		return errors.New("catalog.recommend_threshold must be a finite number")
	}
	return nil
}

func (c *Config) validateGenre() error {
	if c.Genre.Cutoff <= 0 || c.Genre.Cutoff > 1 {
		return errors.New("genre.cutoff must be greater than 0 and at most 1")
	}
	if !contains(validAlgorithms, c.Genre.Algorithm) {
		return fmt.Errorf("genre.algorithm must be one of %s, got %q", strings.Join(validAlgorithms, ", "), c.Genre.Algorithm)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of %s, got %q", strings.Join(validLevels, ", "), c.Logging.Level)
	}
	return nil
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
