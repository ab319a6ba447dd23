package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains file and directory locations.
type Paths struct {
	DataFile string `toml:"data_file"`
	LogDir   string `toml:"log_dir"`
}

// Catalog contains settings for catalog queries.
type Catalog struct {
	// RecommendThreshold is the minimum rating a movie needs to be recommended.
	RecommendThreshold float64 `toml:"recommend_threshold"`
}

// Genre contains settings for approximate genre matching.
type Genre struct {
	// Cutoff is the minimum similarity in (0, 1] a known genre needs to match a query.
	Cutoff float64 `toml:"cutoff"`
	// Algorithm selects the similarity measure: "ratio", "jaro-winkler" or "levenshtein".
	Algorithm string `toml:"algorithm"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format      string `toml:"format"`
	Level       string `toml:"level"`
	FileEnabled bool   `toml:"file_enabled"`
	MaxSizeMB   int    `toml:"max_size_mb"`
	MaxBackups  int    `toml:"max_backups"`
}

// Config encapsulates all configuration values for marquee.
//
// Configuration sections by subsystem:
//   - Paths: catalog data file and log directory
//   - Catalog: recommendation threshold
//   - Genre: similarity cutoff and algorithm for genre lookups
//   - Logging: log format, level, and rotating file output
type Config struct {
	Paths   Paths   `toml:"paths"`
	Catalog Catalog `toml:"catalog"`
	Genre   Genre   `toml:"genre"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(filepath.Join(xdg.ConfigHome, appName, defaultConfigFileName))
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(defaultProjectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories holding the catalog file and logs.
func (c *Config) EnsureDirectories() error {
	dirs := []string{filepath.Dir(c.Paths.DataFile)}
	if c.Logging.FileEnabled {
		dirs = append(dirs, c.Paths.LogDir)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// LogFilePath returns the rotating log file location, or "" when file logging is off.
func (c *Config) LogFilePath() string {
	if !c.Logging.FileEnabled || strings.TrimSpace(c.Paths.LogDir) == "" {
		return ""
	}
	return filepath.Join(c.Paths.LogDir, appName+".log")
}

// Encode renders the effective configuration as TOML.
func (c *Config) Encode() (string, error) {
	var b strings.Builder
	enc := toml.NewEncoder(&b)
	if err := enc.Encode(c); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return b.String(), nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
