package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"marquee/internal/config"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	t.Setenv("HOME", base)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))
	t.Setenv("MARQUEE_DATA_FILE", "")
	xdg.Reload()
	return base
}

func TestLoadDefaultConfigUsesXDGLocations(t *testing.T) {
	base := isolateXDG(t)
	t.Chdir(base)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	wantConfig := filepath.Join(base, "config", "marquee", "config.toml")
	if resolved != wantConfig {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, wantConfig)
	}

	wantData := filepath.Join(base, "data", "marquee", "movies.json")
	if cfg.Paths.DataFile != wantData {
		t.Fatalf("unexpected data file: got %q want %q", cfg.Paths.DataFile, wantData)
	}
	wantLogs := filepath.Join(base, "state", "marquee", "logs")
	if cfg.Paths.LogDir != wantLogs {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, wantLogs)
	}
	if cfg.Catalog.RecommendThreshold != 8 {
		t.Fatalf("unexpected recommend threshold: %v", cfg.Catalog.RecommendThreshold)
	}
	if cfg.Genre.Cutoff != 0.5 {
		t.Fatalf("unexpected genre cutoff: %v", cfg.Genre.Cutoff)
	}
	if cfg.Genre.Algorithm != "ratio" {
		t.Fatalf("unexpected genre algorithm: %q", cfg.Genre.Algorithm)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("unexpected log format: %q", cfg.Logging.Format)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{filepath.Dir(cfg.Paths.DataFile), cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolateXDG(t)
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "marquee.toml")

	type payload struct {
		Paths struct {
			DataFile string `toml:"data_file"`
		} `toml:"paths"`
		Catalog struct {
			RecommendThreshold float64 `toml:"recommend_threshold"`
		} `toml:"catalog"`
		Genre struct {
			Cutoff    float64 `toml:"cutoff"`
			Algorithm string  `toml:"algorithm"`
		} `toml:"genre"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.DataFile = filepath.Join(tempDir, "catalog", "films.json")
	custom.Catalog.RecommendThreshold = 7.5
	custom.Genre.Cutoff = 0.7
	custom.Genre.Algorithm = " Jaro_Winkler "
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "DEBUG"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Paths.DataFile != custom.Paths.DataFile {
		t.Fatalf("unexpected data file: %q", cfg.Paths.DataFile)
	}
	if cfg.Catalog.RecommendThreshold != 7.5 {
		t.Fatalf("unexpected threshold: %v", cfg.Catalog.RecommendThreshold)
	}
	if cfg.Genre.Cutoff != 0.7 {
		t.Fatalf("unexpected cutoff: %v", cfg.Genre.Cutoff)
	}
	if cfg.Genre.Algorithm != "jaro-winkler" {
		t.Fatalf("expected normalized algorithm, got %q", cfg.Genre.Algorithm)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging, got %q/%q", cfg.Logging.Format, cfg.Logging.Level)
	}
}

func TestLoadDataFileFromEnv(t *testing.T) {
	isolateXDG(t)
	target := filepath.Join(t.TempDir(), "env-movies.json")
	t.Setenv("MARQUEE_DATA_FILE", target)

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.DataFile != target {
		t.Fatalf("expected data file from env, got %q", cfg.Paths.DataFile)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	isolateXDG(t)
	configPath := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(configPath, []byte("[genre\ncutoff = "), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, _, err := config.Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	isolateXDG(t)
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"zero cutoff", func(c *config.Config) { c.Genre.Cutoff = 0 }, "genre.cutoff"},
		{"cutoff above one", func(c *config.Config) { c.Genre.Cutoff = 1.5 }, "genre.cutoff"},
		{"unknown algorithm", func(c *config.Config) { c.Genre.Algorithm = "soundex" }, "genre.algorithm"},
		{"unknown level", func(c *config.Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"empty data file", func(c *config.Config) { c.Paths.DataFile = "" }, "paths.data_file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestCreateSampleLoads(t *testing.T) {
	isolateXDG(t)
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Genre.Algorithm != "ratio" {
		t.Fatalf("unexpected algorithm from sample: %q", cfg.Genre.Algorithm)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	isolateXDG(t)
	cfg := config.Default()
	cfg.Genre.Cutoff = 0.65
	out, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	var decoded config.Config
	if err := toml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("decode encoded config: %v", err)
	}
	if decoded.Genre.Cutoff != 0.65 {
		t.Fatalf("unexpected cutoff after round trip: %v", decoded.Genre.Cutoff)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/films/movies.json")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	if got != filepath.Join(home, "films", "movies.json") {
		t.Fatalf("unexpected expansion: %q", got)
	}
}
