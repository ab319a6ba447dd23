package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"marquee/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level       string
	Format      string
	Console     io.Writer
	FilePath    string
	MaxSizeMB   int
	MaxBackups  int
	SessionID   string
	Development bool
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New constructs a slog logger using the provided options. The returned closer
// releases the rotating log file, if one was opened.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	var writer io.Writer = console
	var closer io.Closer = nopCloser{}
	if path := strings.TrimSpace(opts.FilePath); path != "" {
		rotating := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
		}
		writer = io.MultiWriter(console, rotating)
		closer = rotating
	}

	addSource := opts.Development || level <= slog.LevelDebug

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "console"
	}

	var handler slog.Handler
	switch format {
	case "json":
		handler, err = newJSONHandler(writer, levelVar, addSource)
		if err != nil {
			return nil, nil, err
		}
	case "console":
		handler = newPrettyHandler(writer, levelVar, addSource)
	default:
		return nil, nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	if opts.SessionID != "" {
		handler = newSessionIDHandler(handler, opts.SessionID)
	}
	return slog.New(handler), closer, nil
}

// OptionsFromConfig maps the [logging] and [paths] config sections to Options.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return Options{Level: "warn", Format: "console"}
	}
	return Options{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		FilePath:   cfg.LogFilePath(),
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	}
}

// NewFromConfig creates a logger using application config values.
func NewFromConfig(cfg *config.Config, sessionID string) (*slog.Logger, io.Closer, error) {
	opts := OptionsFromConfig(cfg)
	opts.SessionID = sessionID
	return New(opts)
}

// ParseLevel maps a configured level name to a slog level. Empty means info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log level: unsupported value %q", level)
	}
}
