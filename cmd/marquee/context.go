package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"marquee/internal/catalog"
	"marquee/internal/config"
	"marquee/internal/genre"
	"marquee/internal/logging"
)

type commandContext struct {
	configFlag   *string
	dataFileFlag *string
	jsonFlag     *bool

	sessionID string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	logCloser  io.Closer
	loggerErr  error
}

func newCommandContext(configFlag, dataFileFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		dataFileFlag: dataFileFlag,
		jsonFlag:     jsonFlag,
		sessionID:    uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.dataFileFlag != nil && strings.TrimSpace(*c.dataFileFlag) != "" {
			dataFile, err := config.ExpandPath(strings.TrimSpace(*c.dataFileFlag))
			if err != nil {
				c.configErr = fmt.Errorf("resolve data file: %w", err)
				return
			}
			cfg.Paths.DataFile = dataFile
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger(cmd *cobra.Command) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		opts := logging.OptionsFromConfig(cfg)
		opts.Console = cmd.ErrOrStderr()
		opts.SessionID = c.sessionID
		c.logger, c.logCloser, c.loggerErr = logging.New(opts)
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

// withStore opens the catalog for the duration of fn. Mutating commands hold the
// catalog lock until fn returns.
func (c *commandContext) withStore(cmd *cobra.Command, mutating bool, fn func(*catalog.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger(cmd)
	if err != nil {
		return err
	}

	if mutating {
		lock, err := catalog.AcquireLock(cfg.Paths.DataFile)
		if err != nil {
			return err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logging.WarnWithContext(logger, "failed to release catalog lock", "catalog_unlock_failed",
					logging.String(logging.FieldPath, lock.Path()),
					logging.Error(err),
					logging.String(logging.FieldErrorHint, "remove the lock file if no marquee process is running"),
					logging.String(logging.FieldImpact, "later commands may report the catalog as in use"))
			}
		}()
	}

	matcher, err := newGenreMatcher(cfg, logger)
	if err != nil {
		return err
	}
	store, err := catalog.Open(cfg.Paths.DataFile, catalog.Options{Logger: logger, Matcher: matcher})
	if err != nil {
		return err
	}
	return fn(store)
}

func (c *commandContext) close() error {
	if c.logCloser == nil {
		return nil
	}
	err := c.logCloser.Close()
	c.logCloser = nil
	return err
}

// newGenreMatcher keeps every candidate above the cutoff so genres --query can list them.
func newGenreMatcher(cfg *config.Config, logger *slog.Logger) (*genre.Matcher, error) {
	algorithm, err := genre.ParseAlgorithm(cfg.Genre.Algorithm)
	if err != nil {
		return nil, err
	}
	return genre.NewMatcher(genre.Options{
		Cutoff:     cfg.Genre.Cutoff,
		MaxResults: 0,
		Algorithm:  algorithm,
	}, logger)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
