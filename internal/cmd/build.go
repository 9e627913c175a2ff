package cmd

import (
	"context"
	"fmt"

	"github.com/Iron-Ham/cookieshell/internal/config"
	"github.com/Iron-Ham/cookieshell/internal/console"
	"github.com/Iron-Ham/cookieshell/internal/fortune"
	"github.com/Iron-Ham/cookieshell/internal/logging"
	"github.com/Iron-Ham/cookieshell/internal/shell"
)

// stack holds what both front ends share: the logger, the fortune store
// and the interpreter built from one loaded configuration.
type stack struct {
	cfg         *config.Config
	logger      *logging.Logger
	fortunes    *fortune.Store
	interpreter *shell.Interpreter
}

// newStack assembles the shared pieces. Logs go to logDir, or to stderr
// when logDir is empty.
func newStack(cfg *config.Config, logDir string) (*stack, error) {
	logger, err := newLogger(cfg.Logging, logDir)
	if err != nil {
		return nil, err
	}

	store, err := fortune.OpenStore(cfg.Fortunes.File, logger)
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("failed to load fortunes: %w", err)
	}

	interp := shell.New(
		shell.WithFortunes(store),
		shell.WithBakeDelay(cfg.Shell.BakeDelay),
	)

	return &stack{
		cfg:         cfg,
		logger:      logger,
		fortunes:    store,
		interpreter: interp,
	}, nil
}

func newLogger(cfg config.LoggingConfig, dir string) (*logging.Logger, error) {
	if !cfg.Enabled {
		return logging.NopLogger(), nil
	}
	logger, err := logging.NewLogger(dir, cfg.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logger, nil
}

// theme parses the configured starting theme.
func (s *stack) theme() console.Theme {
	t, err := console.ParseTheme(s.cfg.TUI.Theme)
	if err != nil {
		return console.ThemeLight
	}
	return t
}

// newConsole starts a console seeded from shell.seed, or from a fresh
// random seed when none is configured.
func (s *stack) newConsole() (*console.Console, error) {
	seed := s.cfg.Shell.Seed
	if seed == 0 {
		var err error
		if seed, err = shell.NewSeed(); err != nil {
			return nil, fmt.Errorf("failed to seed random source: %w", err)
		}
	}
	s.logger.Debug("console seeded", "seed", seed)

	return console.New(s.interpreter, shell.NewRandom(seed),
		console.WithLogger(s.logger),
		console.WithMaxLines(s.cfg.TUI.MaxLines),
		console.WithTheme(s.theme()),
	), nil
}

// watchFortunes reloads the fortune file until ctx is done when
// fortunes.watch is set. A watcher failure is logged, never fatal.
func (s *stack) watchFortunes(ctx context.Context) error {
	if !s.cfg.Fortunes.Watch {
		return nil
	}
	if err := s.fortunes.Watch(ctx); err != nil {
		s.logger.Warn("fortune watcher stopped", "error", err)
	}
	return nil
}

func (s *stack) Close() error {
	return s.logger.Close()
}
