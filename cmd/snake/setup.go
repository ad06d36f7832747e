package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/scoreboard"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// loadConfig loads the config and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Timing.FPS = flagFPS
	}
	if flagScoresPath != "" {
		cfg.Scores.Path = flagScoresPath
	}
	return cfg, nil
}

// seed returns the --seed value, or a time-based seed when it is unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// openBoard opens the configured score backend. The returned close
// function is never nil.
func openBoard(cfg config.ScoresConfig) (scoreboard.Board, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.BackendSQLite:
		store, err := storage.Open(cfg.Path)
		if err != nil {
			return nil, noop, err
		}
		return store, store.Close, nil
	default:
		board, err := scoreboard.NewLog(cfg.Path)
		if err != nil {
			return nil, noop, err
		}
		return board, noop, nil
	}
}

// parseLevel maps a config level name to a log level, defaulting to info.
func parseLevel(name string) log.Level {
	level, err := log.ParseLevel(strings.ToLower(name))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// newFileLogger opens the diagnostic log file. The alt screen owns the
// terminal in play mode, so nothing may be written to stderr.
func newFileLogger(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	path, err := scoreboard.ExpandHome(cfg.File)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           parseLevel(cfg.Level),
		Prefix:          "snake",
	})
	return logger, f, nil
}
