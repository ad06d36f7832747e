// Package config provides YAML-based configuration loading and speed
// presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/game"
)

// MinGridSize is the smallest board that fits the starting snake.
const MinGridSize = 10

// Config contains all configuration for the snake game.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Food   FoodConfig   `yaml:"food"`
	Scores ScoresConfig `yaml:"scores"`
	Audio  AudioConfig  `yaml:"audio"`
	Log    LogConfig    `yaml:"log"`
}

// GridConfig defines the playfield.
type GridConfig struct {
	Size int `yaml:"size"` // Cells per side
}

// TimingConfig defines the tick and frame cadence.
type TimingConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	FPS          int           `yaml:"fps"`
}

// FoodConfig defines food scoring and placement.
type FoodConfig struct {
	NegativePenalty int    `yaml:"negative_penalty"`
	SpawnAttempts   int    `yaml:"spawn_attempts"`   // Random draws before scanning for a free cell
	GameOverReroll  string `yaml:"game_over_reroll"` // "legacy" or "all"
}

// ScoresConfig defines where finished rounds are recorded.
type ScoresConfig struct {
	Backend string `yaml:"backend"` // "log" or "sqlite"
	Path    string `yaml:"path"`
}

// AudioConfig defines speaker output.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// LogConfig defines the diagnostic log.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Score backends.
const (
	BackendLog    = "log"
	BackendSQLite = "sqlite"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks value ranges and enum fields.
func (c Config) Validate() error {
	var errs []error
	if c.Grid.Size < MinGridSize {
		errs = append(errs, fmt.Errorf("grid.size %d is below %d", c.Grid.Size, MinGridSize))
	}
	if c.Timing.TickInterval <= 0 {
		errs = append(errs, errors.New("timing.tick_interval must be positive"))
	}
	if c.Timing.FPS <= 0 {
		errs = append(errs, errors.New("timing.fps must be positive"))
	}
	if c.Food.NegativePenalty < 0 {
		errs = append(errs, errors.New("food.negative_penalty must not be negative"))
	}
	if c.Food.SpawnAttempts <= 0 {
		errs = append(errs, errors.New("food.spawn_attempts must be positive"))
	}
	if _, err := game.ParseRerollPolicy(c.Food.GameOverReroll); err != nil {
		errs = append(errs, err)
	}
	switch c.Scores.Backend {
	case BackendLog, BackendSQLite:
	default:
		errs = append(errs, fmt.Errorf("scores.backend %q (want log or sqlite)", c.Scores.Backend))
	}
	if c.Scores.Path == "" {
		errs = append(errs, errors.New("scores.path is empty"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume %.2f outside 0..1", c.Audio.Volume))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// GameConfig returns the simulation parameters.
func (c Config) GameConfig() game.Config {
	policy, err := game.ParseRerollPolicy(c.Food.GameOverReroll)
	if err != nil {
		policy = game.RerollLegacy
	}
	return game.Config{
		GridSize:        c.Grid.Size,
		NegativePenalty: c.Food.NegativePenalty,
		SpawnAttempts:   c.Food.SpawnAttempts,
		GameOverReroll:  policy,
	}
}
