package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{Size: 25},
		Timing: TimingConfig{
			TickInterval: 200 * time.Millisecond,
			FPS:          60,
		},
		Food: FoodConfig{
			NegativePenalty: 1,
			SpawnAttempts:   1000,
			GameOverReroll:  "legacy",
		},
		Scores: ScoresConfig{
			Backend: BackendLog,
			Path:    "score.txt",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Log: LogConfig{
			File:  "~/.snake/snake.log",
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
