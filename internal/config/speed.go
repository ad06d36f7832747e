package config

import (
	"fmt"
	"time"
)

// SpeedPreset represents a named tick speed.
type SpeedPreset string

const (
	SpeedEasy   SpeedPreset = "easy"
	SpeedNormal SpeedPreset = "normal"
	SpeedHard   SpeedPreset = "hard"
	SpeedFixed  SpeedPreset = "fixed" // Keep the configured interval
)

// ParseSpeedPreset validates a preset name. Empty selects fixed.
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	switch p := SpeedPreset(s); p {
	case SpeedEasy, SpeedNormal, SpeedHard, SpeedFixed:
		return p, nil
	case "":
		return SpeedFixed, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IntervalForPreset returns the tick interval for a preset.
// Fixed and unknown presets return fallback.
func IntervalForPreset(preset SpeedPreset, fallback time.Duration) time.Duration {
	switch preset {
	case SpeedEasy:
		return 250 * time.Millisecond
	case SpeedNormal:
		return 200 * time.Millisecond
	case SpeedHard:
		return 120 * time.Millisecond
	default:
		return fallback
	}
}

// ApplySpeedPreset modifies the config based on a speed preset.
func ApplySpeedPreset(cfg *Config, preset SpeedPreset) {
	cfg.Timing.TickInterval = IntervalForPreset(preset, cfg.Timing.TickInterval)
}
