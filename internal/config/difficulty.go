package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets only move the starting speed; the ramp stays linear.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed): %w", name, ErrInvalid)
	}
}

// InitialMsForPreset returns the starting interval for a preset,
// or 0 when the preset keeps the configured value.
func InitialMsForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 200
	case DifficultyNormal:
		return 150
	case DifficultyHard:
		return 100
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables the speed ramp.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Speed.Ramp = false
		return
	}
	if ms := InitialMsForPreset(preset); ms > 0 {
		cfg.Speed.InitialMs = ms
		cfg.Speed.Ramp = true
		if cfg.Speed.MinMs > ms {
			cfg.Speed.MinMs = ms
		}
	}
}
