package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in snake configuration:
// a 20x20 board of 20px cells, 150ms ticks ramping by 10ms every 5 points
// down to 50ms.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Size:     20,
			CellSize: 20,
		},
		Speed: SpeedConfig{
			InitialMs: 150,
			StepMs:    10,
			MinMs:     50,
			RampEvery: 5,
			Ramp:      true,
		},
		Food: FoodConfig{
			MaxAttempts: 256,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
