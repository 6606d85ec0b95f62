// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// MinGridSize is the smallest board that fits the three-cell starting snake
// with room to move.
const MinGridSize = 4

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid  GridConfig  `yaml:"grid"`
	Speed SpeedConfig `yaml:"speed"`
	Food  FoodConfig  `yaml:"food"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Size     int `yaml:"size"`      // Cells per side
	CellSize int `yaml:"cell_size"` // Pixels per cell on canvas surfaces
}

// SpeedConfig defines the tick interval and its linear ramp.
type SpeedConfig struct {
	InitialMs int  `yaml:"initial_ms"`
	StepMs    int  `yaml:"step_ms"`
	MinMs     int  `yaml:"min_ms"`
	RampEvery int  `yaml:"ramp_every"`
	Ramp      bool `yaml:"ramp"`
}

// FoodConfig defines food placement parameters.
type FoodConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// InitialInterval returns the starting tick interval.
func (s SpeedConfig) InitialInterval() time.Duration {
	return time.Duration(s.InitialMs) * time.Millisecond
}

// Step returns the interval reduction applied per ramp.
func (s SpeedConfig) Step() time.Duration {
	return time.Duration(s.StepMs) * time.Millisecond
}

// MinInterval returns the interval floor.
func (s SpeedConfig) MinInterval() time.Duration {
	return time.Duration(s.MinMs) * time.Millisecond
}

// CanvasSize returns the pixel size of a square canvas for this grid.
func (g GridConfig) CanvasSize() int {
	return g.Size * g.CellSize
}

// Validate rejects out-of-range values. Errors wrap ErrInvalid.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.Size < MinGridSize:
		return invalid("grid.size must be at least %d, got %d", MinGridSize, c.Grid.Size)
	case c.Grid.CellSize <= 0:
		return invalid("grid.cell_size must be positive, got %d", c.Grid.CellSize)
	case c.Speed.InitialMs <= 0:
		return invalid("speed.initial_ms must be positive, got %d", c.Speed.InitialMs)
	case c.Speed.MinMs <= 0:
		return invalid("speed.min_ms must be positive, got %d", c.Speed.MinMs)
	case c.Speed.MinMs > c.Speed.InitialMs:
		return invalid("speed.min_ms (%d) exceeds speed.initial_ms (%d)", c.Speed.MinMs, c.Speed.InitialMs)
	case c.Speed.StepMs < 0:
		return invalid("speed.step_ms must not be negative, got %d", c.Speed.StepMs)
	case c.Speed.RampEvery <= 0:
		return invalid("speed.ramp_every must be positive, got %d", c.Speed.RampEvery)
	case c.Food.MaxAttempts < 0:
		return invalid("food.max_attempts must not be negative, got %d", c.Food.MaxAttempts)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %s: %w", fmt.Sprintf(format, args...), ErrInvalid)
}
