package snake

import "time"

// State is the loop controller's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// View is a read-only copy of everything a renderer needs.
type View struct {
	Grid     Grid
	Snake    []Cell // Head first
	Food     Cell
	HasFood  bool
	Score    int
	State    State
	Interval time.Duration
}

// IsGameOver reports whether the game-over overlay should be shown.
func (v View) IsGameOver() bool { return v.State == StateGameOver }

// IsPaused reports whether the pause overlay should be shown.
func (v View) IsPaused() bool { return v.State == StatePaused }

// Snapshot captures the game state compactly for determinism tests and debug output.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Heading
	FoodX    int
	FoodY    int
	Interval time.Duration
	State    State
}
