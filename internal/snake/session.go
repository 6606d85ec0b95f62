// Package snake implements the snake game engine: board model, food placement,
// movement and collision, and the loop controller that drives them on a
// scheduler. It has no terminal or window dependencies.
package snake

import "math/rand"

// InitialLength is the number of segments a new snake starts with.
const InitialLength = 3

// StepResult reports what happened during one tick.
type StepResult struct {
	Ate       bool // Head landed on food; the snake grew by one
	Collided  bool // Head left the board or hit the body
	BoardFull bool // Food could not be placed because no cell is free
}

// Session is the mutable state of one game: body, headings, food and score.
// Only the loop controller mutates it; input goes through SetHeading.
type Session struct {
	grid  Grid
	foods *FoodGenerator

	body    []Cell // Head at index 0
	current Heading
	pending Heading // Applied at the start of the next tick

	food    Cell
	hasFood bool
	score   int
	ticks   uint64
}

// NewSession creates a session on grid and places the starting snake and food.
func NewSession(grid Grid, rng *rand.Rand, foodAttempts int) *Session {
	s := &Session{
		grid:  grid,
		foods: NewFoodGenerator(grid, rng, foodAttempts),
	}
	s.Reset()
	return s
}

// Reset restores the starting snake in the middle of the board heading right,
// clears the score and places fresh food.
func (s *Session) Reset() {
	cx, cy := s.grid.Size/2, s.grid.Size/2
	s.body = s.body[:0]
	for i := range InitialLength {
		s.body = append(s.body, Cell{X: cx - i, Y: cy})
	}
	s.current = HeadingRight
	s.pending = HeadingRight
	s.score = 0
	s.ticks = 0
	s.placeFood()
}

// SetHeading queues h for the next tick. Reversing into the neck is rejected,
// measured against the heading applied on the last tick.
func (s *Session) SetHeading(h Heading) bool {
	if !h.Valid() || h == s.current.Opposite() {
		return false
	}
	s.pending = h
	return true
}

// Step advances the snake one cell.
// Order: commit the pending heading, prepend the new head, then either eat
// (score, new food over the updated body, keep the tail) or drop the tail,
// and finally check the new head against the board and the rest of the body.
func (s *Session) Step() StepResult {
	var res StepResult
	s.ticks++

	s.current = s.pending
	head := s.body[0].Add(s.current.Delta())

	s.body = append(s.body, Cell{})
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head

	if s.hasFood && head == s.food {
		s.score++
		res.Ate = true
		if !s.placeFood() {
			res.BoardFull = true
		}
	} else {
		s.body = s.body[:len(s.body)-1]
	}

	res.Collided = s.collided()
	return res
}

// collided reports whether the head is off the board or on another segment.
func (s *Session) collided() bool {
	head := s.body[0]
	if !s.grid.InBounds(head) {
		return true
	}
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// placeFood puts food on a free cell. Returns false when the board is full.
func (s *Session) placeFood() bool {
	s.food, s.hasFood = s.foods.Generate(s.Occupied())
	return s.hasFood
}

// Occupied returns the set of cells covered by the body.
func (s *Session) Occupied() map[Cell]struct{} {
	occ := make(map[Cell]struct{}, len(s.body))
	for _, c := range s.body {
		occ[c] = struct{}{}
	}
	return occ
}

// Grid returns the board.
func (s *Session) Grid() Grid { return s.grid }

// Body returns a copy of the snake, head first.
func (s *Session) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Head returns the head cell.
func (s *Session) Head() Cell { return s.body[0] }

// Len returns the number of segments.
func (s *Session) Len() int { return len(s.body) }

// Heading returns the heading applied on the last tick.
func (s *Session) Heading() Heading { return s.current }

// PendingHeading returns the heading the next tick will apply.
func (s *Session) PendingHeading() Heading { return s.pending }

// Food returns the food cell and whether food is on the board.
func (s *Session) Food() (Cell, bool) { return s.food, s.hasFood }

// Score returns the number of food items eaten.
func (s *Session) Score() int { return s.score }

// Ticks returns the number of steps since the last reset.
func (s *Session) Ticks() uint64 { return s.ticks }
