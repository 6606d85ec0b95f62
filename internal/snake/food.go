package snake

import "math/rand"

// FoodGenerator picks random free cells for food.
type FoodGenerator struct {
	grid        Grid
	rng         *rand.Rand
	maxAttempts int
}

// NewFoodGenerator creates a generator over grid. maxAttempts bounds the
// random sampling phase; zero goes straight to the free-cell scan.
func NewFoodGenerator(grid Grid, rng *rand.Rand, maxAttempts int) *FoodGenerator {
	return &FoodGenerator{
		grid:        grid,
		rng:         rng,
		maxAttempts: maxAttempts,
	}
}

// Generate returns a uniformly random in-bounds cell not in occupied.
// It samples up to maxAttempts cells, then falls back to choosing among the
// free cells directly. The second result is false only when every cell is
// occupied.
func (f *FoodGenerator) Generate(occupied map[Cell]struct{}) (Cell, bool) {
	for range f.maxAttempts {
		c := Cell{X: f.rng.Intn(f.grid.Size), Y: f.rng.Intn(f.grid.Size)}
		if _, taken := occupied[c]; !taken {
			return c, true
		}
	}

	var free []Cell
	for _, c := range f.grid.Cells() {
		if _, taken := occupied[c]; !taken {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return Cell{X: -1, Y: -1}, false
	}
	return free[f.rng.Intn(len(free))], true
}
