package snake

import (
	"math/rand"
	"testing"
)

func occupiedSet(cells ...Cell) map[Cell]struct{} {
	occ := make(map[Cell]struct{}, len(cells))
	for _, c := range cells {
		occ[c] = struct{}{}
	}
	return occ
}

func TestFoodNeverOnOccupied(t *testing.T) {
	grid := Grid{Size: 20}
	gen := NewFoodGenerator(grid, rand.New(rand.NewSource(999)), 256)
	occ := occupiedSet(Cell{10, 10}, Cell{9, 10}, Cell{8, 10}, Cell{8, 11}, Cell{8, 12})

	for i := 0; i < 1000; i++ {
		c, ok := gen.Generate(occ)
		if !ok {
			t.Fatal("Generate should succeed on a mostly empty board")
		}
		if !grid.InBounds(c) {
			t.Fatalf("food %v out of bounds", c)
		}
		if _, taken := occ[c]; taken {
			t.Fatalf("food %v placed on occupied cell", c)
		}
	}
}

func TestFoodFindsLastFreeCell(t *testing.T) {
	grid := Grid{Size: 5}
	free := Cell{3, 1}

	occ := make(map[Cell]struct{})
	for _, c := range grid.Cells() {
		if c != free {
			occ[c] = struct{}{}
		}
	}

	for _, attempts := range []int{0, 1, 1000} {
		gen := NewFoodGenerator(grid, rand.New(rand.NewSource(1)), attempts)
		c, ok := gen.Generate(occ)
		if !ok || c != free {
			t.Errorf("attempts=%d: Generate() = %v, %v; expected %v, true", attempts, c, ok, free)
		}
	}
}

func TestFoodFullBoard(t *testing.T) {
	grid := Grid{Size: 4}
	occ := make(map[Cell]struct{})
	for _, c := range grid.Cells() {
		occ[c] = struct{}{}
	}

	gen := NewFoodGenerator(grid, rand.New(rand.NewSource(1)), 64)
	if _, ok := gen.Generate(occ); ok {
		t.Error("Generate on a full board should report no free cell")
	}
}

func TestFoodScanIsUniformEnough(t *testing.T) {
	grid := Grid{Size: 4}
	gen := NewFoodGenerator(grid, rand.New(rand.NewSource(7)), 0)
	occ := occupiedSet(Cell{0, 0}, Cell{1, 0}, Cell{2, 0}, Cell{3, 0})

	seen := make(map[Cell]int)
	for i := 0; i < 2000; i++ {
		c, ok := gen.Generate(occ)
		if !ok {
			t.Fatal("Generate should succeed")
		}
		seen[c]++
	}

	// 12 free cells, each should come up
	if len(seen) != 12 {
		t.Errorf("scan-only generation reached %d cells, expected 12", len(seen))
	}
}
