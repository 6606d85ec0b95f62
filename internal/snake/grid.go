package snake

// Cell is a board coordinate. Cells are values; two cells are equal when their
// coordinates are.
type Cell struct {
	X, Y int
}

// Add returns c translated by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Grid is a square board of Size x Size cells.
type Grid struct {
	Size int
}

// InBounds reports whether c lies on the board.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Size && c.Y >= 0 && c.Y < g.Size
}

// Area returns the number of cells on the board.
func (g Grid) Area() int {
	return g.Size * g.Size
}

// Cells returns every cell on the board in row-major order.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Area())
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}
