package snake

// Heading represents the snake's movement direction.
type Heading int

const (
	HeadingRight Heading = iota
	HeadingDown
	HeadingLeft
	HeadingUp
)

var opposites = [...]Heading{
	HeadingRight: HeadingLeft,
	HeadingDown:  HeadingUp,
	HeadingLeft:  HeadingRight,
	HeadingUp:    HeadingDown,
}

var deltas = [...]Cell{
	HeadingRight: {X: 1, Y: 0},
	HeadingDown:  {X: 0, Y: 1},
	HeadingLeft:  {X: -1, Y: 0},
	HeadingUp:    {X: 0, Y: -1},
}

// Valid reports whether h is one of the four headings.
func (h Heading) Valid() bool {
	return h >= HeadingRight && h <= HeadingUp
}

// Opposite returns the reverse heading.
func (h Heading) Opposite() Heading {
	return opposites[h]
}

// Delta returns the one-cell step for h. Up is y-1.
func (h Heading) Delta() Cell {
	return deltas[h]
}

func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "unknown"
	}
}
