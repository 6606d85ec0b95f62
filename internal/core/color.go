package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to a concrete terminal or canvas color.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorHead          // Snake head
	ColorBody          // Snake body segments
	ColorFrame         // Board frame, segment border
	ColorFood          // Food item
	ColorText          // Overlay text
	ColorDim           // Board contents under an overlay
	ColorMuted         // HUD hints
)

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorHead:
		return "head"
	case ColorBody:
		return "body"
	case ColorFrame:
		return "frame"
	case ColorFood:
		return "food"
	case ColorText:
		return "text"
	case ColorDim:
		return "dim"
	case ColorMuted:
		return "muted"
	default:
		return "unknown"
	}
}
