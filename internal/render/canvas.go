package render

import (
	"image/color"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// TextSize selects one of the two overlay font sizes.
type TextSize int

const (
	TextLarge TextSize = iota // Overlay titles
	TextSmall                 // Final score line
)

// Canvas is a pixel drawing surface. Coordinates are in pixels with the
// origin at the top-left corner.
type Canvas interface {
	Size() (w, h int)
	Clear()
	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	// FillText draws text with its center at (cx, cy).
	FillText(text string, cx, cy float64, size TextSize, c color.Color)
}

// Vertical offset of the two game-over lines from the canvas center.
const overlayLineOffset = 20

// DrawCanvas draws v on cv with cellSize pixels per grid cell.
func DrawCanvas(cv Canvas, v snake.View, cellSize int) {
	cv.Clear()
	cs := float64(cellSize)

	for i, seg := range v.Snake {
		if !v.Grid.InBounds(seg) {
			continue
		}
		fill := BodyColor
		if i == 0 {
			fill = HeadColor
		}
		x, y := float64(seg.X)*cs, float64(seg.Y)*cs
		cv.FillRect(x, y, cs, cs, fill)
		cv.StrokeRect(x, y, cs, cs, BorderColor)
	}

	if v.HasFood {
		cv.FillCircle(float64(v.Food.X)*cs+cs/2, float64(v.Food.Y)*cs+cs/2, cs/2, FoodColor)
	}

	w, h := cv.Size()
	cx, cy := float64(w)/2, float64(h)/2
	switch {
	case v.IsGameOver():
		cv.FillRect(0, 0, float64(w), float64(h), GameOverShade)
		cv.FillText(GameOverText, cx, cy-overlayLineOffset, TextLarge, TextColor)
		cv.FillText(FinalScoreText(v.Score), cx, cy+overlayLineOffset, TextSmall, TextColor)
	case v.IsPaused():
		cv.FillRect(0, 0, float64(w), float64(h), PauseShade)
		cv.FillText(PausedText, cx, cy, TextLarge, TextColor)
	}
}
