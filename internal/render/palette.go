// Package render draws a snake.View onto the two surfaces the game supports:
// the character Screen used by terminal frontends and a pixel Canvas used by
// the desktop window and PNG screenshots.
package render

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Pixel palette.
var (
	HeadColor   = color.RGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}
	BodyColor   = color.RGBA{R: 0x8B, G: 0xC3, B: 0x4A, A: 0xFF}
	BorderColor = color.RGBA{R: 0x38, G: 0x8E, B: 0x3C, A: 0xFF}
	FoodColor   = color.RGBA{R: 0xF4, G: 0x43, B: 0x36, A: 0xFF}
	TextColor   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	GameOverShade = color.NRGBA{A: 128} // rgba(0,0,0,0.5)
	PauseShade    = color.NRGBA{A: 77}  // rgba(0,0,0,0.3)
)

// Overlay text shared by every surface.
const (
	GameOverText = "GAME OVER"
	PausedText   = "PAUSED"
)

// FinalScoreText is the second game-over line.
func FinalScoreText(score int) string {
	return fmt.Sprintf("Final score: %d", score)
}

// hexColors maps screen colors to terminal hex colors.
var hexColors = map[core.Color]string{
	core.ColorHead:  "#4CAF50",
	core.ColorBody:  "#8BC34A",
	core.ColorFrame: "#388E3C",
	core.ColorFood:  "#F44336",
	core.ColorText:  "#FFFFFF",
	core.ColorDim:   "#3A3A3A",
	core.ColorMuted: "#808080",
}

// Hex returns the terminal hex color for c, or "" for the default color.
func Hex(c core.Color) string {
	return hexColors[c]
}
