package render

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Board cells are two columns wide so the grid looks square in a terminal.
const cellCols = 2

// TerminalSize returns the screen size needed to draw grid with its frame.
func TerminalSize(grid snake.Grid) (w, h int) {
	return grid.Size*cellCols + 2, grid.Size + 2
}

// BoardRect returns where DrawTerminal places the framed board on scr.
func BoardRect(scr *core.Screen, grid snake.Grid) core.Rect {
	w, h := TerminalSize(grid)
	r := core.CenteredIn(scr.Bounds(), w, h)
	r.X = core.Max(0, r.X)
	r.Y = core.Max(0, r.Y)
	return r
}

// DrawTerminal draws v centered on scr: the frame, food, snake and the
// pause or game-over overlay.
func DrawTerminal(scr *core.Screen, v snake.View) {
	scr.Clear()

	w, h := TerminalSize(v.Grid)
	if scr.Width() < w || scr.Height() < h {
		drawTooSmall(scr)
		return
	}

	frame := BoardRect(scr, v.Grid)
	scr.DrawBox(frame, core.ColorFrame)
	inner := frame.Inset(1)

	if v.HasFood {
		x, y := cellOrigin(inner, v.Food)
		scr.SetColored(x, y, '●', core.ColorFood)
	}

	for i, seg := range v.Snake {
		if !v.Grid.InBounds(seg) {
			continue
		}
		r, c := '▓', core.ColorBody
		if i == 0 {
			r, c = '█', core.ColorHead
		}
		x, y := cellOrigin(inner, seg)
		scr.SetColored(x, y, r, c)
		scr.SetColored(x+1, y, r, c)
	}

	switch {
	case v.IsGameOver():
		scr.Recolor(inner, core.ColorDim)
		_, cy := inner.Center()
		scr.DrawTextCentered(inner, cy-1, GameOverText, core.ColorText)
		scr.DrawTextCentered(inner, cy+1, FinalScoreText(v.Score), core.ColorText)
	case v.IsPaused():
		scr.Recolor(inner, core.ColorDim)
		_, cy := inner.Center()
		scr.DrawTextCentered(inner, cy, PausedText, core.ColorText)
	}
}

func cellOrigin(inner core.Rect, c snake.Cell) (int, int) {
	return inner.X + c.X*cellCols, inner.Y + c.Y
}

func drawTooSmall(scr *core.Screen) {
	b := scr.Bounds()
	_, cy := b.Center()
	scr.DrawTextCentered(b, cy-1, "Window too small", core.ColorText)
	scr.DrawTextCentered(b, cy, "Resize to continue", core.ColorMuted)
}
