// Package desktop runs the game in a native window using Ebiten.
// Ebiten calls Update at a fixed TPS; each Update advances a manual clock by
// one frame, so the game loop fires on frame boundaries.
package desktop

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/tui-snake/internal/clock"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/desktop/keybind"
	"github.com/vovakirdan/tui-snake/internal/render"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

const tps = 60

// ScoreSaver persists the final score of a finished run.
type ScoreSaver interface {
	SaveScore(player string, score, gridSize int) (int64, error)
}

// Options configures the window.
type Options struct {
	Config config.SnakeConfig
	Seed   int64
	Player string
	Store  ScoreSaver  // nil disables score saving
	Logger *log.Logger // nil discards
}

// keyBinding maps ebiten keys to one action.
type keyBinding struct {
	keys   []ebiten.Key
	action core.Action
}

// resolveBindings turns the named key table into ebiten keys.
// Names ebiten does not know are dropped.
func resolveBindings(table []keybind.Binding) []keyBinding {
	byName := make(map[string]ebiten.Key, int(ebiten.KeyMax)+1)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		byName[k.String()] = k
	}

	out := make([]keyBinding, 0, len(table))
	for _, b := range table {
		kb := keyBinding{action: b.Action}
		for _, name := range b.Keys {
			if k, ok := byName[name]; ok {
				kb.keys = append(kb.keys, k)
			}
		}
		if len(kb.keys) > 0 {
			out = append(out, kb)
		}
	}
	return out
}

// Game implements ebiten.Game.
type Game struct {
	ctrl   *snake.Controller
	sched  *clock.Manual
	canvas *ebitenCanvas
	frame  snake.View
	keys   []keyBinding

	cellSize int
	side     int

	store      ScoreSaver
	player     string
	logger     *log.Logger
	scoreSaved bool
}

// NewGame creates an idle game sized for cfg.
func NewGame(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Player == "" {
		opts.Player = core.DefaultConfig().Player
	}

	sched := clock.NewManual()
	ctrl, err := snake.NewController(opts.Config, sched, opts.Seed)
	if err != nil {
		return nil, err
	}

	canvas, err := newEbitenCanvas(opts.Config.Grid.CanvasSize())
	if err != nil {
		return nil, err
	}

	g := &Game{
		ctrl:     ctrl,
		sched:    sched,
		canvas:   canvas,
		keys:     resolveBindings(keybind.Default()),
		cellSize: opts.Config.Grid.CellSize,
		side:     opts.Config.Grid.CanvasSize(),
		store:    opts.Store,
		player:   opts.Player,
		logger:   logger,
	}

	ctrl.SetLogger(logger)
	ctrl.SetRenderer(snake.RendererFunc(func(v snake.View) { g.frame = v }))
	ctrl.SetScoreSink(snake.ScoreSinkFunc(func(score int) {
		ebiten.SetWindowTitle(windowTitle(score))
	}))
	ctrl.Refresh()

	return g, nil
}

func windowTitle(score int) string {
	return fmt.Sprintf("Snake | Score: %d", score)
}

// Update handles input and advances the game clock by one frame.
func (g *Game) Update() error {
	for _, b := range g.keys {
		if !anyJustPressed(b.keys) {
			continue
		}
		if b.action == core.ActionQuit {
			return ebiten.Termination
		}
		g.ctrl.Handle(b.action)
	}

	g.sched.Advance(time.Second / tps)
	g.trackGameOver()
	return nil
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// trackGameOver saves the score once per finished run.
func (g *Game) trackGameOver() {
	if g.ctrl.State() != snake.StateGameOver {
		g.scoreSaved = false
		return
	}
	if g.scoreSaved {
		return
	}
	g.scoreSaved = true

	score := g.ctrl.Score()
	g.logger.Info("game over", "player", g.player, "score", score)
	if score <= 0 || g.store == nil {
		return
	}
	if _, err := g.store.SaveScore(g.player, score, g.ctrl.Config().Grid.Size); err != nil {
		g.logger.Warn("could not save score", "error", err)
	}
}

// Draw paints the last rendered frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.dst = screen
	render.DrawCanvas(g.canvas, g.frame, g.cellSize)
}

// Layout keeps the logical canvas at the board size; ebiten scales it.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.side, g.side
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(g.side, g.side)
	ebiten.SetWindowTitle(windowTitle(0))
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}

// ebitenCanvas adapts an ebiten image to render.Canvas.
type ebitenCanvas struct {
	dst   *ebiten.Image
	side  int
	large *text.GoTextFace
	small *text.GoTextFace
}

func newEbitenCanvas(side int) (*ebitenCanvas, error) {
	boldSrc, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("desktop: load bold font: %w", err)
	}
	regularSrc, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("desktop: load regular font: %w", err)
	}
	return &ebitenCanvas{
		side:  side,
		large: &text.GoTextFace{Source: boldSrc, Size: 24},
		small: &text.GoTextFace{Source: regularSrc, Size: 18},
	}, nil
}

func (c *ebitenCanvas) Size() (int, int) { return c.side, c.side }

func (c *ebitenCanvas) Clear() {
	c.dst.Clear()
}

func (c *ebitenCanvas) FillRect(x, y, w, h float64, col color.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), col, false)
}

func (c *ebitenCanvas) StrokeRect(x, y, w, h float64, col color.Color) {
	vector.StrokeRect(c.dst, float32(x), float32(y), float32(w), float32(h), 1, col, false)
}

func (c *ebitenCanvas) FillCircle(cx, cy, r float64, col color.Color) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), col, true)
}

func (c *ebitenCanvas) FillText(s string, cx, cy float64, size render.TextSize, col color.Color) {
	face := c.small
	if size == render.TextLarge {
		face = c.large
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(col)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(c.dst, s, face, op)
}
