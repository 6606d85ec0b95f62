package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/render"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// hudHeight is the number of rows below the board: score line and help.
const hudHeight = 2

// ScoreSaver persists the final score of a finished run.
type ScoreSaver interface {
	SaveScore(player string, score, gridSize int) (int64, error)
}

// Options configures a game model.
type Options struct {
	Config  config.SnakeConfig
	Runtime core.RuntimeConfig
	Store   ScoreSaver  // nil disables score saving
	Logger  *log.Logger // nil discards
	// ScreenshotDir receives ctrl+s PNGs. Empty means ~/.snake/screenshots.
	ScreenshotDir string
	NoScreenshots bool
}

// scoreLabel is the HUD's score display.
type scoreLabel struct {
	score int
}

func (l *scoreLabel) SetScore(score int) { l.score = score }

// screenRenderer draws every controller frame into the screen buffer.
type screenRenderer struct {
	screen *core.Screen
}

func (r screenRenderer) Render(v snake.View) { render.DrawTerminal(r.screen, v) }

// Model is the Bubble Tea model for one game of snake.
type Model struct {
	ctrl   *snake.Controller
	sched  *teaScheduler
	screen *core.Screen
	label  *scoreLabel
	keys   KeyMap
	help   help.Model

	store         ScoreSaver
	player        string
	logger        *log.Logger
	screenshotDir string
	noScreenshots bool

	status     string // Last transient message shown in the HUD
	best       int    // Best score this session
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a game model. The game starts idle.
func NewModel(opts Options) (Model, error) {
	rc := opts.Runtime
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if rc.Player == "" {
		rc.Player = core.DefaultConfig().Player
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sched := newTeaScheduler()
	ctrl, err := snake.NewController(opts.Config, sched, rc.Seed)
	if err != nil {
		return Model{}, err
	}

	w, h := render.TerminalSize(ctrl.Session().Grid())
	screen := core.NewScreen(core.Max(rc.ScreenW, w), core.Max(rc.ScreenH-hudHeight, h))
	label := &scoreLabel{}

	ctrl.SetLogger(logger)
	ctrl.SetRenderer(screenRenderer{screen: screen})
	ctrl.SetScoreSink(label)
	ctrl.Refresh()

	hm := help.New()
	hm.Width = rc.ScreenW

	return Model{
		ctrl:          ctrl,
		sched:         sched,
		screen:        screen,
		label:         label,
		keys:          DefaultKeyMap(),
		help:          hm,
		store:         opts.Store,
		player:        rc.Player,
		logger:        logger,
		screenshotDir: opts.ScreenshotDir,
		noScreenshots: opts.NoScreenshots,
	}, nil
}

// Init has nothing to schedule: the loop starts on the start key.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("snake")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.handleResize(msg)

	case tickMsg:
		m.sched.Fire(msg)
	}

	m.trackGameOver()
	return m, m.sched.Flush()
}

// handleKey processes keyboard input. A non-nil command ends the update.
// Game-control keys go straight to the controller and leave the HUD status
// alone; UI commands clear it.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	action, consumed := m.keys.MapKey(msg)
	if consumed {
		m.ctrl.Handle(action)
		return nil
	}

	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
	case core.ActionNone:
	default:
		m.status = ""
		m.ctrl.Handle(action)
	}
	return nil
}

// handleResize keeps the game running and redraws at the new size.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-hudHeight))
	m.help.Width = msg.Width
	m.ctrl.Refresh()
}

// trackGameOver saves the score once per finished run.
func (m *Model) trackGameOver() {
	if m.ctrl.State() != snake.StateGameOver {
		if m.scoreSaved {
			// The finished run was reset; its status no longer applies
			m.status = ""
		}
		m.scoreSaved = false
		return
	}
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	score := m.ctrl.Score()
	m.best = core.Max(m.best, score)
	m.logger.Info("game over", "player", m.player, "score", score)

	if score <= 0 || m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.player, score, m.ctrl.Config().Grid.Size); err != nil {
		m.logger.Warn("could not save score", "error", err)
		m.status = "score not saved"
	}
}

// saveScreenshot writes the current frame as PNG.
func (m *Model) saveScreenshot() {
	if m.noScreenshots {
		m.status = "screenshots disabled"
		return
	}
	path, err := m.writeScreenshot()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		m.status = "screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + filepath.Base(path)
}

func (m *Model) writeScreenshot() (string, error) {
	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("screenshot: %w", err)
		}
		dir = filepath.Join(home, ".snake", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.png", timestamp))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	defer f.Close()

	if err := render.WritePNG(f, m.ctrl.View(), m.ctrl.Config().Grid.CellSize); err != nil {
		return "", err
	}
	return path, nil
}

var (
	hudStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(render.Hex(core.ColorHead)))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(render.Hex(core.ColorMuted)))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	hud := hudStyle.Render(fmt.Sprintf(" Score: %d  Best: %d  Speed: %v", m.label.score, m.best, m.ctrl.Interval()))
	hud += statusStyle.Render(fmt.Sprintf("  [%s]", m.ctrl.State()))
	if m.status != "" {
		hud += statusStyle.Render("  " + m.status)
	}

	return RenderScreen(m.screen) + "\n" + hud + "\n" + m.help.View(m.keys)
}

// Controller exposes the game controller.
func (m Model) Controller() *snake.Controller {
	return m.ctrl
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
