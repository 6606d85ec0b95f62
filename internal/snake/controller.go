package snake

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/clock"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Renderer draws the current game state. It is invoked after every tick,
// start, pause toggle and reset.
type Renderer interface {
	Render(v View)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(v View)

// Render calls f(v).
func (f RendererFunc) Render(v View) { f(v) }

// ScoreSink receives the score whenever it changes.
type ScoreSink interface {
	SetScore(score int)
}

// ScoreSinkFunc adapts a function to ScoreSink.
type ScoreSinkFunc func(score int)

// SetScore calls f(score).
func (f ScoreSinkFunc) SetScore(score int) { f(score) }

// Controller owns a Session and drives it on a scheduler through the
// idle / running / paused / game over state machine.
// All methods must be called from the scheduler's thread.
type Controller struct {
	cfg     config.SnakeConfig
	sched   clock.Scheduler
	session *Session

	state    State
	interval time.Duration
	timer    clock.Handle // At most one outstanding timer

	renderer Renderer
	scores   ScoreSink
	logger   *log.Logger
}

// NewController validates cfg and creates an idle game seeded with seed.
func NewController(cfg config.SnakeConfig, sched clock.Scheduler, seed int64) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sched == nil {
		return nil, errors.New("snake: nil scheduler")
	}

	rng := rand.New(rand.NewSource(seed))
	return &Controller{
		cfg:      cfg,
		sched:    sched,
		session:  NewSession(Grid{Size: cfg.Grid.Size}, rng, cfg.Food.MaxAttempts),
		state:    StateIdle,
		interval: cfg.Speed.InitialInterval(),
		logger:   log.New(io.Discard),
	}, nil
}

// SetRenderer installs the renderer. nil disables rendering.
func (c *Controller) SetRenderer(r Renderer) {
	c.renderer = r
}

// SetScoreSink installs the score display. nil disables score updates.
func (c *Controller) SetScoreSink(s ScoreSink) {
	c.scores = s
}

// SetLogger installs the logger used for state transitions.
func (c *Controller) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	c.logger = l
}

// Refresh pushes the current score and frame to the collaborators.
func (c *Controller) Refresh() {
	c.publishScore()
	c.render()
}

// Start begins ticking from the idle state. Returns false when ignored.
func (c *Controller) Start() bool {
	if c.state != StateIdle {
		return false
	}
	c.setState(StateRunning)
	c.schedule()
	c.render()
	return true
}

// TogglePause switches between running and paused and redraws at once.
// Ignored in the idle and game over states.
func (c *Controller) TogglePause() bool {
	switch c.state {
	case StateRunning:
		c.setState(StatePaused)
	case StatePaused:
		c.setState(StateRunning)
	default:
		return false
	}
	c.render()
	return true
}

// Reset cancels the timer and restores the starting snake, food, score,
// heading and interval. The controller returns to idle.
func (c *Controller) Reset() {
	c.stopTimer()
	c.session.Reset()
	c.interval = c.cfg.Speed.InitialInterval()
	c.setState(StateIdle)
	c.publishScore()
	c.render()
}

// Primary is the overloaded action key: reset after game over, otherwise
// toggle pause.
func (c *Controller) Primary() {
	if c.state == StateGameOver {
		c.Reset()
		return
	}
	c.TogglePause()
}

// Steer queues a heading for the next tick. Reversals are rejected.
func (c *Controller) Steer(h Heading) bool {
	return c.session.SetHeading(h)
}

// Handle applies a frontend action. Returns false for actions the controller
// does not own (quit, screenshot, none).
func (c *Controller) Handle(a core.Action) bool {
	switch a {
	case core.ActionUp:
		c.Steer(HeadingUp)
	case core.ActionDown:
		c.Steer(HeadingDown)
	case core.ActionLeft:
		c.Steer(HeadingLeft)
	case core.ActionRight:
		c.Steer(HeadingRight)
	case core.ActionPrimary:
		c.Primary()
	case core.ActionStart:
		c.Start()
	case core.ActionPause:
		c.TogglePause()
	case core.ActionReset:
		c.Reset()
	default:
		return false
	}
	return true
}

// Tick advances the game by one step. Only has an effect while running.
func (c *Controller) Tick() {
	if c.state != StateRunning {
		return
	}

	res := c.session.Step()

	ramped := false
	if res.Ate {
		c.publishScore()
		ramped = c.rampSpeed()
	}

	switch {
	case res.Collided, res.BoardFull:
		c.stopTimer()
		c.setState(StateGameOver)
	case ramped:
		c.schedule()
	}

	c.render()
}

// rampSpeed shortens the interval once per multiple of RampEvery.
// Score rises by exactly one per tick, so each multiple triggers once.
func (c *Controller) rampSpeed() bool {
	speed := c.cfg.Speed
	if !speed.Ramp {
		return false
	}
	score := c.session.Score()
	if score <= 0 || score%speed.RampEvery != 0 || c.interval <= speed.MinInterval() {
		return false
	}

	next := max(speed.MinInterval(), c.interval-speed.Step())
	if next == c.interval {
		return false
	}
	c.logger.Debug("speed ramp", "score", score, "from", c.interval, "to", next)
	c.interval = next
	return true
}

// schedule replaces any outstanding timer with one at the current interval.
func (c *Controller) schedule() {
	c.stopTimer()
	c.timer = c.sched.ScheduleRepeating(c.interval, c.Tick)
}

func (c *Controller) stopTimer() {
	if c.timer != nil {
		c.timer.Cancel()
		c.timer = nil
	}
}

func (c *Controller) setState(s State) {
	if s == c.state {
		return
	}
	c.logger.Debug("state change", "from", c.state, "to", s, "score", c.session.Score())
	c.state = s
}

func (c *Controller) publishScore() {
	if c.scores != nil {
		c.scores.SetScore(c.session.Score())
	}
}

func (c *Controller) render() {
	if c.renderer != nil {
		c.renderer.Render(c.View())
	}
}

// State returns the lifecycle state.
func (c *Controller) State() State { return c.state }

// Interval returns the current tick interval.
func (c *Controller) Interval() time.Duration { return c.interval }

// Score returns the current score.
func (c *Controller) Score() int { return c.session.Score() }

// Session exposes the underlying game state for read access.
func (c *Controller) Session() *Session { return c.session }

// Config returns the configuration the controller was built with.
func (c *Controller) Config() config.SnakeConfig { return c.cfg }

// View returns a copy of the state for renderers.
func (c *Controller) View() View {
	food, hasFood := c.session.Food()
	return View{
		Grid:     c.session.Grid(),
		Snake:    c.session.Body(),
		Food:     food,
		HasFood:  hasFood,
		Score:    c.session.Score(),
		State:    c.state,
		Interval: c.interval,
	}
}

// Snapshot returns the current game snapshot for determinism verification.
func (c *Controller) Snapshot() Snapshot {
	head := c.session.Head()
	food, _ := c.session.Food()
	return Snapshot{
		Tick:     c.session.Ticks(),
		Score:    c.session.Score(),
		SnakeLen: c.session.Len(),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      c.session.Heading(),
		FoodX:    food.X,
		FoodY:    food.Y,
		Interval: c.interval,
		State:    c.state,
	}
}

// DebugState returns a string representation of the game state.
func (c *Controller) DebugState() string {
	s := c.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, State: %s, Interval: %v\n", s.Tick, s.Score, s.State, s.Interval)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", s.SnakeLen, s.Dir)
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", s.HeadX, s.HeadY, s.FoodX, s.FoodY)
	return b.String()
}
