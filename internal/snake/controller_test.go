package snake

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/clock"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestController(t *testing.T, cfg config.SnakeConfig, seed int64) (*Controller, *clock.Manual) {
	t.Helper()
	sched := clock.NewManual()
	c, err := NewController(cfg, sched, seed)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c, sched
}

// tick fires exactly one game tick at the current interval.
func tick(c *Controller, sched *clock.Manual) {
	sched.Advance(c.Interval())
}

// feed steers toward h and puts food on the cell the head will enter next.
func feed(c *Controller, h Heading) {
	c.Steer(h)
	s := c.session
	s.food = s.Head().Add(s.PendingHeading().Delta())
	s.hasFood = true
}

// parkFood moves the food to a corner the test path never touches.
func parkFood(c *Controller) {
	c.session.food = Cell{0, 0}
	c.session.hasFood = true
}

func TestNewControllerRejectsBadInput(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid.Size = 2
	if _, err := NewController(cfg, clock.NewManual(), 1); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("expected ErrInvalid for tiny grid, got %v", err)
	}

	if _, err := NewController(config.DefaultSnakeConfig(), nil, 1); err == nil {
		t.Error("expected error for nil scheduler")
	}
}

func TestControllerStartsIdle(t *testing.T) {
	c, sched := newTestController(t, config.DefaultSnakeConfig(), 1)

	if c.State() != StateIdle {
		t.Errorf("State() = %v, expected idle", c.State())
	}
	if c.Interval() != 150*time.Millisecond {
		t.Errorf("Interval() = %v, expected 150ms", c.Interval())
	}
	if sched.Active() != 0 {
		t.Errorf("idle controller should not schedule, %d timers active", sched.Active())
	}

	sched.Advance(time.Second)
	if c.Session().Head() != (Cell{10, 10}) {
		t.Errorf("snake moved while idle: head %v", c.Session().Head())
	}
}

func TestStartMovesSnakeOnTimer(t *testing.T) {
	c, sched := newTestController(t, config.DefaultSnakeConfig(), 1)
	parkFood(c)

	if !c.Start() {
		t.Fatal("Start from idle should succeed")
	}
	if sched.Active() != 1 {
		t.Fatalf("expected one timer, got %d", sched.Active())
	}

	sched.Advance(149 * time.Millisecond)
	if c.Session().Head() != (Cell{10, 10}) {
		t.Errorf("snake moved before the first interval elapsed")
	}

	sched.Advance(time.Millisecond)
	expected := []Cell{{11, 10}, {10, 10}, {9, 10}}
	if !cellsEqual(c.Session().Body(), expected) {
		t.Errorf("Body() = %v, expected %v", c.Session().Body(), expected)
	}
}

func TestStartTwiceKeepsOneTimer(t *testing.T) {
	c, sched := newTestController(t, config.DefaultSnakeConfig(), 1)
	parkFood(c)

	c.Start()
	if c.Start() {
		t.Error("second Start should be ignored")
	}
	if sched.Active() != 1 {
		t.Errorf("expected exactly one timer, got %d", sched.Active())
	}

	tick(c, sched)
	if c.Session().Head() != (Cell{11, 10}) {
		t.Errorf("double start should not double the tick rate, head %v", c.Session().Head())
	}
}

func TestEatFoodThroughController(t *testing.T) {
	c, sched := newTestController(t, config.DefaultSnakeConfig(), 1)

	var scores []int
	c.SetScoreSink(ScoreSinkFunc(func(score int) { scores = append(scores, score) }))

	c.Start()
	feed(c, HeadingRight)
	tick(c, sched)

	if c.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", c.Score())
	}
	if c.Session().Len() != 4 {
		t.Errorf("Len() = %d, expected 4", c.Session().Len())
	}
	if len(scores) != 1 || scores[0] != 1 {
		t.Errorf("score sink got %v, expected [1]", scores)
	}
}

func TestPauseStopsMovement(t *testing.T) {
	c, sched := newTestController(t, config.DefaultSnakeConfig(), 1)
	parkFood(c)

	frames := 0
	c.SetRenderer(RendererFunc(func(View) { frames++ }))

	c.Start()
	tick(c, sched)
	head := c.Session().Head()

	before := frames
	if !c.TogglePause() {
		t.Fatal("TogglePause while running should succeed")
	}
	if frames != before+1 {
		t.Error("pausing should redraw immediately")
	}
	if c.State() != StatePaused {
		t.Errorf("State() = %v, expected paused", c.State())
	}

	sched.Advance(10 * c.Interval())
	if c.Session().Head() != head {
		t.Errorf("snake moved while paused: %v -> %v", head, c.Session().Head())
	}
	if sched.Active() != 1 {
		t.Errorf("pause should keep exactly one timer, got %d", sched.Active())
	}

	c.TogglePause()
	tick(c, sched)
	if c.Session().Head() == head {
		t.Error("snake should move after resuming")
	}
}

func TestPauseIgnoredOutsideRunning(t *testing.T) {
	c, _ := newTestController(t, config.DefaultSnakeConfig(), 1)

	if c.TogglePause() {
		t.Error("pause from idle should be ignored")
	}
	if c.State() != StateIdle {
		t.Errorf("State() = %v, expected idle", c.State())
	}
}

func TestGameOverOnWall(t *testing.T) {
	c, sched := newTestController(t, config.DefaultSnakeConfig(), 1)
	c.session.body = []Cell{{19, 10}, {18, 10}, {17, 10}}
	parkFood(c)

	var last View
	c.SetRenderer(RendererFunc(func(v View) { last = v }))

	c.Start()
	tick(c, sched)

	if c.State() != StateGameOver {
		t.Fatalf("State() = %v, expected game_over", c.State())
	}
	if sched.Active() != 0 {
		t.Errorf("game over should cancel the timer, %d active", sched.Active())
	}
	if !last.IsGameOver() {
		t.Error("last rendered frame should show game over")
	}

	if c.Start() {
		t.Error("Start should be ignored after game over")
	}
	if c.TogglePause() {
		t.Error("pause should be ignored after game over")
	}

	sched.Advance(time.Second)
	if c.Session().Ticks() != 1 {
		t.Errorf("no ticks expected after game over, got %d", c.Session().Ticks())
	}
}

func TestGameOverOnFullBoard(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid.Size = 4
	c, sched := newTestController(t, cfg, 1)

	// Serpentine over every cell but (3,0); eating there fills the board
	c.session.body = []Cell{
		{2, 0}, {1, 0}, {0, 0},
		{0, 1}, {1, 1}, {2, 1}, {3, 1},
		{3, 2}, {2, 2}, {1, 2}, {0, 2},
		{0, 3}, {1, 3}, {2, 3}, {3, 3},
	}
	c.session.food = Cell{3, 0}
	c.session.hasFood = true

	var last View
	c.SetRenderer(RendererFunc(func(v View) { last = v }))

	c.Start()
	tick(c, sched)

	if c.State() != StateGameOver {
		t.Fatalf("State() = %v, expected game_over", c.State())
	}
	if sched.Active() != 0 {
		t.Errorf("full board should cancel the timer, %d active", sched.Active())
	}
	if c.Session().Len() != cfg.Grid.Size*cfg.Grid.Size {
		t.Errorf("Len() = %d, expected the whole board", c.Session().Len())
	}
	if c.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", c.Score())
	}
	if last.HasFood {
		t.Error("full board should leave no food")
	}
	if !last.IsGameOver() {
		t.Error("last rendered frame should show game over")
	}
}

func TestGameOverOnSelf(t *testing.T) {
	c, sched := newTestController(t, config.DefaultSnakeConfig(), 1)
	c.session.body = []Cell{{5, 5}, {5, 6}, {6, 6}, {6, 5}, {6, 4}}
	c.session.current = HeadingUp
	c.session.pending = HeadingUp
	parkFood(c)

	c.Start()
	c.Steer(HeadingRight)
	tick(c, sched)

	if c.State() != StateGameOver {
		t.Errorf("State() = %v, expected game_over", c.State())
	}
}

func TestPrimaryAction(t *testing.T) {
	c, sched := newTestController(t, config.DefaultSnakeConfig(), 1)
	parkFood(c)

	c.Start()
	c.Primary()
	if c.State() != StatePaused {
		t.Errorf("Primary while running: State() = %v, expected paused", c.State())
	}
	c.Primary()
	if c.State() != StateRunning {
		t.Errorf("Primary while paused: State() = %v, expected running", c.State())
	}

	c.session.body = []Cell{{19, 10}, {18, 10}, {17, 10}}
	tick(c, sched)
	if c.State() != StateGameOver {
		t.Fatalf("State() = %v, expected game_over", c.State())
	}

	c.Primary()
	if c.State() != StateIdle {
		t.Errorf("Primary after game over: State() = %v, expected idle", c.State())
	}
	if c.Session().Head() != (Cell{10, 10}) {
		t.Errorf("Primary after game over should reset the snake, head %v", c.Session().Head())
	}
}

func TestResetIsIdempotent(t *testing.T) {
	c, sched := newTestController(t, config.DefaultSnakeConfig(), 1)

	c.Start()
	for range 5 {
		feed(c, HeadingRight)
		tick(c, sched)
	}
	if c.Interval() == 150*time.Millisecond {
		t.Fatal("setup: expected the interval to ramp")
	}

	c.Reset()
	first := c.Snapshot()
	firstBody := c.Session().Body()
	c.Reset()
	second := c.Snapshot()

	if sched.Active() != 0 {
		t.Errorf("Reset should leave no timer, %d active", sched.Active())
	}
	if first.Score != 0 || first.Interval != 150*time.Millisecond || first.State != StateIdle {
		t.Errorf("Reset snapshot %+v, expected score 0, 150ms, idle", first)
	}
	if first.SnakeLen != second.SnakeLen || first.HeadX != second.HeadX || first.HeadY != second.HeadY ||
		first.Dir != second.Dir || first.State != second.State || first.Interval != second.Interval {
		t.Errorf("second Reset changed state: %+v vs %+v", first, second)
	}
	if !cellsEqual(firstBody, []Cell{{10, 10}, {9, 10}, {8, 10}}) {
		t.Errorf("Reset body %v", firstBody)
	}

	// A fresh start after reset must still run with a single timer
	c.Start()
	if sched.Active() != 1 || sched.Intervals()[0] != 150*time.Millisecond {
		t.Errorf("restart intervals %v, expected [150ms]", sched.Intervals())
	}
}

func TestResetWhileRunningStopsLoop(t *testing.T) {
	c, sched := newTestController(t, config.DefaultSnakeConfig(), 1)
	parkFood(c)

	c.Start()
	tick(c, sched)
	c.Reset()

	sched.Advance(time.Second)
	if c.Session().Ticks() != 0 {
		t.Errorf("loop kept running after reset, %d ticks", c.Session().Ticks())
	}
}

func TestSpeedRamp(t *testing.T) {
	c, sched := newTestController(t, config.DefaultSnakeConfig(), 1)
	c.Start()

	for i := 1; i <= 4; i++ {
		feed(c, HeadingRight)
		tick(c, sched)
		if c.Interval() != 150*time.Millisecond {
			t.Fatalf("score %d: Interval() = %v, expected 150ms", i, c.Interval())
		}
	}

	feed(c, HeadingRight)
	tick(c, sched)
	if c.Score() != 5 {
		t.Fatalf("Score() = %d, expected 5", c.Score())
	}
	if c.Interval() != 140*time.Millisecond {
		t.Errorf("Interval() = %v, expected 140ms", c.Interval())
	}
	if got := sched.Intervals(); len(got) != 1 || got[0] != 140*time.Millisecond {
		t.Errorf("scheduler intervals %v, expected [140ms]", got)
	}

	// The next tick lands exactly 140ms later
	parkFood(c)
	head := c.Session().Head()
	sched.Advance(139 * time.Millisecond)
	if c.Session().Head() != head {
		t.Error("ticked before the ramped interval elapsed")
	}
	sched.Advance(time.Millisecond)
	if c.Session().Head() == head {
		t.Error("did not tick at the ramped interval")
	}
}

func TestSpeedRampFloor(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid.Size = 100
	c, sched := newTestController(t, cfg, 1)
	c.Start()

	// Right along row 50, down two, then back left along row 52
	var path []Heading
	for range 40 {
		path = append(path, HeadingRight)
	}
	path = append(path, HeadingDown, HeadingDown)
	for range 30 {
		path = append(path, HeadingLeft)
	}

	for i, h := range path {
		feed(c, h)
		tick(c, sched)
		if c.State() != StateRunning {
			t.Fatalf("step %d: State() = %v", i, c.State())
		}

		score := c.Score()
		expected := 150*time.Millisecond - time.Duration(score/5)*10*time.Millisecond
		if expected < 50*time.Millisecond {
			expected = 50 * time.Millisecond
		}
		if c.Interval() != expected {
			t.Fatalf("score %d: Interval() = %v, expected %v", score, c.Interval(), expected)
		}
		if sched.Active() != 1 {
			t.Fatalf("score %d: %d timers active", score, sched.Active())
		}
	}

	if c.Score() != len(path) || c.Interval() != 50*time.Millisecond {
		t.Errorf("final score %d interval %v, expected %d and 50ms", c.Score(), c.Interval(), len(path))
	}
}

func TestFixedSpeedNeverRamps(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	config.ApplyPreset(&cfg, config.DifficultyFixed)
	c, sched := newTestController(t, cfg, 1)
	c.Start()

	for range 6 {
		feed(c, HeadingRight)
		tick(c, sched)
	}
	if c.Interval() != 150*time.Millisecond {
		t.Errorf("Interval() = %v, expected fixed 150ms", c.Interval())
	}
}

func TestRenderCalls(t *testing.T) {
	c, sched := newTestController(t, config.DefaultSnakeConfig(), 1)
	parkFood(c)

	var states []State
	c.SetRenderer(RendererFunc(func(v View) { states = append(states, v.State) }))

	c.Start()
	tick(c, sched)
	c.TogglePause()
	c.TogglePause()
	c.Reset()

	expected := []State{StateRunning, StateRunning, StatePaused, StateRunning, StateIdle}
	if len(states) != len(expected) {
		t.Fatalf("rendered states %v, expected %v", states, expected)
	}
	for i := range expected {
		if states[i] != expected[i] {
			t.Errorf("frame %d state = %v, expected %v", i, states[i], expected[i])
		}
	}
}

func TestHandleActions(t *testing.T) {
	tests := []struct {
		action  core.Action
		handled bool
	}{
		{core.ActionUp, true},
		{core.ActionDown, true},
		{core.ActionLeft, true},
		{core.ActionRight, true},
		{core.ActionPrimary, true},
		{core.ActionStart, true},
		{core.ActionPause, true},
		{core.ActionReset, true},
		{core.ActionQuit, false},
		{core.ActionScreenshot, false},
		{core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			c, _ := newTestController(t, config.DefaultSnakeConfig(), 1)
			if got := c.Handle(tc.action); got != tc.handled {
				t.Errorf("Handle(%v) = %v, expected %v", tc.action, got, tc.handled)
			}
		})
	}
}

func TestHandleSteering(t *testing.T) {
	c, sched := newTestController(t, config.DefaultSnakeConfig(), 1)
	parkFood(c)

	c.Handle(core.ActionStart)
	c.Handle(core.ActionDown)
	tick(c, sched)

	if c.Session().Head() != (Cell{10, 11}) {
		t.Errorf("Head() = %v, expected (10, 11)", c.Session().Head())
	}

	// Reversal through the action path is rejected too
	c.Handle(core.ActionUp)
	tick(c, sched)
	if c.Session().Head() != (Cell{10, 12}) {
		t.Errorf("Head() = %v, expected (10, 12)", c.Session().Head())
	}
}

func TestDeterminism(t *testing.T) {
	run := func() []Snapshot {
		c, sched := newTestController(t, config.DefaultSnakeConfig(), 42)
		c.Start()

		inputs := []Heading{HeadingDown, HeadingLeft, HeadingUp, HeadingRight}
		var snaps []Snapshot
		for i := 0; i < 200 && c.State() == StateRunning; i++ {
			if i%7 == 0 {
				c.Steer(inputs[(i/7)%len(inputs)])
			}
			tick(c, sched)
			snaps = append(snaps, c.Snapshot())
		}
		return snaps
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("runs diverged in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d diverged:\n%+v\n%+v", i, a[i], b[i])
		}
	}
}

func TestDebugState(t *testing.T) {
	c, _ := newTestController(t, config.DefaultSnakeConfig(), 1)
	if c.DebugState() == "" {
		t.Error("DebugState should not be empty")
	}
}
