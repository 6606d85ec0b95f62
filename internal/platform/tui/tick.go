// Package tui provides the Bubble Tea frontend for the snake game.
// It handles the terminal UI loop, input mapping, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/clock"
)

// tickMsg is delivered when the timer with the given id is due.
type tickMsg struct {
	id uint64
}

// teaScheduler implements clock.Scheduler on top of tea.Tick.
// Scheduling only queues commands; the model returns them from Update via
// Flush, and callbacks run inside Update when their tickMsg arrives. Ticks
// and key events are therefore serialised by the Bubble Tea loop.
type teaScheduler struct {
	nextID  uint64
	timers  map[uint64]*teaTimer
	pending []tea.Cmd
}

type teaTimer struct {
	owner    *teaScheduler
	id       uint64
	interval time.Duration
	fn       func()
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{timers: make(map[uint64]*teaTimer)}
}

// ScheduleRepeating queues the first tick of a new timer.
func (s *teaScheduler) ScheduleRepeating(interval time.Duration, fn func()) clock.Handle {
	s.nextID++
	t := &teaTimer{owner: s, id: s.nextID, interval: interval, fn: fn}
	s.timers[t.id] = t
	s.pending = append(s.pending, t.cmd())
	return t
}

// Cancel drops the timer; its in-flight tick is ignored on arrival.
func (t *teaTimer) Cancel() {
	delete(t.owner.timers, t.id)
}

func (t *teaTimer) cmd() tea.Cmd {
	id := t.id
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

// Fire runs the callback for msg if its timer is still live and queues the
// next tick unless the callback cancelled it.
func (s *teaScheduler) Fire(msg tickMsg) {
	t, ok := s.timers[msg.id]
	if !ok {
		return
	}
	t.fn()
	if _, live := s.timers[msg.id]; live {
		s.pending = append(s.pending, t.cmd())
	}
}

// Flush returns the queued tick commands and clears the queue.
func (s *teaScheduler) Flush() tea.Cmd {
	cmds := s.pending
	s.pending = nil
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

// Active returns the number of live timers.
func (s *teaScheduler) Active() int {
	return len(s.timers)
}
