// Package clock provides the repeating-timer abstraction that drives the game
// loop. Implementations decide where time comes from (bubbletea ticks, frame
// counts, explicit test advances); callers only see schedule and cancel.
package clock

import (
	"sort"
	"time"
)

// Handle is a cancellable scheduled timer.
type Handle interface {
	// Cancel stops the timer. Callbacks already running finish; no further
	// callbacks fire. Cancel is idempotent.
	Cancel()
}

// Scheduler installs repeating callbacks.
// Callbacks must run on the same logical thread as the caller's other state
// mutations; implementations never fire two callbacks concurrently.
type Scheduler interface {
	ScheduleRepeating(interval time.Duration, fn func()) Handle
}

// Manual is a Scheduler driven by explicit Advance calls.
// Tests use it to step the game loop without waiting on the wall clock, and
// frame-based frontends advance it by their frame duration.
type Manual struct {
	now    time.Duration
	nextID uint64
	timers map[uint64]*manualTimer
}

type manualTimer struct {
	owner    *Manual
	id       uint64
	interval time.Duration
	next     time.Duration
	fn       func()
}

// NewManual creates a manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{timers: make(map[uint64]*manualTimer)}
}

// ScheduleRepeating installs fn to fire every interval, first at now+interval.
// Non-positive intervals are treated as one nanosecond.
func (m *Manual) ScheduleRepeating(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		interval = time.Nanosecond
	}
	m.nextID++
	t := &manualTimer{
		owner:    m,
		id:       m.nextID,
		interval: interval,
		next:     m.now + interval,
		fn:       fn,
	}
	m.timers[t.id] = t
	return t
}

// Cancel removes the timer from its scheduler.
func (t *manualTimer) Cancel() {
	delete(t.owner.timers, t.id)
}

// Advance moves time forward by d, firing every due callback in deadline
// order (ties broken by schedule order). Callbacks may cancel or install
// timers; newly installed timers count from the moment they were scheduled.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		t := m.nextDue(target)
		if t == nil {
			break
		}
		m.now = t.next
		t.next += t.interval
		t.fn()
	}
	m.now = target
}

// nextDue returns the earliest live timer due at or before target.
func (m *Manual) nextDue(target time.Duration) *manualTimer {
	var best *manualTimer
	for _, t := range m.timers {
		if t.next > target {
			continue
		}
		if best == nil || t.next < best.next || (t.next == best.next && t.id < best.id) {
			best = t
		}
	}
	return best
}

// Now returns the scheduler's elapsed time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Active returns the number of live timers.
func (m *Manual) Active() int {
	return len(m.timers)
}

// Intervals returns the intervals of live timers, in schedule order.
func (m *Manual) Intervals() []time.Duration {
	ids := make([]uint64, 0, len(m.timers))
	for id := range m.timers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]time.Duration, len(ids))
	for i, id := range ids {
		out[i] = m.timers[id].interval
	}
	return out
}
