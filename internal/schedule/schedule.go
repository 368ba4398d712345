// Package schedule provides the delayed-callback abstraction used for
// simulated loading latency and render transitions. Callbacks always run on
// the caller's event loop; implementations never invoke them concurrently.
package schedule

import (
	"sort"
	"time"
)

// Scheduler runs fn once after d has elapsed.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Func adapts a plain function to the Scheduler interface.
type Func func(d time.Duration, fn func())

// After implements Scheduler.
func (f Func) After(d time.Duration, fn func()) { f(d, fn) }

// Immediate runs every callback synchronously, ignoring the delay. Useful for
// headless callers that do not animate.
type Immediate struct{}

// After implements Scheduler.
func (Immediate) After(_ time.Duration, fn func()) { fn() }

type pending struct {
	at  time.Duration
	seq int
	fn  func()
}

// Manual is a fake clock. Callbacks run only when Advance or RunAll moves
// virtual time past their due point, in due order (ties run in scheduling
// order).
type Manual struct {
	now     time.Duration
	seq     int
	pending []pending
}

// NewManual creates a fake clock at virtual time zero.
func NewManual() *Manual {
	return &Manual{}
}

// After implements Scheduler.
func (m *Manual) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	m.seq++
	m.pending = append(m.pending, pending{at: m.now + d, seq: m.seq, fn: fn})
}

// Now returns the current virtual time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of callbacks not yet run.
func (m *Manual) Pending() int {
	return len(m.pending)
}

// Advance moves virtual time forward by d and runs every callback that
// becomes due, including callbacks scheduled by those callbacks.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next, ok := m.popDue(target)
		if !ok {
			break
		}
		m.now = next.at
		next.fn()
	}
	m.now = target
}

// RunAll runs callbacks until none remain, advancing time as needed.
func (m *Manual) RunAll() {
	for len(m.pending) > 0 {
		m.sort()
		m.Advance(m.pending[0].at - m.now)
	}
}

func (m *Manual) popDue(target time.Duration) (pending, bool) {
	if len(m.pending) == 0 {
		return pending{}, false
	}
	m.sort()
	if m.pending[0].at > target {
		return pending{}, false
	}
	next := m.pending[0]
	m.pending = m.pending[1:]
	return next, true
}

func (m *Manual) sort() {
	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].at != m.pending[j].at {
			return m.pending[i].at < m.pending[j].at
		}
		return m.pending[i].seq < m.pending[j].seq
	})
}
