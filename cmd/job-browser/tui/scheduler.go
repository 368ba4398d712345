package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Scheduler turns delayed callbacks into tea.Tick commands so every callback
// runs inside Update. Commands accumulate until Drain is called.
type Scheduler struct {
	next      int
	callbacks map[int]func()
	cmds      []tea.Cmd
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{callbacks: make(map[int]func())}
}

// After implements schedule.Scheduler.
func (s *Scheduler) After(d time.Duration, fn func()) {
	s.next++
	id := s.next
	s.callbacks[id] = fn
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{ID: id}
	}))
}

// Fire runs the callback registered under id. Unknown or already fired ids
// are ignored.
func (s *Scheduler) Fire(id int) bool {
	fn, ok := s.callbacks[id]
	if !ok {
		return false
	}
	delete(s.callbacks, id)
	fn()
	return true
}

// Pending returns the number of callbacks not yet fired.
func (s *Scheduler) Pending() int {
	return len(s.callbacks)
}

// Drain returns the tick commands queued since the last call.
func (s *Scheduler) Drain() tea.Cmd {
	if len(s.cmds) == 0 {
		return nil
	}
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}
