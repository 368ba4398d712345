// Package batch decides which prefix of the filtered job list is visible and
// extends it one fixed-size batch at a time.
package batch

import (
	"time"

	"github.com/ruminaider/job-browser/internal/jobs"
	"github.com/ruminaider/job-browser/internal/schedule"
)

// Defaults used when Options leaves a field zero.
const (
	DefaultInitialSize = 9
	DefaultBatchSize   = 6
	DefaultDelay       = 500 * time.Millisecond
	// InitialMultiple is the granularity the first batch is rounded up to.
	InitialMultiple = 3
)

// Options configures a Planner.
type Options struct {
	InitialSize int           // records in the first batch
	BatchSize   int           // records per incremental batch
	Delay       time.Duration // simulated latency before a batch is appended
}

func (o Options) withDefaults() Options {
	if o.InitialSize <= 0 {
		o.InitialSize = DefaultInitialSize
	}
	if o.BatchSize <= 0 {
		o.BatchSize = DefaultBatchSize
	}
	if o.Delay < 0 {
		o.Delay = 0
	}
	return o
}

// InitialSize returns how many records fill a viewport of viewportRows when
// each record takes rowsPerCard rows, rounded up to a multiple of
// InitialMultiple.
func InitialSize(viewportRows, rowsPerCard int) int {
	if rowsPerCard <= 0 {
		rowsPerCard = 1
	}
	n := (viewportRows + rowsPerCard - 1) / rowsPerCard
	return RoundUp(n, InitialMultiple)
}

// RoundUp rounds n up to the next multiple of m, with a minimum of m.
func RoundUp(n, m int) int {
	if m <= 0 {
		return n
	}
	if n <= 0 {
		return m
	}
	return ((n + m - 1) / m) * m
}

// Window describes the displayed prefix after a planner step.
type Window struct {
	Displayed []jobs.Record // prefix of the filtered set, in filtered order
	Added     []jobs.Record // records appended by this step
	Total     int           // size of the filtered set
	Batches   int           // cursor after this step
	Empty     bool          // the filtered set has no records
	Exhausted bool          // every filtered record is displayed
}

// Planner tracks the pagination cursor and the loading flag. It is not safe
// for concurrent use; every call and every scheduled completion must run on
// the same event loop.
type Planner struct {
	opts     Options
	sched    schedule.Scheduler
	filtered []jobs.Record
	cursor   int
	loading  bool
	gen      uint64
	onBatch  func(Window)
}

// New creates a planner. Batch completions are scheduled through sched.
func New(opts Options, sched schedule.Scheduler) *Planner {
	if sched == nil {
		sched = schedule.Immediate{}
	}
	return &Planner{opts: opts.withDefaults(), sched: sched}
}

// OnBatch registers the callback invoked after an incremental batch has been
// appended.
func (p *Planner) OnBatch(fn func(Window)) {
	p.onBatch = fn
}

// SetInitialSize changes the first-batch size used by the next Reset.
func (p *Planner) SetInitialSize(n int) {
	if n > 0 {
		p.opts.InitialSize = n
	}
}

// Options returns the effective options.
func (p *Planner) Options() Options {
	return p.opts
}

// Reset starts over with a new filtered set and materializes the first
// batch. Any in-flight batch becomes stale and will be dropped on completion.
func (p *Planner) Reset(filtered []jobs.Record) Window {
	p.gen++
	p.loading = false
	p.filtered = filtered
	p.cursor = 0
	if len(filtered) == 0 {
		return p.window(nil)
	}
	p.cursor = 1
	shown := p.limit(p.cursor)
	return p.window(filtered[:shown:shown])
}

// Next starts loading the next batch. It returns false without doing
// anything if a batch is already loading or every record is displayed.
func (p *Planner) Next() bool {
	if p.loading || p.Exhausted() {
		return false
	}

	// The flag must be set before the delay starts so rapid scroll events
	// cannot queue a second load of the same slice.
	p.loading = true
	gen := p.gen
	start, end := p.limit(p.cursor), p.limit(p.cursor+1)
	slice := p.filtered[start:end:end]

	p.sched.After(p.opts.Delay, func() {
		if gen != p.gen {
			return
		}
		p.cursor++
		p.loading = false
		if p.onBatch != nil {
			p.onBatch(p.window(slice))
		}
	})
	return true
}

// Loading reports whether a batch is in flight.
func (p *Planner) Loading() bool {
	return p.loading
}

// Exhausted reports whether there is nothing left to load.
func (p *Planner) Exhausted() bool {
	return p.cursor == 0 || p.limit(p.cursor) >= len(p.filtered)
}

// Cursor returns the number of batches materialized.
func (p *Planner) Cursor() int {
	return p.cursor
}

// Displayed returns the current visible prefix.
func (p *Planner) Displayed() []jobs.Record {
	n := p.limit(p.cursor)
	return p.filtered[:n:n]
}

// Total returns the size of the filtered set.
func (p *Planner) Total() int {
	return len(p.filtered)
}

// limit returns how many records are visible after cursor batches.
func (p *Planner) limit(cursor int) int {
	if cursor <= 0 {
		return 0
	}
	n := p.opts.InitialSize + (cursor-1)*p.opts.BatchSize
	if n > len(p.filtered) {
		n = len(p.filtered)
	}
	return n
}

func (p *Planner) window(added []jobs.Record) Window {
	displayed := p.Displayed()
	return Window{
		Displayed: displayed,
		Added:     added,
		Total:     len(p.filtered),
		Batches:   p.cursor,
		Empty:     len(p.filtered) == 0,
		Exhausted: len(displayed) >= len(p.filtered),
	}
}
