package render

import (
	"time"

	"github.com/ruminaider/job-browser/internal/jobs"
	"github.com/ruminaider/job-browser/internal/schedule"
)

// Default transition timings.
const (
	DefaultTransitionDelay = 300 * time.Millisecond
	DefaultStaggerDelay    = 50 * time.Millisecond
)

// Phase is the lifecycle stage of a rendered node.
type Phase int

const (
	PhaseEntering Phase = iota // inserted, waiting for its staggered reveal
	PhaseVisible               // fully shown
	PhaseLeaving               // marked for removal, detached after the transition delay
)

func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseVisible:
		return "visible"
	case PhaseLeaving:
		return "leaving"
	default:
		return "unknown"
	}
}

// Node is one card on the surface.
type Node struct {
	ID    int
	Card  CardView
	Phase Phase
	token uint64
}

// Insertion places a new node before an existing one.
type Insertion struct {
	ID     int
	Before int  // anchor ID; ignored when Append is true
	Append bool // no following sibling is present, append at the end
	Index  int  // position in insertion order, drives the reveal stagger
}

// Plan is a minimal diff between two identifier sequences.
type Plan struct {
	Removed  []int
	Inserted []Insertion
}

// Empty reports whether the plan changes nothing.
func (p Plan) Empty() bool {
	return len(p.Removed) == 0 && len(p.Inserted) == 0
}

// Diff computes the removals and insertions that turn previous into desired.
// Removed IDs keep their previous order; insertions follow desired order and
// anchor on the nearest following desired record that is already present.
func Diff(previous []int, desired []jobs.Record) Plan {
	prev := make(map[int]bool, len(previous))
	for _, id := range previous {
		prev[id] = true
	}
	want := make(map[int]bool, len(desired))
	for _, r := range desired {
		want[r.ID] = true
	}

	var plan Plan
	for _, id := range previous {
		if !want[id] {
			plan.Removed = append(plan.Removed, id)
		}
	}

	// Walk backwards so the nearest present follower is known for each gap.
	anchor, hasAnchor := 0, false
	var reversed []Insertion
	for i := len(desired) - 1; i >= 0; i-- {
		id := desired[i].ID
		if prev[id] {
			anchor, hasAnchor = id, true
			continue
		}
		reversed = append(reversed, Insertion{ID: id, Before: anchor, Append: !hasAnchor})
	}
	for i := len(reversed) - 1; i >= 0; i-- {
		ins := reversed[i]
		ins.Index = len(plan.Inserted)
		plan.Inserted = append(plan.Inserted, ins)
	}
	return plan
}

// Options configures reconciliation timing.
type Options struct {
	TransitionDelay time.Duration // how long a removed node stays before detaching
	StaggerDelay    time.Duration // per-insertion reveal offset
}

// Reconciler owns the rendered surface. It is driven from a single event
// loop; scheduled detach and reveal callbacks run on that loop as well.
type Reconciler struct {
	opts     Options
	sched    schedule.Scheduler
	nodes    []*Node
	seq      uint64
	onChange func()
}

// NewReconciler creates an empty surface.
func NewReconciler(opts Options, sched schedule.Scheduler) *Reconciler {
	if sched == nil {
		sched = schedule.Immediate{}
	}
	return &Reconciler{opts: opts, sched: sched}
}

// OnChange registers a callback fired whenever a scheduled transition
// mutates the surface.
func (r *Reconciler) OnChange(fn func()) {
	r.onChange = fn
}

// RenderedIDs returns the identifiers currently on the surface that are not
// on their way out, in surface order.
func (r *Reconciler) RenderedIDs() []int {
	ids := make([]int, 0, len(r.nodes))
	for _, n := range r.nodes {
		if n.Phase != PhaseLeaving {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

// Nodes returns a snapshot of every node on the surface, leaving ones
// included, in surface order.
func (r *Reconciler) Nodes() []Node {
	out := make([]Node, len(r.nodes))
	for i, n := range r.nodes {
		out[i] = *n
	}
	return out
}

// Len returns the number of nodes, leaving ones included.
func (r *Reconciler) Len() int {
	return len(r.nodes)
}

// Reconcile makes the surface match desired and returns the applied plan.
// Calling it again with the same sequence yields an empty plan.
func (r *Reconciler) Reconcile(desired []jobs.Record) Plan {
	plan := Diff(r.RenderedIDs(), desired)
	if plan.Empty() {
		return plan
	}

	for _, id := range plan.Removed {
		n := r.find(id, false)
		if n == nil {
			continue
		}
		n.Phase = PhaseLeaving
		n.token = r.next()
		r.scheduleDetach(n.ID, n.token)
	}

	byID := make(map[int]jobs.Record, len(desired))
	for _, rec := range desired {
		byID[rec.ID] = rec
	}

	for _, ins := range plan.Inserted {
		// A node still fading out is pulled immediately so the ID is never
		// on the surface twice.
		if old := r.find(ins.ID, true); old != nil {
			r.detach(old)
		}
		n := &Node{ID: ins.ID, Card: Card(byID[ins.ID]), Phase: PhaseEntering, token: r.next()}
		r.insert(n, ins)
		r.scheduleReveal(n.ID, n.token, time.Duration(ins.Index)*r.opts.StaggerDelay)
	}
	return plan
}

// Settle finishes every pending transition immediately: leaving nodes are
// detached and entering nodes revealed.
func (r *Reconciler) Settle() {
	kept := r.nodes[:0]
	for _, n := range r.nodes {
		switch n.Phase {
		case PhaseLeaving:
			continue
		case PhaseEntering:
			n.Phase = PhaseVisible
		}
		kept = append(kept, n)
	}
	r.nodes = kept
}

func (r *Reconciler) insert(n *Node, ins Insertion) {
	if !ins.Append {
		for i, existing := range r.nodes {
			if existing.ID == ins.Before && existing.Phase != PhaseLeaving {
				r.nodes = append(r.nodes, nil)
				copy(r.nodes[i+1:], r.nodes[i:])
				r.nodes[i] = n
				return
			}
		}
	}
	r.nodes = append(r.nodes, n)
}

func (r *Reconciler) scheduleDetach(id int, token uint64) {
	r.sched.After(r.opts.TransitionDelay, func() {
		n := r.find(id, true)
		if n == nil || n.token != token {
			return
		}
		r.detach(n)
		r.changed()
	})
}

func (r *Reconciler) scheduleReveal(id int, token uint64, delay time.Duration) {
	r.sched.After(delay, func() {
		n := r.find(id, false)
		if n == nil || n.token != token || n.Phase != PhaseEntering {
			return
		}
		n.Phase = PhaseVisible
		r.changed()
	})
}

// find returns the node with id whose leaving state matches leaving.
func (r *Reconciler) find(id int, leaving bool) *Node {
	for _, n := range r.nodes {
		if n.ID == id && (n.Phase == PhaseLeaving) == leaving {
			return n
		}
	}
	return nil
}

func (r *Reconciler) detach(target *Node) {
	for i, n := range r.nodes {
		if n == target {
			r.nodes = append(r.nodes[:i], r.nodes[i+1:]...)
			return
		}
	}
}

func (r *Reconciler) next() uint64 {
	r.seq++
	return r.seq
}

func (r *Reconciler) changed() {
	if r.onChange != nil {
		r.onChange()
	}
}
