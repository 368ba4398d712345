// Package browser ties the filter chain, batch planner and reconciler into a
// single browsing session driven from one event loop.
package browser

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ruminaider/job-browser/internal/apperr"
	"github.com/ruminaider/job-browser/internal/batch"
	"github.com/ruminaider/job-browser/internal/filter"
	"github.com/ruminaider/job-browser/internal/jobs"
	"github.com/ruminaider/job-browser/internal/metrics"
	"github.com/ruminaider/job-browser/internal/render"
	"github.com/ruminaider/job-browser/internal/schedule"
)

// User-facing placeholder messages.
const (
	MessageLoading     = "Loading job listings..."
	MessageNoListings  = "No listings available."
	MessageNoMatches   = "No jobs match the selected filters."
	MessageLoadFailure = "Failed to load job listings. Please try again later."
)

// Options configures a Session. Zero values fall back to package defaults.
type Options struct {
	Batch           batch.Options
	Render          render.Options
	ScrollThreshold int
	Scheduler       schedule.Scheduler
	Logger          *zap.Logger
	Metrics         *metrics.Recorder
}

// Counts summarizes the record set sizes.
type Counts struct {
	Total     int
	Filtered  int
	Displayed int
}

// Surface is a snapshot of what should be drawn.
type Surface struct {
	Phase       Phase
	Placeholder render.Placeholder
	Message     string
	Nodes       []render.Node
}

// Session owns all mutable state for one browsing session. It is not safe
// for concurrent use.
type Session struct {
	id        string
	store     *jobs.Store
	facets    jobs.Facets
	controls  Controls
	state     filter.State
	planner   *batch.Planner
	recon     *render.Reconciler
	phase     Phase
	message   string
	threshold int
	logger    *zap.Logger
	metrics   *metrics.Recorder
	loadStart time.Time
	onChange  func()
}

// NewSession creates a session in the Empty phase.
func NewSession(opts Options) *Session {
	if opts.Scheduler == nil {
		opts.Scheduler = schedule.Immediate{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.ScrollThreshold <= 0 {
		opts.ScrollThreshold = DefaultScrollThreshold
	}
	if opts.Render.TransitionDelay == 0 && opts.Render.StaggerDelay == 0 {
		opts.Render = render.Options{
			TransitionDelay: render.DefaultTransitionDelay,
			StaggerDelay:    render.DefaultStaggerDelay,
		}
	}

	id := uuid.NewString()
	s := &Session{
		id:        id,
		store:     jobs.NewStore(),
		planner:   batch.New(opts.Batch, opts.Scheduler),
		recon:     render.NewReconciler(opts.Render, opts.Scheduler),
		threshold: opts.ScrollThreshold,
		logger:    opts.Logger.With(zap.String("session", id)),
		metrics:   opts.Metrics,
	}
	s.planner.OnBatch(s.batchLoaded)
	s.recon.OnChange(s.changed)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// OnChange registers a callback fired when a scheduled step (a batch
// completion or a render transition) changes the surface.
func (s *Session) OnChange(fn func()) {
	s.onChange = fn
}

// SetViewport sizes the first batch to fill rows, given how many rows one
// card occupies. It takes effect on the next filter change.
func (s *Session) SetViewport(rows, rowsPerCard int) {
	s.planner.SetInitialSize(batch.InitialSize(rows, rowsPerCard))
}

// BeginLoad moves Empty to Loading.
func (s *Session) BeginLoad() error {
	if s.phase != PhaseEmpty {
		return apperr.Internal("load already started", nil)
	}
	s.phase = PhaseLoading
	s.message = MessageLoading
	s.loadStart = time.Now()
	s.logger.Info("loading listings")
	return nil
}

// Loaded installs the fetched record set. An empty set goes straight to
// NoResults without populating the controls.
func (s *Session) Loaded(records []jobs.Record) error {
	if s.phase != PhaseLoading {
		return apperr.Internal("records delivered outside the loading phase", nil)
	}
	s.metrics.Load(true, time.Since(s.loadStart))
	s.store.Load(records)

	if dups := jobs.DuplicateIDs(records); len(dups) > 0 {
		s.logger.Warn("duplicate record ids", zap.Ints("ids", dups))
	}

	if len(records) == 0 {
		s.phase = PhaseNoResults
		s.message = MessageNoListings
		s.logger.Info("loaded empty listing set")
		return nil
	}

	s.facets = jobs.CollectFacets(records)
	s.controls = controlsFor(s.facets)
	s.state = filter.Reset(s.controls.CTCBounds)
	s.logger.Info("listings loaded",
		zap.Int("records", len(records)),
		zap.Int("roles", len(s.facets.Roles)),
		zap.Int("technologies", len(s.facets.Technologies)),
	)
	s.refresh()
	return nil
}

// LoadFailed moves Loading to the terminal Error phase.
func (s *Session) LoadFailed(err error) {
	if s.phase != PhaseLoading {
		return
	}
	s.metrics.Load(false, time.Since(s.loadStart))
	s.phase = PhaseError
	s.message = MessageLoadFailure

	fields := []zap.Field{zap.Error(err)}
	if stack := apperr.StackOf(err); len(stack) > 0 {
		fields = append(fields, zap.ByteString("stack", stack))
	}
	s.logger.Error("loading listings failed", fields...)
}

// SetRole selects a role; the empty string or All clears it.
func (s *Session) SetRole(role string) bool {
	return s.update(func(st *filter.State) { st.Role = OptionValue(role) })
}

// SetExperience selects an experience label; the empty string or All clears
// it.
func (s *Session) SetExperience(exp string) bool {
	return s.update(func(st *filter.State) { st.Experience = OptionValue(exp) })
}

// SetTechnologies replaces the technology selection.
func (s *Session) SetTechnologies(techs []string) bool {
	return s.update(func(st *filter.State) { st.Technologies = dedupe(techs) })
}

// ToggleTechnology adds or removes one technology from the selection.
func (s *Session) ToggleTechnology(tech string) bool {
	return s.update(func(st *filter.State) {
		for i, t := range st.Technologies {
			if t == tech {
				st.Technologies = append(st.Technologies[:i:i], st.Technologies[i+1:]...)
				return
			}
		}
		st.Technologies = append(st.Technologies[:len(st.Technologies):len(st.Technologies)], tech)
	})
}

// SetCTCMin moves the lower compensation handle, clamping the upper one.
func (s *Session) SetCTCMin(v float64) bool {
	return s.update(func(st *filter.State) {
		st.CTC = st.CTC.SetMin(v)
	})
}

// SetCTCMax moves the upper compensation handle, clamping the lower one.
func (s *Session) SetCTCMax(v float64) bool {
	return s.update(func(st *filter.State) {
		st.CTC = st.CTC.SetMax(v)
	})
}

// SetCTC sets both handles at once.
func (s *Session) SetCTC(r filter.Range) bool {
	return s.update(func(st *filter.State) {
		st.CTC = r.Normalize()
	})
}

// ResetFilters clears every criterion and restores the full compensation
// range.
func (s *Session) ResetFilters() bool {
	return s.update(func(st *filter.State) { *st = filter.Reset(s.controls.CTCBounds) })
}

// Apply replaces the whole filter state.
func (s *Session) Apply(next filter.State) bool {
	return s.update(func(st *filter.State) {
		next.Technologies = dedupe(next.Technologies)
		next.CTC = next.CTC.Normalize()
		*st = next
	})
}

// Scrolled is the scroll trigger. It starts the next batch when the window
// is near the bottom and reports whether a batch was started.
func (s *Session) Scrolled(offset, viewHeight, contentHeight int) bool {
	if s.phase != PhasePopulated {
		return false
	}
	if !NearBottom(offset, viewHeight, contentHeight, s.threshold) {
		return false
	}

	// Set before Next so a synchronous completion can move back to Populated.
	s.phase = PhaseUpdating
	if !s.planner.Next() {
		s.phase = PhasePopulated
		return false
	}
	s.logger.Debug("batch requested", zap.Int("cursor", s.planner.Cursor()))
	return true
}

// Controls returns the filter form options. It is empty until a non-empty
// record set has loaded.
func (s *Session) Controls() Controls {
	return s.controls
}

// Filters returns the current filter state.
func (s *Session) Filters() filter.State {
	st := s.state
	st.Technologies = append([]string(nil), s.state.Technologies...)
	return st
}

// FilterSummary describes the active filters. A compensation range that
// still spans the data bounds is left out.
func (s *Session) FilterSummary() string {
	st := s.state
	if st.CTC.Equal(s.controls.CTCBounds) {
		st.CTC = filter.Range{}
	}
	return st.Summary()
}

// Surface returns a snapshot for drawing.
func (s *Session) Surface() Surface {
	return Surface{
		Phase:       s.phase,
		Placeholder: s.phase.Placeholder(),
		Message:     s.message,
		Nodes:       s.recon.Nodes(),
	}
}

// Nodes returns the rendered nodes, leaving ones included.
func (s *Session) Nodes() []render.Node {
	return s.recon.Nodes()
}

// RenderedIDs returns the identifiers on the surface that are not leaving.
func (s *Session) RenderedIDs() []int {
	return s.recon.RenderedIDs()
}

// Phase returns the surface phase.
func (s *Session) Phase() Phase { return s.phase }

// Message returns the placeholder text for the current phase, if any.
func (s *Session) Message() string {
	switch s.phase {
	case PhasePopulated, PhaseUpdating:
		return ""
	}
	return s.message
}

// Counts returns the full, filtered and displayed sizes.
func (s *Session) Counts() Counts {
	return Counts{
		Total:     s.store.Len(),
		Filtered:  len(s.store.Filtered()),
		Displayed: len(s.planner.Displayed()),
	}
}

// Exhausted reports whether every filtered record is displayed.
func (s *Session) Exhausted() bool {
	return s.planner.Exhausted()
}

// Settle completes pending render transitions immediately.
func (s *Session) Settle() {
	s.recon.Settle()
}

func (s *Session) update(mutate func(*filter.State)) bool {
	if !s.phase.Interactive() || !s.controls.Populated {
		return false
	}
	next := s.Filters()
	mutate(&next)
	if next.Equal(s.state) {
		return false
	}
	s.state = next
	s.logger.Debug("filters changed", zap.String("filters", s.state.Summary()))
	s.refresh()
	return true
}

// refresh recomputes the filtered set and resets the visible window to the
// first batch.
func (s *Session) refresh() {
	filtered := filter.Apply(s.store.All(), s.state)
	s.store.SetFiltered(filtered)
	s.metrics.FilterChanged(len(filtered))

	w := s.planner.Reset(filtered)
	s.reconcile(w.Displayed)
	if w.Empty {
		s.phase = PhaseNoResults
		s.message = MessageNoMatches
		return
	}
	s.phase = PhasePopulated
	s.message = ""
}

func (s *Session) batchLoaded(w batch.Window) {
	s.reconcile(w.Displayed)
	s.phase = PhasePopulated
	s.metrics.BatchLoaded()
	s.logger.Debug("batch loaded",
		zap.Int("added", len(w.Added)),
		zap.Int("displayed", len(w.Displayed)),
		zap.Int("filtered", w.Total),
	)
	s.changed()
}

func (s *Session) reconcile(desired []jobs.Record) {
	plan := s.recon.Reconcile(desired)
	s.metrics.Reconciled(len(plan.Inserted), len(plan.Removed))
}

func (s *Session) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
