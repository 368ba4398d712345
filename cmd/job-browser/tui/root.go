package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ruminaider/job-browser/internal/apperr"
	"github.com/ruminaider/job-browser/internal/batch"
	"github.com/ruminaider/job-browser/internal/browser"
	"github.com/ruminaider/job-browser/internal/metrics"
	"github.com/ruminaider/job-browser/internal/render"
	"github.com/ruminaider/job-browser/internal/source"
)

var errNoSource = apperr.Internal("no listing source configured", nil)

// Options configures the root model.
type Options struct {
	Source          source.Source
	Timeout         time.Duration
	Batch           batch.Options
	Render          render.Options
	ScrollThreshold int
	Logger          *zap.Logger
	Metrics         *metrics.Recorder
}

// Model is the root bubbletea model. All session state lives behind the
// session pointer; scheduled callbacks come back as TickMsg and run here.
type Model struct {
	session *browser.Session
	sched   *Scheduler
	src     source.Source
	timeout time.Duration
	logger  *zap.Logger

	// Layout components.
	sidebar   Sidebar
	list      List
	statusBar StatusBar
	overlay   Overlay
	spinner   spinner.Model
	keys      KeyMap

	// Section the active overlay edits.
	overlaySection Section

	focusZone     FocusZone
	width, height int
	ready         bool
	spinning      bool
	quitting      bool
}

// NewModel creates the root model. Loading starts in Init.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = source.DefaultTimeout
	}

	sched := NewScheduler()
	session := browser.NewSession(browser.Options{
		Batch:           opts.Batch,
		Render:          opts.Render,
		ScrollThreshold: opts.ScrollThreshold,
		Scheduler:       sched,
		Logger:          opts.Logger,
		Metrics:         opts.Metrics,
	})

	m := Model{
		session:   session,
		sched:     sched,
		src:       opts.Source,
		timeout:   opts.Timeout,
		logger:    opts.Logger,
		sidebar:   NewSidebar(),
		list:      NewList(),
		statusBar: NewStatusBar(),
		spinner:   newSpinner(),
		keys:      DefaultKeyMap(),
		focusZone: FocusSidebar,
	}
	m.sidebar.SetFocused(true)
	return m
}

// Session exposes the browsing session.
func (m Model) Session() *browser.Session {
	return m.session
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Init starts the fetch and the loading spinner.
func (m Model) Init() tea.Cmd {
	if err := m.session.BeginLoad(); err != nil {
		m.logger.Warn("load already started", zap.Error(err))
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m Model) loadCmd() tea.Cmd {
	src, timeout := m.src, m.timeout
	return func() tea.Msg {
		if src == nil {
			return LoadFailedMsg{Err: errNoSource}
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		records, err := src.Load(ctx)
		if err != nil {
			return LoadFailedMsg{Err: err}
		}
		return LoadedMsg{Records: records}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.distributeSize()
		m.sync()
		return m, nil

	case LoadedMsg:
		if err := m.session.Loaded(msg.Records); err != nil {
			m.logger.Warn("ignoring records", zap.Error(err))
		}
		m.sync()
		m.checkScroll()
		return m, m.afterUpdate()

	case LoadFailedMsg:
		m.session.LoadFailed(msg.Err)
		m.sync()
		return m, nil

	case TickMsg:
		m.sched.Fire(msg.ID)
		m.sync()
		m.checkScroll()
		return m, m.afterUpdate()

	case spinner.TickMsg:
		if !m.busy() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.sync()
		return m, cmd

	case OverlayCloseMsg:
		return m.handleOverlayClose(msg)

	case OpenSectionMsg:
		m.openSection(msg.Section)
		return m, nil

	case FocusChangeMsg:
		m.setFocus(msg.Zone)
		return m, nil

	case SectionSwitchMsg:
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		m.checkScroll()
		return m, m.afterUpdate(cmd)
	}

	// When an overlay is active it receives every key.
	if m.overlay.Active() {
		var cmd tea.Cmd
		m.overlay, cmd = m.overlay.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.SwitchPane):
		if m.focusZone == FocusSidebar {
			m.setFocus(FocusList)
		} else {
			m.setFocus(FocusSidebar)
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Reset):
		m.openSection(SectionReset)
		return m, nil
	}

	if m.focusZone == FocusSidebar {
		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.Update(keyMsg)
		return m, cmd
	}
	return m.updateList(keyMsg)
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Sidebar):
		m.setFocus(FocusSidebar)
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.list.ScrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		m.list.ScrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		m.list.ScrollBy(-m.list.Height())
	case key.Matches(msg, m.keys.PageDown):
		m.list.ScrollBy(m.list.Height())
	case key.Matches(msg, m.keys.Top):
		m.list.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.list.GotoBottom()
	default:
		return m, nil
	}
	m.checkScroll()
	return m, m.afterUpdate()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "\n  " + browser.MessageLoading
	}

	header := HeaderStyle.Render("Job listings")
	content := ContentPaneStyle.Render(header + "\n" + m.list.View())
	main := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), content)
	frame := lipgloss.JoinVertical(lipgloss.Left, main, m.statusBar.View())

	if m.overlay.Active() {
		return Composite(frame, m.overlay.View(), m.width, m.height)
	}
	return frame
}

// openSection opens the editor overlay for a filter section.
func (m *Model) openSection(section Section) {
	controls := m.session.Controls()
	if !controls.Populated {
		return
	}
	st := m.session.Filters()

	switch section {
	case SectionRole:
		m.overlay = NewChoiceOverlay("Role", controls.Roles, browser.OptionLabel(st.Role))
	case SectionTechnologies:
		m.overlay = NewMultiChoiceOverlay("Technologies", controls.Technologies, st.Technologies)
	case SectionExperience:
		m.overlay = NewChoiceOverlay("Experience", controls.Experience, browser.OptionLabel(st.Experience))
	case SectionCompensation:
		m.overlay = NewRangeOverlay("Compensation", controls.CTCBounds, controls.CTCStep, st.CTC)
	case SectionReset:
		m.overlay = NewConfirmOverlay("Reset filters", "Clear every filter and show all jobs?")
	default:
		return
	}
	m.overlaySection = section
	m.sidebar.SetActive(section)
}

func (m Model) handleOverlayClose(msg OverlayCloseMsg) (tea.Model, tea.Cmd) {
	section := m.overlaySection
	if !msg.Confirmed {
		return m, nil
	}

	var changed bool
	switch section {
	case SectionRole:
		changed = m.session.SetRole(msg.Result)
	case SectionTechnologies:
		changed = m.session.SetTechnologies(msg.Results)
	case SectionExperience:
		changed = m.session.SetExperience(msg.Result)
	case SectionCompensation:
		changed = m.session.SetCTC(msg.Range)
	case SectionReset:
		changed = m.session.ResetFilters()
	}
	if !changed {
		return m, nil
	}

	m.logger.Debug("filter applied", zap.String("section", section.String()))
	m.list.GotoTop()
	m.sync()
	m.checkScroll()
	return m, m.afterUpdate()
}

func (m *Model) setFocus(zone FocusZone) {
	m.focusZone = zone
	m.sidebar.SetFocused(zone == FocusSidebar)
	m.list.SetFocused(zone == FocusList)
	m.syncStatusBar()
}

// checkScroll is the scroll trigger: it asks the session for the next batch
// when the window is near the bottom.
func (m *Model) checkScroll() {
	if m.session.Scrolled(m.list.Offset(), m.list.Height(), m.list.ContentHeight()) {
		m.sync()
	}
}

// afterUpdate collects scheduled ticks and starts the spinner when a load
// is in flight.
func (m *Model) afterUpdate(cmds ...tea.Cmd) tea.Cmd {
	cmds = append(cmds, m.sched.Drain())
	if m.busy() && !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m Model) busy() bool {
	switch m.session.Phase() {
	case browser.PhaseLoading, browser.PhaseUpdating:
		return true
	}
	return false
}

// distributeSize propagates the terminal size to children.
func (m *Model) distributeSize() {
	contentHeight := max(1, m.height-1)
	m.sidebar.SetHeight(contentHeight)
	m.statusBar.SetWidth(m.width)

	listWidth := max(20, m.width-SidebarWidth-1-2)
	listHeight := max(1, contentHeight-1)
	m.list.SetSize(listWidth, listHeight)
	m.session.SetViewport(listHeight, CardHeight)
}

// sync pushes session state into the child components.
func (m *Model) sync() {
	m.list.SetSurface(m.session.Surface(), m.spinner.View())
	m.syncSidebar()
	m.syncStatusBar()
}

func (m *Model) syncSidebar() {
	controls := m.session.Controls()
	st := m.session.Filters()
	avail := controls.Populated

	m.sidebar.SetEntry(SectionRole, browser.OptionLabel(st.Role), st.Role != "", avail)

	techs := "Any"
	if len(st.Technologies) > 0 {
		techs = strings.Join(st.Technologies, ", ")
	}
	m.sidebar.SetEntry(SectionTechnologies, techs, len(st.Technologies) > 0, avail)

	m.sidebar.SetEntry(SectionExperience, browser.OptionLabel(st.Experience), st.Experience != "", avail)

	ctc := "Any"
	narrowed := !st.CTC.IsUnset() && !st.CTC.Equal(controls.CTCBounds)
	if narrowed {
		ctc = st.CTC.String()
	}
	m.sidebar.SetEntry(SectionCompensation, ctc, narrowed, avail)

	m.sidebar.SetEntry(SectionReset, "", false, avail)
}

func (m *Model) syncStatusBar() {
	m.statusBar.Update(m.session.Counts(), m.session.Phase(), m.session.FilterSummary(), m.focusZone)
}
