package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ruminaider/job-browser/internal/browser"
	"github.com/ruminaider/job-browser/internal/render"
)

// List shows the job cards in a scrollable viewport together with the
// placeholder for the current surface phase.
type List struct {
	vp      viewport.Model
	surface browser.Surface
	spinner string
	focused bool
}

// NewList creates an empty list.
func NewList() List {
	return List{vp: viewport.New(0, 0)}
}

// SetSize sets the viewport dimensions.
func (l *List) SetSize(w, h int) {
	l.vp.Width = w
	l.vp.Height = h
	l.refresh()
}

// SetFocused sets whether the list has keyboard focus.
func (l *List) SetFocused(f bool) {
	l.focused = f
}

// SetSurface replaces the drawn surface.
func (l *List) SetSurface(s browser.Surface, spinnerFrame string) {
	l.surface = s
	l.spinner = spinnerFrame
	l.refresh()
}

// ScrollBy moves the window by n rows.
func (l *List) ScrollBy(n int) {
	l.vp.SetYOffset(l.vp.YOffset + n)
}

// GotoTop scrolls to the first card.
func (l *List) GotoTop() {
	l.vp.GotoTop()
}

// GotoBottom scrolls to the end.
func (l *List) GotoBottom() {
	l.vp.GotoBottom()
}

// Update forwards mouse wheel events to the viewport.
func (l List) Update(msg tea.Msg) (List, tea.Cmd) {
	if _, ok := msg.(tea.MouseMsg); !ok {
		return l, nil
	}
	var cmd tea.Cmd
	l.vp, cmd = l.vp.Update(msg)
	return l, cmd
}

// Offset returns the first visible row.
func (l List) Offset() int { return l.vp.YOffset }

// Height returns the viewport height.
func (l List) Height() int { return l.vp.Height }

// ContentHeight returns the total number of rendered rows.
func (l List) ContentHeight() int { return l.vp.TotalLineCount() }

// View renders the viewport.
func (l List) View() string {
	return l.vp.View()
}

func (l *List) refresh() {
	offset := l.vp.YOffset
	l.vp.SetContent(l.content())
	l.vp.SetYOffset(offset)
}

func (l List) content() string {
	width := max(20, l.vp.Width)
	var b strings.Builder

	switch l.surface.Placeholder {
	case render.PlaceholderInitialLoading:
		return "\n" + l.spinner + " " + PlaceholderStyle.Render(l.surface.Message)
	case render.PlaceholderError:
		return "\n" + ErrorPlaceholderStyle.Render(l.surface.Message)
	}

	for _, n := range l.surface.Nodes {
		b.WriteString(RenderCard(n, width))
		b.WriteString("\n")
	}

	switch l.surface.Placeholder {
	case render.PlaceholderNoResults:
		b.WriteString("\n")
		b.WriteString(PlaceholderStyle.Render(l.surface.Message))
	case render.PlaceholderBatchLoading:
		b.WriteString(l.spinner + " " + PlaceholderStyle.Render("Loading more jobs..."))
	default:
		if len(l.surface.Nodes) > 0 {
			b.WriteString(DimStyle.PaddingLeft(2).Render(fmt.Sprintf("%d shown", visibleCount(l.surface.Nodes))))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func visibleCount(nodes []render.Node) int {
	n := 0
	for _, node := range nodes {
		if node.Phase != render.PhaseLeaving {
			n++
		}
	}
	return n
}

// newSpinner builds the loading spinner.
func newSpinner() spinner.Model {
	return spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(SpinnerStyle),
	)
}
