package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/ruminaider/job-browser/internal/browser"
)

// StatusBar renders the bottom row with counts, active filters and keyboard
// shortcuts.
type StatusBar struct {
	counts  browser.Counts
	phase   browser.Phase
	filters string
	focus   FocusZone
	width   int
}

// NewStatusBar creates a status bar with default values.
func NewStatusBar() StatusBar {
	return StatusBar{filters: "no filters"}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// Update refreshes the status bar.
func (s *StatusBar) Update(counts browser.Counts, phase browser.Phase, filters string, focus FocusZone) {
	s.counts = counts
	s.phase = phase
	s.filters = filters
	s.focus = focus
}

// View renders the status bar.
func (s StatusBar) View() string {
	var left string
	switch s.phase {
	case browser.PhaseEmpty, browser.PhaseLoading:
		left = "loading listings"
	case browser.PhaseError:
		left = "load failed"
	default:
		left = fmt.Sprintf("%s of %s jobs",
			humanize.Comma(int64(s.counts.Displayed)), humanize.Comma(int64(s.counts.Filtered)))
		if s.counts.Filtered != s.counts.Total {
			left += fmt.Sprintf(" (%s total)", humanize.Comma(int64(s.counts.Total)))
		}
		left += " · " + s.filters
	}

	shortcuts := []string{
		StatusBarKeyStyle.Render("Tab") + ": focus",
		StatusBarKeyStyle.Render("Ctrl+R") + ": reset",
		StatusBarKeyStyle.Render("q") + ": quit",
	}
	if s.focus == FocusSidebar {
		shortcuts = append([]string{StatusBarKeyStyle.Render("Enter") + ": edit"}, shortcuts...)
	}
	right := strings.Join(shortcuts, " · ")

	available := s.width - 2
	leftWidth := ansi.StringWidth(left)
	rightWidth := ansi.StringWidth(right)
	if leftWidth+rightWidth+1 > available {
		left = ansi.Truncate(left, max(0, available-rightWidth-1), "…")
		leftWidth = ansi.StringWidth(left)
	}
	gap := max(1, available-leftWidth-rightWidth)

	return StatusBarStyle.Width(s.width).Render(left + strings.Repeat(" ", gap) + right)
}
