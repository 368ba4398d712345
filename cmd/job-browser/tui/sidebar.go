package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// SidebarEntry holds display data for one filter section.
type SidebarEntry struct {
	Section   Section
	Value     string // current selection, shown under the name
	Active    bool   // the filter narrows the list
	Available bool   // false until options have loaded
}

// Sidebar renders the left-hand filter sections.
type Sidebar struct {
	sections []SidebarEntry
	active   int
	height   int
	focused  bool
}

// NewSidebar creates a sidebar with entries for all sections, all
// unavailable until options arrive.
func NewSidebar() Sidebar {
	entries := make([]SidebarEntry, len(AllSections))
	for i, s := range AllSections {
		entries[i] = SidebarEntry{Section: s}
	}
	return Sidebar{sections: entries}
}

// SetHeight sets the available height for rendering.
func (s *Sidebar) SetHeight(h int) {
	s.height = h
}

// SetFocused sets whether the sidebar currently has keyboard focus.
func (s *Sidebar) SetFocused(f bool) {
	s.focused = f
}

// Focused reports whether the sidebar has keyboard focus.
func (s Sidebar) Focused() bool {
	return s.focused
}

// SetActive moves the cursor to the given section.
func (s *Sidebar) SetActive(section Section) {
	for i, e := range s.sections {
		if e.Section == section {
			s.active = i
			return
		}
	}
}

// ActiveSection returns the highlighted section.
func (s Sidebar) ActiveSection() Section {
	if s.active >= 0 && s.active < len(s.sections) {
		return s.sections[s.active].Section
	}
	return SectionRole
}

// SetEntry updates the value shown for a section.
func (s *Sidebar) SetEntry(section Section, value string, active, available bool) {
	for i := range s.sections {
		if s.sections[i].Section == section {
			s.sections[i].Value = value
			s.sections[i].Active = active
			s.sections[i].Available = available
			return
		}
	}
}

// Entry returns the entry for a section.
func (s Sidebar) Entry(section Section) SidebarEntry {
	for _, e := range s.sections {
		if e.Section == section {
			return e
		}
	}
	return SidebarEntry{Section: section}
}

// nextAvailable finds the next available section index in the given
// direction, or current if there is none.
func (s Sidebar) nextAvailable(current, dir int) int {
	next := current + dir
	for next >= 0 && next < len(s.sections) {
		if s.sections[next].Available {
			return next
		}
		next += dir
	}
	return current
}

// Update handles key messages when the sidebar has focus.
func (s Sidebar) Update(msg tea.Msg) (Sidebar, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			prev := s.nextAvailable(s.active, -1)
			if prev != s.active {
				s.active = prev
				return s, func() tea.Msg {
					return SectionSwitchMsg{Section: s.sections[s.active].Section}
				}
			}
		case "down", "j":
			next := s.nextAvailable(s.active, +1)
			if next != s.active {
				s.active = next
				return s, func() tea.Msg {
					return SectionSwitchMsg{Section: s.sections[s.active].Section}
				}
			}
		case "enter", " ":
			if s.sections[s.active].Available {
				section := s.sections[s.active].Section
				return s, func() tea.Msg {
					return OpenSectionMsg{Section: section}
				}
			}
		case "right", "l":
			return s, func() tea.Msg {
				return FocusChangeMsg{Zone: FocusList}
			}
		}
	}
	return s, nil
}

// View renders the sections, each with its current value on the next line.
func (s Sidebar) View() string {
	rowWidth := SidebarWidth
	textWidth := rowWidth - 1

	lines := make([]string, 0, s.height)
	lines = append(lines, HeaderStyle.PaddingLeft(1).Render("Filters"), "")

	for i, e := range s.sections {
		name := e.Section.String()
		if e.Active {
			name += " •"
		}

		if !e.Available {
			lines = append(lines, UnavailableSidebarStyle.Render(fmt.Sprintf("%-*s", textWidth, name)))
			lines = append(lines, "")
			continue
		}

		label := fmt.Sprintf("%-*s", textWidth, name)
		switch {
		case i == s.active && s.focused:
			lines = append(lines, ActiveSidebarStyle.Width(rowWidth).Render(label))
		case i == s.active:
			dimActiveStyle := lipgloss.NewStyle().
				Foreground(colorSubtext0).
				Background(colorSurface0).
				PaddingLeft(1)
			lines = append(lines, dimActiveStyle.Width(rowWidth).Render(label))
		case s.focused:
			lines = append(lines, InactiveSidebarStyle.Width(rowWidth).Render(label))
		default:
			lines = append(lines, DimStyle.PaddingLeft(1).Width(rowWidth).Render(label))
		}

		value := ansi.Truncate(e.Value, textWidth-3, "…")
		lines = append(lines, SidebarValueStyle.Render(value))
	}

	for len(lines) < s.height {
		lines = append(lines, "")
	}
	if s.height > 0 && len(lines) > s.height {
		lines = lines[:s.height]
	}

	borderColor := colorSurface1
	if s.focused {
		borderColor = colorBlue
	}
	return SidebarContainerStyle.
		Height(s.height).
		BorderForeground(borderColor).
		Render(strings.Join(lines, "\n"))
}
