package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ruminaider/job-browser/internal/render"
)

// CardHeight is the number of rows one card occupies, separator included.
const CardHeight = 4

// RenderCheckbox returns a styled [x] or [ ] checkbox.
func RenderCheckbox(focused, selected bool) string {
	if focused {
		if selected {
			return SelectedStyle.Render("[x]")
		}
		return UnselectedStyle.Render("[ ]")
	}
	if selected {
		return DimStyle.Render("[x]")
	}
	return DimStyle.Render("[ ]")
}

// RenderItemText returns styled display text for a list item.
func RenderItemText(text string, focused, isCurrent bool) string {
	if isCurrent {
		return lipgloss.NewStyle().Bold(true).Foreground(colorText).Render(text)
	}
	if focused {
		return text
	}
	return DimStyle.Render(text)
}

// RenderCard draws one node as CardHeight lines: title and salary, the
// company line, the tag line and a blank separator.
func RenderCard(n render.Node, width int) string {
	c := n.Card
	inner := max(10, width-2)

	meta := []string{c.Company, c.Location}
	if c.Type != "" {
		meta = append(meta, c.Type)
	}
	meta = append(meta, c.Experience)

	salary := c.Salary
	title := ansi.Truncate(c.Title, max(1, inner-ansi.StringWidth(salary)-1), "…")
	gap := max(1, inner-ansi.StringWidth(title)-ansi.StringWidth(salary))
	metaLine := ansi.Truncate(strings.Join(meta, " · "), inner, "…")
	tagLine := ansi.Truncate(c.TagLine(), inner, "…")

	var lines []string
	switch n.Phase {
	case render.PhaseEntering:
		lines = []string{
			EnteringCardStyle.Render(title + strings.Repeat(" ", gap) + salary),
			EnteringCardStyle.Render(metaLine),
			EnteringCardStyle.Render(tagLine),
		}
	case render.PhaseLeaving:
		lines = []string{
			LeavingCardStyle.Render(title + strings.Repeat(" ", gap) + salary),
			LeavingCardStyle.Render(metaLine),
			LeavingCardStyle.Render(tagLine),
		}
	default:
		lines = []string{
			CardTitleStyle.Render(title) + strings.Repeat(" ", gap) + CardSalaryStyle.Render(salary),
			CardMetaStyle.Render(metaLine),
			CardTagStyle.Render(tagLine),
		}
	}

	gutter := CardGutterStyle.Render("│ ")
	for i := range lines {
		lines[i] = gutter + lines[i]
	}
	return strings.Join(append(lines, ""), "\n")
}
