package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/ruminaider/job-browser/internal/filter"
	"github.com/ruminaider/job-browser/internal/render"
)

// OverlayType identifies the kind of modal overlay.
type OverlayType int

const (
	OverlayConfirm     OverlayType = iota // Yes/No confirmation
	OverlayChoice                         // single choice with cursor
	OverlayMultiChoice                    // checkbox list
	OverlayRange                          // dual-handle numeric range
)

// maxVisibleChoices caps the rows a choice list shows before scrolling.
const maxVisibleChoices = 12

// rangeTrackWidth is the slider width in cells.
const rangeTrackWidth = 30

// Overlay renders a centered modal box on top of existing content.
type Overlay struct {
	overlayType OverlayType
	title       string
	message     string
	choices     []string
	checked     map[int]bool
	cursor      int // choice index, or button index for Confirm (0=Cancel, 1=OK)
	offset      int // first visible choice
	bounds      filter.Range
	step        float64
	value       filter.Range
	active      bool
}

// NewConfirmOverlay creates a confirmation dialog with Cancel/OK buttons.
func NewConfirmOverlay(title, message string) Overlay {
	return Overlay{
		overlayType: OverlayConfirm,
		title:       title,
		message:     message,
		cursor:      1,
		active:      true,
	}
}

// NewChoiceOverlay creates a single-choice list with the cursor on current.
func NewChoiceOverlay(title string, choices []string, current string) Overlay {
	o := Overlay{
		overlayType: OverlayChoice,
		title:       title,
		choices:     choices,
		active:      true,
	}
	for i, c := range choices {
		if c == current {
			o.cursor = i
		}
	}
	o.follow()
	return o
}

// NewMultiChoiceOverlay creates a checkbox list with selected pre-checked.
func NewMultiChoiceOverlay(title string, choices, selected []string) Overlay {
	o := Overlay{
		overlayType: OverlayMultiChoice,
		title:       title,
		choices:     choices,
		checked:     make(map[int]bool),
		active:      true,
	}
	want := make(map[string]bool, len(selected))
	for _, s := range selected {
		want[s] = true
	}
	for i, c := range choices {
		if want[c] {
			o.checked[i] = true
		}
	}
	return o
}

// NewRangeOverlay creates a dual-handle slider over bounds. Left/right move
// the lower handle, shift+left/right the upper one.
func NewRangeOverlay(title string, bounds filter.Range, step float64, current filter.Range) Overlay {
	if step <= 0 {
		step = 1
	}
	if current.IsUnset() {
		current = bounds
	}
	return Overlay{
		overlayType: OverlayRange,
		title:       title,
		bounds:      bounds,
		step:        step,
		value:       current.Within(bounds),
		active:      true,
	}
}

// Active returns whether the overlay is currently shown.
func (o Overlay) Active() bool {
	return o.active
}

// Value returns the range currently selected in a range overlay.
func (o Overlay) Value() filter.Range {
	return o.value
}

// Update handles key messages for the overlay.
func (o Overlay) Update(msg tea.Msg) (Overlay, tea.Cmd) {
	if !o.active {
		return o, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}
	if keyMsg.String() == "esc" {
		o.active = false
		return o, func() tea.Msg {
			return OverlayCloseMsg{Confirmed: false}
		}
	}

	switch o.overlayType {
	case OverlayConfirm:
		return o.updateConfirm(keyMsg)
	case OverlayChoice:
		return o.updateChoice(keyMsg)
	case OverlayMultiChoice:
		return o.updateMultiChoice(keyMsg)
	case OverlayRange:
		return o.updateRange(keyMsg)
	}
	return o, nil
}

func (o Overlay) updateConfirm(msg tea.KeyMsg) (Overlay, tea.Cmd) {
	switch msg.String() {
	case "tab", "left", "right", "h", "l":
		o.cursor = 1 - o.cursor
	case "enter":
		o.active = false
		confirmed := o.cursor == 1
		return o, func() tea.Msg {
			return OverlayCloseMsg{Confirmed: confirmed}
		}
	}
	return o, nil
}

func (o Overlay) updateChoice(msg tea.KeyMsg) (Overlay, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		o.moveCursor(-1)
	case "down", "j":
		o.moveCursor(+1)
	case "enter":
		o.active = false
		result := ""
		if o.cursor >= 0 && o.cursor < len(o.choices) {
			result = o.choices[o.cursor]
		}
		return o, func() tea.Msg {
			return OverlayCloseMsg{Result: result, Confirmed: true}
		}
	}
	return o, nil
}

func (o Overlay) updateMultiChoice(msg tea.KeyMsg) (Overlay, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		o.moveCursor(-1)
	case "down", "j":
		o.moveCursor(+1)
	case " ", "x":
		checked := make(map[int]bool, len(o.checked)+1)
		for k, v := range o.checked {
			checked[k] = v
		}
		checked[o.cursor] = !checked[o.cursor]
		o.checked = checked
	case "n":
		o.checked = make(map[int]bool)
	case "enter":
		o.active = false
		results := o.selected()
		return o, func() tea.Msg {
			return OverlayCloseMsg{Results: results, Confirmed: true}
		}
	}
	return o, nil
}

func (o Overlay) updateRange(msg tea.KeyMsg) (Overlay, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		o.value = o.value.SetMin(o.snap(o.value.Min - o.step)).Within(o.bounds)
	case "right", "l":
		o.value = o.value.SetMin(o.snap(o.value.Min + o.step)).Within(o.bounds)
	case "shift+left", "H":
		o.value = o.value.SetMax(o.snap(o.value.Max - o.step)).Within(o.bounds)
	case "shift+right", "L":
		o.value = o.value.SetMax(o.snap(o.value.Max + o.step)).Within(o.bounds)
	case "home":
		o.value = o.bounds
	case "enter":
		o.active = false
		value := o.value
		return o, func() tea.Msg {
			return OverlayCloseMsg{Range: value, Confirmed: true}
		}
	}
	return o, nil
}

// snap moves v onto the nearest step from bounds.Min, rounded to nine
// decimals so repeated steps never accumulate float error.
func (o Overlay) snap(v float64) float64 {
	n := math.Round((v - o.bounds.Min) / o.step)
	return math.Round((o.bounds.Min+n*o.step)*1e9) / 1e9
}

func (o *Overlay) moveCursor(dir int) {
	next := o.cursor + dir
	if next < 0 || next >= len(o.choices) {
		return
	}
	o.cursor = next
	o.follow()
}

// follow keeps the cursor inside the visible window.
func (o *Overlay) follow() {
	if o.cursor < o.offset {
		o.offset = o.cursor
	}
	if o.cursor >= o.offset+maxVisibleChoices {
		o.offset = o.cursor - maxVisibleChoices + 1
	}
}

// selected returns the checked choices in display order.
func (o Overlay) selected() []string {
	var out []string
	for i, c := range o.choices {
		if o.checked[i] {
			out = append(out, c)
		}
	}
	return out
}

// View renders the overlay box. Compositing over a background is the
// caller's job (see Composite).
func (o Overlay) View() string {
	if !o.active {
		return ""
	}

	var content string
	switch o.overlayType {
	case OverlayConfirm:
		content = o.viewConfirm()
	case OverlayChoice:
		content = o.viewChoice()
	case OverlayMultiChoice:
		content = o.viewMultiChoice()
	case OverlayRange:
		content = o.viewRange()
	}
	return OverlayStyle.Render(content)
}

func (o Overlay) viewConfirm() string {
	var b strings.Builder
	b.WriteString(OverlayTitleStyle.Render(o.title))
	b.WriteString("\n\n")
	b.WriteString(o.message)
	b.WriteString("\n\n")
	b.WriteString(o.renderButtons("Cancel", "OK"))
	return b.String()
}

func (o Overlay) viewChoice() string {
	var b strings.Builder
	b.WriteString(OverlayTitleStyle.Render(o.title))
	b.WriteString("\n\n")
	o.eachVisible(func(i int, choice string) {
		if i == o.cursor {
			b.WriteString(OverlayChoiceCursorStyle.Render("> " + choice))
		} else {
			b.WriteString("  " + choice)
		}
		b.WriteString("\n")
	})
	b.WriteString(o.scrollHint())
	return b.String()
}

func (o Overlay) viewMultiChoice() string {
	var b strings.Builder
	b.WriteString(OverlayTitleStyle.Render(o.title))
	b.WriteString("\n\n")
	o.eachVisible(func(i int, choice string) {
		line := RenderCheckbox(true, o.checked[i]) + " " + RenderItemText(choice, true, i == o.cursor)
		if i == o.cursor {
			line = OverlayChoiceCursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	})
	b.WriteString(o.scrollHint())
	b.WriteString("\n")
	b.WriteString(OverlayScrollHintStyle.Render("Space: toggle  n: none  Enter: apply  Esc: cancel"))
	return b.String()
}

func (o Overlay) viewRange() string {
	var b strings.Builder
	b.WriteString(OverlayTitleStyle.Render(o.title))
	b.WriteString("\n\n")
	b.WriteString(renderRangeTrack(o.bounds, o.value, rangeTrackWidth))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  to  %s",
		render.FormatCTC(o.value.Min), render.FormatCTC(o.value.Max)))
	b.WriteString("\n\n")
	b.WriteString(OverlayScrollHintStyle.Render("←/→: min  shift+←/→: max"))
	b.WriteString("\n")
	b.WriteString(OverlayScrollHintStyle.Render("Home: full range  Enter: apply  Esc: cancel"))
	return b.String()
}

func (o Overlay) eachVisible(fn func(i int, choice string)) {
	end := o.offset + maxVisibleChoices
	if end > len(o.choices) {
		end = len(o.choices)
	}
	for i := o.offset; i < end; i++ {
		fn(i, o.choices[i])
	}
}

func (o Overlay) scrollHint() string {
	if len(o.choices) <= maxVisibleChoices {
		return ""
	}
	return OverlayScrollHintStyle.Render(fmt.Sprintf("%d-%d of %d",
		o.offset+1, min(o.offset+maxVisibleChoices, len(o.choices)), len(o.choices)))
}

// renderRangeTrack draws the bounds as a track with the selected span
// filled.
func renderRangeTrack(bounds, value filter.Range, width int) string {
	span := bounds.Max - bounds.Min
	pos := func(v float64) int {
		if span <= 0 {
			return 0
		}
		p := int((v - bounds.Min) / span * float64(width-1))
		return max(0, min(width-1, p))
	}
	lo, hi := pos(value.Min), pos(value.Max)

	var b strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i == lo || i == hi:
			b.WriteString(RangeFillStyle.Render("●"))
		case i > lo && i < hi:
			b.WriteString(RangeFillStyle.Render("━"))
		default:
			b.WriteString(RangeTrackStyle.Render("─"))
		}
	}
	return b.String()
}

// renderButtons draws two side-by-side buttons with the cursor on one.
func (o Overlay) renderButtons(cancel, ok string) string {
	var cancelBtn, okBtn string
	if o.cursor == 0 {
		cancelBtn = OverlayButtonActiveStyle.Render(cancel)
		okBtn = OverlayButtonInactiveStyle.Render(ok)
	} else {
		cancelBtn = OverlayButtonInactiveStyle.Render(cancel)
		okBtn = OverlayButtonActiveStyle.Render(ok)
	}
	return cancelBtn + "  " + okBtn
}

// Composite places the overlay box centered on top of the background string.
func Composite(background string, overlay string, totalWidth, totalHeight int) string {
	if overlay == "" {
		return background
	}

	bgLines := strings.Split(background, "\n")
	for len(bgLines) < totalHeight {
		bgLines = append(bgLines, "")
	}

	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := 0
	for _, line := range overlayLines {
		overlayWidth = max(overlayWidth, ansi.StringWidth(line))
	}

	startRow := max(0, (totalHeight-len(overlayLines))/2)
	startCol := max(0, (totalWidth-overlayWidth)/2)

	for i, overlayLine := range overlayLines {
		row := startRow + i
		if row >= len(bgLines) {
			break
		}

		bgLine := bgLines[row]
		bgWidth := ansi.StringWidth(bgLine)

		left := ansi.Truncate(bgLine, startCol, "")
		if w := ansi.StringWidth(left); w < startCol {
			left += strings.Repeat(" ", startCol-w)
		}

		right := ""
		overlayEnd := startCol + ansi.StringWidth(overlayLine)
		if overlayEnd < bgWidth {
			right = ansi.TruncateLeft(bgLine, overlayEnd, "")
		}

		bgLines[row] = left + overlayLine + right
	}

	return strings.Join(bgLines[:max(totalHeight, 0)], "\n")
}
