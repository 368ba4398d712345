package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruminaider/job-browser/internal/filter"
)

func overlayKey(t *testing.T, o Overlay, msg tea.KeyMsg) (Overlay, *OverlayCloseMsg) {
	t.Helper()
	o, cmd := o.Update(msg)
	if cmd == nil {
		return o, nil
	}
	out, ok := cmd().(OverlayCloseMsg)
	require.True(t, ok)
	return o, &out
}

func TestOverlay_ConfirmDefaultsToOK(t *testing.T) {
	o := NewConfirmOverlay("Reset filters", "Clear every filter?")
	assert.Contains(t, o.View(), "Clear every filter?")

	o, closed := overlayKey(t, o, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, closed)
	assert.True(t, closed.Confirmed)
	assert.False(t, o.Active())
}

func TestOverlay_ConfirmToggleToCancel(t *testing.T) {
	o := NewConfirmOverlay("Reset filters", "Clear every filter?")
	o, _ = overlayKey(t, o, tea.KeyMsg{Type: tea.KeyTab})
	_, closed := overlayKey(t, o, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, closed)
	assert.False(t, closed.Confirmed)
}

func TestOverlay_ChoiceStartsOnCurrent(t *testing.T) {
	o := NewChoiceOverlay("Role", []string{"All", "Frontend", "Backend"}, "Backend")
	_, closed := overlayKey(t, o, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, closed)
	assert.Equal(t, "Backend", closed.Result)
}

func TestOverlay_ChoiceCursorStaysInBounds(t *testing.T) {
	o := NewChoiceOverlay("Role", []string{"All", "Frontend"}, "All")
	o, _ = overlayKey(t, o, tea.KeyMsg{Type: tea.KeyUp})
	o, _ = overlayKey(t, o, tea.KeyMsg{Type: tea.KeyDown})
	o, _ = overlayKey(t, o, tea.KeyMsg{Type: tea.KeyDown})
	_, closed := overlayKey(t, o, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, closed)
	assert.Equal(t, "Frontend", closed.Result)
}

func TestOverlay_ChoiceScrolls(t *testing.T) {
	choices := make([]string, 20)
	for i := range choices {
		choices[i] = string(rune('a' + i))
	}
	o := NewChoiceOverlay("Role", choices, "t")
	assert.Equal(t, 19, o.cursor)
	assert.Equal(t, 8, o.offset)
	assert.Contains(t, o.View(), "9-20 of 20")
}

func TestOverlay_MultiChoice(t *testing.T) {
	o := NewMultiChoiceOverlay("Technologies", []string{"React", "Go", "SQL"}, []string{"SQL"})

	o, _ = overlayKey(t, o, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")})
	_, closed := overlayKey(t, o, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, closed)
	assert.True(t, closed.Confirmed)
	assert.Equal(t, []string{"React", "SQL"}, closed.Results)
}

func TestOverlay_MultiChoiceClear(t *testing.T) {
	o := NewMultiChoiceOverlay("Technologies", []string{"React", "Go"}, []string{"React", "Go"})
	o, _ = overlayKey(t, o, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	_, closed := overlayKey(t, o, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, closed)
	assert.Empty(t, closed.Results)
}

func TestOverlay_EscCancels(t *testing.T) {
	overlays := []Overlay{
		NewConfirmOverlay("t", "m"),
		NewChoiceOverlay("t", []string{"a"}, "a"),
		NewMultiChoiceOverlay("t", []string{"a"}, nil),
		NewRangeOverlay("t", filter.Range{Min: 1, Max: 2}, 0.1, filter.Range{}),
	}
	for _, o := range overlays {
		o, closed := overlayKey(t, o, tea.KeyMsg{Type: tea.KeyEsc})
		require.NotNil(t, closed)
		assert.False(t, closed.Confirmed)
		assert.False(t, o.Active())
	}
}

func TestOverlay_Range(t *testing.T) {
	bounds := filter.Range{Min: 0, Max: 10}
	o := NewRangeOverlay("Compensation", bounds, 1, filter.Range{})
	assert.Equal(t, bounds, o.Value())

	o, _ = overlayKey(t, o, tea.KeyMsg{Type: tea.KeyRight})
	o, _ = overlayKey(t, o, tea.KeyMsg{Type: tea.KeyRight})
	o, _ = overlayKey(t, o, tea.KeyMsg{Type: tea.KeyShiftLeft})
	assert.Equal(t, filter.Range{Min: 2, Max: 9}, o.Value())

	// The lower handle pushes the upper one.
	for i := 0; i < 12; i++ {
		o, _ = overlayKey(t, o, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	}
	assert.Equal(t, filter.Range{Min: 10, Max: 10}, o.Value())

	o, _ = overlayKey(t, o, tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, bounds, o.Value())

	o, _ = overlayKey(t, o, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("H")})
	_, closed := overlayKey(t, o, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, closed)
	assert.Equal(t, filter.Range{Min: 0, Max: 9}, closed.Range)
}

func TestOverlay_RangeClampsCurrent(t *testing.T) {
	o := NewRangeOverlay("Compensation", filter.Range{Min: 5, Max: 8}, 0.2, filter.Range{Min: 0, Max: 4})
	assert.Equal(t, filter.Range{Min: 5, Max: 5}, o.Value())
}

func TestOverlay_RangeStaysOnStepGrid(t *testing.T) {
	bounds := filter.Range{Min: 5, Max: 8}
	o := NewRangeOverlay("Compensation", bounds, 0.2, filter.Range{})

	for i := 0; i < 5; i++ {
		o, _ = overlayKey(t, o, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("H")})
	}
	assert.Equal(t, filter.Range{Min: 5, Max: 7}, o.Value())
	assert.True(t, o.Value().Contains(7))
	assert.Contains(t, ansi.Strip(o.View()), "CTC 5  to  CTC 7")

	for i := 0; i < 7; i++ {
		o, _ = overlayKey(t, o, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	}
	assert.Equal(t, filter.Range{Min: 6.4, Max: 7}, o.Value())

	for i := 0; i < 7; i++ {
		o, _ = overlayKey(t, o, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	}
	assert.Equal(t, filter.Range{Min: 5, Max: 7}, o.Value())
}

func TestRenderRangeTrack(t *testing.T) {
	track := ansi.Strip(renderRangeTrack(filter.Range{Min: 0, Max: 10}, filter.Range{Min: 0, Max: 10}, 11))
	assert.Equal(t, "●━━━━━━━━━●", track)

	track = ansi.Strip(renderRangeTrack(filter.Range{Min: 0, Max: 10}, filter.Range{Min: 5, Max: 5}, 11))
	assert.Equal(t, "─────●─────", track)
}

func TestComposite(t *testing.T) {
	bg := strings.Repeat(strings.Repeat(".", 10)+"\n", 4) + strings.Repeat(".", 10)
	out := Composite(bg, "XX\nXX", 10, 5)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "..........", lines[0])
	assert.Equal(t, "....XX....", ansi.Strip(lines[1]))
	assert.Equal(t, "....XX....", ansi.Strip(lines[2]))

	assert.Equal(t, bg, Composite(bg, "", 10, 5))
}
