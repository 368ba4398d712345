package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ruminaider/job-browser/internal/filter"
	"github.com/ruminaider/job-browser/internal/render"
)

func TestControls_FromSample(t *testing.T) {
	s := loadedSession(t, sampleRecords(), Options{})
	c := s.Controls()

	assert.True(t, c.Populated)
	assert.Equal(t, []string{All, "Frontend Developer", "Backend Developer"}, c.Roles)
	assert.Equal(t, []string{All, "0-2 years", "2-4 years"}, c.Experience)
	assert.Equal(t, []string{"React", "JavaScript", "CSS", "Node.js", "MongoDB", "Express"}, c.Technologies)
	assert.Equal(t, filter.Range{Min: 5, Max: 8}, c.CTCBounds)
	assert.InDelta(t, 0.2, c.CTCStep, 1e-9)
}

func TestOptionValue(t *testing.T) {
	assert.Equal(t, "", OptionValue(All))
	assert.Equal(t, "Backend Developer", OptionValue("Backend Developer"))
	assert.Equal(t, All, OptionLabel(""))
	assert.Equal(t, "2-4 years", OptionLabel("2-4 years"))
}

func TestRangeStep(t *testing.T) {
	tests := []struct {
		bounds filter.Range
		want   float64
	}{
		{filter.Range{Min: 5, Max: 5}, 1},
		{filter.Range{Min: 0, Max: 100}, 5},
		{filter.Range{Min: 300000, Max: 2500000}, 200000},
		{filter.Range{Min: 3, Max: 33}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.bounds.String(), func(t *testing.T) {
			assert.InDelta(t, tt.want, rangeStep(tt.bounds), 1e-9)
		})
	}
}

func TestNearBottom(t *testing.T) {
	tests := []struct {
		name                                   string
		offset, viewHeight, contentHeight, thr int
		want                                   bool
	}{
		{"content fits", 0, 20, 10, 4, true},
		{"top of long list", 0, 20, 100, 4, false},
		{"inside threshold", 77, 20, 100, 4, true},
		{"just outside threshold", 75, 20, 100, 4, false},
		{"at the end", 80, 20, 100, 0, true},
		{"negative threshold", 79, 20, 100, -3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NearBottom(tt.offset, tt.viewHeight, tt.contentHeight, tt.thr))
		})
	}
}

func TestPhase(t *testing.T) {
	assert.Equal(t, "no-results", PhaseNoResults.String())
	assert.False(t, PhaseLoading.Interactive())
	assert.False(t, PhaseError.Interactive())
	assert.True(t, PhaseUpdating.Interactive())
	assert.Equal(t, render.PlaceholderNone, PhasePopulated.Placeholder())

	placeholders := map[Phase]render.Placeholder{
		PhaseEmpty:     render.PlaceholderNone,
		PhaseLoading:   render.PlaceholderInitialLoading,
		PhaseUpdating:  render.PlaceholderBatchLoading,
		PhaseNoResults: render.PlaceholderNoResults,
		PhaseError:     render.PlaceholderError,
	}
	for phase, want := range placeholders {
		assert.Equal(t, want, phase.Placeholder(), phase.String())
	}
	assert.Equal(t, "batch-loading", render.PlaceholderBatchLoading.String())
}
