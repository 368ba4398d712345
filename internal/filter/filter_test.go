package filter

import (
	"testing"

	"github.com/ruminaider/job-browser/internal/jobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []jobs.Record {
	return []jobs.Record{
		{ID: 1, Company: "Acme Corp", Role: "Frontend Developer", Location: "Remote", Type: "Full-time",
			Technologies: []string{"React", "JavaScript", "CSS"}, Experience: "0-2 years", CTC: 5},
		{ID: 2, Company: "Beta Ltd", Role: "Backend Developer", Location: "Bangalore", Type: "Full-time",
			Technologies: []string{"Node.js", "MongoDB", "Express"}, Experience: "2-4 years", CTC: 8},
	}
}

func wideRecords() []jobs.Record {
	return []jobs.Record{
		{ID: 10, Role: "Backend Developer", Technologies: []string{"Go", "Postgres"}, Experience: "2-4 years", CTC: 12},
		{ID: 11, Role: "Frontend Developer", Technologies: []string{"React"}, Experience: "0-2 years", CTC: 6},
		{ID: 12, Role: "Backend Developer", Technologies: []string{"Go"}, Experience: "4-6 years", CTC: 20},
		{ID: 13, Role: "DevOps Engineer", Technologies: []string{"Go", "Kubernetes", "Postgres"}, Experience: "2-4 years", CTC: 15},
		{ID: 14, Role: "Backend Developer", Technologies: []string{"Postgres", "Go"}, Experience: "2-4 years", CTC: 9},
	}
}

func TestApply_SampleScenarios(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name  string
		state State
		want  []int
	}{
		{"technology MongoDB", State{Technologies: []string{"MongoDB"}}, []int{2}},
		{"role Frontend Developer", State{Role: "Frontend Developer"}, []int{1}},
		{"ctc 6-10", State{CTC: Range{Min: 6, Max: 10}}, []int{2}},
		{"ctc 0-4 yields nothing", State{CTC: Range{Min: 0, Max: 4}}, []int{}},
		{"ctc unset sentinel passes all", State{CTC: Range{}}, []int{1, 2}},
		{"no filters", State{}, []int{1, 2}},
		{"experience label", State{Experience: "2-4 years"}, []int{2}},
		{"experience is not parsed numerically", State{Experience: "2-4"}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(records, tt.state)
			assert.Equal(t, tt.want, jobs.IDs(got))
		})
	}
}

func TestByTechnologies_ANDSemantics(t *testing.T) {
	records := wideRecords()

	got := ByTechnologies(records, State{Technologies: []string{"Go", "Postgres"}})
	assert.Equal(t, []int{10, 13, 14}, jobs.IDs(got), "must contain every selected tag")

	got = ByTechnologies(records, State{Technologies: []string{"Go", "React"}})
	assert.Empty(t, got, "no record carries both tags")
}

func TestApply_PreservesOriginalOrder(t *testing.T) {
	records := wideRecords()
	states := []State{
		{},
		{Role: "Backend Developer"},
		{Technologies: []string{"Go"}},
		{Experience: "2-4 years", CTC: Range{Min: 9, Max: 15}},
		{Role: "Backend Developer", Technologies: []string{"Postgres"}, CTC: Range{Min: 1, Max: 100}},
	}

	position := make(map[int]int)
	for i, r := range records {
		position[r.ID] = i
	}

	for _, st := range states {
		got := Apply(records, st)
		last := -1
		for _, r := range got {
			pos, ok := position[r.ID]
			require.True(t, ok, "filtered record %d must come from the full set", r.ID)
			assert.Greater(t, pos, last, "filtering must not reorder (%s)", st.Summary())
			last = pos
		}
	}
}

func TestApply_ResetReproducesFullSet(t *testing.T) {
	records := wideRecords()
	narrowed := Apply(records, State{Role: "Backend Developer", Technologies: []string{"Go"}})
	require.Len(t, narrowed, 3)

	got := Apply(records, Reset(Range{Min: 6, Max: 20}))
	assert.Equal(t, jobs.IDs(records), jobs.IDs(got))

	got = Apply(records, Reset(Range{}))
	assert.Equal(t, jobs.IDs(records), jobs.IDs(got))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	records := wideRecords()
	before := jobs.IDs(records)

	got := Apply(records, State{Role: "Backend Developer"})
	require.NotEmpty(t, got)
	got[0].Role = "changed"

	assert.Equal(t, before, jobs.IDs(records))
	assert.Equal(t, "Backend Developer", records[0].Role)

	// Unset predicates return a copy, not the input slice.
	all := ByRole(records, State{})
	all[0].Company = "changed"
	assert.Empty(t, records[0].Company)
}

func TestApply_OrderIndependent(t *testing.T) {
	records := wideRecords()
	st := State{Role: "Backend Developer", Technologies: []string{"Go"}, Experience: "2-4 years", CTC: Range{Min: 10, Max: 20}}

	forward := Apply(records, st)

	reversed := records
	for i := len(Chain) - 1; i >= 0; i-- {
		reversed = Chain[i](reversed, st)
	}
	assert.Equal(t, jobs.IDs(forward), jobs.IDs(reversed))
	assert.Equal(t, []int{10}, jobs.IDs(forward))
}

func TestState_Summary(t *testing.T) {
	assert.Equal(t, "no filters", State{}.Summary())
	st := State{Role: "Backend Developer", Technologies: []string{"Go", "gRPC"}, CTC: Range{Min: 5, Max: 10}}
	assert.Equal(t, "role=Backend Developer tech=Go+gRPC ctc=5-10", st.Summary())
}

func TestState_Equal(t *testing.T) {
	a := State{Role: "x", Technologies: []string{"Go"}}
	assert.True(t, a.Equal(State{Role: "x", Technologies: []string{"Go"}}))
	assert.False(t, a.Equal(State{Role: "x"}))
	assert.False(t, a.Equal(State{Role: "x", Technologies: []string{"Rust"}}))
	assert.True(t, State{}.IsZero())
	assert.False(t, a.IsZero())
}
