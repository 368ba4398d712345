package jobs_test

import (
	"testing"

	"github.com/ruminaider/job-browser/internal/jobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `[
  {"id": 1, "company": "Acme Corp", "role": "Frontend Developer", "location": "Remote",
   "type": "Full-time", "technologies": ["React", "JavaScript", "CSS"], "experience": "0-2 years", "ctc": 5},
  {"id": 2, "company": "Beta Ltd", "role": "Backend Developer", "location": "Bangalore",
   "type": "Full-time", "technologies": ["Node.js", "MongoDB", "Express"], "experience": "2-4 years", "ctc": 8}
]`

func TestParse(t *testing.T) {
	t.Run("sample records", func(t *testing.T) {
		records, err := jobs.Parse([]byte(sampleJSON))
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Acme Corp", records[0].Company)
		assert.Equal(t, []string{"Node.js", "MongoDB", "Express"}, records[1].Technologies)
		assert.Equal(t, 8.0, records[1].CTC)
	})

	t.Run("missing fields decode to zero values", func(t *testing.T) {
		records, err := jobs.Parse([]byte(`[{"id": 7}]`))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 7, records[0].ID)
		assert.Empty(t, records[0].Role)
		assert.Nil(t, records[0].Technologies)
	})

	t.Run("empty array", func(t *testing.T) {
		records, err := jobs.Parse([]byte(`[]`))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("not an array", func(t *testing.T) {
		_, err := jobs.Parse([]byte(`{"id": 1}`))
		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := jobs.Parse([]byte(`[{`))
		assert.Error(t, err)
	})
}

func TestHasTechnology(t *testing.T) {
	r := jobs.Record{Technologies: []string{"Go", "gRPC"}}
	assert.True(t, r.HasTechnology("Go"))
	assert.False(t, r.HasTechnology("go"))
	assert.False(t, jobs.Record{}.HasTechnology("Go"))
}

func TestDuplicateIDs(t *testing.T) {
	records := []jobs.Record{{ID: 1}, {ID: 2}, {ID: 1}, {ID: 3}, {ID: 2}}
	assert.Equal(t, []int{1, 2}, jobs.DuplicateIDs(records))
	assert.Empty(t, jobs.DuplicateIDs(records[:2]))
}

func TestStore(t *testing.T) {
	records, err := jobs.Parse([]byte(sampleJSON))
	require.NoError(t, err)

	s := jobs.NewStore()
	assert.False(t, s.Loaded())
	require.True(t, s.Load(records))
	assert.True(t, s.Loaded())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []int{1, 2}, jobs.IDs(s.Filtered()))

	// A second load is ignored.
	assert.False(t, s.Load(records[:1]))
	assert.Equal(t, 2, s.Len())

	pos, ok := s.Position(2)
	require.True(t, ok)
	assert.Equal(t, 1, pos)

	rec, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Acme Corp", rec.Company)

	_, ok = s.Get(99)
	assert.False(t, ok)

	s.SetFiltered(records[1:])
	assert.Equal(t, []int{2}, jobs.IDs(s.Filtered()))
	assert.Len(t, s.All(), 2, "filtering never shrinks the full set")
}

func TestCollectFacets(t *testing.T) {
	records, err := jobs.Parse([]byte(sampleJSON))
	require.NoError(t, err)

	f := jobs.CollectFacets(records)
	assert.Equal(t, []string{"Frontend Developer", "Backend Developer"}, f.Roles)
	assert.Equal(t, []string{"React", "JavaScript", "CSS", "Node.js", "MongoDB", "Express"}, f.Technologies)
	assert.Equal(t, []string{"0-2 years", "2-4 years"}, f.Experience)
	assert.Equal(t, 5.0, f.MinCTC)
	assert.Equal(t, 8.0, f.MaxCTC)
	assert.False(t, f.Empty())

	assert.True(t, jobs.CollectFacets(nil).Empty())
}
