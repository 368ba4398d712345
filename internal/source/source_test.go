package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ruminaider/job-browser/internal/apperr"
	"github.com/ruminaider/job-browser/internal/jobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_PicksImplementation(t *testing.T) {
	_, ok := Open("https://example.com/jobs.json", 0, nil).(*HTTP)
	assert.True(t, ok)

	f, ok := Open("file:///tmp/jobs.json", 0, nil).(*File)
	require.True(t, ok)
	assert.Equal(t, "/tmp/jobs.json", f.Path)

	_, ok = Open("testdata/jobs.json", 0, nil).(*File)
	assert.True(t, ok)
}

func TestHTTP_Load(t *testing.T) {
	body, err := os.ReadFile(filepath.Join("testdata", "jobs.json"))
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	records, err := Open(srv.URL, time.Second, nil).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, jobs.IDs(records))
	assert.Equal(t, "Beta Ltd", records[1].Company)
}

func TestHTTP_LoadFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}},
		{"malformed payload", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"jobs": [`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := Open(srv.URL, time.Second, nil).Load(context.Background())
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.KindLoadFailure), "network and payload failures share one kind")
		})
	}
}

func TestHTTP_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := Open(url, time.Second, nil).Load(context.Background())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindLoadFailure))
}

func TestFile_Load(t *testing.T) {
	records, err := Open(filepath.Join("testdata", "jobs.json"), 0, nil).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)

	_, err = Open(filepath.Join(t.TempDir(), "missing.json"), 0, nil).Load(context.Background())
	assert.True(t, apperr.Is(err, apperr.KindLoadFailure))

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0644))
	_, err = Open(bad, 0, nil).Load(context.Background())
	assert.True(t, apperr.Is(err, apperr.KindLoadFailure))
}

func TestFile_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Open(filepath.Join("testdata", "jobs.json"), 0, nil).Load(ctx)
	assert.True(t, apperr.Is(err, apperr.KindLoadFailure))
}

func TestStatic(t *testing.T) {
	s := Static{Records: []jobs.Record{{ID: 1}}}
	records, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = Static{Err: errors.New("offline")}.Load(context.Background())
	assert.True(t, apperr.Is(err, apperr.KindLoadFailure))
}

func TestDemo(t *testing.T) {
	src := Open(DemoLocation, 0, nil)
	_, ok := src.(Demo)
	require.True(t, ok)

	records, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, records)
	assert.Empty(t, jobs.DuplicateIDs(records))
}
