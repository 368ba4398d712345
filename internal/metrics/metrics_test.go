package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, r *Recorder, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := r.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.GetMetric() {
			if matches(m, labels) {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func matches(m *dto.Metric, labels map[string]string) bool {
	for _, lp := range m.GetLabel() {
		if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
			return false
		}
	}
	return true
}

func TestRecorder(t *testing.T) {
	r := New()

	r.Load(true, 20*time.Millisecond)
	r.Load(false, time.Second)
	r.FilterChanged(3)
	r.FilterChanged(0)
	r.BatchLoaded()
	r.Reconciled(4, 2)
	r.Reconciled(1, 0)

	assert.Equal(t, 1.0, counterValue(t, r, "job_browser_loads_total", map[string]string{"outcome": "success"}))
	assert.Equal(t, 1.0, counterValue(t, r, "job_browser_loads_total", map[string]string{"outcome": "failure"}))
	assert.Equal(t, 2.0, counterValue(t, r, "job_browser_filter_changes_total", nil))
	assert.Equal(t, 1.0, counterValue(t, r, "job_browser_batches_loaded_total", nil))
	assert.Equal(t, 5.0, counterValue(t, r, "job_browser_reconcile_nodes_total", map[string]string{"op": "insert"}))
	assert.Equal(t, 2.0, counterValue(t, r, "job_browser_reconcile_nodes_total", map[string]string{"op": "remove"}))
}

func TestRecorder_Nil(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.Load(true, time.Second)
		r.FilterChanged(1)
		r.BatchLoaded()
		r.Reconciled(1, 1)
	})
	assert.Nil(t, r.Registry())
}

func TestHandler(t *testing.T) {
	r := New()
	r.BatchLoaded()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "job_browser_batches_loaded_total 1")
}
