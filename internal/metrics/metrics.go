// Package metrics records session counters on a private Prometheus
// registry. Nothing is exported unless Serve is called.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder holds the session metrics. A nil *Recorder is valid and records
// nothing.
type Recorder struct {
	registry *prometheus.Registry

	loads          *prometheus.CounterVec
	loadDuration   prometheus.Histogram
	filterChanges  prometheus.Counter
	filterResults  prometheus.Histogram
	batches        prometheus.Counter
	reconcileNodes *prometheus.CounterVec
}

// New creates a recorder with its own registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "job_browser",
			Name:      "loads_total",
			Help:      "Record set loads by outcome.",
		}, []string{"outcome"}),
		loadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "job_browser",
			Name:      "load_duration_seconds",
			Help:      "Time spent loading the record set.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		}),
		filterChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "job_browser",
			Name:      "filter_changes_total",
			Help:      "Filter state changes applied.",
		}),
		filterResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "job_browser",
			Name:      "filter_results",
			Help:      "Size of the filtered set after each change.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000},
		}),
		batches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "job_browser",
			Name:      "batches_loaded_total",
			Help:      "Incremental batches appended to the list.",
		}),
		reconcileNodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "job_browser",
			Name:      "reconcile_nodes_total",
			Help:      "Cards inserted or removed by reconciliation.",
		}, []string{"op"}),
	}
	r.registry.MustRegister(r.loads, r.loadDuration, r.filterChanges, r.filterResults, r.batches, r.reconcileNodes)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Load records a load attempt.
func (r *Recorder) Load(ok bool, elapsed time.Duration) {
	if r == nil {
		return
	}
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	r.loads.WithLabelValues(outcome).Inc()
	r.loadDuration.Observe(elapsed.Seconds())
}

// FilterChanged records a filter change and the resulting set size.
func (r *Recorder) FilterChanged(results int) {
	if r == nil {
		return
	}
	r.filterChanges.Inc()
	r.filterResults.Observe(float64(results))
}

// BatchLoaded records an appended batch.
func (r *Recorder) BatchLoaded() {
	if r == nil {
		return
	}
	r.batches.Inc()
}

// Reconciled records the size of an applied diff.
func (r *Recorder) Reconciled(inserted, removed int) {
	if r == nil {
		return
	}
	r.reconcileNodes.WithLabelValues("insert").Add(float64(inserted))
	r.reconcileNodes.WithLabelValues("remove").Add(float64(removed))
}

// Handler returns the HTTP handler for the registry.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (r *Recorder) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
