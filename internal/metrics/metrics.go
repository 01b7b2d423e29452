// Package metrics exposes search statistics as Prometheus collectors.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/valveflow/search"
)

// Recorder owns a private registry with one series per search mode.
type Recorder struct {
	registry     *prometheus.Registry
	expanded     *prometheus.CounterVec
	improvements *prometheus.CounterVec
	best         *prometheus.GaugeVec
	duration     *prometheus.HistogramVec
}

// New creates a Recorder with all collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		expanded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "valveflow_states_expanded_total",
			Help: "Search states popped from the frontier.",
		}, []string{"mode"}),
		improvements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "valveflow_best_improvements_total",
			Help: "Times the running best total increased.",
		}, []string{"mode"}),
		best: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "valveflow_best_total",
			Help: "Best total found by the last search.",
		}, []string{"mode"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "valveflow_search_duration_seconds",
			Help:    "Wall time of a search.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"mode"}),
	}
	r.registry.MustRegister(r.expanded, r.improvements, r.best, r.duration)

	return r
}

// Registry returns the registry holding the collectors.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Options returns search hooks that feed the collectors for mode.
func (r *Recorder) Options(mode string) []search.Option {
	expanded := r.expanded.WithLabelValues(mode)
	improvements := r.improvements.WithLabelValues(mode)

	return []search.Option{
		search.WithOnExpand(func(int, int) { expanded.Inc() }),
		search.WithOnImprove(func(int, int) { improvements.Inc() }),
	}
}

// Observe records the outcome of a finished search.
func (r *Recorder) Observe(mode string, res search.Result, elapsed time.Duration) {
	r.best.WithLabelValues(mode).Set(float64(res.Best))
	r.duration.WithLabelValues(mode).Observe(elapsed.Seconds())
}

// WriteTextfile writes the current values in the node-exporter textfile format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
