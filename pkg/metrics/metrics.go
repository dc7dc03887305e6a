// Package metrics instruments the sampling loop. The registry is private to
// the process; it is only ever exported by writing a text file.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/srodi/proctop/pkg/report"
)

// Recorder holds the loop's counters. A nil Recorder discards observations.
type Recorder struct {
	registry       *prometheus.Registry
	cycles         prometheus.Counter
	tracked        prometheus.Gauge
	rendered       prometheus.Gauge
	churn          *prometheus.CounterVec
	regressions    prometheus.Counter
	captureSeconds prometheus.Histogram
	captureErrors  prometheus.Counter
}

// NewRecorder registers every collector on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		cycles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "proctop",
			Name:      "cycles_total",
			Help:      "Sampling cycles completed.",
		}),
		tracked: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "proctop",
			Name:      "tracked_processes",
			Help:      "Processes captured in the latest snapshot.",
		}),
		rendered: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "proctop",
			Name:      "rendered_rows",
			Help:      "Rows shown in the latest frame.",
		}),
		churn: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "proctop",
			Name:      "process_churn_total",
			Help:      "Processes that appeared or vanished between snapshots.",
		}, []string{"kind"}),
		regressions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "proctop",
			Name:      "counter_regressions_total",
			Help:      "Per-process tick counters that went backwards.",
		}),
		captureSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "proctop",
			Name:      "capture_duration_seconds",
			Help:      "Time spent capturing one snapshot.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		}),
		captureErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "proctop",
			Name:      "capture_degraded_total",
			Help:      "Snapshots captured with an unreadable source.",
		}),
	}
	r.registry.MustRegister(r.cycles, r.tracked, r.rendered, r.churn, r.regressions, r.captureSeconds, r.captureErrors)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// ObserveCapture records one snapshot capture.
func (r *Recorder) ObserveCapture(took time.Duration, processes int, degraded bool) {
	if r == nil {
		return
	}
	r.captureSeconds.Observe(took.Seconds())
	r.tracked.Set(float64(processes))
	if degraded {
		r.captureErrors.Inc()
	}
}

// ObserveCycle records one derive-and-render cycle.
func (r *Recorder) ObserveCycle(stats report.Stats, rendered int) {
	if r == nil {
		return
	}
	r.cycles.Inc()
	r.rendered.Set(float64(rendered))
	r.churn.WithLabelValues("new").Add(float64(stats.New))
	r.churn.WithLabelValues("vanished").Add(float64(stats.Vanished))
	r.regressions.Add(float64(stats.Regressed))
}

// WriteTextfile atomically writes the current values in the Prometheus text
// format, suitable for the node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
