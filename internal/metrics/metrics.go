// Package metrics records evaluation counts, latencies and non-finite outputs of the
// activation functions in a Prometheus registry.
package metrics

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/born-ml/activations/internal/tensor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Recorder owns a private registry so that several recorders (and tests) never
// collide on the global default registerer.
type Recorder struct {
	registry *prometheus.Registry

	Evaluations *prometheus.CounterVec
	NonFinite   *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
}

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),

		Evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "activations_evaluations_total",
			Help: "Total number of function evaluations",
		}, []string{"function"}),

		NonFinite: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "activations_nonfinite_values_total",
			Help: "Total number of NaN/Inf values produced",
		}, []string{"function", "type"}),

		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "activations_evaluation_duration_seconds",
			Help:    "Histogram of function evaluation times",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"function"}),
	}

	r.registry.MustRegister(r.Evaluations, r.NonFinite, r.Duration)
	return r
}

// Registry returns the registry holding the recorder's collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// RecordEvaluation counts one evaluation of function and its duration.
func (r *Recorder) RecordEvaluation(function string, duration time.Duration) {
	r.Evaluations.WithLabelValues(function).Inc()
	r.Duration.WithLabelValues(function).Observe(duration.Seconds())
}

// RecordNumericalInstability adds NaN and Inf counts for function.
func (r *Recorder) RecordNumericalInstability(function string, nanCount, infCount int) {
	if nanCount > 0 {
		r.NonFinite.WithLabelValues(function, "nan").Add(float64(nanCount))
	}
	if infCount > 0 {
		r.NonFinite.WithLabelValues(function, "inf").Add(float64(infCount))
	}
}

// CountNonFinite returns the number of NaN and ±Inf entries in values.
func CountNonFinite[T tensor.Float](values []T) (nanCount, infCount int) {
	for _, v := range values {
		f := float64(v)
		switch {
		case math.IsNaN(f):
			nanCount++
		case math.IsInf(f, 0):
			infCount++
		}
	}
	return nanCount, infCount
}

// ObserveValues counts the non-finite entries of an output under function.
func ObserveValues[T tensor.Float](r *Recorder, function string, values []T) {
	nanCount, infCount := CountNonFinite(values)
	r.RecordNumericalInstability(function, nanCount, infCount)
}

// WriteText writes every metric family in the Prometheus text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
