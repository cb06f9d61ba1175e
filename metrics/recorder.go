// Package metrics exports benchmark results as Prometheus gauges.
package metrics

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/neehar-mavuduru/benc/bench"
)

const namespace = "benc"

// Recorder is a bench.Observer that keeps the latest result of every
// measurement in its own registry.
type Recorder struct {
	registry *prometheus.Registry

	Throughput     *prometheus.GaugeVec
	MeanDuration   *prometheus.GaugeVec
	RelativeStdDev *prometheus.GaugeVec
	Iterations     *prometheus.GaugeVec
	SlowerPercent  *prometheus.GaugeVec
	Rank           *prometheus.GaugeVec
	Measurements   prometheus.Counter
}

var _ bench.Observer = (*Recorder)(nil)

// NewRecorder creates a Recorder with a fresh registry.
func NewRecorder() *Recorder {
	labels := []string{"suite", "measurement"}
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		Throughput: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "throughput_ops_per_second",
			Help:      "Operations per second of the measurement",
		}, labels),
		MeanDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mean_duration_seconds",
			Help:      "Mean duration of a single iteration in seconds",
		}, labels),
		RelativeStdDev: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "relative_stddev_percent",
			Help:      "Standard deviation of iteration duration as a percentage of the mean",
		}, labels),
		Iterations: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "iterations",
			Help:      "Number of iterations sampled",
		}, labels),
		SlowerPercent: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "slower_percent",
			Help:      "Percentage by which the measurement is slower than the fastest in its suite",
		}, labels),
		Rank: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rank",
			Help:      "Position in the suite ranking, 0 being the fastest",
		}, labels),
		Measurements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "measurements_total",
			Help:      "Total number of finished measurements",
		}),
	}

	r.registry.MustRegister(
		r.Throughput,
		r.MeanDuration,
		r.RelativeStdDev,
		r.Iterations,
		r.SlowerPercent,
		r.Rank,
		r.Measurements,
	)
	return r
}

// Measured records a finished measurement.
func (r *Recorder) Measured(path []string, s bench.Summary) {
	suite := suiteLabel(path)
	r.Throughput.WithLabelValues(suite, s.Name).Set(s.Throughput)
	r.MeanDuration.WithLabelValues(suite, s.Name).Set(s.Mean / 1e9)
	r.RelativeStdDev.WithLabelValues(suite, s.Name).Set(s.RelativeStdDev)
	r.Iterations.WithLabelValues(suite, s.Name).Set(float64(s.Count))
	r.Measurements.Inc()
}

// Compared records a suite ranking.
func (r *Recorder) Compared(path []string, ranking []bench.Ranked) {
	suite := suiteLabel(path)
	for _, e := range ranking {
		r.SlowerPercent.WithLabelValues(suite, e.Name).Set(e.SlowerPercent)
		r.Rank.WithLabelValues(suite, e.Name).Set(float64(e.Rank))
	}
}

// Registry returns the registry holding the recorder's metrics.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes the metrics in the text exposition format, suitable
// for the node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

func suiteLabel(path []string) string {
	return strings.Join(path, "/")
}
