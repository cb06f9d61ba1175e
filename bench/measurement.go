package bench

import "github.com/neehar-mavuduru/benc/stats"

// Measurement is one named unit of work and its accumulated timings.
type Measurement struct {
	name  string
	stats stats.Running
}

func newMeasurement(name string) *Measurement {
	return &Measurement{name: name}
}

// Name returns the measurement name.
func (m *Measurement) Name() string {
	return m.name
}

// Summary returns a snapshot of the measurement.
func (m *Measurement) Summary() Summary {
	return Summary{Name: m.name, Summary: m.stats.Snapshot()}
}

// Summary is the reported result of a finished measurement. Durations are
// nanoseconds and Throughput is operations per second.
type Summary struct {
	Name string
	stats.Summary
}

// Ranked is a Summary placed in a suite's ranking. Rank 0 is the fastest;
// SlowerPercent is relative to the fastest mean and is 0 for the fastest.
type Ranked struct {
	Summary
	Rank          int
	SlowerPercent float64
}
