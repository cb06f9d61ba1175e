// Package stats accumulates timing samples in constant memory.
package stats

import (
	"errors"
	"math"
	"math/bits"
)

// nanosPerSecond converts accumulated nanoseconds into seconds.
const nanosPerSecond = 1e9

// ErrOverflow is returned when a sample would overflow the accumulated total.
var ErrOverflow = errors.New("stats: accumulated total overflows uint64")

// Running tracks count, total, mean and variance of a stream of nanosecond
// durations using Welford's online algorithm. The zero value is ready to use.
type Running struct {
	count uint64
	total uint64
	mean  float64
	// m2 is the running sum of squared deviations from the evolving mean.
	m2 float64
}

// New returns an empty accumulator.
func New() *Running {
	return &Running{}
}

// Push folds one sample into the accumulator. A sample that would overflow
// the total is rejected and leaves the accumulator unchanged.
func (r *Running) Push(value uint64) error {
	total, carry := bits.Add64(r.total, value, 0)
	if carry != 0 {
		return ErrOverflow
	}

	r.count++
	r.total = total

	x := float64(value)
	delta := x - r.mean
	r.mean += delta / float64(r.count)
	r.m2 += (x - r.mean) * delta
	return nil
}

// Count returns the number of samples pushed.
func (r *Running) Count() uint64 {
	return r.count
}

// Total returns the sum of all samples in nanoseconds.
func (r *Running) Total() uint64 {
	return r.total
}

// Mean returns the mean sample in nanoseconds.
func (r *Running) Mean() float64 {
	return r.mean
}

// Variance returns the population variance, or NaN before the first sample.
func (r *Running) Variance() float64 {
	if r.count == 0 {
		return math.NaN()
	}
	return r.m2 / float64(r.count)
}

// StdDev returns the population standard deviation in nanoseconds.
func (r *Running) StdDev() float64 {
	return math.Sqrt(r.Variance())
}

// RelativeStdDev returns the standard deviation as a percentage of the mean.
func (r *Running) RelativeStdDev() float64 {
	if r.count == 0 || r.mean == 0 {
		return math.NaN()
	}
	return r.StdDev() / r.mean * 100
}

// Throughput returns operations per second, or NaN when no time has been
// accumulated.
func (r *Running) Throughput() float64 {
	if r.total == 0 {
		return math.NaN()
	}
	return float64(r.count) * nanosPerSecond / float64(r.total)
}

// Summary is an immutable copy of an accumulator's derived values.
type Summary struct {
	Count          uint64
	Total          uint64
	Mean           float64
	Variance       float64
	StdDev         float64
	RelativeStdDev float64
	Throughput     float64
}

// Snapshot returns the current derived values.
func (r *Running) Snapshot() Summary {
	return Summary{
		Count:          r.count,
		Total:          r.total,
		Mean:           r.mean,
		Variance:       r.Variance(),
		StdDev:         r.StdDev(),
		RelativeStdDev: r.RelativeStdDev(),
		Throughput:     r.Throughput(),
	}
}
