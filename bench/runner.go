package bench

import (
	"fmt"

	"github.com/neehar-mavuduru/benc/human"
)

// Measure times fn repeatedly until the accumulated measured time reaches the
// suite's target duration, then writes the result line. fn always runs at
// least once, however long a single call takes.
//
// The measurement name is written and flushed before timing starts so
// progress is visible while fn runs.
func (s *Suite) Measure(name string, fn func()) error {
	return s.run(name, fn)
}

// MeasureWith is Measure with a value passed to every call of fn. The value
// is borrowed for the duration of the measurement.
func MeasureWith[T any](s *Suite, name string, fn func(T), data T) error {
	return s.run(name, func() { fn(data) })
}

func (s *Suite) run(name string, fn func()) error {
	if err := s.usable(); err != nil {
		return err
	}

	if err := s.printf("%s%s - ", s.pad(), name); err != nil {
		return s.fail(err)
	}
	if err := s.flush(); err != nil {
		return s.fail(err)
	}

	m := newMeasurement(name)
	if err := s.measurements.Push(m); err != nil {
		return s.fail(fmt.Errorf("measure %q: %w", name, err))
	}

	target := uint64(s.target)
	for {
		start := s.clock.Now()
		fn()
		end := s.clock.Now()

		var elapsed uint64
		if end > start {
			elapsed = end - start
		}
		if err := m.stats.Push(elapsed); err != nil {
			return s.fail(fmt.Errorf("measure %q: %w", name, err))
		}
		if m.stats.Total() >= target {
			break
		}
	}

	sum := m.Summary()
	if err := s.printf("%s i/s (±%.2f%%) (%s/i)\n",
		human.Count(sum.Throughput), sum.RelativeStdDev, human.Duration(sum.Mean)); err != nil {
		return s.fail(err)
	}

	s.logger.Debug("measurement finished",
		"measurement", name,
		"iterations", sum.Count,
		"total_ns", sum.Total,
		"mean_ns", sum.Mean,
	)
	if s.observer != nil {
		s.observer.Measured(s.Path(), sum)
	}
	return nil
}
