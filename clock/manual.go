package clock

import "time"

// Manual is a Clock that only moves when told to. Tests use it to make the
// measured duration of a call exact.
type Manual struct {
	now uint64
}

// NewManual returns a manual clock starting at start nanoseconds.
func NewManual(start uint64) *Manual {
	return &Manual{now: start}
}

// Now returns the current manual time.
func (m *Manual) Now() uint64 {
	return m.now
}

// Advance moves the clock forward by d. Negative durations are ignored so the
// clock stays monotonic.
func (m *Manual) Advance(d time.Duration) {
	if d > 0 {
		m.now += uint64(d)
	}
}

// AdvanceNanos moves the clock forward by n nanoseconds.
func (m *Manual) AdvanceNanos(n uint64) {
	m.now += n
}
