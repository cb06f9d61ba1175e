// Package clock provides the monotonic nanosecond time source used to time
// every measured call.
//
// Only differences between two readings are meaningful; the epoch is
// implementation-defined.
package clock

import (
	"errors"
	"sync"
)

// ErrUnavailable is returned when the platform monotonic clock cannot be read.
var ErrUnavailable = errors.New("monotonic clock unavailable")

// Clock returns a monotonically non-decreasing timestamp in nanoseconds.
type Clock interface {
	Now() uint64
}

// Monotonic reads the platform monotonic clock.
type Monotonic struct{}

// defaultClock probes the platform clock exactly once per process.
var defaultClock = sync.OnceValues(func() (*Monotonic, error) {
	if err := calibrate(); err != nil {
		return nil, err
	}
	return &Monotonic{}, nil
})

// Default returns the process-wide monotonic clock. The first call probes the
// platform timer; a failed probe is reported on every call.
func Default() (*Monotonic, error) {
	return defaultClock()
}

// Now returns the current monotonic time in nanoseconds.
func (m *Monotonic) Now() uint64 {
	return now()
}
