//go:build !linux

package clock

import "time"

// base anchors the runtime monotonic reading. It is set once by calibrate.
var base time.Time

// calibrate captures the reference instant. The runtime always carries a
// monotonic reading in time.Now, so this cannot fail.
func calibrate() error {
	base = time.Now()
	return nil
}

// now returns nanoseconds elapsed since base, offset by one so that the first
// reading is never zero.
func now() uint64 {
	return uint64(time.Since(base).Nanoseconds()) + 1
}
