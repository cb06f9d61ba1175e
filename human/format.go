// Package human renders magnitudes scaled by powers of 1000.
package human

import (
	"math"
	"strconv"
)

const threshold = 1000

var (
	timeUnits  = []string{"ns", "us", "ms", "s"}
	countUnits = []string{"", "k", "m", "b", "t"}
)

// Format scales value down by 1000 until it drops below 1000 or the largest
// unit is reached, then renders it with two decimals and the unit suffix.
// Times are nanosecond based (ns, us, ms, s); counts use k, m, b and t.
//
// NaN and infinities are rendered literally with the base unit suffix.
func Format(value float64, isTime bool) string {
	units := countUnits
	if isTime {
		units = timeUnits
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', 2, 64) + units[0]
	}

	level := 0
	for value >= threshold && level < len(units)-1 {
		value /= threshold
		level++
	}
	return strconv.FormatFloat(value, 'f', 2, 64) + units[level]
}

// Count formats an operation count or rate.
func Count(value float64) string {
	return Format(value, false)
}

// Duration formats a nanosecond duration.
func Duration(nanos float64) string {
	return Format(nanos, true)
}
