// Package timeutil converts between time.Duration and plain numbers of seconds,
// milliseconds, hours or days.
package timeutil

import (
	"math"
	"time"

	"golang.org/x/exp/constraints"
)

const Day = 24 * time.Hour

func Seconds(d time.Duration) float64 {
	return d.Seconds()
}

func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func Hours(d time.Duration) float64 {
	return d.Hours()
}

func Days(d time.Duration) float64 {
	return float64(d) / float64(Day)
}

// FromSeconds converts a number of seconds to a Duration, rounding to the nearest
// nanosecond. Values beyond the Duration range clamp to its bounds.
func FromSeconds[N constraints.Integer | constraints.Float](s N) time.Duration {
	return scale(s, time.Second)
}

func FromMilliseconds[N constraints.Integer | constraints.Float](ms N) time.Duration {
	return scale(ms, time.Millisecond)
}

func FromDays[N constraints.Integer | constraints.Float](days N) time.Duration {
	return scale(days, Day)
}

// scale saturates at the Duration range (about ±292 years); NaN maps to 0.
func scale[N constraints.Integer | constraints.Float](n N, unit time.Duration) time.Duration {
	f := float64(n) * float64(unit)
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	case f < 0:
		return time.Duration(f - 0.5)
	default:
		return time.Duration(f + 0.5)
	}
}
