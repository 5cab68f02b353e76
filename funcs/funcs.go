// Package funcs wraps plain functions: gating them to a single run and timing them.
package funcs

import (
	"log/slog"
	"sync"
	"time"
)

// RunOnce returns a function that calls f the first time it is invoked and reports
// (result, true). Every later call returns the zero value and false without calling f.
// The returned function is safe for concurrent use; concurrent first callers block
// until f has returned.
func RunOnce[T any](f func() T) func() (T, bool) {
	var once sync.Once
	return func() (T, bool) {
		var (
			res   T
			first bool
		)
		once.Do(func() {
			res = f()
			first = true
		})
		return res, first
	}
}

// TimeFunc calls f and returns how long it took together with its result.
func TimeFunc[T any](f func() T) (time.Duration, T) {
	start := time.Now()
	res := f()
	return time.Since(start), res
}

// TimeFuncLogged is TimeFunc that also records the elapsed time at debug level.
// A nil logger uses slog.Default().
func TimeFuncLogged[T any](logger *slog.Logger, name string, f func() T) (time.Duration, T) {
	if logger == nil {
		logger = slog.Default()
	}
	elapsed, res := TimeFunc(f)
	logger.Debug("timed call", "name", name, "elapsed", elapsed)
	return elapsed, res
}
