package seqs

import (
	"iter"
	"slices"
)

func First[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}

func Last[T any](seq iter.Seq[T]) (T, bool) {
	var last T
	found := false
	for v := range seq {
		last = v
		found = true
	}
	return last, found
}

func Any[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if predicate(v) {
			return true
		}
	}
	return false
}

func All[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if !predicate(v) {
			return false
		}
	}
	return true
}

func Count[T any](seq iter.Seq[T]) int {
	count := 0
	for range seq {
		count++
	}
	return count
}

// Take returns the first n elements of seq as a slice.
// Fewer are returned if seq ends early; n <= 0 returns nil.
func Take[T any](seq iter.Seq[T], n int) []T {
	if n <= 0 {
		return nil
	}
	return slices.Collect(Limit(seq, n))
}

// Nth returns the element at index n, or def if seq has no such element.
func Nth[T any](seq iter.Seq[T], n int, def T) T {
	if n < 0 {
		return def
	}
	i := 0
	for v := range seq {
		if i == n {
			return v
		}
		i++
	}
	return def
}

// Consume advances a pulled iterator n steps, or until it is exhausted when n is
// negative. It reports how many elements were discarded.
//
//	next, stop := iter.Pull(seq)
//	defer stop()
//	seqs.Consume(next, 3)
func Consume[T any](next func() (T, bool), n int) int {
	skipped := 0
	for n < 0 || skipped < n {
		if _, ok := next(); !ok {
			break
		}
		skipped++
	}
	return skipped
}
