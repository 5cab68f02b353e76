package seqs

import "iter"

// Filter applies predicate to each element of seq, yielding only those that satisfy the predicate.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// FilterFalse yields the elements of seq for which predicate returns false.
func FilterFalse[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return Filter(seq, func(v T) bool { return !predicate(v) })
}

// Map applies transform to each element of seq, yielding the transformed elements.
func Map[T, R any](seq iter.Seq[T], transform func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// Reduce aggregates the elements of seq using the reducer function, starting from the initial value.
func Reduce[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) R {
	acc := initial
	for v := range seq {
		acc = reducer(acc, v)
	}
	return acc
}

// Quantify counts how many elements of seq satisfy predicate.
func Quantify[T any](seq iter.Seq[T], predicate func(T) bool) int {
	return Count(Filter(seq, predicate))
}
