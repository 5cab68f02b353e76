package seqs

import "iter"

// UniqueEverSeen yields the elements of seq that have not been seen before, in order.
//
//	UniqueEverSeen("AAAABBBCCDAABBB") --> A B C D
//
// Every distinct element is remembered, so memory grows with the number of distinct
// elements; the input itself may be infinite.
func UniqueEverSeen[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return UniqueEverSeenFunc(seq, func(v T) T { return v })
}

// UniqueEverSeenFunc is UniqueEverSeen comparing elements by key(v).
//
//	UniqueEverSeenFunc("ABBCcAD", unicode.ToLower) --> A B C D
func UniqueEverSeenFunc[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[K]struct{})
		for v := range seq {
			k := key(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// UniqueJustSeen collapses runs of equal elements to their first element.
//
//	UniqueJustSeen("AAAABBBCCDAABBB") --> A B C D A B
//
// Only the previous element is remembered.
func UniqueJustSeen[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return UniqueJustSeenFunc(seq, func(v T) T { return v })
}

// UniqueJustSeenFunc is UniqueJustSeen comparing elements by key(v).
//
//	UniqueJustSeenFunc("ABBCcAD", unicode.ToLower) --> A B C A D
func UniqueJustSeenFunc[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		var last K
		started := false
		for v := range seq {
			k := key(v)
			if started && k == last {
				continue
			}
			last = k
			started = true
			if !yield(v) {
				return
			}
		}
	}
}

// AllEqual reports whether every element of seq equals the first one.
// It is true for an empty sequence and stops reading at the first mismatch.
// On an infinite sequence of equal elements it never returns.
func AllEqual[T comparable](seq iter.Seq[T]) bool {
	return AllEqualFunc(seq, func(a, b T) bool { return a == b })
}

// AllEqualFunc is AllEqual using eq to compare elements.
func AllEqualFunc[T any](seq iter.Seq[T], eq func(a, b T) bool) bool {
	var first T
	started := false
	for v := range seq {
		if !started {
			first = v
			started = true
			continue
		}
		if !eq(first, v) {
			return false
		}
	}
	return true
}
