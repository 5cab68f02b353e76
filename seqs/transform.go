package seqs

import (
	"iter"
	"slices"
)

func FlatMap[S any, T any](source iter.Seq[S], f func(S) iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for s := range source {
			for t := range f(s) {
				if !yield(t) {
					return
				}
			}
		}
	}
}

// Flatten removes one level of nesting. The outer sequence is read one inner
// sequence at a time, so it may be infinite.
func Flatten[T any](seqs iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return FlatMap(seqs, func(s iter.Seq[T]) iter.Seq[T] { return s })
}

// FlattenSlices is Flatten for a sequence of slices.
func FlattenSlices[S ~[]T, T any](seqs iter.Seq[S]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for s := range seqs {
			for _, v := range s {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Concat yields every element of each seq in argument order.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Pad yields seq followed by fill, forever.
func Pad[T any](seq iter.Seq[T], fill T) iter.Seq[T] {
	return Concat(seq, Repeat(fill, -1))
}

// PadZero yields seq followed by the zero value of T, forever.
func PadZero[T any](seq iter.Seq[T]) iter.Seq[T] {
	var zero T
	return Pad(seq, zero)
}

// NCycles yields the elements of seq n times over.
// seq is read into memory first, so it must be finite.
func NCycles[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		items := slices.Collect(seq)
		for range n {
			for _, v := range items {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Pair is one element of a Zip or ZipLongest result.
type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Zip pairs up the elements of seq1 and seq2, stopping at the shorter one.
func Zip[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2]) iter.Seq[Pair[T1, T2]] {
	return func(yield func(Pair[T1, T2]) bool) {
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for v1 := range seq1 {
			v2, ok := next2()
			if !ok {
				return
			}
			if !yield(Pair[T1, T2]{v1, v2}) {
				return
			}
		}
	}
}

// ZipLongest zips two sequences until both are exhausted.
// Use fill1 and fill2 to stand in for the missing values of seq1 and seq2 respectively.
func ZipLongest[T1, T2 any](
	seq1 iter.Seq[T1],
	seq2 iter.Seq[T2],
	fill1 T1,
	fill2 T2,
) iter.Seq[Pair[T1, T2]] {
	return func(yield func(Pair[T1, T2]) bool) {
		next1, stop1 := iter.Pull(seq1)
		defer stop1()
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for {
			v1, ok1 := next1()
			v2, ok2 := next2()
			if !ok1 && !ok2 {
				return
			}
			if !ok1 {
				v1 = fill1
			}
			if !ok2 {
				v2 = fill2
			}
			if !yield(Pair[T1, T2]{V1: v1, V2: v2}) {
				return
			}
		}
	}
}

func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for v := range seq {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}
