package seqs

import (
	"iter"
	"slices"
)

// Combinations yields every r-length subsequence of pool, in lexicographic order of
// element positions. Nothing is yielded if r < 0 or r > len(pool); r == 0 yields a
// single empty slice.
func Combinations[T any](pool []T, r int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		n := len(pool)
		if r < 0 || r > n {
			return
		}

		indices := make([]int, r)
		for i := range indices {
			indices[i] = i
		}
		emit := func() bool {
			out := make([]T, r)
			for i, idx := range indices {
				out[i] = pool[idx]
			}
			return yield(out)
		}

		if !emit() {
			return
		}
		for {
			// rightmost index that can still move forward
			i := r - 1
			for i >= 0 && indices[i] == i+n-r {
				i--
			}
			if i < 0 {
				return
			}
			indices[i]++
			for j := i + 1; j < r; j++ {
				indices[j] = indices[j-1] + 1
			}
			if !emit() {
				return
			}
		}
	}
}

// Powerset yields every subset of seq, smallest first.
//
//	Powerset([1,2,3]) --> [] [1] [2] [3] [1 2] [1 3] [2 3] [1 2 3]
//
// seq is read into memory before the first subset is produced.
func Powerset[T any](seq iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		pool := slices.Collect(seq)
		for r := 0; r <= len(pool); r++ {
			for c := range Combinations(pool, r) {
				if !yield(c) {
					return
				}
			}
		}
	}
}
