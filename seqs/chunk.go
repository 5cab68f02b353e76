package seqs

import (
	"fmt"
	"iter"
)

// Chunk splits seq into consecutive groups of n elements.
// The last group is shorter when the input does not divide evenly; it is never padded.
// Every yielded slice is freshly allocated and may be retained by the caller.
//
// Chunk returns ErrInvalidArgument if n < 1.
func Chunk[T any](seq iter.Seq[T], n int) (iter.Seq[[]T], error) {
	return ChunkFunc(seq, n, func(group []T) []T { return group })
}

// ChunkFunc is Chunk with every group passed through collect, which can turn the
// group into another container (a set, a string, a struct).
func ChunkFunc[T, C any](seq iter.Seq[T], n int, collect func([]T) C) (iter.Seq[C], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: can't chunk by n=%d", ErrInvalidArgument, n)
	}
	return func(yield func(C) bool) {
		group := make([]T, 0, n)
		for v := range seq {
			group = append(group, v)
			if len(group) == n {
				if !yield(collect(group)) {
					return
				}
				group = make([]T, 0, n)
			}
		}
		if len(group) > 0 {
			yield(collect(group))
		}
	}, nil
}

// Group collects seq into fixed-length groups of n, padding the last group with fill.
//
//	Group("ABCDEFG", 3, 'x') --> ABC DEF Gxx
//
// Group returns ErrInvalidArgument if n < 1.
func Group[T any](seq iter.Seq[T], n int, fill T) (iter.Seq[[]T], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: can't group by n=%d", ErrInvalidArgument, n)
	}
	return func(yield func([]T) bool) {
		group := make([]T, 0, n)
		for v := range seq {
			group = append(group, v)
			if len(group) == n {
				if !yield(group) {
					return
				}
				group = make([]T, 0, n)
			}
		}
		if len(group) == 0 {
			return
		}
		for len(group) < n {
			group = append(group, fill)
		}
		yield(group)
	}, nil
}

// Pairwise yields each element together with its successor: (s0,s1), (s1,s2), ...
// Inputs with fewer than two elements yield nothing.
func Pairwise[T any](seq iter.Seq[T]) iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		var prev T
		started := false
		for v := range seq {
			if started && !yield(prev, v) {
				return
			}
			prev = v
			started = true
		}
	}
}

// Window creates a sliding window over seq.
//
// Scenario 1 (step < size): overlapping windows, e.g. [1,2,3], [2,3,4] (size=3, step=1).
// Scenario 2 (step == size): equivalent to Chunk without the short tail.
// Scenario 3 (step > size): gapped windows; elements between windows are skipped.
//
// Window returns ErrInvalidArgument if size or step is below 1.
func Window[T any](seq iter.Seq[T], size, step int) (iter.Seq[[]T], error) {
	if size < 1 || step < 1 {
		return nil, fmt.Errorf("%w: window size=%d step=%d", ErrInvalidArgument, size, step)
	}
	return func(yield func([]T) bool) {
		buffer := make([]T, 0, size)
		skipCount := 0

		for v := range seq {
			if skipCount > 0 {
				skipCount--
				continue
			}

			buffer = append(buffer, v)
			if len(buffer) < size {
				continue
			}

			output := make([]T, size)
			copy(output, buffer)
			if !yield(output) {
				return
			}

			if step < size {
				// keep the overlapping tail; copy handles the overlap
				copy(buffer, buffer[step:])
				buffer = buffer[:size-step]
			} else {
				buffer = buffer[:0]
				skipCount = step - size
			}
		}
	}, nil
}
