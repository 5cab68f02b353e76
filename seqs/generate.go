package seqs

import "iter"

func Range(start, end, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

// Repeat yields value count times, or forever when count is negative.
func Repeat[T any](value T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; count < 0 || i < count; i++ {
			if !yield(value) {
				return
			}
		}
	}
}

// Tabulate yields f(start), f(start+1), ... without end.
func Tabulate[T any](f func(int) T, start int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := start; ; i++ {
			if !yield(f(i)) {
				return
			}
		}
	}
}

// RepeatFunc yields the results of calling f, times times; a negative times repeats forever.
//
//	rolls := seqs.RepeatFunc(func() int { return rand.IntN(6) + 1 }, 10)
func RepeatFunc[T any](f func() T, times int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; times < 0 || i < times; i++ {
			if !yield(f()) {
				return
			}
		}
	}
}
