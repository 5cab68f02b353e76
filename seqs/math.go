package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func Sum[T Number](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

func Min[T constraints.Ordered](seq iter.Seq[T]) (T, bool) {
	var min T
	first := true
	for v := range seq {
		if first || v < min {
			min = v
			first = false
		}
	}
	return min, !first
}

func Max[T constraints.Ordered](seq iter.Seq[T]) (T, bool) {
	var max T
	first := true
	for v := range seq {
		if first || v > max {
			max = v
			first = false
		}
	}
	return max, !first
}

// DotProduct returns the sum of the pairwise products of a and b.
// The longer input is truncated to the length of the shorter one.
func DotProduct[T Number](a, b iter.Seq[T]) T {
	return Sum(Map(Zip(a, b), func(p Pair[T, T]) T {
		return p.V1 * p.V2
	}))
}
