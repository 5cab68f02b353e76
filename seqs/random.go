package seqs

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"
)

// The Random* functions draw from r, or from the global source when r is nil.
// Seed r for reproducible results:
//
//	r := rand.New(rand.NewPCG(1, 2))

func intN(r *rand.Rand, n int) int {
	if r == nil {
		return rand.IntN(n)
	}
	return r.IntN(n)
}

// sampleIndices picks k distinct indices from [0, n) by a partial Fisher-Yates shuffle.
// The result is in selection order.
func sampleIndices(r *rand.Rand, n, k int) ([]int, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: negative sample size %d", ErrInvalidArgument, k)
	}
	if k > n {
		return nil, fmt.Errorf("%w: k=%d n=%d", ErrInsufficientPopulation, k, n)
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + intN(r, n-i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm[:k], nil
}

func pick[T any](pool []T, indices []int) []T {
	out := make([]T, len(indices))
	for i, idx := range indices {
		out[i] = pool[idx]
	}
	return out
}

// RandomProduct picks one element uniformly from each pool, with the whole list of
// pools repeated repeat times. The result follows pool order.
//
// It returns ErrInvalidArgument if repeat < 1 and ErrEmptyPool if any pool is empty.
func RandomProduct[T any](r *rand.Rand, repeat int, pools ...iter.Seq[T]) ([]T, error) {
	if repeat < 1 {
		return nil, fmt.Errorf("%w: repeat=%d", ErrInvalidArgument, repeat)
	}
	materialized := make([][]T, len(pools))
	for i, pool := range pools {
		materialized[i] = slices.Collect(pool)
		if len(materialized[i]) == 0 {
			return nil, fmt.Errorf("%w: pool %d", ErrEmptyPool, i)
		}
	}

	out := make([]T, 0, len(pools)*repeat)
	for range repeat {
		for _, pool := range materialized {
			out = append(out, pool[intN(r, len(pool))])
		}
	}
	return out, nil
}

// RandomPermutation returns k elements of seq in random order, without replacement.
// A negative k selects the whole population.
//
// It returns ErrInsufficientPopulation if k exceeds the population size.
func RandomPermutation[T any](r *rand.Rand, seq iter.Seq[T], k int) ([]T, error) {
	pool := slices.Collect(seq)
	if k < 0 {
		k = len(pool)
	}
	indices, err := sampleIndices(r, len(pool), k)
	if err != nil {
		return nil, err
	}
	return pick(pool, indices), nil
}

// RandomCombination returns k distinct elements of seq chosen uniformly, kept in
// their original relative order.
//
// It returns ErrInsufficientPopulation if k exceeds the population size and
// ErrInvalidArgument if k is negative.
func RandomCombination[T any](r *rand.Rand, seq iter.Seq[T], k int) ([]T, error) {
	pool := slices.Collect(seq)
	indices, err := sampleIndices(r, len(pool), k)
	if err != nil {
		return nil, err
	}
	slices.Sort(indices)
	return pick(pool, indices), nil
}

// RandomCombinationWithReplacement draws k indices independently and uniformly, sorts
// them and maps them back to elements of seq.
//
// The result is not uniform over multisets: sorting independent draws favours
// combinations with distinct elements. This matches the classic recipe and is kept
// for compatibility.
func RandomCombinationWithReplacement[T any](r *rand.Rand, seq iter.Seq[T], k int) ([]T, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: negative sample size %d", ErrInvalidArgument, k)
	}
	pool := slices.Collect(seq)
	if k > 0 && len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	indices := make([]int, k)
	for i := range indices {
		indices[i] = intN(r, len(pool))
	}
	slices.Sort(indices)
	return pick(pool, indices), nil
}
