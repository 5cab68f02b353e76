package seqs_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splendid/seqs"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestRandomCombination(t *testing.T) {
	pool := []int{1, 2, 3}

	first, err := seqs.RandomCombination(seeded(), slices.Values(pool), 2)
	require.NoError(t, err)
	second, err := seqs.RandomCombination(seeded(), slices.Values(pool), 2)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same seed, same sample")

	r := seeded()
	for range 100 {
		c, err := seqs.RandomCombination(r, slices.Values([]int{1, 2, 3, 4, 5, 6}), 3)
		require.NoError(t, err)
		assert.Len(t, c, 3)
		assert.True(t, slices.IsSorted(c), "original order preserved: %v", c)
		assert.Len(t, slices.Compact(slices.Clone(c)), 3, "distinct elements: %v", c)
	}

	all, err := seqs.RandomCombination(seeded(), slices.Values(pool), 3)
	require.NoError(t, err)
	assert.Equal(t, pool, all)

	_, err = seqs.RandomCombination(seeded(), slices.Values(pool), 4)
	assert.ErrorIs(t, err, seqs.ErrInsufficientPopulation)
	assert.ErrorIs(t, err, seqs.ErrInvalidArgument)

	_, err = seqs.RandomCombination(seeded(), slices.Values(pool), -1)
	assert.ErrorIs(t, err, seqs.ErrInvalidArgument)
}

func TestRandomCombinationWithReplacement(t *testing.T) {
	r := seeded()
	for range 100 {
		c, err := seqs.RandomCombinationWithReplacement(r, slices.Values([]int{1, 2, 3}), 5)
		require.NoError(t, err)
		assert.Len(t, c, 5)
		assert.True(t, slices.IsSorted(c))
		for _, v := range c {
			assert.Contains(t, []int{1, 2, 3}, v)
		}
	}

	a, _ := seqs.RandomCombinationWithReplacement(seeded(), slices.Values([]int{1, 2, 3}), 4)
	b, _ := seqs.RandomCombinationWithReplacement(seeded(), slices.Values([]int{1, 2, 3}), 4)
	assert.Equal(t, a, b)

	empty, err := seqs.RandomCombinationWithReplacement(seeded(), slices.Values([]int{}), 0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = seqs.RandomCombinationWithReplacement(seeded(), slices.Values([]int{}), 1)
	assert.ErrorIs(t, err, seqs.ErrEmptyPool)
}

func TestRandomPermutation(t *testing.T) {
	pool := []string{"a", "b", "c", "d"}

	p, err := seqs.RandomPermutation(seeded(), slices.Values(pool), -1)
	require.NoError(t, err)
	assert.ElementsMatch(t, pool, p)

	p, err = seqs.RandomPermutation(seeded(), slices.Values(pool), 2)
	require.NoError(t, err)
	assert.Len(t, p, 2)
	assert.NotEqual(t, p[0], p[1])

	_, err = seqs.RandomPermutation(seeded(), slices.Values(pool), 5)
	assert.ErrorIs(t, err, seqs.ErrInsufficientPopulation)

	// every ordering of three elements shows up eventually
	r := seeded()
	seen := map[string]bool{}
	for range 500 {
		p, err := seqs.RandomPermutation(r, slices.Values([]string{"x", "y", "z"}), -1)
		require.NoError(t, err)
		seen[p[0]+p[1]+p[2]] = true
	}
	assert.Len(t, seen, 6)
}

func TestRandomProduct(t *testing.T) {
	digits := slices.Values([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	letters := slices.Values([]int{100, 200})

	p, err := seqs.RandomProduct(seeded(), 2, digits, letters)
	require.NoError(t, err)
	require.Len(t, p, 4)
	assert.Less(t, p[0], 10)
	assert.Contains(t, []int{100, 200}, p[1])
	assert.Less(t, p[2], 10)
	assert.Contains(t, []int{100, 200}, p[3])

	q, err := seqs.RandomProduct(seeded(), 2, digits, letters)
	require.NoError(t, err)
	assert.Equal(t, p, q)

	_, err = seqs.RandomProduct(seeded(), 1, digits, slices.Values([]int{}))
	assert.ErrorIs(t, err, seqs.ErrEmptyPool)

	_, err = seqs.RandomProduct(seeded(), 0, digits)
	assert.ErrorIs(t, err, seqs.ErrInvalidArgument)
}

func TestRandom_GlobalSource(t *testing.T) {
	c, err := seqs.RandomCombination(nil, slices.Values([]int{1, 2, 3}), 2)
	require.NoError(t, err)
	assert.Len(t, c, 2)
}
