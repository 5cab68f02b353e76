package seqs_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"splendid/seqs"
)

func TestMapFilterReduce(t *testing.T) {
	input := slices.Values([]int{1, 2, 3, 4})

	assert.Equal(t, []int{2, 4, 6, 8}, slices.Collect(seqs.Map(input, func(x int) int { return x * 2 })))
	assert.Equal(t, []int{2, 4}, slices.Collect(seqs.Filter(input, func(x int) bool { return x%2 == 0 })))
	assert.Equal(t, []int{1, 3}, slices.Collect(seqs.FilterFalse(input, func(x int) bool { return x%2 == 0 })))
	assert.Equal(t, "1234", seqs.Reduce(input, "", func(acc string, x int) string {
		return acc + string(rune('0'+x))
	}))
}

func TestFlowControl(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, slices.Collect(seqs.Limit(naturals(), 3)))
	assert.Empty(t, slices.Collect(seqs.Limit(naturals(), 0)))
	assert.Equal(t, []int{3, 4}, slices.Collect(seqs.Skip(seqs.Range(0, 5, 1), 3)))
	assert.Equal(t, []int{0, 1, 2}, slices.Collect(seqs.TakeWhile(naturals(), func(v int) bool { return v < 3 })))
	assert.Equal(t, []int{3, 4}, slices.Collect(seqs.DropWhile(seqs.Range(0, 5, 1), func(v int) bool { return v < 3 })))
}

func TestGenerate(t *testing.T) {
	assert.Equal(t, []int{5, 3, 1}, slices.Collect(seqs.Range(5, 0, -2)))
	assert.Empty(t, slices.Collect(seqs.Range(0, 5, 0)))
	assert.Equal(t, []string{"x", "x"}, slices.Collect(seqs.Repeat("x", 2)))
	assert.Equal(t, []string{"y", "y", "y"}, seqs.Take(seqs.Repeat("y", -1), 3))
}

func TestZip(t *testing.T) {
	zipped := slices.Collect(seqs.Zip(slices.Values([]int{1, 2, 3}), slices.Values([]string{"a", "b"})))
	assert.Equal(t, []seqs.Pair[int, string]{{1, "a"}, {2, "b"}}, zipped)

	longest := slices.Collect(seqs.ZipLongest(slices.Values([]int{1}), slices.Values([]string{"a", "b"}), -1, "?"))
	assert.Equal(t, []seqs.Pair[int, string]{{1, "a"}, {-1, "b"}}, longest)

	var idx []int
	for i, v := range seqs.Enumerate(slices.Values([]string{"a", "b"})) {
		idx = append(idx, i)
		assert.NotEmpty(t, v)
	}
	assert.Equal(t, []int{0, 1}, idx)
}

func TestSinks(t *testing.T) {
	input := slices.Values([]int{3, 1, 4, 1, 5})

	first, ok := seqs.First(input)
	assert.True(t, ok)
	assert.Equal(t, 3, first)
	last, ok := seqs.Last(input)
	assert.True(t, ok)
	assert.Equal(t, 5, last)
	_, ok = seqs.First(slices.Values([]int{}))
	assert.False(t, ok)

	assert.True(t, seqs.Any(input, func(v int) bool { return v == 4 }))
	assert.False(t, seqs.All(input, func(v int) bool { return v > 1 }))
	assert.Equal(t, 5, seqs.Count(input))

	assert.Equal(t, 14, seqs.Sum(input))
	lo, ok := seqs.Min(input)
	assert.True(t, ok)
	assert.Equal(t, 1, lo)
	hi, ok := seqs.Max(input)
	assert.True(t, ok)
	assert.Equal(t, 5, hi)
	_, ok = seqs.Max(slices.Values([]string{}))
	assert.False(t, ok)
}

func TestZip_ReleasesSources(t *testing.T) {
	var leftDone, rightDone bool
	for p := range seqs.Zip(counting(&leftDone), counting(&rightDone)) {
		if p.V1 == 2 {
			break
		}
	}
	assert.True(t, leftDone)
	assert.True(t, rightDone)

	leftDone, rightDone = false, false
	for range seqs.ZipLongest(counting(&leftDone), counting(&rightDone), -1, -1) {
		break
	}
	assert.True(t, leftDone)
	assert.True(t, rightDone)
}
