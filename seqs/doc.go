/*
Package seqs is a catalogue of iterator recipes for Go 1.23+ iterators (iter.Seq).

It covers the classic itertools recipes, expressed as lazy sequences:

  - **Chunking & windowing**: [Chunk], [ChunkFunc], [Group], [Pairwise], [Window], [NCycles].
  - **Order-preserving utilities**: [UniqueEverSeen], [UniqueJustSeen], [AllEqual], [RoundRobin].
  - **Combinatorics**: [Take], [Nth], [Flatten], [Powerset], [Combinations], [PadZero].
  - **Random sampling**: [RandomProduct], [RandomPermutation], [RandomCombination],
    [RandomCombinationWithReplacement].
  - **Misc**: [Quantify], [DotProduct], [Consume], [Tabulate], [RepeatFunc], [IterExcept],
    [Tee], [Peekable].

# Laziness

Every function returning an iter.Seq does no work until the sequence is ranged over, and
stops pulling from its input as soon as the consumer breaks out of the loop. Such sequences
may be built on infinite inputs:

	// first five odd squares, from an infinite source
	odd := seqs.Filter(seqs.Tabulate(func(i int) int { return i * i }, 0), isOdd)
	fmt.Println(seqs.Take(odd, 5))

Functions documented as materializing ([NCycles], [Powerset], the Random* family) read
their whole input first and must not be given an infinite sequence.

# Errors

Size preconditions are checked when the sequence is built, not when it is ranged over:
[Chunk] and [Group] with n < 1 return [ErrInvalidArgument]. Running out of input is
never an error: [Pairwise] of a single element is empty and [Take] past the end returns
fewer elements.

# Concurrency

Nothing in this package starts goroutines of its own or holds shared state. Sequences
that consume an input through [iter.Pull] ([RoundRobin], [Tee], [Peekable], [Zip]) own
that pull handle; ranging the same single-use input from several goroutines at once is
the caller's responsibility.
*/
package seqs
