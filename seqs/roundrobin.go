package seqs

import (
	"iter"

	"splendid/queues"
)

// RoundRobin takes one element from each sequence in turn, in argument order.
// An exhausted sequence is dropped and the rest carry on in their original order.
//
//	RoundRobin("ABC", "D", "EF") --> A D E B F C
func RoundRobin[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		pending := queues.NewArrayQueue[func() (T, bool)](len(seqs))
		stops := make([]func(), 0, len(seqs))
		defer func() {
			for _, stop := range stops {
				stop()
			}
		}()

		for _, seq := range seqs {
			next, stop := iter.Pull(seq)
			stops = append(stops, stop)
			pending.Enqueue(next)
		}

		for {
			next, ok := pending.Dequeue()
			if !ok {
				return
			}
			v, ok := next()
			if !ok {
				continue
			}
			if !yield(v) {
				return
			}
			pending.Enqueue(next)
		}
	}
}
