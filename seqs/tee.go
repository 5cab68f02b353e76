package seqs

import (
	"fmt"
	"iter"
	"math"

	"splendid/queues"
)

type teeBranch[T any] struct {
	buf    *queues.ArrayQueue[T]
	closed bool
}

type teeSource[T any] struct {
	next     func() (T, bool)
	stop     func()
	done     bool
	branches []*teeBranch[T]
	open     int
}

func (s *teeSource[T]) release() {
	if !s.done {
		s.done = true
		s.stop()
	}
}

func (s *teeSource[T]) close(b *teeBranch[T]) {
	if b.closed {
		return
	}
	b.closed = true
	b.buf.Clear()
	s.open--
	if s.open == 0 {
		s.release()
	}
}

// Tee splits seq into n independent sequences that each see every element.
// Values read by one branch ahead of the others are buffered for the laggards, so
// memory grows with the distance between the fastest and slowest branch.
//
// Each branch can be ranged over once. The source is released when every branch has
// finished or stopped early; call stop to release it sooner, e.g. when some branches
// are never ranged over.
func Tee[T any](seq iter.Seq[T], n int) (branches []iter.Seq[T], stop func()) {
	n = max(n, 0)
	next, pullStop := iter.Pull(seq)
	src := &teeSource[T]{next: next, stop: pullStop, open: n}
	for range n {
		src.branches = append(src.branches, &teeBranch[T]{buf: queues.NewArrayQueue[T](0)})
	}

	branches = make([]iter.Seq[T], n)
	for i, b := range src.branches {
		branches[i] = func(yield func(T) bool) {
			defer src.close(b)
			for !b.closed {
				if v, ok := b.buf.Dequeue(); ok {
					if !yield(v) {
						return
					}
					continue
				}
				if src.done {
					return
				}
				v, ok := src.next()
				if !ok {
					src.release()
					return
				}
				for _, other := range src.branches {
					if other != b && !other.closed {
						other.buf.Enqueue(v)
					}
				}
				if !yield(v) {
					return
				}
			}
		}
	}
	return branches, src.release
}

// Peekable wraps a sequence so upcoming elements can be inspected without
// consuming them.
//
// Stop must be called if the sequence is not read to the end.
type Peekable[T any] struct {
	next func() (T, bool)
	stop func()
	buf  *queues.ArrayQueue[T]
	done bool
}

// NewPeekable pulls from seq on demand; nothing is read until the first call.
func NewPeekable[T any](seq iter.Seq[T]) *Peekable[T] {
	next, stop := iter.Pull(seq)
	return &Peekable[T]{
		next: next,
		stop: stop,
		buf:  queues.NewArrayQueue[T](0),
	}
}

// fill buffers until at least n elements are available or the source runs dry.
func (p *Peekable[T]) fill(n int) bool {
	for p.buf.Size() < n {
		if p.done {
			return false
		}
		v, ok := p.next()
		if !ok {
			p.Stop()
			return false
		}
		p.buf.Enqueue(v)
	}
	return true
}

// Next returns the next element and advances past it.
func (p *Peekable[T]) Next() (T, bool) {
	if !p.fill(1) {
		var zero T
		return zero, false
	}
	return p.buf.Dequeue()
}

// Peek returns the next element without advancing.
func (p *Peekable[T]) Peek() (T, bool) {
	if !p.fill(1) {
		var zero T
		return zero, false
	}
	return p.buf.Peek()
}

// Lookahead returns the i-th upcoming element (0 is the next one) without advancing.
// It returns ErrIndexOutOfRange if the input has fewer than i+1 elements left.
func (p *Peekable[T]) Lookahead(i int) (T, error) {
	var zero T
	if i < 0 || i == math.MaxInt || !p.fill(i+1) {
		return zero, fmt.Errorf("%w: lookahead %d", ErrIndexOutOfRange, i)
	}
	v, ok := p.buf.At(i)
	if !ok {
		return zero, fmt.Errorf("%w: lookahead %d", ErrIndexOutOfRange, i)
	}
	return v, nil
}

// All yields the remaining elements, consuming them.
func (p *Peekable[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := p.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Stop releases the underlying sequence. Buffered elements remain readable.
func (p *Peekable[T]) Stop() {
	if !p.done {
		p.done = true
		p.stop()
	}
}
