// Package queues holds the FIFO buffers the iterator recipes park pending
// values and pull handles in.
package queues

import (
	"iter"
	"math/bits"
)

// ArrayQueue is a FIFO queue backed by a circular array (ring buffer).
// Enqueue and Dequeue are amortized O(1); At is O(1).
//
// An ArrayQueue is not safe for concurrent use.
type ArrayQueue[T any] struct {
	buf  []T // backing array, length == capacity (power of two)
	head int // index of the first element
	size int // number of elements in the queue
	mask int // capacity - 1, used for fast modulo: idx & mask
}

// NewArrayQueue creates an ArrayQueue able to hold initialCapacity elements
// before it grows. The capacity is rounded up to a power of two; values
// <= 0 select a default of 16.
func NewArrayQueue[T any](initialCapacity int) *ArrayQueue[T] {
	if initialCapacity <= 0 {
		initialCapacity = 16
	}
	capacity := roundPow2(initialCapacity)
	return &ArrayQueue[T]{
		buf:  make([]T, capacity),
		mask: capacity - 1,
	}
}

func roundPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << uint(bits.Len(uint(n-1)))
}

// grow doubles the buffer, unwrapping the ring so head lands at 0.
func (aq *ArrayQueue[T]) grow() {
	newBuf := make([]T, roundPow2(aq.size+1))
	if aq.head+aq.size <= len(aq.buf) {
		copy(newBuf, aq.buf[aq.head:aq.head+aq.size])
	} else {
		n := copy(newBuf, aq.buf[aq.head:])
		copy(newBuf[n:], aq.buf[:(aq.head+aq.size)&aq.mask])
	}
	clear(aq.buf)
	aq.buf = newBuf
	aq.head = 0
	aq.mask = len(newBuf) - 1
}

// Enqueue appends value at the back of the queue.
func (aq *ArrayQueue[T]) Enqueue(value T) {
	if aq.size == len(aq.buf) {
		aq.grow()
	}
	aq.buf[(aq.head+aq.size)&aq.mask] = value
	aq.size++
}

// Dequeue removes and returns the front element.
func (aq *ArrayQueue[T]) Dequeue() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	value = aq.buf[aq.head]
	var zero T
	aq.buf[aq.head] = zero // clear reference
	aq.head = (aq.head + 1) & aq.mask
	aq.size--
	return value, true
}

// Peek returns the front element without removing it.
func (aq *ArrayQueue[T]) Peek() (value T, ok bool) {
	return aq.At(0)
}

// At returns the i-th element counted from the front.
func (aq *ArrayQueue[T]) At(i int) (value T, ok bool) {
	if i < 0 || i >= aq.size {
		return value, false
	}
	return aq.buf[(aq.head+i)&aq.mask], true
}

func (aq *ArrayQueue[T]) Size() int {
	return aq.size
}

func (aq *ArrayQueue[T]) IsEmpty() bool {
	return aq.size == 0
}

// Clear drops every element but keeps the allocated buffer.
func (aq *ArrayQueue[T]) Clear() {
	clear(aq.buf)
	aq.head = 0
	aq.size = 0
}

// Values yields the queued elements front to back without removing them.
// The queue must not be modified while the sequence is being ranged over.
func (aq *ArrayQueue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < aq.size; i++ {
			if !yield(aq.buf[(aq.head+i)&aq.mask]) {
				return
			}
		}
	}
}
