package seqs

import (
	"errors"
	"iter"
)

// IterExcept turns a call-until-error interface into a sequence.
// first, when non-nil, is called once before fn. The sequence ends quietly when a
// call returns an error matching target (errors.Is). Any other error is yielded
// once, with the value returned alongside it, and ends the sequence.
//
//	// drain a stack until it reports empty
//	for v, err := range seqs.IterExcept(stack.Pop, ErrEmpty, nil) { ... }
func IterExcept[T any](fn func() (T, error), target error, first func() (T, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		call := func(f func() (T, error)) bool {
			v, err := f()
			if err != nil {
				if !errors.Is(err, target) {
					yield(v, err)
				}
				return false
			}
			return yield(v, nil)
		}

		if first != nil && !call(first) {
			return
		}
		for call(fn) {
		}
	}
}
