package seqs

import "fmt"

var (
	// ErrInvalidArgument reports a violated size precondition, such as a chunk size below 1.
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	// ErrInsufficientPopulation is returned when sampling without replacement asks for
	// more elements than the population holds. It wraps ErrInvalidArgument.
	ErrInsufficientPopulation = fmt.Errorf("%w: sample larger than population", ErrInvalidArgument)
	// ErrEmptyPool is returned when a random choice is made from an empty pool.
	ErrEmptyPool = fmt.Errorf("cannot choose from an empty pool")
	// ErrIndexOutOfRange is returned by Peekable.Lookahead past the end of input.
	ErrIndexOutOfRange = fmt.Errorf("index out of range")
)
