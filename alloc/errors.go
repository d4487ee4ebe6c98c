package alloc

import "errors"

var (
	// ErrOutOfMemory indicates that the underlying platform allocation failed.
	// Strategies raise it; containers propagate it unchanged.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrInvalidArgument indicates strategy misuse: a multi-slot request or
	// release against a single-slot pool, or releasing an address the pool
	// does not own.
	ErrInvalidArgument = errors.New("alloc: invalid argument")
)
