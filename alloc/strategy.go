package alloc

import "reflect"

// Policy describes how a strategy participates in container copy and move
// operations. It replaces the usual allocator-propagation traits with one
// explicit value consulted by the container's assignment logic.
type Policy struct {
	// PropagateOnCopy reports whether copy-assignment between containers
	// must also adopt the source container's strategy.
	PropagateOnCopy bool

	// AlwaysEqual reports whether any two instances of this strategy kind
	// are interchangeable. Stateless strategies are; strategies with
	// internal state (pools) never are, which forces containers onto the
	// per-element transfer path when moving between them.
	AlwaysEqual bool
}

// Strategy is the two-operation allocation capability a container delegates
// storage management to. A block is a []T of exactly the acquired length;
// it has no identity beyond the address range it denotes.
//
// Strategies are used by pointer and are not safe for concurrent use.
type Strategy[T any] interface {
	// Acquire returns a zeroed block of n slots. It fails with
	// ErrOutOfMemory when the platform cannot satisfy the request, or
	// ErrInvalidArgument for strategy-specific restrictions.
	Acquire(n int) ([]T, error)

	// Release returns a block of n slots previously acquired from this
	// strategy. Releasing a nil or empty block is a no-op.
	Release(block []T, n int) error

	// Max returns the largest slot count a single Acquire can serve.
	Max() int

	// Policy returns the copy/move participation policy.
	Policy() Policy
}

// Interchangeable reports whether storage acquired from a may be released
// through b and vice versa: either the same instance, or two stateless
// instances of the same concrete kind.
func Interchangeable[T any](a, b Strategy[T]) bool {
	if a == b {
		return true
	}
	if !a.Policy().AlwaysEqual || !b.Policy().AlwaysEqual {
		return false
	}
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}
