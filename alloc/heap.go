package alloc

import (
	"fmt"
	"unsafe"

	"github.com/northhalf/DataStructure/internal/buf"
)

// Heap is the passthrough Strategy over the Go runtime allocator. It is
// stateless, so every Heap instance is interchangeable with every other.
type Heap[T any] struct{}

// NewHeap returns a heap strategy for element type T.
func NewHeap[T any]() *Heap[T] { return &Heap[T]{} }

// Acquire returns a zeroed block of n slots.
func (*Heap[T]) Acquire(n int) ([]T, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("%w: negative count %d", ErrInvalidArgument, n)
	case n == 0:
		return nil, nil
	}
	var zero T
	if _, ok := buf.MulOverflowSafe(n, int(unsafe.Sizeof(zero))); !ok {
		return nil, fmt.Errorf("%w: %d slots of %d bytes", ErrOutOfMemory, n, unsafe.Sizeof(zero))
	}
	return make([]T, n), nil
}

// Release is a no-op; the runtime reclaims unreferenced blocks.
func (*Heap[T]) Release([]T, int) error { return nil }

// Max returns the address-space-derived element limit.
func (*Heap[T]) Max() int {
	var zero T
	return buf.MaxCount(unsafe.Sizeof(zero))
}

// Policy marks heap strategies as stateless and always interchangeable.
func (*Heap[T]) Policy() Policy { return Policy{AlwaysEqual: true} }

// Compile-time interface check
var _ Strategy[int] = (*Heap[int])(nil)
