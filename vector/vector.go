package vector

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/northhalf/DataStructure/alloc"
	"github.com/northhalf/DataStructure/internal/buf"
)

// Vector is a growable contiguous sequence of T backed by an allocation
// strategy.
//
// The vector owns one block acquired from its strategy: data[:size] are the
// live elements and data[size:] is spare capacity, which is never read and
// is kept zeroed so that growing into it yields default values. Every
// mutating operation is strongly failure-safe: replacement storage is fully
// populated before the old storage is destroyed, so a failed operation
// leaves the vector observably unchanged.
//
// Construct vectors with New and the other constructors; the zero Vector is
// not ready for use. Vectors are not safe for concurrent use.
type Vector[T any] struct {
	data  []T // owned storage; len(data) is the capacity
	size  int // data[:size] are live elements
	strat alloc.Strategy[T]
	tr    Transferer[T]
}

// Option configures a Vector at construction time.
type Option[T any] func(*Vector[T])

// WithStrategy directs all storage acquisition through s.
func WithStrategy[T any](s alloc.Strategy[T]) Option[T] {
	return func(v *Vector[T]) {
		if s != nil {
			v.strat = s
		}
	}
}

// WithTransferer sets the element relocation policy used on reallocation.
func WithTransferer[T any](tr Transferer[T]) Option[T] {
	return func(v *Vector[T]) {
		if tr != nil {
			v.tr = tr
		}
	}
}

// New returns an empty vector with no storage. The default strategy is the
// heap; the default transfer policy is plain assignment.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{strat: alloc.NewHeap[T](), tr: Assign[T]()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewLen returns a vector of n default-valued elements.
func NewLen[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.checkLen(n); err != nil {
		return nil, err
	}
	blk, err := v.acquire(v.strat, n)
	if err != nil {
		return nil, err
	}
	v.data, v.size = blk, n
	return v, nil
}

// NewFill returns a vector of n copies of val.
func NewFill[T any](n int, val T, opts ...Option[T]) (*Vector[T], error) {
	v, err := NewLen(n, opts...)
	if err != nil {
		return nil, err
	}
	for i := range v.data[:v.size] {
		v.data[i] = val
	}
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the slot count of the owned storage, live or not.
func (v *Vector[T]) Cap() int { return len(v.data) }

// Empty reports whether the vector holds no live elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// MaxLen returns the largest length this vector can reach: the smaller of
// the address-space-derived count and the strategy's limit.
func (v *Vector[T]) MaxLen() int { return maxLenFor(v.strat) }

func maxLenFor[T any](st alloc.Strategy[T]) int {
	var zero T
	m := buf.MaxCount(unsafe.Sizeof(zero))
	if sm := st.Max(); sm < m {
		m = sm
	}
	return m
}

// Front returns a pointer to the first element. Calling Front on an empty
// vector is a precondition violation and panics.
func (v *Vector[T]) Front() *T {
	if v.size == 0 {
		panic("vector: Front on empty vector")
	}
	return &v.data[0]
}

// Back returns a pointer to the last element. Calling Back on an empty
// vector is a precondition violation and panics.
func (v *Vector[T]) Back() *T {
	if v.size == 0 {
		panic("vector: Back on empty vector")
	}
	return &v.data[v.size-1]
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) T {
	v.bounds(i)
	return v.data[i]
}

// Set overwrites the element at index i.
func (v *Vector[T]) Set(i int, val T) {
	v.bounds(i)
	v.data[i] = val
}

func (v *Vector[T]) bounds(i int) {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vector: index %d out of range [0,%d)", i, v.size))
	}
}

// Slice returns the live elements as a slice view sharing the vector's
// storage. The view is invalidated by any operation that reallocates or
// destroys the positions it references; this is a precondition, not
// enforced at runtime.
func (v *Vector[T]) Slice() []T { return v.data[:v.size:v.size] }

// All ranges over (index, element) pairs of the live range. The same
// invalidation precondition as Slice applies.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range v.size {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Clear destroys all live elements in index order. Capacity is retained.
func (v *Vector[T]) Clear() {
	clear(v.data[:v.size])
	v.size = 0
}

func (v *Vector[T]) String() string {
	return fmt.Sprint(v.data[:v.size])
}

// checkLen validates a requested length against MaxLen before any memory is
// touched.
func (v *Vector[T]) checkLen(n int) error {
	return v.checkLenFor(v.strat, n)
}

// checkLenFor is checkLen against an arbitrary strategy's limit, for the
// assignment path that may adopt the source's strategy.
func (v *Vector[T]) checkLenFor(st alloc.Strategy[T], n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrLength, n)
	}
	if m := maxLenFor(st); n > m {
		return fmt.Errorf("%w: %d exceeds maximum %d", ErrLength, n, m)
	}
	return nil
}

// acquire fetches an n-slot block from st. Zero-length requests acquire no
// storage at all, keeping single-slot strategies usable for empty vectors.
func (v *Vector[T]) acquire(st alloc.Strategy[T], n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	return st.Acquire(n)
}

// adopt destroys the old elements, returns the old storage to the strategy
// and installs blk as the new storage with the given live size. Callers must
// have fully populated blk first.
func (v *Vector[T]) adopt(blk []T, size int) {
	clear(v.data[:v.size])
	_ = v.strat.Release(v.data, len(v.data)) // own storage; cannot fail
	v.data, v.size = blk, size
}

// destroy releases all elements and storage, leaving the empty state.
func (v *Vector[T]) destroy() {
	v.adopt(nil, 0)
}

// transferInto relocates the live range into blk via the transfer policy.
// On error the caller rolls back; old storage has not been modified beyond
// what the Transferer itself did to sources.
func (v *Vector[T]) transferInto(blk []T) error {
	for i := range v.size {
		if err := v.tr.Transfer(&blk[i], &v.data[i]); err != nil {
			return err
		}
	}
	return nil
}
