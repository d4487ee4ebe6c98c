package vector

import "iter"

// Of returns a vector holding the given values, backed by the heap
// strategy with exactly len(vals) capacity.
func Of[T any](vals ...T) *Vector[T] {
	v := New[T]()
	blk, _ := v.strat.Acquire(len(vals)) // heap acquire of a materialized count cannot fail
	copy(blk, vals)
	v.data, v.size = blk, len(vals)
	return v
}

// FromSlice returns a vector copied from s. The length is known up front,
// so storage is acquired exactly once.
func FromSlice[T any](s []T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.checkLen(len(s)); err != nil {
		return nil, err
	}
	blk, err := v.acquire(v.strat, len(s))
	if err != nil {
		return nil, err
	}
	copy(blk, s)
	v.data, v.size = blk, len(s)
	return v, nil
}

// Collect drains a single-pass sequence, growing incrementally through
// Append. If any append fails, everything collected so far is destroyed and
// the error returned.
func Collect[T any](seq iter.Seq[T], opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	for val := range seq {
		if err := v.Append(val); err != nil {
			v.destroy()
			return nil, err
		}
	}
	return v, nil
}

// CollectErr collects from a sequence whose element construction may fail.
// The first error rolls back everything constructed so far and is returned
// unchanged.
func CollectErr[T any](seq iter.Seq2[T, error], opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	for val, err := range seq {
		if err != nil {
			v.destroy()
			return nil, err
		}
		if err := v.Append(val); err != nil {
			v.destroy()
			return nil, err
		}
	}
	return v, nil
}
