package vector

import (
	"fmt"

	"github.com/northhalf/DataStructure/internal/buf"
)

// Append appends val, growing capacity by the doubling policy when the
// spare capacity is exhausted. Amortized O(1) over a sequence of appends.
func (v *Vector[T]) Append(val T) error {
	if v.size < len(v.data) {
		v.data[v.size] = val
		v.size++
		return nil
	}
	return v.appendSlow(func() (T, error) { return val, nil })
}

// AppendFunc appends the element produced by mk. A construction failure
// leaves the vector unchanged, whether or not a reallocation was in
// progress.
func (v *Vector[T]) AppendFunc(mk func() (T, error)) error {
	if v.size < len(v.data) {
		val, err := mk()
		if err != nil {
			return err
		}
		v.data[v.size] = val
		v.size++
		return nil
	}
	return v.appendSlow(mk)
}

// appendSlow grows and appends. The new element is constructed at its final
// position in the new block before any existing element is transferred, so
// a failing construction never touches the old storage. Any transfer
// failure destroys what was built in the new block, releases it and
// propagates the error unchanged; the old storage stays fully intact.
func (v *Vector[T]) appendSlow(mk func() (T, error)) error {
	newCap := buf.GrowCap(v.size, v.MaxLen())
	if newCap <= v.size {
		return fmt.Errorf("%w: size %d is the maximum for this strategy", ErrLength, v.size)
	}
	blk, err := v.strat.Acquire(newCap)
	if err != nil {
		return err
	}
	val, err := mk()
	if err != nil {
		_ = v.strat.Release(blk, newCap)
		return err
	}
	blk[v.size] = val
	if err := v.transferInto(blk); err != nil {
		clear(blk)
		_ = v.strat.Release(blk, newCap)
		return err
	}
	v.adopt(blk, v.size+1)
	return nil
}

// Resize grows the vector with default-valued elements or shrinks it by
// destroying the surplus tail; destroyed elements are gone, not parked in
// spare capacity. Resizing to the current length is a no-op.
func (v *Vector[T]) Resize(n int) error {
	if err := v.checkLen(n); err != nil {
		return err
	}
	switch {
	case n == v.size:
		return nil
	case n < v.size:
		clear(v.data[n:v.size])
		v.size = n
		return nil
	case n <= len(v.data):
		// spare capacity is kept zeroed, so the delta is already
		// default-valued
		v.size = n
		return nil
	}
	newCap := buf.GrowCap(v.size, v.MaxLen())
	if newCap < n {
		newCap = n
	}
	blk, err := v.strat.Acquire(newCap)
	if err != nil {
		return err
	}
	if err := v.transferInto(blk); err != nil {
		clear(blk)
		_ = v.strat.Release(blk, newCap)
		return err
	}
	v.adopt(blk, n)
	return nil
}
