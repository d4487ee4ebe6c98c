package vector

import "github.com/northhalf/DataStructure/alloc"

// Assign replaces the receiver's contents with a copy of other's. Storage is
// never shared. Assigning a vector to itself is a no-op.
//
// Three cases by relative size: when other's length exceeds the capacity (or
// the strategy must be adopted per its policy), a new exactly-sized block is
// populated first and the old storage destroyed after; when the receiver is
// at least as long, the prefix is overwritten and the surplus tail
// destroyed; otherwise the prefix is overwritten and the remainder copied
// into spare capacity.
func (v *Vector[T]) Assign(other *Vector[T]) error {
	if v == other {
		return nil
	}
	st := v.strat
	adopting := false
	if pol := other.strat.Policy(); pol.PropagateOnCopy && !alloc.Interchangeable(v.strat, other.strat) {
		// storage must come from the adopted strategy, so in-place
		// overwrites are off the table
		st = other.strat
		adopting = true
	}
	n := other.size
	switch {
	case adopting || n > len(v.data):
		if err := v.checkLenFor(st, n); err != nil {
			return err
		}
		blk, err := v.acquire(st, n)
		if err != nil {
			return err
		}
		copy(blk, other.data[:n])
		clear(v.data[:v.size])
		_ = v.strat.Release(v.data, len(v.data))
		v.data, v.size, v.strat = blk, n, st
	case v.size >= n:
		copy(v.data[:n], other.data[:n])
		clear(v.data[n:v.size])
		v.size = n
	default:
		copy(v.data[:n], other.data[:n])
		v.size = n
	}
	return nil
}

// FillAssign replaces the contents with n copies of val, mirroring Assign's
// three cases against the current capacity and size.
func (v *Vector[T]) FillAssign(n int, val T) error {
	if err := v.checkLen(n); err != nil {
		return err
	}
	switch {
	case n > len(v.data):
		blk, err := v.acquire(v.strat, n)
		if err != nil {
			return err
		}
		fill(blk, val)
		clear(v.data[:v.size])
		_ = v.strat.Release(v.data, len(v.data))
		v.data, v.size = blk, n
	case v.size >= n:
		fill(v.data[:n], val)
		clear(v.data[n:v.size])
		v.size = n
	default:
		fill(v.data[:n], val)
		v.size = n
	}
	return nil
}

// Clone returns a deep copy backed by freshly acquired storage of exactly
// Len() slots. The clone allocates from the same strategy instance.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	blk, err := v.acquire(v.strat, v.size)
	if err != nil {
		return nil, err
	}
	copy(blk, v.data[:v.size])
	return &Vector[T]{data: blk, size: v.size, strat: v.strat, tr: v.tr}, nil
}

// CloneFunc is Clone with an element copy function that may fail. On the
// first failure everything constructed so far is destroyed and the new
// storage released; the receiver is never modified.
func (v *Vector[T]) CloneFunc(cp func(T) (T, error)) (*Vector[T], error) {
	blk, err := v.acquire(v.strat, v.size)
	if err != nil {
		return nil, err
	}
	for i := range v.size {
		c, err := cp(v.data[i])
		if err != nil {
			clear(blk[:i])
			_ = v.strat.Release(blk, len(blk))
			return nil, err
		}
		blk[i] = c
	}
	return &Vector[T]{data: blk, size: v.size, strat: v.strat, tr: v.tr}, nil
}

// TakeFrom moves other's contents into the receiver. When the two
// strategies are interchangeable the storage pointers transfer in O(1) and
// other is left empty and storage-less. Otherwise each element is
// transferred individually into freshly acquired storage of the same size -
// O(n), never assuming compatible storage - and other is cleared. On any
// failure both vectors are unchanged.
func (v *Vector[T]) TakeFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	if alloc.Interchangeable(v.strat, other.strat) {
		clear(v.data[:v.size])
		_ = v.strat.Release(v.data, len(v.data))
		v.data, v.size = other.data, other.size
		v.strat = other.strat // move assignment carries the strategy along
		other.data, other.size = nil, 0
		return nil
	}
	if err := v.checkLen(other.size); err != nil {
		return err
	}
	blk, err := v.acquire(v.strat, other.size)
	if err != nil {
		return err
	}
	for i := range other.size {
		if err := v.tr.Transfer(&blk[i], &other.data[i]); err != nil {
			clear(blk[:i])
			_ = v.strat.Release(blk, len(blk))
			return err
		}
	}
	v.adopt(blk, other.size)
	other.Clear()
	return nil
}

func fill[T any](s []T, val T) {
	for i := range s {
		s[i] = val
	}
}
