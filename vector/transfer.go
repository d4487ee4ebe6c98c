package vector

// Transferer relocates one element between storage blocks during a
// reallocation. A failed Transfer must leave *src usable: the vector rolls
// the reallocation back and the old storage stays live.
type Transferer[T any] interface {
	Transfer(dst, src *T) error
}

// Assign returns the default transfer policy: plain assignment, which is
// always available for Go values and never fails.
func Assign[T any]() Transferer[T] { return assignTransfer[T]{} }

type assignTransfer[T any] struct{}

func (assignTransfer[T]) Transfer(dst, src *T) error {
	*dst = *src
	return nil
}

// Funcs builds a transfer policy from an optional move and an optional copy
// function. Move is preferred when present; with neither, every transfer
// fails ErrUntransferable.
func Funcs[T any](move, cp func(dst, src *T) error) Transferer[T] {
	return funcTransfer[T]{move: move, cp: cp}
}

type funcTransfer[T any] struct {
	move, cp func(dst, src *T) error
}

func (f funcTransfer[T]) Transfer(dst, src *T) error {
	switch {
	case f.move != nil:
		return f.move(dst, src)
	case f.cp != nil:
		return f.cp(dst, src)
	}
	return ErrUntransferable
}
