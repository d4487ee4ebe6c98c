package vector

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/northhalf/DataStructure/alloc"
)

var errBoom = errors.New("boom")

// stubStrategy is an instrumented strategy for exercising the vector's
// failure paths. It tracks outstanding blocks so tests can assert that no
// storage leaks across rollbacks.
type stubStrategy[T any] struct {
	max         int
	pol         alloc.Policy
	failAcquire error // when set, every Acquire fails with this error
	acquires    int
	releases    int
	liveBlocks  int
}

func newStub[T any](max int) *stubStrategy[T] {
	return &stubStrategy[T]{max: max}
}

func (s *stubStrategy[T]) Acquire(n int) ([]T, error) {
	if s.failAcquire != nil {
		return nil, s.failAcquire
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative count %d", alloc.ErrInvalidArgument, n)
	}
	if n > s.max {
		return nil, fmt.Errorf("%w: %d slots over limit %d", alloc.ErrOutOfMemory, n, s.max)
	}
	if n == 0 {
		return nil, nil
	}
	s.acquires++
	s.liveBlocks++
	return make([]T, n), nil
}

func (s *stubStrategy[T]) Release(block []T, n int) error {
	if len(block) == 0 {
		return nil
	}
	s.releases++
	s.liveBlocks--
	return nil
}

func (s *stubStrategy[T]) Max() int { return s.max }

func (s *stubStrategy[T]) Policy() alloc.Policy { return s.pol }

var _ alloc.Strategy[int] = (*stubStrategy[int])(nil)

// countingTransfer counts Transfer calls and can be armed to fail from a
// given 1-based call onward.
type countingTransfer[T any] struct {
	calls  int
	failAt int // 0 means never fail
}

func (c *countingTransfer[T]) Transfer(dst, src *T) error {
	c.calls++
	if c.failAt != 0 && c.calls >= c.failAt {
		return errBoom
	}
	*dst = *src
	return nil
}

// appendAll appends vals in order, failing the test on the first error.
func appendAll[T any](t *testing.T, v *Vector[T], vals ...T) {
	t.Helper()
	for _, val := range vals {
		require.NoError(t, v.Append(val))
	}
}
