package vector

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	v := Of(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, v.Slice())
	assert.Equal(t, 3, v.Cap())

	assert.True(t, Of[int]().Empty())
}

func TestFromSliceSingleAcquire(t *testing.T) {
	st := newStub[int](16)

	v, err := FromSlice([]int{4, 5, 6}, WithStrategy[int](st))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6}, v.Slice())
	assert.Equal(t, 1, st.acquires, "a known length needs exactly one acquisition")
}

func TestFromSliceLengthLimit(t *testing.T) {
	st := newStub[int](2)
	_, err := FromSlice([]int{1, 2, 3}, WithStrategy[int](st))
	require.ErrorIs(t, err, ErrLength)
	assert.Zero(t, st.acquires)
}

func TestCollect(t *testing.T) {
	v, err := Collect(slices.Values([]string{"a", "b", "c"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, v.Slice())
}

func TestCollectRollback(t *testing.T) {
	st := newStub[int](2)

	_, err := Collect(slices.Values([]int{1, 2, 3}), WithStrategy[int](st))
	require.ErrorIs(t, err, ErrLength)
	assert.Zero(t, st.liveBlocks, "a failed collection must not leak its storage")
}

func TestCollectErr(t *testing.T) {
	ok := func(yield func(int, error) bool) {
		for i := range 3 {
			if !yield(i * 10, nil) {
				return
			}
		}
	}
	v, err := CollectErr(iter.Seq2[int, error](ok))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 10, 20}, v.Slice())
}

func TestCollectErrRollback(t *testing.T) {
	st := newStub[int](16)
	failing := func(yield func(int, error) bool) {
		if !yield(1, nil) {
			return
		}
		yield(0, errBoom)
	}

	_, err := CollectErr(iter.Seq2[int, error](failing), WithStrategy[int](st))
	require.ErrorIs(t, err, errBoom)
	assert.Zero(t, st.liveBlocks, "elements collected before the failure are destroyed")
}
