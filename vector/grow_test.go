package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendDoublesCapacity(t *testing.T) {
	v := New[int]()

	wantCaps := []int{1, 2, 4, 4, 8}
	for i, want := range wantCaps {
		require.NoError(t, v.Append(i))
		assert.Equal(t, want, v.Cap(), "capacity after append %d", i+1)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, v.Slice())
}

func TestAppendFromEmpty(t *testing.T) {
	v, err := NewLen[int](0)
	require.NoError(t, err)
	require.Zero(t, v.Cap())

	appendAll(t, v, 5, 7, 9)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []int{5, 7, 9}, v.Slice())
	assert.Greater(t, v.Cap(), 0)
}

func TestAppendAmortizedTransfers(t *testing.T) {
	st := newStub[int](64)
	ct := &countingTransfer[int]{}
	v := New(WithStrategy[int](st), WithTransferer[int](ct))

	appendAll(t, v, 0, 1, 2, 3, 4, 5, 6, 7)

	// reallocations at sizes 1, 2 and 4 relocate the live prefix; appended
	// elements themselves are placed, not transferred
	assert.Equal(t, 7, ct.calls)
	assert.Equal(t, 8, v.Cap())
	assert.Equal(t, 1, st.liveBlocks, "exactly the current block is outstanding")
}

func TestAppendFuncInPlace(t *testing.T) {
	v, err := NewLen[int](0)
	require.NoError(t, err)
	require.NoError(t, v.AppendFunc(func() (int, error) { return 42, nil }))
	assert.Equal(t, []int{42}, v.Slice())
}

func TestAppendFuncFailureInPlace(t *testing.T) {
	v := Of(1, 2)
	require.NoError(t, v.Resize(1)) // leave spare capacity so no realloc runs

	err := v.AppendFunc(func() (int, error) { return 0, errBoom })
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, []int{1}, v.Slice())
}

func TestAppendFuncFailureDuringRealloc(t *testing.T) {
	st := newStub[int](16)
	v := New(WithStrategy[int](st))
	appendAll(t, v, 1, 2)

	// the vector is full, so this append reallocates; the construction
	// failure must release the new block and leave the old one live
	err := v.AppendFunc(func() (int, error) { return 0, errBoom })
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, []int{1, 2}, v.Slice())
	assert.Equal(t, 2, v.Cap())
	assert.Equal(t, 1, st.liveBlocks, "the failed block must not leak")
}

func TestAppendTransferFailureRollsBack(t *testing.T) {
	st := newStub[int](16)
	ct := &countingTransfer[int]{}
	v := New(WithStrategy[int](st), WithTransferer[int](ct))
	appendAll(t, v, 10, 20)

	ct.failAt = ct.calls + 1
	err := v.Append(30)
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, []int{10, 20}, v.Slice(), "a failed relocation leaves the vector unchanged")
	assert.Equal(t, 2, v.Cap())
	assert.Equal(t, 1, st.liveBlocks)
}

func TestAppendLengthLimit(t *testing.T) {
	st := newStub[int](2)
	v := New(WithStrategy[int](st))
	appendAll(t, v, 1, 2)

	acquires := st.acquires
	err := v.Append(3)
	require.ErrorIs(t, err, ErrLength)
	assert.Equal(t, acquires, st.acquires, "the limit is detected before acquiring")
	assert.Equal(t, []int{1, 2}, v.Slice())
}

func TestResizeShrinkDestroys(t *testing.T) {
	v := Of(1, 2, 3, 4)

	require.NoError(t, v.Resize(2))
	assert.Equal(t, []int{1, 2}, v.Slice())
	assert.Equal(t, 4, v.Cap(), "shrinking keeps capacity")

	// regrowing exposes default values, not the destroyed elements
	require.NoError(t, v.Resize(4))
	assert.Equal(t, []int{1, 2, 0, 0}, v.Slice())
}

func TestResizeGrowReallocates(t *testing.T) {
	v := Of(1, 2)
	require.NoError(t, v.Resize(7))
	assert.Equal(t, []int{1, 2, 0, 0, 0, 0, 0}, v.Slice())
	assert.GreaterOrEqual(t, v.Cap(), 7)
}

func TestResizeNoOp(t *testing.T) {
	v := Of(1, 2)
	c := v.Cap()
	require.NoError(t, v.Resize(2))
	assert.Equal(t, []int{1, 2}, v.Slice())
	assert.Equal(t, c, v.Cap())
}

func TestResizeTransferFailureRollsBack(t *testing.T) {
	st := newStub[int](32)
	ct := &countingTransfer[int]{}
	v := New(WithStrategy[int](st), WithTransferer[int](ct))
	appendAll(t, v, 1, 2)

	ct.failAt = ct.calls + 1
	err := v.Resize(9)
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, []int{1, 2}, v.Slice())
	assert.Equal(t, 1, st.liveBlocks)
}

func TestResizeLengthLimit(t *testing.T) {
	st := newStub[int](4)
	v := New(WithStrategy[int](st))

	require.ErrorIs(t, v.Resize(5), ErrLength)
	require.ErrorIs(t, v.Resize(-1), ErrLength)
	assert.Zero(t, st.acquires)
}
