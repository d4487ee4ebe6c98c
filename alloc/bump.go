package alloc

import (
	"fmt"
	"unsafe"
)

// defaultBumpSlots is the slot capacity of each bump page.
const defaultBumpSlots = 1000

// bumpPageHeaderBytes accounts for the per-page bookkeeping words (next
// page, cursor, begin, end) in ReservedBytes reporting.
const bumpPageHeaderBytes = 32

// BumpOption configures a Bump at construction time.
type BumpOption func(*bumpConfig)

type bumpConfig struct {
	slotsPerPage int
}

// WithBumpPageSlots sets the slot capacity of each bump page (default 1000).
// Values below one are ignored.
func WithBumpPageSlots(n int) BumpOption {
	return func(c *bumpConfig) {
		if n > 0 {
			c.slotsPerPage = n
		}
	}
}

// Bump is a stack-discipline Strategy: a bump-pointer allocator over
// fixed-capacity pages whose only release order is last-in, first-out.
//
// Acquire hands out up to a page's worth of contiguous slots from the
// current page's tail, opening a new page when the tail cannot fit the
// request; the skipped remainder of the old page stays dead until the page
// is unwound. ReleaseLast(n) undoes the most recent n slots, retiring pages
// that empty along the way. Releasing anything but the most recent
// allocation fails ErrInvalidArgument: this is a narrower contract than the
// address-ordered Pool, not a defect in it.
//
// A Bump carries internal state, so no two Bump instances are ever
// interchangeable.
type Bump[T any] struct {
	pages        []*bumpPage[T]
	slotsPerPage int
	live         int
	stats        BumpStats
}

type bumpPage[T any] struct {
	slots []T
	cur   int // slots[:cur] are live
}

// NewBump returns an empty bump pool. The first page is created lazily on
// the first Acquire.
func NewBump[T any](opts ...BumpOption) *Bump[T] {
	cfg := bumpConfig{slotsPerPage: defaultBumpSlots}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Bump[T]{slotsPerPage: cfg.slotsPerPage}
}

// Acquire returns a contiguous block of n slots from the current page's
// tail. Requests larger than one page can never be satisfied and fail
// ErrInvalidArgument.
func (b *Bump[T]) Acquire(n int) ([]T, error) {
	if n <= 0 || n > b.slotsPerPage {
		return nil, fmt.Errorf("%w: bump pool serves 1..%d contiguous slots, got %d", ErrInvalidArgument, b.slotsPerPage, n)
	}
	tail := b.tail()
	if tail == nil || tail.cur+n > len(tail.slots) {
		tail = b.grow()
	}
	blk := tail.slots[tail.cur : tail.cur+n : tail.cur+n]
	tail.cur += n
	b.live += n
	b.stats.Acquires++
	b.stats.LiveSlots += n
	return blk, nil
}

// ReleaseLast unwinds the most recently acquired n slots, in reverse
// allocation order. Pages emptied mid-unwind are retired; the page the
// unwind stops in is kept even when it empties. Releasing more slots than
// are live fails ErrInvalidArgument.
func (b *Bump[T]) ReleaseLast(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative count %d", ErrInvalidArgument, n)
	}
	if n == 0 {
		return nil
	}
	if n > b.live {
		return fmt.Errorf("%w: release of %d exceeds %d live slots", ErrInvalidArgument, n, b.live)
	}
	remain := n
	for remain > 0 {
		tail := b.tail()
		if tail.cur >= remain {
			clear(tail.slots[tail.cur-remain : tail.cur])
			tail.cur -= remain
			remain = 0
		} else {
			remain -= tail.cur
			clear(tail.slots[:tail.cur])
			tail.cur = 0
			b.pages = b.pages[:len(b.pages)-1]
			b.stats.Pages--
		}
	}
	b.live -= n
	b.stats.Releases++
	b.stats.LiveSlots -= n
	return nil
}

// Release satisfies Strategy. The block must be exactly the most recent
// live allocation: its address must match the top n slots of the page
// holding the stack top, which is not necessarily the last page when an
// unwind stopped exactly at a page boundary. Any other release order is
// misuse of the stack discipline and fails ErrInvalidArgument.
func (b *Bump[T]) Release(block []T, n int) error {
	if len(block) == 0 {
		return nil
	}
	if n != len(block) {
		return fmt.Errorf("%w: count %d does not match block length %d", ErrInvalidArgument, n, len(block))
	}
	pg := b.top()
	if pg == nil || pg.cur < n {
		return fmt.Errorf("%w: block is not the most recent allocation", ErrInvalidArgument)
	}
	top := unsafe.Pointer(unsafe.SliceData(pg.slots[pg.cur-n:]))
	if unsafe.Pointer(unsafe.SliceData(block)) != top {
		return fmt.Errorf("%w: block is not the most recent allocation", ErrInvalidArgument)
	}
	return b.ReleaseLast(n)
}

// Max reports the largest contiguous block a single Acquire can serve.
func (b *Bump[T]) Max() int { return b.slotsPerPage }

// Policy marks bump pools as stateful: never interchangeable, never
// propagated on copy-assignment.
func (b *Bump[T]) Policy() Policy { return Policy{} }

// Stats returns a snapshot of occupancy and lifetime counters.
func (b *Bump[T]) Stats() BumpStats {
	s := b.stats
	s.SlotsPerPage = b.slotsPerPage
	var zero T
	pageBytes := bumpPageHeaderBytes + uintptr(b.slotsPerPage)*unsafe.Sizeof(zero)
	s.ReservedBytes = uint64(len(b.pages)) * uint64(pageBytes)
	return s
}

func (b *Bump[T]) tail() *bumpPage[T] {
	if len(b.pages) == 0 {
		return nil
	}
	return b.pages[len(b.pages)-1]
}

// top returns the page holding the most recent live allocation. It skips a
// trailing page that an unwind emptied without retiring.
func (b *Bump[T]) top() *bumpPage[T] {
	for i := len(b.pages) - 1; i >= 0; i-- {
		if b.pages[i].cur > 0 {
			return b.pages[i]
		}
	}
	return nil
}

// grow appends a fresh page and makes it current.
func (b *Bump[T]) grow() *bumpPage[T] {
	pg := &bumpPage[T]{slots: make([]T, b.slotsPerPage)}
	b.pages = append(b.pages, pg)
	b.stats.Pages++
	return pg
}

// Compile-time interface check
var _ Strategy[int] = (*Bump[int])(nil)
