package alloc

import (
	"fmt"
	"unsafe"
)

// defaultPoolSlots is the slot capacity of each pool page.
const defaultPoolSlots = 1024

// PoolOption configures a Pool at construction time.
type PoolOption func(*poolConfig)

type poolConfig struct {
	slotsPerPage int
}

// WithPageSlots sets the slot capacity of each page (default 1024).
// Values below one are ignored.
func WithPageSlots(n int) PoolOption {
	return func(c *poolConfig) {
		if n > 0 {
			c.slotsPerPage = n
		}
	}
}

// Pool is a page-based Strategy restricted to single-slot granularity.
//
// Each page owns a fixed-capacity slot array whose free slots are threaded
// on a doubly linked list ordered by ascending slot index - equivalently,
// ascending address, since slots within a page are laid out contiguously.
// Acquire pops the first free slot of the first page that has one, creating
// a new page when none does, so allocation is amortized O(1). Release walks
// the owning page's free list to reinsert the slot at its address-ordered
// position, O(page size) worst case. That asymmetry is a deliberate trade
// favoring fast allocation and is part of the documented contract.
//
// Pages are append-only: a page lives until the pool itself is dropped, even
// when every slot in it is free. Peak memory never shrinks.
//
// A Pool carries internal state, so no two Pool instances are ever
// interchangeable.
type Pool[T any] struct {
	pages        []*poolPage[T] // creation order; append-only
	slotsPerPage int
	elemSize     uintptr
	elemAlign    uintptr
	layout       SlotLayout
	stats        PoolStats
}

// poolPage holds one fixed-capacity batch of slots. The free list is kept in
// parallel index arrays instead of pointers threaded through raw memory; the
// reachable states per slot are exactly free and in-use.
type poolPage[T any] struct {
	slots     []T     // slot i occupies one backing array entry
	prev      []int32 // free-list links, -1 terminated
	next      []int32
	used      []bool
	firstFree int32 // -1 when the page is fully allocated
	live      int
}

// NewPool returns an empty pool. The first page is created lazily on the
// first Acquire.
func NewPool[T any](opts ...PoolOption) *Pool[T] {
	cfg := poolConfig{slotsPerPage: defaultPoolSlots}
	for _, opt := range opts {
		opt(&cfg)
	}
	var zero T
	return &Pool[T]{
		slotsPerPage: cfg.slotsPerPage,
		elemSize:     unsafe.Sizeof(zero),
		elemAlign:    unsafe.Alignof(zero),
		layout:       LayoutOf[T](),
	}
}

// Acquire returns storage for exactly one element. Pool pages cannot serve
// contiguous multi-slot blocks, so any other count fails ErrInvalidArgument.
func (p *Pool[T]) Acquire(n int) ([]T, error) {
	if n != 1 {
		return nil, fmt.Errorf("%w: pool allocates single slots, got n=%d", ErrInvalidArgument, n)
	}
	if p.elemSize == 0 {
		return nil, fmt.Errorf("%w: zero-size elements have no distinct slot addresses", ErrInvalidArgument)
	}
	pg := p.findFreePage()
	if pg == nil {
		pg = p.grow()
	}
	i := pg.firstFree
	nxt := pg.next[i]
	pg.firstFree = nxt
	if nxt >= 0 {
		pg.prev[nxt] = -1
	}
	pg.next[i], pg.prev[i] = -1, -1
	pg.used[i] = true
	pg.live++
	p.stats.Acquires++
	p.stats.LiveSlots++
	p.stats.FreeSlots--
	return pg.slots[i : i+1 : i+1], nil
}

// Release returns a single slot to its owning page, which is identified by
// address-range containment over the pages in creation order. The slot is
// spliced back into the page's free list at the position that keeps the list
// ordered by ascending address. The released value is cleared so the pool
// never pins dead element references.
func (p *Pool[T]) Release(block []T, n int) error {
	if len(block) == 0 {
		return nil
	}
	if n != 1 || len(block) != 1 {
		return fmt.Errorf("%w: pool releases single slots, got n=%d len=%d", ErrInvalidArgument, n, len(block))
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(block)))
	pg, idx, err := p.locate(addr)
	if err != nil {
		return err
	}
	if !pg.used[idx] {
		return fmt.Errorf("%w: slot %d is already free", ErrInvalidArgument, idx)
	}
	var zero T
	pg.slots[idx] = zero
	pg.used[idx] = false
	pg.live--
	p.stats.Releases++
	p.stats.LiveSlots--
	p.stats.FreeSlots++
	p.reinsert(pg, int32(idx))
	return nil
}

// Max reports the single-slot granularity of the pool.
func (p *Pool[T]) Max() int { return 1 }

// Policy marks pools as stateful: never interchangeable, never propagated on
// copy-assignment.
func (p *Pool[T]) Policy() Policy { return Policy{} }

// Layout returns the slot byte-accounting for this pool's element type.
func (p *Pool[T]) Layout() SlotLayout { return p.layout }

// Stats returns a snapshot of occupancy and lifetime counters.
func (p *Pool[T]) Stats() PoolStats {
	s := p.stats
	s.SlotsPerPage = p.slotsPerPage
	pageBytes := pageHeaderSize(p.elemAlign) + uintptr(p.slotsPerPage)*p.layout.SlotSize
	s.ReservedBytes = uint64(len(p.pages)) * uint64(pageBytes)
	return s
}

// findFreePage scans pages in creation order for one with a free slot.
func (p *Pool[T]) findFreePage() *poolPage[T] {
	for _, pg := range p.pages {
		if pg.firstFree >= 0 {
			return pg
		}
	}
	return nil
}

// grow appends one page with every slot threaded into a single ascending
// free list.
func (p *Pool[T]) grow() *poolPage[T] {
	n := p.slotsPerPage
	pg := &poolPage[T]{
		slots: make([]T, n),
		prev:  make([]int32, n),
		next:  make([]int32, n),
		used:  make([]bool, n),
	}
	for i := range n {
		pg.prev[i] = int32(i - 1)
		if i == n-1 {
			pg.next[i] = -1
		} else {
			pg.next[i] = int32(i + 1)
		}
	}
	p.pages = append(p.pages, pg)
	p.stats.Pages++
	p.stats.FreeSlots += n
	return pg
}

// locate finds the page whose slot array contains addr and the slot index
// within it. Each page's range is derived from that page's own array, never
// from the first page's.
func (p *Pool[T]) locate(addr uintptr) (*poolPage[T], int, error) {
	for _, pg := range p.pages {
		base := uintptr(unsafe.Pointer(unsafe.SliceData(pg.slots)))
		end := base + uintptr(len(pg.slots))*p.elemSize
		if addr < base || addr >= end {
			continue
		}
		off := addr - base
		if off%p.elemSize != 0 {
			return nil, 0, fmt.Errorf("%w: address does not start a slot", ErrInvalidArgument)
		}
		return pg, int(off / p.elemSize), nil
	}
	return nil, 0, fmt.Errorf("%w: address not owned by this pool", ErrInvalidArgument)
}

// reinsert splices slot i back into pg's free list in ascending index order.
func (p *Pool[T]) reinsert(pg *poolPage[T], i int32) {
	if pg.firstFree < 0 {
		pg.prev[i], pg.next[i] = -1, -1
		pg.firstFree = i
		return
	}
	if i < pg.firstFree {
		pg.prev[i] = -1
		pg.next[i] = pg.firstFree
		pg.prev[pg.firstFree] = i
		pg.firstFree = i
		return
	}
	// walk to the last free slot below i and splice after it
	at := pg.firstFree
	for pg.next[at] >= 0 && pg.next[at] < i {
		at = pg.next[at]
	}
	pg.next[i] = pg.next[at]
	pg.prev[i] = at
	if pg.next[at] >= 0 {
		pg.prev[pg.next[at]] = i
	}
	pg.next[at] = i
}

// Compile-time interface check
var _ Strategy[int] = (*Pool[int])(nil)
