// Package alloc provides pluggable allocation strategies for the container
// packages in this module.
//
// # Overview
//
// The core abstraction is the Strategy interface: a two-operation capability
// (Acquire a zeroed block of slots, Release it) plus the limits and policy
// the container consults when copying or moving. Any type exposing this pair
// of operations over a fixed element type may back a vector.Vector.
//
// # Implementations
//
// Heap: passthrough to the Go runtime allocator
//
//   - Stateless; any two Heap instances are interchangeable
//   - Acquire of any representable count, Release is a no-op
//
// Pool: page-based slab allocator with address-ordered free lists
//
//   - Fixed-capacity pages (1024 slots by default), created lazily, never
//     reclaimed before the pool itself is dropped
//   - Single-slot granularity only; Acquire(n>1) fails ErrInvalidArgument
//   - O(1) amortized Acquire, O(page size) Release - the reinsertion walks
//     the free list to keep it ordered by ascending address
//
// Bump: stack-discipline pool
//
//   - Bump-pointer allocation of up to a page's worth of contiguous slots
//   - Release only unwinds the most recent allocation (LIFO); anything else
//     fails ErrInvalidArgument
//
// # Usage Example
//
//	p := alloc.NewPool[Node]()
//	blk, err := p.Acquire(1)
//	if err != nil {
//	    return err
//	}
//	blk[0] = Node{...}
//
//	// Later, return the slot to its page
//	err = p.Release(blk, 1)
//
// # Slot Layout
//
// Pool accounting follows a fixed slot format: a control header (free flag
// and two free-list links) followed by value storage padded to 8 bytes, with
// wider headers for 16- and 32-byte-plus alignments. LayoutOf reports the
// figures; PoolStats.ReservedBytes aggregates them per page.
//
// # Thread Safety
//
// Strategies are not thread-safe. Each instance is exclusively owned by one
// logical owner at a time; concurrent use without external synchronization
// is a precondition violation, not a supported mode.
package alloc
