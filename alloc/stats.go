package alloc

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// PoolStats reports pool occupancy and lifetime counters. ReservedBytes is
// computed from the slot layout accounting, so it reflects the byte contract
// of the header+value slot format rather than Go heap usage.
type PoolStats struct {
	Pages         int    // pages created so far (never reclaimed)
	SlotsPerPage  int    // slot capacity of each page
	LiveSlots     int    // slots currently acquired
	FreeSlots     int    // slots threaded on free lists
	Acquires      uint64 // successful Acquire calls
	Releases      uint64 // successful Release calls
	ReservedBytes uint64 // page header + slot bytes across all pages
}

func (s PoolStats) String() string {
	return fmt.Sprintf("pool: %d pages (%s reserved), %d live / %d free slots",
		s.Pages, humanize.IBytes(s.ReservedBytes), s.LiveSlots, s.FreeSlots)
}

// BumpStats reports bump pool occupancy and lifetime counters.
type BumpStats struct {
	Pages         int    // pages currently held (unwinding can retire pages)
	SlotsPerPage  int    // slot capacity of each page
	LiveSlots     int    // slots currently acquired
	Acquires      uint64 // successful Acquire calls
	Releases      uint64 // successful ReleaseLast/Release calls
	ReservedBytes uint64 // page header + slot bytes across held pages
}

func (s BumpStats) String() string {
	return fmt.Sprintf("bump: %d pages (%s reserved), %d live slots",
		s.Pages, humanize.IBytes(s.ReservedBytes), s.LiveSlots)
}
