package alloc

import (
	"unsafe"

	"github.com/northhalf/DataStructure/internal/buf"
)

// SlotLayout describes the byte footprint of one pool slot: a control header
// (free flag plus the two free-list links) followed by padded value storage.
// The pool keeps its backing storage in flat slot arrays, so the layout is a
// byte-accounting contract rather than a physical one; it drives the
// ReservedBytes figures reported by Stats.
type SlotLayout struct {
	HeaderSize uintptr // control header bytes preceding the value
	ValueSize  uintptr // value storage bytes, including padding
	SlotSize   uintptr // HeaderSize + ValueSize
}

// slotHeader is the control header the layout accounts for. The links are
// page-local slot indexes rather than raw addresses.
type slotHeader struct {
	free       bool
	prev, next int32
}

// layoutFor computes the slot layout for a value of the given size and
// alignment:
//
//	align >= 32: header = align, value kept as-is
//	align == 16: header = 32, value kept as-is
//	otherwise:   header = sizeof(slotHeader), value rounded up to 8 bytes
//
// Slot sizes computed this way are strictly positive and consistent with the
// page accounting, which is what keeps ascending slot indexes equivalent to
// ascending addresses.
func layoutFor(size, align uintptr) SlotLayout {
	switch {
	case align >= 32:
		return SlotLayout{HeaderSize: align, ValueSize: size, SlotSize: align + size}
	case align == 16:
		return SlotLayout{HeaderSize: 32, ValueSize: size, SlotSize: 32 + size}
	default:
		padded := buf.RoundUp8(size)
		hdr := unsafe.Sizeof(slotHeader{})
		return SlotLayout{HeaderSize: hdr, ValueSize: padded, SlotSize: hdr + padded}
	}
}

// LayoutOf returns the slot layout for element type T.
func LayoutOf[T any]() SlotLayout {
	var zero T
	return layoutFor(unsafe.Sizeof(zero), unsafe.Alignof(zero))
}

// pageHeaderSize returns the bookkeeping bytes accounted per page: the
// element alignment when it is 32 or more, 16 otherwise.
func pageHeaderSize(align uintptr) uintptr {
	if align >= 32 {
		return align
	}
	return 16
}
