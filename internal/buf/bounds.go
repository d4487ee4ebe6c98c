// Package buf provides overflow-safe arithmetic for element counts and byte
// sizes. Both the container and the allocation strategies size storage with
// these helpers so that capacity math saturates instead of wrapping.
package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result would overflow int.
// This is essential for count * elementSize calculations when sizing storage.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// For positive numbers, check if result would overflow
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	// For negative numbers
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	// Mixed signs - check against MinInt
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// MaxCount returns the largest element count addressable for elements of
// elemSize bytes. Zero-size elements are bounded only by int.
func MaxCount(elemSize uintptr) int {
	if elemSize == 0 {
		return math.MaxInt
	}
	return math.MaxInt / int(elemSize)
}

// GrowCap computes the next capacity for a container of the given size:
// size + max(size, 1), saturating at max. Doubling keeps the total element
// transfers across n sequential appends at O(n).
func GrowCap(size, max int) int {
	delta := size
	if delta < 1 {
		delta = 1
	}
	next, ok := AddOverflowSafe(size, delta)
	if !ok || next > max {
		return max
	}
	return next
}

// RoundUp8 rounds n up to the next multiple of 8.
func RoundUp8(n uintptr) uintptr {
	return (n + 7) &^ 7
}
