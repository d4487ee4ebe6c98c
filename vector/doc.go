// Package vector implements a growable contiguous sequence container
// generic over an allocation strategy.
//
// # Overview
//
// A Vector owns one contiguous block acquired from an alloc.Strategy and
// tracks a live prefix inside it. Growth follows a doubling policy that
// keeps appends amortized O(1), saturating at the maximum representable
// count. Reallocation relocates elements through a Transferer, the
// move-else-copy-else-fail policy expressed as a value.
//
// # Failure Safety
//
// Every operation that can fail offers the strong guarantee: replacement
// storage is fully populated before any old state is destroyed, so the
// failed call leaves the vector exactly as it was. This is the ordering
// "construct, then destroy old" - never the reverse. Errors (ErrLength,
// alloc.ErrOutOfMemory, ErrUntransferable, transfer and construction
// errors) surface to the immediate caller; nothing is retried internally.
//
// # Preconditions
//
// Front and Back on an empty vector panic; they are contract violations,
// not recoverable errors. Views from Slice and All are raw positions into
// the buffer and are invalidated by any reallocating or destroying
// operation. Vectors are exclusively owned: concurrent use without external
// synchronization is a precondition violation and is deliberately not
// guarded internally.
package vector
