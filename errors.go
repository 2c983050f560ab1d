package compactstr

import "errors"

// ErrReserve is returned whenever a capacity request cannot be satisfied
// because a computed length or allocation size would exceed the bounds
// representable in the packed tag, or a length computation overflowed.
// A request that the Go allocator itself cannot satisfy is not reported as
// ErrReserve: the underlying make panics, or the runtime aborts when memory
// is exhausted.
var ErrReserve = errors.New("compactstr: reserve failed")

// maxHeapLen is the largest length/capacity representable in the
// HeapMarker/StaticMarker tag encoding: the low 7 bytes (56 bits) of the
// packed length field, little-endian, OR-ed with the marker byte.
const maxHeapLen = 1<<56 - 1
