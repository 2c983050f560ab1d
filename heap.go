package compactstr

import (
	"sync/atomic"
	"unsafe"
)

// heapHeader is the shared, reference-counted header placed immediately
// before a Heap buffer's data bytes: [Header | bytes...]. count uses
// sync/atomic's value-typed counters (see metrics_atomic.go in the
// retrieved cache package for the same atomic.Uint64-field style) rather
// than the package-level atomic.AddUint64(&x, ...) form.
type heapHeader struct {
	count    atomic.Uint64
	capacity uint64
}

const headerSize = unsafe.Sizeof(heapHeader{})

// allocateHeap allocates a fresh Heap buffer of the given capacity, with
// refcount 1, and returns a pointer to its first data byte. Go has no
// malloc/realloc/free of its own; the backing array is an ordinary
// GC-owned []byte, and the returned data pointer is an interior pointer
// into it, which is sufficient to keep the whole backing array reachable
// for as long as any repr holds that pointer (see SPEC_FULL.md §4).
func allocateHeap(capacity int) (unsafe.Pointer, error) {
	if capacity < 0 || capacity > maxHeapLen {
		return nil, ErrReserve
	}
	buf := make([]byte, int(headerSize)+capacity)
	hdr := (*heapHeader)(unsafe.Pointer(&buf[0]))
	hdr.count.Store(1)
	hdr.capacity = uint64(capacity)
	return unsafe.Pointer(&buf[headerSize]), nil
}

// heapHeaderOf recovers the header of the Heap buffer whose data starts at
// data. data and its header live in the same backing array, so this is a
// valid use of unsafe.Add (rule 3 of the unsafe.Pointer contract).
func heapHeaderOf(data unsafe.Pointer) *heapHeader {
	return (*heapHeader)(unsafe.Add(data, -int(headerSize)))
}

// heapBytes returns a []byte view of the len bytes of buffer data starting
// at data. The view is only valid as long as data is not relocated by a
// subsequent realloc/grow.
func heapBytes(data unsafe.Pointer, length int) []byte {
	if length == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(data), length)
}

// amortizedGrowth computes max(curLen+additional, curLen*3/2), saturating
// on overflow, matching heap_buffer.rs's amortized_growth.
func amortizedGrowth(curLen, additional int) int {
	required := curLen + additional
	if required < curLen { // overflow
		required = maxHeapLen
	}
	amortized := curLen + curLen/2
	if amortized < curLen { // overflow
		amortized = maxHeapLen
	}
	if amortized > required {
		return amortized
	}
	return required
}

// heapRealloc grows (or shrinks) the Heap buffer currently at data, which
// holds length live bytes, to newCapacity, returning a pointer to the new
// data. The caller must hold the unique reference (refcount == 1); Go
// slices cannot be resized in place, so this always allocates a fresh
// backing array, copies the live bytes, and writes a fresh header with
// refcount reset to 1 (see SPEC_FULL.md §4 for why this departs from the
// in-place realloc described in spec.md).
func heapRealloc(data unsafe.Pointer, length, newCapacity int) (unsafe.Pointer, error) {
	newData, err := allocateHeap(newCapacity)
	if err != nil {
		return nil, err
	}
	if length > 0 {
		copy(heapBytes(newData, newCapacity), heapBytes(data, length))
	}
	return newData, nil
}

// heapIsUnique reports whether the Heap buffer at data has refcount 1.
func heapIsUnique(data unsafe.Pointer) bool {
	return heapHeaderOf(data).count.Load() == 1
}

// heapIncRef increments the refcount (Relaxed in the spec's terms: Go's
// sync/atomic has no weaker-than-sequential-consistency mode on supported
// platforms, so Add trivially satisfies it).
func heapIncRef(data unsafe.Pointer) {
	heapHeaderOf(data).count.Add(1)
}

// heapDecRef decrements the refcount and returns the value it held before
// the decrement (mirroring Rust's fetch_sub semantics). When this returns
// 1, the caller was the last owner; there is nothing further to free
// explicitly; once the caller stops holding the data pointer, the backing
// array becomes unreachable and is reclaimed by the garbage collector.
func heapDecRef(data unsafe.Pointer) uint64 {
	return heapHeaderOf(data).count.Add(^uint64(0)) + 1
}

func heapCapacity(data unsafe.Pointer) int {
	return int(heapHeaderOf(data).capacity)
}
