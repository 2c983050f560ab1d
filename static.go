package compactstr

import (
	"encoding/binary"
	"unsafe"
)

// setStatic and staticSetLen implement StaticBuffer: a borrowed, immortal
// byte sequence referenced without allocating. The length is packed into
// mid (7 bytes, little-endian); tag carries staticMarker.

func lenFromMid(mid [wordSize - 1]byte) int {
	var b [wordSize]byte
	copy(b[:wordSize-1], mid[:])
	return int(binary.LittleEndian.Uint64(b[:]))
}

func midFromLen(l int) [wordSize - 1]byte {
	var b [wordSize]byte
	binary.LittleEndian.PutUint64(b[:], uint64(l))
	var mid [wordSize - 1]byte
	copy(mid[:], b[:wordSize-1])
	return mid
}

// setStatic makes r a Static repr pointing at data (len(data) bytes,
// caller-guaranteed immortal and UTF-8). Fails if data is too long to be
// represented in the packed length field.
func (r *repr) setStatic(data []byte) error {
	if len(data) > maxHeapLen {
		return ErrReserve
	}
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = unsafe.Pointer(&data[0])
	}
	r.head = ptr
	r.mid = midFromLen(len(data))
	r.tag = staticMarker
	return nil
}

// staticSetLen shortens (never extends) a Static repr's reported length.
func (r *repr) staticSetLen(l int) {
	if l > lenFromMid(r.mid) {
		panic("compactstr: static buffer length cannot be extended")
	}
	r.mid = midFromLen(l)
}

