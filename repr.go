// Package compactstr implements a compact, reference-counted, UTF-8 text
// container that fits in two machine words (16 bytes on a 64-bit target).
//
// A value is always in exactly one of three states, discriminated by a
// single tag byte at a fixed offset:
//
//   - Inline: up to maxInline bytes stored directly in the value, no
//     allocation.
//   - Heap: a pointer to an atomically reference-counted, copy-on-write
//     buffer shared with any clones.
//   - Static: a pointer into caller-provided, immortal bytes, referenced
//     without allocating or owning.
//
// See SPEC_FULL.md for the full design; DESIGN.md for the grounding ledger.
package compactstr

import (
	"unicode/utf8"
	"unsafe"
)

// repr is the two-word tagged union. See tag.go for the byte layout.
type repr struct {
	head unsafe.Pointer
	mid  [wordSize - 1]byte
	tag  byte
}

// newEmptyRepr returns an empty, Inline repr.
func newEmptyRepr() repr {
	var r repr
	r.setInlineEmpty()
	return r
}

// newReprFromBytes copies b into a new repr, Inline if it fits, Heap
// otherwise. b need not be valid UTF-8 as far as this function is
// concerned; callers are responsible for the global UTF-8 invariant.
func newReprFromBytes(b []byte) (repr, error) {
	var r repr
	if len(b) <= maxInline {
		r.setInlineBytes(b)
		return r, nil
	}
	data, err := allocateHeap(len(b))
	if err != nil {
		return repr{}, err
	}
	copy(heapBytes(data, len(b)), b)
	r.setHeap(data, len(b))
	return r, nil
}

// newReprFromStatic references b without copying. The caller guarantees b
// outlives every repr derived from this call and every clone of them, and
// that b is not mutated through any other alias.
func newReprFromStatic(b []byte) (repr, error) {
	var r repr
	if len(b) <= maxInline {
		r.setInlineBytes(b)
		return r, nil
	}
	if err := r.setStatic(b); err != nil {
		return repr{}, err
	}
	return r, nil
}

// newReprWithCapacity returns an empty repr whose capacity is at least n.
func newReprWithCapacity(n int) (repr, error) {
	if n <= maxInline {
		return newEmptyRepr(), nil
	}
	data, err := allocateHeap(n)
	if err != nil {
		return repr{}, err
	}
	var r repr
	r.setHeap(data, 0)
	return r, nil
}

// setHeap makes r a Heap repr pointing at data, reporting length.
func (r *repr) setHeap(data unsafe.Pointer, length int) {
	r.head = data
	r.mid = midFromLen(length)
	r.tag = heapMarker
}

func (r *repr) heapData() unsafe.Pointer { return r.head }
func (r *repr) heapLen() int             { return lenFromMid(r.mid) }

// --- reads ---

// length returns the byte length of the stored string. The Inline-vs-packed
// select mirrors the spec's branchless conditional move, though Go will not
// necessarily compile it to a cmov; the logic is kept side-effect-free and
// branch-shaped identically to original_source/src/repr.rs's `len`.
func (r *repr) length() int {
	packed := lenFromMid(r.mid)
	inlineLen := inlineLenFromTag(r.tag)
	if r.tag < heapMarker {
		return inlineLen
	}
	return packed
}

func (r *repr) isEmpty() bool { return r.length() == 0 }

func (r *repr) isHeapAllocated() bool { return isHeapTag(r.tag) }
func (r *repr) isStaticBuffer() bool  { return isStaticTag(r.tag) }

func (r *repr) capacity() int {
	switch {
	case r.isHeapAllocated():
		return heapCapacity(r.heapData())
	case r.isStaticBuffer():
		return r.length()
	default:
		return maxInline
	}
}

// asBytes returns a view of the stored bytes. For Inline reprs the view
// aliases r itself and is invalidated by any subsequent mutation of r.
func (r *repr) asBytes() []byte {
	length := r.length()
	if length == 0 {
		return nil
	}
	if r.tag >= heapMarker {
		return heapBytes(r.head, length)
	}
	return r.inlineBytes()[:length]
}

func (r *repr) isUnique() bool {
	if r.isHeapAllocated() {
		return heapIsUnique(r.heapData())
	}
	return true
}

// --- cloning / dropping ---

// makeShallowClone returns a new repr sharing the same Heap buffer (with
// its refcount incremented), or a bitwise copy for Inline/Static.
func (r *repr) makeShallowClone() repr {
	if r.isHeapAllocated() {
		heapIncRef(r.heapData())
	}
	return *r
}

// release decrements the refcount of a Heap repr. Once the count reaches
// zero there is nothing further to do: the backing array becomes
// unreachable as soon as no repr retains the pointer, and the garbage
// collector reclaims it (see SPEC_FULL.md §4).
func (r *repr) release() {
	if r.isHeapAllocated() {
		heapDecRef(r.heapData())
	}
}

// replaceInner releases r's current buffer (if Heap) and installs other.
func (r *repr) replaceInner(other repr) {
	r.release()
	*r = other
}

// --- modifiability transition + reserve ---

// reserve ensures capacity for at least `additional` more bytes beyond the
// current length, performing the modifiability transition as a side
// effect: afterwards r is never Static, and if r is Heap it is uniquely
// owned. Mirrors original_source/src/repr.rs's `reserve`.
func (r *repr) reserve(additional int) error {
	length := r.length()
	needed := length + additional
	if needed < length { // overflow
		return ErrReserve
	}

	switch {
	case r.isHeapAllocated():
		data := r.heapData()
		if !heapIsUnique(data) {
			// Give up our share; the new buffer is built from a snapshot
			// of the (still valid, since we haven't freed anything) bytes.
			snapshot := append([]byte(nil), heapBytes(data, length)...)
			heapDecRef(data)
			newCap := amortizedGrowth(length, additional)
			newData, err := allocateHeap(newCap)
			if err != nil {
				return err
			}
			copy(heapBytes(newData, newCap), snapshot)
			r.setHeap(newData, length)
			return nil
		}
		if needed > heapCapacity(data) {
			newCap := amortizedGrowth(length, additional)
			newData, err := heapRealloc(data, length, newCap)
			if err != nil {
				return err
			}
			r.setHeap(newData, length)
		}
		return nil

	case r.isStaticBuffer():
		if needed <= maxInline {
			r.setInlineBytes(r.asBytes())
			return nil
		}
		newCap := amortizedGrowth(length, additional)
		newData, err := allocateHeap(newCap)
		if err != nil {
			return err
		}
		copy(heapBytes(newData, newCap), r.asBytes())
		r.setHeap(newData, length)
		return nil

	default: // Inline
		if needed > maxInline {
			newCap := amortizedGrowth(length, additional)
			newData, err := allocateHeap(newCap)
			if err != nil {
				return err
			}
			copy(heapBytes(newData, newCap), r.asBytes())
			r.setHeap(newData, length)
		}
		return nil
	}
}

// asMutBytes returns a mutable view of r's buffer up to its capacity. The
// caller must have just called reserve/modifiability-transition so that r
// is not Static and, if Heap, is uniquely owned.
func (r *repr) asMutBytes() []byte {
	if r.isHeapAllocated() {
		return heapBytes(r.heapData(), heapCapacity(r.heapData()))
	}
	return r.inlineBytes()[:]
}

// setLen updates r's reported length in place. Preconditions: newLen <=
// r.capacity(); bytes [0, newLen) are initialized valid UTF-8; if r is
// Heap it must be uniquely owned; if r is Inline, newLen <= maxInline.
func (r *repr) setLen(newLen int) {
	switch {
	case r.isStaticBuffer():
		r.staticSetLen(newLen)
	case r.isHeapAllocated():
		r.mid = midFromLen(newLen)
	default:
		r.inlineSetLen(newLen)
	}
}

// --- mutating operations ---

func (r *repr) pushStr(s string) error {
	if len(s) == 0 {
		return nil
	}
	length := r.length()
	if err := r.reserve(len(s)); err != nil {
		return err
	}
	dst := r.asMutBytes()
	copy(dst[length:length+len(s)], s)
	r.setLen(length + len(s))
	return nil
}

// pop removes and returns the last character, or (0, false) if empty.
func (r *repr) pop() (rune, bool, error) {
	b := r.asBytes()
	if len(b) == 0 {
		return 0, false, nil
	}
	ch, size := utf8.DecodeLastRune(b)
	newLen := len(b) - size

	switch {
	case r.isHeapAllocated():
		data := r.heapData()
		if heapIsUnique(data) {
			r.setLen(newLen)
		} else {
			// Shared: give up our share and materialize a fresh repr from
			// the still-valid prefix, which may land Inline or Heap.
			snapshot := append([]byte(nil), heapBytes(data, newLen)...)
			heapDecRef(data)
			fresh, err := newReprFromBytes(snapshot)
			if err != nil {
				return 0, false, err
			}
			*r = fresh
		}
	default: // Inline or Static: rewrite length in place, no allocation.
		r.setLen(newLen)
	}
	return ch, true, nil
}

// remove deletes and returns the character starting at byte offset idx.
// idx must fall on a char boundary and be < r.length(); violations panic.
func (r *repr) remove(idx int) (rune, error) {
	b := r.asBytes()
	if idx < 0 || idx >= len(b) {
		panic("compactstr: remove index out of range")
	}
	ch, size := utf8.DecodeRune(b[idx:])
	if ch == utf8.RuneError && size <= 1 {
		panic("compactstr: remove index not a char boundary")
	}

	if err := r.reserve(0); err != nil { // modifiability transition only
		return 0, err
	}
	length := r.length()
	buf := r.asMutBytes()
	copy(buf[idx:length-size], buf[idx+size:length])
	r.setLen(length - size)
	return ch, nil
}

// insertStr inserts s at byte offset idx, which must fall on a char
// boundary; violations panic.
func (r *repr) insertStr(idx int, s string) error {
	b := r.asBytes()
	if idx < 0 || idx > len(b) {
		panic("compactstr: insert index out of range")
	}
	if idx < len(b) && !utf8.RuneStart(b[idx]) {
		panic("compactstr: insert index not a char boundary")
	}
	if len(s) == 0 {
		return nil
	}

	length := r.length()
	newLen := length + len(s)
	if newLen < length { // overflow
		return ErrReserve
	}

	if err := r.reserve(len(s)); err != nil {
		return err
	}
	buf := r.asMutBytes()
	copy(buf[idx+len(s):newLen], buf[idx:length])
	copy(buf[idx:idx+len(s)], s)
	r.setLen(newLen)
	return nil
}

// retain keeps only the characters for which keep returns true, compacting
// the buffer with a two-cursor scan.
func (r *repr) retain(keep func(rune) bool) error {
	if err := r.reserve(0); err != nil { // modifiability transition only
		return err
	}
	length := r.length()
	buf := r.asMutBytes()
	src, dst := 0, 0
	for src < length {
		ch, size := utf8.DecodeRune(buf[src:length])
		if keep(ch) {
			if dst != src {
				copy(buf[dst:dst+size], buf[src:src+size])
			}
			dst += size
		}
		src += size
	}
	r.setLen(dst)
	return nil
}

// shrinkTo releases spare Heap capacity down to max(r.length(), minCapacity).
// No-op for Inline/Static.
func (r *repr) shrinkTo(minCapacity int) error {
	if !r.isHeapAllocated() {
		return nil
	}
	data := r.heapData()
	length := r.heapLen()
	oldCap := heapCapacity(data)
	newCap := minCapacity
	if length > newCap {
		newCap = length
	}

	if newCap <= maxInline {
		snapshot := r.asBytes()
		var fresh repr
		fresh.setInlineBytes(snapshot)
		count := heapDecRef(data)
		_ = count // nothing further to free; see SPEC_FULL.md §4
		*r = fresh
		return nil
	}
	if newCap >= oldCap {
		return nil
	}
	if heapIsUnique(data) {
		newData, err := heapRealloc(data, length, newCap)
		if err != nil {
			return err
		}
		r.setHeap(newData, length)
		return nil
	}
	snapshot := append([]byte(nil), heapBytes(data, length)...)
	heapDecRef(data)
	newData, err := allocateHeap(newCap)
	if err != nil {
		return err
	}
	copy(heapBytes(newData, newCap), snapshot)
	r.setHeap(newData, length)
	return nil
}

// clear empties r. If r is unique (Inline, Static, or the sole owner of a
// Heap buffer) its length is set to 0 in place: a unique Heap keeps its
// allocation (capacity preserved) and a Static stays Static. A shared Heap
// r becomes an empty Inline repr, releasing its reference.
func (r *repr) clear() {
	if r.isUnique() {
		r.setLen(0)
		return
	}
	r.replaceInner(newEmptyRepr())
}
