package compactstr

import "unsafe"

// inlineBytes returns a *[maxInline]byte view over r's own storage (head,
// mid, and tag treated as one contiguous 16-byte array), the Go analogue
// of Rust's `self as *const _ as *const [u8; MAX_INLINE_SIZE]` trick used
// throughout original_source/src/repr.rs and repr/inline_buffer.rs.
func (r *repr) inlineBytes() *[maxInline]byte {
	return (*[maxInline]byte)(unsafe.Pointer(r))
}

// setInlineEmpty initializes r as an empty Inline repr: all bytes zero,
// tag == inlineTagBase.
func (r *repr) setInlineEmpty() {
	*r.inlineBytes() = [maxInline]byte{}
	r.tag = inlineTagBase
}

// setInlineBytes stores s (len(s) <= maxInline) as an Inline repr.
func (r *repr) setInlineBytes(s []byte) {
	l := len(s)
	if l > maxInline {
		panic("compactstr: inline payload exceeds maxInline")
	}
	buf := r.inlineBytes()
	*buf = [maxInline]byte{}
	copy(buf[:l], s)
	if l < maxInline {
		r.tag = inlineTagFromLen(l)
	}
	// l == maxInline: the final payload byte (buf[maxInline-1], aliasing
	// r.tag) already holds its correct value from the copy above, and by
	// contract is a valid UTF-8 byte strictly less than inlineTagBase.
}

// inlineSetLen truncates (or re-zeroes the tail of) an Inline repr to
// length l <= maxInline, matching InlineBuffer's "Set length" operation:
// bytes [l, maxInline) are zeroed so the length encoding stays accurate.
func (r *repr) inlineSetLen(l int) {
	if l > maxInline {
		panic("compactstr: inline length exceeds maxInline")
	}
	buf := r.inlineBytes()
	for i := l; i < maxInline; i++ {
		buf[i] = 0
	}
	if l < maxInline {
		r.tag = inlineTagFromLen(l)
	}
	// l == maxInline: tag byte already holds the final payload byte.
}
