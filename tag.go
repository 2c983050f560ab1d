package compactstr

// Byte layout of a repr (64-bit target, see doc.go):
//
//	offset 0..7  : head  (word A)
//	offset 8..14 : mid   (7 bytes)
//	offset 15    : tag
//
// wordSize and maxInline are fixed to the 64-bit case, matching
// original_source/src/repr.rs's own `#[cfg(target_pointer_width = "64")]`
// specialization. 32-bit targets are documented (see §3 of SPEC_FULL.md)
// but not implemented.
const (
	wordSize  = 8
	maxInline = 2 * wordSize // 16

	// heapMarker and staticMarker are the two reserved tag values; every
	// other tag byte encodes an Inline variant and its length (see
	// inlineTagBase).
	heapMarker   byte = 0xFE
	staticMarker byte = 0xFF

	// inlineTagBase is the tag value for an empty Inline repr; inlineTagBase+k
	// is the tag for an Inline repr of length k, for k in [0, maxInline-1].
	// A tag below inlineTagBase means the repr is fully inline (length ==
	// maxInline) and the tag byte itself holds the final payload byte.
	inlineTagBase byte = 0xC0
)

// inlineLenFromTag extracts the Inline length encoded in tag, branchless:
// wrapping_sub(tag, inlineTagBase), clamped to maxInline. Any tag below
// inlineTagBase "wraps" to a large value and clamps to maxInline, matching
// a fully-inline repr whose final data byte is a legitimate (<0xC0) UTF-8
// byte sitting in the tag position.
func inlineLenFromTag(tag byte) int {
	return min(int(tag-inlineTagBase), maxInline)
}

// inlineTagFromLen is the inverse of inlineLenFromTag for l < maxInline.
// Callers handling l == maxInline must instead store the final payload
// byte directly in the tag position (see inlineSetLen).
func inlineTagFromLen(l int) byte {
	return inlineTagBase + byte(l)
}

func isHeapTag(tag byte) bool   { return tag == heapMarker }
func isStaticTag(tag byte) bool { return tag == staticMarker }
func isInlineTag(tag byte) bool { return tag != heapMarker && tag != staticMarker }
