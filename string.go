package compactstr

import "unicode/utf8"

// String is a compact, copy-on-write UTF-8 string backed by a repr. It
// fits in two machine words; see doc.go and SPEC_FULL.md §3 "Go
// memory-layout note".
//
// This layer is intentionally thin: it holds no invariants of its own and
// exists purely to give callers an ergonomic, string-typed surface over
// the tagged repr that is this package's core (trait-style conversions,
// formatting adapters, and iterator glue are explicitly out of scope —
// see spec.md §1).
type String struct {
	r repr
}

// New returns an empty String.
func New() String {
	return String{r: newEmptyRepr()}
}

// FromBytes copies b into a new String. b must be valid UTF-8.
func FromBytes(b []byte) (String, error) {
	r, err := newReprFromBytes(b)
	if err != nil {
		return String{}, err
	}
	return String{r: r}, nil
}

// MustFromBytes is FromBytes but panics on ErrReserve.
func MustFromBytes(b []byte) String {
	s, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return s
}

// FromString copies s into a new String.
func FromString(s string) (String, error) {
	return FromBytes([]byte(s))
}

// MustFromString is FromString but panics on ErrReserve.
func MustFromString(s string) String {
	s2, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return s2
}

// FromStatic references b without copying. The caller guarantees b
// outlives the returned String and every clone derived from it, and that
// b is never mutated through any other alias. b must be valid UTF-8.
func FromStatic(b []byte) (String, error) {
	r, err := newReprFromStatic(b)
	if err != nil {
		return String{}, err
	}
	return String{r: r}, nil
}

// MustFromStatic is FromStatic but panics on ErrReserve.
func MustFromStatic(b []byte) String {
	s, err := FromStatic(b)
	if err != nil {
		panic(err)
	}
	return s
}

// WithCapacity returns an empty String whose capacity is at least n.
func WithCapacity(n int) (String, error) {
	r, err := newReprWithCapacity(n)
	if err != nil {
		return String{}, err
	}
	return String{r: r}, nil
}

// Len returns the length of s in bytes.
func (s *String) Len() int { return s.r.length() }

// IsEmpty reports whether s has zero length.
func (s *String) IsEmpty() bool { return s.r.isEmpty() }

// Cap returns s's current capacity in bytes.
func (s *String) Cap() int { return s.r.capacity() }

// Bytes returns a view of s's bytes. The view is invalidated by any
// subsequent mutating call on s.
func (s *String) Bytes() []byte { return s.r.asBytes() }

// String returns a copy of s's contents as a Go string.
func (s *String) String() string { return string(s.r.asBytes()) }

// IsUnique reports whether s is the sole owner of its buffer (always true
// for Inline and Static).
func (s *String) IsUnique() bool { return s.r.isUnique() }

// IsHeapAllocated reports whether s is backed by a Heap buffer.
func (s *String) IsHeapAllocated() bool { return s.r.isHeapAllocated() }

// Clone returns a String sharing s's buffer (if Heap) via an incremented
// refcount; a subsequent mutation of either copy triggers copy-on-write.
func (s *String) Clone() String {
	return String{r: s.r.makeShallowClone()}
}

// Equal reports whether s and other have identical contents.
func (s *String) Equal(other *String) bool {
	return string(s.r.asBytes()) == string(other.r.asBytes())
}

// Reserve ensures capacity for at least `additional` more bytes.
func (s *String) Reserve(additional int) error { return s.r.reserve(additional) }

// PushString appends str to s.
func (s *String) PushString(str string) error { return s.r.pushStr(str) }

// Push appends a single rune to s.
func (s *String) Push(ch rune) error {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], ch)
	return s.r.pushStr(string(buf[:n]))
}

// Pop removes and returns the last rune of s, or (0, false) if s is empty.
func (s *String) Pop() (rune, bool, error) { return s.r.pop() }

// Remove deletes and returns the rune starting at byte offset idx.
func (s *String) Remove(idx int) (rune, error) { return s.r.remove(idx) }

// InsertString inserts str at byte offset idx.
func (s *String) InsertString(idx int, str string) error { return s.r.insertStr(idx, str) }

// Retain keeps only the runes for which keep returns true.
func (s *String) Retain(keep func(rune) bool) error { return s.r.retain(keep) }

// ShrinkTo releases spare Heap capacity down to max(s.Len(), minCapacity).
func (s *String) ShrinkTo(minCapacity int) error { return s.r.shrinkTo(minCapacity) }

// Clear empties s, keeping its Heap allocation (if uniquely owned) for
// reuse.
func (s *String) Clear() { s.r.clear() }

// Release drops s's reference to its Heap buffer (if any). s must not be
// used after calling Release except via assignment of a fresh value; this
// is the Go analogue of Rust's Drop, for callers that want to release a
// shared buffer's reference promptly rather than waiting on the garbage
// collector to notice s is unreachable.
func (s *String) Release() { s.r.release() }
