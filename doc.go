// Package compactstr provides a compact, reference-counted, copy-on-write
// UTF-8 string that fits in two machine words (16 bytes on a 64-bit
// target), eliminating a separate heap allocation for short strings.
//
// # Overview
//
// A String is always in exactly one of three states, discriminated by a
// single tag byte:
//
//   - Inline: up to 16 bytes stored directly in the value.
//   - Heap: a pointer to an atomically reference-counted buffer shared
//     with any clones, copy-on-write on the first mutation after a clone.
//   - Static: a pointer into caller-provided, immortal bytes, referenced
//     without allocating.
//
// # When to Use compactstr
//
// compactstr is a good fit for:
//   - Hot paths that build and discard many short strings (field names,
//     tags, small identifiers) where Go's built-in string already avoids
//     copies but a growable buffer would allocate.
//   - Workloads that clone a string far more often than they mutate it:
//     cloning a Heap-backed String is an atomic increment, no copy.
//   - Code that wants to reference static string constants without a
//     conversion allocation.
//
// # When NOT to Use compactstr
//
// compactstr is not suitable for:
//   - Non-UTF-8 byte buffers (use []byte or bytes.Buffer).
//   - Code that needs a stable interior pointer across mutations (a
//     mutation may relocate the payload).
//   - Multi-writer interior mutability (a unique reference is required
//     before every mutation; see the modifiability transition in repr.go).
//
// # Basic Usage
//
//	s := compactstr.MustFromString("hello")
//	clone := s.Clone()       // shares the buffer if Heap-backed
//	s.PushString(", world")  // copy-on-write: clone is unaffected
//	fmt.Println(s.String(), clone.String())
//
// # Performance Characteristics
//
// Len/Cap/Bytes: O(1), no allocation. Clone: O(1) for Heap (atomic
// increment), O(1) copy for Inline/Static. Mutation after a clone:
// amortized O(n) for the one-time copy, then O(1) amortized per byte
// appended (growth factor 1.5x), matching strings.Builder's own growth
// policy.
//
// # A note on the packed representation
//
// The two-word layout works by reusing the first machine word either as a
// pointer (Heap/Static) or as eight bytes of inline payload (Inline),
// selected by the tag byte. Go has no direct equivalent of Rust's
// mem::transmute between same-layout types, so this package gets there
// with unsafe.Pointer reinterpretation instead; see SPEC_FULL.md and
// DESIGN.md for why that is safe in practice on Go's current garbage
// collector.
package compactstr
