// Package gapbuf implements the line editor's core text storage: a
// UTF-8-aware gap buffer with dual byte/codepoint indexing and a cursor
// that always agrees between the two coordinate systems.
//
// A gap buffer stores text as a contiguous byte slice with a hole (the
// "gap") positioned at the cursor. Inserting at the cursor is O(1)
// amortized because it just writes into the gap and shrinks it; moving
// the cursor elsewhere is O(distance) because the gap has to slide there
// first. For shell command lines — typically tens to a few hundred bytes
// — this beats a rope's O(log n) overhead in both constant factor and
// code complexity.
//
// Every operation that touches bytes maintains three invariants (see
// Buffer.QuickValidate and Buffer.FullValidate):
//
//   - bytes outside the gap are always valid UTF-8
//   - the gap never splits a multi-byte codepoint
//   - the cursor's byte and codepoint coordinates denote the same position
//
// Byte↔codepoint conversion away from the cursor is O(distance) by
// counting runes; this is the explicitly permitted fallback for buffers
// that don't maintain a separate logarithmic index (small buffers, which
// is what a line editor operates on, never make this a bottleneck).
package gapbuf
