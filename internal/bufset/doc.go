// Package bufset implements the buffer manager: a doubly-linked list of
// managed buffers, each owning one gapbuf.Buffer and one undo.Tracker.
//
// Buffers are either named (persistent, addressable by a unique name)
// or scratch (temporary, unnamed). Exactly one buffer is current at any
// time. The doubly-linked list is modeled as an arena of nodes
// addressed by integer ID rather than raw pointers, so no node owns its
// parent and the manager is the sole owner of every node (see
// DESIGN.md for why: the source material models this as a pointer-cyclic
// linked list, which Go should not reproduce literally).
package bufset
