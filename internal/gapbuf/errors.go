package gapbuf

import "errors"

// Sentinel errors returned by buffer operations. Every operation that can
// fail without mutating the buffer returns one of these (wrapped with
// context via fmt.Errorf) rather than leaving the buffer in a partially
// edited state.
var (
	// ErrOffsetOutOfRange is returned when a byte offset is negative or
	// past the end of the buffer.
	ErrOffsetOutOfRange = errors.New("gapbuf: offset out of range")

	// ErrNotUTF8Boundary is returned when an offset falls inside a
	// multi-byte codepoint.
	ErrNotUTF8Boundary = errors.New("gapbuf: offset is not a UTF-8 boundary")

	// ErrInvalidRange is returned when start > end or end is out of range.
	ErrInvalidRange = errors.New("gapbuf: invalid range")

	// ErrReadOnly is returned by any mutating operation on a read-only buffer.
	ErrReadOnly = errors.New("gapbuf: buffer is read-only")

	// ErrAllocation is returned when growing the backing store fails.
	// Buffers are capped (MaxCapacity option) precisely so this is
	// reachable and testable rather than a theoretical OOM path.
	ErrAllocation = errors.New("gapbuf: allocation failed")

	// ErrInvariantViolation is returned by FullValidate when a structural
	// invariant (§3 of the design) does not hold, which indicates a bug
	// in gapbuf itself. NewFromString, Insert and Replace also return it
	// when the text they are given is not valid UTF-8.
	ErrInvariantViolation = errors.New("gapbuf: invariant violation")
)
