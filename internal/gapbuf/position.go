package gapbuf

import "fmt"

// ByteOffset is a byte position in the buffer's logical content (gap excluded).
type ByteOffset int

// CodepointOffset is a position measured in Unicode codepoints (runes),
// not bytes and not grapheme clusters.
type CodepointOffset int

// Cursor holds a single position in both coordinate systems. The two
// fields always denote the same logical position — maintaining that
// agreement after every edit is the buffer's core invariant (§3, §8).
type Cursor struct {
	Byte      ByteOffset
	Codepoint CodepointOffset
}

// String renders the cursor for diagnostics.
func (c Cursor) String() string {
	return fmt.Sprintf("byte=%d/cp=%d", c.Byte, c.Codepoint)
}

// Point is a line/column position. Line and Column are 0-indexed; Column
// is measured in bytes from the start of the logical (newline-delimited)
// line, matching the buffer's LineStart/LineEnd contract.
type Point struct {
	Line   int
	Column int
}

func (p Point) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// Range is a half-open byte range [Start, End).
type Range struct {
	Start ByteOffset
	End   ByteOffset
}

// NewRange creates a Range from start/end byte offsets.
func NewRange(start, end ByteOffset) Range { return Range{Start: start, End: end} }

// Len returns the length of the range in bytes.
func (r Range) Len() ByteOffset { return r.End - r.Start }

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool { return r.Start == r.End }

// IsValid returns true if Start <= End.
func (r Range) IsValid() bool { return r.Start <= r.End }

func (r Range) String() string { return fmt.Sprintf("[%d:%d)", r.Start, r.End) }
