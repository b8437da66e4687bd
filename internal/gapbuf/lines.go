package gapbuf

// LineCount returns the number of logical (newline-delimited) lines.
// An empty buffer has one line. O(n) — gapbuf does not maintain a
// logarithmic line index; for line-editor-sized buffers this is the
// permitted fallback (§4.2).
func (b *Buffer) LineCount() int {
	n := int(b.Len())
	count := 1
	for i := 0; i < n; i++ {
		by, _ := b.ByteAt(ByteOffset(i))
		if by == '\n' {
			count++
		}
	}
	return count
}

// LineStart returns the byte offset of the start of the given 0-indexed line.
func (b *Buffer) LineStart(lineNo int) ByteOffset {
	if lineNo <= 0 {
		return 0
	}
	n := int(b.Len())
	line := 0
	for i := 0; i < n; i++ {
		by, _ := b.ByteAt(ByteOffset(i))
		if by == '\n' {
			line++
			if line == lineNo {
				return ByteOffset(i + 1)
			}
		}
	}
	return ByteOffset(n)
}

// LineEnd returns the byte offset just before the line's terminating
// newline (or the buffer end, for the last line).
func (b *Buffer) LineEnd(lineNo int) ByteOffset {
	n := int(b.Len())
	start := int(b.LineStart(lineNo))
	for i := start; i < n; i++ {
		by, _ := b.ByteAt(ByteOffset(i))
		if by == '\n' {
			return ByteOffset(i)
		}
	}
	return ByteOffset(n)
}

// CurrentLine returns the 0-indexed line number the cursor is on.
func (b *Buffer) CurrentLine() int {
	line := 0
	for i := 0; i < b.gapStart; i++ {
		by, _ := b.ByteAt(ByteOffset(i))
		if by == '\n' {
			line++
		}
	}
	return line
}

// OffsetToPoint converts a byte offset to a line/column position.
func (b *Buffer) OffsetToPoint(offset ByteOffset) Point {
	line := 0
	lineStartByte := 0
	for i := 0; i < int(offset) && i < int(b.Len()); i++ {
		by, _ := b.ByteAt(ByteOffset(i))
		if by == '\n' {
			line++
			lineStartByte = i + 1
		}
	}
	return Point{Line: line, Column: int(offset) - lineStartByte}
}
