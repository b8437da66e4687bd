package gapbuf

import "unicode"

// CursorMoveCharForward moves the cursor forward one codepoint. A no-op
// at the end of the buffer — it never errors and never overflows.
func (b *Buffer) CursorMoveCharForward() {
	n := int(b.Len())
	if b.gapStart >= n {
		return
	}
	_, size := b.RuneAt(ByteOffset(b.gapStart))
	if size == 0 {
		size = 1
	}
	b.moveGapTo(b.gapStart + size)
}

// CursorMoveCharBackward moves the cursor backward one codepoint. A
// no-op at the start of the buffer.
func (b *Buffer) CursorMoveCharBackward() {
	if b.gapStart <= 0 {
		return
	}
	size := 1
	for size < b.gapStart && size < 4 {
		if b.isBoundary(b.gapStart - size) {
			break
		}
		size++
	}
	b.moveGapTo(b.gapStart - size)
}

// isWordSpace reports whether r counts as whitespace for word-boundary
// purposes. Uses unicode.IsSpace, not an ASCII-only check, so word motion
// behaves correctly on non-ASCII whitespace.
func isWordSpace(r rune) bool { return unicode.IsSpace(r) }

// CursorMoveWordForward moves the cursor past any whitespace and then
// past the following word, leaving it at the end of that word.
// A word is a maximal run of non-whitespace codepoints; boundaries are
// determined with Unicode-aware classification, never ASCII tables.
func (b *Buffer) CursorMoveWordForward() {
	n := int(b.Len())
	pos := b.gapStart
	// Skip any whitespace run first.
	for pos < n {
		r, size := b.RuneAt(ByteOffset(pos))
		if size == 0 || !isWordSpace(r) {
			break
		}
		pos += size
	}
	// Skip the following word run.
	for pos < n {
		r, size := b.RuneAt(ByteOffset(pos))
		if size == 0 || isWordSpace(r) {
			break
		}
		pos += size
	}
	b.moveGapTo(pos)
}

// CursorMoveWordBackward moves the cursor to the start of the previous word.
func (b *Buffer) CursorMoveWordBackward() {
	pos := b.gapStart
	// Skip whitespace immediately to the left.
	for pos > 0 {
		r, size := b.runeBefore(pos)
		if size == 0 || !isWordSpace(r) {
			break
		}
		pos -= size
	}
	// Skip the word run to the left.
	for pos > 0 {
		r, size := b.runeBefore(pos)
		if size == 0 || isWordSpace(r) {
			break
		}
		pos -= size
	}
	b.moveGapTo(pos)
}

// runeBefore decodes the rune ending at logical offset pos.
func (b *Buffer) runeBefore(pos int) (rune, int) {
	size := 1
	for size < pos && size < 4 && !b.isBoundary(pos-size) {
		size++
	}
	r, _ := b.RuneAt(ByteOffset(pos - size))
	return r, size
}

// CursorMoveLineStart moves the cursor to the start of the current
// logical (newline-delimited) line, not to the buffer's start.
func (b *Buffer) CursorMoveLineStart() {
	pos := b.gapStart
	for pos > 0 {
		r, size := b.runeBefore(pos)
		if r == '\n' {
			break
		}
		pos -= size
	}
	b.moveGapTo(pos)
}

// CursorMoveLineEnd moves the cursor to the end of the current logical
// line, not to the buffer's end.
func (b *Buffer) CursorMoveLineEnd() {
	n := int(b.Len())
	pos := b.gapStart
	for pos < n {
		r, size := b.RuneAt(ByteOffset(pos))
		if r == '\n' || size == 0 {
			break
		}
		pos += size
	}
	b.moveGapTo(pos)
}

// CursorMoveAbsolute seeks the cursor to a codepoint offset, mapping
// through a rune walk. Clamped to the buffer's bounds.
func (b *Buffer) CursorMoveAbsolute(cp CodepointOffset) {
	if cp < 0 {
		cp = 0
	}
	n := int(b.Len())

	// Walk from whichever of (start, current cursor, end) is closest,
	// since all three are known reference points with known codepoint
	// offsets; this keeps the common case (small relative moves) cheap
	// without needing a logarithmic index.
	type ref struct {
		bytePos int
		cpPos   CodepointOffset
	}
	refs := []ref{{0, 0}, {b.gapStart, b.cursorCodepoint}, {n, b.totalCodepoints()}}

	best := refs[0]
	bestDist := absCP(cp - best.cpPos)
	for _, r := range refs[1:] {
		d := absCP(cp - r.cpPos)
		if d < bestDist {
			best, bestDist = r, d
		}
	}

	pos := best.bytePos
	cur := best.cpPos
	for cur < cp && pos < n {
		_, size := b.RuneAt(ByteOffset(pos))
		if size == 0 {
			break
		}
		pos += size
		cur++
	}
	for cur > cp && pos > 0 {
		_, size := b.runeBefore(pos)
		if size == 0 {
			break
		}
		pos -= size
		cur--
	}
	b.moveGapTo(pos)
}

func absCP(c CodepointOffset) CodepointOffset {
	if c < 0 {
		return -c
	}
	return c
}

// totalCodepoints returns the codepoint length of the whole buffer.
// O(n); used only as a reference point for CursorMoveAbsolute.
func (b *Buffer) totalCodepoints() CodepointOffset {
	before := b.cpCount(0, b.gapStart)
	after := b.cpCountArray(b.gapEnd, len(b.data))
	return CodepointOffset(before + after)
}
