package gapbuf

import (
	"fmt"
	"unicode/utf8"
)

const defaultCapacity = 128

// Buffer is a UTF-8-aware gap buffer. It is not safe for concurrent use:
// per the engine's single-threaded, synchronous-on-the-input-path
// concurrency model, a Buffer is owned by exactly one managed buffer
// (see internal/bufset) and mutated only from the dispatch loop. Readers
// that need a consistent view from outside that loop (the render
// pipeline, a slow host-supplied completion source) should call
// Snapshot, which is immutable and safe to hand anywhere.
type Buffer struct {
	data     []byte
	gapStart int // == the cursor's byte offset
	gapEnd   int

	cursorCodepoint CodepointOffset

	modified bool
	readOnly bool
	tabWidth int

	initialCapacity int
	maxCapacity     int

	revision RevisionID
}

// RevisionID is a monotonically increasing counter bumped on every
// mutation, cheap enough to compare for "did anything change" checks in
// the render pipeline's no-op detection (§4.4 step 6).
type RevisionID uint64

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{tabWidth: 4, initialCapacity: defaultCapacity}
	for _, opt := range opts {
		opt(b)
	}
	cap := b.initialCapacity
	if cap <= 0 {
		cap = defaultCapacity
	}
	b.data = make([]byte, cap)
	b.gapStart = 0
	b.gapEnd = cap
	return b
}

// NewFromString creates a buffer preloaded with text, cursor at the end.
func NewFromString(s string, opts ...Option) (*Buffer, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("gapbuf: initial content: %w", ErrInvariantViolation)
	}
	b := New(opts...)
	if err := b.growGap(len(s)); err != nil {
		return nil, err
	}
	n := copy(b.data[b.gapStart:b.gapEnd], s)
	b.gapStart += n
	b.cursorCodepoint = CodepointOffset(utf8.RuneCountInString(s))
	return b, nil
}

// Len returns the logical byte length of the buffer (excluding the gap).
func (b *Buffer) Len() ByteOffset { return ByteOffset(len(b.data) - (b.gapEnd - b.gapStart)) }

// IsEmpty reports whether the buffer has no content.
func (b *Buffer) IsEmpty() bool { return b.Len() == 0 }

// IsModified reports whether the buffer has been edited since creation
// or since the last ClearModified call.
func (b *Buffer) IsModified() bool { return b.modified }

// ClearModified resets the modified flag, e.g. after a line is accepted.
func (b *Buffer) ClearModified() { b.modified = false }

// IsReadOnly reports the buffer's read-only flag.
func (b *Buffer) IsReadOnly() bool { return b.readOnly }

// SetReadOnly toggles the read-only flag.
func (b *Buffer) SetReadOnly(readOnly bool) { b.readOnly = readOnly }

// TabWidth returns the buffer's tab width.
func (b *Buffer) TabWidth() int { return b.tabWidth }

// Revision returns the current revision id.
func (b *Buffer) Revision() RevisionID { return b.revision }

// Cursor returns the current cursor position in both coordinate systems.
func (b *Buffer) Cursor() Cursor {
	return Cursor{Byte: ByteOffset(b.gapStart), Codepoint: b.cursorCodepoint}
}

// toArrayIndex converts a logical byte offset to an index into b.data,
// accounting for the gap.
func (b *Buffer) toArrayIndex(pos int) int {
	if pos <= b.gapStart {
		return pos
	}
	return pos + (b.gapEnd - b.gapStart)
}

// ByteAt returns the byte at a logical offset.
func (b *Buffer) ByteAt(offset ByteOffset) (byte, bool) {
	if offset < 0 || int(offset) >= int(b.Len()) {
		return 0, false
	}
	return b.data[b.toArrayIndex(int(offset))], true
}

// isBoundary reports whether a logical offset sits on a UTF-8 rune
// boundary (including the two ends of the buffer).
func (b *Buffer) isBoundary(offset int) bool {
	if offset == 0 || offset == int(b.Len()) {
		return true
	}
	if offset < 0 || offset > int(b.Len()) {
		return false
	}
	by, ok := b.ByteAt(ByteOffset(offset))
	if !ok {
		return true
	}
	// A continuation byte (10xxxxxx) is never a boundary.
	return by&0xC0 != 0x80
}

// RuneAt decodes the rune starting at a logical byte offset, returning
// its size in bytes. Returns (utf8.RuneError, 0) if offset is out of range.
func (b *Buffer) RuneAt(offset ByteOffset) (rune, int) {
	n := int(b.Len())
	if offset < 0 || int(offset) >= n {
		return utf8.RuneError, 0
	}
	var buf [utf8.UTFMax]byte
	end := int(offset) + utf8.UTFMax
	if end > n {
		end = n
	}
	k := 0
	for i := int(offset); i < end; i++ {
		by, _ := b.ByteAt(ByteOffset(i))
		buf[k] = by
		k++
	}
	return utf8.DecodeRune(buf[:k])
}

// GetCompleteContent materializes the full logical content as a string.
// Used by the renderer and when a line is accepted.
func (b *Buffer) GetCompleteContent() string {
	out := make([]byte, 0, b.Len())
	out = append(out, b.data[:b.gapStart]...)
	out = append(out, b.data[b.gapEnd:]...)
	return string(out)
}

// TextRange returns the logical content in [start, end).
func (b *Buffer) TextRange(start, end ByteOffset) (string, error) {
	if start < 0 || end < start || int(end) > int(b.Len()) {
		return "", ErrInvalidRange
	}
	out := make([]byte, 0, end-start)
	for i := int(start); i < int(end); i++ {
		by, _ := b.ByteAt(ByteOffset(i))
		out = append(out, by)
	}
	return string(out), nil
}

// moveGapTo slides the gap (and therefore the cursor) to a logical byte
// position that must already be validated as a UTF-8 boundary. O(distance).
func (b *Buffer) moveGapTo(pos int) {
	if pos == b.gapStart {
		return
	}
	if pos < b.gapStart {
		n := b.gapStart - pos
		moved := b.cpCount(pos, b.gapStart)
		copy(b.data[b.gapEnd-n:b.gapEnd], b.data[pos:b.gapStart])
		b.gapStart = pos
		b.gapEnd -= n
		b.cursorCodepoint -= CodepointOffset(moved)
		return
	}
	n := pos - b.gapStart
	moved := b.cpCountArray(b.gapEnd, b.gapEnd+n)
	copy(b.data[b.gapStart:b.gapStart+n], b.data[b.gapEnd:b.gapEnd+n])
	b.gapStart += n
	b.gapEnd += n
	b.cursorCodepoint += CodepointOffset(moved)
}

// cpCount counts runes in b.data[from:to], a pre-gap array range.
func (b *Buffer) cpCount(from, to int) int {
	return utf8.RuneCount(b.data[from:to])
}

// cpCountArray counts runes in a raw array-index range (used for the
// post-gap side, where array index != logical offset).
func (b *Buffer) cpCountArray(from, to int) int {
	return utf8.RuneCount(b.data[from:to])
}

// growGap ensures the gap has at least minFree bytes of free space,
// doubling capacity (or growing to maxCapacity) as needed.
func (b *Buffer) growGap(minFree int) error {
	free := b.gapEnd - b.gapStart
	if free >= minFree {
		return nil
	}
	content := len(b.data) - free
	newCap := len(b.data)
	if newCap == 0 {
		newCap = defaultCapacity
	}
	for newCap-content < minFree {
		newCap *= 2
	}
	if b.maxCapacity > 0 && newCap > b.maxCapacity {
		newCap = b.maxCapacity
		if newCap-content < minFree {
			return ErrAllocation
		}
	}
	newData := make([]byte, newCap)
	copy(newData, b.data[:b.gapStart])
	tailLen := len(b.data) - b.gapEnd
	copy(newData[newCap-tailLen:], b.data[b.gapEnd:])
	b.gapEnd = newCap - tailLen
	b.data = newData
	return nil
}

// Insert inserts text at a logical byte position, which must lie on a
// UTF-8 boundary. The cursor moves to the end of the inserted text.
func (b *Buffer) Insert(pos ByteOffset, text string) error {
	if b.readOnly {
		return ErrReadOnly
	}
	if text == "" {
		return nil
	}
	if !utf8.ValidString(text) {
		return fmt.Errorf("gapbuf: insert text: %w", ErrInvariantViolation)
	}
	p := int(pos)
	if p < 0 || p > int(b.Len()) {
		return ErrOffsetOutOfRange
	}
	if !b.isBoundary(p) {
		return ErrNotUTF8Boundary
	}

	b.moveGapTo(p)
	if err := b.growGap(len(text)); err != nil {
		return err
	}
	n := copy(b.data[b.gapStart:b.gapEnd], text)
	b.gapStart += n
	b.cursorCodepoint += CodepointOffset(utf8.RuneCountInString(text))
	b.modified = true
	b.revision++
	return nil
}

// Delete removes nBytes starting at pos. Both pos and pos+nBytes must lie
// on UTF-8 boundaries. Returns the deleted text so callers (the undo
// tracker) can record it.
func (b *Buffer) Delete(pos ByteOffset, nBytes int) (string, error) {
	if b.readOnly {
		return "", ErrReadOnly
	}
	if nBytes < 0 {
		return "", ErrInvalidRange
	}
	if nBytes == 0 {
		return "", nil
	}
	p, end := int(pos), int(pos)+nBytes
	if p < 0 || end > int(b.Len()) {
		return "", ErrOffsetOutOfRange
	}
	if !b.isBoundary(p) || !b.isBoundary(end) {
		return "", ErrNotUTF8Boundary
	}

	b.moveGapTo(p)
	deleted := string(b.data[b.gapEnd : b.gapEnd+nBytes])
	b.gapEnd += nBytes
	b.modified = true
	b.revision++
	return deleted, nil
}

// Replace atomically deletes [pos, pos+nBytes) and inserts text in its
// place. The cursor moves to the end of the inserted text. Returns the
// replaced text.
func (b *Buffer) Replace(pos ByteOffset, nBytes int, text string) (string, error) {
	if b.readOnly {
		return "", ErrReadOnly
	}
	if nBytes < 0 {
		return "", ErrInvalidRange
	}
	if !utf8.ValidString(text) {
		return "", fmt.Errorf("gapbuf: replace text: %w", ErrInvariantViolation)
	}
	p, end := int(pos), int(pos)+nBytes
	if p < 0 || end > int(b.Len()) {
		return "", ErrOffsetOutOfRange
	}
	if !b.isBoundary(p) || !b.isBoundary(end) {
		return "", ErrNotUTF8Boundary
	}

	b.moveGapTo(p)
	old := string(b.data[b.gapEnd : b.gapEnd+nBytes])
	b.gapEnd += nBytes
	if err := b.growGap(len(text)); err != nil {
		// Re-align: put the deleted bytes back before surfacing the error,
		// so a failed replace never leaves the buffer mutated.
		b.gapEnd -= nBytes
		return "", err
	}
	n := copy(b.data[b.gapStart:b.gapEnd], text)
	b.gapStart += n
	b.cursorCodepoint += CodepointOffset(utf8.RuneCountInString(text))
	b.modified = true
	b.revision++
	return old, nil
}

// QuickValidate performs the cheap checks safe to run on every hot-path
// edit: length/capacity consistency and cursor in range.
func (b *Buffer) QuickValidate() error {
	if b.gapStart < 0 || b.gapEnd < b.gapStart || b.gapEnd > len(b.data) {
		return fmt.Errorf("gapbuf: gap bounds [%d,%d) outside capacity %d: %w",
			b.gapStart, b.gapEnd, len(b.data), ErrInvariantViolation)
	}
	if b.gapStart < 0 || b.gapStart > int(b.Len()) {
		return fmt.Errorf("gapbuf: cursor byte %d outside buffer: %w", b.gapStart, ErrInvariantViolation)
	}
	return nil
}

// FullValidate performs the expensive checks: scans for valid UTF-8,
// re-derives the cursor's codepoint offset and compares it against the
// maintained value, and re-checks QuickValidate. Called on load, undo,
// and from tests — never on every keystroke.
func (b *Buffer) FullValidate() error {
	if err := b.QuickValidate(); err != nil {
		return err
	}
	before := b.data[:b.gapStart]
	after := b.data[b.gapEnd:]
	if !utf8.Valid(before) || !utf8.Valid(after) {
		return fmt.Errorf("gapbuf: non-UTF-8 content outside gap: %w", ErrInvariantViolation)
	}
	wantCodepoint := CodepointOffset(utf8.RuneCount(before))
	if wantCodepoint != b.cursorCodepoint {
		return fmt.Errorf("gapbuf: cursor codepoint %d disagrees with byte position (want %d): %w",
			b.cursorCodepoint, wantCodepoint, ErrInvariantViolation)
	}
	return nil
}
