package gapbuf

import (
	"errors"
	"testing"
)

func TestNewEmpty(t *testing.T) {
	b := New()
	if !b.IsEmpty() {
		t.Fatalf("new buffer should be empty")
	}
	if b.IsModified() {
		t.Fatalf("new buffer should not be marked modified")
	}
	if got := b.GetCompleteContent(); got != "" {
		t.Fatalf("content = %q, want empty", got)
	}
}

func TestNewFromStringAndContent(t *testing.T) {
	b, err := NewFromString("hello")
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	if got := b.GetCompleteContent(); got != "hello" {
		t.Fatalf("content = %q, want %q", got, "hello")
	}
	if b.Cursor().Byte != 5 || b.Cursor().Codepoint != 5 {
		t.Fatalf("cursor = %+v, want end of buffer", b.Cursor())
	}
}

func TestInsertASCII(t *testing.T) {
	b := New()
	if err := b.Insert(0, "hello"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := b.Insert(5, " world"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got := b.GetCompleteContent(); got != "hello world" {
		t.Fatalf("content = %q", got)
	}
	if !b.IsModified() {
		t.Fatalf("buffer should be modified after insert")
	}
}

func TestInsertMultiByteWidths(t *testing.T) {
	cases := []struct {
		s    string
		size int
	}{
		{"é", 2},
		{"中", 3},
		{"🌍", 4},
	}
	for _, c := range cases {
		b := New()
		if err := b.Insert(0, c.s); err != nil {
			t.Fatalf("Insert(%q): %v", c.s, err)
		}
		if int(b.Len()) != c.size {
			t.Fatalf("Len(%q) = %d, want %d", c.s, b.Len(), c.size)
		}
		if b.Cursor().Codepoint != 1 {
			t.Fatalf("Cursor().Codepoint = %d, want 1", b.Cursor().Codepoint)
		}
		if b.Cursor().Byte != ByteOffset(c.size) {
			t.Fatalf("Cursor().Byte = %d, want %d", b.Cursor().Byte, c.size)
		}
	}
}

func TestInsertRejectsNonBoundary(t *testing.T) {
	b, err := NewFromString("中")
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	if err := b.Insert(1, "x"); !errors.Is(err, ErrNotUTF8Boundary) {
		t.Fatalf("Insert at non-boundary: got %v, want ErrNotUTF8Boundary", err)
	}
	// Buffer must be unchanged.
	if got := b.GetCompleteContent(); got != "中" {
		t.Fatalf("content mutated after rejected insert: %q", got)
	}
}

func TestInsertRejectsOutOfRange(t *testing.T) {
	b := New()
	if err := b.Insert(5, "x"); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Fatalf("Insert out of range: got %v, want ErrOffsetOutOfRange", err)
	}
}

func TestDeleteRoundTrip(t *testing.T) {
	b, err := NewFromString("hello world")
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	deleted, err := b.Delete(5, 6)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted != " world" {
		t.Fatalf("deleted = %q, want %q", deleted, " world")
	}
	if got := b.GetCompleteContent(); got != "hello" {
		t.Fatalf("content after delete = %q", got)
	}
	if err := b.Insert(5, deleted); err != nil {
		t.Fatalf("re-insert: %v", err)
	}
	if got := b.GetCompleteContent(); got != "hello world" {
		t.Fatalf("content after round trip = %q", got)
	}
}

func TestDeleteRejectsNonBoundary(t *testing.T) {
	b, err := NewFromString("中文")
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	if _, err := b.Delete(1, 1); !errors.Is(err, ErrNotUTF8Boundary) {
		t.Fatalf("Delete at non-boundary: got %v, want ErrNotUTF8Boundary", err)
	}
}

func TestReplaceBasic(t *testing.T) {
	b, err := NewFromString("hello world")
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	old, err := b.Replace(6, 5, "there")
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if old != "world" {
		t.Fatalf("old = %q, want %q", old, "world")
	}
	if got := b.GetCompleteContent(); got != "hello there" {
		t.Fatalf("content = %q", got)
	}
}

func TestReplaceThatWouldSplitCodepointFailsWithoutMutation(t *testing.T) {
	b, err := NewFromString("a中b")
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	before := b.GetCompleteContent()
	// byte 2 sits inside the 3-byte encoding of 中.
	if _, err := b.Replace(2, 1, "X"); !errors.Is(err, ErrNotUTF8Boundary) {
		t.Fatalf("Replace across boundary: got %v, want ErrNotUTF8Boundary", err)
	}
	if got := b.GetCompleteContent(); got != before {
		t.Fatalf("buffer mutated after rejected replace: got %q, want %q", got, before)
	}
}

func TestReadOnlyRejectsMutation(t *testing.T) {
	b, err := NewFromString("fixed", WithReadOnly(true))
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	if err := b.Insert(0, "x"); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("Insert on read-only: got %v, want ErrReadOnly", err)
	}
	if _, err := b.Delete(0, 1); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("Delete on read-only: got %v, want ErrReadOnly", err)
	}
}

func TestGrowGapRespectsMaxCapacity(t *testing.T) {
	b := New(WithInitialCapacity(4), WithMaxCapacity(8))
	if err := b.Insert(0, "abcd"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := b.Insert(4, "ef"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := b.Insert(6, "ghijklmnop"); !errors.Is(err, ErrAllocation) {
		t.Fatalf("Insert beyond max capacity: got %v, want ErrAllocation", err)
	}
}

func TestCursorMovementCharWise(t *testing.T) {
	b, err := NewFromString("a中b")
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	b.CursorMoveAbsolute(0)
	b.CursorMoveCharForward()
	if b.Cursor().Codepoint != 1 || b.Cursor().Byte != 1 {
		t.Fatalf("after one char forward: cursor = %+v", b.Cursor())
	}
	b.CursorMoveCharForward()
	if b.Cursor().Codepoint != 2 || b.Cursor().Byte != 4 {
		t.Fatalf("after second char forward (over 中): cursor = %+v", b.Cursor())
	}
	b.CursorMoveCharBackward()
	if b.Cursor().Codepoint != 1 || b.Cursor().Byte != 1 {
		t.Fatalf("after char backward: cursor = %+v", b.Cursor())
	}
}

func TestCursorMovementBoundaryNoOps(t *testing.T) {
	b, err := NewFromString("ab")
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	b.CursorMoveAbsolute(0)
	b.CursorMoveCharBackward() // already at start, must not panic or move
	if b.Cursor().Byte != 0 {
		t.Fatalf("cursor moved past start: %+v", b.Cursor())
	}
	b.CursorMoveAbsolute(2)
	b.CursorMoveCharForward() // already at end
	if b.Cursor().Byte != 2 {
		t.Fatalf("cursor moved past end: %+v", b.Cursor())
	}
}

func TestWordMotion(t *testing.T) {
	b, err := NewFromString("foo  bar baz")
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	b.CursorMoveAbsolute(0)
	b.CursorMoveWordForward()
	if b.Cursor().Byte != 3 {
		t.Fatalf("after word forward: byte = %d, want 3 (end of foo)", b.Cursor().Byte)
	}
	b.CursorMoveWordForward()
	if b.Cursor().Byte != 8 {
		t.Fatalf("after second word forward: byte = %d, want 8 (end of bar)", b.Cursor().Byte)
	}
	b.CursorMoveWordBackward()
	if b.Cursor().Byte != 5 {
		t.Fatalf("after word backward: byte = %d, want 5", b.Cursor().Byte)
	}
}

func TestLineStartEndOperateOnLogicalLine(t *testing.T) {
	b, err := NewFromString("first\nsecond\nthird")
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	b.CursorMoveAbsolute(CodepointOffset(len("first\nsec")))
	b.CursorMoveLineStart()
	if b.Cursor().Byte != ByteOffset(len("first\n")) {
		t.Fatalf("LineStart: byte = %d, want %d", b.Cursor().Byte, len("first\n"))
	}
	b.CursorMoveLineEnd()
	if b.Cursor().Byte != ByteOffset(len("first\nsecond")) {
		t.Fatalf("LineEnd: byte = %d, want %d", b.Cursor().Byte, len("first\nsecond"))
	}
}

func TestLineCountAndOffsetToPoint(t *testing.T) {
	b, err := NewFromString("one\ntwo\nthree")
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	if n := b.LineCount(); n != 3 {
		t.Fatalf("LineCount = %d, want 3", n)
	}
	pt := b.OffsetToPoint(ByteOffset(len("one\ntw")))
	if pt.Line != 1 || pt.Column != 2 {
		t.Fatalf("OffsetToPoint = %+v, want {1 2}", pt)
	}
}

func TestSnapshotIsIndependentOfLiveBuffer(t *testing.T) {
	b, err := NewFromString("hello")
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	snap := b.Snapshot()
	if err := b.Insert(5, " world"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if snap.Text() != "hello" {
		t.Fatalf("snapshot mutated by later edit: %q", snap.Text())
	}
	if b.GetCompleteContent() != "hello world" {
		t.Fatalf("live buffer not updated: %q", b.GetCompleteContent())
	}
}

func TestRevisionBumpsOnMutationOnly(t *testing.T) {
	b := New()
	r0 := b.Revision()
	b.CursorMoveCharForward() // no-op, should not bump revision
	if b.Revision() != r0 {
		t.Fatalf("revision bumped by no-op move")
	}
	if err := b.Insert(0, "x"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if b.Revision() == r0 {
		t.Fatalf("revision did not bump on mutation")
	}
}

func TestFullValidateCatchesCursorDrift(t *testing.T) {
	b, err := NewFromString("hello")
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	if err := b.FullValidate(); err != nil {
		t.Fatalf("FullValidate on healthy buffer: %v", err)
	}
	b.cursorCodepoint = 999
	if err := b.FullValidate(); !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("FullValidate did not catch cursor drift: %v", err)
	}
}

func TestChangeInvertRoundTrip(t *testing.T) {
	b, err := NewFromString("hello world")
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	before := b.Cursor()
	deleted, err := b.Delete(5, 6)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	after := b.Cursor()
	ch := Change{Type: ChangeDelete, Pos: 5, OldText: deleted, CursorBefore: before, CursorAfter: after}
	inv := ch.Invert()
	if err := inv.Apply(b); err != nil {
		t.Fatalf("Apply(Invert): %v", err)
	}
	if got := b.GetCompleteContent(); got != "hello world" {
		t.Fatalf("content after invert-apply = %q", got)
	}
}

func TestTextRangeOutOfBoundsRejected(t *testing.T) {
	b, err := NewFromString("hello")
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	if _, err := b.TextRange(2, 100); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("TextRange out of range: got %v, want ErrInvalidRange", err)
	}
}
