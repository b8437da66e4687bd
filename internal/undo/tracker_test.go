package undo

import (
	"errors"
	"testing"
	"time"

	"github.com/dshills/lle/internal/gapbuf"
)

func newTestBuffer(t *testing.T, s string) *gapbuf.Buffer {
	t.Helper()
	b, err := gapbuf.NewFromString(s)
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	return b
}

func TestRecordInsertAndUndo(t *testing.T) {
	buf := newTestBuffer(t, "")
	tr := NewTracker()

	if err := tr.RecordInsert(buf, 0, "hello"); err != nil {
		t.Fatalf("RecordInsert: %v", err)
	}
	if buf.GetCompleteContent() != "hello" {
		t.Fatalf("content = %q", buf.GetCompleteContent())
	}
	if !tr.CanUndo() {
		t.Fatalf("expected CanUndo true")
	}
	if err := tr.Undo(buf); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if buf.GetCompleteContent() != "" {
		t.Fatalf("content after undo = %q, want empty", buf.GetCompleteContent())
	}
}

func TestUndoOnEmptyStackFails(t *testing.T) {
	buf := newTestBuffer(t, "x")
	tr := NewTracker()
	if err := tr.Undo(buf); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("Undo on empty: got %v, want ErrNothingToUndo", err)
	}
}

func TestRedoOnEmptyStackFails(t *testing.T) {
	buf := newTestBuffer(t, "x")
	tr := NewTracker()
	if err := tr.Redo(buf); !errors.Is(err, ErrNothingToRedo) {
		t.Fatalf("Redo on empty: got %v, want ErrNothingToRedo", err)
	}
}

func TestRedoAfterUndo(t *testing.T) {
	buf := newTestBuffer(t, "")
	tr := NewTracker()
	if err := tr.RecordInsert(buf, 0, "hi"); err != nil {
		t.Fatalf("RecordInsert: %v", err)
	}
	if err := tr.Undo(buf); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if err := tr.Redo(buf); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if buf.GetCompleteContent() != "hi" {
		t.Fatalf("content after redo = %q", buf.GetCompleteContent())
	}
}

func TestNewEditClearsRedoStack(t *testing.T) {
	buf := newTestBuffer(t, "")
	tr := NewTracker()
	if err := tr.RecordInsert(buf, 0, "a"); err != nil {
		t.Fatalf("RecordInsert: %v", err)
	}
	if err := tr.Undo(buf); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if !tr.CanRedo() {
		t.Fatalf("expected CanRedo true")
	}
	if err := tr.RecordInsert(buf, 0, "b"); err != nil {
		t.Fatalf("RecordInsert: %v", err)
	}
	if tr.CanRedo() {
		t.Fatalf("redo stack should be cleared by a new edit")
	}
}

func TestAutoGroupingCoalescesTypingBurst(t *testing.T) {
	buf := newTestBuffer(t, "")
	tr := NewTracker(WithAutoGroupTimeout(time.Hour))

	for i, ch := range []string{"h", "e", "l", "l", "o"} {
		if err := tr.RecordInsert(buf, gapbuf.ByteOffset(i), ch); err != nil {
			t.Fatalf("RecordInsert %q: %v", ch, err)
		}
	}
	if buf.GetCompleteContent() != "hello" {
		t.Fatalf("content = %q", buf.GetCompleteContent())
	}
	if n := tr.UndoCount(); n != 1 {
		t.Fatalf("UndoCount = %d, want 1 (one coalesced sequence)", n)
	}
	if err := tr.Undo(buf); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if buf.GetCompleteContent() != "" {
		t.Fatalf("content after undo = %q, want empty (whole burst undone)", buf.GetCompleteContent())
	}
}

func TestAutoGroupingExpiresAfterTimeout(t *testing.T) {
	buf := newTestBuffer(t, "")
	tr := NewTracker(WithAutoGroupTimeout(10 * time.Millisecond))

	fakeNow := time.Now()
	tr.now = func() time.Time { return fakeNow }

	if err := tr.RecordInsert(buf, 0, "a"); err != nil {
		t.Fatalf("RecordInsert: %v", err)
	}
	fakeNow = fakeNow.Add(time.Second)
	if err := tr.RecordInsert(buf, 1, "b"); err != nil {
		t.Fatalf("RecordInsert: %v", err)
	}

	if n := tr.UndoCount(); n != 2 {
		t.Fatalf("UndoCount = %d, want 2 (timeout should split sequences)", n)
	}
}

func TestZeroTimeoutDisablesAutoGrouping(t *testing.T) {
	buf := newTestBuffer(t, "")
	tr := NewTracker(WithAutoGroupTimeout(0))

	if err := tr.RecordInsert(buf, 0, "a"); err != nil {
		t.Fatalf("RecordInsert: %v", err)
	}
	if err := tr.RecordInsert(buf, 1, "b"); err != nil {
		t.Fatalf("RecordInsert: %v", err)
	}
	if n := tr.UndoCount(); n != 2 {
		t.Fatalf("UndoCount = %d, want 2 with auto-grouping disabled", n)
	}
}

func TestExplicitSequenceGroupsUnrelatedChanges(t *testing.T) {
	buf := newTestBuffer(t, "hello world")
	tr := NewTracker()

	tr.BeginSequence()
	if _, err := tr.RecordDelete(buf, 0, 6); err != nil {
		t.Fatalf("RecordDelete: %v", err)
	}
	if err := tr.RecordInsert(buf, 0, "goodbye "); err != nil {
		t.Fatalf("RecordInsert: %v", err)
	}
	tr.EndSequence()

	if buf.GetCompleteContent() != "goodbye world" {
		t.Fatalf("content = %q", buf.GetCompleteContent())
	}
	if n := tr.UndoCount(); n != 1 {
		t.Fatalf("UndoCount = %d, want 1 (explicit sequence)", n)
	}
	if err := tr.Undo(buf); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if buf.GetCompleteContent() != "hello world" {
		t.Fatalf("content after undo = %q, want original", buf.GetCompleteContent())
	}
}

func TestMaxSequencesEvictsOldest(t *testing.T) {
	buf := newTestBuffer(t, "")
	tr := NewTracker(WithMaxSequences(2), WithAutoGroupTimeout(0))

	for i := 0; i < 3; i++ {
		if err := tr.RecordInsert(buf, buf.Cursor().Byte, "x"); err != nil {
			t.Fatalf("RecordInsert: %v", err)
		}
	}
	if n := tr.UndoCount(); n != 2 {
		t.Fatalf("UndoCount = %d, want 2 (oldest evicted)", n)
	}
}

func TestDeleteBackwardChainCoalesces(t *testing.T) {
	buf := newTestBuffer(t, "hello")
	buf.CursorMoveAbsolute(5)
	tr := NewTracker(WithAutoGroupTimeout(time.Hour))

	// Simulate three backspaces: each deletes the byte immediately before
	// the previous deletion's start.
	if _, err := tr.RecordDelete(buf, 4, 1); err != nil {
		t.Fatalf("RecordDelete: %v", err)
	}
	if _, err := tr.RecordDelete(buf, 3, 1); err != nil {
		t.Fatalf("RecordDelete: %v", err)
	}
	if _, err := tr.RecordDelete(buf, 2, 1); err != nil {
		t.Fatalf("RecordDelete: %v", err)
	}
	if buf.GetCompleteContent() != "he" {
		t.Fatalf("content = %q, want %q", buf.GetCompleteContent(), "he")
	}
	if n := tr.UndoCount(); n != 1 {
		t.Fatalf("UndoCount = %d, want 1 (backspace chain coalesced)", n)
	}
	if err := tr.Undo(buf); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if buf.GetCompleteContent() != "hello" {
		t.Fatalf("content after undo = %q, want %q", buf.GetCompleteContent(), "hello")
	}
}

func TestClearDropsHistory(t *testing.T) {
	buf := newTestBuffer(t, "")
	tr := NewTracker()
	if err := tr.RecordInsert(buf, 0, "a"); err != nil {
		t.Fatalf("RecordInsert: %v", err)
	}
	tr.Clear()
	if tr.CanUndo() {
		t.Fatalf("CanUndo true after Clear")
	}
}
