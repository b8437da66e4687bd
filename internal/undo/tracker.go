package undo

import (
	"time"

	"github.com/dshills/lle/internal/gapbuf"
)

// Tracker records changes applied to a gapbuf.Buffer and provides
// undo/redo over them. It is not safe for concurrent use — like
// gapbuf.Buffer, a Tracker is owned by one managed buffer and driven
// only from the dispatch loop (see internal/bufset).
type Tracker struct {
	undoStack []*Sequence
	redoStack []*Sequence

	pending *Sequence // the sequence currently accepting auto-grouped changes

	explicitDepth int // >0 while inside BeginSequence/EndSequence

	maxSequences     int
	autoGroupTimeout time.Duration

	now func() time.Time // overridable for tests
}

// NewTracker creates a Tracker with the given options.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		maxSequences:     defaultMaxSequences,
		autoGroupTimeout: defaultAutoGroupTimeout,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// BeginSequence starts an explicit sequence: all changes recorded until
// the matching EndSequence become one undo unit, regardless of the
// auto-group timeout. Nested calls are flattened into the outermost
// sequence.
func (t *Tracker) BeginSequence() {
	if t.explicitDepth == 0 {
		t.flushPending()
		t.pending = &Sequence{Timestamp: t.now()}
		t.redoStack = nil
	}
	t.explicitDepth++
}

// EndSequence closes an explicit sequence opened with BeginSequence and
// pushes it onto the undo stack if it holds any changes.
func (t *Tracker) EndSequence() {
	if t.explicitDepth == 0 {
		return
	}
	t.explicitDepth--
	if t.explicitDepth > 0 {
		return
	}
	t.flushPending()
}

// Label sets the description of the sequence currently being built,
// for display in an undo history list. A no-op outside BeginSequence.
func (t *Tracker) Label(label string) {
	if t.pending != nil {
		t.pending.Label = label
	}
}

// RecordInsert applies an insert to buf and records it.
func (t *Tracker) RecordInsert(buf *gapbuf.Buffer, pos gapbuf.ByteOffset, text string) error {
	before := buf.Cursor()
	if err := buf.Insert(pos, text); err != nil {
		return err
	}
	t.record(gapbuf.Change{
		Type:         gapbuf.ChangeInsert,
		Pos:          pos,
		NewText:      text,
		CursorBefore: before,
		CursorAfter:  buf.Cursor(),
	})
	return nil
}

// RecordDelete applies a delete to buf and records it.
func (t *Tracker) RecordDelete(buf *gapbuf.Buffer, pos gapbuf.ByteOffset, nBytes int) (string, error) {
	before := buf.Cursor()
	deleted, err := buf.Delete(pos, nBytes)
	if err != nil {
		return "", err
	}
	t.record(gapbuf.Change{
		Type:         gapbuf.ChangeDelete,
		Pos:          pos,
		OldText:      deleted,
		CursorBefore: before,
		CursorAfter:  buf.Cursor(),
	})
	return deleted, nil
}

// RecordReplace applies a replace to buf and records it.
func (t *Tracker) RecordReplace(buf *gapbuf.Buffer, pos gapbuf.ByteOffset, nBytes int, text string) (string, error) {
	before := buf.Cursor()
	old, err := buf.Replace(pos, nBytes, text)
	if err != nil {
		return "", err
	}
	t.record(gapbuf.Change{
		Type:         gapbuf.ChangeReplace,
		Pos:          pos,
		OldText:      old,
		NewText:      text,
		CursorBefore: before,
		CursorAfter:  buf.Cursor(),
	})
	return old, nil
}

// record appends a change to the pending sequence, starting a new
// sequence if auto-grouping does not apply.
func (t *Tracker) record(c gapbuf.Change) {
	t.redoStack = nil

	if t.pending != nil && t.canChain(c) {
		t.pending.Changes = append(t.pending.Changes, c)
		t.pending.Timestamp = t.now()
		return
	}

	t.flushPending()
	t.pending = &Sequence{Changes: []gapbuf.Change{c}, Timestamp: t.now()}
	// The pending sequence counts against the cap as well.
	if excess := len(t.undoStack) + 1 - t.maxSequences; excess > 0 {
		t.undoStack = t.undoStack[excess:]
	}

	if t.explicitDepth == 0 {
		// Outside an explicit sequence, a lone change is immediately
		// eligible to be its own undo step; it stays "pending" only so
		// a same-kind follow-up within the timeout can still join it.
	}
}

// canChain reports whether c should join the pending sequence instead
// of starting a new one: same change kind, contiguous position, and
// within the auto-group timeout of the last recorded change.
func (t *Tracker) canChain(c gapbuf.Change) bool {
	if t.explicitDepth > 0 {
		return true
	}
	if t.autoGroupTimeout <= 0 || len(t.pending.Changes) == 0 {
		return false
	}
	if t.now().Sub(t.pending.Timestamp) > t.autoGroupTimeout {
		return false
	}
	last := t.pending.Changes[len(t.pending.Changes)-1]
	if last.Type != c.Type {
		return false
	}
	switch c.Type {
	case gapbuf.ChangeInsert:
		return c.Pos == last.Pos+gapbuf.ByteOffset(len(last.NewText))
	case gapbuf.ChangeDelete:
		// Backspace chain: each new delete lands immediately before the
		// previous one. Forward-delete chain: position never moves.
		return c.Pos+gapbuf.ByteOffset(len(c.OldText)) == last.Pos || c.Pos == last.Pos
	default:
		return false
	}
}

// flushPending pushes the pending sequence onto the undo stack, if any.
func (t *Tracker) flushPending() {
	if t.pending == nil || t.pending.IsEmpty() {
		t.pending = nil
		return
	}
	t.undoStack = append(t.undoStack, t.pending)
	t.pending = nil
	if len(t.undoStack) > t.maxSequences {
		excess := len(t.undoStack) - t.maxSequences
		t.undoStack = t.undoStack[excess:]
	}
}

// Undo reverts the most recent undo sequence.
func (t *Tracker) Undo(buf *gapbuf.Buffer) error {
	t.flushPending()
	if len(t.undoStack) == 0 {
		return ErrNothingToUndo
	}
	seq := t.undoStack[len(t.undoStack)-1]
	if err := seq.Undo(buf); err != nil {
		return err
	}
	t.undoStack = t.undoStack[:len(t.undoStack)-1]
	t.redoStack = append(t.redoStack, seq)
	return nil
}

// Redo re-applies the most recently undone sequence.
func (t *Tracker) Redo(buf *gapbuf.Buffer) error {
	if len(t.redoStack) == 0 {
		return ErrNothingToRedo
	}
	seq := t.redoStack[len(t.redoStack)-1]
	if err := seq.Redo(buf); err != nil {
		return err
	}
	t.redoStack = t.redoStack[:len(t.redoStack)-1]
	t.undoStack = append(t.undoStack, seq)
	return nil
}

// CanUndo reports whether Undo would succeed.
func (t *Tracker) CanUndo() bool {
	return len(t.undoStack) > 0 || (t.pending != nil && !t.pending.IsEmpty())
}

// CanRedo reports whether Redo would succeed.
func (t *Tracker) CanRedo() bool { return len(t.redoStack) > 0 }

// Clear discards all undo/redo history.
func (t *Tracker) Clear() {
	t.undoStack = nil
	t.redoStack = nil
	t.pending = nil
	t.explicitDepth = 0
}

// UndoCount returns the number of undo sequences available.
func (t *Tracker) UndoCount() int {
	n := len(t.undoStack)
	if t.pending != nil && !t.pending.IsEmpty() {
		n++
	}
	return n
}

// RedoCount returns the number of redo sequences available.
func (t *Tracker) RedoCount() int { return len(t.redoStack) }
