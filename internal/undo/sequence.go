package undo

import (
	"fmt"
	"time"

	"github.com/dshills/lle/internal/gapbuf"
)

// Sequence is an ordered group of changes that undo and redo as one
// unit. A sequence formed by auto-grouping typically holds the changes
// from one unbroken burst of typing; an explicit BeginSequence/EndSequence
// pair can hold any compound edit.
type Sequence struct {
	Changes   []gapbuf.Change
	Label     string
	Timestamp time.Time
}

// IsEmpty reports whether the sequence holds no changes.
func (s *Sequence) IsEmpty() bool { return len(s.Changes) == 0 }

// Undo applies the inverse of every change in the sequence, in reverse
// order, against buf.
func (s *Sequence) Undo(buf *gapbuf.Buffer) error {
	for i := len(s.Changes) - 1; i >= 0; i-- {
		inv := s.Changes[i].Invert()
		if err := inv.Apply(buf); err != nil {
			return fmt.Errorf("undo: %w", err)
		}
		buf.CursorMoveAbsolute(inv.CursorAfter.Codepoint)
	}
	return nil
}

// Redo re-applies every change in the sequence, in original order,
// against buf.
func (s *Sequence) Redo(buf *gapbuf.Buffer) error {
	for _, c := range s.Changes {
		if err := c.Apply(buf); err != nil {
			return fmt.Errorf("redo: %w", err)
		}
		buf.CursorMoveAbsolute(c.CursorAfter.Codepoint)
	}
	return nil
}

// Description returns a human-readable label for display in an undo
// history list, falling back to a generic summary when none was set.
func (s *Sequence) Description() string {
	if s.Label != "" {
		return s.Label
	}
	if len(s.Changes) == 1 {
		switch s.Changes[0].Type {
		case gapbuf.ChangeInsert:
			return "Insert"
		case gapbuf.ChangeDelete:
			return "Delete"
		case gapbuf.ChangeReplace:
			return "Replace"
		}
	}
	return fmt.Sprintf("%d changes", len(s.Changes))
}
