package gapbuf

// ChangeType categorizes a recorded edit.
type ChangeType uint8

const (
	ChangeInsert ChangeType = iota
	ChangeDelete
	ChangeReplace
)

func (c ChangeType) String() string {
	switch c {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	case ChangeReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Change is one atomic edit record: what changed, where, and the cursor
// positions immediately before and after, in both coordinate systems.
// The before/after cursors in both byte and codepoint form are what let
// undo restore the cursor faithfully (§3 change record).
type Change struct {
	Type    ChangeType
	Pos     ByteOffset // position the edit was applied at
	OldText string     // text removed (delete/replace)
	NewText string     // text inserted (insert/replace)

	CursorBefore Cursor
	CursorAfter  Cursor
}

// Invert returns the Change that undoes this one.
func (c Change) Invert() Change {
	switch c.Type {
	case ChangeInsert:
		return Change{
			Type:         ChangeDelete,
			Pos:          c.Pos,
			OldText:      c.NewText,
			CursorBefore: c.CursorAfter,
			CursorAfter:  c.CursorBefore,
		}
	case ChangeDelete:
		return Change{
			Type:         ChangeInsert,
			Pos:          c.Pos,
			NewText:      c.OldText,
			CursorBefore: c.CursorAfter,
			CursorAfter:  c.CursorBefore,
		}
	case ChangeReplace:
		return Change{
			Type:         ChangeReplace,
			Pos:          c.Pos,
			OldText:      c.NewText,
			NewText:      c.OldText,
			CursorBefore: c.CursorAfter,
			CursorAfter:  c.CursorBefore,
		}
	default:
		return c
	}
}

// Apply replays this change against the buffer (used by redo and by
// Invert+Apply for undo). It bypasses validating the edit against the
// *current* cursor — it always uses the change's own Pos.
func (c Change) Apply(b *Buffer) error {
	switch c.Type {
	case ChangeInsert:
		return b.Insert(c.Pos, c.NewText)
	case ChangeDelete:
		_, err := b.Delete(c.Pos, len(c.OldText))
		return err
	case ChangeReplace:
		_, err := b.Replace(c.Pos, len(c.OldText), c.NewText)
		return err
	}
	return nil
}
