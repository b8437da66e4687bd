package action

import "github.com/dshills/lle/internal/gapbuf"

// gapbufOffset converts a byte count to a gapbuf.ByteOffset.
func gapbufOffset(n int) gapbuf.ByteOffset { return gapbuf.ByteOffset(n) }

// insertAt inserts text at pos, routing through the undo tracker when
// one is attached so the edit becomes undoable.
func (c *Context) insertAt(pos gapbuf.ByteOffset, text string) error {
	if c.Undo != nil {
		return c.Undo.RecordInsert(c.Buf, pos, text)
	}
	return c.Buf.Insert(pos, text)
}

// deleteAt deletes nBytes at pos and returns the deleted text.
func (c *Context) deleteAt(pos gapbuf.ByteOffset, nBytes int) (string, error) {
	if c.Undo != nil {
		return c.Undo.RecordDelete(c.Buf, pos, nBytes)
	}
	return c.Buf.Delete(pos, nBytes)
}

// replaceAt atomically replaces nBytes at pos with text.
func (c *Context) replaceAt(pos gapbuf.ByteOffset, nBytes int, text string) (string, error) {
	if c.Undo != nil {
		return c.Undo.RecordReplace(c.Buf, pos, nBytes, text)
	}
	return c.Buf.Replace(pos, nBytes, text)
}

// wordForwardSpan returns [cursor, end) where end is where
// CursorMoveWordForward would land, without leaving the cursor moved.
func wordForwardSpan(buf *gapbuf.Buffer) (start, end gapbuf.ByteOffset) {
	saved := buf.Cursor()
	start = saved.Byte
	buf.CursorMoveWordForward()
	end = buf.Cursor().Byte
	buf.CursorMoveAbsolute(saved.Codepoint)
	return start, end
}

// wordBackwardSpan returns [start, cursor) where start is where
// CursorMoveWordBackward would land, without leaving the cursor moved.
func wordBackwardSpan(buf *gapbuf.Buffer) (start, end gapbuf.ByteOffset) {
	saved := buf.Cursor()
	end = saved.Byte
	buf.CursorMoveWordBackward()
	start = buf.Cursor().Byte
	buf.CursorMoveAbsolute(saved.Codepoint)
	return start, end
}
