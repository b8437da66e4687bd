package action

import "github.com/dshills/lle/internal/gapbuf"

// DeleteChar deletes the codepoint under the cursor (action
// "delete_char").
func DeleteChar(ctx *Context, _ map[string]any) error {
	for i := 0; i < ctx.EffectiveCount(); i++ {
		pos := ctx.Buf.Cursor().Byte
		if pos >= ctx.Buf.Len() {
			return nil
		}
		_, size := ctx.Buf.RuneAt(pos)
		if size == 0 {
			return nil
		}
		if _, err := ctx.deleteAt(pos, size); err != nil {
			return err
		}
	}
	return nil
}

// BackwardDeleteChar deletes the codepoint before the cursor (action
// "backward_delete_char").
func BackwardDeleteChar(ctx *Context, _ map[string]any) error {
	for i := 0; i < ctx.EffectiveCount(); i++ {
		before := ctx.Buf.Cursor()
		if before.Byte == 0 {
			return nil
		}
		ctx.Buf.CursorMoveCharBackward()
		after := ctx.Buf.Cursor().Byte
		n := int(before.Byte - after)
		if n <= 0 {
			return nil
		}
		if _, err := ctx.deleteAt(after, n); err != nil {
			return err
		}
	}
	return nil
}

// KillWord kills from the cursor to the end of the next word onto the
// kill ring (action "kill_word").
func KillWord(ctx *Context, _ map[string]any) error {
	start, end := wordForwardSpan(ctx.Buf)
	if end == start {
		return nil
	}
	text, err := ctx.Buf.TextRange(start, end)
	if err != nil {
		return err
	}
	if _, err := ctx.deleteAt(start, int(end-start)); err != nil {
		return err
	}
	ctx.recordKill(text, true)
	return nil
}

// BackwardKillWord kills from the start of the previous word to the
// cursor onto the kill ring (action "backward_kill_word", GNU
// Readline's unix-word-rubout family).
func BackwardKillWord(ctx *Context, _ map[string]any) error {
	start, end := wordBackwardSpan(ctx.Buf)
	if end == start {
		return nil
	}
	text, err := ctx.Buf.TextRange(start, end)
	if err != nil {
		return err
	}
	if _, err := ctx.deleteAt(start, int(end-start)); err != nil {
		return err
	}
	ctx.recordKill(text, false)
	return nil
}

// KillLine kills from the cursor to the end of the current logical
// line onto the kill ring; if the cursor is already at the line's end,
// the trailing newline (if any) is killed instead, so repeated
// kill_line calls eventually join multi-line content (action
// "kill_line").
func KillLine(ctx *Context, _ map[string]any) error {
	cursor := ctx.Buf.Cursor().Byte
	lineEnd := ctx.Buf.LineEnd(ctx.Buf.CurrentLine())

	end := lineEnd
	if cursor == lineEnd {
		if r, size := ctx.Buf.RuneAt(cursor); size > 0 && r == '\n' {
			end = cursor + gapbuf.ByteOffset(size)
		}
	}
	if end == cursor {
		return nil
	}
	text, err := ctx.Buf.TextRange(cursor, end)
	if err != nil {
		return err
	}
	if _, err := ctx.deleteAt(cursor, int(end-cursor)); err != nil {
		return err
	}
	ctx.recordKill(text, true)
	return nil
}

// BackwardKillLine kills from the start of the current logical line to
// the cursor onto the kill ring (action "backward_kill_line").
func BackwardKillLine(ctx *Context, _ map[string]any) error {
	lineStart := ctx.Buf.LineStart(ctx.Buf.CurrentLine())
	cursor := ctx.Buf.Cursor().Byte
	if lineStart == cursor {
		return nil
	}
	text, err := ctx.Buf.TextRange(lineStart, cursor)
	if err != nil {
		return err
	}
	if _, err := ctx.deleteAt(lineStart, int(cursor-lineStart)); err != nil {
		return err
	}
	ctx.recordKill(text, false)
	return nil
}

// KillWholeLine kills the entire current logical line, including its
// trailing newline if present, regardless of cursor column (action
// "kill_whole_line").
func KillWholeLine(ctx *Context, _ map[string]any) error {
	line := ctx.Buf.CurrentLine()
	start := ctx.Buf.LineStart(line)
	end := ctx.Buf.LineEnd(line)
	if r, size := ctx.Buf.RuneAt(end); size > 0 && r == '\n' {
		end += gapbuf.ByteOffset(size)
	}
	if end == start {
		return nil
	}
	text, err := ctx.Buf.TextRange(start, end)
	if err != nil {
		return err
	}
	if _, err := ctx.deleteAt(start, int(end-start)); err != nil {
		return err
	}
	ctx.recordKill(text, true)
	return nil
}

// DeleteHorizontalSpace deletes all whitespace immediately surrounding
// the cursor, on both sides, without touching the kill ring (action
// "delete_horizontal_space").
func DeleteHorizontalSpace(ctx *Context, _ map[string]any) error {
	cursor := ctx.Buf.Cursor().Byte
	end := cursor
	for {
		r, size := ctx.Buf.RuneAt(end)
		if size == 0 || !isHorizontalSpace(r) {
			break
		}
		end += gapbuf.ByteOffset(size)
	}

	savedCodepoint := ctx.Buf.Cursor().Codepoint
	start := cursor
	for start > 0 {
		ctx.Buf.CursorMoveCharBackward()
		newPos := ctx.Buf.Cursor().Byte
		r, _ := ctx.Buf.RuneAt(newPos)
		if !isHorizontalSpace(r) {
			break
		}
		start = newPos
	}
	ctx.Buf.CursorMoveAbsolute(savedCodepoint)

	if start == end {
		return nil
	}
	_, err := ctx.deleteAt(start, int(end-start))
	return err
}

func isHorizontalSpace(r rune) bool { return r == ' ' || r == '\t' }
