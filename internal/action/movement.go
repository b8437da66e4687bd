package action

import "github.com/dshills/lle/internal/gapbuf"

// repeatTimes runs fn EffectiveCount times, the way GNU Readline
// applies a numeric argument to cursor and deletion commands.
func repeatTimes(ctx *Context, fn func()) {
	n := ctx.EffectiveCount()
	for i := 0; i < n; i++ {
		fn()
	}
}

// ForwardChar moves the cursor forward one codepoint (action
// "forward_char").
func ForwardChar(ctx *Context, _ map[string]any) error {
	repeatTimes(ctx, ctx.Buf.CursorMoveCharForward)
	return nil
}

// BackwardChar moves the cursor backward one codepoint (action
// "backward_char").
func BackwardChar(ctx *Context, _ map[string]any) error {
	repeatTimes(ctx, ctx.Buf.CursorMoveCharBackward)
	return nil
}

// ForwardWord moves the cursor to the end of the current word, or of
// the next word when the cursor is on whitespace (action
// "forward_word").
func ForwardWord(ctx *Context, _ map[string]any) error {
	repeatTimes(ctx, ctx.Buf.CursorMoveWordForward)
	return nil
}

// BackwardWord moves the cursor to the start of the previous word
// (action "backward_word").
func BackwardWord(ctx *Context, _ map[string]any) error {
	repeatTimes(ctx, ctx.Buf.CursorMoveWordBackward)
	return nil
}

// BeginningOfLine moves the cursor to the start of the current logical
// (newline-delimited) line, not the buffer start, per §4.3's
// multiline-awareness rule (action "beginning_of_line").
func BeginningOfLine(ctx *Context, _ map[string]any) error {
	ctx.Buf.CursorMoveLineStart()
	return nil
}

// EndOfLine moves the cursor to the end of the current logical line,
// not the buffer end (action "end_of_line").
func EndOfLine(ctx *Context, _ map[string]any) error {
	ctx.Buf.CursorMoveLineEnd()
	return nil
}

// BeginningOfBuffer moves the cursor to byte offset 0 (action
// "beginning_of_buffer").
func BeginningOfBuffer(ctx *Context, _ map[string]any) error {
	ctx.Buf.CursorMoveAbsolute(0)
	return nil
}

// EndOfBuffer moves the cursor to the end of the buffer's content
// (action "end_of_buffer").
func EndOfBuffer(ctx *Context, _ map[string]any) error {
	total := ctx.Buf.GetCompleteContent()
	ctx.Buf.CursorMoveAbsolute(gapbuf.CodepointOffset(len([]rune(total))))
	return nil
}

// PreviousLine moves the cursor up one logical line, keeping the
// column as close to its current position as the target line allows
// (action "previous_line", for multi-line buffers).
func PreviousLine(ctx *Context, _ map[string]any) error {
	repeatTimes(ctx, func() { moveVertical(ctx.Buf, -1) })
	return nil
}

// NextLine moves the cursor down one logical line (action "next_line").
func NextLine(ctx *Context, _ map[string]any) error {
	repeatTimes(ctx, func() { moveVertical(ctx.Buf, 1) })
	return nil
}

func moveVertical(buf *gapbuf.Buffer, delta int) {
	line := buf.CurrentLine()
	target := line + delta
	if target < 0 || target >= buf.LineCount() {
		return
	}
	col := buf.Cursor().Byte - buf.LineStart(line)
	start := buf.LineStart(target)
	end := buf.LineEnd(target)
	pos := start + col
	if pos > end {
		pos = end
	}
	seekToByte(buf, pos)
}

// seekToByte moves the cursor to an exact byte offset by walking
// codepoint-by-codepoint from whichever buffer boundary is closer,
// since gapbuf only exposes codepoint-addressed absolute seeks.
func seekToByte(buf *gapbuf.Buffer, target gapbuf.ByteOffset) {
	buf.CursorMoveAbsolute(0)
	for buf.Cursor().Byte < target {
		before := buf.Cursor().Byte
		buf.CursorMoveCharForward()
		if buf.Cursor().Byte == before {
			break
		}
	}
}
