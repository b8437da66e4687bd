package action

// AbortLine implements Ctrl-G's full semantics from §4.3: cancel an
// active interactive search and restore the buffer as it was before
// the search started; otherwise, if a numeric argument is pending,
// just discard it; otherwise clear the entire line and reset the kill
// ring's yank cursor (action "abort_line").
func AbortLine(ctx *Context, _ map[string]any) error {
	switch {
	case ctx.InSearch:
		ctx.InSearch = false
		if ctx.Search != nil {
			ctx.Search.Reset()
		}
		n := ctx.Buf.Len()
		if n > 0 {
			if _, err := ctx.deleteAt(0, int(n)); err != nil {
				return err
			}
		}
		if ctx.searchSavedText != "" {
			if err := ctx.insertAt(0, ctx.searchSavedText); err != nil {
				return err
			}
		}
		ctx.searchSavedText = ""
	case ctx.CountGiven:
		ctx.ResetCount()
	default:
		n := ctx.Buf.Len()
		if n > 0 {
			if _, err := ctx.deleteAt(0, int(n)); err != nil {
				return err
			}
		}
		if ctx.Kill != nil {
			ctx.Kill.ResetCursor()
		}
		ctx.hasHistIndex = false
		ctx.Aborted = true
	}
	return nil
}

// ClearScreen asks the renderer to redraw the screen from a blank
// terminal, without changing the buffer (action "clear_screen").
func ClearScreen(ctx *Context, _ map[string]any) error {
	if ctx.Render != nil {
		ctx.Render.ClearScreen()
	}
	return nil
}

// SendEOF signals end-of-input when pressed on an empty buffer, GNU
// Readline's Ctrl-D behavior; on a non-empty buffer it behaves like
// delete_char instead (action "send_eof").
func SendEOF(ctx *Context, args map[string]any) error {
	if ctx.Buf.IsEmpty() {
		ctx.EOF = true
		return nil
	}
	return DeleteChar(ctx, args)
}

// Interrupt reports that the user asked to abandon the current line
// via a signal-like keystroke (Ctrl-C) and then runs abort_line, so it
// cancels an active search, or else discards a pending numeric
// argument, or else clears the line (action "interrupt").
func Interrupt(ctx *Context, args map[string]any) error {
	ctx.Interrupted = true
	return AbortLine(ctx, args)
}

// Suspend reports that the user asked to suspend the host process
// (Ctrl-Z); the buffer is left untouched since the host is expected to
// resume it unchanged (action "suspend").
func Suspend(ctx *Context, _ map[string]any) error {
	ctx.Suspended = true
	return nil
}
