package action

import "github.com/dshills/lle/internal/histstore"

// loadIntoBuffer replaces the entire buffer with entry's recalled text
// (histstore.Recall), placing the cursor at the start for a single-line
// recall or the end for a multi-line one, per §4.5 step 4.
func (c *Context) loadIntoBuffer(entry *histstore.Entry) {
	text, cursorAtEnd := histstore.Recall(entry)
	n := c.Buf.Len()
	if n > 0 {
		_, _ = c.deleteAt(0, int(n))
	}
	_ = c.insertAt(0, text)
	if !cursorAtEnd {
		c.Buf.CursorMoveAbsolute(0)
	}
}

// AcceptLine commits the current buffer content to history and signals
// the host dispatch loop that the line is complete (action
// "accept_line"). A leading-space or empty buffer is not recorded (the
// same rule histstore.Store.Add enforces), but the line is still
// accepted: accept_line always ends the edit, recording is best-effort.
func AcceptLine(ctx *Context, _ map[string]any) error {
	text := ctx.Buf.GetCompleteContent()
	ctx.AcceptedText = text
	ctx.Accepted = true

	if ctx.History == nil {
		return nil
	}
	normalized := text
	if _, err := ctx.History.Add(normalized, text, ctx.WorkingDir); err != nil {
		if err == histstore.ErrLeadingSpace || err == histstore.ErrEmptyCommand {
			return nil
		}
		return err
	}
	return nil
}

// PreviousHistory recalls the next-older history entry into the buffer
// (action "previous_history", the up-arrow in single-line mode).
func PreviousHistory(ctx *Context, _ map[string]any) error {
	if ctx.History == nil || ctx.History.Len() == 0 {
		return nil
	}
	entries := ctx.History.Entries()
	if !ctx.hasHistIndex {
		ctx.histIndex = len(entries) - 1
		ctx.hasHistIndex = true
	} else if ctx.histIndex > 0 {
		ctx.histIndex--
	} else {
		return nil
	}
	ctx.loadIntoBuffer(entries[ctx.histIndex])
	return nil
}

// NextHistory recalls the next-newer history entry, or clears the
// buffer once browsing runs past the newest entry (action
// "next_history", the down-arrow).
func NextHistory(ctx *Context, _ map[string]any) error {
	if ctx.History == nil || !ctx.hasHistIndex {
		return nil
	}
	entries := ctx.History.Entries()
	if ctx.histIndex >= len(entries)-1 {
		ctx.hasHistIndex = false
		n := ctx.Buf.Len()
		if n > 0 {
			_, _ = ctx.deleteAt(0, int(n))
		}
		return nil
	}
	ctx.histIndex++
	ctx.loadIntoBuffer(entries[ctx.histIndex])
	return nil
}

// ReverseSearchHistory starts (or advances) an incremental
// reverse-i-search, Ctrl-R (action "reverse_search_history").
func ReverseSearchHistory(ctx *Context, _ map[string]any) error {
	return startSearch(ctx, histstore.Backward)
}

// ForwardSearchHistory starts (or advances) an incremental forward
// history search, Ctrl-S (action "forward_search_history").
func ForwardSearchHistory(ctx *Context, _ map[string]any) error {
	return startSearch(ctx, histstore.Forward)
}

func startSearch(ctx *Context, dir histstore.Direction) error {
	if ctx.Search == nil {
		return nil
	}
	if !ctx.InSearch {
		ctx.searchSavedText = ctx.Buf.GetCompleteContent()
		ctx.Search.Reset()
		ctx.InSearch = true
	}
	ctx.Search.SetDirection(dir)
	if entry, ok := ctx.Search.Next(); ok {
		ctx.loadIntoBuffer(entry)
	}
	return nil
}

// HistorySearchBackward does a one-shot, non-incremental search for an
// entry whose normalized form starts with the text before the cursor,
// scanning toward older entries (action "history_search_backward").
func HistorySearchBackward(ctx *Context, _ map[string]any) error {
	return historyPrefixSearch(ctx, histstore.Backward)
}

// HistorySearchForward is HistorySearchBackward's forward counterpart
// (action "history_search_forward").
func HistorySearchForward(ctx *Context, _ map[string]any) error {
	return historyPrefixSearch(ctx, histstore.Forward)
}

func historyPrefixSearch(ctx *Context, dir histstore.Direction) error {
	if ctx.Search == nil {
		return nil
	}
	prefix, err := ctx.Buf.TextRange(0, ctx.Buf.Cursor().Byte)
	if err != nil {
		return err
	}
	ctx.Search.Reset()
	ctx.Search.SetDirection(dir)
	entry, ok := ctx.Search.SetQuery(prefix)
	if !ok {
		return nil
	}
	ctx.loadIntoBuffer(entry)
	return nil
}
