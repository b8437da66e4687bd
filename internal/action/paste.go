package action

// Yank inserts the most recently killed text at the cursor (action
// "yank").
func Yank(ctx *Context, _ map[string]any) error {
	if ctx.Kill == nil {
		return nil
	}
	text, ok := ctx.Kill.Yank()
	if !ok {
		return nil
	}
	if err := ctx.insertAt(ctx.Buf.Cursor().Byte, text); err != nil {
		return err
	}
	ctx.lastYankBytes = len(text)
	return nil
}

// YankPop replaces the text just inserted by the previous yank/yank_pop
// with the next-older kill-ring fragment (action "yank_pop"). Only
// meaningful immediately after a yank or another yank_pop; the
// registry's kill/yank adjacency tracking is what makes ctx.lastWasYank
// reliable here.
func YankPop(ctx *Context, _ map[string]any) error {
	if ctx.Kill == nil || !ctx.lastWasYank {
		return nil
	}
	next, ok := ctx.Kill.YankPop()
	if !ok {
		return nil
	}

	cursor := ctx.Buf.Cursor().Byte
	start := cursor - gapbufOffset(ctx.lastYankBytes)
	if start < 0 {
		start = 0
	}
	if _, err := ctx.replaceAt(start, int(cursor-start), next); err != nil {
		return err
	}
	ctx.lastYankBytes = len(next)
	return nil
}
