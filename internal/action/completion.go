package action

import "strings"

// wordBeforeCursor returns the token immediately preceding the cursor,
// delimited by whitespace, the unit a CompletionSource completes
// against.
func wordBeforeCursor(ctx *Context) (string, int) {
	content, err := ctx.Buf.TextRange(0, ctx.Buf.Cursor().Byte)
	if err != nil {
		return "", 0
	}
	idx := strings.LastIndexAny(content, " \t\n")
	word := content[idx+1:]
	return word, len([]byte(content[:idx+1]))
}

// Complete replaces the word before the cursor with the single best
// completion, or does nothing if the source offers none or more than
// one (action "complete"; ambiguous completions are left to
// possible_completions/insert_completions).
func Complete(ctx *Context, _ map[string]any) error {
	if ctx.Complete == nil {
		return nil
	}
	word, wordStart := wordBeforeCursor(ctx)
	candidates := ctx.Complete.Complete(word)
	if len(candidates) != 1 {
		return nil
	}
	cursor := ctx.Buf.Cursor().Byte
	_, err := ctx.replaceAt(gapbufOffset(wordStart), int(cursor)-wordStart, candidates[0].Replacement)
	return err
}

// PossibleCompletions returns the full candidate list for a host-side
// listing UI without modifying the buffer (action
// "possible_completions"). The result is delivered through args, the
// same mechanism a host-defined binding uses to receive structured
// output from an action, since Func's signature has no other return
// channel.
func PossibleCompletions(ctx *Context, args map[string]any) error {
	if ctx.Complete == nil || args == nil {
		return nil
	}
	word, _ := wordBeforeCursor(ctx)
	if out, ok := args["result"].(*[]Completion); ok {
		*out = ctx.Complete.Complete(word)
	}
	return nil
}

// InsertCompletions inserts every candidate's replacement, space
// separated, at the cursor (action "insert_completions").
func InsertCompletions(ctx *Context, _ map[string]any) error {
	if ctx.Complete == nil {
		return nil
	}
	word, wordStart := wordBeforeCursor(ctx)
	candidates := ctx.Complete.Complete(word)
	if len(candidates) == 0 {
		return nil
	}
	texts := make([]string, len(candidates))
	for i, c := range candidates {
		texts[i] = c.Replacement
	}
	cursor := ctx.Buf.Cursor().Byte
	_, err := ctx.replaceAt(gapbufOffset(wordStart), int(cursor)-wordStart, strings.Join(texts, " "))
	return err
}
