package action

import "strings"

// SelfInsert inserts args["text"] at the cursor (action "self_insert").
// When an interactive history search is active, the text is routed to
// the search query instead of the buffer, per §4.5(ii).
func SelfInsert(ctx *Context, args map[string]any) error {
	text, _ := args["text"].(string)
	if text == "" {
		return nil
	}
	if ctx.InSearch && ctx.Search != nil {
		entry, ok := ctx.Search.SetQuery(ctx.Search.Query() + text)
		if ok {
			ctx.loadIntoBuffer(entry)
		}
		return nil
	}
	return ctx.insertAt(ctx.Buf.Cursor().Byte, text)
}

// QuotedInsert inserts args["text"] verbatim, bypassing keybinding
// interpretation entirely (action "quoted_insert"): the dispatcher is
// responsible for reading the next raw byte without consulting the
// keymap and passing it through here rather than through SelfInsert's
// search-routing behavior.
func QuotedInsert(ctx *Context, args map[string]any) error {
	text, _ := args["text"].(string)
	if text == "" {
		return nil
	}
	return ctx.insertAt(ctx.Buf.Cursor().Byte, text)
}

// Newline inserts a literal newline at the cursor, used for explicit
// multi-line continuation (action "newline", typically bound to
// Meta-Return since a bare Return is accept_line).
func Newline(ctx *Context, _ map[string]any) error {
	return ctx.insertAt(ctx.Buf.Cursor().Byte, "\n")
}

// TransposeChars swaps the two codepoints surrounding the cursor,
// moving the cursor one position to the right, per GNU Readline's
// transpose-chars (action "transpose_chars"). At the end of the
// buffer it swaps the two preceding codepoints instead, without
// advancing.
func TransposeChars(ctx *Context, _ map[string]any) error {
	buf := ctx.Buf
	atEnd := buf.Cursor().Byte >= buf.Len()
	if atEnd {
		if buf.Cursor().Byte == 0 {
			return nil
		}
		buf.CursorMoveCharBackward()
	}
	if buf.Cursor().Byte == 0 {
		if atEnd {
			buf.CursorMoveCharForward()
		}
		return nil
	}

	saved := buf.Cursor()
	buf.CursorMoveCharBackward()
	start := buf.Cursor().Byte
	buf.CursorMoveAbsolute(saved.Codepoint)
	if !atEnd {
		buf.CursorMoveCharForward()
	}
	end := buf.Cursor().Byte

	text, err := buf.TextRange(start, end)
	if err != nil {
		return err
	}
	runes := []rune(text)
	if len(runes) != 2 {
		return nil
	}
	swapped := string([]rune{runes[1], runes[0]})
	if _, err := ctx.replaceAt(start, int(end-start), swapped); err != nil {
		return err
	}
	return nil
}

// TransposeWords swaps the word the cursor is in (or just after) with
// the previous word (action "transpose_words").
func TransposeWords(ctx *Context, _ map[string]any) error {
	buf := ctx.Buf
	saved := buf.Cursor()

	// The word at or after the cursor is the second word of the pair.
	buf.CursorMoveWordForward()
	secondEnd := buf.Cursor().Byte
	buf.CursorMoveWordBackward()
	secondStart := buf.Cursor().Byte

	// The word before that is the first.
	buf.CursorMoveWordBackward()
	firstStart := buf.Cursor().Byte
	buf.CursorMoveWordForward()
	firstEnd := buf.Cursor().Byte

	buf.CursorMoveAbsolute(saved.Codepoint)

	if firstStart >= firstEnd || firstEnd > secondStart || secondStart >= secondEnd {
		return nil
	}

	firstWord, err := buf.TextRange(firstStart, firstEnd)
	if err != nil {
		return err
	}
	gap, err := buf.TextRange(firstEnd, secondStart)
	if err != nil {
		return err
	}
	secondWord, err := buf.TextRange(secondStart, secondEnd)
	if err != nil {
		return err
	}

	replacement := secondWord + gap + firstWord
	if _, err := ctx.replaceAt(firstStart, int(secondEnd-firstStart), replacement); err != nil {
		return err
	}
	return nil
}

// UpcaseWord, DowncaseWord and CapitalizeWord implement §4.3's case
// actions: they operate on the word starting at the cursor (or the
// next word, if the cursor sits on whitespace) and move the cursor to
// the word's end.
func UpcaseWord(ctx *Context, _ map[string]any) error  { return transformWord(ctx, strings.ToUpper) }
func DowncaseWord(ctx *Context, _ map[string]any) error {
	return transformWord(ctx, strings.ToLower)
}
func CapitalizeWord(ctx *Context, _ map[string]any) error {
	return transformWord(ctx, capitalize)
}

func transformWord(ctx *Context, transform func(string) string) error {
	buf := ctx.Buf
	start := buf.Cursor().Byte
	buf.CursorMoveWordForward()
	end := buf.Cursor().Byte
	if end == start {
		return nil
	}
	text, err := buf.TextRange(start, end)
	if err != nil {
		return err
	}
	_, err = ctx.replaceAt(start, int(end-start), transform(text))
	return err
}

func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	for i, r := range runes {
		if !strings.ContainsRune(" \t\n", r) {
			runes[i] = []rune(strings.ToUpper(string(r)))[0]
			break
		}
	}
	return string(runes)
}
