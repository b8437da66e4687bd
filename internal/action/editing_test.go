package action

import "testing"

func TestSelfInsert(t *testing.T) {
	ctx := newTestContext("ac")
	ctx.setCursor(1)
	if err := SelfInsert(ctx, map[string]any{"text": "b"}); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Buf.GetCompleteContent(); got != "abc" {
		t.Errorf("content = %q, want %q", got, "abc")
	}
}

func TestSelfInsertRoutesToSearch(t *testing.T) {
	ctx := newTestContext("")
	store := newHistStoreWith(t, "git status", "git commit")
	ctx.Search = newSearcherFor(store)
	ctx.InSearch = true

	if err := SelfInsert(ctx, map[string]any{"text": "git c"}); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Buf.GetCompleteContent(); got != "git commit" {
		t.Errorf("buffer after search keystrokes = %q, want %q", got, "git commit")
	}
}

func TestNewlineInsertsLiteralNewline(t *testing.T) {
	ctx := newTestContext("ab")
	ctx.setCursor(1)
	if err := Newline(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Buf.GetCompleteContent(); got != "a\nb" {
		t.Errorf("content = %q, want %q", got, "a\nb")
	}
}

func TestTransposeChars(t *testing.T) {
	ctx := newTestContext("ab")
	ctx.setCursor(1) // between a and b
	if err := TransposeChars(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Buf.GetCompleteContent(); got != "ba" {
		t.Errorf("content = %q, want %q", got, "ba")
	}
}

func TestTransposeWords(t *testing.T) {
	ctx := newTestContext("foo bar")
	ctx.setCursor(7) // end of buffer, cursor after "bar"
	if err := TransposeWords(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Buf.GetCompleteContent(); got != "bar foo" {
		t.Errorf("content = %q, want %q", got, "bar foo")
	}
}

func TestUpcaseWord(t *testing.T) {
	ctx := newTestContext("foo bar")
	ctx.setCursor(0)
	if err := UpcaseWord(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Buf.GetCompleteContent(); got != "FOO bar" {
		t.Errorf("content = %q, want %q", got, "FOO bar")
	}
}

func TestCapitalizeWord(t *testing.T) {
	ctx := newTestContext("foo")
	ctx.setCursor(0)
	if err := CapitalizeWord(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Buf.GetCompleteContent(); got != "Foo" {
		t.Errorf("content = %q, want %q", got, "Foo")
	}
}
