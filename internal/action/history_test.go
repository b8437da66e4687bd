package action

import "testing"

func TestAcceptLineRecordsHistory(t *testing.T) {
	ctx := newTestContext("echo hi")
	hist := newFakeHistory()
	ctx.History = hist
	if err := AcceptLine(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if !ctx.Accepted {
		t.Error("expected Accepted = true")
	}
	if ctx.AcceptedText != "echo hi" {
		t.Errorf("AcceptedText = %q, want %q", ctx.AcceptedText, "echo hi")
	}
	if hist.Len() != 1 {
		t.Fatalf("history len = %d, want 1", hist.Len())
	}
}

func TestPreviousNextHistory(t *testing.T) {
	ctx := newTestContext("")
	ctx.History = newFakeHistory("first", "second", "third")

	if err := PreviousHistory(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Buf.GetCompleteContent(); got != "third" {
		t.Fatalf("after first previous_history = %q, want %q", got, "third")
	}
	if err := PreviousHistory(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Buf.GetCompleteContent(); got != "second" {
		t.Fatalf("after second previous_history = %q, want %q", got, "second")
	}
	if err := NextHistory(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Buf.GetCompleteContent(); got != "third" {
		t.Fatalf("after next_history = %q, want %q", got, "third")
	}
	if err := NextHistory(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Buf.GetCompleteContent(); got != "" {
		t.Fatalf("after next_history past newest = %q, want empty", got)
	}
}

func TestReverseSearchHistoryFindsMatch(t *testing.T) {
	ctx := newTestContext("")
	store := newHistStoreWith(t, "git status", "git commit -m fix", "ls -la")
	ctx.Search = newSearcherFor(store)

	if err := ReverseSearchHistory(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if !ctx.InSearch {
		t.Fatal("expected InSearch = true after starting a search")
	}
	if got := ctx.Buf.GetCompleteContent(); got != "ls -la" {
		t.Errorf("initial reverse search result = %q, want newest entry %q", got, "ls -la")
	}
}

func TestAbortLineDuringSearchRestoresBuffer(t *testing.T) {
	ctx := newTestContext("original text")
	store := newHistStoreWith(t, "git status")
	ctx.Search = newSearcherFor(store)

	if err := ReverseSearchHistory(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if err := AbortLine(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if ctx.InSearch {
		t.Error("expected InSearch = false after abort")
	}
	if got := ctx.Buf.GetCompleteContent(); got != "original text" {
		t.Errorf("content after abort = %q, want restored %q", got, "original text")
	}
}
