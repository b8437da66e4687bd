package action

import "testing"

func TestDeleteChar(t *testing.T) {
	ctx := newTestContext("abc")
	ctx.setCursor(1)
	if err := DeleteChar(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Buf.GetCompleteContent(); got != "ac" {
		t.Errorf("content = %q, want %q", got, "ac")
	}
}

func TestDeleteCharAtEndIsNoop(t *testing.T) {
	ctx := newTestContext("abc")
	if err := DeleteChar(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Buf.GetCompleteContent(); got != "abc" {
		t.Errorf("content = %q, want unchanged %q", got, "abc")
	}
}

func TestBackwardDeleteChar(t *testing.T) {
	ctx := newTestContext("abc")
	if err := BackwardDeleteChar(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Buf.GetCompleteContent(); got != "ab" {
		t.Errorf("content = %q, want %q", got, "ab")
	}
}

func TestKillWordRecordsOnKillRing(t *testing.T) {
	ctx := newTestContext("foo bar")
	ctx.setCursor(0)
	if err := KillWord(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Buf.GetCompleteContent(); got != " bar" {
		t.Errorf("content after kill_word = %q, want %q", got, " bar")
	}
	ring := ctx.Kill.(*fakeKillRing)
	if len(ring.entries) != 1 || ring.entries[0] != "foo" {
		t.Errorf("kill ring = %v, want [\"foo\"]", ring.entries)
	}
}

func TestConsecutiveKillsCoalesceViaRegistry(t *testing.T) {
	ctx := newTestContext("foo bar baz")
	ctx.setCursor(0)
	reg := DefaultRegistry()
	if err := reg.Execute(ctx, "kill_word", nil); err != nil {
		t.Fatal(err)
	}
	if err := reg.Execute(ctx, "kill_word", nil); err != nil {
		t.Fatal(err)
	}
	ring := ctx.Kill.(*fakeKillRing)
	if len(ring.entries) != 1 {
		t.Fatalf("kill ring entries = %v, want a single coalesced entry", ring.entries)
	}
	if ring.entries[0] != "foo bar" {
		t.Errorf("coalesced kill = %q, want %q", ring.entries[0], "foo bar")
	}
}

func TestKillLineAtEndKillsNewline(t *testing.T) {
	ctx := newTestContext("abc\ndef")
	ctx.setCursor(3) // end of first line
	if err := KillLine(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Buf.GetCompleteContent(); got != "abcdef" {
		t.Errorf("content = %q, want %q", got, "abcdef")
	}
}

func TestBackwardKillLine(t *testing.T) {
	ctx := newTestContext("hello world")
	ctx.setCursor(11)
	if err := BackwardKillLine(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Buf.GetCompleteContent(); got != "" {
		t.Errorf("content = %q, want empty", got)
	}
	ring := ctx.Kill.(*fakeKillRing)
	if ring.entries[0] != "hello world" {
		t.Errorf("kill ring = %v", ring.entries)
	}
}

func TestDeleteHorizontalSpace(t *testing.T) {
	ctx := newTestContext("foo   bar")
	ctx.setCursor(5) // inside the whitespace run
	if err := DeleteHorizontalSpace(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Buf.GetCompleteContent(); got != "foobar" {
		t.Errorf("content = %q, want %q", got, "foobar")
	}
}
