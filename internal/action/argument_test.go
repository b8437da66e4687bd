package action

import "testing"

func TestDigitArgumentAccumulates(t *testing.T) {
	ctx := newTestContext("")
	for _, d := range []string{"1", "2"} {
		if err := DigitArgument(ctx, map[string]any{"digit": d}); err != nil {
			t.Fatal(err)
		}
	}
	if !ctx.CountGiven || ctx.Count != 12 {
		t.Errorf("Count = %d, CountGiven = %v, want 12/true", ctx.Count, ctx.CountGiven)
	}
}

func TestDigitArgumentNegative(t *testing.T) {
	ctx := newTestContext("")
	if err := DigitArgument(ctx, map[string]any{"digit": "-"}); err != nil {
		t.Fatal(err)
	}
	if err := DigitArgument(ctx, map[string]any{"digit": "5"}); err != nil {
		t.Fatal(err)
	}
	if ctx.Count != -5 {
		t.Errorf("Count = %d, want -5", ctx.Count)
	}
}

func TestUniversalArgumentMultipliesByFour(t *testing.T) {
	ctx := newTestContext("")
	if err := UniversalArgument(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if ctx.Count != 4 {
		t.Fatalf("Count after first C-u = %d, want 4", ctx.Count)
	}
	if err := UniversalArgument(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if ctx.Count != 16 {
		t.Errorf("Count after second C-u = %d, want 16", ctx.Count)
	}
}

func TestCountResetsAfterNonArgumentAction(t *testing.T) {
	ctx := newTestContext("abcdef")
	ctx.setCursor(0)
	reg := DefaultRegistry()
	if err := reg.Execute(ctx, "digit_argument", map[string]any{"digit": "3"}); err != nil {
		t.Fatal(err)
	}
	if err := reg.Execute(ctx, "forward_char", nil); err != nil {
		t.Fatal(err)
	}
	if ctx.Buf.Cursor().Codepoint != 3 {
		t.Fatalf("cursor after repeated forward_char = %d, want 3", ctx.Buf.Cursor().Codepoint)
	}
	if ctx.CountGiven {
		t.Error("expected count cleared after consuming action")
	}
}
