package histstore

import "testing"

func TestReindentSingleLineUnchanged(t *testing.T) {
	got, ok := Reindent("echo hi")
	if !ok || got != "echo hi" {
		t.Errorf("Reindent single line = %q, ok=%v", got, ok)
	}
}

func TestReindentForLoop(t *testing.T) {
	content := "for i in 1 2 3\ndo\necho $i\ndone"
	want := "for i in 1 2 3\ndo\n  echo $i\ndone"
	got, ok := Reindent(content)
	if !ok {
		t.Fatal("Reindent returned ok=false")
	}
	if got != want {
		t.Errorf("Reindent =\n%q\nwant\n%q", got, want)
	}
}

func TestReindentIfElse(t *testing.T) {
	content := "if true\nthen\necho yes\nelse\necho no\nfi"
	want := "if true\nthen\n  echo yes\nelse\n  echo no\nfi"
	got, ok := Reindent(content)
	if !ok {
		t.Fatal("Reindent returned ok=false")
	}
	if got != want {
		t.Errorf("Reindent =\n%q\nwant\n%q", got, want)
	}
}

func TestReindentIgnoresOriginalIndentation(t *testing.T) {
	content := "for i in 1 2\ndo\n          echo $i\ndone"
	want := "for i in 1 2\ndo\n  echo $i\ndone"
	got, ok := Reindent(content)
	if !ok {
		t.Fatal("Reindent returned ok=false")
	}
	if got != want {
		t.Errorf("Reindent =\n%q\nwant\n%q", got, want)
	}
}

func TestRecallSingleLineCursorAtStart(t *testing.T) {
	e := &Entry{Normalized: "ls -la"}
	text, cursorAtEnd := Recall(e)
	if text != "ls -la" || cursorAtEnd {
		t.Errorf("Recall single line = %q, cursorAtEnd=%v", text, cursorAtEnd)
	}
}

func TestRecallMultilineCachesStructure(t *testing.T) {
	e := &Entry{
		Normalized:        "for i in 1 2; do echo $i; done",
		OriginalMultiline: "for i in 1 2\ndo\necho $i\ndone",
	}
	if e.Structure != nil {
		t.Fatal("Structure should be nil before first recall")
	}
	text, cursorAtEnd := Recall(e)
	if !cursorAtEnd {
		t.Error("expected cursorAtEnd=true for multiline recall")
	}
	if e.Structure == nil {
		t.Fatal("expected Structure to be cached after recall")
	}
	want := "for i in 1 2\ndo\n  echo $i\ndone"
	if text != want {
		t.Errorf("Recall text =\n%q\nwant\n%q", text, want)
	}
}
