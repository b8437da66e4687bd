package gapbuf

import (
	"testing"
	"unicode/utf8"
)

// clampToBoundary walks outward from pos to the nearest valid UTF-8
// boundary in s, so fuzz-generated offsets exercise the buffer instead
// of just hitting ErrNotUTF8Boundary every time.
func clampToBoundary(s string, pos int) int {
	if pos < 0 {
		pos = 0
	}
	if pos > len(s) {
		pos = len(s)
	}
	for pos > 0 && pos < len(s) && !utf8.RuneStart(s[pos]) {
		pos--
	}
	return pos
}

// FuzzNewFromString checks that any valid UTF-8 string round-trips
// through a buffer unchanged.
func FuzzNewFromString(f *testing.F) {
	f.Add("")
	f.Add("hello")
	f.Add("hello\nworld")
	f.Add("日本語")
	f.Add("emoji 🎉 test")

	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			return
		}
		b, err := NewFromString(s)
		if err != nil {
			t.Fatalf("NewFromString(%q): %v", s, err)
		}
		if int(b.Len()) != len(s) {
			t.Errorf("Len() = %d, want %d", b.Len(), len(s))
		}
		if got := b.GetCompleteContent(); got != s {
			t.Errorf("content mismatch: got %q, want %q", got, s)
		}
		if err := b.FullValidate(); err != nil {
			t.Errorf("FullValidate: %v", err)
		}
	})
}

// FuzzInsert checks that Insert at a boundary matches string slicing,
// and that the buffer stays internally consistent afterward.
func FuzzInsert(f *testing.F) {
	f.Add("hello", 0, "x")
	f.Add("hello", 5, "x")
	f.Add("hello", 3, "world")
	f.Add("", 0, "test")
	f.Add("日本語", 3, "x")

	f.Fuzz(func(t *testing.T, initial string, offset int, insert string) {
		if !utf8.ValidString(initial) || !utf8.ValidString(insert) {
			return
		}
		b, err := NewFromString(initial)
		if err != nil {
			t.Fatalf("NewFromString: %v", err)
		}
		pos := clampToBoundary(initial, offset)

		if err := b.Insert(ByteOffset(pos), insert); err != nil {
			t.Fatalf("Insert at boundary %d: %v", pos, err)
		}

		want := initial[:pos] + insert + initial[pos:]
		if got := b.GetCompleteContent(); got != want {
			t.Errorf("insert mismatch at offset %d: got %q, want %q", pos, got, want)
		}
		if err := b.FullValidate(); err != nil {
			t.Errorf("FullValidate after insert: %v", err)
		}
	})
}

// FuzzDelete checks that Delete between two boundaries matches string
// slicing and preserves invariants.
func FuzzDelete(f *testing.F) {
	f.Add("hello world", 0, 5)
	f.Add("hello world", 6, 11)
	f.Add("日本語", 0, 3)

	f.Fuzz(func(t *testing.T, initial string, start, end int) {
		if !utf8.ValidString(initial) {
			return
		}
		b, err := NewFromString(initial)
		if err != nil {
			t.Fatalf("NewFromString: %v", err)
		}
		s := clampToBoundary(initial, start)
		e := clampToBoundary(initial, end)
		if e < s {
			s, e = e, s
		}

		deleted, err := b.Delete(ByteOffset(s), e-s)
		if err != nil {
			t.Fatalf("Delete [%d,%d): %v", s, e, err)
		}
		if deleted != initial[s:e] {
			t.Errorf("deleted text mismatch: got %q, want %q", deleted, initial[s:e])
		}
		want := initial[:s] + initial[e:]
		if got := b.GetCompleteContent(); got != want {
			t.Errorf("delete mismatch: got %q, want %q", got, want)
		}
		if err := b.FullValidate(); err != nil {
			t.Errorf("FullValidate after delete: %v", err)
		}
	})
}

// FuzzReplace checks Replace against slice-level arithmetic, or that a
// rejected replace never mutates the buffer.
func FuzzReplace(f *testing.F) {
	f.Add("hello world", 0, 5, "hi")
	f.Add("hello world", 6, 11, "universe")
	f.Add("abcdef", 2, 4, "XYZ")
	f.Add("a中b", 1, 4, "Z")

	f.Fuzz(func(t *testing.T, initial string, start, end int, replacement string) {
		if !utf8.ValidString(initial) || !utf8.ValidString(replacement) {
			return
		}
		b, err := NewFromString(initial)
		if err != nil {
			t.Fatalf("NewFromString: %v", err)
		}
		s := clampToBoundary(initial, start)
		e := clampToBoundary(initial, end)
		if e < s {
			s, e = e, s
		}

		old, err := b.Replace(ByteOffset(s), e-s, replacement)
		if err != nil {
			t.Fatalf("Replace [%d,%d): %v", s, e, err)
		}
		if old != initial[s:e] {
			t.Errorf("old text mismatch: got %q, want %q", old, initial[s:e])
		}
		want := initial[:s] + replacement + initial[e:]
		if got := b.GetCompleteContent(); got != want {
			t.Errorf("replace mismatch: got %q, want %q", got, want)
		}
		if err := b.FullValidate(); err != nil {
			t.Errorf("FullValidate after replace: %v", err)
		}
	})
}

// FuzzMultipleOperations runs a short sequence of operations and checks
// that the buffer never ends up with invalid UTF-8 or a drifted cursor,
// regardless of which boundary-snapped positions were hit.
func FuzzMultipleOperations(f *testing.F) {
	f.Add("hello", 0, 0, 5, "x")
	f.Add("hello", 1, 0, 3, "")
	f.Add("hello", 2, 1, 4, "abc")
	f.Add("日本語", 2, 0, 6, "x")

	f.Fuzz(func(t *testing.T, initial string, op int, pos1, pos2 int, text string) {
		if !utf8.ValidString(initial) || !utf8.ValidString(text) {
			return
		}
		b, err := NewFromString(initial)
		if err != nil {
			t.Fatalf("NewFromString: %v", err)
		}
		content := initial

		s := clampToBoundary(content, pos1)
		e := clampToBoundary(content, pos2)
		if e < s {
			s, e = e, s
		}

		switch op % 3 {
		case 0:
			if err := b.Insert(ByteOffset(s), text); err != nil {
				t.Fatalf("Insert: %v", err)
			}
		case 1:
			if _, err := b.Delete(ByteOffset(s), e-s); err != nil {
				t.Fatalf("Delete: %v", err)
			}
		case 2:
			if _, err := b.Replace(ByteOffset(s), e-s, text); err != nil {
				t.Fatalf("Replace: %v", err)
			}
		}

		got := b.GetCompleteContent()
		if !utf8.ValidString(got) {
			t.Errorf("result is not valid UTF-8: %q", got)
		}
		if int(b.Len()) != len(got) {
			t.Errorf("Len() = %d, want %d", b.Len(), len(got))
		}
		if err := b.FullValidate(); err != nil {
			t.Errorf("FullValidate: %v", err)
		}
	})
}
