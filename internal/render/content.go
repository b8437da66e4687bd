package render

import "strings"

// Content is the text handed to the render pipeline for a single
// redraw pass. It carries its own logical length in codepoints rather
// than relying on a terminator byte: two Content values compare equal
// only when their lengths and text agree, so a render pass can never
// mistake a shorter buffer for a longer one that happens to share a
// byte prefix. Comparisons must use Len(), not len(string) — runes
// beyond ASCII make those different numbers, and conflating them is
// exactly the bug a C-style null-terminated buffer invites.
type Content struct {
	text   string
	length int // codepoints, not bytes
}

// NewContent wraps s as render content, counting codepoints once up
// front so repeated comparisons during no-op detection stay cheap.
func NewContent(s string) Content {
	return Content{text: s, length: len([]rune(s))}
}

// String returns the underlying text.
func (c Content) String() string { return c.text }

// Len returns the logical length in codepoints.
func (c Content) Len() int { return c.length }

// IsEmpty reports whether the content has no codepoints.
func (c Content) IsEmpty() bool { return c.length == 0 }

// Equal reports whether two Content values hold the same text. The
// length check is a cheap rejection before the byte comparison; it is
// not an optimization shortcut that can be skipped, since it is what
// makes Equal well-defined for strings whose byte length and codepoint
// length diverge.
func (c Content) Equal(other Content) bool {
	return c.length == other.length && c.text == other.text
}

// Lines splits the content on newlines, returning one element for a
// single logical line.
func (c Content) Lines() []string {
	if c.text == "" {
		return []string{""}
	}
	return strings.Split(c.text, "\n")
}
