package render

import "github.com/rivo/uniseg"

// PromptMetrics describes the on-screen geometry of a rendered prompt
// string: how many terminal lines it occupies and which column the
// edited command starts at.
type PromptMetrics struct {
	// Lines is the number of terminal lines the prompt occupies
	// (newline count + 1).
	Lines int

	// FinalLineWidth is the visible column width of the prompt's last
	// line, excluding Readline's \001/\002 ignore markers and any ANSI
	// escape sequences.
	FinalLineWidth int

	// CommandColumn is the 1-indexed column the edited command starts
	// at: FinalLineWidth + 1. It is deliberately derived from the
	// final line's width, not the widest line in a multi-line prompt —
	// only the last line shares a row with the command.
	CommandColumn int
}

// ComputePromptMetrics walks prompt, counting visible columns on its
// final line while skipping Readline's non-printing markers (\001,
// \002) and ANSI CSI sequences (ESC '[' ... through the first letter).
// Widths are measured with uniseg so combining marks and wide runes
// count correctly instead of one column per codepoint.
func ComputePromptMetrics(prompt string) PromptMetrics {
	m := PromptMetrics{Lines: 1}

	runes := []rune(prompt)
	var visible []rune

	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case r == '\001' || r == '\002':
			i++
		case r == '\x1b' && i+1 < len(runes) && runes[i+1] == '[':
			j := i + 2
			for j < len(runes) && !isCSIFinal(runes[j]) {
				j++
			}
			if j < len(runes) {
				j++ // consume the final letter
			}
			i = j
		case r == '\n':
			m.Lines++
			visible = visible[:0]
			i++
		default:
			visible = append(visible, r)
			i++
		}
	}

	lineWidth := uniseg.StringWidth(string(visible))
	m.FinalLineWidth = lineWidth
	m.CommandColumn = lineWidth + 1
	return m
}

func isCSIFinal(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}
