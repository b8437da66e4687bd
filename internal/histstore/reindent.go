package histstore

import "strings"

const indentUnit = "  " // 2 spaces per nesting depth, per §4.5

var dedentKeywords = map[string]bool{
	"do":   true,
	"then": true,
	"done": true,
	"fi":   true,
	"esac": true,
	"else": true,
	"elif": true,
	"}":    true,
}

var sameLevelKeywords = map[string]bool{
	"do":   true,
	"then": true,
	"else": true,
	"elif": true,
}

var indentKeywords = map[string]bool{
	"for":      true,
	"while":    true,
	"until":    true,
	"if":       true,
	"case":     true,
	"function": true,
}

// endsOpeningBlock reports whether a line's trailing token opens a new
// indented block (a bare "do"/"then" on its own line, or a trailing
// "{").
func endsOpeningBlock(fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	last := fields[len(fields)-1]
	return last == "do" || last == "then" || last == "{"
}

// Reindent re-applies computed indentation to a multi-line command: it
// strips each line's original leading whitespace and reapplies 2-space
// indentation per nesting depth, aligning then/else/elif/fi with if and
// done with for/while, per §4.5 step 3. Reindent is independent of
// Analyze's Structure tree — it tracks depth directly from keywords
// line by line, which is sufficient for indentation and simpler than
// walking the tree.
func Reindent(content string) (string, bool) {
	lines := strings.Split(content, "\n")
	if len(lines) <= 1 {
		return content, true
	}

	var out strings.Builder
	depth := 0

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if i > 0 {
			out.WriteByte('\n')
		}
		if trimmed == "" {
			continue
		}

		fields := strings.Fields(trimmed)
		first := fields[0]

		lineDepth := depth
		if dedentKeywords[first] {
			lineDepth = depth - 1
			if lineDepth < 0 {
				lineDepth = 0
			}
			if sameLevelKeywords[first] {
				depth = lineDepth
			}
		}

		out.WriteString(strings.Repeat(indentUnit, lineDepth))
		out.WriteString(trimmed)

		switch {
		case first == "done" || first == "fi" || first == "esac":
			depth = lineDepth
		case sameLevelKeywords[first]:
			depth = lineDepth + 1
		case indentKeywords[first] || endsOpeningBlock(fields):
			depth = lineDepth + 1
		default:
			depth = lineDepth
		}
	}

	return out.String(), true
}

// Recall reconstructs the text and cursor placement for loading entry
// into the buffer, per §4.5 steps 1-4: prefer the original multi-line
// form, run structure analysis (caching it on the entry) and
// re-indentation for multi-line entries, and fall back to the raw
// content if re-indentation cannot be applied.
//
// cursorAtEnd reports whether the cursor should land at the end of the
// loaded text (multiline recall) or the start (single-line recall).
func Recall(e *Entry) (text string, cursorAtEnd bool) {
	content := e.content()
	if !e.IsMultiline() {
		return content, false
	}

	if e.Structure == nil {
		e.Structure = Analyze(content)
	}

	if reindented, ok := Reindent(content); ok {
		return reindented, true
	}
	return content, true
}
