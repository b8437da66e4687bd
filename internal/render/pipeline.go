package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/lle/internal/gapbuf"
)

// TokenStyler is the subset of internal/syntax.Provider the pipeline
// needs: styled spans for one buffer line. Declared here rather than
// imported to avoid a render->syntax->render import cycle (syntax
// already imports render.Style for its theme).
type TokenStyler interface {
	HighlightsForLine(line uint32) []StyleSpan
	SetLineGetter(getter func(line uint32) string)
	InvalidateAll()
}

// Pipeline turns buffer content and a prompt into terminal writes,
// per the editor's render contract: extract content, tokenize, style,
// measure the prompt, compare against the last frame and write nothing
// when nothing visible changed, otherwise redraw every visible line,
// and finish with one absolute cursor placement.
type Pipeline struct {
	styler     TokenStyler
	theme      ThemeStyler
	viewport   *Viewport
	colorDepth ColorDepth
	eastAsian  bool

	last       frame
	hasLast    bool
	buf        *gapbuf.Buffer
	bufVersion gapbuf.RevisionID
}

// ThemeStyler abstracts internal/syntax.Theme's default/fallback
// style, used for prompt text which the shell lexer never tokenizes.
type ThemeStyler interface {
	StyleForScope(scope string) Style
}

type frame struct {
	content     Content
	cursorLine  uint32
	cursorCol   int
	promptWidth int
}

// NewPipeline builds a render pipeline. styler and theme may be nil
// for a plain, unstyled line editor; viewport must not be nil.
//
// The viewport's margins are reset to NoMargins: the teacher's default
// (5 lines top/bottom, 10 columns left/right) is sized for a
// full-screen multi-region editor keeping the cursor away from the
// edges of a large pane. A line editor's prompt line has no such
// concept — ScrollToReveal should only scroll when the cursor
// actually leaves the visible area, not pre-emptively.
func NewPipeline(styler TokenStyler, theme ThemeStyler, viewport *Viewport) *Pipeline {
	if viewport != nil {
		viewport.SetMarginsFromConfig(NoMargins())
	}
	return &Pipeline{
		styler:     styler,
		theme:      theme,
		viewport:   viewport,
		colorDepth: DepthTruecolor,
	}
}

// SetColorDepth adapts subsequent renders to the terminal's color
// capability, downgrading theme colors as needed (step 3).
func (p *Pipeline) SetColorDepth(depth ColorDepth) { p.colorDepth = depth }

// SetEastAsianWidth toggles x/text/width-aware column counting for
// CJK and fullwidth runes.
func (p *Pipeline) SetEastAsianWidth(on bool) { p.eastAsian = on }

// displayColumn converts byteCol, a byte offset into line (gapbuf's
// Point.Column is measured in bytes, not codepoints or columns), into
// a terminal column, accounting for double-width runes per the
// pipeline's east-Asian-width setting (step 8's cursor-column
// computation).
func (p *Pipeline) displayColumn(line string, byteCol int) int {
	if byteCol > len(line) {
		byteCol = len(line)
	}
	col := 0
	for _, r := range line[:byteCol] {
		col += RuneDisplayWidth(r, p.eastAsian)
	}
	return col
}

// Reset forces the next Render to perform a full redraw and
// invalidates any cached syntax highlighting, used after a resize or
// when switching buffers.
func (p *Pipeline) Reset() {
	p.hasLast = false
	if p.styler != nil {
		p.styler.InvalidateAll()
	}
}

// Render executes the eight-step render pipeline against buf and
// writes the result to w. prompt is the (possibly multi-line, possibly
// \001/\002-wrapped) prompt string.
func (p *Pipeline) Render(w io.Writer, prompt string, buf *gapbuf.Buffer) error {
	// Step 1: extract content as a length-carrying value, never a
	// terminator-delimited byte slice.
	content := NewContent(buf.GetCompleteContent())
	cursor := buf.Cursor()
	point := buf.OffsetToPoint(cursor.Offset)

	if p.buf != buf || p.bufVersion != buf.Revision() {
		if p.styler != nil {
			p.styler.SetLineGetter(lineGetter(buf))
		}
		p.buf = buf
		p.bufVersion = buf.Revision()
	}

	// Step 4: prompt metrics, independent of buffer content.
	metrics := ComputePromptMetrics(prompt)

	var cursorLineText string
	if lines := content.Lines(); point.Line >= 0 && point.Line < len(lines) {
		cursorLineText = lines[point.Line]
	}
	cursorDisplayCol := p.displayColumn(cursorLineText, point.Column)

	next := frame{
		content:     content,
		cursorLine:  uint32(point.Line),
		cursorCol:   cursorDisplayCol,
		promptWidth: metrics.CommandColumn,
	}

	// Step 6: no-op detection. Skip all output if nothing the user can
	// see has changed; this is where a missing logical-length contract
	// on Content would silently corrupt the comparison.
	if p.hasLast && p.last.content.Equal(next.content) &&
		p.last.cursorLine == next.cursorLine && p.last.cursorCol == next.cursorCol &&
		p.last.promptWidth == next.promptWidth {
		return nil
	}

	lineCount := uint32(buf.LineCount())
	if p.viewport != nil {
		p.viewport.SetMaxLine(lineCount)
		p.viewport.ScrollToReveal(next.cursorLine, next.cursorCol, false)
	}

	if err := p.writeFrame(w, prompt, metrics, buf, content, lineCount); err != nil {
		return err
	}

	// Step 8: absolute cursor positioning. Relative movement is never
	// used; every redraw recomputes the absolute column from the
	// cursor's display column on its logical line, offset by the
	// prompt's command column on the first line, so drift can never
	// accumulate across redraws.
	col := metrics.CommandColumn
	if next.cursorLine > 0 {
		col = 1 + next.cursorCol
	} else {
		col = metrics.CommandColumn + next.cursorCol
	}
	if _, err := fmt.Fprintf(w, "\x1b[%dG", col); err != nil {
		return err
	}

	p.last = next
	p.hasLast = true
	return nil
}

// writeFrame emits step 7: clear-and-redraw of every visible line,
// prompt on the first line and styled content following it.
func (p *Pipeline) writeFrame(w io.Writer, prompt string, metrics PromptMetrics, buf *gapbuf.Buffer, content Content, lineCount uint32) error {
	start, end := uint32(0), lineCount-1
	if p.viewport != nil {
		start, end = p.viewport.VisibleLineRange()
	}

	var out strings.Builder
	out.WriteString("\r\x1b[K")
	out.WriteString(prompt)

	lines := content.Lines()
	for ln := start; ln <= end && int(ln) < len(lines); ln++ {
		if ln > start {
			out.WriteString("\r\n\x1b[K")
		}
		out.WriteString(p.styledLine(ln, lines[ln]))
	}

	_, err := io.WriteString(w, out.String())
	return err
}

// styledLine renders one buffer line through the syntax highlighter,
// falling back to plain text when no highlighter is configured.
// StyleSpan.StartCol/EndCol are byte offsets into text, matching the
// lexer's own Token.StartCol/EndCol convention, so spans are applied
// via byte slicing rather than a rune conversion.
func (p *Pipeline) styledLine(line uint32, text string) string {
	if p.styler == nil {
		return text
	}
	spans := p.styler.HighlightsForLine(line)
	if len(spans) == 0 {
		return text
	}

	var out strings.Builder
	pos := uint32(0)
	for _, span := range spans {
		if span.StartCol > pos && int(span.StartCol) <= len(text) {
			out.WriteString(text[pos:span.StartCol])
		}
		end := span.EndCol
		if int(end) > len(text) {
			end = uint32(len(text))
		}
		if span.StartCol >= end || int(span.StartCol) > len(text) {
			continue
		}
		out.WriteString(p.sgr(span.Style))
		out.WriteString(text[span.StartCol:end])
		out.WriteString(sgrReset)
		pos = end
	}
	if int(pos) < len(text) {
		out.WriteString(text[pos:])
	}
	return out.String()
}

const sgrReset = "\x1b[0m"

// sgr renders style as an SGR escape sequence, downgrading colors to
// the pipeline's configured depth first (step 3).
func (p *Pipeline) sgr(style Style) string {
	var codes []string

	if style.Attributes.Has(AttrBold) {
		codes = append(codes, "1")
	}
	if style.Attributes.Has(AttrDim) {
		codes = append(codes, "2")
	}
	if style.Attributes.Has(AttrItalic) {
		codes = append(codes, "3")
	}
	if style.Attributes.Has(AttrUnderline) {
		codes = append(codes, "4")
	}
	if style.Attributes.Has(AttrBlink) {
		codes = append(codes, "5")
	}
	if style.Attributes.Has(AttrReverse) {
		codes = append(codes, "7")
	}
	if style.Attributes.Has(AttrStrikethrough) {
		codes = append(codes, "9")
	}

	if fg := Downgrade(style.Foreground, p.colorDepth); !fg.IsDefault() {
		codes = append(codes, sgrColor(fg, true))
	}
	if bg := Downgrade(style.Background, p.colorDepth); !bg.IsDefault() {
		codes = append(codes, sgrColor(bg, false))
	}

	if len(codes) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

func sgrColor(c Color, foreground bool) string {
	base := 38
	if !foreground {
		base = 48
	}
	if c.Indexed {
		return fmt.Sprintf("%d;5;%d", base, c.R)
	}
	return fmt.Sprintf("%d;2;%d;%d;%d", base, c.R, c.G, c.B)
}

func lineGetter(buf *gapbuf.Buffer) func(uint32) string {
	return func(line uint32) string {
		n := buf.LineCount()
		if int(line) >= n {
			return ""
		}
		start := buf.LineStart(int(line))
		end := buf.LineEnd(int(line))
		text, err := buf.TextRange(start, end)
		if err != nil {
			return ""
		}
		return text
	}
}
