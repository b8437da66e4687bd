package syntax

import (
	"sync"

	"github.com/dshills/lle/internal/render"
)

// Highlighter tokenizes one line of shell input at a time, threading
// lexer state across lines for multi-line constructs. *Lexer is the
// only implementation; the shell is the only language this editor
// ever highlights.
type Highlighter interface {
	HighlightLine(line string, prev State) ([]Token, State)
}

// Provider bridges a Highlighter to the render pipeline's per-line
// style-span lookup, caching tokenization results so that redrawing
// an unedited line never re-lexes it.
type Provider struct {
	mu sync.RWMutex

	highlighter Highlighter
	theme       *Theme

	lineCache  map[uint32]*cachedLine
	stateCache map[uint32]State

	maxCacheSize int

	lineGetter func(line uint32) string
}

type cachedLine struct {
	text   string
	tokens []Token
	state  State
}

// NewProvider creates a highlight provider using h to tokenize lines
// and theme to resolve token styles. maxCache <= 0 selects a default.
func NewProvider(h Highlighter, theme *Theme, maxCache int) *Provider {
	if theme == nil {
		theme = DefaultTheme()
	}
	if maxCache <= 0 {
		maxCache = 1000
	}
	return &Provider{
		highlighter:  h,
		theme:        theme,
		lineCache:    make(map[uint32]*cachedLine),
		stateCache:   make(map[uint32]State),
		maxCacheSize: maxCache,
	}
}

// SetTheme replaces the active theme; cached tokens stay valid since
// style resolution happens at lookup time, not at tokenization time.
func (p *Provider) SetTheme(theme *Theme) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.theme = theme
}

// Theme returns the current theme.
func (p *Provider) Theme() *Theme {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.theme
}

// SetLineGetter sets the function used to fetch a line's current text
// by line number, normally backed by the gap buffer's line index.
func (p *Provider) SetLineGetter(getter func(line uint32) string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lineGetter = getter
}

// HighlightsForLine returns style spans for the given line, keyed off
// the active theme's token-to-style mapping.
func (p *Provider) HighlightsForLine(line uint32) []render.StyleSpan {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.highlighter == nil || p.lineGetter == nil {
		return nil
	}

	text := p.lineGetter(line)
	tokens := p.getTokensForLine(line, text)
	if len(tokens) == 0 {
		return nil
	}

	spans := make([]render.StyleSpan, 0, len(tokens))
	for _, tok := range tokens {
		style := p.theme.StyleForToken(tok.Type)
		spans = append(spans, render.StyleSpan{
			StartCol: tok.StartCol,
			EndCol:   tok.EndCol,
			Style:    style,
		})
	}
	return spans
}

// TokensForLine returns the raw tokens for a line, used by callers
// (e.g. completion) that need token boundaries, not just styling.
func (p *Provider) TokensForLine(line uint32) []Token {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.highlighter == nil || p.lineGetter == nil {
		return nil
	}
	text := p.lineGetter(line)
	return p.getTokensForLine(line, text)
}

// InvalidateLines drops cached highlighting for line and every line
// after it, since an edit's lexer-state change can ripple forward
// (§4.6 "widen to the enclosing construct").
func (p *Provider) InvalidateLines(startLine, endLine uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()

	toDelete := make([]uint32, 0)
	for line := range p.lineCache {
		if line >= startLine {
			toDelete = append(toDelete, line)
		}
	}
	for _, line := range toDelete {
		delete(p.lineCache, line)
		delete(p.stateCache, line)
	}
}

// InvalidateAll clears all cached highlighting, used on a full-buffer
// reparse (paste, history recall).
func (p *Provider) InvalidateAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clearCache()
}

func (p *Provider) getTokensForLine(line uint32, text string) []Token {
	if cached, ok := p.lineCache[line]; ok && cached.text == text {
		return cached.tokens
	}

	prev := State{Mode: LexerStateNormal}
	if line > 0 {
		if state, ok := p.stateCache[line-1]; ok {
			prev = state
		} else {
			prev = p.computeStateUpTo(line - 1)
		}
	}

	tokens, end := p.highlighter.HighlightLine(text, prev)
	p.cacheResult(line, text, tokens, end)
	return tokens
}

func (p *Provider) computeStateUpTo(targetLine uint32) State {
	var startLine uint32
	state := State{Mode: LexerStateNormal}

	for line := targetLine; line > 0; line-- {
		if s, ok := p.stateCache[line-1]; ok {
			startLine = line
			state = s
			break
		}
	}

	for line := startLine; line <= targetLine; line++ {
		text := p.lineGetter(line)
		_, state = p.highlighter.HighlightLine(text, state)
		p.stateCache[line] = state
	}
	return state
}

func (p *Provider) cacheResult(line uint32, text string, tokens []Token, state State) {
	if len(p.lineCache) >= p.maxCacheSize {
		p.evictCache()
	}
	p.lineCache[line] = &cachedLine{text: text, tokens: tokens, state: state}
	p.stateCache[line] = state
}

func (p *Provider) evictCache() {
	toRemove := len(p.lineCache) / 4
	if toRemove < 10 {
		toRemove = 10
	}
	removed := 0
	for line := range p.lineCache {
		delete(p.lineCache, line)
		delete(p.stateCache, line)
		removed++
		if removed >= toRemove {
			break
		}
	}
}

func (p *Provider) clearCache() {
	p.lineCache = make(map[uint32]*cachedLine)
	p.stateCache = make(map[uint32]State)
}
