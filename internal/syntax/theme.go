package syntax

import (
	"github.com/dshills/lle/internal/render"
)

// Theme maps shell token families to display styles.
type Theme struct {
	Name string

	Background    render.Color
	Foreground    render.Color
	Selection     render.Color
	Cursor        render.Color
	LineHighlight render.Color

	TokenStyles map[TokenType]render.Style
	ScopeStyles map[string]render.Style
}

// StyleForToken returns the style for a token type, falling back to
// the theme's plain foreground when the type has no entry.
func (t *Theme) StyleForToken(tokenType TokenType) render.Style {
	if style, ok := t.TokenStyles[tokenType]; ok {
		return style
	}
	return render.Style{Foreground: t.Foreground, Background: render.ColorDefault}
}

// StyleForScope resolves a dot-segmented scope string (as produced by
// TokenType.String(), e.g. "operator.redirect") to a style, stripping
// trailing segments until a match is found.
func (t *Theme) StyleForScope(scope string) render.Style {
	if style, ok := t.ScopeStyles[scope]; ok {
		return style
	}
	if tokenType := TokenTypeFromString(scope); tokenType != TokenNone {
		if style, ok := t.TokenStyles[tokenType]; ok {
			return style
		}
	}
	for len(scope) > 0 {
		if style, ok := t.ScopeStyles[scope]; ok {
			return style
		}
		cut := -1
		for i := len(scope) - 1; i >= 0; i-- {
			if scope[i] == '.' {
				cut = i
				break
			}
		}
		if cut < 0 {
			break
		}
		scope = scope[:cut]
	}
	return render.Style{Foreground: t.Foreground, Background: render.ColorDefault}
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() *Theme {
	return &Theme{
		Name:          "Default Dark",
		Background:    render.ColorFromRGB(30, 30, 30),
		Foreground:    render.ColorFromRGB(212, 212, 212),
		Selection:     render.ColorFromRGB(64, 64, 128),
		Cursor:        render.ColorFromRGB(255, 255, 255),
		LineHighlight: render.ColorFromRGB(40, 40, 40),
		TokenStyles:   defaultDarkTokenStyles(),
		ScopeStyles:   make(map[string]render.Style),
	}
}

// SolarizedDarkTheme returns the built-in Solarized Dark theme.
func SolarizedDarkTheme() *Theme {
	return &Theme{
		Name:          "Solarized Dark",
		Background:    render.ColorFromRGB(0, 43, 54),
		Foreground:    render.ColorFromRGB(131, 148, 150),
		Selection:     render.ColorFromRGB(7, 54, 66),
		Cursor:        render.ColorFromRGB(131, 148, 150),
		LineHighlight: render.ColorFromRGB(7, 54, 66),
		TokenStyles:   solarizedDarkTokenStyles(),
		ScopeStyles:   make(map[string]render.Style),
	}
}

// LightTheme returns the built-in light theme.
func LightTheme() *Theme {
	return &Theme{
		Name:          "Light",
		Background:    render.ColorFromRGB(255, 255, 255),
		Foreground:    render.ColorFromRGB(0, 0, 0),
		Selection:     render.ColorFromRGB(173, 214, 255),
		Cursor:        render.ColorFromRGB(0, 0, 0),
		LineHighlight: render.ColorFromRGB(245, 245, 245),
		TokenStyles:   lightTokenStyles(),
		ScopeStyles:   make(map[string]render.Style),
	}
}

// defaultDarkTokenStyles maps shell token families to the default
// dark palette.
func defaultDarkTokenStyles() map[TokenType]render.Style {
	comment := render.ColorFromRGB(106, 153, 85)
	keyword := render.ColorFromRGB(86, 156, 214)
	command := render.ColorFromRGB(220, 220, 170)
	builtin := render.ColorFromRGB(78, 201, 176)
	fn := render.ColorFromRGB(220, 220, 170)
	str := render.ColorFromRGB(206, 145, 120)
	number := render.ColorFromRGB(181, 206, 168)
	variable := render.ColorFromRGB(156, 220, 254)
	expansion := render.ColorFromRGB(197, 134, 192)
	operator := render.ColorFromRGB(212, 212, 212)
	path := render.ColorFromRGB(152, 195, 121)
	glob := render.ColorFromRGB(224, 108, 117)
	option := render.ColorFromRGB(152, 190, 242)
	invalid := render.ColorFromRGB(244, 71, 71)

	return map[TokenType]render.Style{
		TokenComment: render.NewStyle(comment).Italic(),
		TokenShebang: render.NewStyle(comment).Bold(),

		TokenWord:          render.NewStyle(render.ColorFromRGB(212, 212, 212)),
		TokenCommand:       render.NewStyle(command),
		TokenBuiltin:       render.NewStyle(builtin),
		TokenKeyword:       render.NewStyle(keyword).Bold(),
		TokenFunctionName:  render.NewStyle(fn).Underline(),
		TokenNumber:        render.NewStyle(number),
		TokenCommandOption: render.NewStyle(option),

		TokenVariable:             render.NewStyle(variable),
		TokenParameterExpansion:   render.NewStyle(expansion),
		TokenCommandSubstitution:  render.NewStyle(expansion),
		TokenArithmeticExpansion:  render.NewStyle(expansion),

		TokenStringSingle:   render.NewStyle(str),
		TokenStringDouble:   render.NewStyle(str),
		TokenStringBacktick: render.NewStyle(str),
		TokenEscape:         render.NewStyle(render.ColorFromRGB(215, 186, 125)),
		TokenHeredoc:        render.NewStyle(str).Dim(),

		TokenOperatorPipe:       render.NewStyle(operator).Bold(),
		TokenOperatorRedirect:   render.NewStyle(operator).Bold(),
		TokenOperatorLogical:    render.NewStyle(operator).Bold(),
		TokenOperatorAssignment: render.NewStyle(operator),
		TokenOperatorComparison: render.NewStyle(operator),
		TokenOperatorArithmetic: render.NewStyle(operator),

		TokenPathAbsolute: render.NewStyle(path),
		TokenPathRelative: render.NewStyle(path),
		TokenPathHome:     render.NewStyle(path),
		TokenGlob:         render.NewStyle(glob),

		TokenErrorUnmatchedQuote:   render.NewStyle(invalid).Underline(),
		TokenErrorUnmatchedBracket: render.NewStyle(invalid).Underline(),
		TokenErrorInvalidSequence:  render.NewStyle(invalid).Bold(),
	}
}

// solarizedDarkTokenStyles maps shell token families to the
// Solarized Dark palette.
func solarizedDarkTokenStyles() map[TokenType]render.Style {
	base01 := render.ColorFromRGB(88, 110, 117)
	base0 := render.ColorFromRGB(131, 148, 150)
	yellow := render.ColorFromRGB(181, 137, 0)
	orange := render.ColorFromRGB(203, 75, 22)
	red := render.ColorFromRGB(220, 50, 47)
	magenta := render.ColorFromRGB(211, 54, 130)
	violet := render.ColorFromRGB(108, 113, 196)
	blue := render.ColorFromRGB(38, 139, 210)
	cyan := render.ColorFromRGB(42, 161, 152)
	green := render.ColorFromRGB(133, 153, 0)

	return map[TokenType]render.Style{
		TokenComment: render.NewStyle(base01).Italic(),
		TokenShebang: render.NewStyle(base01).Bold(),

		TokenWord:          render.NewStyle(base0),
		TokenCommand:       render.NewStyle(blue),
		TokenBuiltin:       render.NewStyle(cyan),
		TokenKeyword:       render.NewStyle(green).Bold(),
		TokenFunctionName:  render.NewStyle(blue).Underline(),
		TokenNumber:        render.NewStyle(magenta),
		TokenCommandOption: render.NewStyle(violet),

		TokenVariable:            render.NewStyle(cyan),
		TokenParameterExpansion:  render.NewStyle(cyan),
		TokenCommandSubstitution: render.NewStyle(violet),
		TokenArithmeticExpansion: render.NewStyle(violet),

		TokenStringSingle:   render.NewStyle(yellow),
		TokenStringDouble:   render.NewStyle(yellow),
		TokenStringBacktick: render.NewStyle(yellow),
		TokenEscape:         render.NewStyle(orange),
		TokenHeredoc:        render.NewStyle(yellow).Dim(),

		TokenOperatorPipe:       render.NewStyle(green),
		TokenOperatorRedirect:   render.NewStyle(green),
		TokenOperatorLogical:    render.NewStyle(green),
		TokenOperatorAssignment: render.NewStyle(base0),
		TokenOperatorComparison: render.NewStyle(base0),
		TokenOperatorArithmetic: render.NewStyle(base0),

		TokenPathAbsolute: render.NewStyle(green),
		TokenPathRelative: render.NewStyle(green),
		TokenPathHome:     render.NewStyle(green),
		TokenGlob:         render.NewStyle(orange),

		TokenErrorUnmatchedQuote:   render.NewStyle(red).Underline(),
		TokenErrorUnmatchedBracket: render.NewStyle(red).Underline(),
		TokenErrorInvalidSequence:  render.NewStyle(red).Bold(),
	}
}

// lightTokenStyles maps shell token families to the light palette.
func lightTokenStyles() map[TokenType]render.Style {
	comment := render.ColorFromRGB(0, 128, 0)
	keyword := render.ColorFromRGB(0, 0, 255)
	command := render.ColorFromRGB(121, 94, 38)
	builtin := render.ColorFromRGB(38, 127, 153)
	str := render.ColorFromRGB(163, 21, 21)
	number := render.ColorFromRGB(9, 134, 88)
	variable := render.ColorFromRGB(0, 16, 128)
	expansion := render.ColorFromRGB(111, 66, 193)
	operator := render.ColorFromRGB(0, 0, 0)
	path := render.ColorFromRGB(0, 90, 40)
	glob := render.ColorFromRGB(175, 0, 0)
	option := render.ColorFromRGB(0, 92, 153)
	invalid := render.ColorFromRGB(205, 49, 49)

	return map[TokenType]render.Style{
		TokenComment: render.NewStyle(comment).Italic(),
		TokenShebang: render.NewStyle(comment).Bold(),

		TokenWord:          render.NewStyle(render.ColorFromRGB(0, 0, 0)),
		TokenCommand:       render.NewStyle(command),
		TokenBuiltin:       render.NewStyle(builtin),
		TokenKeyword:       render.NewStyle(keyword).Bold(),
		TokenFunctionName:  render.NewStyle(command).Underline(),
		TokenNumber:        render.NewStyle(number),
		TokenCommandOption: render.NewStyle(option),

		TokenVariable:            render.NewStyle(variable),
		TokenParameterExpansion:  render.NewStyle(expansion),
		TokenCommandSubstitution: render.NewStyle(expansion),
		TokenArithmeticExpansion: render.NewStyle(expansion),

		TokenStringSingle:   render.NewStyle(str),
		TokenStringDouble:   render.NewStyle(str),
		TokenStringBacktick: render.NewStyle(str),
		TokenEscape:         render.NewStyle(render.ColorFromRGB(205, 49, 49)),
		TokenHeredoc:        render.NewStyle(str).Dim(),

		TokenOperatorPipe:       render.NewStyle(operator).Bold(),
		TokenOperatorRedirect:   render.NewStyle(operator).Bold(),
		TokenOperatorLogical:    render.NewStyle(operator).Bold(),
		TokenOperatorAssignment: render.NewStyle(operator),
		TokenOperatorComparison: render.NewStyle(operator),
		TokenOperatorArithmetic: render.NewStyle(operator),

		TokenPathAbsolute: render.NewStyle(path),
		TokenPathRelative: render.NewStyle(path),
		TokenPathHome:     render.NewStyle(path),
		TokenGlob:         render.NewStyle(glob),

		TokenErrorUnmatchedQuote:   render.NewStyle(invalid).Underline(),
		TokenErrorUnmatchedBracket: render.NewStyle(invalid).Underline(),
		TokenErrorInvalidSequence:  render.NewStyle(invalid).Bold(),
	}
}

// ThemeRegistry holds the available themes and tracks which is active.
type ThemeRegistry struct {
	themes  map[string]*Theme
	current *Theme
}

// NewThemeRegistry creates a registry pre-loaded with the built-in
// themes, defaulting to Default Dark.
func NewThemeRegistry() *ThemeRegistry {
	r := &ThemeRegistry{themes: make(map[string]*Theme)}
	r.Register(DefaultTheme())
	r.Register(SolarizedDarkTheme())
	r.Register(LightTheme())
	r.current = r.themes["Default Dark"]
	return r
}

// Register adds or replaces a theme.
func (r *ThemeRegistry) Register(theme *Theme) {
	r.themes[theme.Name] = theme
}

// Get returns a theme by name.
func (r *ThemeRegistry) Get(name string) (*Theme, bool) {
	t, ok := r.themes[name]
	return t, ok
}

// Current returns the active theme.
func (r *ThemeRegistry) Current() *Theme {
	return r.current
}

// SetCurrent activates the named theme, reporting whether it exists.
func (r *ThemeRegistry) SetCurrent(name string) bool {
	if t, ok := r.themes[name]; ok {
		r.current = t
		return true
	}
	return false
}

// Names returns every registered theme name.
func (r *ThemeRegistry) Names() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	return names
}
