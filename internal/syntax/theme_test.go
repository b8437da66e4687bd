package syntax

import (
	"testing"

	"github.com/dshills/lle/internal/render"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	if theme.Name != "Default Dark" {
		t.Errorf("DefaultTheme().Name = %q, want %q", theme.Name, "Default Dark")
	}
	if theme.Background == render.ColorDefault {
		t.Error("DefaultTheme().Background should not be default")
	}
	if theme.Foreground == render.ColorDefault {
		t.Error("DefaultTheme().Foreground should not be default")
	}
	if len(theme.TokenStyles) == 0 {
		t.Error("DefaultTheme() should have token styles")
	}

	tokensToCheck := []TokenType{
		TokenComment,
		TokenStringDouble,
		TokenKeyword,
		TokenCommand,
		TokenBuiltin,
		TokenVariable,
	}
	for _, tt := range tokensToCheck {
		if _, ok := theme.TokenStyles[tt]; !ok {
			t.Errorf("DefaultTheme() missing style for %v", tt)
		}
	}
}

func TestThemeStyleForToken(t *testing.T) {
	theme := DefaultTheme()

	style := theme.StyleForToken(TokenComment)
	if style.Foreground == render.ColorDefault {
		t.Error("StyleForToken(TokenComment) should return a styled foreground")
	}

	style = theme.StyleForToken(TokenNone)
	if style.Foreground != theme.Foreground {
		t.Error("StyleForToken for missing token should return theme foreground")
	}
}

func TestThemeStyleForScope(t *testing.T) {
	theme := DefaultTheme()

	style := theme.StyleForScope("comment")
	if style.Foreground == render.ColorDefault {
		t.Error("StyleForScope('comment') should return styled foreground")
	}

	style = theme.StyleForScope("operator.pipe")
	if style.Foreground == render.ColorDefault {
		t.Error("StyleForScope('operator.pipe') should return styled foreground")
	}

	style = theme.StyleForScope("nonexistent.scope.here")
	if style.Foreground != theme.Foreground {
		t.Error("StyleForScope for unknown scope should return theme foreground")
	}
}

func TestBuiltInThemes(t *testing.T) {
	themes := []*Theme{
		DefaultTheme(),
		SolarizedDarkTheme(),
		LightTheme(),
	}

	for _, theme := range themes {
		t.Run(theme.Name, func(t *testing.T) {
			if theme.Name == "" {
				t.Error("theme name should not be empty")
			}
			if len(theme.TokenStyles) == 0 {
				t.Error("theme should have token styles")
			}
		})
	}
}

func TestThemeRegistry(t *testing.T) {
	registry := NewThemeRegistry()

	t.Run("built-in themes registered", func(t *testing.T) {
		names := registry.Names()
		if len(names) < 3 {
			t.Errorf("expected at least 3 built-in themes, got %d", len(names))
		}

		for _, name := range []string{"Default Dark", "Solarized Dark", "Light"} {
			theme, ok := registry.Get(name)
			if !ok {
				t.Errorf("expected theme %q to be registered", name)
			}
			if theme.Name != name {
				t.Errorf("Theme.Name = %q, want %q", theme.Name, name)
			}
		}
	})

	t.Run("current theme", func(t *testing.T) {
		current := registry.Current()
		if current == nil {
			t.Fatal("Current() should not return nil")
		}
		if current.Name != "Default Dark" {
			t.Errorf("default current theme should be 'Default Dark', got %q", current.Name)
		}
	})

	t.Run("set current", func(t *testing.T) {
		ok := registry.SetCurrent("Light")
		if !ok {
			t.Error("SetCurrent('Light') should succeed")
		}
		if registry.Current().Name != "Light" {
			t.Error("current theme should be Light after SetCurrent")
		}

		ok = registry.SetCurrent("NonExistent")
		if ok {
			t.Error("SetCurrent('NonExistent') should fail")
		}
		if registry.Current().Name != "Light" {
			t.Error("current should remain Light after failed SetCurrent")
		}
	})

	t.Run("register custom theme", func(t *testing.T) {
		custom := &Theme{
			Name:        "Custom",
			Background:  render.ColorFromRGB(0, 0, 0),
			Foreground:  render.ColorFromRGB(255, 255, 255),
			TokenStyles: make(map[TokenType]render.Style),
		}

		registry.Register(custom)

		got, ok := registry.Get("Custom")
		if !ok {
			t.Error("custom theme should be retrievable after registration")
		}
		if got.Name != "Custom" {
			t.Errorf("got theme name %q, want 'Custom'", got.Name)
		}
	})
}

func TestThemeColorsDistinguishable(t *testing.T) {
	theme := SolarizedDarkTheme()

	commentStyle := theme.StyleForToken(TokenComment)
	keywordStyle := theme.StyleForToken(TokenKeyword)
	if commentStyle.Foreground == keywordStyle.Foreground {
		t.Error("comment and keyword colors should be different")
	}

	stringStyle := theme.StyleForToken(TokenStringDouble)
	commandStyle := theme.StyleForToken(TokenCommand)
	if stringStyle.Foreground == commandStyle.Foreground {
		t.Error("string and command colors should be different")
	}
}

func TestThemeStyleAttributes(t *testing.T) {
	theme := DefaultTheme()

	commentStyle := theme.StyleForToken(TokenComment)
	if !commentStyle.Attributes.Has(render.AttrItalic) {
		t.Error("comment style should be italic")
	}

	keywordStyle := theme.StyleForToken(TokenKeyword)
	if !keywordStyle.Attributes.Has(render.AttrBold) {
		t.Error("keyword style should be bold")
	}
}
