package lle

import (
	"io"
	"log/slog"

	"github.com/dshills/lle/internal/syntax"
)

// Config configures a new Engine. The zero value is not usable; use
// NewConfig for defaults and override only what the host cares about,
// the way the teacher's Options struct is built up field by field
// rather than via a constructor with a dozen parameters.
type Config struct {
	// InputFD is the file descriptor raw mode is applied to, normally
	// os.Stdin.Fd(). Required for an interactive terminal session;
	// leave zero and set Input/Output explicitly for tests or a
	// non-TTY host.
	InputFD int

	// Input and Output are the byte streams ReadLine reads keystrokes
	// from and writes rendered frames to. Defaults to os.Stdin and
	// os.Stdout when nil.
	Input  io.Reader
	Output io.Writer

	// History, when non-nil, backs the in-memory history store with
	// durable storage: entries load at Init, append after every
	// accepted line, and flush at Shutdown. The engine has no opinion
	// on the on-disk format; this is a host-supplied collaborator
	// per the external-interfaces contract. Nil disables persistence
	// (in-memory only for the session's lifetime).
	History HistoryPersistence

	// HistoryCapacity bounds the in-memory history ring buffer.
	HistoryCapacity int

	// KeymapPreset, when non-empty, is a TOML file of key-sequence to
	// action-name bindings loaded over the built-in default keymap
	// (see loadKeymapPreset in keymap_preset.go for the loader).
	KeymapPreset string

	// Theme selects a bundled syntax theme by name ("default",
	// "solarized-dark", "light"); unknown names fall back to default.
	Theme string

	// TabWidth is the render-time tab expansion width. Reserved:
	// internal/bufset.Manager constructs its buffers with no options,
	// so this does not yet reach gapbuf.Buffer's own TabWidth setting.
	TabWidth int

	// MaxUndoSequences bounds the change tracker's undo history.
	// Reserved for the same reason as TabWidth.
	MaxUndoSequences int

	// AutoScroll is not read by the engine: the render pipeline always
	// scrolls the viewport to keep the cursor's logical line visible.
	AutoScroll bool

	// EastAsianWidth enables x/text/width-aware column counting for
	// CJK and fullwidth runes.
	EastAsianWidth bool

	// Logger receives structured diagnostics (init failures, raw-mode
	// transitions, read-loop errors). Nil defaults to a discard logger,
	// matching the teacher's own silent-unless-configured stance.
	Logger *slog.Logger
}

// NewConfig returns a Config populated with the engine's defaults.
func NewConfig() Config {
	return Config{
		HistoryCapacity:  1000,
		Theme:            "default",
		TabWidth:         4,
		MaxUndoSequences: 100,
		AutoScroll:       true,
	}
}

func (c Config) themeOrDefault() *syntax.Theme {
	switch c.Theme {
	case "solarized-dark":
		return syntax.SolarizedDarkTheme()
	case "light":
		return syntax.LightTheme()
	default:
		return syntax.DefaultTheme()
	}
}
