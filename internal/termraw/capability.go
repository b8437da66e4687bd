package termraw

// ColorDepth is the number of distinct colors a terminal can render.
type ColorDepth int

const (
	ColorNone ColorDepth = iota
	Color16
	Color256
	ColorTruecolor
)

func (c ColorDepth) String() string {
	switch c {
	case ColorNone:
		return "none"
	case Color16:
		return "16"
	case Color256:
		return "256"
	case ColorTruecolor:
		return "truecolor"
	default:
		return "unknown"
	}
}

// IntegrationMode classifies how deeply the engine can integrate with
// the host terminal.
type IntegrationMode int

const (
	// ModeNone means non-interactive (a pipe or script) — the engine
	// should not engage interactive features at all.
	ModeNone IntegrationMode = iota
	// ModeMinimal means basic output only: no cursor control, no
	// styling, no interactive menus.
	ModeMinimal
	// ModeEnhanced means a capable stdout but a non-TTY stdin (editor-
	// hosted terminals, AI assistant shells): styling and menus work,
	// but raw-mode escape-sequence probing is unsafe.
	ModeEnhanced
	// ModeNative means a traditional TTY with full functionality.
	ModeNative
	// ModeMultiplexed means tmux/screen: Native plus pass-through and
	// escape-doubling conventions.
	ModeMultiplexed
)

func (m IntegrationMode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeMinimal:
		return "minimal"
	case ModeEnhanced:
		return "enhanced"
	case ModeNative:
		return "native"
	case ModeMultiplexed:
		return "multiplexed"
	default:
		return "unknown"
	}
}

// Capabilities is the terminal capability record from §3: determined
// once at engine start and cached, re-detectable on request.
type Capabilities struct {
	Mode              IntegrationMode
	ColorDepth        ColorDepth
	CursorPositioning bool
	Mouse             bool
	BracketedPaste    bool
	Unicode           bool
	Signature         string // identified terminal, e.g. "iTerm.app", "tmux", "vscode"
}
