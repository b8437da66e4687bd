package termraw

import "strings"

// Lookup resolves an environment variable, mirroring os.LookupEnv's
// signature so Detect can be tested without touching the real
// environment.
type Lookup func(key string) (string, bool)

func (l Lookup) get(key string) string {
	v, _ := l(key)
	return v
}

// Detect classifies a terminal from environment-variable signatures,
// per §4.4's adaptive terminal integration table. stdinTTY/stdoutTTY
// should come from term.IsTerminal on the respective file descriptors.
func Detect(env Lookup, stdinTTY, stdoutTTY bool) Capabilities {
	mode := classifyMode(env, stdinTTY, stdoutTTY)
	caps := Capabilities{
		Mode:       mode,
		ColorDepth: classifyColor(env, mode),
		Signature:  classifySignature(env),
		Unicode:    classifyUnicode(env),
	}

	switch mode {
	case ModeNone, ModeMinimal:
		caps.CursorPositioning = false
		caps.Mouse = false
		caps.BracketedPaste = false
	case ModeEnhanced:
		caps.CursorPositioning = true
		caps.Mouse = false
		caps.BracketedPaste = false
	case ModeNative, ModeMultiplexed:
		caps.CursorPositioning = true
		caps.Mouse = true
		caps.BracketedPaste = true
	}

	term := env.get("TERM")
	if term == "dumb" {
		caps.CursorPositioning = false
		caps.ColorDepth = ColorNone
	}

	return caps
}

func classifyMode(env Lookup, stdinTTY, stdoutTTY bool) IntegrationMode {
	if !stdinTTY && !stdoutTTY {
		return ModeNone
	}
	if !stdinTTY && stdoutTTY {
		return ModeEnhanced
	}
	if stdinTTY && !stdoutTTY {
		return ModeMinimal
	}
	if _, inTmux := env("TMUX"); inTmux {
		return ModeMultiplexed
	}
	term := env.get("TERM")
	if strings.Contains(term, "screen") || strings.Contains(term, "tmux") {
		return ModeMultiplexed
	}
	return ModeNative
}

func classifyColor(env Lookup, mode IntegrationMode) ColorDepth {
	if mode == ModeNone {
		return ColorNone
	}
	colorterm := strings.ToLower(env.get("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorTruecolor
	}
	term := env.get("TERM")
	if strings.Contains(term, "256color") {
		return Color256
	}
	if termProgram := env.get("TERM_PROGRAM"); termProgram != "" {
		// Most TERM_PROGRAM-identified terminals (iTerm2, WezTerm, VS
		// Code, Apple Terminal post-10.something) support at least 256.
		return Color256
	}
	if term == "" || term == "dumb" {
		return ColorNone
	}
	return Color16
}

func classifySignature(env Lookup) string {
	if v := env.get("TERM_PROGRAM"); v != "" {
		return v
	}
	if _, ok := env("TMUX"); ok {
		return "tmux"
	}
	if v := env.get("WT_SESSION"); v != "" {
		return "WindowsTerminal"
	}
	if v := env.get("TERM"); v != "" {
		return v
	}
	return "unknown"
}

func classifyUnicode(env Lookup) bool {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := env.get(key); v != "" {
			return strings.Contains(strings.ToUpper(v), "UTF-8") || strings.Contains(strings.ToUpper(v), "UTF8")
		}
	}
	return false
}
