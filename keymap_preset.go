package lle

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/dshills/lle/internal/keymap"
)

// presetFile is the TOML-friendly representation of a host keybinding
// preset, the on-disk counterpart to the programmatic Binding/Keymap
// types: one table per binding, keyed by the Readline-style sequence
// it matches.
type presetFile struct {
	Name     string          `toml:"name"`
	Bindings []presetBinding `toml:"bindings"`
}

type presetBinding struct {
	Keys   string         `toml:"keys"`
	Action string         `toml:"action"`
	Args   map[string]any `toml:"args,omitempty"`
}

// loadKeymapPreset reads a TOML keybinding preset from path and returns
// it as a Keymap ready to register over the builtin default, the way
// cmd/lle-demo's --keymap flag lets a host pick a preset without
// recompiling.
func loadKeymapPreset(path string) (*keymap.Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lle: read keymap preset: %w", err)
	}

	var raw presetFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("lle: parse keymap preset: %w", err)
	}

	name := raw.Name
	if name == "" {
		name = "preset"
	}
	km := keymap.NewKeymap(name).WithPriority(50).WithSource(path)
	for _, b := range raw.Bindings {
		if b.Keys == "" || b.Action == "" {
			return nil, fmt.Errorf("lle: keymap preset %s: binding missing keys or action", path)
		}
		binding := keymap.NewBinding(b.Keys, b.Action)
		if len(b.Args) > 0 {
			binding = binding.WithArgs(b.Args)
		}
		km.AddBinding(binding)
	}
	return km, nil
}
