// Package keymap provides key binding management for the line editor.
//
// The keymap system manages the mapping between key sequences and actions.
// It supports multiple modes, file-type keymaps, conditional bindings, and
// priority-based precedence between keymaps.
//
// # Key Concepts
//
// Keymap: A named collection of bindings for a specific mode or context.
//
// Binding: Maps a key sequence to an action with optional conditions.
//
// Registry: Central registry that manages all keymaps and provides lookup.
//
// # Binding Precedence
//
// When multiple bindings match a key sequence, precedence is determined by:
//  1. Score (higher wins): keymap Priority × 100 plus binding Priority,
//     plus 50 for a mode-specific keymap and 25 for a filetype-specific one
//  2. Specificity (mode-specific > global, then filetype-specific > general)
//
// Matches that tie on both come back in no defined order.
//
// # Key Sequence Parsing
//
// Key sequences can be specified in multiple formats:
//
//	"j"        - Single character
//	"g g"      - Multi-key sequence
//	"C-s"      - Ctrl+S (Vim notation)
//	"<C-s>"    - Ctrl+S (angle bracket notation)
//	"Ctrl+S"   - Ctrl+S (readable notation)
//	"<C-S-a>"  - Ctrl+Shift+A
//
// # Conditional Bindings
//
// Bindings can have conditions that must be met:
//
//	binding := Binding{
//	    Keys:   "C-s",
//	    Action: "file.save",
//	    When:   "editorTextFocus && !editorReadonly",
//	}
//
// # Usage
//
//	registry := keymap.NewRegistry()
//	if err := keymap.LoadDefaults(registry); err != nil {
//	    // handle error
//	}
//
//	// Lookup a binding
//	seq, _ := key.ParseSequence("g g")
//	ctx := &keymap.LookupContext{Mode: keymap.ModeNormal}
//	binding := registry.Lookup(seq, ctx)
//	if binding != nil {
//	    // Execute binding.Action
//	}
//
//	// Check if more keys might complete a binding
//	if registry.HasPrefix(partialSeq, ctx) {
//	    // Wait for more keys
//	}
package keymap
