package lle

import "github.com/dshills/lle/internal/keymap"

// defaultBindings enumerates the engine's built-in Readline-compatible
// bindings (§4.3's ~40-action set). Printable keys are not listed
// here: an unbound rune event always falls back to self_insert, per
// the dispatcher's "unbound printable keys self-insert" rule.
var defaultBindings = []struct {
	keys   string
	action string
	args   map[string]any
}{
	// Movement
	{keys: "Ctrl+A", action: "beginning_of_line"},
	{keys: "<Home>", action: "beginning_of_line"},
	{keys: "Ctrl+E", action: "end_of_line"},
	{keys: "<End>", action: "end_of_line"},
	{keys: "Ctrl+F", action: "forward_char"},
	{keys: "<Right>", action: "forward_char"},
	{keys: "Ctrl+B", action: "backward_char"},
	{keys: "<Left>", action: "backward_char"},
	{keys: "Alt+f", action: "forward_word"},
	{keys: "Alt+b", action: "backward_word"},
	{keys: "<Up>", action: "previous_line"},
	{keys: "<Down>", action: "next_line"},

	// Deletion
	{keys: "Ctrl+D", action: "send_eof"},
	{keys: "<Delete>", action: "delete_char"},
	{keys: "<Backspace>", action: "backward_delete_char"},
	{keys: "Ctrl+K", action: "kill_line"},
	{keys: "Alt+d", action: "kill_word"},
	{keys: "Alt+Backspace", action: "backward_kill_word"},
	{keys: "Alt+\\", action: "delete_horizontal_space"},

	// Paste
	{keys: "Ctrl+Y", action: "yank"},
	{keys: "Alt+y", action: "yank_pop"},

	// Structural
	{keys: "Ctrl+T", action: "transpose_chars"},
	{keys: "Alt+t", action: "transpose_words"},
	{keys: "Ctrl+V", action: "quoted_insert"},

	// History
	{keys: "Alt+p", action: "previous_history"},
	{keys: "Alt+n", action: "next_history"},
	{keys: "Ctrl+R", action: "reverse_search_history"},
	{keys: "Ctrl+S", action: "forward_search_history"},

	// Completion
	{keys: "<Tab>", action: "complete"},
	{keys: "Alt+?", action: "possible_completions"},
	{keys: "Alt+*", action: "insert_completions"},

	// Case
	{keys: "Alt+u", action: "upcase_word"},
	{keys: "Alt+l", action: "downcase_word"},
	{keys: "Alt+c", action: "capitalize_word"},

	// Critical
	{keys: "Ctrl+G", action: "abort_line"},
	{keys: "<Enter>", action: "accept_line"},
	{keys: "Ctrl+L", action: "clear_screen"},
	{keys: "Ctrl+C", action: "interrupt"},
	{keys: "Ctrl+Z", action: "suspend"},

	// Numeric argument: GNU Readline binds plain C-u to
	// universal-argument, not a C-u C-u chord, so it can combine with
	// the M-<digit> family below without a prefix/exact-match clash.
	{keys: "Ctrl+U", action: "universal_argument"},
	{keys: "Alt+-", action: "digit_argument", args: map[string]any{"digit": "-"}},
	{keys: "Alt+0", action: "digit_argument", args: map[string]any{"digit": "0"}},
	{keys: "Alt+1", action: "digit_argument", args: map[string]any{"digit": "1"}},
	{keys: "Alt+2", action: "digit_argument", args: map[string]any{"digit": "2"}},
	{keys: "Alt+3", action: "digit_argument", args: map[string]any{"digit": "3"}},
	{keys: "Alt+4", action: "digit_argument", args: map[string]any{"digit": "4"}},
	{keys: "Alt+5", action: "digit_argument", args: map[string]any{"digit": "5"}},
	{keys: "Alt+6", action: "digit_argument", args: map[string]any{"digit": "6"}},
	{keys: "Alt+7", action: "digit_argument", args: map[string]any{"digit": "7"}},
	{keys: "Alt+8", action: "digit_argument", args: map[string]any{"digit": "8"}},
	{keys: "Alt+9", action: "digit_argument", args: map[string]any{"digit": "9"}},
}

// buildDefaultKeymap returns the keymap every engine starts with.
// Hosts layer additional bindings on top via BindKey, or load a TOML
// preset (cmd/lle-demo) that registers a higher-priority keymap.
func buildDefaultKeymap() *keymap.Keymap {
	km := keymap.NewKeymap("default").WithPriority(0).WithSource("builtin")
	for _, b := range defaultBindings {
		binding := keymap.NewBinding(b.keys, b.action)
		if b.args != nil {
			binding = binding.WithArgs(b.args)
		}
		km.AddBinding(binding)
	}
	return km
}
