package action

import (
	"fmt"
	"sort"
)

// Func is a single executable action, bound to zero or more keys via
// internal/keymap. args carries static per-binding arguments from the
// keymap entry (e.g. digit_argument's digit); most actions ignore it.
type Func func(ctx *Context, args map[string]any) error

// Registry maps action names to their implementations, the same
// string keys internal/keymap.Binding.Action resolves against.
type Registry struct {
	actions map[string]Func
	// kills and yanks classify actions for the kill-ring
	// appending/yank-pop-validity rules, which live at the registry
	// level rather than inside every handler.
	kills map[string]bool
	yanks map[string]bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		actions: make(map[string]Func),
		kills:   make(map[string]bool),
		yanks:   make(map[string]bool),
	}
}

// Register adds or replaces the handler for name.
func (r *Registry) Register(name string, fn Func) {
	r.actions[name] = fn
}

// RegisterKill is Register plus marking name as a kill action, so
// consecutive kills coalesce in the kill ring per GNU Readline
// semantics.
func (r *Registry) RegisterKill(name string, fn Func) {
	r.Register(name, fn)
	r.kills[name] = true
}

// RegisterYank is Register plus marking name as a yank action, so
// yank_pop immediately following it is valid.
func (r *Registry) RegisterYank(name string, fn Func) {
	r.Register(name, fn)
	r.yanks[name] = true
}

// Lookup returns the handler for name, if registered.
func (r *Registry) Lookup(name string) (Func, bool) {
	fn, ok := r.actions[name]
	return fn, ok
}

// Names returns every registered action name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs the named action against ctx, maintaining the
// kill/yank adjacency flags and the numeric-argument reset rule:
// every action except digit_argument/universal_argument consumes and
// clears the pending count.
func (r *Registry) Execute(ctx *Context, name string, args map[string]any) error {
	fn, ok := r.actions[name]
	if !ok {
		return fmt.Errorf("action: unknown action %q", name)
	}

	if err := fn(ctx, args); err != nil {
		return err
	}

	switch {
	case r.kills[name]:
		ctx.noteKill()
	case r.yanks[name]:
		ctx.noteYank()
	default:
		ctx.noteOther()
	}

	if name != "digit_argument" && name != "universal_argument" {
		ctx.ResetCount()
	}
	return nil
}
