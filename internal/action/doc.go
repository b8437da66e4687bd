// Package action implements the input dispatcher's action set from
// §4.3: the named, Readline-compatible editing operations a keybinding
// resolves to. Each action is a small function taking a *Context, in
// the style of the dispatcher/execctx execution-context pattern. The
// Context holds the buffer and undo tracker as concrete
// *gapbuf.Buffer and *undo.Tracker values; the kill ring, history
// store, searcher, completion source and renderer are narrow
// interfaces, so those can be exercised against fakes in tests.
package action
