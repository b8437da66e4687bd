package action

import (
	"github.com/dshills/lle/internal/gapbuf"
	"github.com/dshills/lle/internal/histstore"
	"github.com/dshills/lle/internal/undo"
)

// Searcher abstracts interactive history search (reverse-i-search and
// friends, §4.5(ii)-(v)) for handlers. Satisfied by *histstore.Searcher.
type Searcher interface {
	SetQuery(query string) (*histstore.Entry, bool)
	Query() string
	SetDirection(d histstore.Direction)
	Next() (*histstore.Entry, bool)
	Reset()
}

// History abstracts the history integrator for handlers that record or
// recall entries (accept_line, previous_history/next_history).
// Satisfied by *histstore.Store.
type History interface {
	Add(normalized, originalMultiline, workingDir string) (int64, error)
	Get(id int64) (*histstore.Entry, error)
	Newest() (*histstore.Entry, bool)
	Len() int
	Entries() []*histstore.Entry
}

// KillRing abstracts the kill ring for cut/paste actions. Satisfied by
// *killring.Ring.
type KillRing interface {
	Kill(text string, appending, forward bool)
	Yank() (string, bool)
	YankPop() (string, bool)
	ResetCursor()
}

// Completion is a single candidate offered by a host-supplied
// completion source, per §6's external completion interface.
type Completion struct {
	// Replacement is the text to insert in place of the word being
	// completed.
	Replacement string
	// Display is the (possibly annotated) form shown in a completion
	// listing; defaults to Replacement when empty.
	Display string
}

// CompletionSource is implemented by the host application, not by this
// package: lle has no notion of a filesystem, a command table or a
// shell grammar, so completion candidates are always supplied
// externally (§6). WordBeforeCursor is the text the source should
// complete against.
type CompletionSource interface {
	Complete(wordBeforeCursor string) []Completion
}

// Renderer abstracts the handful of render-pipeline requests actions
// issue directly (immediate redraw requests outside the normal
// render-on-idle path), e.g. clear_screen. Satisfied by the host's
// render driver; nil is a valid, no-op Renderer.
type Renderer interface {
	ClearScreen()
}

// Context is the execution context every action receives, gathering
// the buffer and its supporting subsystems the way
// dispatcher/execctx.ExecutionContext does in the teacher: handlers
// reach the editing state only through this struct, holding the buffer
// and undo tracker as concrete types and everything else through the
// interfaces above, never by importing internal/bufset themselves.
type Context struct {
	Buf      *gapbuf.Buffer
	Undo     *undo.Tracker
	Kill     KillRing
	History  History
	Search   Searcher
	Complete CompletionSource
	Render   Renderer

	// WorkingDir is recorded on new history entries.
	WorkingDir string

	// Count is the pending numeric argument (§4.3's supplemented
	// digit_argument/universal_argument feature), consumed by the next
	// repeat-aware action and reset to 0 afterward. Zero means "no
	// argument given", which most actions treat the same as 1.
	Count int
	// CountGiven reports whether Count was explicitly set this cycle,
	// distinguishing "C-u" (explicit but unspecified, defaults to 4)
	// from a bare invocation.
	CountGiven bool

	// InSearch reports whether an interactive history search is active;
	// the dispatcher consults this to route subsequent keystrokes to
	// the search instead of self_insert.
	InSearch bool

	// Accepted is set by accept_line once the buffer's content has been
	// committed to history; Aborted is set by abort_line. The host
	// dispatch loop checks these after each action to decide whether to
	// end the current edit.
	Accepted     bool
	AcceptedText string
	Aborted      bool

	// EOF is set by send_eof when Ctrl-D is pressed on an empty buffer.
	EOF bool

	// Interrupted and Suspended are set by interrupt/suspend; the host
	// decides what signal, if any, to deliver.
	Interrupted bool
	Suspended   bool

	lastWasKill   bool
	lastWasYank   bool
	lastYankBytes int

	// countSignOnly is set by digit_argument's "-" until the first digit
	// follows it.
	countSignOnly bool

	// histIndex walks previous_history/next_history independently of
	// the interactive Searcher. hasHistIndex is false when browsing
	// hasn't started (next_history/previous_history always starts from
	// the newest entry).
	histIndex    int
	hasHistIndex bool

	// searchSavedText is the buffer content at the moment an
	// interactive search started, restored by abort_line if the search
	// is cancelled.
	searchSavedText string
}

// NewContext builds a Context wired to the given subsystems. kill,
// history and search may be nil (a line editor with history disabled,
// for instance); complete and render may also be nil.
func NewContext(buf *gapbuf.Buffer, tracker *undo.Tracker, kill KillRing, history History, search Searcher) *Context {
	return &Context{
		Buf:     buf,
		Undo:    tracker,
		Kill:    kill,
		History: history,
		Search:  search,
		Count:   1,
	}
}

// EffectiveCount returns the repeat count a repeat-aware action should
// apply: Count if one was given (clamped to at least 1), otherwise 1.
func (c *Context) EffectiveCount() int {
	if !c.CountGiven || c.Count <= 0 {
		return 1
	}
	return c.Count
}

// ResetCount clears the pending numeric argument, called by the
// registry after every action dispatch except digit_argument itself.
func (c *Context) ResetCount() {
	c.Count = 0
	c.CountGiven = false
	c.countSignOnly = false
}

// recordKill pushes text onto the kill ring, appending onto the
// previous kill if the prior action was also a kill (GNU Readline's
// "successive kills accumulate" rule), and marks this cycle as a kill
// for the next action's benefit.
func (c *Context) recordKill(text string, forward bool) {
	if c.Kill == nil || text == "" {
		return
	}
	c.Kill.Kill(text, c.lastWasKill, forward)
}

// noteYank records that this cycle's action was a yank, for yank_pop's
// "only valid immediately after a yank" rule; handlers that are not
// kill/yank actions clear both flags via noteOther.
func (c *Context) noteYank()  { c.lastWasYank = true }
func (c *Context) noteKill()  { c.lastWasKill = true }
func (c *Context) noteOther() { c.lastWasKill, c.lastWasYank = false, false }
