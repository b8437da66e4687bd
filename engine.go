package lle

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/dshills/lle/internal/action"
	"github.com/dshills/lle/internal/bufset"
	"github.com/dshills/lle/internal/histstore"
	"github.com/dshills/lle/internal/keymap"
	key "github.com/dshills/lle/internal/keyevent"
	"github.com/dshills/lle/internal/killring"
	"github.com/dshills/lle/internal/render"
	"github.com/dshills/lle/internal/syntax"
	"github.com/dshills/lle/internal/termraw"
)

// Status reports why ReadLine returned.
type Status int

const (
	// StatusAccepted means the user finished the line (Enter).
	StatusAccepted Status = iota
	// StatusAborted means the user cancelled editing (Ctrl-G).
	StatusAborted
	// StatusEOF means end-of-input was signaled on an empty buffer
	// (Ctrl-D), or the input stream itself ended.
	StatusEOF
	// StatusInterrupted means Ctrl-C was pressed.
	StatusInterrupted
	// StatusSuspended means Ctrl-Z was pressed; the host is expected to
	// suspend its own process and, on resume, call ReadLine again.
	StatusSuspended
)

func (s Status) String() string {
	switch s {
	case StatusAccepted:
		return "accepted"
	case StatusAborted:
		return "aborted"
	case StatusEOF:
		return "eof"
	case StatusInterrupted:
		return "interrupted"
	case StatusSuspended:
		return "suspended"
	default:
		return "unknown"
	}
}

// ReadResult is what engine_read_line returns: the outcome of a single
// edit session plus the line text when accepted.
type ReadResult struct {
	Status Status
	Text   string
}

// Engine owns every live subsystem for one interactive line-editing
// session: the buffer set, undo/kill/history rings, the keymap and
// action registries, and the render pipeline. It is not safe for
// concurrent use — ReadLine is meant to be called from one goroutine
// at a time, the same single-threaded cooperative model §5 describes.
type Engine struct {
	cfg Config
	log *slog.Logger

	input  io.Reader
	output io.Writer
	raw    *termraw.RawMode
	caps   termraw.Capabilities

	buffers   *bufset.Manager
	kill      *killring.Ring
	history   *histstore.Store
	searcher  *histstore.Searcher
	actions   *action.Registry
	keymaps   *keymap.Registry
	lookupCtx *keymap.LookupContext
	provider  *syntax.Provider
	viewport  *render.Viewport
	pipeline  *render.Pipeline
	dec       *decoder

	completion action.CompletionSource

	shutdownOnce sync.Once
	shutdown     bool
}

// New implements engine_init: it detects terminal capabilities,
// enables raw mode when a real TTY is attached, and wires every
// collaborator — buffer manager, undo tracker, kill ring, history
// store and searcher, action and keymap registries, syntax highlighter
// and render pipeline — into one Engine.
func New(cfg Config) (*Engine, error) {
	if cfg.HistoryCapacity <= 0 {
		cfg.HistoryCapacity = 1000
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	input := cfg.Input
	if input == nil {
		input = os.Stdin
	}
	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}

	stdinTTY := term.IsTerminal(cfg.InputFD)
	stdoutTTY := isTerminalWriter(output)
	caps := termraw.Detect(os.LookupEnv, stdinTTY, stdoutTTY)
	log.Debug("terminal capabilities detected", "mode", caps.Mode, "colorDepth", caps.ColorDepth, "stdinTTY", stdinTTY, "stdoutTTY", stdoutTTY)

	var raw *termraw.RawMode
	if stdinTTY && caps.Mode != termraw.ModeNone && caps.Mode != termraw.ModeMinimal {
		r, err := termraw.Enable(cfg.InputFD)
		if err != nil {
			log.Error("failed to enable raw mode", "error", err)
			return nil, &InitError{Component: "termios", Err: err}
		}
		raw = r
		log.Debug("raw mode enabled")
	}

	history := histstore.New(histstore.WithCapacity(cfg.HistoryCapacity))
	if cfg.History != nil {
		entries, err := cfg.History.LoadAll()
		if err != nil {
			log.Error("failed to load history", "error", err)
			if raw != nil {
				_ = raw.Restore()
			}
			return nil, &InitError{Component: "history", Err: err}
		}
		loaded := 0
		for _, e := range entries {
			if _, err := history.Add(e.Normalized, e.OriginalMultiline, e.WorkingDir); err != nil {
				continue
			}
			loaded++
		}
		log.Debug("history loaded", "entries", loaded)
	}

	keymaps := keymap.NewRegistry()
	if err := keymaps.Register(buildDefaultKeymap()); err != nil {
		if raw != nil {
			_ = raw.Restore()
		}
		return nil, &InitError{Component: "keymap", Err: err}
	}
	if cfg.KeymapPreset != "" {
		preset, err := loadKeymapPreset(cfg.KeymapPreset)
		if err != nil {
			log.Error("failed to load keymap preset", "path", cfg.KeymapPreset, "error", err)
			if raw != nil {
				_ = raw.Restore()
			}
			return nil, &InitError{Component: "keymap preset", Err: err}
		}
		if err := keymaps.Register(preset); err != nil {
			if raw != nil {
				_ = raw.Restore()
			}
			return nil, &InitError{Component: "keymap preset", Err: err}
		}
		log.Debug("keymap preset loaded", "path", cfg.KeymapPreset, "bindings", len(preset.Bindings))
	}

	provider := syntax.NewProvider(syntax.NewLexer(), cfg.themeOrDefault(), 256)

	width, height := 80, 24
	if stdoutTTY {
		if f, ok := output.(*os.File); ok {
			if w, h, err := term.GetSize(int(f.Fd())); err == nil {
				width, height = w, h
			}
		}
	}
	viewport := render.NewViewport(width, height)

	pipeline := render.NewPipeline(provider, provider.Theme(), viewport)
	pipeline.SetColorDepth(mapColorDepth(caps.ColorDepth))
	pipeline.SetEastAsianWidth(cfg.EastAsianWidth)

	e := &Engine{
		cfg:       cfg,
		log:       log,
		input:     input,
		output:    output,
		raw:       raw,
		caps:      caps,
		buffers:   bufset.NewManager(),
		kill:      killring.New(),
		history:   history,
		searcher:  histstore.NewSearcher(history),
		actions:   action.DefaultRegistry(),
		keymaps:   keymaps,
		lookupCtx: keymap.NewLookupContext(),
		provider:  provider,
		viewport:  viewport,
		pipeline:  pipeline,
		dec:       newDecoder(input),
	}
	return e, nil
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func mapColorDepth(d termraw.ColorDepth) render.ColorDepth {
	switch d {
	case termraw.Color16:
		return render.Depth16
	case termraw.Color256:
		return render.Depth256
	case termraw.ColorTruecolor:
		return render.DepthTruecolor
	default:
		return render.DepthNone
	}
}

// renderAdapter satisfies action.Renderer, routing clear_screen through
// the pipeline's owning Engine so the action package stays ignorant of
// terminal escape codes.
type renderAdapter struct{ e *Engine }

func (a renderAdapter) ClearScreen() {
	_, _ = a.e.output.Write([]byte("\x1b[2J\x1b[H"))
	a.e.pipeline.Reset()
}

// RegisterCompletionSource implements engine_register_completion_source.
func (e *Engine) RegisterCompletionSource(source CompletionSource) {
	e.completion = source
}

// BindKey implements engine_bind_key: the sequence is registered into a
// host-overlay keymap with higher priority than the builtin default, so
// host bindings always win on conflict.
func (e *Engine) BindKey(sequence, actionName string) error {
	overlay := e.keymaps.Get("host")
	km := keymap.NewKeymap("host").WithPriority(100).WithSource("host")
	if overlay != nil {
		km = overlay.Keymap.Clone().WithPriority(100).WithSource("host")
	}
	km.AddBinding(keymap.NewBinding(sequence, actionName))
	return e.keymaps.Register(km)
}

// UnbindKey implements engine_unbind_key: it is a no-op when no host
// binding exists for the sequence.
func (e *Engine) UnbindKey(sequence string) error {
	overlay := e.keymaps.Get("host")
	if overlay == nil {
		return nil
	}
	km := overlay.Keymap.Clone()
	kept := km.Bindings[:0]
	for _, b := range km.Bindings {
		if b.Keys != sequence {
			kept = append(kept, b)
		}
	}
	km.Bindings = kept
	return e.keymaps.Register(km)
}

// ReadLine implements engine_read_line: the per-keystroke event loop
// reading one key.Event at a time, resolving it against the keymap,
// dispatching to the action registry, and redrawing via the render
// pipeline, per §2's read -> parse -> dispatch -> mutate -> redraw
// cycle. It returns once the line is accepted, aborted, interrupted,
// suspended, or the input stream reaches end-of-file.
func (e *Engine) ReadLine(prompt string) (ReadResult, error) {
	if e.shutdown {
		return ReadResult{}, ErrShuttingDown
	}

	mb := e.buffers.Current()
	buf := mb.Buf
	if n := buf.Len(); n > 0 {
		if _, err := buf.Delete(0, int(n)); err != nil {
			return e.readErr("reset buffer", err)
		}
	}
	mb.Tracker.Clear()
	e.kill.ResetCursor()
	e.searcher.Reset()
	e.pipeline.Reset()

	cwd, _ := os.Getwd()
	ctx := action.NewContext(buf, mb.Tracker, e.kill, e.history, e.searcher)
	ctx.Complete = e.completion
	ctx.Render = renderAdapter{e}
	ctx.WorkingDir = cwd

	seq := key.NewSequence()

	for {
		if err := e.pipeline.Render(e.output, prompt, buf); err != nil {
			return e.readErr("render", err)
		}

		ev, err := e.dec.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return ReadResult{Status: StatusEOF}, nil
			}
			return e.readErr("read", err)
		}
		seq.Add(ev)

		binding := e.keymaps.Lookup(seq, e.lookupCtx)
		switch {
		case binding != nil:
			if err := e.actions.Execute(ctx, binding.Action, binding.Args); err != nil {
				return e.readErr("action "+binding.Action, err)
			}
			seq.Clear()
		case e.keymaps.HasPrefix(seq, e.lookupCtx):
			continue
		default:
			if last := seq.Last(); seq.Len() == 1 && last != nil && last.Key == key.KeyRune && last.Modifiers == key.ModNone {
				args := map[string]any{"text": string(last.Rune)}
				if err := e.actions.Execute(ctx, "self_insert", args); err != nil {
					return e.readErr("action self_insert", err)
				}
			}
			seq.Clear()
		}

		if r, done := e.checkExit(ctx); done {
			e.log.Debug("read line finished", "status", r.Status)
			if r.Status == StatusAccepted && e.cfg.History != nil {
				entry := PersistedEntry{
					Normalized:        ctx.AcceptedText,
					OriginalMultiline: ctx.AcceptedText,
					WorkingDir:        cwd,
				}
				if err := e.cfg.History.Append(entry); err != nil {
					return e.readErr("history append", err)
				}
			}
			return r, nil
		}
	}
}

// readErr logs and wraps a ReadLine failure in one place so every exit
// path reports through the same error shape and log line.
func (e *Engine) readErr(op string, err error) (ReadResult, error) {
	e.log.Error("read line failed", "op", op, "error", err)
	return ReadResult{}, &ReadError{Op: op, Err: err}
}

func (e *Engine) checkExit(ctx *action.Context) (ReadResult, bool) {
	switch {
	case ctx.Accepted:
		return ReadResult{Status: StatusAccepted, Text: ctx.AcceptedText}, true
	case ctx.Aborted:
		return ReadResult{Status: StatusAborted}, true
	case ctx.EOF:
		return ReadResult{Status: StatusEOF}, true
	case ctx.Interrupted:
		return ReadResult{Status: StatusInterrupted}, true
	case ctx.Suspended:
		return ReadResult{Status: StatusSuspended}, true
	default:
		return ReadResult{}, false
	}
}

// Shutdown implements engine_shutdown: flush history to the host's
// persistence collaborator if one was configured, then restore the
// terminal's original mode. Safe to call more than once.
func (e *Engine) Shutdown() error {
	var err error
	e.shutdownOnce.Do(func() {
		e.shutdown = true
		if e.cfg.History != nil {
			if ferr := e.cfg.History.Flush(); ferr != nil {
				e.log.Error("history flush failed", "error", ferr)
				err = &InitError{Component: "history flush", Err: ferr}
			}
		}
		if e.raw != nil {
			if rerr := e.raw.Restore(); rerr != nil && err == nil {
				e.log.Error("terminal restore failed", "error", rerr)
				err = fmt.Errorf("lle: restore terminal: %w", rerr)
			}
		}
		e.log.Debug("engine shut down")
	})
	return err
}
