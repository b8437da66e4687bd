// Command lle-demo is a minimal interactive host for the lle line
// editor: it wires a terminal, an optional TOML keybinding preset, and
// a file-backed history store, then echoes every accepted line back to
// the user instead of handing it to a real shell.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dshills/lle"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	histPath := opts.HistoryPath
	if histPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			histPath = home + "/.lle_history"
		}
	}
	persist := newFileHistory(histPath)

	cfg := lle.NewConfig()
	cfg.InputFD = int(os.Stdin.Fd())
	cfg.Input = os.Stdin
	cfg.Output = os.Stdout
	cfg.Theme = opts.Theme
	cfg.KeymapPreset = opts.KeymapPreset
	cfg.History = persist
	cfg.EastAsianWidth = opts.EastAsian
	if opts.LogPath != "" {
		logFile, err := os.OpenFile(opts.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lle-demo: open log file: %v\n", err)
			return 1
		}
		defer logFile.Close()
		cfg.Logger = slog.New(slog.NewTextHandler(logFile, nil))
	}

	engine, err := lle.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lle-demo: init: %v\n", err)
		return 1
	}
	defer engine.Shutdown()

	for {
		result, err := engine.ReadLine(opts.Prompt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\nlle-demo: %v\n", err)
			return 1
		}

		switch result.Status {
		case lle.StatusAccepted:
			fmt.Fprintf(os.Stdout, "\n%s\n", result.Text)
		case lle.StatusAborted:
			fmt.Fprint(os.Stdout, "\n")
			continue
		case lle.StatusInterrupted:
			fmt.Fprint(os.Stdout, "\n^C\n")
			continue
		case lle.StatusSuspended:
			fmt.Fprint(os.Stdout, "\n")
			continue
		case lle.StatusEOF:
			fmt.Fprint(os.Stdout, "\n")
			return 0
		}
	}
}

type options struct {
	Prompt       string
	Theme        string
	KeymapPreset string
	HistoryPath  string
	EastAsian    bool
	LogPath      string
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.Prompt, "prompt", "lle> ", "prompt string")
	flag.StringVar(&o.Theme, "theme", "default", "syntax theme: default, solarized-dark, light")
	flag.StringVar(&o.KeymapPreset, "keymap", "", "path to a TOML keybinding preset")
	flag.StringVar(&o.HistoryPath, "history", "", "path to the history file (default ~/.lle_history)")
	flag.BoolVar(&o.EastAsian, "east-asian-width", false, "treat ambiguous-width runes as double-width")
	flag.StringVar(&o.LogPath, "log", "", "path to a structured log file (default: logging disabled)")
	flag.Parse()
	return o
}

var errNoHistoryFile = errors.New("lle-demo: no history file configured")
