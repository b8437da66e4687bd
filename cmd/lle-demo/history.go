package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/dshills/lle"
)

// fileHistory is a newline-delimited history file: one accepted line
// per record, with embedded newlines (multi-line input) escaped as
// literal "\n" so the file stays line-oriented. This is lle-demo's own
// format choice, not something the engine mandates.
type fileHistory struct {
	path    string
	pending []string
}

func newFileHistory(path string) *fileHistory {
	return &fileHistory{path: path}
}

func (h *fileHistory) LoadAll() ([]lle.PersistedEntry, error) {
	if h.path == "" {
		return nil, nil
	}
	f, err := os.Open(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var entries []lle.PersistedEntry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := unescapeHistoryLine(scanner.Text())
		if line == "" {
			continue
		}
		entries = append(entries, lle.PersistedEntry{
			Normalized:        line,
			OriginalMultiline: line,
		})
	}
	return entries, scanner.Err()
}

func (h *fileHistory) Append(entry lle.PersistedEntry) error {
	if h.path == "" {
		return errNoHistoryFile
	}
	h.pending = append(h.pending, escapeHistoryLine(entry.OriginalMultiline))
	return nil
}

func (h *fileHistory) Flush() error {
	if h.path == "" || len(h.pending) == 0 {
		return nil
	}
	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range h.pending {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	h.pending = h.pending[:0]
	return nil
}

func escapeHistoryLine(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	return strings.ReplaceAll(s, "\n", "\\n")
}

func unescapeHistoryLine(s string) string {
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if escaped {
			switch r {
			case 'n':
				b.WriteByte('\n')
			case '\\':
				b.WriteByte('\\')
			default:
				b.WriteRune(r)
			}
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
