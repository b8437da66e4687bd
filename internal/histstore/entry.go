package histstore

import (
	"strings"
	"time"
)

// Entry is a single history record. Per §3 it carries both a normalized
// single-line form (used for matching and deduplication) and the
// original multi-line form, if the command spanned multiple lines, so
// recall can reproduce the user's own formatting rather than a
// collapsed one-liner.
type Entry struct {
	ID                int64
	Normalized        string
	OriginalMultiline string
	CreatedAt         time.Time
	ExitCode          int
	WorkingDir        string
	EditCount         int

	// Structure is the cached structural annotation from a prior
	// recall (§4.5 "the record is cached on the entry for subsequent
	// recalls"). Nil until the entry has had a multi-line recall;
	// recalling a single-line entry leaves it nil.
	Structure *Structure
}

// IsMultiline reports whether the entry's original form spans more than
// one line.
func (e *Entry) IsMultiline() bool {
	return strings.Contains(e.OriginalMultiline, "\n")
}

// content returns the form recall should reproduce: the original
// multi-line form if one was kept, otherwise the normalized form.
func (e *Entry) content() string {
	if e.OriginalMultiline != "" {
		return e.OriginalMultiline
	}
	return e.Normalized
}
