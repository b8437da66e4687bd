package lle

import (
	"github.com/dshills/lle/internal/action"
)

// CompletionSource is implemented by the host shell: lle has no
// notion of a filesystem, command table, or shell grammar, so
// completion candidates always come from outside the engine.
type CompletionSource = action.CompletionSource

// Completion is one candidate offered by a CompletionSource.
type Completion = action.Completion

// PersistedEntry is one history record as handed to and from a
// HistoryPersistence implementation. The engine does not define an
// on-disk format; this is the in-memory shape it round-trips.
type PersistedEntry struct {
	Normalized        string
	OriginalMultiline string
	WorkingDir        string
	ExitCode          int
}

// HistoryPersistence is the host-supplied collaborator that loads and
// saves history entries across sessions. Satisfied trivially by a
// no-op for hosts that don't want persistence.
type HistoryPersistence interface {
	LoadAll() ([]PersistedEntry, error)
	Append(entry PersistedEntry) error
	Flush() error
}

// ShellExecutor receives an accepted line and returns its exit code,
// which the engine records on the corresponding history entry. The
// engine never executes anything itself — running the command is
// entirely the host's responsibility.
type ShellExecutor interface {
	Execute(line string) (exitCode int, err error)
}
