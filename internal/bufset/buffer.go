package bufset

import (
	"github.com/dshills/lle/internal/gapbuf"
	"github.com/dshills/lle/internal/undo"
)

// ID identifies a managed buffer. IDs are never reused within the
// lifetime of a Manager.
type ID int

// Managed is one entry in the buffer manager's list: a text buffer and
// its undo tracker, plus the bookkeeping the manager needs to keep the
// list ordered and named buffers addressable.
type Managed struct {
	id      ID
	name    string // empty for scratch buffers
	scratch bool

	Buf     *gapbuf.Buffer
	Tracker *undo.Tracker

	prev, next ID // arena-local links; zero value (invalidID) means none
}

// ID returns the buffer's identifier.
func (m *Managed) ID() ID { return m.id }

// Name returns the buffer's name, or "" for a scratch buffer.
func (m *Managed) Name() string { return m.name }

// IsScratch reports whether this buffer is unnamed.
func (m *Managed) IsScratch() bool { return m.scratch }

const invalidID ID = 0
