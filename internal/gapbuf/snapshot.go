package gapbuf

// Snapshot is an immutable copy of a buffer's content, safe to hand to
// the render pipeline or a slow completion source without risking a
// torn read while the dispatch loop keeps editing the live buffer.
type Snapshot struct {
	text     string
	cursor   Cursor
	revision RevisionID
}

// Snapshot captures the buffer's current content and cursor.
func (b *Buffer) Snapshot() Snapshot {
	return Snapshot{
		text:     b.GetCompleteContent(),
		cursor:   b.Cursor(),
		revision: b.revision,
	}
}

// Text returns the snapshot's content.
func (s Snapshot) Text() string { return s.text }

// Cursor returns the snapshot's cursor position.
func (s Snapshot) Cursor() Cursor { return s.cursor }

// Revision returns the revision id the snapshot was taken at.
func (s Snapshot) Revision() RevisionID { return s.revision }
