package bufset

import (
	"fmt"

	"github.com/dshills/lle/internal/gapbuf"
	"github.com/dshills/lle/internal/undo"
)

// Manager owns every managed buffer exclusively. It is the doubly-linked
// list of buffers from §3, implemented as an arena of nodes addressed
// by ID rather than pointers: nodes hold prev/next IDs into the arena,
// and the arena is the only thing that owns them.
type Manager struct {
	arena   map[ID]*Managed
	names   map[string]ID
	head    ID
	tail    ID
	current ID
	nextID  ID

	scratchCounter int
}

// NewManager creates an empty buffer manager with one initial scratch
// buffer, which becomes current.
func NewManager() *Manager {
	m := &Manager{
		arena:  make(map[ID]*Managed),
		names:  make(map[string]ID),
		nextID: invalidID + 1,
	}
	id := m.CreateScratch()
	m.current = id
	return m
}

func (m *Manager) newBuffer() (*gapbuf.Buffer, *undo.Tracker) {
	return gapbuf.New(), undo.NewTracker()
}

func (m *Manager) link(node *Managed) {
	node.prev = m.tail
	node.next = invalidID
	if m.tail != invalidID {
		m.arena[m.tail].next = node.id
	} else {
		m.head = node.id
	}
	m.tail = node.id
}

func (m *Manager) unlink(node *Managed) {
	if node.prev != invalidID {
		m.arena[node.prev].next = node.next
	} else {
		m.head = node.next
	}
	if node.next != invalidID {
		m.arena[node.next].prev = node.prev
	} else {
		m.tail = node.prev
	}
}

// CreateNamed creates a named buffer. Fails with ErrNameExists if the
// name is already in use. Becomes the current buffer only if the
// manager had none (i.e. this is called before NewManager's initial
// scratch buffer, which in practice never happens, but the rule is
// honored for completeness).
func (m *Manager) CreateNamed(name string) (ID, error) {
	if _, exists := m.names[name]; exists {
		return invalidID, fmt.Errorf("%s: %w", name, ErrNameExists)
	}
	buf, tracker := m.newBuffer()
	node := &Managed{id: m.nextID, name: name, Buf: buf, Tracker: tracker}
	m.nextID++
	m.arena[node.id] = node
	m.names[name] = node.id
	m.link(node)
	if len(m.arena) == 1 {
		m.current = node.id
	}
	return node.id, nil
}

// CreateScratch creates a new unnamed buffer. Always succeeds.
func (m *Manager) CreateScratch() ID {
	buf, tracker := m.newBuffer()
	m.scratchCounter++
	node := &Managed{id: m.nextID, scratch: true, Buf: buf, Tracker: tracker}
	m.nextID++
	m.arena[node.id] = node
	m.link(node)
	return node.id
}

// Get returns the managed buffer for id.
func (m *Manager) Get(id ID) (*Managed, error) {
	node, ok := m.arena[id]
	if !ok {
		return nil, ErrNotFound
	}
	return node, nil
}

// GetByName returns the managed buffer with the given name. O(1): per
// §4.2, a name→id hashtable is an allowed but optional optimization —
// this implementation keeps one (m.names) for O(1) lookup.
func (m *Manager) GetByName(name string) (*Managed, error) {
	id, ok := m.names[name]
	if !ok {
		return nil, ErrNotFound
	}
	return m.arena[id], nil
}

// Current returns the current managed buffer.
func (m *Manager) Current() *Managed { return m.arena[m.current] }

// CurrentID returns the current buffer's id.
func (m *Manager) CurrentID() ID { return m.current }

// SwitchTo makes id the current buffer.
func (m *Manager) SwitchTo(id ID) error {
	if _, ok := m.arena[id]; !ok {
		return ErrNotFound
	}
	m.current = id
	return nil
}

// SwitchToName makes the buffer with the given name current.
func (m *Manager) SwitchToName(name string) error {
	id, ok := m.names[name]
	if !ok {
		return ErrNotFound
	}
	m.current = id
	return nil
}

// Rename changes a buffer's name, promoting a scratch buffer to named.
// Fails with ErrNameExists on collision.
func (m *Manager) Rename(id ID, name string) error {
	node, ok := m.arena[id]
	if !ok {
		return ErrNotFound
	}
	if name == node.name {
		return nil
	}
	if _, exists := m.names[name]; exists {
		return fmt.Errorf("%s: %w", name, ErrNameExists)
	}
	if node.name != "" {
		delete(m.names, node.name)
	}
	node.name = name
	node.scratch = false
	m.names[name] = id
	return nil
}

// Delete removes a buffer. If it was current, the manager switches to
// a neighbor; if it was the last remaining buffer, a fresh scratch
// buffer is created and made current.
func (m *Manager) Delete(id ID) error {
	node, ok := m.arena[id]
	if !ok {
		return ErrNotFound
	}

	wasCurrent := id == m.current
	next, prev := node.next, node.prev

	m.unlink(node)
	delete(m.arena, id)
	if node.name != "" {
		delete(m.names, node.name)
	}

	if len(m.arena) == 0 {
		m.current = m.CreateScratch()
		return nil
	}

	if wasCurrent {
		switch {
		case next != invalidID:
			m.current = next
		case prev != invalidID:
			m.current = prev
		default:
			m.current = m.head
		}
	}
	return nil
}

// List returns buffer ids in insertion (list) order.
func (m *Manager) List() []ID {
	ids := make([]ID, 0, len(m.arena))
	for id := m.head; id != invalidID; id = m.arena[id].next {
		ids = append(ids, id)
	}
	return ids
}

// Count returns the number of managed buffers.
func (m *Manager) Count() int { return len(m.arena) }
