package action

import (
	"testing"

	"github.com/dshills/lle/internal/gapbuf"
	"github.com/dshills/lle/internal/histstore"
	"github.com/dshills/lle/internal/undo"
)

// newHistStoreWith builds a real histstore.Store seeded with commands,
// oldest first.
func newHistStoreWith(t *testing.T, commands ...string) *histstore.Store {
	t.Helper()
	s := histstore.New()
	for _, c := range commands {
		if _, err := s.Add(c, "", ""); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func newSearcherFor(s *histstore.Store) *histstore.Searcher {
	return histstore.NewSearcher(s)
}

// newTestContext builds a Context over a fresh buffer preloaded with
// text, cursor at the end, with a real undo tracker and kill ring but
// no history/search/completion wiring unless the caller sets it.
func newTestContext(text string) *Context {
	buf, err := gapbuf.NewFromString(text)
	if err != nil {
		panic(err)
	}
	ctx := NewContext(buf, undo.NewTracker(), newFakeKillRing(), nil, nil)
	return ctx
}

func (c *Context) setCursor(codepoint int) {
	c.Buf.CursorMoveAbsolute(gapbuf.CodepointOffset(codepoint))
}

type fakeKillRing struct {
	entries []string
	cursor  int
}

func newFakeKillRing() *fakeKillRing { return &fakeKillRing{} }

func (f *fakeKillRing) Kill(text string, appending, forward bool) {
	f.cursor = 0
	if appending && len(f.entries) > 0 {
		i := len(f.entries) - 1
		if forward {
			f.entries[i] += text
		} else {
			f.entries[i] = text + f.entries[i]
		}
		return
	}
	f.entries = append(f.entries, text)
}

func (f *fakeKillRing) Yank() (string, bool) {
	if len(f.entries) == 0 {
		return "", false
	}
	f.cursor = 0
	return f.entries[len(f.entries)-1], true
}

func (f *fakeKillRing) YankPop() (string, bool) {
	if len(f.entries) == 0 {
		return "", false
	}
	f.cursor++
	if f.cursor >= len(f.entries) {
		f.cursor = 0
	}
	return f.entries[len(f.entries)-1-f.cursor], true
}

func (f *fakeKillRing) ResetCursor() { f.cursor = 0 }

type fakeHistory struct {
	entries []*histstore.Entry
	nextID  int64
}

func newFakeHistory(commands ...string) *fakeHistory {
	h := &fakeHistory{nextID: 1}
	for _, c := range commands {
		h.Add(c, "", "")
	}
	return h
}

func (h *fakeHistory) Add(normalized, originalMultiline, workingDir string) (int64, error) {
	id := h.nextID
	h.nextID++
	h.entries = append(h.entries, &histstore.Entry{
		ID:                id,
		Normalized:        normalized,
		OriginalMultiline: originalMultiline,
		WorkingDir:        workingDir,
	})
	return id, nil
}

func (h *fakeHistory) Get(id int64) (*histstore.Entry, error) {
	for _, e := range h.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, histstore.ErrNotFound
}

func (h *fakeHistory) Newest() (*histstore.Entry, bool) {
	if len(h.entries) == 0 {
		return nil, false
	}
	return h.entries[len(h.entries)-1], true
}

func (h *fakeHistory) Len() int { return len(h.entries) }

func (h *fakeHistory) Entries() []*histstore.Entry { return h.entries }

type fakeCompletionSource struct {
	candidates []Completion
}

func (f *fakeCompletionSource) Complete(word string) []Completion { return f.candidates }
