package histstore

import "testing"

func newTestStore() *Store {
	s := New()
	_, _ = s.Add("git status", "", "")
	_, _ = s.Add("git commit -m fix", "", "")
	_, _ = s.Add("ls -la", "", "")
	_, _ = s.Add("git checkout main", "", "")
	return s
}

func TestSearcherEmptyQueryReturnsNewestFirst(t *testing.T) {
	s := newTestStore()
	searcher := NewSearcher(s)
	e, ok := searcher.SetQuery("")
	if !ok {
		t.Fatal("expected a match")
	}
	if e.Normalized != "git checkout main" {
		t.Errorf("best match = %q, want most recent entry", e.Normalized)
	}
}

func TestSearcherFuzzyMatch(t *testing.T) {
	s := newTestStore()
	searcher := NewSearcher(s)
	e, ok := searcher.SetQuery("git comm")
	if !ok {
		t.Fatal("expected a match")
	}
	if e.Normalized != "git commit -m fix" {
		t.Errorf("best match = %q, want %q", e.Normalized, "git commit -m fix")
	}
}

func TestSearcherNoMatchBelowMinScore(t *testing.T) {
	s := newTestStore()
	searcher := NewSearcher(s, WithMinScore(99))
	if _, ok := searcher.SetQuery("zzz totally unrelated query"); ok {
		t.Error("expected no match above an unreachable min score")
	}
}

func TestSearcherCyclesThroughMatches(t *testing.T) {
	s := newTestStore()
	searcher := NewSearcher(s)
	first, ok := searcher.SetQuery("git")
	if !ok {
		t.Fatal("expected a match")
	}
	second, ok := searcher.Next()
	if !ok {
		t.Fatal("expected a second match")
	}
	if first.ID == second.ID {
		t.Error("expected Next() to advance to a different entry")
	}
}

func TestSearcherReset(t *testing.T) {
	s := newTestStore()
	searcher := NewSearcher(s)
	searcher.SetQuery("git")
	searcher.Reset()
	if searcher.Query() != "" {
		t.Errorf("Query() after Reset = %q, want empty", searcher.Query())
	}
}

func TestSearcherForwardDirectionReversesCycle(t *testing.T) {
	s := newTestStore()
	backward := NewSearcher(s)
	backward.SetQuery("git")
	b1, _ := backward.Next()
	b2, _ := backward.Next()

	forward := NewSearcher(s)
	forward.SetDirection(Forward)
	forward.SetQuery("git")
	f1, _ := forward.Next() // steps from the top match to the last-ranked one
	f2, _ := forward.Next()

	if b1.ID == b2.ID {
		t.Fatal("backward searcher did not advance")
	}
	if f1.ID != b2.ID || f2.ID != b1.ID {
		t.Errorf("forward cycle (%d, %d) is not the reverse of backward's (%d, %d)", f1.ID, f2.ID, b2.ID, b1.ID)
	}
}
