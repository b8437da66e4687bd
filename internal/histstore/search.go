package histstore

import (
	"sort"
	"strings"

	"github.com/dshills/lle/internal/fuzzy"
)

// Direction is the scan direction for interactive history search.
type Direction int

const (
	// Backward searches from the current position toward older entries
	// (reverse-i-search, Ctrl-R).
	Backward Direction = iota
	// Forward searches toward newer entries (Ctrl-S).
	Forward
)

// DefaultMinScore is the minimum fuzzy.WeightedScore (under
// fuzzy.PresetHistory) for a candidate to be considered a match.
const DefaultMinScore = 10

// Searcher implements the interactive search sub-state from §4.5: each
// keystroke narrows the query, and the store is rescanned in the
// requested direction using internal/fuzzy's history preset. Matching
// combines equality (an exact substring always scores highly via
// SubsequenceScore) and fuzzy scoring; ranking is by score, with
// recency as tiebreaker.
type Searcher struct {
	store     *Store
	matcher   *fuzzy.Matcher
	minScore  int
	query     string
	direction Direction

	// position is the id of the entry currently shown, so repeated
	// Ctrl-R/Ctrl-S cycles move past it instead of re-matching it.
	position int64
	hasPos   bool
}

// SearchOption configures a Searcher at construction.
type SearchOption func(*Searcher)

// WithMinScore overrides DefaultMinScore.
func WithMinScore(n int) SearchOption {
	return func(s *Searcher) { s.minScore = n }
}

// NewSearcher creates a Searcher over store.
func NewSearcher(store *Store, opts ...SearchOption) *Searcher {
	s := &Searcher{store: store, minScore: DefaultMinScore}
	for _, opt := range opts {
		opt(s)
	}
	s.matcher = fuzzy.NewMatcher(fuzzy.Options{
		Preset:    fuzzy.PresetHistory,
		CacheSize: 256,
		MinScore:  s.minScore,
	})
	return s
}

// Reset clears the query and match cursor, returning to the original
// buffer state. Bound to Ctrl-G (abort_line) per §4.5(iii).
func (s *Searcher) Reset() {
	s.query = ""
	s.hasPos = false
}

// SetQuery replaces the query string and returns the best match in the
// current direction, per §4.5(ii): "after every keystroke the history
// is scanned ... and the best match is shown".
func (s *Searcher) SetQuery(query string) (*Entry, bool) {
	s.query = query
	s.hasPos = false
	return s.Next()
}

// Query returns the current query string.
func (s *Searcher) Query() string { return s.query }

// SetDirection changes scan direction, used when the user switches
// between Ctrl-R and Ctrl-S mid-search.
func (s *Searcher) SetDirection(d Direction) { s.direction = d }

// Next returns the next match in the current direction relative to the
// last shown entry (or the top-ranked match, if none has been shown
// yet), cycling on repeated Ctrl-R/Ctrl-S, per §4.5(v).
func (s *Searcher) Next() (*Entry, bool) {
	candidates := s.rankedMatches()
	if len(candidates) == 0 {
		return nil, false
	}

	if !s.hasPos {
		e := candidates[0]
		s.position, s.hasPos = e.ID, true
		return e, true
	}

	idx := indexOfID(candidates, s.position)
	if idx < 0 {
		e := candidates[0]
		s.position = e.ID
		return e, true
	}

	var next int
	if s.direction == Forward {
		next = idx - 1
		if next < 0 {
			next = len(candidates) - 1
		}
	} else {
		next = idx + 1
		if next >= len(candidates) {
			next = 0
		}
	}
	e := candidates[next]
	s.position = e.ID
	return e, true
}

func indexOfID(entries []*Entry, id int64) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// rankedMatches scores every entry against the query under
// fuzzy.PresetHistory (via the Searcher's shared, cached Matcher),
// filters by minScore, and sorts by score descending with recency
// (creation time, newest first) as tiebreaker. An empty query matches
// every entry, most recent first, mirroring plain
// history-previous/history-next navigation.
func (s *Searcher) rankedMatches() []*Entry {
	all := s.store.Entries()

	if strings.TrimSpace(s.query) == "" {
		out := make([]*Entry, len(all))
		copy(out, all)
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
		return out
	}

	items := make([]fuzzy.Item, len(all))
	for i, e := range all {
		items[i] = fuzzy.Item{Text: e.Normalized, Data: e}
	}

	results := s.matcher.Match(s.query, items, 0)

	// results is already sorted by score descending (ties by text);
	// re-sort stably by recency first so equal-score ties fall back to
	// newest-first instead of alphabetical.
	sort.SliceStable(results, func(i, j int) bool {
		ei := results[i].Item.Data.(*Entry) //nolint:errcheck // items are always built from *Entry above
		ej := results[j].Item.Data.(*Entry) //nolint:errcheck // items are always built from *Entry above
		return ei.CreatedAt.After(ej.CreatedAt)
	})
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	out := make([]*Entry, len(results))
	for i, r := range results {
		out[i] = r.Item.Data.(*Entry) //nolint:errcheck // items are always built from *Entry above
	}
	return out
}
