package fuzzy

import (
	"sort"
	"strings"
)

// Item represents a searchable item.
type Item struct {
	// Text is the string to match against.
	Text string

	// Data is arbitrary data associated with this item.
	Data any
}

// Result represents a match result with scoring information.
type Result struct {
	// Item is the matched item.
	Item Item

	// Score is the weighted combined score (0-100, higher is better).
	Score int
}

// Matcher ranks a candidate list against a query using WeightedScore
// under a chosen preset, with an optional pairwise result cache.
type Matcher struct {
	cache   *ScoreCache
	options Options
}

// Options configures the matcher behavior.
type Options struct {
	// Preset selects the scoring weights. Zero value is PresetDefault.
	Preset Preset

	// CacheSize is the maximum number of cached (query, item) scores.
	// Set to 0 to disable caching.
	CacheSize int

	// MinScore is the minimum score for a match to be included.
	MinScore int

	// CaseSensitive is not consulted by Match or MatchAsync: the
	// scoring functions always fold ASCII case, whatever its value.
	CaseSensitive bool
}

// DefaultOptions returns sensible default options using PresetDefault.
func DefaultOptions() Options {
	return Options{
		Preset:    PresetDefault,
		CacheSize: 1000,
		MinScore:  0,
	}
}

// NewMatcher creates a new fuzzy matcher with the given options.
func NewMatcher(opts Options) *Matcher {
	if opts.Preset.Name == "" {
		opts.Preset = PresetDefault
	}
	var cache *ScoreCache
	if opts.CacheSize > 0 {
		cache = NewScoreCache(opts.CacheSize)
	}
	return &Matcher{cache: cache, options: opts}
}

// Match scores every item against query and returns results sorted by
// score descending, ties broken by text for determinism.
func (m *Matcher) Match(query string, items []Item, limit int) []Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return m.applyLimit(emptyQueryResults(items), limit)
	}

	results := make([]Result, 0, len(items))
	for _, item := range items {
		score := CachedWeightedScore(m.cache, query, item.Text, m.options.Preset)
		if score >= m.options.MinScore {
			results = append(results, Result{Item: item, Score: score})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Item.Text < results[j].Item.Text
	})

	return m.applyLimit(results, limit)
}

func emptyQueryResults(items []Item) []Result {
	results := make([]Result, len(items))
	for i, item := range items {
		results[i] = Result{Item: item, Score: 0}
	}
	return results
}

func (m *Matcher) applyLimit(results []Result, limit int) []Result {
	if limit <= 0 || limit >= len(results) {
		return results
	}
	return results[:limit]
}

// ClearCache clears the result cache.
func (m *Matcher) ClearCache() {
	if m.cache != nil {
		m.cache.Clear()
	}
}
