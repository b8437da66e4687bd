package fuzzy

import (
	"context"
	"testing"
)

func TestLevenshteinIdentical(t *testing.T) {
	if d := Levenshtein("kitten", "kitten", false); d != 0 {
		t.Fatalf("Levenshtein identical = %d, want 0", d)
	}
}

func TestLevenshteinClassic(t *testing.T) {
	if d := Levenshtein("kitten", "sitting", false); d != 3 {
		t.Fatalf("Levenshtein(kitten, sitting) = %d, want 3", d)
	}
}

func TestLevenshteinEmpty(t *testing.T) {
	if d := Levenshtein("", "abc", false); d != 3 {
		t.Fatalf("Levenshtein(\"\", abc) = %d, want 3", d)
	}
	if d := Levenshtein("abc", "", false); d != 3 {
		t.Fatalf("Levenshtein(abc, \"\") = %d, want 3", d)
	}
}

func TestLevenshteinCaseFold(t *testing.T) {
	if d := Levenshtein("ABC", "abc", false); d != 0 {
		t.Fatalf("Levenshtein case-insensitive = %d, want 0", d)
	}
	if d := Levenshtein("ABC", "abc", true); d != 3 {
		t.Fatalf("Levenshtein case-sensitive = %d, want 3", d)
	}
}

func TestJaroWinklerIdentical(t *testing.T) {
	if s := JaroWinkler("martha", "martha"); s != 1 {
		t.Fatalf("JaroWinkler identical = %v, want 1", s)
	}
}

func TestJaroWinklerClassic(t *testing.T) {
	s := JaroWinkler("MARTHA", "MARHTA")
	if s < 0.94 || s > 0.98 {
		t.Fatalf("JaroWinkler(MARTHA, MARHTA) = %v, want ~0.961", s)
	}
}

func TestJaroWinklerDisjoint(t *testing.T) {
	if s := JaroWinkler("abc", "xyz"); s != 0 {
		t.Fatalf("JaroWinkler disjoint = %v, want 0", s)
	}
}

func TestJaroWinklerPrefixBonusCapsAtFour(t *testing.T) {
	four := JaroWinkler("abcdxx", "abcdyy")
	six := JaroWinkler("abcdefxx", "abcdefyy")
	if six < four {
		t.Fatalf("longer shared prefix scored lower: four=%v six=%v", four, six)
	}
}

func TestCommonPrefixLength(t *testing.T) {
	if n := CommonPrefixLength("gitstatus", "gitcommit", false); n != 3 {
		t.Fatalf("CommonPrefixLength = %d, want 3", n)
	}
	if n := CommonPrefixLength("abc", "xyz", false); n != 0 {
		t.Fatalf("CommonPrefixLength disjoint = %d, want 0", n)
	}
}

func TestCommonPrefixLengthCaseSensitive(t *testing.T) {
	if n := CommonPrefixLength("ABC", "abc", true); n != 0 {
		t.Fatalf("CommonPrefixLength case-sensitive = %d, want 0", n)
	}
	if n := CommonPrefixLength("ABC", "abc", false); n != 3 {
		t.Fatalf("CommonPrefixLength case-insensitive = %d, want 3", n)
	}
}

func TestSubsequenceScoreFullMatch(t *testing.T) {
	if s := SubsequenceScore("gts", "git status", false); s != 100 {
		t.Fatalf("SubsequenceScore full match = %d, want 100", s)
	}
}

func TestSubsequenceScorePartial(t *testing.T) {
	if s := SubsequenceScore("gx", "git", false); s != 50 {
		t.Fatalf("SubsequenceScore partial = %d, want 50", s)
	}
}

func TestSubsequenceScoreEmptyPattern(t *testing.T) {
	if s := SubsequenceScore("", "anything", false); s != 100 {
		t.Fatalf("SubsequenceScore empty pattern = %d, want 100", s)
	}
}

func TestWeightedScoreIdenticalFoldShortCircuits(t *testing.T) {
	if s := WeightedScore("status", "STATUS", PresetDefault); s != 100 {
		t.Fatalf("WeightedScore identical (fold) = %d, want 100", s)
	}
}

func TestWeightedScoreInRange(t *testing.T) {
	for _, p := range []Preset{PresetDefault, PresetCompletion, PresetHistory} {
		s := WeightedScore("chekcout", "checkout", p)
		if s < 0 || s > 100 {
			t.Fatalf("WeightedScore(%s) = %d, out of [0,100]", p.Name, s)
		}
		if s < 50 {
			t.Fatalf("WeightedScore(%s) for near-typo = %d, want a high score", p.Name, s)
		}
	}
}

func TestWeightedScoreCompletionFavorsPrefix(t *testing.T) {
	prefixMatch := WeightedScore("check", "checkout-branch", PresetCompletion)
	midMatch := WeightedScore("branch", "checkout-branch", PresetCompletion)
	if prefixMatch <= midMatch {
		t.Fatalf("completion preset should favor prefix match: prefix=%d mid=%d", prefixMatch, midMatch)
	}
}

func TestScoreCacheHitReturnsSameValue(t *testing.T) {
	cache := NewScoreCache(10)
	s1 := CachedWeightedScore(cache, "abc", "abcdef", PresetDefault)
	if cache.Len() != 1 {
		t.Fatalf("ScoreCache.Len() = %d, want 1", cache.Len())
	}
	s2 := CachedWeightedScore(cache, "abc", "abcdef", PresetDefault)
	if s1 != s2 {
		t.Fatalf("cached score mismatch: %d != %d", s1, s2)
	}
}

func TestScoreCacheKeyIncludesPreset(t *testing.T) {
	cache := NewScoreCache(10)
	CachedWeightedScore(cache, "abc", "abcdef", PresetDefault)
	CachedWeightedScore(cache, "abc", "abcdef", PresetHistory)
	if cache.Len() != 2 {
		t.Fatalf("ScoreCache.Len() = %d, want 2 (distinct presets)", cache.Len())
	}
}

func TestScoreCacheEvictsLRU(t *testing.T) {
	cache := NewScoreCache(2)
	CachedWeightedScore(cache, "a", "1", PresetDefault)
	CachedWeightedScore(cache, "b", "2", PresetDefault)
	CachedWeightedScore(cache, "c", "3", PresetDefault)
	if cache.Len() != 2 {
		t.Fatalf("ScoreCache.Len() = %d, want 2", cache.Len())
	}
	if _, ok := cache.Get("a", "1", PresetDefault); ok {
		t.Fatalf("expected oldest entry to be evicted")
	}
}

func TestScoreCacheClear(t *testing.T) {
	cache := NewScoreCache(10)
	CachedWeightedScore(cache, "a", "1", PresetDefault)
	cache.Clear()
	if cache.Len() != 0 {
		t.Fatalf("ScoreCache.Len() after Clear = %d, want 0", cache.Len())
	}
}

func TestCachedWeightedScoreNilCacheDisabled(t *testing.T) {
	s := CachedWeightedScore(nil, "abc", "abcdef", PresetDefault)
	want := WeightedScore("abc", "abcdef", PresetDefault)
	if s != want {
		t.Fatalf("CachedWeightedScore(nil, ...) = %d, want %d", s, want)
	}
}

func TestMatcherMatchSortsByScoreDescending(t *testing.T) {
	m := NewMatcher(DefaultOptions())
	items := []Item{{Text: "checkout"}, {Text: "commit"}, {Text: "chekcout"}}
	results := m.Match("checkout", items, 0)
	if len(results) == 0 {
		t.Fatalf("expected results")
	}
	if results[0].Item.Text != "checkout" {
		t.Fatalf("best match = %q, want %q", results[0].Item.Text, "checkout")
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatalf("results not sorted by score descending at index %d", i)
		}
	}
}

func TestMatcherMatchRespectsLimit(t *testing.T) {
	m := NewMatcher(DefaultOptions())
	items := []Item{{Text: "a"}, {Text: "b"}, {Text: "c"}}
	results := m.Match("x", items, 1)
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
}

func TestMatcherEmptyQueryReturnsAllWithZeroScore(t *testing.T) {
	m := NewMatcher(DefaultOptions())
	items := []Item{{Text: "a"}, {Text: "b"}}
	results := m.Match("  ", items, 0)
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	for _, r := range results {
		if r.Score != 0 {
			t.Fatalf("expected zero score for empty query, got %d", r.Score)
		}
	}
}

func TestMatcherMinScoreFiltersResults(t *testing.T) {
	opts := DefaultOptions()
	opts.MinScore = 99
	m := NewMatcher(opts)
	items := []Item{{Text: "checkout"}, {Text: "totally-unrelated-word"}}
	results := m.Match("checkout", items, 0)
	for _, r := range results {
		if r.Item.Text == "totally-unrelated-word" {
			t.Fatalf("expected low-score item to be filtered by MinScore")
		}
	}
}

func TestMatcherClearCache(t *testing.T) {
	m := NewMatcher(DefaultOptions())
	m.Match("abc", []Item{{Text: "abcdef"}}, 0)
	m.ClearCache()
	if m.cache.Len() != 0 {
		t.Fatalf("expected cache cleared")
	}
}

func TestAsyncMatcherMatchesSerialMatcher(t *testing.T) {
	m := NewMatcher(DefaultOptions())
	items := make([]Item, 0, 200)
	for i := 0; i < 200; i++ {
		items = append(items, Item{Text: "command-" + string(rune('a'+i%26))})
	}

	serial := m.Match("command-a", items, 5)

	async := NewAsyncMatcher(m, 4)
	parallel := async.MatchParallel(context.Background(), "command-a", items, 5)

	if len(serial) != len(parallel) {
		t.Fatalf("len mismatch: serial=%d parallel=%d", len(serial), len(parallel))
	}
	for i := range serial {
		if serial[i].Score != parallel[i].Score {
			t.Fatalf("score mismatch at %d: serial=%d parallel=%d", i, serial[i].Score, parallel[i].Score)
		}
	}
}

func TestAsyncMatcherNewPanicsOnNilMatcher(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on nil matcher")
		}
	}()
	NewAsyncMatcher(nil, 1)
}

func TestAsyncMatcherMatchAsyncDrains(t *testing.T) {
	m := NewMatcher(DefaultOptions())
	async := NewAsyncMatcher(m, 2)
	items := []Item{{Text: "alpha"}, {Text: "beta"}, {Text: "gamma"}}

	ch, cancel := async.MatchAsync(context.Background(), "alpha", items, 0)
	defer cancel()

	var got []Result
	for r := range ch {
		got = append(got, r)
	}
	if len(got) == 0 {
		t.Fatalf("expected results from MatchAsync")
	}
}

func TestStreamingMatcherCancelsPreviousSearch(t *testing.T) {
	m := NewMatcher(DefaultOptions())
	sm := NewStreamingMatcher(m)
	items := []Item{{Text: "alpha"}, {Text: "beta"}}

	ch1 := sm.Search("a", items, 0)
	ch2 := sm.Search("b", items, 0)

	for range ch1 {
	}
	for range ch2 {
	}

	if sm.LastQuery() != "b" {
		t.Fatalf("LastQuery() = %q, want %q", sm.LastQuery(), "b")
	}
	sm.Cancel()
}

func TestStreamingMatcherNewPanicsOnNilMatcher(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on nil matcher")
		}
	}()
	NewStreamingMatcher(nil)
}
