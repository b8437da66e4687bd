// Package fuzzy is a pure, stateless string-similarity library: four
// scoring primitives (Levenshtein distance, Jaro-Winkler similarity,
// common-prefix length, subsequence score) and a weighted combination
// of them selected by named preset.
//
// # Presets
//
// PresetDefault favors edit distance and is suited to autocorrect-style
// "did you mean" suggestions. PresetCompletion favors prefix matches, as
// is appropriate for tab-completion candidates. PresetHistory favors
// Jaro-Winkler, which tolerates transpositions and mid-string edits
// better than edit distance alone — useful for reverse-i-search over
// previously typed commands.
//
// # Matching over a candidate list
//
// Matcher and AsyncMatcher rank a slice of Item against a query using
// WeightedScore. AsyncMatcher parallelizes the scan across worker
// goroutines with a top-k heap per worker, for history stores large
// enough that a linear scan would be noticeable.
//
//	matcher := fuzzy.NewMatcher(fuzzy.DefaultOptions())
//	results := matcher.Match("gt", []fuzzy.Item{{Text: "git status"}}, 10)
//
// # Caching
//
// ScoreCache memoizes WeightedScore results keyed on the string pair and
// the preset name, with LRU eviction. Matcher and AsyncMatcher share one
// cache instance across calls when constructed with a nonzero CacheSize.
package fuzzy
