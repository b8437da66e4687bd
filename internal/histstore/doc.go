// Package histstore is the history integrator from spec §3/§4.5: a
// bounded ring buffer of history entries with hashtable-backed duplicate
// detection, shell-construct structure analysis and re-indentation for
// multi-line recall, fuzzy interactive search (reverse-i-search and
// friends), and a TTL/LRU cache over reconstructed recall strings.
//
// # Store
//
// Store owns every Entry exclusively, per §3's ownership summary. Adding
// a normalized command that is already present returns the existing
// entry's id instead of creating a duplicate, the same "ignoredups"
// behavior shells apply to history files. Leading-space commands are
// rejected outright, per shell convention.
//
// # Recall
//
// Recall reproduces a history entry's original multi-line form (falling
// back to the normalized single-line form when no original was kept),
// running structure analysis and re-indentation on multi-line entries.
// The structural annotation is cached on the Entry so a second recall of
// the same entry skips re-analysis.
//
// # Search
//
// Searcher implements the interactive reverse-i-search sub-state from
// §4.5: each keystroke narrows or widens a query string, and the store
// is rescanned using internal/fuzzy's PresetHistory weights, ranked by
// score with recency as tiebreaker.
package histstore
