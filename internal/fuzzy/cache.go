package fuzzy

import (
	"container/list"
	"sync"
)

// ScoreCache memoizes WeightedScore results keyed on the string pair and
// the preset used, with LRU eviction. Safe for concurrent use.
type ScoreCache struct {
	mu      sync.RWMutex
	maxSize int
	items   map[scoreCacheKey]*list.Element
	lru     *list.List
}

type scoreCacheKey struct {
	s1, s2 string
	preset string
}

type scoreCacheEntry struct {
	key   scoreCacheKey
	score int
}

// NewScoreCache creates an LRU score cache with the given maximum size.
func NewScoreCache(maxSize int) *ScoreCache {
	if maxSize <= 0 {
		maxSize = 100
	}
	return &ScoreCache{
		maxSize: maxSize,
		items:   make(map[scoreCacheKey]*list.Element),
		lru:     list.New(),
	}
}

// Get returns the cached score for (s1, s2) under preset, if present.
func (c *ScoreCache) Get(s1, s2 string, preset Preset) (int, bool) {
	key := scoreCacheKey{s1: s1, s2: s2, preset: preset.Name}

	c.mu.RLock()
	elem, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return 0, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok = c.items[key]
	if !ok {
		return 0, false
	}
	c.lru.MoveToFront(elem)
	return elem.Value.(*scoreCacheEntry).score, true //nolint:errcheck // list only contains *scoreCacheEntry
}

// Set stores the score for (s1, s2) under preset.
func (c *ScoreCache) Set(s1, s2 string, preset Preset, score int) {
	key := scoreCacheKey{s1: s1, s2: s2, preset: preset.Name}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.lru.MoveToFront(elem)
		elem.Value.(*scoreCacheEntry).score = score //nolint:errcheck // list only contains *scoreCacheEntry
		return
	}

	if c.lru.Len() >= c.maxSize {
		if oldest := c.lru.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}

	entry := &scoreCacheEntry{key: key, score: score}
	c.items[key] = c.lru.PushFront(entry)
}

// Clear removes all entries from the cache.
func (c *ScoreCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[scoreCacheKey]*list.Element)
	c.lru.Init()
}

// Len returns the number of cached entries.
func (c *ScoreCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lru.Len()
}

func (c *ScoreCache) removeElement(elem *list.Element) {
	c.lru.Remove(elem)
	entry := elem.Value.(*scoreCacheEntry) //nolint:errcheck // list only contains *scoreCacheEntry
	delete(c.items, entry.key)
}

// CachedWeightedScore computes WeightedScore(s1, s2, preset), consulting
// and populating cache. A nil cache disables caching.
func CachedWeightedScore(cache *ScoreCache, s1, s2 string, preset Preset) int {
	if cache == nil {
		return WeightedScore(s1, s2, preset)
	}
	if score, ok := cache.Get(s1, s2, preset); ok {
		return score
	}
	score := WeightedScore(s1, s2, preset)
	cache.Set(s1, s2, preset, score)
	return score
}
