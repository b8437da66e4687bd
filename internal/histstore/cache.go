package histstore

import (
	"container/list"
	"sync"
	"time"
)

// DefaultRecallCacheSize and DefaultRecallTTL are §4.5's recall-cache
// defaults, sized for the "≥75% hit rate for typical navigation
// patterns" target: a user scrolling history_previous/history_next
// repeatedly revisits the same handful of recent entries.
const (
	DefaultRecallCacheSize = 128
	DefaultRecallTTL       = 5 * time.Minute
)

// RecallCache memoizes reconstructed recall strings keyed on
// (entry id, reconstruction profile), per §4.5. A "reconstruction
// profile" distinguishes recall variants of the same entry — e.g. one
// profile for the re-indented form and another for the raw original —
// so caching one doesn't serve a request for the other. Entries expire
// after a TTL and are evicted LRU-first once the cache is full, the
// same technique as fuzzy.ScoreCache, adapted here with an expiry
// check on Get.
type RecallCache struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	items   map[recallKey]*list.Element
	lru     *list.List
}

type recallKey struct {
	entryID int64
	profile string
}

type recallCacheEntry struct {
	key       recallKey
	value     string
	expiresAt time.Time
}

// NewRecallCache creates a recall cache with the given capacity and
// TTL. A zero or negative maxSize/ttl falls back to the package
// defaults.
func NewRecallCache(maxSize int, ttl time.Duration) *RecallCache {
	if maxSize <= 0 {
		maxSize = DefaultRecallCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultRecallTTL
	}
	return &RecallCache{
		maxSize: maxSize,
		ttl:     ttl,
		items:   make(map[recallKey]*list.Element),
		lru:     list.New(),
	}
}

// Get returns the cached reconstruction for (entryID, profile), if
// present and not expired. An expired entry is evicted on lookup.
func (c *RecallCache) Get(entryID int64, profile string) (string, bool) {
	key := recallKey{entryID: entryID, profile: profile}

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return "", false
	}
	entry := elem.Value.(*recallCacheEntry) //nolint:errcheck // list only contains *recallCacheEntry
	if time.Now().After(entry.expiresAt) {
		c.removeElement(elem)
		return "", false
	}
	c.lru.MoveToFront(elem)
	return entry.value, true
}

// Set stores the reconstruction for (entryID, profile).
func (c *RecallCache) Set(entryID int64, profile, value string) {
	key := recallKey{entryID: entryID, profile: profile}
	expiresAt := time.Now().Add(c.ttl)

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.lru.MoveToFront(elem)
		entry := elem.Value.(*recallCacheEntry) //nolint:errcheck // list only contains *recallCacheEntry
		entry.value = value
		entry.expiresAt = expiresAt
		return
	}

	if c.lru.Len() >= c.maxSize {
		if oldest := c.lru.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}

	entry := &recallCacheEntry{key: key, value: value, expiresAt: expiresAt}
	c.items[key] = c.lru.PushFront(entry)
}

// Invalidate removes every cached reconstruction for entryID, called
// when the entry's content or structure annotation changes (e.g. after
// MarkEdited).
func (c *RecallCache) Invalidate(entryID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, elem := range c.items {
		if key.entryID == entryID {
			c.removeElement(elem)
		}
	}
}

// Len returns the number of live (not necessarily unexpired) entries.
func (c *RecallCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

func (c *RecallCache) removeElement(elem *list.Element) {
	c.lru.Remove(elem)
	entry := elem.Value.(*recallCacheEntry) //nolint:errcheck // list only contains *recallCacheEntry
	delete(c.items, entry.key)
}
