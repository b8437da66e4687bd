package fuzzy

import (
	"container/heap"
	"context"
	"runtime"
	"sort"
	"strings"
	"sync"
)

// AsyncMatcher provides async fuzzy matching for large item sets (e.g.
// a history store with tens of thousands of entries). It parallelizes
// WeightedScore evaluation across worker goroutines.
type AsyncMatcher struct {
	matcher    *Matcher
	numWorkers int
}

// NewAsyncMatcher creates an async matcher with the given base matcher.
// If numWorkers is 0, it defaults to runtime.NumCPU().
// Panics if matcher is nil.
func NewAsyncMatcher(matcher *Matcher, numWorkers int) *AsyncMatcher {
	if matcher == nil {
		panic("fuzzy: NewAsyncMatcher called with nil matcher")
	}
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &AsyncMatcher{matcher: matcher, numWorkers: numWorkers}
}

// MatchAsync performs fuzzy matching asynchronously.
// Returns a channel that receives results as they are found.
//
// IMPORTANT: The caller MUST either:
//   - Drain the results channel completely, OR
//   - Call the returned cancel function to release resources
//
// Results are sent in score order (highest first).
func (m *AsyncMatcher) MatchAsync(ctx context.Context, query string, items []Item, limit int) (<-chan Result, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	results := make(chan Result, 100)

	go func() {
		defer close(results)
		collected := m.MatchParallel(ctx, query, items, limit)
		for _, r := range collected {
			select {
			case results <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	return results, cancel
}

// MatchParallel performs parallel matching and returns all results.
// Uses a top-k heap per worker for efficient memory usage with large
// item sets.
func (m *AsyncMatcher) MatchParallel(ctx context.Context, query string, items []Item, limit int) []Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return m.matcher.applyLimit(emptyQueryResults(items), limit)
	}

	chunkSize := (len(items) + m.numWorkers - 1) / m.numWorkers
	minChunkSize := 50
	if len(items) < 1000 {
		minChunkSize = 10
	}
	if chunkSize < minChunkSize {
		chunkSize = minChunkSize
	}

	workerLimit := limit
	if workerLimit > 0 {
		workerLimit = limit * 2
	}

	var wg sync.WaitGroup
	resultChan := make(chan []Result, m.numWorkers)

	for i := 0; i < len(items); i += chunkSize {
		end := i + chunkSize
		if end > len(items) {
			end = len(items)
		}

		wg.Add(1)
		go func(chunk []Item) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			default:
			}

			var chunkResults []Result
			if workerLimit > 0 {
				chunkResults = m.matchChunkTopK(ctx, query, chunk, workerLimit)
			} else {
				chunkResults = m.matchChunkAll(ctx, query, chunk)
			}

			select {
			case resultChan <- chunkResults:
			case <-ctx.Done():
			}
		}(items[i:end])
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	var allResults []Result
	for chunk := range resultChan {
		allResults = append(allResults, chunk...)
	}

	sort.Slice(allResults, func(i, j int) bool {
		if allResults[i].Score != allResults[j].Score {
			return allResults[i].Score > allResults[j].Score
		}
		return allResults[i].Item.Text < allResults[j].Item.Text
	})

	if limit > 0 && len(allResults) > limit {
		allResults = allResults[:limit]
	}

	return allResults
}

// matchChunkTopK matches items in a chunk and keeps only top-k results.
func (m *AsyncMatcher) matchChunkTopK(ctx context.Context, query string, chunk []Item, k int) []Result {
	h := &resultHeap{}
	heap.Init(h)

	for _, item := range chunk {
		select {
		case <-ctx.Done():
			return h.toSlice()
		default:
		}

		score := CachedWeightedScore(m.matcher.cache, query, item.Text, m.matcher.options.Preset)
		if score < m.matcher.options.MinScore {
			continue
		}
		if h.Len() < k {
			heap.Push(h, Result{Item: item, Score: score})
		} else if score > (*h)[0].Score {
			(*h)[0] = Result{Item: item, Score: score}
			heap.Fix(h, 0)
		}
	}

	return h.toSlice()
}

// matchChunkAll matches all items in a chunk (no limit).
func (m *AsyncMatcher) matchChunkAll(ctx context.Context, query string, chunk []Item) []Result {
	results := make([]Result, 0, len(chunk)/4)

	for _, item := range chunk {
		select {
		case <-ctx.Done():
			return results
		default:
		}

		score := CachedWeightedScore(m.matcher.cache, query, item.Text, m.matcher.options.Preset)
		if score >= m.matcher.options.MinScore {
			results = append(results, Result{Item: item, Score: score})
		}
	}

	return results
}

// resultHeap is a min-heap of Results by score (for top-k selection).
type resultHeap []Result

func (h resultHeap) Len() int           { return len(h) }
func (h resultHeap) Less(i, j int) bool { return h[i].Score < h[j].Score }
func (h resultHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *resultHeap) Push(x any) {
	*h = append(*h, x.(Result)) //nolint:errcheck // heap.Interface requires any; we only push Result
}

func (h *resultHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

func (h *resultHeap) toSlice() []Result {
	result := make([]Result, len(*h))
	copy(result, *h)
	return result
}

// StreamingMatcher provides incremental results as the user types,
// canceling any in-flight search when a new one starts. Used by
// reverse-i-search to keep the UI responsive against a large history.
type StreamingMatcher struct {
	matcher   *AsyncMatcher
	cancel    context.CancelFunc
	mu        sync.Mutex
	lastQuery string
}

// NewStreamingMatcher creates a streaming matcher.
// Panics if matcher is nil.
func NewStreamingMatcher(matcher *Matcher) *StreamingMatcher {
	if matcher == nil {
		panic("fuzzy: NewStreamingMatcher called with nil matcher")
	}
	return &StreamingMatcher{matcher: NewAsyncMatcher(matcher, 0)}
}

// Search starts a new search, canceling any previous search.
func (m *StreamingMatcher) Search(query string, items []Item, limit int) <-chan Result {
	return m.SearchWithContext(context.Background(), query, items, limit)
}

// SearchWithContext starts a new search with a custom context, canceling
// any previous search before starting the new one.
func (m *StreamingMatcher) SearchWithContext(ctx context.Context, query string, items []Item, limit int) <-chan Result {
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
	}
	m.lastQuery = query
	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.mu.Unlock()

	results, _ := m.matcher.MatchAsync(ctx, query, items, limit)
	return results
}

// Cancel stops the current search.
func (m *StreamingMatcher) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// LastQuery returns the most recent query string.
func (m *StreamingMatcher) LastQuery() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastQuery
}
