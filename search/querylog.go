package search

import (
	"sync"

	"github.com/poiesic/berkut/core"
)

// QueryLog records the ranked result of each search, keyed by normalized
// query text. It is a write-through log owned by the caller: the searcher
// overwrites the entry for a query on every search and never reads one back
// as a shortcut, so attaching a log cannot change search results.
type QueryLog struct {
	mu      sync.Mutex
	entries map[string][]*core.SearchResult
}

// NewQueryLog creates an empty query log.
func NewQueryLog() *QueryLog {
	return &QueryLog{
		entries: make(map[string][]*core.SearchResult),
	}
}

// Get returns the last recorded results for a normalized query.
func (l *QueryLog) Get(normalizedQuery string) ([]*core.SearchResult, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	results, ok := l.entries[normalizedQuery]
	return results, ok
}

// Len returns the number of recorded queries.
func (l *QueryLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// invalidate drops the entry for a query. The searcher calls this before
// computing, so a failed search never leaves a stale entry behind.
func (l *QueryLog) invalidate(normalizedQuery string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, normalizedQuery)
}

// put records the ranked results for a query.
func (l *QueryLog) put(normalizedQuery string, results []*core.SearchResult) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[normalizedQuery] = results
}
