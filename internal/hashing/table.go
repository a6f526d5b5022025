package hashing

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

type tableKey struct {
	hash  uint64
	depth int
}

// Table stores perft results by position hash and depth. It is safe for
// concurrent use.
type Table struct {
	mu         sync.RWMutex
	entries    map[tableKey]engine.PerftResult
	maxEntries int

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewTable creates an empty table. maxEntries of 0 means unlimited capacity.
func NewTable(maxEntries int) *Table {
	return &Table{
		entries:    make(map[tableKey]engine.PerftResult),
		maxEntries: maxEntries,
	}
}

// Get returns the stored result for a position hash at the given depth.
func (t *Table) Get(hash uint64, depth int) (engine.PerftResult, bool) {
	t.mu.RLock()
	r, ok := t.entries[tableKey{hash, depth}]
	t.mu.RUnlock()

	if ok {
		t.hits.Add(1)
	} else {
		t.misses.Add(1)
	}
	return r, ok
}

// Put stores a result. It is a no-op once the table is full.
func (t *Table) Put(hash uint64, depth int, r engine.PerftResult) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.maxEntries > 0 && len(t.entries) >= t.maxEntries {
		return
	}
	t.entries[tableKey{hash, depth}] = r
}

// Len returns the number of stored results.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxEntries = 0).
func (t *Table) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.maxEntries > 0 && len(t.entries) >= t.maxEntries
}

// Hits returns the number of successful lookups.
func (t *Table) Hits() uint64 { return t.hits.Load() }

// Misses returns the number of failed lookups.
func (t *Table) Misses() uint64 { return t.misses.Load() }

// Reset clears the table and its counters.
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = make(map[tableKey]engine.PerftResult)
	t.hits.Store(0)
	t.misses.Store(0)
}
