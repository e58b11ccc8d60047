package hashing

import "sync"

// ThreadSafeRepetitionTable wraps RepetitionTable with mutex protection for
// concurrent access. Worker goroutines use it to spot replays that finish in
// the same position.
type ThreadSafeRepetitionTable struct {
	table *RepetitionTable
	mu    sync.RWMutex
}

// NewThreadSafeRepetitionTable creates an empty thread-safe table.
func NewThreadSafeRepetitionTable() *ThreadSafeRepetitionTable {
	return &ThreadSafeRepetitionTable{
		table: NewRepetitionTable(),
	}
}

// Record atomically adds one occurrence of key and returns the updated count.
func (t *ThreadSafeRepetitionTable) Record(key string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Record(key)
}

// Count returns how many times key has been recorded.
func (t *ThreadSafeRepetitionTable) Count(key string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Count(key)
}

// Positions returns the number of distinct keys recorded.
func (t *ThreadSafeRepetitionTable) Positions() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Positions()
}
