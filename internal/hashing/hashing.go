// Package hashing provides position counting for repetition detection.
package hashing

import "hash/fnv"

// PositionCount tracks how many times a position has been reached.
type PositionCount struct {
	// Key is the canonical position key
	Key string
	// Count is the number of occurrences so far
	Count int
}

// RepetitionTable counts occurrences of canonical position keys.
// Keys are bucketed by a 64-bit FNV-1a hash and compared exactly within a
// bucket, so hash collisions never merge distinct positions.
type RepetitionTable struct {
	buckets map[uint64][]*PositionCount
	// positions is the number of distinct keys
	positions int
}

// NewRepetitionTable creates an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{
		buckets: make(map[uint64][]*PositionCount),
	}
}

// Record adds one occurrence of key and returns the updated count.
func (t *RepetitionTable) Record(key string) int {
	h := HashKey(key)
	for _, pc := range t.buckets[h] {
		if pc.Key == key {
			pc.Count++
			return pc.Count
		}
	}

	t.buckets[h] = append(t.buckets[h], &PositionCount{Key: key, Count: 1})
	t.positions++
	return 1
}

// Count returns how many times key has been recorded.
func (t *RepetitionTable) Count(key string) int {
	for _, pc := range t.buckets[HashKey(key)] {
		if pc.Key == key {
			return pc.Count
		}
	}
	return 0
}

// Positions returns the number of distinct positions recorded.
func (t *RepetitionTable) Positions() int {
	return t.positions
}

// Reset clears the table.
func (t *RepetitionTable) Reset() {
	t.buckets = make(map[uint64][]*PositionCount)
	t.positions = 0
}

// HashKey returns the 64-bit FNV-1a hash of a position key.
func HashKey(key string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return h.Sum64()
}
