// Package memstore provides concurrency-safe in-memory tables.
// All data lives for the process lifetime only; a restart loses everything.
package memstore

import "sync"

// Table is a concurrency-safe map from K to V.
// Values are stored and returned by copy, so callers never share
// interior pointers with the table.
type Table[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// NewTable creates an empty Table.
func NewTable[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{entries: make(map[K]V)}
}

// Insert adds or overwrites the entry for key.
// Concurrent inserts for the same key are last-writer-wins.
func (t *Table[K, V]) Insert(key K, value V) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[key] = value
}

// InsertIfAbsent adds the entry only when the key has no value yet.
// It reports whether the insert happened. The check and the insert run
// under one lock, so exactly one of several concurrent callers wins.
func (t *Table[K, V]) InsertIfAbsent(key K, value V) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.entries[key]; ok {
		return false
	}
	t.entries[key] = value
	return true
}

// Get returns the value for key and whether it exists.
func (t *Table[K, V]) Get(key K) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.entries[key]
	return v, ok
}

// Delete removes the entry for key and reports whether it existed.
func (t *Table[K, V]) Delete(key K) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.entries[key]; !ok {
		return false
	}
	delete(t.entries, key)
	return true
}

// Snapshot returns an unordered copy of all current values.
func (t *Table[K, V]) Snapshot() []V {
	t.mu.RLock()
	defer t.mu.RUnlock()
	values := make([]V, 0, len(t.entries))
	for _, v := range t.entries {
		values = append(values, v)
	}
	return values
}

// Len returns the number of entries.
func (t *Table[K, V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
