// Package cache provides the TTL response cache that sits in front of upstream calls.
package cache

import (
	"sync"
	"time"
)

// Entry is a cached value and the instant it stops being valid.
type Entry struct {
	Value     any
	ExpiresAt time.Time
}

// ExpiredAt reports whether the entry is stale at now.
// An entry is only valid while now is strictly before ExpiresAt.
func (e Entry) ExpiredAt(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}

// Store holds cache entries. Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the live entry for key. An expired entry is removed
	// and reported as missing.
	Get(key string, now time.Time) (Entry, bool)

	// Put stores or overwrites the entry for key.
	Put(key string, e Entry)

	// Delete removes key.
	Delete(key string)

	// Prune removes every entry expired at now and returns how many were removed.
	Prune(now time.Time) int

	// Len returns the number of stored entries, including expired ones not yet pruned.
	Len() int
}

// MemoryStore is a map-backed Store.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

func (s *MemoryStore) Get(key string, now time.Time) (Entry, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return Entry{}, false
	}
	if !e.ExpiredAt(now) {
		return e, true
	}

	s.mu.Lock()
	// A writer may have replaced the entry after the read lock was released.
	if cur, ok := s.entries[key]; ok && cur.ExpiredAt(now) {
		delete(s.entries, key)
	}
	s.mu.Unlock()
	return Entry{}, false
}

func (s *MemoryStore) Put(key string, e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = e
}

func (s *MemoryStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

func (s *MemoryStore) Prune(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, e := range s.entries {
		if e.ExpiredAt(now) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
