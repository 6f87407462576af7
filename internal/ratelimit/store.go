package ratelimit

import (
	"sync"
	"time"
)

// Window is the recent request history of one client.
type Window struct {
	// Timestamps are admitted request times, oldest first.
	Timestamps []time.Time
	// Span is the window length last applied to this client.
	Span time.Duration
}

// idleAt reports whether every timestamp has aged out at now.
func (w Window) idleAt(now time.Time) bool {
	if len(w.Timestamps) == 0 {
		return true
	}
	newest := w.Timestamps[len(w.Timestamps)-1]
	return !newest.After(now.Add(-w.Span))
}

// Store holds per-client windows. Implementations must be safe for
// concurrent use. Callers treat stored Timestamps as immutable.
type Store interface {
	Get(clientID string) (Window, bool)
	Put(clientID string, w Window)
	Delete(clientID string)

	// Prune removes windows with no timestamp left inside their span at now
	// and returns how many were removed.
	Prune(now time.Time) int

	Len() int
}

// MemoryStore is a map-backed Store.
type MemoryStore struct {
	mu      sync.RWMutex
	windows map[string]Window
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{windows: make(map[string]Window)}
}

func (s *MemoryStore) Get(clientID string) (Window, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.windows[clientID]
	return w, ok
}

func (s *MemoryStore) Put(clientID string, w Window) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windows[clientID] = w
}

func (s *MemoryStore) Delete(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.windows, clientID)
}

func (s *MemoryStore) Prune(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, w := range s.windows {
		if w.idleAt(now) {
			delete(s.windows, id)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.windows)
}
