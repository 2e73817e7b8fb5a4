// Package cache provides the in-process TTL cache that sits between the
// facade and the vendor API. Entries expire lazily: Get treats an expired
// entry as absent but never deletes it, and Set unconditionally overwrites.
// The key set is small and fixed per zone, so unbounded growth is not a
// concern in practice.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Store is a mutex-guarded key/value map with per-entry TTL. A zero TTL or
// negative TTL produces an entry that is already expired.
type Store struct {
	mu   sync.RWMutex
	data map[string]entry

	// now is swappable for tests.
	now func() time.Time
}

// New returns an empty store.
func New() *Store {
	return &Store{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

// Get returns the stored value only while the current time is strictly
// before the entry's expiry; otherwise it reports a miss. Expired entries
// stay in the map until the next Set overwrites them.
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok || !s.now().Before(e.expiresAt) {
		cacheMisses.Inc()
		return nil, false
	}
	cacheHits.Inc()
	return e.value, true
}

// Set stores value under key with expiry = now + ttl, overwriting any prior
// entry. Each Set is atomic: readers never observe a partially written entry.
func (s *Store) Set(key string, value any, ttl time.Duration) {
	s.mu.Lock()
	s.data[key] = entry{value: value, expiresAt: s.now().Add(ttl)}
	s.mu.Unlock()
}

// Len reports the number of entries, expired ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
