package idempotency

import (
	"sync"
	"time"
)

// Store is an add-if-absent keyed guard against duplicate POSTs. It mirrors
// cache.add semantics: the first Add for a key wins until the TTL expires.
type Store struct {
	mu   sync.Mutex
	keys map[string]time.Time

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		keys: make(map[string]time.Time),
		now:  time.Now,
	}
}

// Add records key for ttl and reports whether it was newly set. A second Add
// with the same key within the ttl returns false.
func (s *Store) Add(key string, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if deadline, ok := s.keys[key]; ok && now.Before(deadline) {
		return false
	}

	s.keys[key] = now.Add(ttl)
	s.evictExpired(now)
	return true
}

// caller holds mu
func (s *Store) evictExpired(now time.Time) {
	for k, deadline := range s.keys {
		if !now.Before(deadline) {
			delete(s.keys, k)
		}
	}
}
