package sessions

import (
	"sync"
	"time"
)

type entry struct {
	mu      sync.Mutex
	session *Session
	expires time.Time
}

// store holds live sessions in memory with a TTL. Each entry carries its
// own mutex so concurrent turns on the same session run one at a time while
// different sessions proceed independently.
type store struct {
	mu      sync.RWMutex
	entries map[string]*entry
	ttl     time.Duration
}

func newStore(ttl time.Duration) *store {
	return &store{
		entries: make(map[string]*entry),
		ttl:     ttl,
	}
}

func (s *store) get(id string) (*entry, bool) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expires) {
		s.remove(id)
		return nil, false
	}
	return e, true
}

// getOrCreate returns the live entry for id, creating a fresh session when
// absent or expired.
func (s *store) getOrCreate(id string) *entry {
	if e, ok := s.get(id); ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[id]; ok && time.Now().Before(e.expires) {
		return e
	}

	now := time.Now()
	e := &entry{
		session: &Session{
			ID:           id,
			Stage:        StageInitial,
			CreatedAt:    now,
			LastActivity: now,
		},
		expires: now.Add(s.ttl),
	}
	s.entries[id] = e
	return e
}

func (s *store) remove(id string) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

// sweep drops every expired entry and reports how many were removed.
func (s *store) sweep() int {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.entries {
		if now.After(e.expires) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

func (s *store) touch(e *entry) {
	s.mu.Lock()
	e.expires = time.Now().Add(s.ttl)
	s.mu.Unlock()
}

func (s *store) count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
