package scratch

import (
	"context"
	"maps"
	"sync"
	"time"
)

type memoryEntry struct {
	values    map[string]string
	expiresAt time.Time
}

// memoryStore implements Store in process memory. Suitable for a single
// replica and for tests.
type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]*memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

func newMemoryStore(ttl time.Duration, now func() time.Time) *memoryStore {
	return &memoryStore{
		sessions: make(map[string]*memoryEntry),
		ttl:      ttl,
		now:      now,
	}
}

func (s *memoryStore) Get(_ context.Context, sessionID string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[sessionID]
	if !ok {
		return map[string]string{}, nil
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.sessions, sessionID)
		return map[string]string{}, nil
	}
	return maps.Clone(e.values), nil
}

func (s *memoryStore) Put(_ context.Context, sessionID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[sessionID]
	if !ok || !s.now().Before(e.expiresAt) {
		e = &memoryEntry{values: make(map[string]string)}
		s.sessions[sessionID] = e
	}
	e.values[key] = value
	e.expiresAt = s.now().Add(s.ttl)
	return nil
}

func (s *memoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}
