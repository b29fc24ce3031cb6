package session

import (
	"context"
	"sync"
	"time"
)

type memoryRecord struct {
	userID    uint
	expiresAt time.Time
}

// MemoryStore is a mutex-guarded in-process store. Fine for a single-process
// deployment and for tests; sessions do not survive a restart.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryRecord
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryRecord), now: time.Now}
}

func (s *MemoryStore) Get(_ context.Context, token string) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.sessions[token]
	if !ok {
		return 0, ErrNotFound
	}
	if s.now().After(rec.expiresAt) {
		delete(s.sessions, token)
		return 0, ErrNotFound
	}
	return rec.userID, nil
}

func (s *MemoryStore) Set(_ context.Context, token string, userID uint, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memoryRecord{userID: userID, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
