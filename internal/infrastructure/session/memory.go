package session

import (
	"context"
	"sync"
	"time"

	"swasthya-backend/internal/domain/user"
)

type memEntry struct {
	user      user.User
	expiresAt time.Time
}

// MemoryStore is the process-local session store used when no redis is
// configured, and in tests.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memEntry)}
}

func (s *MemoryStore) Put(_ context.Context, token string, u user.User, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memEntry{user: u, expiresAt: time.Now().UTC().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[token]
	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().UTC().After(e.expiresAt) {
		delete(s.sessions, token)
		return nil, ErrNotFound
	}
	u := e.user
	return &u, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
