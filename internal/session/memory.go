package session

import (
	"context"
	"sync"

	"github.com/vietpass/vietpass/internal/identity"
	"github.com/vietpass/vietpass/internal/pass"
)

type record struct {
	identity   *identity.Identity
	credential *pass.Credential
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]record
}

// NewMemoryStore builds an in-memory session store for development and tests.
func NewMemoryStore() Store {
	return &memoryStore{sessions: make(map[string]record)}
}

func (s *memoryStore) SaveIdentity(_ context.Context, sid string, id identity.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.sessions[sid]
	rec.identity = &id
	s.sessions[sid] = rec
	return nil
}

func (s *memoryStore) Identity(_ context.Context, sid string) (*identity.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.sessions[sid]
	if !ok || rec.identity == nil {
		return nil, nil
	}
	id := *rec.identity
	return &id, nil
}

func (s *memoryStore) SaveCredential(_ context.Context, sid string, cred pass.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.sessions[sid]
	rec.credential = &cred
	s.sessions[sid] = rec
	return nil
}

func (s *memoryStore) Credential(_ context.Context, sid string) (*pass.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.sessions[sid]
	if !ok || rec.credential == nil {
		return nil, nil
	}
	cred := *rec.credential
	return &cred, nil
}

// Clear drops the whole session record, so identity and credential vanish
// together.
func (s *memoryStore) Clear(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}
