package session

import (
	"context"
	"sync"
	"time"

	"mutant-admin/internal/domain/entity"
	domainerrors "mutant-admin/internal/domain/errors"
	"mutant-admin/internal/domain/service"
)

// memoryStore keeps sessions in process. Sessions are lost on restart.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
	now      func() time.Time
}

func NewMemoryStore() service.SessionStore {
	return &memoryStore{
		sessions: make(map[string]entity.Session),
		now:      time.Now,
	}
}

func (s *memoryStore) Save(_ context.Context, session *entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = *session
	s.evictExpiredLocked()

	return nil
}

func (s *memoryStore) Get(_ context.Context, id string) (*entity.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || session.Expired(s.now()) {
		return nil, domainerrors.ErrSessionNotFound
	}

	return &session, nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)

	return nil
}

func (s *memoryStore) Close() error {
	return nil
}

// evictExpiredLocked drops stale sessions on write so the map stays bounded.
func (s *memoryStore) evictExpiredLocked() {
	now := s.now()
	for id, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, id)
		}
	}
}
