package memory

import (
	"context"
	"sync"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
)

// SessionRepository keeps sessions for the lifetime of the process.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]*domain.Session)}
}

func (r *SessionRepository) Create(_ context.Context, s *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *s
	r.sessions[s.Token] = &clone
	return nil
}

func (r *SessionRepository) FindByToken(_ context.Context, token string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[token]
	if !ok {
		return nil, domain.ErrInvalidSession
	}
	clone := *s
	return &clone, nil
}

func (r *SessionRepository) Deactivate(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[token]
	if !ok {
		return domain.ErrInvalidSession
	}
	s.Active = false
	return nil
}
