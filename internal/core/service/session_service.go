package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/DioneMartin/REST-AWS/internal/api/metrics"
	"github.com/DioneMartin/REST-AWS/internal/core/domain"
	"github.com/DioneMartin/REST-AWS/internal/core/ports"
)

// tokenBytes is the entropy of a session token; the hex form is twice as long.
const tokenBytes = 64

// SessionService issues, verifies and closes student login sessions.
type SessionService struct {
	students ports.StudentRepository
	sessions ports.SessionRepository
	ext      external
	now      func() time.Time
	logger   zerolog.Logger
}

func NewSessionService(
	students ports.StudentRepository,
	sessions ports.SessionRepository,
	timeout time.Duration,
	logger zerolog.Logger,
) *SessionService {
	return &SessionService{
		students: students,
		sessions: sessions,
		ext:      newExternal(timeout),
		now:      func() time.Time { return time.Now().UTC() },
		logger:   logger,
	}
}

// Login checks password against the student's stored hash and, on match,
// registers a new active session. A mismatch never touches the registry.
func (s *SessionService) Login(ctx context.Context, studentID int64, password string) (string, error) {
	var st *domain.Student
	err := s.ext.call(ctx, "students.find", func(ctx context.Context) error {
		var err error
		st, err = s.students.FindByID(ctx, studentID)
		return err
	})
	if err != nil {
		s.count("login", err)
		return "", fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(st.PasswordHash), []byte(password)) != nil {
		s.count("login", domain.ErrCredentialMismatch)
		s.logger.Info().Int64("student_id", studentID).Msg("login rejected")
		return "", domain.ErrCredentialMismatch
	}

	token, err := newToken()
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	sess := &domain.Session{
		Token:     token,
		StudentID: studentID,
		Active:    true,
		CreatedAt: s.now(),
	}
	err = s.ext.call(ctx, "sessions.create", func(ctx context.Context) error {
		return s.sessions.Create(ctx, sess)
	})
	if err != nil {
		s.count("login", err)
		return "", fmt.Errorf("login: %w", err)
	}

	s.count("login", nil)
	s.logger.Info().Int64("student_id", studentID).Msg("session opened")
	return token, nil
}

// Verify succeeds only for an active session issued to studentID.
func (s *SessionService) Verify(ctx context.Context, studentID int64, token string) (*domain.Session, error) {
	sess, err := s.lookup(ctx, studentID, token)
	if err == nil && !sess.Active {
		err = domain.ErrInvalidSession
	}
	s.count("verify", err)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// Logout deactivates a session issued to studentID. Deactivating an already
// inactive session succeeds.
func (s *SessionService) Logout(ctx context.Context, studentID int64, token string) error {
	if _, err := s.lookup(ctx, studentID, token); err != nil {
		s.count("logout", err)
		return err
	}

	err := s.ext.call(ctx, "sessions.deactivate", func(ctx context.Context) error {
		return s.sessions.Deactivate(ctx, token)
	})
	s.count("logout", err)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	s.logger.Info().Int64("student_id", studentID).Msg("session closed")
	return nil
}

func (s *SessionService) lookup(ctx context.Context, studentID int64, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrInvalidSession
	}

	var sess *domain.Session
	err := s.ext.call(ctx, "sessions.find", func(ctx context.Context) error {
		var err error
		sess, err = s.sessions.FindByToken(ctx, token)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !sess.BelongsTo(studentID) {
		return nil, domain.ErrInvalidSession
	}
	return sess, nil
}

func (s *SessionService) count(op string, err error) {
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrCredentialMismatch):
		result = "mismatch"
	case errors.Is(err, domain.ErrInvalidSession):
		result = "invalid"
	default:
		result = "error"
	}
	metrics.SessionOpsTotal.WithLabelValues(op, result).Inc()
}

func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
