package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
)

// Hash fields of a session key.
const (
	fieldStudentID = "student_id"
	fieldActive    = "active"
	fieldCreatedAt = "created_at"
)

// SessionRepository keeps each session in a hash.
// Key format: session:<token>
//
// Keys carry no expiry; a logged out session stays readable as inactive.
type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

var errTokenInUse = errors.New("token already in use")

// Create writes the whole hash in one MULTI/EXEC, guarded by WATCH so an
// existing token is never overwritten.
func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	key := r.key(s.Token)
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			return errTokenInUse
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key,
				fieldStudentID, s.StudentID,
				fieldActive, boolString(s.Active),
				fieldCreatedAt, s.CreatedAt.UTC().Format(time.RFC3339Nano),
			)
			return nil
		})
		return err
	}, key)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*domain.Session, error) {
	vals, err := r.client.HGetAll(ctx, r.key(token)).Result()
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	if len(vals) == 0 {
		return nil, domain.ErrInvalidSession
	}
	return decodeSession(token, vals)
}

// Deactivate flips the active flag. A missing key yields ErrInvalidSession.
func (r *SessionRepository) Deactivate(ctx context.Context, token string) error {
	key := r.key(token)
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrInvalidSession
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, fieldActive, boolString(false))
			return nil
		})
		return err
	}, key)
	if errors.Is(err, domain.ErrInvalidSession) {
		return err
	}
	if err != nil {
		return fmt.Errorf("deactivate session: %w", err)
	}
	return nil
}

// decodeSession rebuilds a session from its hash fields.
func decodeSession(token string, vals map[string]string) (*domain.Session, error) {
	studentID, err := strconv.ParseInt(vals[fieldStudentID], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("decode session %s: %w", fieldStudentID, err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals[fieldCreatedAt])
	if err != nil {
		return nil, fmt.Errorf("decode session %s: %w", fieldCreatedAt, err)
	}
	active, ok := vals[fieldActive]
	if !ok {
		return nil, fmt.Errorf("decode session: missing %s", fieldActive)
	}

	return &domain.Session{
		Token:     token,
		StudentID: studentID,
		Active:    active == "1",
		CreatedAt: createdAt,
	}, nil
}

func (r *SessionRepository) key(token string) string {
	return "session:" + token
}

func boolString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
