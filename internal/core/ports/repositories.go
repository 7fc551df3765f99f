package ports

import (
	"context"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
)

// StudentRepository persists students. Implementations enforce enrollment
// code uniqueness atomically with Create and Update and never reuse ids.
type StudentRepository interface {
	// List returns all students in id order.
	List(ctx context.Context) ([]*domain.Student, error)
	// FindByID returns domain.ErrStudentNotFound when the id is unknown.
	FindByID(ctx context.Context, id int64) (*domain.Student, error)
	// Create assigns s.ID. Returns domain.ErrEnrollmentCodeTaken on collision.
	Create(ctx context.Context, s *domain.Student) error
	// Update applies the non-nil patch fields and returns the updated record.
	Update(ctx context.Context, id int64, patch domain.StudentPatch) (*domain.Student, error)
	Delete(ctx context.Context, id int64) error
}

// TeacherRepository persists teachers. Employee code uniqueness is enforced
// the same way as enrollment codes.
type TeacherRepository interface {
	List(ctx context.Context) ([]*domain.Teacher, error)
	FindByID(ctx context.Context, id int64) (*domain.Teacher, error)
	Create(ctx context.Context, t *domain.Teacher) error
	Update(ctx context.Context, id int64, patch domain.TeacherPatch) (*domain.Teacher, error)
	Delete(ctx context.Context, id int64) error
}

// SessionRepository stores login sessions keyed by token.
type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) error
	// FindByToken returns domain.ErrInvalidSession when the token is unknown.
	FindByToken(ctx context.Context, token string) (*domain.Session, error)
	// Deactivate marks the session inactive. The record is kept.
	Deactivate(ctx context.Context, token string) error
}
