package ports

import (
	"context"
	"io"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
	"github.com/DioneMartin/REST-AWS/internal/core/validation"
)

// StudentService is the entity store contract for students.
type StudentService interface {
	ListStudents(ctx context.Context) ([]*domain.Student, error)
	GetStudent(ctx context.Context, id int64) (*domain.Student, error)
	CreateStudent(ctx context.Context, rec validation.Record) (int64, error)
	UpdateStudent(ctx context.Context, id int64, rec validation.Record) (*domain.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// TeacherService is the entity store contract for teachers.
type TeacherService interface {
	ListTeachers(ctx context.Context) ([]*domain.Teacher, error)
	GetTeacher(ctx context.Context, id int64) (*domain.Teacher, error)
	CreateTeacher(ctx context.Context, rec validation.Record) (int64, error)
	UpdateTeacher(ctx context.Context, id int64, rec validation.Record) (*domain.Teacher, error)
	DeleteTeacher(ctx context.Context, id int64) error
}

// SessionService is the session registry.
type SessionService interface {
	Login(ctx context.Context, studentID int64, password string) (string, error)
	Verify(ctx context.Context, studentID int64, token string) (*domain.Session, error)
	Logout(ctx context.Context, studentID int64, token string) error
}

// NotifyInput carries the optional overrides for a notification.
type NotifyInput struct {
	StudentID int64
	Subject   *string
	Body      *string
}

// NotificationService formats and dispatches student notifications.
type NotificationService interface {
	Notify(ctx context.Context, in NotifyInput) (*domain.Notification, error)
}

// Upload is a file received for media attach.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// MediaService stores profile pictures.
type MediaService interface {
	AttachProfilePicture(ctx context.Context, studentID int64, up Upload) (string, error)
}
