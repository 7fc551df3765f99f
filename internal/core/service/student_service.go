package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/DioneMartin/REST-AWS/internal/api/metrics"
	"github.com/DioneMartin/REST-AWS/internal/core/domain"
	"github.com/DioneMartin/REST-AWS/internal/core/ports"
	"github.com/DioneMartin/REST-AWS/internal/core/validation"
)

const entityStudent = "student"

type StudentService struct {
	repo     ports.StudentRepository
	ext      external
	hashCost int
	logger   zerolog.Logger
}

func NewStudentService(repo ports.StudentRepository, timeout time.Duration, logger zerolog.Logger) *StudentService {
	return &StudentService{
		repo:     repo,
		ext:      newExternal(timeout),
		hashCost: bcrypt.DefaultCost,
		logger:   logger,
	}
}

func (s *StudentService) ListStudents(ctx context.Context) ([]*domain.Student, error) {
	var out []*domain.Student
	err := s.ext.call(ctx, "students.list", func(ctx context.Context) error {
		var err error
		out, err = s.repo.List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	if out == nil {
		out = []*domain.Student{}
	}
	return out, nil
}

func (s *StudentService) GetStudent(ctx context.Context, id int64) (*domain.Student, error) {
	var st *domain.Student
	err := s.ext.call(ctx, "students.find", func(ctx context.Context) error {
		var err error
		st, err = s.repo.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	return st, nil
}

// CreateStudent validates rec, hashes the password and persists the student.
// Nothing is written when validation fails.
func (s *StudentService) CreateStudent(ctx context.Context, rec validation.Record) (int64, error) {
	vals, err := validation.Student.Create(rec)
	if err != nil {
		metrics.EntityRejectionsTotal.WithLabelValues(entityStudent, "validation").Inc()
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*vals.Text(validation.FieldPassword)), s.hashCost)
	if err != nil {
		return 0, fmt.Errorf("create student: hash password: %w", err)
	}

	st := &domain.Student{
		GivenNames:     *vals.Text(validation.FieldGivenNames),
		Surnames:       *vals.Text(validation.FieldSurnames),
		EnrollmentCode: *vals.Text(validation.FieldEnrollmentCode),
		GradeAverage:   *vals.Number(validation.FieldGradeAverage),
		PasswordHash:   string(hash),
	}

	err = s.ext.call(ctx, "students.create", func(ctx context.Context) error {
		return s.repo.Create(ctx, st)
	})
	if err != nil {
		s.reject(err)
		return 0, fmt.Errorf("create student: %w", err)
	}

	metrics.EntityWritesTotal.WithLabelValues(entityStudent, "create").Inc()
	s.logger.Info().Int64("student_id", st.ID).Str("enrollment_code", st.EnrollmentCode).Msg("student created")
	return st.ID, nil
}

// UpdateStudent applies the supplied fields of rec. An unknown id is reported
// before rec is validated.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, rec validation.Record) (*domain.Student, error) {
	if _, err := s.GetStudent(ctx, id); err != nil {
		s.reject(err)
		return nil, err
	}

	vals, err := validation.Student.Update(rec)
	if err != nil {
		metrics.EntityRejectionsTotal.WithLabelValues(entityStudent, "validation").Inc()
		return nil, err
	}

	patch := domain.StudentPatch{
		GivenNames:     vals.Text(validation.FieldGivenNames),
		Surnames:       vals.Text(validation.FieldSurnames),
		EnrollmentCode: vals.Text(validation.FieldEnrollmentCode),
		GradeAverage:   vals.Number(validation.FieldGradeAverage),
	}

	var updated *domain.Student
	err = s.ext.call(ctx, "students.update", func(ctx context.Context) error {
		var err error
		updated, err = s.repo.Update(ctx, id, patch)
		return err
	})
	if err != nil {
		s.reject(err)
		return nil, fmt.Errorf("update student: %w", err)
	}

	metrics.EntityWritesTotal.WithLabelValues(entityStudent, "update").Inc()
	s.logger.Info().Int64("student_id", id).Int("fields", len(vals)).Msg("student updated")
	return updated, nil
}

func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	err := s.ext.call(ctx, "students.delete", func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		s.reject(err)
		return fmt.Errorf("delete student: %w", err)
	}

	metrics.EntityWritesTotal.WithLabelValues(entityStudent, "delete").Inc()
	s.logger.Info().Int64("student_id", id).Msg("student deleted")
	return nil
}

// setProfilePicture records a stored locator through the regular update path.
func (s *StudentService) setProfilePicture(ctx context.Context, id int64, locator string) error {
	return s.ext.call(ctx, "students.update", func(ctx context.Context) error {
		_, err := s.repo.Update(ctx, id, domain.StudentPatch{ProfilePictureLocator: &locator})
		return err
	})
}

func (s *StudentService) reject(err error) {
	rejectMetric(entityStudent, err)
}

func rejectMetric(entity string, err error) {
	switch {
	case errors.Is(err, domain.ErrConflict):
		metrics.EntityRejectionsTotal.WithLabelValues(entity, "conflict").Inc()
	case errors.Is(err, domain.ErrNotFound):
		metrics.EntityRejectionsTotal.WithLabelValues(entity, "not_found").Inc()
	}
}
