package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/DioneMartin/REST-AWS/internal/api/metrics"
	"github.com/DioneMartin/REST-AWS/internal/core/domain"
	"github.com/DioneMartin/REST-AWS/internal/core/ports"
	"github.com/DioneMartin/REST-AWS/internal/core/validation"
)

const entityTeacher = "teacher"

type TeacherService struct {
	repo   ports.TeacherRepository
	ext    external
	logger zerolog.Logger
}

func NewTeacherService(repo ports.TeacherRepository, timeout time.Duration, logger zerolog.Logger) *TeacherService {
	return &TeacherService{repo: repo, ext: newExternal(timeout), logger: logger}
}

func (s *TeacherService) ListTeachers(ctx context.Context) ([]*domain.Teacher, error) {
	var out []*domain.Teacher
	err := s.ext.call(ctx, "teachers.list", func(ctx context.Context) error {
		var err error
		out, err = s.repo.List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	if out == nil {
		out = []*domain.Teacher{}
	}
	return out, nil
}

func (s *TeacherService) GetTeacher(ctx context.Context, id int64) (*domain.Teacher, error) {
	var t *domain.Teacher
	err := s.ext.call(ctx, "teachers.find", func(ctx context.Context) error {
		var err error
		t, err = s.repo.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get teacher: %w", err)
	}
	return t, nil
}

func (s *TeacherService) CreateTeacher(ctx context.Context, rec validation.Record) (int64, error) {
	vals, err := validation.Teacher.Create(rec)
	if err != nil {
		metrics.EntityRejectionsTotal.WithLabelValues(entityTeacher, "validation").Inc()
		return 0, err
	}

	t := &domain.Teacher{
		EmployeeCode:  *vals.Text(validation.FieldEmployeeCode),
		GivenNames:    *vals.Text(validation.FieldGivenNames),
		Surnames:      *vals.Text(validation.FieldSurnames),
		TeachingHours: *vals.Integer(validation.FieldTeachingHours),
	}

	err = s.ext.call(ctx, "teachers.create", func(ctx context.Context) error {
		return s.repo.Create(ctx, t)
	})
	if err != nil {
		rejectMetric(entityTeacher, err)
		return 0, fmt.Errorf("create teacher: %w", err)
	}

	metrics.EntityWritesTotal.WithLabelValues(entityTeacher, "create").Inc()
	s.logger.Info().Int64("teacher_id", t.ID).Str("employee_code", t.EmployeeCode).Msg("teacher created")
	return t.ID, nil
}

func (s *TeacherService) UpdateTeacher(ctx context.Context, id int64, rec validation.Record) (*domain.Teacher, error) {
	if _, err := s.GetTeacher(ctx, id); err != nil {
		rejectMetric(entityTeacher, err)
		return nil, err
	}

	vals, err := validation.Teacher.Update(rec)
	if err != nil {
		metrics.EntityRejectionsTotal.WithLabelValues(entityTeacher, "validation").Inc()
		return nil, err
	}

	patch := domain.TeacherPatch{
		EmployeeCode:  vals.Text(validation.FieldEmployeeCode),
		GivenNames:    vals.Text(validation.FieldGivenNames),
		Surnames:      vals.Text(validation.FieldSurnames),
		TeachingHours: vals.Integer(validation.FieldTeachingHours),
	}

	var updated *domain.Teacher
	err = s.ext.call(ctx, "teachers.update", func(ctx context.Context) error {
		var err error
		updated, err = s.repo.Update(ctx, id, patch)
		return err
	})
	if err != nil {
		rejectMetric(entityTeacher, err)
		return nil, fmt.Errorf("update teacher: %w", err)
	}

	metrics.EntityWritesTotal.WithLabelValues(entityTeacher, "update").Inc()
	s.logger.Info().Int64("teacher_id", id).Int("fields", len(vals)).Msg("teacher updated")
	return updated, nil
}

func (s *TeacherService) DeleteTeacher(ctx context.Context, id int64) error {
	err := s.ext.call(ctx, "teachers.delete", func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		rejectMetric(entityTeacher, err)
		return fmt.Errorf("delete teacher: %w", err)
	}

	metrics.EntityWritesTotal.WithLabelValues(entityTeacher, "delete").Inc()
	s.logger.Info().Int64("teacher_id", id).Msg("teacher deleted")
	return nil
}
