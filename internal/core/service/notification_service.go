package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/DioneMartin/REST-AWS/internal/api/metrics"
	"github.com/DioneMartin/REST-AWS/internal/core/domain"
	"github.com/DioneMartin/REST-AWS/internal/core/ports"
)

type NotificationService struct {
	students *StudentService
	notifier ports.Notifier
	ext      external
	logger   zerolog.Logger
}

func NewNotificationService(students *StudentService, notifier ports.Notifier, timeout time.Duration, logger zerolog.Logger) *NotificationService {
	return &NotificationService{
		students: students,
		notifier: notifier,
		ext:      newExternal(timeout),
		logger:   logger,
	}
}

// Notify builds the message from the student's current fields unless the
// caller overrides subject or body, then hands it to the notifier once.
func (s *NotificationService) Notify(ctx context.Context, in ports.NotifyInput) (*domain.Notification, error) {
	st, err := s.students.GetStudent(ctx, in.StudentID)
	if err != nil {
		return nil, err
	}

	n := domain.Notification{
		StudentID: st.ID,
		Subject:   domain.DefaultNotificationSubject,
		Body:      domain.DefaultNotificationBody(st),
		CreatedAt: time.Now().UTC(),
	}
	if in.Subject != nil {
		n.Subject = *in.Subject
	}
	if in.Body != nil {
		n.Body = *in.Body
	}

	err = s.ext.call(ctx, "notify.publish", func(ctx context.Context) error {
		return s.notifier.Publish(ctx, n)
	})
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("notify student: %w", err)
	}

	metrics.NotificationsTotal.WithLabelValues("sent").Inc()
	s.logger.Info().Int64("student_id", st.ID).Str("subject", n.Subject).Msg("notification dispatched")
	return &n, nil
}
