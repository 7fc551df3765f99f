package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
	"github.com/DioneMartin/REST-AWS/internal/core/ports"
	"github.com/DioneMartin/REST-AWS/internal/infrastructure/db/memory"
)

func TestNotificationService_DefaultMessage(t *testing.T) {
	students := newStudentService(memory.NewStudentRepository())
	id := seedStudent(t, students)
	notifier := &stubNotifier{}
	svc := NewNotificationService(students, notifier, testTimeout, zerolog.Nop())

	n, err := svc.Notify(context.Background(), ports.NotifyInput{StudentID: id})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("expected exactly one publish, got %d", len(notifier.sent))
	}
	if n.Subject != domain.DefaultNotificationSubject {
		t.Fatalf("subject = %q", n.Subject)
	}
	for _, want := range []string{"Name: Ana Li", "Enrollment code: A1", "Grade average: 8.50"} {
		if !strings.Contains(n.Body, want) {
			t.Fatalf("body missing %q:\n%s", want, n.Body)
		}
	}
	if n.StudentID != id {
		t.Fatalf("student id = %d", n.StudentID)
	}
}

func TestNotificationService_Overrides(t *testing.T) {
	students := newStudentService(memory.NewStudentRepository())
	id := seedStudent(t, students)
	notifier := &stubNotifier{}
	svc := NewNotificationService(students, notifier, testTimeout, zerolog.Nop())

	subject, body := "Exam results", "Passed."
	n, err := svc.Notify(context.Background(), ports.NotifyInput{StudentID: id, Subject: &subject, Body: &body})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	if n.Subject != subject || n.Body != body {
		t.Fatalf("overrides ignored: %+v", n)
	}
	if notifier.sent[0].Subject != subject {
		t.Fatalf("published subject = %q", notifier.sent[0].Subject)
	}
}

func TestNotificationService_UnknownStudent(t *testing.T) {
	notifier := &stubNotifier{}
	svc := NewNotificationService(newStudentService(memory.NewStudentRepository()), notifier, testTimeout, zerolog.Nop())

	_, err := svc.Notify(context.Background(), ports.NotifyInput{StudentID: 5})
	if !errors.Is(err, domain.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
	if len(notifier.sent) != 0 {
		t.Fatal("notifier called for unknown student")
	}
}

func TestNotificationService_PublishFailure(t *testing.T) {
	students := newStudentService(memory.NewStudentRepository())
	id := seedStudent(t, students)
	svc := NewNotificationService(students, &stubNotifier{err: errBackend}, testTimeout, zerolog.Nop())

	_, err := svc.Notify(context.Background(), ports.NotifyInput{StudentID: id})
	var ext *domain.ExternalError
	if !errors.As(err, &ext) || ext.Op != "notify.publish" {
		t.Fatalf("expected notify.publish ExternalError, got %v", err)
	}
}
