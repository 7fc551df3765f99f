package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
	"github.com/DioneMartin/REST-AWS/internal/infrastructure/db/memory"
)

func TestStudentService_CreateHashesPassword(t *testing.T) {
	repo := memory.NewStudentRepository()
	svc := newStudentService(repo)

	id := seedStudent(t, svc)
	if id != 1 {
		t.Fatalf("expected first id 1, got %d", id)
	}

	stored, err := repo.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if stored.PasswordHash == "x" || stored.PasswordHash == "" {
		t.Fatalf("password stored in clear or missing: %q", stored.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("x")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if stored.GivenNames != "Ana" || stored.Surnames != "Li" || stored.EnrollmentCode != "A1" || stored.GradeAverage != 8.5 {
		t.Fatalf("unexpected stored student: %+v", stored)
	}
}

func TestStudentService_CreateInvalidWritesNothing(t *testing.T) {
	repo := memory.NewStudentRepository()
	svc := newStudentService(repo)

	_, err := svc.CreateStudent(context.Background(), record(t,
		`{"givenNames":"Ana","surnames":"Li","enrollmentCode":"A1","gradeAverage":11,"password":"x"}`))

	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "gradeAverage" {
		t.Fatalf("expected gradeAverage validation error, got %v", err)
	}
	all, _ := repo.List(context.Background())
	if len(all) != 0 {
		t.Fatalf("expected empty store, got %d records", len(all))
	}
}

func TestStudentService_DuplicateEnrollmentCode(t *testing.T) {
	repo := memory.NewStudentRepository()
	svc := newStudentService(repo)
	seedStudent(t, svc)

	_, err := svc.CreateStudent(context.Background(), record(t,
		`{"givenNames":"Bo","surnames":"Wu","enrollmentCode":"A1","gradeAverage":7,"password":"y"}`))
	if !errors.Is(err, domain.ErrEnrollmentCodeTaken) {
		t.Fatalf("expected ErrEnrollmentCodeTaken, got %v", err)
	}

	all, err := svc.ListStudents(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 || all[0].GivenNames != "Ana" {
		t.Fatalf("store changed after conflict: %+v", all)
	}
}

func TestStudentService_UpdateOutOfRangeLeavesRecord(t *testing.T) {
	svc := newStudentService(memory.NewStudentRepository())
	id := seedStudent(t, svc)

	_, err := svc.UpdateStudent(context.Background(), id, record(t, `{"givenNames":"Eva","gradeAverage":-1}`))
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	got, err := svc.GetStudent(context.Background(), id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.GivenNames != "Ana" || got.GradeAverage != 8.5 {
		t.Fatalf("record changed: %+v", got)
	}
}

func TestStudentService_UpdatePartial(t *testing.T) {
	svc := newStudentService(memory.NewStudentRepository())
	id := seedStudent(t, svc)

	got, err := svc.UpdateStudent(context.Background(), id, record(t, `{"gradeAverage":9.25}`))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.GradeAverage != 9.25 || got.GivenNames != "Ana" || got.EnrollmentCode != "A1" {
		t.Fatalf("unexpected update result: %+v", got)
	}
}

func TestStudentService_UpdateUnknownIDBeforeValidation(t *testing.T) {
	svc := newStudentService(memory.NewStudentRepository())

	_, err := svc.UpdateStudent(context.Background(), 42, record(t, `{"gradeAverage":"high"}`))
	if !errors.Is(err, domain.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestStudentService_Delete(t *testing.T) {
	svc := newStudentService(memory.NewStudentRepository())
	id := seedStudent(t, svc)

	if err := svc.DeleteStudent(context.Background(), id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetStudent(context.Background(), id); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := svc.DeleteStudent(context.Background(), id); !errors.Is(err, domain.ErrStudentNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestStudentService_ListEmpty(t *testing.T) {
	svc := newStudentService(memory.NewStudentRepository())

	all, err := svc.ListStudents(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if all == nil || len(all) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", all)
	}
}

func TestStudentService_BackendFailureIsExternal(t *testing.T) {
	svc := NewStudentService(failingStudentRepo{err: errBackend}, testTimeout, zerolog.Nop())
	svc.hashCost = bcrypt.MinCost

	_, err := svc.CreateStudent(context.Background(), record(t,
		`{"givenNames":"Ana","surnames":"Li","enrollmentCode":"A1","gradeAverage":8.5,"password":"x"}`))

	var ext *domain.ExternalError
	if !errors.As(err, &ext) {
		t.Fatalf("expected ExternalError, got %v", err)
	}
	if ext.Op != "students.create" || !errors.Is(err, errBackend) {
		t.Fatalf("unexpected external error: %+v", ext)
	}
	if !errors.Is(err, domain.ErrExternalChannel) {
		t.Fatal("expected error to match ErrExternalChannel")
	}
}

func TestStudentService_SlowBackendTimesOut(t *testing.T) {
	svc := NewStudentService(slowStudentRepo{}, 20*time.Millisecond, zerolog.Nop())
	svc.hashCost = bcrypt.MinCost

	_, err := svc.CreateStudent(context.Background(), record(t,
		`{"givenNames":"Ana","surnames":"Li","enrollmentCode":"A1","gradeAverage":8.5,"password":"x"}`))
	if !errors.Is(err, domain.ErrExternalTimeout) {
		t.Fatalf("expected ErrExternalTimeout, got %v", err)
	}
}
