package service

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
	"github.com/DioneMartin/REST-AWS/internal/infrastructure/db/memory"
)

type sessionFixture struct {
	students  *StudentService
	sessions  *SessionService
	registry  *countingSessionRepo
	studentID int64
}

func newSessionFixture(t *testing.T) sessionFixture {
	t.Helper()
	studentRepo := memory.NewStudentRepository()
	students := newStudentService(studentRepo)
	registry := &countingSessionRepo{SessionRepository: memory.NewSessionRepository()}

	return sessionFixture{
		students:  students,
		sessions:  NewSessionService(studentRepo, registry, testTimeout, zerolog.Nop()),
		registry:  registry,
		studentID: seedStudent(t, students),
	}
}

func TestSessionService_LoginVerifyLogoutCycle(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	token, err := f.sessions.Login(ctx, f.studentID, "x")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	sess, err := f.sessions.Verify(ctx, f.studentID, token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !sess.Active || sess.StudentID != f.studentID || sess.CreatedAt.IsZero() {
		t.Fatalf("unexpected session: %+v", sess)
	}

	if err := f.sessions.Logout(ctx, f.studentID, token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := f.sessions.Verify(ctx, f.studentID, token); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession after logout, got %v", err)
	}

	stored, err := f.registry.FindByToken(ctx, token)
	if err != nil {
		t.Fatalf("session record removed on logout: %v", err)
	}
	if stored.Active {
		t.Fatal("session still active after logout")
	}

	// Logging out an inactive session is not an error.
	if err := f.sessions.Logout(ctx, f.studentID, token); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}

func TestSessionService_WrongPasswordLeavesRegistryUntouched(t *testing.T) {
	f := newSessionFixture(t)

	token, err := f.sessions.Login(context.Background(), f.studentID, "wrong")
	if !errors.Is(err, domain.ErrCredentialMismatch) {
		t.Fatalf("expected ErrCredentialMismatch, got %v", err)
	}
	if token != "" {
		t.Fatalf("token minted on mismatch: %q", token)
	}
	if f.registry.creates != 0 {
		t.Fatalf("registry written %d times on mismatch", f.registry.creates)
	}
}

func TestSessionService_LoginUnknownStudent(t *testing.T) {
	f := newSessionFixture(t)

	_, err := f.sessions.Login(context.Background(), 99, "x")
	if !errors.Is(err, domain.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
	if f.registry.creates != 0 {
		t.Fatal("registry written for unknown student")
	}
}

func TestSessionService_TokensAreRandomHex(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		token, err := f.sessions.Login(ctx, f.studentID, "x")
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if len(token) != 2*tokenBytes {
			t.Fatalf("token length %d, want %d", len(token), 2*tokenBytes)
		}
		if _, err := hex.DecodeString(token); err != nil {
			t.Fatalf("token is not hex: %q", token)
		}
		if seen[token] {
			t.Fatalf("token issued twice: %q", token)
		}
		seen[token] = true
	}
}

func TestSessionService_TokenPinnedToStudent(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	other, err := f.students.CreateStudent(ctx, record(t,
		`{"givenNames":"Bo","surnames":"Wu","enrollmentCode":"B2","gradeAverage":6,"password":"y"}`))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	token, err := f.sessions.Login(ctx, f.studentID, "x")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := f.sessions.Verify(ctx, other, token); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession for foreign student, got %v", err)
	}
	if err := f.sessions.Logout(ctx, other, token); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession on foreign logout, got %v", err)
	}
	if _, err := f.sessions.Verify(ctx, f.studentID, token); err != nil {
		t.Fatalf("owner session disturbed: %v", err)
	}
}

func TestSessionService_UnknownToken(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	for _, token := range []string{"", "deadbeef"} {
		if _, err := f.sessions.Verify(ctx, f.studentID, token); !errors.Is(err, domain.ErrInvalidSession) {
			t.Fatalf("verify %q: expected ErrInvalidSession, got %v", token, err)
		}
		if err := f.sessions.Logout(ctx, f.studentID, token); !errors.Is(err, domain.ErrInvalidSession) {
			t.Fatalf("logout %q: expected ErrInvalidSession, got %v", token, err)
		}
	}
}
