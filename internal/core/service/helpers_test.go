package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
	"github.com/DioneMartin/REST-AWS/internal/core/validation"
	"github.com/DioneMartin/REST-AWS/internal/infrastructure/db/memory"
)

const testTimeout = time.Second

func record(t *testing.T, body string) validation.Record {
	t.Helper()
	var rec validation.Record
	if err := json.Unmarshal([]byte(body), &rec); err != nil {
		t.Fatalf("bad test record %q: %v", body, err)
	}
	return rec
}

func newStudentService(repo *memory.StudentRepository) *StudentService {
	svc := NewStudentService(repo, testTimeout, zerolog.Nop())
	svc.hashCost = bcrypt.MinCost
	return svc
}

// seedStudent creates Ana Li (A1, 8.5, password "x") and returns its id.
func seedStudent(t *testing.T, svc *StudentService) int64 {
	t.Helper()
	id, err := svc.CreateStudent(context.Background(), record(t,
		`{"givenNames":"Ana","surnames":"Li","enrollmentCode":"A1","gradeAverage":8.5,"password":"x"}`))
	if err != nil {
		t.Fatalf("seed student: %v", err)
	}
	return id
}

// ---------------------------------------------------------------------------
// Stub collaborators
// ---------------------------------------------------------------------------

var errBackend = errors.New("backend unavailable")

// failingStudentRepo fails every call with err.
type failingStudentRepo struct{ err error }

func (r failingStudentRepo) List(context.Context) ([]*domain.Student, error) { return nil, r.err }
func (r failingStudentRepo) FindByID(context.Context, int64) (*domain.Student, error) {
	return nil, r.err
}
func (r failingStudentRepo) Create(context.Context, *domain.Student) error { return r.err }
func (r failingStudentRepo) Update(context.Context, int64, domain.StudentPatch) (*domain.Student, error) {
	return nil, r.err
}
func (r failingStudentRepo) Delete(context.Context, int64) error { return r.err }

// slowStudentRepo blocks until the call's context is done.
type slowStudentRepo struct{ failingStudentRepo }

func (slowStudentRepo) Create(ctx context.Context, _ *domain.Student) error {
	<-ctx.Done()
	return ctx.Err()
}

// countingSessionRepo records how often the registry is written.
type countingSessionRepo struct {
	*memory.SessionRepository
	mu      sync.Mutex
	creates int
}

func (r *countingSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	r.mu.Lock()
	r.creates++
	r.mu.Unlock()
	return r.SessionRepository.Create(ctx, s)
}

type stubNotifier struct {
	err  error
	sent []domain.Notification
}

func (n *stubNotifier) Publish(_ context.Context, msg domain.Notification) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, msg)
	return nil
}

type stubStorage struct {
	err     error
	keys    []string
	payload []byte
}

func (s *stubStorage) Put(_ context.Context, key, _ string, body io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	s.keys = append(s.keys, key)
	s.payload = b
	return "https://cdn.example.com/" + key, nil
}
