// Package memory holds process-local stores. Each store is an explicit value
// guarded by its own mutex; nothing is kept in package globals.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
)

// StudentRepository keeps students in a map indexed by id and by enrollment
// code. Ids come from a counter and are never reused.
type StudentRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]*domain.Student
	byCode map[string]int64
}

func NewStudentRepository() *StudentRepository {
	return &StudentRepository{
		byID:   make(map[int64]*domain.Student),
		byCode: make(map[string]int64),
	}
}

func (r *StudentRepository) List(_ context.Context) ([]*domain.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Student, 0, len(r.byID))
	for _, s := range r.byID {
		clone := *s
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *StudentRepository) FindByID(_ context.Context, id int64) (*domain.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrStudentNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *StudentRepository) Create(_ context.Context, s *domain.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byCode[s.EnrollmentCode]; taken {
		return domain.ErrEnrollmentCodeTaken
	}

	r.nextID++
	s.ID = r.nextID
	clone := *s
	r.byID[s.ID] = &clone
	r.byCode[s.EnrollmentCode] = s.ID
	return nil
}

func (r *StudentRepository) Update(_ context.Context, id int64, patch domain.StudentPatch) (*domain.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrStudentNotFound
	}
	if patch.EnrollmentCode != nil {
		if owner, taken := r.byCode[*patch.EnrollmentCode]; taken && owner != id {
			return nil, domain.ErrEnrollmentCodeTaken
		}
	}

	updated := *current
	patch.Apply(&updated)
	if updated.EnrollmentCode != current.EnrollmentCode {
		delete(r.byCode, current.EnrollmentCode)
		r.byCode[updated.EnrollmentCode] = id
	}
	r.byID[id] = &updated

	clone := updated
	return &clone, nil
}

func (r *StudentRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok {
		return domain.ErrStudentNotFound
	}
	delete(r.byCode, s.EnrollmentCode)
	delete(r.byID, id)
	return nil
}
