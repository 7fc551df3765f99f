package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
)

// TeacherRepository mirrors StudentRepository with employee codes as the
// unique key.
type TeacherRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]*domain.Teacher
	byCode map[string]int64
}

func NewTeacherRepository() *TeacherRepository {
	return &TeacherRepository{
		byID:   make(map[int64]*domain.Teacher),
		byCode: make(map[string]int64),
	}
}

func (r *TeacherRepository) List(_ context.Context) ([]*domain.Teacher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Teacher, 0, len(r.byID))
	for _, t := range r.byID {
		clone := *t
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *TeacherRepository) FindByID(_ context.Context, id int64) (*domain.Teacher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrTeacherNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *TeacherRepository) Create(_ context.Context, t *domain.Teacher) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byCode[t.EmployeeCode]; taken {
		return domain.ErrEmployeeCodeTaken
	}

	r.nextID++
	t.ID = r.nextID
	clone := *t
	r.byID[t.ID] = &clone
	r.byCode[t.EmployeeCode] = t.ID
	return nil
}

func (r *TeacherRepository) Update(_ context.Context, id int64, patch domain.TeacherPatch) (*domain.Teacher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrTeacherNotFound
	}
	if patch.EmployeeCode != nil {
		if owner, taken := r.byCode[*patch.EmployeeCode]; taken && owner != id {
			return nil, domain.ErrEmployeeCodeTaken
		}
	}

	updated := *current
	patch.Apply(&updated)
	if updated.EmployeeCode != current.EmployeeCode {
		delete(r.byCode, current.EmployeeCode)
		r.byCode[updated.EmployeeCode] = id
	}
	r.byID[id] = &updated

	clone := updated
	return &clone, nil
}

func (r *TeacherRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byID[id]
	if !ok {
		return domain.ErrTeacherNotFound
	}
	delete(r.byCode, t.EmployeeCode)
	delete(r.byID, id)
	return nil
}
