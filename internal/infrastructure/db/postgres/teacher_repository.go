package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
)

const teacherColumns = `id, employee_code, given_names, surnames, teaching_hours`

type TeacherRepository struct {
	pool *pgxpool.Pool
}

func NewTeacherRepository(pool *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{pool: pool}
}

func scanTeacher(row pgx.Row) (*domain.Teacher, error) {
	var t domain.Teacher
	if err := row.Scan(&t.ID, &t.EmployeeCode, &t.GivenNames, &t.Surnames, &t.TeachingHours); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TeacherRepository) List(ctx context.Context) ([]*domain.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `SELECT `+teacherColumns+` FROM teachers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query teachers: %w", err)
	}
	defer rows.Close()

	out := []*domain.Teacher{}
	for rows.Next() {
		t, err := scanTeacher(rows)
		if err != nil {
			return nil, fmt.Errorf("scan teacher: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TeacherRepository) FindByID(ctx context.Context, id int64) (*domain.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	t, err := scanTeacher(r.pool.QueryRow(ctx, `SELECT `+teacherColumns+` FROM teachers WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("find teacher: %w", err)
	}
	return t, nil
}

func (r *TeacherRepository) Create(ctx context.Context, t *domain.Teacher) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := r.pool.QueryRow(ctx, `
		INSERT INTO teachers (employee_code, given_names, surnames, teaching_hours)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		t.EmployeeCode, t.GivenNames, t.Surnames, t.TeachingHours,
	).Scan(&t.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmployeeCodeTaken
		}
		return fmt.Errorf("insert teacher: %w", err)
	}
	return nil
}

func (r *TeacherRepository) Update(ctx context.Context, id int64, patch domain.TeacherPatch) (*domain.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		UPDATE teachers SET
			employee_code  = COALESCE($2::text, employee_code),
			given_names    = COALESCE($3::text, given_names),
			surnames       = COALESCE($4::text, surnames),
			teaching_hours = COALESCE($5::bigint, teaching_hours)
		WHERE id = $1
		RETURNING `+teacherColumns,
		id, patch.EmployeeCode, patch.GivenNames, patch.Surnames, patch.TeachingHours,
	)
	t, err := scanTeacher(row)
	if err != nil {
		switch {
		case isNoRows(err):
			return nil, domain.ErrTeacherNotFound
		case isUniqueViolation(err):
			return nil, domain.ErrEmployeeCodeTaken
		}
		return nil, fmt.Errorf("update teacher: %w", err)
	}
	return t, nil
}

func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete teacher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTeacherNotFound
	}
	return nil
}
