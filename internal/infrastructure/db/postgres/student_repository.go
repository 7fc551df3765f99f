package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
)

const studentColumns = `id, given_names, surnames, enrollment_code, grade_average, profile_picture_locator, password_hash`

type StudentRepository struct {
	pool *pgxpool.Pool
}

func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

func scanStudent(row pgx.Row) (*domain.Student, error) {
	var s domain.Student
	err := row.Scan(&s.ID, &s.GivenNames, &s.Surnames, &s.EnrollmentCode,
		&s.GradeAverage, &s.ProfilePictureLocator, &s.PasswordHash)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepository) List(ctx context.Context) ([]*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `SELECT `+studentColumns+` FROM students ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query students: %w", err)
	}
	defer rows.Close()

	out := []*domain.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	s, err := scanStudent(r.pool.QueryRow(ctx, `SELECT `+studentColumns+` FROM students WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("find student: %w", err)
	}
	return s, nil
}

func (r *StudentRepository) Create(ctx context.Context, s *domain.Student) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := r.pool.QueryRow(ctx, `
		INSERT INTO students (given_names, surnames, enrollment_code, grade_average, profile_picture_locator, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		s.GivenNames, s.Surnames, s.EnrollmentCode, s.GradeAverage, s.ProfilePictureLocator, s.PasswordHash,
	).Scan(&s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEnrollmentCodeTaken
		}
		return fmt.Errorf("insert student: %w", err)
	}
	return nil
}

// Update writes only the non-nil patch fields in a single statement.
func (r *StudentRepository) Update(ctx context.Context, id int64, patch domain.StudentPatch) (*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		UPDATE students SET
			given_names             = COALESCE($2::text, given_names),
			surnames                = COALESCE($3::text, surnames),
			enrollment_code         = COALESCE($4::text, enrollment_code),
			grade_average           = COALESCE($5::double precision, grade_average),
			profile_picture_locator = COALESCE($6::text, profile_picture_locator)
		WHERE id = $1
		RETURNING `+studentColumns,
		id, patch.GivenNames, patch.Surnames, patch.EnrollmentCode, patch.GradeAverage, patch.ProfilePictureLocator,
	)
	s, err := scanStudent(row)
	if err != nil {
		switch {
		case isNoRows(err):
			return nil, domain.ErrStudentNotFound
		case isUniqueViolation(err):
			return nil, domain.ErrEnrollmentCodeTaken
		}
		return nil, fmt.Errorf("update student: %w", err)
	}
	return s, nil
}

func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}
