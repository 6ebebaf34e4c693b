package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sekolahdigital/siakad-backend/internal/model"
)

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// GetByID retrieves a student by its ID.
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*model.Student, error) {
	s := &model.Student{}
	var appID *string
	err := r.pool.QueryRow(ctx,
		`SELECT s.id, s.name, s.class_id, s.avatar_url, s.avatar_hint, s.applicant_id,
		        COALESCE(c.name, '')
		 FROM students s
		 LEFT JOIN classes c ON s.class_id = c.id
		 WHERE s.id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.ClassID, &s.AvatarURL, &s.AvatarHint, &appID, &s.ClassName)
	if err != nil {
		return nil, err
	}
	if appID != nil {
		s.ApplicantID = *appID
	}
	return s, nil
}

// List retrieves all students with their class name, ordered by name.
func (r *StudentRepository) List(ctx context.Context) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT s.id, s.name, s.class_id, s.avatar_url, s.avatar_hint,
		        COALESCE(c.name, '')
		 FROM students s
		 LEFT JOIN classes c ON s.class_id = c.id
		 ORDER BY s.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []model.Student{}
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.ClassID, &s.AvatarURL, &s.AvatarHint, &s.ClassName); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// ListByClass retrieves all students assigned to a class.
func (r *StudentRepository) ListByClass(ctx context.Context, classID string) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, class_id, avatar_url, avatar_hint
		 FROM students WHERE class_id = $1 ORDER BY name ASC`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []model.Student{}
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.ClassID, &s.AvatarURL, &s.AvatarHint); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// Create inserts a manually enrolled student.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO students (id, name, class_id, avatar_url, avatar_hint)
		 VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.Name, s.ClassID, s.AvatarURL, s.AvatarHint,
	)
	return err
}

// Update modifies an existing student's name and class placement.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE students SET name = $1, class_id = $2 WHERE id = $3`,
		s.Name, s.ClassID, s.ID,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a student by its ID.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
