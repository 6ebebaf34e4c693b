package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sekolahdigital/siakad-backend/internal/model"
)

// TeacherRepository handles teacher data access, including the
// teacher_classes assignment table.
type TeacherRepository struct {
	pool *pgxpool.Pool
}

// NewTeacherRepository creates a new TeacherRepository.
func NewTeacherRepository(pool *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{pool: pool}
}

// GetByID retrieves a teacher with their taught class IDs.
func (r *TeacherRepository) GetByID(ctx context.Context, id string) (*model.Teacher, error) {
	t := &model.Teacher{}
	err := r.pool.QueryRow(ctx,
		`SELECT t.id, t.name, t.nip, t.subject_id, t.avatar_url, t.avatar_hint,
		        COALESCE(sub.name, '')
		 FROM teachers t
		 LEFT JOIN subjects sub ON t.subject_id = sub.id
		 WHERE t.id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.NIP, &t.SubjectID, &t.AvatarURL, &t.AvatarHint, &t.SubjectName)
	if err != nil {
		return nil, err
	}

	t.TaughtClassIDs, err = r.taughtClassIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// List retrieves all teachers with subject name and taught class IDs.
func (r *TeacherRepository) List(ctx context.Context) ([]model.Teacher, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT t.id, t.name, t.nip, t.subject_id, t.avatar_url, t.avatar_hint,
		        COALESCE(sub.name, ''),
		        COALESCE(array_agg(tc.class_id) FILTER (WHERE tc.class_id IS NOT NULL), '{}')
		 FROM teachers t
		 LEFT JOIN subjects sub ON t.subject_id = sub.id
		 LEFT JOIN teacher_classes tc ON tc.teacher_id = t.id
		 GROUP BY t.id, t.name, t.nip, t.subject_id, t.avatar_url, t.avatar_hint, sub.name
		 ORDER BY t.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teachers := []model.Teacher{}
	for rows.Next() {
		var t model.Teacher
		if err := rows.Scan(
			&t.ID, &t.Name, &t.NIP, &t.SubjectID, &t.AvatarURL, &t.AvatarHint,
			&t.SubjectName, &t.TaughtClassIDs,
		); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

// Create inserts a teacher and their class assignments in one transaction.
func (r *TeacherRepository) Create(ctx context.Context, t *model.Teacher) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`INSERT INTO teachers (id, name, nip, subject_id, avatar_url, avatar_hint)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.Name, t.NIP, t.SubjectID, t.AvatarURL, t.AvatarHint,
	); err != nil {
		return err
	}

	if err := insertTaughtClasses(ctx, tx, t.ID, t.TaughtClassIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Update modifies a teacher and resyncs their class assignments.
func (r *TeacherRepository) Update(ctx context.Context, t *model.Teacher) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	ct, err := tx.Exec(ctx,
		`UPDATE teachers
		 SET name = $1, nip = $2, subject_id = $3,
		     avatar_url = COALESCE(NULLIF($4, ''), avatar_url),
		     avatar_hint = COALESCE(NULLIF($5, ''), avatar_hint)
		 WHERE id = $6`,
		t.Name, t.NIP, t.SubjectID, t.AvatarURL, t.AvatarHint, t.ID,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if _, err := tx.Exec(ctx, `DELETE FROM teacher_classes WHERE teacher_id = $1`, t.ID); err != nil {
		return err
	}
	if err := insertTaughtClasses(ctx, tx, t.ID, t.TaughtClassIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Delete removes a teacher together with their homeroom references, class
// assignments and login account, all in one transaction.
func (r *TeacherRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE classes SET walikelas_id = NULL WHERE walikelas_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM teacher_classes WHERE teacher_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM users WHERE teacher_id = $1`, id); err != nil {
		return err
	}

	ct, err := tx.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return tx.Commit(ctx)
}

func (r *TeacherRepository) taughtClassIDs(ctx context.Context, teacherID string) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT class_id FROM teacher_classes WHERE teacher_id = $1 ORDER BY class_id`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func insertTaughtClasses(ctx context.Context, tx pgx.Tx, teacherID string, classIDs []string) error {
	for _, classID := range classIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO teacher_classes (teacher_id, class_id) VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`,
			teacherID, classID,
		); err != nil {
			return err
		}
	}
	return nil
}
