package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sekolahdigital/siakad-backend/internal/model"
)

// ClassRepository handles class data access.
type ClassRepository struct {
	pool *pgxpool.Pool
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{pool: pool}
}

// GetByID retrieves a class by its ID.
func (r *ClassRepository) GetByID(ctx context.Context, id string) (*model.Class, error) {
	c := &model.Class{}
	var walikelasID *string
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, walikelas_id FROM classes WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &walikelasID)
	if err != nil {
		return nil, err
	}
	if walikelasID != nil {
		c.WalikelasID = *walikelasID
	}
	return c, nil
}

// List retrieves all classes with homeroom teacher name and student count.
func (r *ClassRepository) List(ctx context.Context) ([]model.Class, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.id, c.name, c.walikelas_id, COALESCE(t.name, ''),
		        (SELECT COUNT(*) FROM students s WHERE s.class_id = c.id)
		 FROM classes c
		 LEFT JOIN teachers t ON c.walikelas_id = t.id
		 ORDER BY c.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := []model.Class{}
	for rows.Next() {
		var c model.Class
		var walikelasID *string
		if err := rows.Scan(&c.ID, &c.Name, &walikelasID, &c.WalikelasName, &c.StudentCount); err != nil {
			return nil, err
		}
		if walikelasID != nil {
			c.WalikelasID = *walikelasID
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

// Create inserts a new class.
func (r *ClassRepository) Create(ctx context.Context, c *model.Class) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO classes (id, name, walikelas_id) VALUES ($1, $2, NULLIF($3, ''))`,
		c.ID, c.Name, c.WalikelasID,
	)
	return err
}

// Update modifies an existing class.
func (r *ClassRepository) Update(ctx context.Context, c *model.Class) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE classes SET name = $1, walikelas_id = NULLIF($2, '') WHERE id = $3`,
		c.Name, c.WalikelasID, c.ID,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a class and its teacher associations in one transaction.
// Students still assigned to the class make the final DELETE fail with a
// foreign key violation, surfaced to the caller untouched.
func (r *ClassRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE classes SET walikelas_id = NULL WHERE id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM teacher_classes WHERE class_id = $1`, id); err != nil {
		return err
	}

	ct, err := tx.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return tx.Commit(ctx)
}
