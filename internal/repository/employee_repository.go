package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sekolahdigital/siakad-backend/internal/model"
)

// EmployeeRepository handles non-teaching staff data access.
type EmployeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository creates a new EmployeeRepository.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// List retrieves all employees ordered by name.
func (r *EmployeeRepository) List(ctx context.Context) ([]model.Employee, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, role, avatar_url, avatar_hint FROM employees ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []model.Employee{}
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Role, &e.AvatarURL, &e.AvatarHint); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// Create inserts a new employee.
func (r *EmployeeRepository) Create(ctx context.Context, e *model.Employee) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO employees (id, name, role, avatar_url, avatar_hint)
		 VALUES ($1, $2, $3, $4, $5)`,
		e.ID, e.Name, e.Role, e.AvatarURL, e.AvatarHint,
	)
	return err
}

// Update modifies an employee. Empty avatar fields keep the stored ones.
func (r *EmployeeRepository) Update(ctx context.Context, e *model.Employee) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE employees
		 SET name = $1, role = $2,
		     avatar_url = COALESCE(NULLIF($3, ''), avatar_url),
		     avatar_hint = COALESCE(NULLIF($4, ''), avatar_hint)
		 WHERE id = $5`,
		e.Name, e.Role, e.AvatarURL, e.AvatarHint, e.ID,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes an employee by its ID.
func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
