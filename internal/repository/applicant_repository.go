package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sekolahdigital/siakad-backend/internal/model"
)

// ApplicantRepository handles registration applicant data access.
type ApplicantRepository struct {
	pool *pgxpool.Pool
}

// NewApplicantRepository creates a new ApplicantRepository.
func NewApplicantRepository(pool *pgxpool.Pool) *ApplicantRepository {
	return &ApplicantRepository{pool: pool}
}

// Create inserts a new applicant produced by the public registration form.
func (r *ApplicantRepository) Create(ctx context.Context, a *model.Applicant) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO applicants
			(id, name, previous_school, birth_place, birth_date, gender, address,
			 parent_name, contact, academic_year, registration_date, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		a.ID, a.Name, a.PreviousSchool, a.BirthPlace, a.BirthDate, a.Gender,
		a.Address, a.ParentName, a.Contact, a.AcademicYear, a.RegistrationDate, a.Status,
	)
	return err
}

// List retrieves all applicants, newest registrations first.
func (r *ApplicantRepository) List(ctx context.Context) ([]model.Applicant, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, previous_school, birth_place, birth_date, gender, address,
		        parent_name, contact, academic_year, registration_date, status
		 FROM applicants ORDER BY registration_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applicants := []model.Applicant{}
	for rows.Next() {
		var a model.Applicant
		if err := rows.Scan(
			&a.ID, &a.Name, &a.PreviousSchool, &a.BirthPlace, &a.BirthDate, &a.Gender,
			&a.Address, &a.ParentName, &a.Contact, &a.AcademicYear, &a.RegistrationDate, &a.Status,
		); err != nil {
			return nil, err
		}
		applicants = append(applicants, a)
	}
	return applicants, rows.Err()
}
