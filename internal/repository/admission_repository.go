package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sekolahdigital/siakad-backend/internal/model"
)

// AdmissionStore is the transactional unit of work consumed by the
// admission transition flow. Everything inside one InTx call commits or
// rolls back together.
type AdmissionStore interface {
	InTx(ctx context.Context, fn func(tx AdmissionTx) error) error
}

// AdmissionTx exposes the reads and writes available inside an admission
// unit of work.
type AdmissionTx interface {
	// SetApplicantStatus updates the applicant's status and reports
	// whether a row matched. In PostgreSQL the UPDATE also takes a row
	// lock, serializing concurrent transitions for the same applicant.
	SetApplicantStatus(ctx context.Context, id string, status model.AdmissionStatus) (bool, error)
	GetApplicant(ctx context.Context, id string) (*model.Applicant, error)
	// FindStudentByApplicant returns the student promoted from the given
	// applicant, or nil when none exists.
	FindStudentByApplicant(ctx context.Context, applicantID string) (*model.Student, error)
	ListClasses(ctx context.Context) ([]model.Class, error)
	InsertStudent(ctx context.Context, s *model.Student) error
}

// AdmissionRepository implements AdmissionStore on a pgx pool.
type AdmissionRepository struct {
	pool *pgxpool.Pool
}

// NewAdmissionRepository creates a new AdmissionRepository.
func NewAdmissionRepository(pool *pgxpool.Pool) *AdmissionRepository {
	return &AdmissionRepository{pool: pool}
}

// InTx runs fn inside a single database transaction. The transaction is
// rolled back when fn returns an error or panics, committed otherwise.
func (r *AdmissionRepository) InTx(ctx context.Context, fn func(tx AdmissionTx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(&admissionTx{tx: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

type admissionTx struct {
	tx pgx.Tx
}

func (t *admissionTx) SetApplicantStatus(ctx context.Context, id string, status model.AdmissionStatus) (bool, error) {
	ct, err := t.tx.Exec(ctx,
		`UPDATE applicants SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

func (t *admissionTx) GetApplicant(ctx context.Context, id string) (*model.Applicant, error) {
	a := &model.Applicant{}
	err := t.tx.QueryRow(ctx,
		`SELECT id, name, previous_school, birth_place, birth_date, gender, address,
		        parent_name, contact, academic_year, registration_date, status
		 FROM applicants WHERE id = $1`, id,
	).Scan(
		&a.ID, &a.Name, &a.PreviousSchool, &a.BirthPlace, &a.BirthDate, &a.Gender,
		&a.Address, &a.ParentName, &a.Contact, &a.AcademicYear, &a.RegistrationDate, &a.Status,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (t *admissionTx) FindStudentByApplicant(ctx context.Context, applicantID string) (*model.Student, error) {
	s := &model.Student{}
	var appID *string
	err := t.tx.QueryRow(ctx,
		`SELECT id, name, class_id, avatar_url, avatar_hint, applicant_id
		 FROM students WHERE applicant_id = $1`, applicantID,
	).Scan(&s.ID, &s.Name, &s.ClassID, &s.AvatarURL, &s.AvatarHint, &appID)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if appID != nil {
		s.ApplicantID = *appID
	}
	return s, nil
}

func (t *admissionTx) ListClasses(ctx context.Context) ([]model.Class, error) {
	rows, err := t.tx.Query(ctx, `SELECT id, name FROM classes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []model.Class
	for rows.Next() {
		var c model.Class
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

func (t *admissionTx) InsertStudent(ctx context.Context, s *model.Student) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO students (id, name, class_id, avatar_url, avatar_hint, applicant_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.Name, s.ClassID, s.AvatarURL, s.AvatarHint, s.ApplicantID,
	)
	return err
}
