package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sekolahdigital/siakad-backend/internal/model"
)

// AttendanceRepository handles attendance record data access.
type AttendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

// Create inserts an attendance record.
func (r *AttendanceRepository) Create(ctx context.Context, rec *model.AttendanceRecord) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO attendance_records (id, student_id, timestamp, status)
		 VALUES ($1, $2, $3, $4)`,
		rec.ID, rec.StudentID, rec.Timestamp, rec.Status,
	)
	return err
}

// ReportFilter narrows the attendance report. Zero values mean no filter.
type ReportFilter struct {
	ClassID string
	From    time.Time
	To      time.Time
}

// List retrieves attendance records joined with student and class names,
// newest first, applying the optional filters.
func (r *AttendanceRepository) List(ctx context.Context, f ReportFilter) ([]model.AttendanceRecord, error) {
	query := `
		SELECT a.id, a.student_id, s.name, COALESCE(s.class_id, ''), COALESCE(c.name, ''),
		       a.timestamp, a.status
		FROM attendance_records a
		JOIN students s ON a.student_id = s.id
		LEFT JOIN classes c ON s.class_id = c.id
		WHERE 1=1`
	args := []interface{}{}

	if f.ClassID != "" {
		args = append(args, f.ClassID)
		query += ` AND s.class_id = $1`
	}
	if !f.From.IsZero() {
		args = append(args, f.From)
		query += ` AND a.timestamp >= $` + strconv.Itoa(len(args))
	}
	if !f.To.IsZero() {
		args = append(args, f.To)
		query += ` AND a.timestamp <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY a.timestamp DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []model.AttendanceRecord{}
	for rows.Next() {
		var rec model.AttendanceRecord
		if err := rows.Scan(
			&rec.ID, &rec.StudentID, &rec.StudentName, &rec.ClassID, &rec.ClassName,
			&rec.Timestamp, &rec.Status,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// HasRecordToday reports whether the student already checked in on the
// given day.
func (r *AttendanceRepository) HasRecordToday(ctx context.Context, studentID string, day time.Time) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM attendance_records
			WHERE student_id = $1 AND timestamp::date = $2::date)`,
		studentID, day,
	).Scan(&exists)
	return exists, err
}

// ListUncheckedStudents returns students with no attendance record on the
// given day. Used by the absence sweep.
func (r *AttendanceRepository) ListUncheckedStudents(ctx context.Context, day time.Time) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT s.id, s.name, s.class_id
		 FROM students s
		 WHERE NOT EXISTS (
			SELECT 1 FROM attendance_records a
			WHERE a.student_id = s.id AND a.timestamp::date = $1::date)`,
		day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []model.Student{}
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.ClassID); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
