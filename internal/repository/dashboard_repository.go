package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sekolahdigital/siakad-backend/internal/model"
)

// DashboardRepository handles admin dashboard data access.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// SummaryCounts holds the headline numbers on the dashboard landing page.
type SummaryCounts struct {
	Students          int `json:"students"`
	Teachers          int `json:"teachers"`
	Employees         int `json:"employees"`
	Classes           int `json:"classes"`
	Subjects          int `json:"subjects"`
	PendingApplicants int `json:"pending_applicants"`
}

// GetSummaryCounts retrieves the high-level metrics for the dashboard.
func (r *DashboardRepository) GetSummaryCounts(ctx context.Context) (SummaryCounts, error) {
	var c SummaryCounts
	err := r.pool.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM students),
			(SELECT COUNT(*) FROM teachers),
			(SELECT COUNT(*) FROM employees),
			(SELECT COUNT(*) FROM classes),
			(SELECT COUNT(*) FROM subjects),
			(SELECT COUNT(*) FROM applicants WHERE status = $1)`,
		model.AdmissionPending,
	).Scan(&c.Students, &c.Teachers, &c.Employees, &c.Classes, &c.Subjects, &c.PendingApplicants)
	return c, err
}

// GetRecentApplicants retrieves the last N registrations.
func (r *DashboardRepository) GetRecentApplicants(ctx context.Context, limit int) ([]model.Applicant, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, previous_school, academic_year, registration_date, status
		 FROM applicants ORDER BY registration_date DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applicants := []model.Applicant{}
	for rows.Next() {
		var a model.Applicant
		if err := rows.Scan(&a.ID, &a.Name, &a.PreviousSchool, &a.AcademicYear, &a.RegistrationDate, &a.Status); err != nil {
			return nil, err
		}
		applicants = append(applicants, a)
	}
	return applicants, rows.Err()
}

// GetTodayAttendance aggregates today's attendance records by status.
func (r *DashboardRepository) GetTodayAttendance(ctx context.Context, now time.Time) (model.AttendanceSummary, error) {
	var sum model.AttendanceSummary
	rows, err := r.pool.Query(ctx,
		`SELECT status, COUNT(*) FROM attendance_records
		 WHERE timestamp::date = $1::date GROUP BY status`, now)
	if err != nil {
		return sum, err
	}
	defer rows.Close()

	for rows.Next() {
		var status model.AttendanceStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return sum, err
		}
		switch status {
		case model.AttendancePresent:
			sum.Present = count
		case model.AttendanceLate:
			sum.Late = count
		case model.AttendanceAbsent:
			sum.Absent = count
		}
	}
	return sum, rows.Err()
}
