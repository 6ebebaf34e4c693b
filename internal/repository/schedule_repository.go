package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sekolahdigital/siakad-backend/internal/model"
)

// ScheduleRepository handles timetable data access.
type ScheduleRepository struct {
	pool *pgxpool.Pool
}

// NewScheduleRepository creates a new ScheduleRepository.
func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

// List retrieves all timetable entries ordered school-week first
// (Monday before Friday), then by start time.
func (r *ScheduleRepository) List(ctx context.Context) ([]model.Schedule, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, class_id, subject_id, teacher_id, day,
		        to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')
		 FROM schedules
		 ORDER BY array_position(ARRAY['Monday','Tuesday','Wednesday','Thursday','Friday'], day),
		          start_time, end_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := []model.Schedule{}
	for rows.Next() {
		var s model.Schedule
		if err := rows.Scan(&s.ID, &s.ClassID, &s.SubjectID, &s.TeacherID, &s.Day, &s.StartTime, &s.EndTime); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

// Create inserts a timetable entry.
func (r *ScheduleRepository) Create(ctx context.Context, s *model.Schedule) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO schedules (id, class_id, subject_id, teacher_id, day, start_time, end_time)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.ClassID, s.SubjectID, s.TeacherID, s.Day, s.StartTime, s.EndTime,
	)
	return err
}

// Delete removes a timetable entry by its ID.
func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
