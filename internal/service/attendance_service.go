package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/sekolahdigital/siakad-backend/internal/config"
	"github.com/sekolahdigital/siakad-backend/internal/identifier"
	"github.com/sekolahdigital/siakad-backend/internal/model"
	"github.com/sekolahdigital/siakad-backend/internal/repository"
	ws "github.com/sekolahdigital/siakad-backend/internal/websocket"
)

// AttendanceService handles attendance check-ins, the report view and the
// daily absence sweep.
type AttendanceService struct {
	attendanceRepo *repository.AttendanceRepository
	studentRepo    *repository.StudentRepository
	rdb            *redis.Client
	idGen          identifier.Generator
	log            zerolog.Logger
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(
	attendanceRepo *repository.AttendanceRepository,
	studentRepo *repository.StudentRepository,
	rdb *redis.Client,
	idGen identifier.Generator,
	log zerolog.Logger,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
		rdb:            rdb,
		idGen:          idGen,
		log:            log.With().Str("component", "attendance_service").Logger(),
	}
}

// ErrAlreadyCheckedIn is returned when a student scans twice on one day.
var ErrAlreadyCheckedIn = errors.New("student already checked in today")

// CheckIn records attendance for a student and publishes the event to the
// live scan feed. Unknown student IDs surface as pgx.ErrNoRows from the
// lookup.
func (s *AttendanceService) CheckIn(ctx context.Context, req *model.CheckInRequest) (*model.AttendanceRecord, error) {
	student, err := s.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	exists, err := s.attendanceRepo.HasRecordToday(ctx, student.ID, time.Now())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyCheckedIn
	}

	id, err := s.idGen.NewID(identifier.AttendancePrefix, identifier.LowerNum, identifier.AttendanceLen)
	if err != nil {
		return nil, err
	}

	record := &model.AttendanceRecord{
		ID:          id,
		StudentID:   student.ID,
		StudentName: student.Name,
		ClassID:     student.ClassID,
		ClassName:   student.ClassName,
		Timestamp:   time.Now(),
		Status:      req.Status,
	}
	if err := s.attendanceRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, record)
	return record, nil
}

// Report retrieves attendance records for the report page.
func (s *AttendanceService) Report(ctx context.Context, f repository.ReportFilter) ([]model.AttendanceRecord, error) {
	return s.attendanceRepo.List(ctx, f)
}

// MarkAbsentees inserts an Absent record for every student without a
// check-in on the given day. Returns how many students were marked.
func (s *AttendanceService) MarkAbsentees(ctx context.Context, day time.Time) (int, error) {
	students, err := s.attendanceRepo.ListUncheckedStudents(ctx, day)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, student := range students {
		id, err := s.idGen.NewID(identifier.AttendancePrefix, identifier.LowerNum, identifier.AttendanceLen)
		if err != nil {
			return marked, err
		}
		record := &model.AttendanceRecord{
			ID:        id,
			StudentID: student.ID,
			Timestamp: day,
			Status:    model.AttendanceAbsent,
		}
		if err := s.attendanceRepo.Create(ctx, record); err != nil {
			return marked, err
		}
		marked++
	}
	return marked, nil
}

// publishEvent pushes the check-in onto the Redis channel consumed by the
// dashboard WebSocket feed. Publish failures are logged but do not fail
// the check-in, which is already committed.
func (s *AttendanceService) publishEvent(ctx context.Context, record *model.AttendanceRecord) {
	event := ws.AttendanceEvent{
		RecordID:    record.ID,
		StudentID:   record.StudentID,
		StudentName: record.StudentName,
		ClassName:   record.ClassName,
		Status:      string(record.Status),
		Timestamp:   record.Timestamp,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.Error().Err(err).Msg("Marshal attendance event")
		return
	}
	if err := s.rdb.Publish(ctx, config.CacheKey.AttendanceEventChannel(), payload).Err(); err != nil {
		s.log.Error().Err(err).Str("record_id", record.ID).Msg("Publish attendance event")
	}
}
