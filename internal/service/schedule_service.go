package service

import (
	"context"

	"github.com/sekolahdigital/siakad-backend/internal/identifier"
	"github.com/sekolahdigital/siakad-backend/internal/model"
	"github.com/sekolahdigital/siakad-backend/internal/repository"
)

// ScheduleService handles timetable business logic.
type ScheduleService struct {
	scheduleRepo *repository.ScheduleRepository
	idGen        identifier.Generator
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(scheduleRepo *repository.ScheduleRepository, idGen identifier.Generator) *ScheduleService {
	return &ScheduleService{scheduleRepo: scheduleRepo, idGen: idGen}
}

// List retrieves the timetable ordered by weekday then start time.
func (s *ScheduleService) List(ctx context.Context) ([]model.Schedule, error) {
	return s.scheduleRepo.List(ctx)
}

// Create adds a timetable entry.
func (s *ScheduleService) Create(ctx context.Context, req *model.CreateScheduleRequest) (*model.Schedule, error) {
	id, err := s.idGen.NewID(identifier.SchedulePrefix, identifier.LowerNum, identifier.ScheduleLen)
	if err != nil {
		return nil, err
	}

	schedule := &model.Schedule{
		ID:        id,
		ClassID:   req.ClassID,
		SubjectID: req.SubjectID,
		TeacherID: req.TeacherID,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// Delete removes a timetable entry.
func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	return s.scheduleRepo.Delete(ctx, id)
}
