package service

import (
	"context"

	"github.com/sekolahdigital/siakad-backend/internal/identifier"
	"github.com/sekolahdigital/siakad-backend/internal/model"
	"github.com/sekolahdigital/siakad-backend/internal/repository"
)

// TeacherService handles teacher business logic.
type TeacherService struct {
	teacherRepo *repository.TeacherRepository
	idGen       identifier.Generator
}

// NewTeacherService creates a new TeacherService.
func NewTeacherService(teacherRepo *repository.TeacherRepository, idGen identifier.Generator) *TeacherService {
	return &TeacherService{teacherRepo: teacherRepo, idGen: idGen}
}

// GetByID retrieves a teacher with their taught classes.
func (s *TeacherService) GetByID(ctx context.Context, id string) (*model.Teacher, error) {
	return s.teacherRepo.GetByID(ctx, id)
}

// List retrieves all teachers.
func (s *TeacherService) List(ctx context.Context) ([]model.Teacher, error) {
	return s.teacherRepo.List(ctx)
}

// Create adds a teacher and their class assignments.
func (s *TeacherService) Create(ctx context.Context, req *model.CreateTeacherRequest) (*model.Teacher, error) {
	id, err := s.idGen.NewID(identifier.TeacherPrefix, identifier.LowerNum, identifier.TeacherLen)
	if err != nil {
		return nil, err
	}

	teacher := &model.Teacher{
		ID:             id,
		Name:           req.Name,
		NIP:            req.NIP,
		SubjectID:      req.SubjectID,
		TaughtClassIDs: req.TaughtClassIDs,
		AvatarURL:      req.AvatarURL,
		AvatarHint:     req.AvatarHint,
	}
	if teacher.AvatarURL == "" {
		teacher.AvatarURL = model.DefaultAvatarURL(id)
	}
	if teacher.AvatarHint == "" {
		teacher.AvatarHint = model.DefaultAvatarHint
	}
	if teacher.TaughtClassIDs == nil {
		teacher.TaughtClassIDs = []string{}
	}

	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

// Update modifies a teacher and resyncs their class assignments.
func (s *TeacherService) Update(ctx context.Context, teacher *model.Teacher) error {
	if teacher.TaughtClassIDs == nil {
		teacher.TaughtClassIDs = []string{}
	}
	return s.teacherRepo.Update(ctx, teacher)
}

// Delete removes a teacher together with homeroom references, class
// assignments and any login account.
func (s *TeacherService) Delete(ctx context.Context, id string) error {
	return s.teacherRepo.Delete(ctx, id)
}
