package service

import (
	"context"

	"github.com/sekolahdigital/siakad-backend/internal/identifier"
	"github.com/sekolahdigital/siakad-backend/internal/model"
	"github.com/sekolahdigital/siakad-backend/internal/repository"
)

// StudentService handles student business logic.
type StudentService struct {
	studentRepo *repository.StudentRepository
	idGen       identifier.Generator
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository, idGen identifier.Generator) *StudentService {
	return &StudentService{studentRepo: studentRepo, idGen: idGen}
}

// GetByID retrieves a student by its ID.
func (s *StudentService) GetByID(ctx context.Context, id string) (*model.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// List retrieves all students with class names.
func (s *StudentService) List(ctx context.Context) ([]model.Student, error) {
	return s.studentRepo.List(ctx)
}

// ListByClass retrieves the students placed in one class.
func (s *StudentService) ListByClass(ctx context.Context, classID string) ([]model.Student, error) {
	return s.studentRepo.ListByClass(ctx, classID)
}

// Create enrolls a student manually. Missing avatar fields fall back to
// the placeholder portrait derived from the generated ID.
func (s *StudentService) Create(ctx context.Context, req *model.CreateStudentRequest) (*model.Student, error) {
	id, err := s.idGen.NewID(identifier.StudentPrefix, identifier.Digits, identifier.StudentLen)
	if err != nil {
		return nil, err
	}

	student := &model.Student{
		ID:         id,
		Name:       req.Name,
		ClassID:    req.ClassID,
		AvatarURL:  req.AvatarURL,
		AvatarHint: req.AvatarHint,
	}
	if student.AvatarURL == "" {
		student.AvatarURL = model.DefaultAvatarURL(id)
	}
	if student.AvatarHint == "" {
		student.AvatarHint = model.DefaultAvatarHint
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Update modifies a student's name and class placement.
func (s *StudentService) Update(ctx context.Context, student *model.Student) error {
	return s.studentRepo.Update(ctx, student)
}

// Delete removes a student.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	return s.studentRepo.Delete(ctx, id)
}
