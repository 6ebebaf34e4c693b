package service

import (
	"context"

	"github.com/sekolahdigital/siakad-backend/internal/identifier"
	"github.com/sekolahdigital/siakad-backend/internal/model"
	"github.com/sekolahdigital/siakad-backend/internal/repository"
)

// ClassService handles class business logic.
type ClassService struct {
	classRepo *repository.ClassRepository
	idGen     identifier.Generator
}

// NewClassService creates a new ClassService.
func NewClassService(classRepo *repository.ClassRepository, idGen identifier.Generator) *ClassService {
	return &ClassService{classRepo: classRepo, idGen: idGen}
}

// GetByID retrieves a class by its ID.
func (s *ClassService) GetByID(ctx context.Context, id string) (*model.Class, error) {
	return s.classRepo.GetByID(ctx, id)
}

// List retrieves all classes with homeroom teacher and student count.
func (s *ClassService) List(ctx context.Context) ([]model.Class, error) {
	return s.classRepo.List(ctx)
}

// Create creates a new class.
func (s *ClassService) Create(ctx context.Context, req *model.CreateClassRequest) (*model.Class, error) {
	id, err := s.idGen.NewID(identifier.ClassPrefix, identifier.Digits, identifier.ClassLen)
	if err != nil {
		return nil, err
	}

	class := &model.Class{
		ID:          id,
		Name:        req.Name,
		WalikelasID: req.WalikelasID,
	}
	if err := s.classRepo.Create(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

// Update modifies an existing class.
func (s *ClassService) Update(ctx context.Context, class *model.Class) error {
	return s.classRepo.Update(ctx, class)
}

// Delete removes a class. Foreign key constraints on students prevent
// deleting a class that still has members; the handler maps that to 409.
func (s *ClassService) Delete(ctx context.Context, id string) error {
	return s.classRepo.Delete(ctx, id)
}
