package service

import (
	"context"

	"github.com/sekolahdigital/siakad-backend/internal/identifier"
	"github.com/sekolahdigital/siakad-backend/internal/model"
	"github.com/sekolahdigital/siakad-backend/internal/repository"
)

// EmployeeService handles non-teaching staff business logic.
type EmployeeService struct {
	employeeRepo *repository.EmployeeRepository
	idGen        identifier.Generator
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(employeeRepo *repository.EmployeeRepository, idGen identifier.Generator) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo, idGen: idGen}
}

// List retrieves all employees.
func (s *EmployeeService) List(ctx context.Context) ([]model.Employee, error) {
	return s.employeeRepo.List(ctx)
}

// Create adds an employee, deriving placeholder avatar fields when absent.
func (s *EmployeeService) Create(ctx context.Context, req *model.CreateEmployeeRequest) (*model.Employee, error) {
	id, err := s.idGen.NewID(identifier.EmployeePrefix, identifier.LowerNum, identifier.EmployeeLen)
	if err != nil {
		return nil, err
	}

	employee := &model.Employee{
		ID:         id,
		Name:       req.Name,
		Role:       req.Role,
		AvatarURL:  req.AvatarURL,
		AvatarHint: req.AvatarHint,
	}
	if employee.AvatarURL == "" {
		employee.AvatarURL = model.DefaultAvatarURL(id)
	}
	if employee.AvatarHint == "" {
		employee.AvatarHint = model.DefaultAvatarHint
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Update modifies an employee's name and role.
func (s *EmployeeService) Update(ctx context.Context, employee *model.Employee) error {
	return s.employeeRepo.Update(ctx, employee)
}

// Delete removes an employee.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}
