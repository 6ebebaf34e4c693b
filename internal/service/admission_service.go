package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sekolahdigital/siakad-backend/internal/identifier"
	"github.com/sekolahdigital/siakad-backend/internal/model"
	"github.com/sekolahdigital/siakad-backend/internal/repository"
)

// Admission flow errors.
var (
	ErrApplicantNotFound      = errors.New("applicant not found")
	ErrInvalidAdmissionStatus = errors.New("invalid admission status")
	ErrNoClassAvailable       = errors.New("no class available to place new student")
)

// AdmissionService owns the applicant lifecycle: public registration and
// the status transition that promotes accepted applicants to students.
type AdmissionService struct {
	applicantRepo *repository.ApplicantRepository
	store         repository.AdmissionStore
	idGen         identifier.Generator
	log           zerolog.Logger
}

// NewAdmissionService creates a new AdmissionService.
func NewAdmissionService(
	applicantRepo *repository.ApplicantRepository,
	store repository.AdmissionStore,
	idGen identifier.Generator,
	log zerolog.Logger,
) *AdmissionService {
	return &AdmissionService{
		applicantRepo: applicantRepo,
		store:         store,
		idGen:         idGen,
		log:           log.With().Str("component", "admission_service").Logger(),
	}
}

// List retrieves all applicants, newest registrations first.
func (s *AdmissionService) List(ctx context.Context) ([]model.Applicant, error) {
	return s.applicantRepo.List(ctx)
}

// Register creates a Pending applicant from the public registration form.
func (s *AdmissionService) Register(ctx context.Context, req *model.CreateApplicantRequest) (*model.Applicant, error) {
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("parse birth date: %w", err)
	}

	id, err := s.idGen.NewID(identifier.ApplicantPrefix, identifier.LowerNum, identifier.ApplicantLen)
	if err != nil {
		return nil, err
	}

	applicant := &model.Applicant{
		ID:               id,
		Name:             req.Name,
		PreviousSchool:   req.PreviousSchool,
		BirthPlace:       req.BirthPlace,
		BirthDate:        birthDate,
		Gender:           req.Gender,
		Address:          req.Address,
		ParentName:       req.ParentName,
		Contact:          req.Contact,
		AcademicYear:     req.AcademicYear,
		RegistrationDate: time.Now(),
		Status:           model.AdmissionPending,
	}

	if err := s.applicantRepo.Create(ctx, applicant); err != nil {
		return nil, err
	}

	s.log.Info().Str("applicant_id", id).Str("name", req.Name).Msg("Applicant registered")
	return applicant, nil
}

// StatusChange reports the outcome of a SetStatus call. StudentID is set
// only when a new student record was created by this call.
type StatusChange struct {
	ApplicantID     string
	Status          model.AdmissionStatus
	StudentID       string
	AlreadyEnrolled bool
}

// SetStatus atomically updates an applicant's admission status. When the
// new status is Accepted it additionally ensures exactly one student
// record exists for the applicant:
//
//   - an existing promoted student makes the call idempotent: the status
//     update commits and no second student is created;
//   - otherwise a student is created in the same transaction, placed in
//     the default class;
//   - if no class exists the whole transaction rolls back, including the
//     status update, and ErrNoClassAvailable is returned.
//
// Invalid status values are rejected before any data access.
func (s *AdmissionService) SetStatus(ctx context.Context, applicantID, rawStatus string) (*StatusChange, error) {
	status, ok := model.ParseAdmissionStatus(rawStatus)
	if !ok {
		return nil, ErrInvalidAdmissionStatus
	}

	result := &StatusChange{ApplicantID: applicantID, Status: status}

	err := s.store.InTx(ctx, func(tx repository.AdmissionTx) error {
		matched, err := tx.SetApplicantStatus(ctx, applicantID, status)
		if err != nil {
			return err
		}
		if !matched {
			return ErrApplicantNotFound
		}

		if status != model.AdmissionAccepted {
			return nil
		}

		applicant, err := tx.GetApplicant(ctx, applicantID)
		if err != nil {
			return err
		}

		existing, err := tx.FindStudentByApplicant(ctx, applicantID)
		if err != nil {
			return err
		}
		if existing != nil {
			result.AlreadyEnrolled = true
			return nil
		}

		classes, err := tx.ListClasses(ctx)
		if err != nil {
			return err
		}
		placement, ok := pickPlacementClass(classes)
		if !ok {
			return ErrNoClassAvailable
		}

		studentID, err := s.idGen.NewID(identifier.StudentPrefix, identifier.Digits, identifier.StudentLen)
		if err != nil {
			return err
		}

		student := &model.Student{
			ID:          studentID,
			Name:        applicant.Name,
			ClassID:     placement.ID,
			AvatarURL:   model.DefaultAvatarURL(studentID),
			AvatarHint:  model.DefaultAvatarHint,
			ApplicantID: applicant.ID,
		}
		if err := tx.InsertStudent(ctx, student); err != nil {
			return err
		}

		result.StudentID = studentID
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.StudentID != "" {
		s.log.Info().
			Str("applicant_id", applicantID).
			Str("student_id", result.StudentID).
			Msg("Applicant accepted and enrolled")
	}
	return result, nil
}

// pickPlacementClass selects the default class for a newly promoted
// student: the class whose name sorts first, ties broken by the smaller
// ID. A placeholder policy until proper placement (e.g. least populated
// class) is implemented.
func pickPlacementClass(classes []model.Class) (model.Class, bool) {
	if len(classes) == 0 {
		return model.Class{}, false
	}
	best := classes[0]
	for _, c := range classes[1:] {
		if c.Name < best.Name || (c.Name == best.Name && c.ID < best.ID) {
			best = c
		}
	}
	return best, true
}
