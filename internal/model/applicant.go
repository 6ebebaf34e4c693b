package model

import "time"

// AdmissionStatus is the lifecycle state of a registration applicant.
type AdmissionStatus string

const (
	AdmissionPending  AdmissionStatus = "Pending"
	AdmissionAccepted AdmissionStatus = "Accepted"
	AdmissionRejected AdmissionStatus = "Rejected"
)

// ParseAdmissionStatus validates a raw status string. The bool reports
// whether the value is one of the three known states.
func ParseAdmissionStatus(raw string) (AdmissionStatus, bool) {
	switch AdmissionStatus(raw) {
	case AdmissionPending, AdmissionAccepted, AdmissionRejected:
		return AdmissionStatus(raw), true
	}
	return "", false
}

// Applicant is a prospective student's registration record awaiting an
// admission decision.
type Applicant struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	PreviousSchool   string          `json:"previous_school"`
	BirthPlace       string          `json:"birth_place"`
	BirthDate        time.Time       `json:"birth_date"`
	Gender           Gender          `json:"gender"`
	Address          string          `json:"address"`
	ParentName       string          `json:"parent_name"`
	Contact          string          `json:"contact"`
	AcademicYear     string          `json:"academic_year"`
	RegistrationDate time.Time       `json:"registration_date"`
	Status           AdmissionStatus `json:"status"`
}

// CreateApplicantRequest is the public registration form payload.
// All fields are required, matching the registration page.
type CreateApplicantRequest struct {
	Name           string `json:"name" binding:"required,min=2,max=100"`
	PreviousSchool string `json:"previous_school" binding:"required,max=150"`
	BirthPlace     string `json:"birth_place" binding:"required,max=100"`
	BirthDate      string `json:"birth_date" binding:"required,datetime=2006-01-02"`
	Gender         Gender `json:"gender" binding:"required,oneof=Laki-laki Perempuan"`
	Address        string `json:"address" binding:"required,max=255"`
	ParentName     string `json:"parent_name" binding:"required,max=100"`
	Contact        string `json:"contact" binding:"required,max=50"`
	AcademicYear   string `json:"academic_year" binding:"required,max=20"`
}

// SetAdmissionStatusRequest is the payload for the admission decision
// endpoint. Status is validated by the service so unknown values map to
// a 400 before any data access.
type SetAdmissionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
