package model

// Gender is the recognized gender values, as stored by the registration form.
type Gender string

const (
	GenderMale   Gender = "Laki-laki"
	GenderFemale Gender = "Perempuan"
)

// Student is an enrolled student. ApplicantID is set only for students
// promoted from an accepted applicant; at most one student exists per
// applicant (unique index).
type Student struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ClassID     string `json:"class_id"`
	ClassName   string `json:"class_name,omitempty"`
	AvatarURL   string `json:"avatar_url"`
	AvatarHint  string `json:"avatar_hint"`
	ApplicantID string `json:"applicant_id,omitempty"`
}

// CreateStudentRequest is the payload for manual enrollment. Avatar fields
// are optional; defaults are derived from the generated student ID.
type CreateStudentRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	ClassID    string `json:"class_id" binding:"required"`
	AvatarURL  string `json:"avatar_url" binding:"omitempty,url"`
	AvatarHint string `json:"avatar_hint" binding:"omitempty,max=50"`
}

// UpdateStudentRequest is the payload for editing a student.
type UpdateStudentRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	ClassID string `json:"class_id" binding:"required"`
}
