package model

// Teacher represents a teaching staff member. TaughtClassIDs lists the
// classes the teacher is assigned to via the teacher_classes join table.
type Teacher struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	NIP            string   `json:"nip"`
	SubjectID      string   `json:"subject_id"`
	SubjectName    string   `json:"subject_name,omitempty"`
	AvatarURL      string   `json:"avatar_url"`
	AvatarHint     string   `json:"avatar_hint"`
	TaughtClassIDs []string `json:"taught_class_ids"`
}

// CreateTeacherRequest is the payload for creating or updating a teacher.
type CreateTeacherRequest struct {
	Name           string   `json:"name" binding:"required,min=2,max=100"`
	NIP            string   `json:"nip" binding:"required,min=4,max=30"`
	SubjectID      string   `json:"subject_id" binding:"required"`
	TaughtClassIDs []string `json:"taught_class_ids" binding:"omitempty"`
	AvatarURL      string   `json:"avatar_url" binding:"omitempty,url"`
	AvatarHint     string   `json:"avatar_hint" binding:"omitempty,max=50"`
}
