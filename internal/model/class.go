package model

// Class represents a school class group. WalikelasID references the
// homeroom teacher and may be empty.
type Class struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	WalikelasID   string `json:"walikelas_id,omitempty"`
	WalikelasName string `json:"walikelas_name,omitempty"`
	StudentCount  int    `json:"student_count"`
}

// CreateClassRequest is the payload for creating or updating a class.
type CreateClassRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=50"`
	WalikelasID string `json:"walikelas_id" binding:"omitempty"`
}
