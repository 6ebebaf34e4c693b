package model

// Employee is a non-teaching staff member.
type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	AvatarURL  string `json:"avatar_url"`
	AvatarHint string `json:"avatar_hint"`
}

// CreateEmployeeRequest is the payload for creating or updating an employee.
type CreateEmployeeRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Role       string `json:"role" binding:"required,min=2,max=100"`
	AvatarURL  string `json:"avatar_url" binding:"omitempty,url"`
	AvatarHint string `json:"avatar_hint" binding:"omitempty,max=50"`
}
