package model

import "time"

// UserRole distinguishes dashboard operator account types.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleTeacher UserRole = "teacher"
)

// User is a dashboard login account. Teacher accounts carry a reference
// to their teacher record and are removed together with it.
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         UserRole  `json:"role"`
	TeacherID    *string   `json:"teacher_id,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LoginRequest is the payload for dashboard authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CreateUserRequest is the payload for creating an operator account.
type CreateUserRequest struct {
	Email     string   `json:"email" binding:"required,email"`
	Name      string   `json:"name" binding:"required,min=2,max=100"`
	Role      UserRole `json:"role" binding:"required,oneof=admin teacher"`
	TeacherID string   `json:"teacher_id" binding:"omitempty"`
	Password  string   `json:"password" binding:"required,min=6,max=128"`
}

// UpdateUserRequest is the payload for editing an operator account.
// Password is optional; empty keeps the current hash.
type UpdateUserRequest struct {
	Email     string   `json:"email" binding:"required,email"`
	Name      string   `json:"name" binding:"required,min=2,max=100"`
	Role      UserRole `json:"role" binding:"required,oneof=admin teacher"`
	TeacherID string   `json:"teacher_id" binding:"omitempty"`
	Password  string   `json:"password" binding:"omitempty,min=6,max=128"`
}
