package model

// Subject is a taught subject. IDs are sequential ("SUB-001", "SUB-002", …)
// rather than random, matching the legacy numbering scheme.
type Subject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateSubjectRequest is the payload for creating or renaming a subject.
type CreateSubjectRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}
