package model

import "time"

// AttendanceStatus classifies a daily attendance record.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceLate    AttendanceStatus = "Late"
	AttendanceAbsent  AttendanceStatus = "Absent"
)

// AttendanceRecord is one student's attendance entry for a day.
// StudentName and ClassName are join fields populated by report queries.
type AttendanceRecord struct {
	ID          string           `json:"id"`
	StudentID   string           `json:"student_id"`
	StudentName string           `json:"student_name,omitempty"`
	ClassID     string           `json:"class_id,omitempty"`
	ClassName   string           `json:"class_name,omitempty"`
	Timestamp   time.Time        `json:"timestamp"`
	Status      AttendanceStatus `json:"status"`
}

// CheckInRequest is the payload produced by the dashboard scan page.
type CheckInRequest struct {
	StudentID string           `json:"student_id" binding:"required"`
	Status    AttendanceStatus `json:"status" binding:"required,oneof=Present Late Absent"`
}

// AttendanceSummary aggregates one day's records for the dashboard.
type AttendanceSummary struct {
	Present int `json:"present"`
	Late    int `json:"late"`
	Absent  int `json:"absent"`
}
