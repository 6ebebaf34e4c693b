package model

// DayOfWeek is a school day. Weekends are not scheduled.
type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
)

// Schedule is a single timetable entry binding a class, subject and
// teacher to a weekday time slot. Times are "HH:MM" strings.
type Schedule struct {
	ID        string    `json:"id"`
	ClassID   string    `json:"class_id"`
	SubjectID string    `json:"subject_id"`
	TeacherID string    `json:"teacher_id"`
	Day       DayOfWeek `json:"day"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

// CreateScheduleRequest is the payload for adding a timetable entry.
type CreateScheduleRequest struct {
	ClassID   string    `json:"class_id" binding:"required"`
	SubjectID string    `json:"subject_id" binding:"required"`
	TeacherID string    `json:"teacher_id" binding:"required"`
	Day       DayOfWeek `json:"day" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday"`
	StartTime string    `json:"start_time" binding:"required,datetime=15:04"`
	EndTime   string    `json:"end_time" binding:"required,datetime=15:04"`
}
