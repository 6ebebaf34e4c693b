package websocket

import "time"

// AttendanceEvent is one check-in pushed to the dashboard scan monitor.
// It mirrors the payload published on the Redis attendance channel.
type AttendanceEvent struct {
	RecordID    string    `json:"record_id"`
	StudentID   string    `json:"student_id"`
	StudentName string    `json:"student_name"`
	ClassName   string    `json:"class_name"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}

// ErrorPayload is sent to the client before closing on protocol errors.
type ErrorPayload struct {
	Error string `json:"error"`
}
