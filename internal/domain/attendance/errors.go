package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrNoEntryRecord      = errors.New("no entry record found for this date")
	ErrInvalidStatus      = errors.New("invalid attendance status")
)
