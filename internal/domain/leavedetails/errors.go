package leavedetails

import "errors"

var (
	// ErrNoAttendanceRecords is raised when a rollup is requested for a
	// month with zero attendance rows; payroll cannot be generated from
	// an empty month.
	ErrNoAttendanceRecords = errors.New("no attendance records found for this month")

	ErrLeaveDetailsNotFound = errors.New("leave details not found")
)
