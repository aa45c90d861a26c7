package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance rows. Rows
// are unique per (employee, date); Upsert relies on that constraint as
// the final arbiter of concurrent writes for the same employee-day.
type AttendanceRepository interface {
	// Upsert inserts or updates the row for (att.EmployeeID, att.Date).
	Upsert(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns ErrAttendanceNotFound when no row exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)

	// ListByEmployeeAndRange returns rows for [from, to] inclusive,
	// ordered by date ascending.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)

	// ListByDate returns every employee's row for the given date.
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)
}
