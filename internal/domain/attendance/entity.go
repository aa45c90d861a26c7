package attendance

import (
	"time"
)

// Status is the per-day attendance classification. The leave-like
// subset is assigned by leave application or holiday marking and is
// never overwritten by the clock-based derivation in Recompute.
type Status string

const (
	StatusPresent         Status = "Present"
	StatusHalfAbsent      Status = "Half Absent"
	StatusAbsent          Status = "Absent"
	StatusHoliday         Status = "Holiday"
	StatusPaidLeave       Status = "Paid Leave"
	StatusHalfPaidLeave   Status = "Half Paid Leave"
	StatusUnpaidLeave     Status = "UnPaid Leave"
	StatusHalfUnpaidLeave Status = "Half UnPaid Leave"
	StatusSickLeave       Status = "Sick Leave"

	// Legacy statuses kept for rows written before the paid/unpaid
	// split; still counted by the monthly rollup.
	StatusLeave     Status = "Leave"
	StatusHalfLeave Status = "Half Leave"
)

var leaveLike = map[Status]struct{}{
	StatusPaidLeave:       {},
	StatusHalfPaidLeave:   {},
	StatusUnpaidLeave:     {},
	StatusHalfUnpaidLeave: {},
	StatusSickLeave:       {},
	StatusHoliday:         {},
}

// IsLeaveLike reports whether s was assigned by leave application or
// holiday marking rather than derived from clock times.
func (s Status) IsLeaveLike() bool {
	_, ok := leaveLike[s]
	return ok
}

// IsValid reports whether s is a known status value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusHalfAbsent, StatusAbsent, StatusHoliday,
		StatusPaidLeave, StatusHalfPaidLeave, StatusUnpaidLeave,
		StatusHalfUnpaidLeave, StatusSickLeave, StatusLeave, StatusHalfLeave:
		return true
	}
	return false
}

// Attendance is one row per (employee, calendar date). Entry and exit
// are clock times on Date; geolocation is captured when the mobile
// client provides it.
type Attendance struct {
	ID             string
	EmployeeID     string
	Date           time.Time
	EntryTime      *time.Time
	ExitTime       *time.Time
	WorkDuration   *time.Duration
	Status         Status
	EntryLatitude  *float64
	EntryLongitude *float64
	ExitLatitude   *float64
	ExitLongitude  *float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

const (
	fullDayHours = 8
	halfDayHours = 4
)

// Recompute derives WorkDuration and Status from the clock times.
// An exit at or before entry leaves the duration unset rather than
// erroring; the row then derives to Absent like a missing clock-out.
// Leave-like statuses are preserved so that holiday marking and leave
// application survive later clock events on the same row.
func (a *Attendance) Recompute() {
	if a.EntryTime != nil && a.ExitTime != nil && a.ExitTime.After(*a.EntryTime) {
		d := a.ExitTime.Sub(*a.EntryTime)
		a.WorkDuration = &d
	}

	if a.Status.IsLeaveLike() {
		return
	}

	if a.WorkDuration == nil {
		a.Status = StatusAbsent
		return
	}

	hours := a.WorkDuration.Hours()
	switch {
	case hours >= fullDayHours:
		a.Status = StatusPresent
	case hours >= halfDayHours:
		a.Status = StatusHalfAbsent
	default:
		a.Status = StatusAbsent
	}
}

// ClearTimes resets the clock fields, used when a status is assigned
// explicitly (holiday marking, leave application, admin correction).
func (a *Attendance) ClearTimes() {
	a.EntryTime = nil
	a.ExitTime = nil
	a.WorkDuration = nil
}
