package leave

import (
	"context"
	"errors"
	"fmt"

	"github.com/jivass-tech/payroll-backend-go/internal/domain/attendance"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/calendar"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/leave"
)

// Applier writes an approved leave request into the attendance rows of
// its date range.
type Applier struct {
	attendance.AttendanceRepository
	calendar *calendar.Policy
}

func NewApplier(attendanceRepo attendance.AttendanceRepository, cal *calendar.Policy) *Applier {
	return &Applier{AttendanceRepository: attendanceRepo, calendar: cal}
}

// statusForDay implements the per-request counting rule: most leave
// types grant only their requested status on the first non-holiday day
// (sick: the first two); every further day degrades to unpaid leave.
func statusForDay(leaveType leave.Type, counter int) attendance.Status {
	switch leaveType {
	case leave.TypePaid:
		if counter == 0 {
			return attendance.StatusPaidLeave
		}
		return attendance.StatusUnpaidLeave
	case leave.TypeSick:
		if counter < 2 {
			return attendance.StatusSickLeave
		}
		return attendance.StatusUnpaidLeave
	case leave.TypeUnpaid:
		return attendance.StatusUnpaidLeave
	case leave.TypeHalfPaid:
		if counter == 0 {
			return attendance.StatusHalfPaidLeave
		}
		return attendance.StatusUnpaidLeave
	case leave.TypeHalfUnpaid:
		if counter == 0 {
			return attendance.StatusHalfUnpaidLeave
		}
		return attendance.StatusUnpaidLeave
	default:
		return attendance.StatusAbsent
	}
}

// ApplyApproved upserts one attendance row per day of the request.
// Existing Holiday rows are never touched; weekends and public holidays
// become Holiday rows without consuming the counter. Reapplying the
// same request is idempotent. Callers run this inside a transaction so
// a failure partway leaves no partially applied range.
func (a *Applier) ApplyApproved(ctx context.Context, req leave.LeaveRequest) error {
	counter := 0
	for d := req.StartDate; !d.After(req.EndDate); d = d.AddDate(0, 0, 1) {
		att, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.RequesterID, d)
		if err != nil {
			if !errors.Is(err, attendance.ErrAttendanceNotFound) {
				return fmt.Errorf("failed to get attendance: %w", err)
			}
			att = attendance.Attendance{EmployeeID: req.RequesterID, Date: d}
		}

		if att.Status == attendance.StatusHoliday {
			continue
		}

		if a.calendar.IsHoliday(d) {
			att.Status = attendance.StatusHoliday
			att.ClearTimes()
			if _, err := a.AttendanceRepository.Upsert(ctx, att); err != nil {
				return fmt.Errorf("failed to upsert holiday row: %w", err)
			}
			continue
		}

		att.Status = statusForDay(req.LeaveType, counter)
		att.ClearTimes()
		counter++

		if _, err := a.AttendanceRepository.Upsert(ctx, att); err != nil {
			return fmt.Errorf("failed to upsert leave row: %w", err)
		}
	}
	return nil
}
