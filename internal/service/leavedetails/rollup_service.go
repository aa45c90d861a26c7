package leavedetails

import (
	"context"
	"fmt"
	"time"

	"github.com/jivass-tech/payroll-backend-go/internal/domain/attendance"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/employee"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/leavedetails"
	leavesvc "github.com/jivass-tech/payroll-backend-go/internal/service/leave"
	"github.com/shopspring/decimal"
)

var (
	half = decimal.NewFromFloat(0.5)
)

// Service aggregates a month of attendance rows into the leave rollup
// with carry-forward balances.
type Service struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	leavedetails.LeaveDetailsRepository
}

func NewService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	detailsRepo leavedetails.LeaveDetailsRepository,
) *Service {
	return &Service{
		AttendanceRepository:   attendanceRepo,
		EmployeeRepository:     employeeRepo,
		LeaveDetailsRepository: detailsRepo,
	}
}

// Generate recomputes and stores the rollup for (employeeID, month).
// Recomputing from the same attendance rows and the same prior balances
// yields the same result.
func (s *Service) Generate(ctx context.Context, employeeID string, month time.Time) (leavedetails.LeaveDetails, error) {
	details, err := s.Compute(ctx, employeeID, month)
	if err != nil {
		return leavedetails.LeaveDetails{}, err
	}

	saved, err := s.LeaveDetailsRepository.Upsert(ctx, details)
	if err != nil {
		return leavedetails.LeaveDetails{}, fmt.Errorf("failed to upsert leave details: %w", err)
	}
	return saved, nil
}

// Get returns the stored rollup for (employeeID, month).
func (s *Service) Get(ctx context.Context, employeeID string, month time.Time) (leavedetails.LeaveDetails, error) {
	return s.LeaveDetailsRepository.GetByEmployeeAndMonth(ctx, employeeID, leavedetails.MonthStart(month))
}

// Compute derives the rollup without persisting it. Fails with
// ErrNoAttendanceRecords when the month has no attendance rows.
func (s *Service) Compute(ctx context.Context, employeeID string, month time.Time) (leavedetails.LeaveDetails, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return leavedetails.LeaveDetails{}, fmt.Errorf("failed to get employee: %w", err)
	}

	first := leavedetails.MonthStart(month)
	last := first.AddDate(0, 1, -1)
	daysInMonth := last.Day()

	rows, err := s.AttendanceRepository.ListByEmployeeAndRange(ctx, employeeID, first, last)
	if err != nil {
		return leavedetails.LeaveDetails{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	if len(rows) == 0 {
		return leavedetails.LeaveDetails{}, leavedetails.ErrNoAttendanceRecords
	}

	statusByDay := make(map[int]attendance.Status, len(rows))
	for _, row := range rows {
		statusByDay[row.Date.Day()] = row.Status
	}

	counts := make(map[attendance.Status]decimal.Decimal)
	for _, status := range statusByDay {
		counts[status] = counts[status].Add(decimal.NewFromInt(1))
	}

	sandwich := countSandwichedHolidays(statusByDay, daysInMonth)

	holidayCount := counts[attendance.StatusHoliday]
	workingDays := decimal.NewFromInt(int64(daysInMonth)).Sub(holidayCount)

	paidLeaves := counts[attendance.StatusPaidLeave].
		Add(half.Mul(counts[attendance.StatusHalfPaidLeave])).
		Add(counts[attendance.StatusLeave]).
		Add(half.Mul(counts[attendance.StatusHalfLeave]))
	appliedUnpaid := counts[attendance.StatusUnpaidLeave].
		Add(half.Mul(counts[attendance.StatusHalfUnpaidLeave]))
	unpaidLeaves := appliedUnpaid.Add(sandwich)
	sickLeaves := counts[attendance.StatusSickLeave]
	totalLeaves := paidLeaves.Add(unpaidLeaves).Add(sickLeaves)
	absentDays := counts[attendance.StatusAbsent].
		Add(half.Mul(counts[attendance.StatusHalfAbsent]))
	daysWorked := workingDays.Sub(totalLeaves).Sub(absentDays)

	details := leavedetails.LeaveDetails{
		EmployeeID:           employeeID,
		Month:                first,
		WorkingDays:          workingDays,
		PaidLeaves:           paidLeaves,
		SickLeaves:           sickLeaves,
		AppliedUnpaidLeaves:  appliedUnpaid,
		SandwichUnpaidLeaves: sandwich,
		UnpaidLeaves:         unpaidLeaves,
		TotalLeavesTaken:     totalLeaves,
		AbsentDays:           absentDays,
		DaysWorked:           daysWorked,
	}

	if err := s.carryForward(ctx, &details, emp); err != nil {
		return leavedetails.LeaveDetails{}, err
	}
	return details, nil
}

// carryForward chains balances from the most recent earlier rollup, or
// seeds them from the (pro-rated) annual entitlement for the first one.
func (s *Service) carryForward(ctx context.Context, details *leavedetails.LeaveDetails, emp employee.Employee) error {
	prev, err := s.LeaveDetailsRepository.GetLatestBefore(ctx, details.EmployeeID, details.Month)
	if err != nil {
		return fmt.Errorf("failed to get prior leave details: %w", err)
	}

	var paidBase, sickBase decimal.Decimal
	if prev != nil {
		paidBase = prev.TotalPaidLeavesLeft
		sickBase = prev.TotalSickLeavesLeft
	} else {
		paidBase = decimal.NewFromInt(int64(leavesvc.ProratedPaid(emp.DateJoined, details.Month.Year())))
		sickBase = decimal.NewFromInt(leavesvc.AnnualSickEntitlement)
	}

	details.TotalPaidLeavesLeft = floorZero(paidBase.Sub(details.PaidLeaves))
	details.TotalSickLeavesLeft = floorZero(sickBase.Sub(details.SickLeaves))
	return nil
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// countSandwichedHolidays finds contiguous Holiday runs whose single
// bounding days on both sides are paid or unpaid leave. Those holiday
// days count as unpaid in the rollup; the attendance rows themselves
// are not changed.
func countSandwichedHolidays(statusByDay map[int]attendance.Status, daysInMonth int) decimal.Decimal {
	sandwichBounds := map[attendance.Status]struct{}{
		attendance.StatusPaidLeave:   {},
		attendance.StatusUnpaidLeave: {},
	}

	total := 0
	day := 1
	for day <= daysInMonth {
		if statusByDay[day] != attendance.StatusHoliday {
			day++
			continue
		}

		blockStart := day
		for day <= daysInMonth && statusByDay[day] == attendance.StatusHoliday {
			day++
		}
		blockEnd := day - 1

		// Blocks touching the month edges have no bounding day inside
		// the month and are never sandwiched.
		if blockStart == 1 || blockEnd == daysInMonth {
			continue
		}

		_, beforeOK := sandwichBounds[statusByDay[blockStart-1]]
		_, afterOK := sandwichBounds[statusByDay[blockEnd+1]]
		if beforeOK && afterOK {
			total += blockEnd - blockStart + 1
		}
	}
	return decimal.NewFromInt(int64(total))
}
