package leavedetails

import (
	"context"
	"testing"
	"time"

	"github.com/jivass-tech/payroll-backend-go/internal/domain/attendance"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/employee"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/leavedetails"
	"github.com/jivass-tech/payroll-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rollupFixture struct {
	svc         *Service
	attendances *memory.AttendanceRepository
}

func newRollupFixture(t *testing.T, joined time.Time) *rollupFixture {
	t.Helper()
	employees := memory.NewEmployeeRepository()
	attendances := memory.NewAttendanceRepository()
	details := memory.NewLeaveDetailsRepository()

	_, err := employees.Create(context.Background(), employee.Employee{
		ID:         "E001",
		Name:       "Asha Rao",
		Email:      "e001@example.com",
		Role:       employee.RoleEmployee,
		DateJoined: joined,
	})
	require.NoError(t, err)

	return &rollupFixture{
		svc:         NewService(attendances, employees, details),
		attendances: attendances,
	}
}

func (f *rollupFixture) mark(t *testing.T, day time.Time, status attendance.Status) {
	t.Helper()
	_, err := f.attendances.Upsert(context.Background(), attendance.Attendance{
		EmployeeID: "E001",
		Date:       day,
		Status:     status,
	})
	require.NoError(t, err)
}

func jan(day int) time.Time {
	return time.Date(2025, time.January, day, 0, 0, 0, 0, time.UTC)
}

func assertDecEqual(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, actual.Equal(decimal.RequireFromString(expected)),
		"expected %s, got %s", expected, actual.String())
}

func TestComputeCountsSandwichedHolidays(t *testing.T) {
	f := newRollupFixture(t, time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC))

	f.mark(t, jan(2), attendance.StatusPresent)
	f.mark(t, jan(3), attendance.StatusUnpaidLeave)
	f.mark(t, jan(4), attendance.StatusHoliday)
	f.mark(t, jan(5), attendance.StatusHoliday)
	f.mark(t, jan(6), attendance.StatusUnpaidLeave)
	f.mark(t, jan(7), attendance.StatusPresent)

	details, err := f.svc.Compute(context.Background(), "E001", jan(1))
	require.NoError(t, err)

	assertDecEqual(t, "2", details.SandwichUnpaidLeaves)
	assertDecEqual(t, "2", details.AppliedUnpaidLeaves)
	assertDecEqual(t, "4", details.UnpaidLeaves)
	assertDecEqual(t, "29", details.WorkingDays) // 31 days, 2 holidays
	assertDecEqual(t, "4", details.TotalLeavesTaken)
	assertDecEqual(t, "25", details.DaysWorked)
}

func TestComputeHolidayRunAtMonthEdgeNotSandwiched(t *testing.T) {
	f := newRollupFixture(t, time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC))

	f.mark(t, jan(1), attendance.StatusHoliday)
	f.mark(t, jan(2), attendance.StatusUnpaidLeave)
	f.mark(t, jan(3), attendance.StatusPresent)

	details, err := f.svc.Compute(context.Background(), "E001", jan(1))
	require.NoError(t, err)

	assertDecEqual(t, "0", details.SandwichUnpaidLeaves)
	assertDecEqual(t, "1", details.UnpaidLeaves)
}

func TestComputeHolidayRunBoundedByPresentNotSandwiched(t *testing.T) {
	f := newRollupFixture(t, time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC))

	f.mark(t, jan(3), attendance.StatusPresent)
	f.mark(t, jan(4), attendance.StatusHoliday)
	f.mark(t, jan(5), attendance.StatusHoliday)
	f.mark(t, jan(6), attendance.StatusUnpaidLeave)

	details, err := f.svc.Compute(context.Background(), "E001", jan(1))
	require.NoError(t, err)

	assertDecEqual(t, "0", details.SandwichUnpaidLeaves)
}

func TestComputeHalfDayCounters(t *testing.T) {
	f := newRollupFixture(t, time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC))

	f.mark(t, jan(2), attendance.StatusHalfPaidLeave)
	f.mark(t, jan(3), attendance.StatusHalfAbsent)
	f.mark(t, jan(6), attendance.StatusSickLeave)

	details, err := f.svc.Compute(context.Background(), "E001", jan(1))
	require.NoError(t, err)

	assertDecEqual(t, "0.5", details.PaidLeaves)
	assertDecEqual(t, "1", details.SickLeaves)
	assertDecEqual(t, "0.5", details.AbsentDays)
	assertDecEqual(t, "1.5", details.TotalLeavesTaken)
	assertDecEqual(t, "31", details.WorkingDays)
	assertDecEqual(t, "29", details.DaysWorked)
}

func TestComputeCountsLegacyLeaveAsPaid(t *testing.T) {
	f := newRollupFixture(t, time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC))

	f.mark(t, jan(2), attendance.StatusLeave)
	f.mark(t, jan(3), attendance.StatusHalfLeave)

	details, err := f.svc.Compute(context.Background(), "E001", jan(1))
	require.NoError(t, err)

	assertDecEqual(t, "1.5", details.PaidLeaves)
}

func TestComputeSeedsBalancesForFirstRollup(t *testing.T) {
	// Joined July 2025: the first rollup seeds from the pro-rated
	// entitlement of 5 paid and the flat 2 sick.
	f := newRollupFixture(t, time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC))

	f.mark(t, time.Date(2025, time.July, 14, 0, 0, 0, 0, time.UTC), attendance.StatusPaidLeave)

	details, err := f.svc.Compute(context.Background(), "E001", time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assertDecEqual(t, "4", details.TotalPaidLeavesLeft)
	assertDecEqual(t, "2", details.TotalSickLeavesLeft)
}

func TestGenerateChainsCarryForward(t *testing.T) {
	f := newRollupFixture(t, time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	f.mark(t, jan(6), attendance.StatusPaidLeave)
	f.mark(t, jan(7), attendance.StatusSickLeave)
	janDetails, err := f.svc.Generate(ctx, "E001", jan(1))
	require.NoError(t, err)
	assertDecEqual(t, "8", janDetails.TotalPaidLeavesLeft)
	assertDecEqual(t, "1", janDetails.TotalSickLeavesLeft)

	f.mark(t, time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC), attendance.StatusPaidLeave)
	febDetails, err := f.svc.Generate(ctx, "E001", time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assertDecEqual(t, "7", febDetails.TotalPaidLeavesLeft)
	assertDecEqual(t, "1", febDetails.TotalSickLeavesLeft)
}

func TestGenerateIsIdempotent(t *testing.T) {
	f := newRollupFixture(t, time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	f.mark(t, jan(6), attendance.StatusPaidLeave)

	first, err := f.svc.Generate(ctx, "E001", jan(1))
	require.NoError(t, err)
	second, err := f.svc.Generate(ctx, "E001", jan(1))
	require.NoError(t, err)

	assert.True(t, first.TotalPaidLeavesLeft.Equal(second.TotalPaidLeavesLeft))
	assert.True(t, first.DaysWorked.Equal(second.DaysWorked))
	assert.Equal(t, first.ID, second.ID)
}

func TestComputeBalancesNeverGoNegative(t *testing.T) {
	f := newRollupFixture(t, time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC))

	// Three sick days against a two-day entitlement.
	f.mark(t, jan(6), attendance.StatusSickLeave)
	f.mark(t, jan(7), attendance.StatusSickLeave)
	f.mark(t, jan(8), attendance.StatusSickLeave)

	details, err := f.svc.Compute(context.Background(), "E001", jan(1))
	require.NoError(t, err)
	assertDecEqual(t, "0", details.TotalSickLeavesLeft)
}

func TestComputeEmptyMonthFails(t *testing.T) {
	f := newRollupFixture(t, time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	_, err := f.svc.Generate(ctx, "E001", jan(1))
	assert.ErrorIs(t, err, leavedetails.ErrNoAttendanceRecords)

	// Nothing was stored for the failed month.
	_, err = f.svc.Get(ctx, "E001", jan(1))
	assert.ErrorIs(t, err, leavedetails.ErrLeaveDetailsNotFound)
}
