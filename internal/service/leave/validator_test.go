package leave

import (
	"testing"
	"time"

	"github.com/jivass-tech/payroll-backend-go/internal/domain/calendar"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJoinDate = time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func request(id string, leaveType leave.Type, status leave.Status, start, end time.Time, totalDays int) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:          id,
		RequesterID: "E001",
		StartDate:   start,
		EndDate:     end,
		TotalDays:   totalDays,
		LeaveType:   leaveType,
		Status:      status,
	}
}

func TestProratedEntitlements(t *testing.T) {
	julyJoiner := time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, ProratedPaid(julyJoiner, 2025)) // ceil(9*6/12)
	assert.Equal(t, 1, ProratedSick(julyJoiner, 2025)) // floor(2*6/12)

	// Full entitlement once the join year has passed.
	assert.Equal(t, 9, ProratedPaid(julyJoiner, 2026))
	assert.Equal(t, 2, ProratedSick(julyJoiner, 2026))

	januaryJoiner := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 9, ProratedPaid(januaryJoiner, 2025))
	assert.Equal(t, 2, ProratedSick(januaryJoiner, 2025))
}

func TestValidateRejectsInvertedRange(t *testing.T) {
	v := NewValidator(calendar.NewPolicy())
	req := request("", leave.TypePaid, leave.StatusPending, date(2025, time.March, 10), date(2025, time.March, 5), 0)

	_, err := v.Validate(&req, testJoinDate, nil)
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestValidateDerivesTotalDays(t *testing.T) {
	v := NewValidator(calendar.NewPolicy())
	req := request("", leave.TypeUnpaid, leave.StatusPending, date(2025, time.March, 10), date(2025, time.March, 12), 0)

	_, err := v.Validate(&req, testJoinDate, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, req.TotalDays)
}

func TestValidateKeepsCallerTotalDays(t *testing.T) {
	v := NewValidator(calendar.NewPolicy())
	req := request("", leave.TypeUnpaid, leave.StatusPending, date(2025, time.March, 10), date(2025, time.March, 12), 2)

	_, err := v.Validate(&req, testJoinDate, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, req.TotalDays)
}

func TestValidateRejectsDuplicateDates(t *testing.T) {
	v := NewValidator(calendar.NewPolicy())
	existing := request("r1", leave.TypeUnpaid, leave.StatusPending, date(2025, time.March, 10), date(2025, time.March, 12), 3)
	req := request("", leave.TypePaid, leave.StatusPending, date(2025, time.March, 10), date(2025, time.March, 12), 0)

	_, err := v.Validate(&req, testJoinDate, []leave.LeaveRequest{existing})
	assert.ErrorIs(t, err, leave.ErrDuplicateLeaveRequest)
}

func TestValidatePaidMonthlyLimit(t *testing.T) {
	v := NewValidator(calendar.NewPolicy())
	approved := request("r1", leave.TypePaid, leave.StatusApproved, date(2025, time.March, 3), date(2025, time.March, 3), 1)
	req := request("", leave.TypePaid, leave.StatusPending, date(2025, time.March, 20), date(2025, time.March, 20), 0)

	_, err := v.Validate(&req, testJoinDate, []leave.LeaveRequest{approved})
	assert.ErrorIs(t, err, leave.ErrPaidLeaveMonthLimit)
}

func TestValidatePaidEntitlementExhausted(t *testing.T) {
	v := NewValidator(calendar.NewPolicy())

	// Joined July 2025: pro-rated entitlement is 5. Five approved paid
	// requests already exist in other months of the year.
	joinDate := date(2025, time.July, 10)
	others := make([]leave.LeaveRequest, 0, 5)
	for i := 0; i < 5; i++ {
		month := time.July + time.Month(i)
		others = append(others, request(
			"r"+string(rune('1'+i)), leave.TypePaid, leave.StatusApproved,
			date(2025, month, 2), date(2025, month, 2), 1,
		))
	}

	req := request("", leave.TypePaid, leave.StatusPending, date(2025, time.December, 17), date(2025, time.December, 17), 0)
	_, err := v.Validate(&req, joinDate, others)
	assert.ErrorIs(t, err, leave.ErrPaidEntitlementExhausted)
}

func TestValidatePendingPaidDoesNotConsumeEntitlement(t *testing.T) {
	v := NewValidator(calendar.NewPolicy())
	pending := request("r1", leave.TypePaid, leave.StatusPending, date(2025, time.March, 3), date(2025, time.March, 3), 1)
	req := request("", leave.TypePaid, leave.StatusPending, date(2025, time.March, 20), date(2025, time.March, 20), 0)

	_, err := v.Validate(&req, testJoinDate, []leave.LeaveRequest{pending})
	assert.NoError(t, err)
}

func TestValidateSickDowngradedWhenExhausted(t *testing.T) {
	v := NewValidator(calendar.NewPolicy())
	others := []leave.LeaveRequest{
		request("r1", leave.TypeSick, leave.StatusApproved, date(2025, time.February, 4), date(2025, time.February, 5), 2),
	}

	req := request("", leave.TypeSick, leave.StatusPending, date(2025, time.March, 11), date(2025, time.March, 11), 0)
	warnings, err := v.Validate(&req, testJoinDate, others)
	require.NoError(t, err)

	assert.Equal(t, leave.TypeUnpaid, req.LeaveType)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "unpaid")
}

func TestValidateSickPartialOverrunWarns(t *testing.T) {
	v := NewValidator(calendar.NewPolicy())
	others := []leave.LeaveRequest{
		request("r1", leave.TypeSick, leave.StatusApproved, date(2025, time.February, 4), date(2025, time.February, 4), 1),
	}

	req := request("", leave.TypeSick, leave.StatusPending, date(2025, time.March, 11), date(2025, time.March, 13), 0)
	warnings, err := v.Validate(&req, testJoinDate, others)
	require.NoError(t, err)

	// One sick day remains; two of the three requested days overrun.
	assert.Equal(t, leave.TypeSick, req.LeaveType)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "2 day(s)")
}

func TestValidateClubbingPaidAgainstSick(t *testing.T) {
	v := NewValidator(calendar.NewPolicy())
	sick := request("r1", leave.TypeSick, leave.StatusPending, date(2025, time.March, 10), date(2025, time.March, 11), 2)

	req := request("", leave.TypePaid, leave.StatusPending, date(2025, time.March, 12), date(2025, time.March, 12), 0)
	_, err := v.Validate(&req, testJoinDate, []leave.LeaveRequest{sick})
	assert.ErrorIs(t, err, leave.ErrLeaveClubbingNotAllowed)

	// Preceding adjacency is caught as well.
	req = request("", leave.TypePaid, leave.StatusPending, date(2025, time.March, 9), date(2025, time.March, 9), 0)
	_, err = v.Validate(&req, testJoinDate, []leave.LeaveRequest{sick})
	assert.ErrorIs(t, err, leave.ErrLeaveClubbingNotAllowed)
}

func TestValidateClubbingIgnoresRejectedAndGaps(t *testing.T) {
	v := NewValidator(calendar.NewPolicy())
	rejected := request("r1", leave.TypeSick, leave.StatusRejected, date(2025, time.March, 10), date(2025, time.March, 11), 2)

	req := request("", leave.TypePaid, leave.StatusPending, date(2025, time.March, 12), date(2025, time.March, 12), 0)
	_, err := v.Validate(&req, testJoinDate, []leave.LeaveRequest{rejected})
	assert.NoError(t, err)

	// A one-day gap is not clubbing.
	sick := request("r2", leave.TypeSick, leave.StatusApproved, date(2025, time.March, 10), date(2025, time.March, 10), 1)
	req = request("", leave.TypePaid, leave.StatusPending, date(2025, time.March, 12), date(2025, time.March, 12), 0)
	_, err = v.Validate(&req, testJoinDate, []leave.LeaveRequest{sick})
	assert.NoError(t, err)
}

func TestValidateInteriorSandwichWarning(t *testing.T) {
	v := NewValidator(calendar.NewPolicy())

	// Friday through Monday: Saturday and Sunday are interior.
	req := request("", leave.TypeUnpaid, leave.StatusPending, date(2025, time.January, 3), date(2025, time.January, 6), 0)
	warnings, err := v.Validate(&req, testJoinDate, nil)
	require.NoError(t, err)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "2 holiday/weekend day(s)")
}

func TestValidateGapSandwichWarning(t *testing.T) {
	v := NewValidator(calendar.NewPolicy())

	// Single-day Friday leave already approved; new single-day Monday
	// request leaves only the weekend in between.
	friday := request("r1", leave.TypeUnpaid, leave.StatusApproved, date(2025, time.January, 3), date(2025, time.January, 3), 1)
	req := request("", leave.TypeUnpaid, leave.StatusPending, date(2025, time.January, 6), date(2025, time.January, 6), 0)

	warnings, err := v.Validate(&req, testJoinDate, []leave.LeaveRequest{friday})
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "previous leave")
}

func TestValidateGapWithWorkdayNoWarning(t *testing.T) {
	v := NewValidator(calendar.NewPolicy())

	// Gap Thursday..Friday contains working days, so no sandwich.
	wednesday := request("r1", leave.TypeUnpaid, leave.StatusApproved, date(2025, time.January, 1), date(2025, time.January, 1), 1)
	req := request("", leave.TypeUnpaid, leave.StatusPending, date(2025, time.January, 6), date(2025, time.January, 6), 0)

	warnings, err := v.Validate(&req, testJoinDate, []leave.LeaveRequest{wednesday})
	require.NoError(t, err)
	assert.Empty(t, warnings)
}
