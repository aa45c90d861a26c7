package payroll

import (
	"testing"
	"time"

	"github.com/jivass-tech/payroll-backend-go/internal/domain/employee"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/leavedetails"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedEmployee(fee int64) employee.Employee {
	return employee.Employee{
		ID:           "E001",
		FeePerMonth:  decimal.NewFromInt(fee),
		PayStructure: employee.PayStructureFixed,
	}
}

func variableEmployee(fee int64) employee.Employee {
	emp := fixedEmployee(fee)
	emp.PayStructure = employee.PayStructureVariable
	return emp
}

func monthDetails(workingDays, daysWorked, paid, sick, absent string) leavedetails.LeaveDetails {
	return leavedetails.LeaveDetails{
		EmployeeID:  "E001",
		Month:       time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		WorkingDays: decimal.RequireFromString(workingDays),
		DaysWorked:  decimal.RequireFromString(daysWorked),
		PaidLeaves:  decimal.RequireFromString(paid),
		SickLeaves:  decimal.RequireFromString(sick),
		AbsentDays:  decimal.RequireFromString(absent),
	}
}

func assertDecEqual(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, actual.Equal(decimal.RequireFromString(expected)),
		"expected %s, got %s", expected, actual.String())
}

func TestComputeFixedPay(t *testing.T) {
	// 60000 over 20 working days is 3000 per day. 18 worked + 1 paid
	// leave pay 19 days; one absent day costs half a day's pay.
	record, err := Compute(
		fixedEmployee(60000),
		monthDetails("20", "18", "1", "0", "1"),
		payroll.PerformNotApplicable,
		decimal.NewFromInt(500),
		nil,
	)
	require.NoError(t, err)

	assertDecEqual(t, "60000", record.BasePay)
	assertDecEqual(t, "0", record.VariablePay)
	assertDecEqual(t, "55500", record.BasePayEarned)
	assertDecEqual(t, "0", record.PerformCompPayable)
	assertDecEqual(t, "55500", record.FeeEarned)
	assertDecEqual(t, "5550", record.TDS)
	assert.Equal(t, int64(50450), record.NetFeeEarned)
}

func TestComputeVariablePaySplit(t *testing.T) {
	// Variable pay splits 75/25; category 1 pays 110% of the variable
	// component.
	record, err := Compute(
		variableEmployee(80000),
		monthDetails("20", "20", "0", "0", "0"),
		payroll.PerformExceeds,
		decimal.Zero,
		nil,
	)
	require.NoError(t, err)

	assertDecEqual(t, "60000", record.BasePay)
	assertDecEqual(t, "20000", record.VariablePay)
	assertDecEqual(t, "60000", record.BasePayEarned)
	assertDecEqual(t, "22000", record.PerformCompPayable)
	assertDecEqual(t, "82000", record.FeeEarned)
	assertDecEqual(t, "8200", record.TDS)
	assert.Equal(t, int64(73800), record.NetFeeEarned)
}

func TestComputePerformanceMultipliers(t *testing.T) {
	cases := []struct {
		category payroll.PerformanceCategory
		payable  string
	}{
		{payroll.PerformExceeds, "22000"},
		{payroll.PerformMeets, "15000"},
		{payroll.PerformPartiallyMets, "10000"},
		{payroll.PerformBelow, "0"},
		{payroll.PerformNotApplicable, "0"},
	}
	for _, tc := range cases {
		record, err := Compute(
			variableEmployee(80000),
			monthDetails("20", "20", "0", "0", "0"),
			tc.category,
			decimal.Zero,
			nil,
		)
		require.NoError(t, err, string(tc.category))
		assertDecEqual(t, tc.payable, record.PerformCompPayable)
	}
}

func TestComputeSickLeavePaysLikeWorkedDays(t *testing.T) {
	withSick, err := Compute(
		fixedEmployee(60000),
		monthDetails("20", "18", "0", "2", "0"),
		payroll.PerformNotApplicable,
		decimal.Zero,
		nil,
	)
	require.NoError(t, err)

	fullMonth, err := Compute(
		fixedEmployee(60000),
		monthDetails("20", "20", "0", "0", "0"),
		payroll.PerformNotApplicable,
		decimal.Zero,
		nil,
	)
	require.NoError(t, err)

	assert.Equal(t, fullMonth.NetFeeEarned, withSick.NetFeeEarned)
}

func TestComputeHalfDayCountersFlowThrough(t *testing.T) {
	// 19.5 payable days and half an absent day.
	record, err := Compute(
		fixedEmployee(60000),
		monthDetails("20", "19", "0.5", "0", "0.5"),
		payroll.PerformNotApplicable,
		decimal.Zero,
		nil,
	)
	require.NoError(t, err)

	// 3000 * 19.5 - 3000 * 0.5 * 0.5 = 57750
	assertDecEqual(t, "57750", record.BasePayEarned)
}

func TestComputeNetRoundsToWholeUnits(t *testing.T) {
	record, err := Compute(
		fixedEmployee(1001),
		monthDetails("2", "1", "0", "0", "0"),
		payroll.PerformNotApplicable,
		decimal.Zero,
		nil,
	)
	require.NoError(t, err)

	// 500.5 earned, 50.05 TDS, 450.45 net rounds to 450.
	assertDecEqual(t, "500.5", record.FeeEarned)
	assert.Equal(t, int64(450), record.NetFeeEarned)
}

func TestComputeZeroWorkingDays(t *testing.T) {
	_, err := Compute(
		fixedEmployee(60000),
		monthDetails("0", "0", "0", "0", "0"),
		payroll.PerformNotApplicable,
		decimal.Zero,
		nil,
	)
	assert.ErrorIs(t, err, payroll.ErrZeroWorkingDays)
}

func TestComputeIsDeterministic(t *testing.T) {
	emp := variableEmployee(73451)
	details := monthDetails("22", "17.5", "1", "0.5", "1.5")

	first, err := Compute(emp, details, payroll.PerformMeets, decimal.NewFromInt(1200), nil)
	require.NoError(t, err)
	second, err := Compute(emp, details, payroll.PerformMeets, decimal.NewFromInt(1200), nil)
	require.NoError(t, err)

	assert.True(t, first.FeeEarned.Equal(second.FeeEarned))
	assert.True(t, first.TDS.Equal(second.TDS))
	assert.Equal(t, first.NetFeeEarned, second.NetFeeEarned)
}

func TestComputeSnapshotsPayTerms(t *testing.T) {
	record, err := Compute(
		variableEmployee(80000),
		monthDetails("20", "20", "0", "0", "0"),
		payroll.PerformMeets,
		decimal.Zero,
		nil,
	)
	require.NoError(t, err)

	assertDecEqual(t, "80000", record.FeePerMonth)
	assert.Equal(t, string(employee.PayStructureVariable), record.PayStructure)
	assert.Equal(t, payroll.PerformMeets, record.PerformCategory)
}
