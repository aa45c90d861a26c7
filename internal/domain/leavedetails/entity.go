// Package leavedetails holds the monthly leave rollup: the per-month
// aggregation of daily attendance statuses into leave and working-day
// counters, with entitlement balances carried forward month to month.
package leavedetails

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeaveDetails is one row per (employee, month). It is derived entirely
// from attendance rows; recomputing from the same attendance data and
// the same prior-month balances is idempotent. All counters are
// decimals because half-days contribute 0.5 and the balances chain
// through month-to-month subtraction.
type LeaveDetails struct {
	ID         string
	EmployeeID string
	Month      time.Time // first day of the month

	WorkingDays          decimal.Decimal
	PaidLeaves           decimal.Decimal
	SickLeaves           decimal.Decimal
	AppliedUnpaidLeaves  decimal.Decimal
	SandwichUnpaidLeaves decimal.Decimal
	UnpaidLeaves         decimal.Decimal
	TotalLeavesTaken     decimal.Decimal
	AbsentDays           decimal.Decimal
	DaysWorked           decimal.Decimal

	TotalPaidLeavesLeft decimal.Decimal
	TotalSickLeavesLeft decimal.Decimal

	GeneratedAt time.Time
}

// MonthStart normalizes t to the first day of its month at midnight UTC.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
