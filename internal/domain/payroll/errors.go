package payroll

import "errors"

var (
	ErrPayrollNotFound            = errors.New("payroll record not found")
	ErrLeaveDetailsRequired       = errors.New("leave details must exist for this month before payroll can be computed")
	ErrZeroWorkingDays            = errors.New("working days is zero, cannot compute per-day pay")
	ErrInvalidPerformanceCategory = errors.New("invalid performance category")
)
