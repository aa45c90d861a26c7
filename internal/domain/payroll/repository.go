package payroll

import (
	"context"
	"time"
)

// PayrollRepository stores generated payroll rows keyed by
// (employee, month).
type PayrollRepository interface {
	Upsert(ctx context.Context, record PayrollRecord) (PayrollRecord, error)

	// GetByEmployeeAndMonth returns ErrPayrollNotFound when absent.
	GetByEmployeeAndMonth(ctx context.Context, employeeID string, month time.Time) (PayrollRecord, error)

	// ListByMonth returns every employee's payroll for the month.
	ListByMonth(ctx context.Context, month time.Time) ([]PayrollRecord, error)
}
