package leavedetails

import (
	"context"
	"time"
)

// LeaveDetailsRepository stores monthly rollups keyed by
// (employee, month). Rows are overwritten on regeneration.
type LeaveDetailsRepository interface {
	Upsert(ctx context.Context, details LeaveDetails) (LeaveDetails, error)

	// GetByEmployeeAndMonth returns ErrLeaveDetailsNotFound when absent.
	GetByEmployeeAndMonth(ctx context.Context, employeeID string, month time.Time) (LeaveDetails, error)

	// GetLatestBefore returns the rollup for the most recent month
	// strictly earlier than month, or nil when no earlier rollup exists.
	GetLatestBefore(ctx context.Context, employeeID string, month time.Time) (*LeaveDetails, error)
}
