package leave

import (
	"context"
)

// LeaveRequestRepository defines data access for leave submissions.
type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	Update(ctx context.Context, req LeaveRequest) error

	// ListByRequester returns every request of one requester, newest first.
	ListByRequester(ctx context.Context, requesterID string) ([]LeaveRequest, error)

	// ListByRequesterRole returns requests whose requester holds the
	// given role, newest first. Used for approval queues.
	ListByRequesterRole(ctx context.Context, role string) ([]LeaveRequest, error)
}
