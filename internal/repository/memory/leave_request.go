package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/leave"
)

type LeaveRequestRepository struct {
	mu        sync.RWMutex
	requests  map[string]leave.LeaveRequest
	employees *EmployeeRepository
}

// NewLeaveRequestRepository needs the employee repository to resolve
// requester roles for ListByRequesterRole, mirroring the SQL join.
func NewLeaveRequestRepository(employees *EmployeeRepository) *LeaveRequestRepository {
	return &LeaveRequestRepository{
		requests:  make(map[string]leave.LeaveRequest),
		employees: employees,
	}
}

func (r *LeaveRequestRepository) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	req.CreatedAt = now
	req.UpdatedAt = now

	r.requests[req.ID] = req
	return req, nil
}

func (r *LeaveRequestRepository) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (r *LeaveRequestRepository) Update(_ context.Context, req leave.LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.requests[req.ID]; !ok {
		return leave.ErrLeaveRequestNotFound
	}
	req.UpdatedAt = time.Now().UTC()
	r.requests[req.ID] = req
	return nil
}

func (r *LeaveRequestRepository) ListByRequester(_ context.Context, requesterID string) ([]leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []leave.LeaveRequest
	for _, req := range r.requests {
		if req.RequesterID == requesterID {
			result = append(result, req)
		}
	}
	sortRequestsNewestFirst(result)
	return result, nil
}

func (r *LeaveRequestRepository) ListByRequesterRole(ctx context.Context, role string) ([]leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []leave.LeaveRequest
	for _, req := range r.requests {
		emp, err := r.employees.GetByID(ctx, req.RequesterID)
		if err != nil {
			continue
		}
		if string(emp.Role) == role {
			result = append(result, req)
		}
	}
	sortRequestsNewestFirst(result)
	return result, nil
}

func sortRequestsNewestFirst(requests []leave.LeaveRequest) {
	sort.Slice(requests, func(i, j int) bool {
		if !requests[i].CreatedAt.Equal(requests[j].CreatedAt) {
			return requests[i].CreatedAt.After(requests[j].CreatedAt)
		}
		return requests[i].ID > requests[j].ID
	})
}
