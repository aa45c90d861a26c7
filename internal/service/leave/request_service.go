package leave

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jivass-tech/payroll-backend-go/internal/domain/employee"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/leave"
	"github.com/jivass-tech/payroll-backend-go/internal/pkg/database"
)

// RequestService owns the leave request lifecycle: submission with
// validation, approval with attendance application, and balance reads.
type RequestService struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	validator *Validator
	applier   *Applier
	tx        database.TxManager
}

func NewRequestService(
	requestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	validator *Validator,
	applier *Applier,
	tx database.TxManager,
) *RequestService {
	return &RequestService{
		LeaveRequestRepository: requestRepo,
		EmployeeRepository:     employeeRepo,
		validator:              validator,
		applier:                applier,
		tx:                     tx,
	}
}

// Create validates and persists a pending request. Validation warnings
// are appended to the stored note and also returned for the response.
func (s *RequestService) Create(ctx context.Context, requesterID string, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, []string, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, nil, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, requesterID)
	if err != nil {
		return leave.LeaveRequest{}, nil, fmt.Errorf("failed to get employee: %w", err)
	}

	startDate, _ := time.Parse(time.DateOnly, req.StartDate)
	endDate, _ := time.Parse(time.DateOnly, req.EndDate)

	request := leave.LeaveRequest{
		RequesterID:  emp.ID,
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		StartDate:    startDate,
		EndDate:      endDate,
		LeaveType:    leave.Type(req.LeaveType),
		Description:  req.Description,
		Note:         req.Note,
		Status:       leave.StatusPending,
	}
	if req.TotalDays != nil {
		request.TotalDays = *req.TotalDays
	}
	if req.HalfDayPeriod != nil {
		period := leave.HalfDayPeriod(*req.HalfDayPeriod)
		request.HalfDayPeriod = &period
	}

	others, err := s.LeaveRequestRepository.ListByRequester(ctx, emp.ID)
	if err != nil {
		return leave.LeaveRequest{}, nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	others = withoutRejected(others)

	warnings, err := s.validator.Validate(&request, emp.DateJoined, others)
	if err != nil {
		return leave.LeaveRequest{}, nil, err
	}

	if len(warnings) > 0 {
		request.Note = appendWarnings(request.Note, warnings)
	}

	saved, err := s.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, nil, fmt.Errorf("failed to create leave request: %w", err)
	}
	return saved, warnings, nil
}

// Approve transitions a pending request to approved and writes its days
// into attendance. The status update and the attendance rows commit
// together or not at all.
func (s *RequestService) Approve(ctx context.Context, requestID string, approver employee.Employee) (leave.LeaveRequest, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if err := s.authorizeApprover(ctx, approver, request.RequesterID); err != nil {
		return leave.LeaveRequest{}, err
	}

	if request.Status != leave.StatusPending {
		return leave.LeaveRequest{}, leave.ErrLeaveAlreadyProcessed
	}

	request.Status = leave.StatusApproved

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.LeaveRequestRepository.Update(ctx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		if err := s.applier.ApplyApproved(ctx, request); err != nil {
			return fmt.Errorf("failed to apply leave: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

// Reject transitions a pending request to rejected.
func (s *RequestService) Reject(ctx context.Context, requestID string, approver employee.Employee) (leave.LeaveRequest, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if err := s.authorizeApprover(ctx, approver, request.RequesterID); err != nil {
		return leave.LeaveRequest{}, err
	}

	if request.Status != leave.StatusPending {
		return leave.LeaveRequest{}, leave.ErrLeaveAlreadyProcessed
	}

	request.Status = leave.StatusRejected
	if err := s.LeaveRequestRepository.Update(ctx, request); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	return request, nil
}

// ListMine returns the requester's own submissions, newest first.
func (s *RequestService) ListMine(ctx context.Context, requesterID string) ([]leave.LeaveRequest, error) {
	return s.LeaveRequestRepository.ListByRequester(ctx, requesterID)
}

// ApprovalQueue returns requests from the role the approver manages.
func (s *RequestService) ApprovalQueue(ctx context.Context, approver employee.Employee) ([]leave.LeaveRequest, error) {
	managedRole, ok := approver.Role.ApprovesRole()
	if !ok {
		return nil, nil
	}
	return s.LeaveRequestRepository.ListByRequesterRole(ctx, string(managedRole))
}

// Balance reads the requester's remaining entitlement for the year
// containing now, from approved requests alone.
func (s *RequestService) Balance(ctx context.Context, requesterID string, now time.Time) (leave.BalanceResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, requesterID)
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	requests, err := s.LeaveRequestRepository.ListByRequester(ctx, requesterID)
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	year := now.Year()
	paidUsed := 0
	sickUsed := 0
	paidThisMonth := false
	var lastPaidEnd *time.Time

	for i := range requests {
		req := &requests[i]
		if req.Status != leave.StatusApproved || req.StartDate.Year() != year {
			continue
		}
		switch req.LeaveType {
		case leave.TypePaid:
			paidUsed++
			if req.StartDate.Month() == now.Month() {
				paidThisMonth = true
			}
			if lastPaidEnd == nil || req.EndDate.After(*lastPaidEnd) {
				end := req.EndDate
				lastPaidEnd = &end
			}
		case leave.TypeSick:
			sickUsed += req.TotalDays
		}
	}

	balance := leave.BalanceResponse{
		AvailablePaid:      max(0, ProratedPaid(emp.DateJoined, year)-paidUsed),
		AvailableSick:      max(0, ProratedSick(emp.DateJoined, year)-sickUsed),
		PaidLeaveThisMonth: paidThisMonth,
	}
	if lastPaidEnd != nil {
		s := lastPaidEnd.Format(time.DateOnly)
		balance.LastPaidLeaveEndDate = &s
	}
	return balance, nil
}

func (s *RequestService) authorizeApprover(ctx context.Context, approver employee.Employee, requesterID string) error {
	requester, err := s.EmployeeRepository.GetByID(ctx, requesterID)
	if err != nil {
		return fmt.Errorf("failed to get requester: %w", err)
	}
	managedRole, ok := approver.Role.ApprovesRole()
	if !ok || requester.Role != managedRole {
		return leave.ErrApprovalNotAllowed
	}
	return nil
}

func withoutRejected(requests []leave.LeaveRequest) []leave.LeaveRequest {
	kept := requests[:0]
	for _, req := range requests {
		if req.Status != leave.StatusRejected {
			kept = append(kept, req)
		}
	}
	return kept
}

func appendWarnings(note string, warnings []string) string {
	joined := strings.Join(warnings, "; ")
	if note == "" {
		return joined
	}
	return note + " | " + joined
}
