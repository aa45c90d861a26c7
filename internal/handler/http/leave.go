package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/auth"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/employee"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/leave"
	"github.com/jivass-tech/payroll-backend-go/internal/handler/http/middleware"
	"github.com/jivass-tech/payroll-backend-go/internal/handler/http/response"
	employeesvc "github.com/jivass-tech/payroll-backend-go/internal/service/employee"
	leavesvc "github.com/jivass-tech/payroll-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ApprovalQueue(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Balance(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	requestService  *leavesvc.RequestService
	employeeService *employeesvc.Service
}

func NewLeaveHandler(requestService *leavesvc.RequestService, employeeService *employeesvc.Service) LeaveHandler {
	return &leaveHandlerImpl{requestService: requestService, employeeService: employeeService}
}

func (h *leaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.EmployeeID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var req leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	request, warnings, err := h.requestService.Create(r.Context(), requesterID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request submitted", leave.NewLeaveRequestResponse(request, warnings))
}

func (h *leaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.EmployeeID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	requests, err := h.requestService.ListMine(r.Context(), requesterID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, toLeaveResponses(requests))
}

func (h *leaveHandlerImpl) ApprovalQueue(w http.ResponseWriter, r *http.Request) {
	approver, err := h.approver(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.requestService.ApprovalQueue(r.Context(), approver)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, toLeaveResponses(requests))
}

func (h *leaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	approver, err := h.approver(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.UpdateLeaveStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	requestID := chi.URLParam(r, "id")

	var request leave.LeaveRequest
	if req.Status == string(leave.StatusApproved) {
		request, err = h.requestService.Approve(r.Context(), requestID, approver)
	} else {
		request, err = h.requestService.Reject(r.Context(), requestID, approver)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request "+req.Status, leave.NewLeaveRequestResponse(request, nil))
}

func (h *leaveHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.EmployeeID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	balance, err := h.requestService.Balance(r.Context(), requesterID, time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, balance)
}

func (h *leaveHandlerImpl) approver(r *http.Request) (employee.Employee, error) {
	approverID, ok := middleware.EmployeeID(r)
	if !ok {
		return employee.Employee{}, auth.ErrInvalidToken
	}
	return h.employeeService.GetByID(r.Context(), approverID)
}

func toLeaveResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	resp := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		resp = append(resp, leave.NewLeaveRequestResponse(req, nil))
	}
	return resp
}
