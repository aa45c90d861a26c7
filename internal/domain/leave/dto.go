package leave

import (
	"time"

	"github.com/jivass-tech/payroll-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	LeaveType     string  `json:"leave_type"`
	TotalDays     *int    `json:"total_days,omitempty"` // derived when absent
	HalfDayPeriod *string `json:"half_day_period,omitempty"`
	Description   string  `json:"description,omitempty"`
	Note          string  `json:"note,omitempty"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
	}
	if okStart && okEnd && start.After(end) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be on or after start_date"})
	}
	if !Type(r.LeaveType).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "unknown leave type"})
	}
	if r.HalfDayPeriod != nil {
		switch HalfDayPeriod(*r.HalfDayPeriod) {
		case PeriodMorning, PeriodAfternoon:
		default:
			errs = append(errs, validator.ValidationError{Field: "half_day_period", Message: "half_day_period must be morning or afternoon"})
		}
	}
	if r.TotalDays != nil && *r.TotalDays <= 0 {
		errs = append(errs, validator.ValidationError{Field: "total_days", Message: "total_days must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateLeaveStatusRequest) Validate() error {
	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		return validator.ValidationErrors{{Field: "status", Message: "status must be approved or rejected"}}
	}
	return nil
}

type LeaveRequestResponse struct {
	ID            string   `json:"id"`
	EmployeeID    string   `json:"employee_id"`
	EmployeeName  string   `json:"employee_name"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	TotalDays     int      `json:"total_days"`
	LeaveType     string   `json:"leave_type"`
	HalfDayPeriod *string  `json:"half_day_period,omitempty"`
	Description   string   `json:"description,omitempty"`
	Note          string   `json:"note,omitempty"`
	Status        string   `json:"status"`
	Warnings      []string `json:"warnings,omitempty"`
	CreatedAt     string   `json:"created_at"`
}

func NewLeaveRequestResponse(req LeaveRequest, warnings []string) LeaveRequestResponse {
	var period *string
	if req.HalfDayPeriod != nil {
		s := string(*req.HalfDayPeriod)
		period = &s
	}
	return LeaveRequestResponse{
		ID:            req.ID,
		EmployeeID:    req.EmployeeID,
		EmployeeName:  req.EmployeeName,
		StartDate:     req.StartDate.Format(time.DateOnly),
		EndDate:       req.EndDate.Format(time.DateOnly),
		TotalDays:     req.TotalDays,
		LeaveType:     string(req.LeaveType),
		HalfDayPeriod: period,
		Description:   req.Description,
		Note:          req.Note,
		Status:        string(req.Status),
		Warnings:      warnings,
		CreatedAt:     req.CreatedAt.Format(time.RFC3339),
	}
}

// BalanceResponse is the requester's current-year leave balance read model.
type BalanceResponse struct {
	AvailablePaid        int     `json:"availablePaid"`
	AvailableSick        int     `json:"availableSick"`
	PaidLeaveThisMonth   bool    `json:"paidLeaveThisMonth"`
	LastPaidLeaveEndDate *string `json:"lastPaidLeaveEndDate"`
}
