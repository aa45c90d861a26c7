package response

import (
	"errors"
	"net/http"

	"github.com/jivass-tech/payroll-backend-go/internal/domain/attendance"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/auth"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/employee"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/leave"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/leavedetails"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/payroll"
	"github.com/jivass-tech/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid employee id or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, "Not allowed")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee id already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrNoEntryRecord):
		NotFound(w, "No entry record found")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Unknown attendance status", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must be on or after start date", nil)
	case errors.Is(err, leave.ErrPaidLeaveMonthLimit):
		BadRequest(w, "Only one paid leave request is allowed per month", nil)
	case errors.Is(err, leave.ErrPaidEntitlementExhausted):
		BadRequest(w, "Annual paid leave entitlement exhausted", nil)
	case errors.Is(err, leave.ErrLeaveClubbingNotAllowed):
		BadRequest(w, "Paid and sick leave cannot be clubbed together", nil)
	case errors.Is(err, leave.ErrDuplicateLeaveRequest):
		Conflict(w, "A leave request for these dates already exists")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrApprovalNotAllowed):
		Forbidden(w, "You cannot act on this leave request")

	// Rollup and payroll domain errors
	case errors.Is(err, leavedetails.ErrNoAttendanceRecords):
		BadRequest(w, "No attendance records exist for this month", nil)
	case errors.Is(err, leavedetails.ErrLeaveDetailsNotFound):
		NotFound(w, "Leave details not found for this month")
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll not found for this month")
	case errors.Is(err, payroll.ErrLeaveDetailsRequired):
		BadRequest(w, "Leave details must be generated before payroll", nil)
	case errors.Is(err, payroll.ErrZeroWorkingDays):
		BadRequest(w, "Cannot compute payroll for a month with zero working days", nil)
	case errors.Is(err, payroll.ErrInvalidPerformanceCategory):
		BadRequest(w, "Performance category must be 1, 2, 3, 4 or NA", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
