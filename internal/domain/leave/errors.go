package leave

import "errors"

var (
	ErrInvalidDateRange         = errors.New("end date must be on or after start date")
	ErrPaidLeaveMonthLimit      = errors.New("only one paid leave request is allowed per month")
	ErrPaidEntitlementExhausted = errors.New("annual paid leave entitlement exhausted")
	ErrLeaveClubbingNotAllowed  = errors.New("paid and sick leave cannot be clubbed together")
	ErrLeaveRequestNotFound     = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed    = errors.New("leave request has already been approved or rejected")
	ErrDuplicateLeaveRequest    = errors.New("a leave request for these dates already exists")
	ErrApprovalNotAllowed       = errors.New("approver role cannot act on this request")
)
