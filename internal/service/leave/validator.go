package leave

import (
	"fmt"
	"time"

	"github.com/jivass-tech/payroll-backend-go/internal/domain/calendar"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/leave"
)

// Validator checks a candidate leave request against entitlement,
// monthly caps, adjacency, and sandwich-policy rules. It is pure: all
// persisted state it needs (the requester's other non-rejected
// requests) is passed in, so the rules are testable without a store.
type Validator struct {
	calendar *calendar.Policy
}

func NewValidator(cal *calendar.Policy) *Validator {
	return &Validator{calendar: cal}
}

// Validate annotates and possibly rewrites req (total days, sick
// downgraded to unpaid when the allowance is spent), returning advisory
// warnings. Hard rule violations return a sentinel error and leave no
// trace. others must hold the requester's non-rejected requests.
func (v *Validator) Validate(req *leave.LeaveRequest, joinDate time.Time, others []leave.LeaveRequest) ([]string, error) {
	if req.StartDate.After(req.EndDate) {
		return nil, leave.ErrInvalidDateRange
	}

	if req.TotalDays == 0 {
		req.TotalDays = req.InclusiveDays()
	}

	for i := range others {
		other := &others[i]
		if other.ID != req.ID &&
			other.StartDate.Equal(req.StartDate) && other.EndDate.Equal(req.EndDate) {
			return nil, leave.ErrDuplicateLeaveRequest
		}
	}

	year := req.StartDate.Year()
	var warnings []string

	switch req.LeaveType {
	case leave.TypePaid:
		if err := v.checkPaidLimits(req, joinDate, others, year); err != nil {
			return nil, err
		}
	case leave.TypeSick:
		warnings = append(warnings, v.applySickAllowance(req, joinDate, others, year)...)
	}

	if err := v.checkClubbing(req, others); err != nil {
		return nil, err
	}

	warnings = append(warnings, v.interiorSandwichWarnings(req)...)
	warnings = append(warnings, v.gapSandwichWarnings(req, others)...)

	return warnings, nil
}

// checkPaidLimits enforces one approved paid request per calendar month
// and the pro-rated annual cap. Each approved request consumes exactly
// one unit of the annual entitlement regardless of its span.
func (v *Validator) checkPaidLimits(req *leave.LeaveRequest, joinDate time.Time, others []leave.LeaveRequest, year int) error {
	approvedThisYear := 0
	for i := range others {
		other := &others[i]
		if other.Status != leave.StatusApproved || other.LeaveType != leave.TypePaid {
			continue
		}
		if other.StartDate.Year() != year {
			continue
		}
		approvedThisYear++
		if other.StartDate.Month() == req.StartDate.Month() {
			return leave.ErrPaidLeaveMonthLimit
		}
	}

	if approvedThisYear+1 > ProratedPaid(joinDate, year) {
		return leave.ErrPaidEntitlementExhausted
	}
	return nil
}

// applySickAllowance downgrades the request to unpaid when the sick
// allowance is spent, or warns when it would be partially exceeded.
// Neither case is a hard error.
func (v *Validator) applySickAllowance(req *leave.LeaveRequest, joinDate time.Time, others []leave.LeaveRequest, year int) []string {
	used := 0
	for i := range others {
		other := &others[i]
		if other.Status == leave.StatusApproved && other.LeaveType == leave.TypeSick &&
			other.StartDate.Year() == year {
			used += other.TotalDays
		}
	}

	remaining := ProratedSick(joinDate, year) - used
	if remaining <= 0 {
		req.LeaveType = leave.TypeUnpaid
		return []string{"sick leave allowance exhausted; request recorded as unpaid leave"}
	}
	if req.TotalDays > remaining {
		return []string{fmt.Sprintf(
			"only %d sick leave day(s) remaining; %d day(s) of this request will be unpaid",
			remaining, req.TotalDays-remaining,
		)}
	}
	return nil
}

// checkClubbing rejects a paid request touching a sick request (or the
// reverse) with no gap between them.
func (v *Validator) checkClubbing(req *leave.LeaveRequest, others []leave.LeaveRequest) error {
	reqPaid := isPaidFamily(req.LeaveType)
	reqSick := req.LeaveType == leave.TypeSick
	if !reqPaid && !reqSick {
		return nil
	}

	for i := range others {
		other := &others[i]
		if other.ID == req.ID || other.Status == leave.StatusRejected {
			continue
		}
		if !req.AdjacentTo(other) {
			continue
		}
		otherPaid := isPaidFamily(other.LeaveType)
		otherSick := other.LeaveType == leave.TypeSick
		if (reqPaid && otherSick) || (reqSick && otherPaid) {
			return leave.ErrLeaveClubbingNotAllowed
		}
	}
	return nil
}

func isPaidFamily(t leave.Type) bool {
	return t == leave.TypePaid || t == leave.TypeHalfPaid
}

// interiorSandwichWarnings flags weekends and public holidays strictly
// between the boundary days; those days are counted as unpaid by the
// monthly rollup.
func (v *Validator) interiorSandwichWarnings(req *leave.LeaveRequest) []string {
	sandwiched := 0
	for d := req.StartDate.AddDate(0, 0, 1); d.Before(req.EndDate); d = d.AddDate(0, 0, 1) {
		if v.calendar.IsHoliday(d) {
			sandwiched++
		}
	}
	if sandwiched == 0 {
		return nil
	}
	return []string{fmt.Sprintf(
		"%d holiday/weekend day(s) inside this leave will be treated as unpaid",
		sandwiched,
	)}
}

// gapSandwichWarnings flags a holiday-only gap between this single-day
// request and the requester's most recent earlier single-day request.
func (v *Validator) gapSandwichWarnings(req *leave.LeaveRequest, others []leave.LeaveRequest) []string {
	if !req.StartDate.Equal(req.EndDate) {
		return nil
	}

	var latest *leave.LeaveRequest
	for i := range others {
		other := &others[i]
		if other.ID == req.ID || other.Status == leave.StatusRejected {
			continue
		}
		if !other.StartDate.Equal(other.EndDate) || !other.EndDate.Before(req.StartDate) {
			continue
		}
		if latest == nil || other.EndDate.After(latest.EndDate) {
			latest = other
		}
	}
	if latest == nil {
		return nil
	}

	gapDays := 0
	for d := latest.EndDate.AddDate(0, 0, 1); d.Before(req.StartDate); d = d.AddDate(0, 0, 1) {
		if !v.calendar.IsHoliday(d) {
			return nil
		}
		gapDays++
	}
	if gapDays == 0 {
		return nil
	}
	return []string{fmt.Sprintf(
		"%d holiday/weekend day(s) between this and your previous leave will be treated as unpaid",
		gapDays,
	)}
}
