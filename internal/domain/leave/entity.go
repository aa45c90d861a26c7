package leave

import (
	"time"
)

// Type is the requested leave category. Most categories grant only a
// single paid/sick day per request; the application engine degrades any
// further requested days to unpaid.
type Type string

const (
	TypePaid       Type = "paid"
	TypeSick       Type = "sick"
	TypeUnpaid     Type = "unpaid"
	TypeHalfPaid   Type = "half paid leave"
	TypeHalfUnpaid Type = "half unpaid leave"
)

func (t Type) IsValid() bool {
	switch t {
	case TypePaid, TypeSick, TypeUnpaid, TypeHalfPaid, TypeHalfUnpaid:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type HalfDayPeriod string

const (
	PeriodMorning   HalfDayPeriod = "morning"
	PeriodAfternoon HalfDayPeriod = "afternoon"
)

// LeaveRequest is one leave submission. EmployeeID and EmployeeName are
// cached from the requester at save time so approval lists do not need
// a join. Note carries caller text plus any appended validation
// warnings.
type LeaveRequest struct {
	ID            string
	RequesterID   string
	EmployeeID    string
	EmployeeName  string
	StartDate     time.Time
	EndDate       time.Time
	TotalDays     int
	LeaveType     Type
	HalfDayPeriod *HalfDayPeriod
	Description   string
	Note          string
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// InclusiveDays is the calendar span of the request, both ends counted.
func (r *LeaveRequest) InclusiveDays() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}

// AdjacentTo reports whether the two requests touch without a gap
// (other ends the day before this starts, or starts the day after this
// ends).
func (r *LeaveRequest) AdjacentTo(other *LeaveRequest) bool {
	return other.EndDate.AddDate(0, 0, 1).Equal(r.StartDate) ||
		r.EndDate.AddDate(0, 0, 1).Equal(other.StartDate)
}
