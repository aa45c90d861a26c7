package leavedetails

import (
	"github.com/shopspring/decimal"
)

type LeaveDetailsResponse struct {
	ID                   string          `json:"id"`
	EmployeeID           string          `json:"employee_id"`
	Month                string          `json:"month"`
	WorkingDays          decimal.Decimal `json:"working_days"`
	PaidLeaves           decimal.Decimal `json:"paid_leaves"`
	SickLeaves           decimal.Decimal `json:"sick_leaves"`
	AppliedUnpaidLeaves  decimal.Decimal `json:"applied_unpaid_leaves"`
	SandwichUnpaidLeaves decimal.Decimal `json:"sandwich_unpaid_leaves"`
	UnpaidLeaves         decimal.Decimal `json:"unpaid_leaves"`
	TotalLeavesTaken     decimal.Decimal `json:"total_leaves_taken"`
	AbsentDays           decimal.Decimal `json:"absent_days"`
	DaysWorked           decimal.Decimal `json:"days_worked"`
	TotalPaidLeavesLeft  decimal.Decimal `json:"total_paid_leaves_left"`
	TotalSickLeavesLeft  decimal.Decimal `json:"total_sick_leaves_left"`
}

func NewLeaveDetailsResponse(d LeaveDetails) LeaveDetailsResponse {
	return LeaveDetailsResponse{
		ID:                   d.ID,
		EmployeeID:           d.EmployeeID,
		Month:                d.Month.Format("2006-01"),
		WorkingDays:          d.WorkingDays,
		PaidLeaves:           d.PaidLeaves,
		SickLeaves:           d.SickLeaves,
		AppliedUnpaidLeaves:  d.AppliedUnpaidLeaves,
		SandwichUnpaidLeaves: d.SandwichUnpaidLeaves,
		UnpaidLeaves:         d.UnpaidLeaves,
		TotalLeavesTaken:     d.TotalLeavesTaken,
		AbsentDays:           d.AbsentDays,
		DaysWorked:           d.DaysWorked,
		TotalPaidLeavesLeft:  d.TotalPaidLeavesLeft,
		TotalSickLeavesLeft:  d.TotalSickLeavesLeft,
	}
}
