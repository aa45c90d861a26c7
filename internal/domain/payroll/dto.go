package payroll

import (
	"time"

	"github.com/jivass-tech/payroll-backend-go/internal/domain/leavedetails"
	"github.com/jivass-tech/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GeneratePayrollRequest struct {
	EmployeeID      string `json:"employee_id"`
	Month           string `json:"month"` // YYYY-MM
	PerformCategory string `json:"perform_category"`
	Reimbursement   string `json:"reimbursement,omitempty"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be YYYY-MM"})
	}
	if !PerformanceCategory(r.PerformCategory).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "perform_category", Message: "perform_category must be 1, 2, 3, 4 or NA"})
	}
	if !validator.IsEmpty(r.Reimbursement) {
		if _, err := decimal.NewFromString(r.Reimbursement); err != nil {
			errs = append(errs, validator.ValidationError{Field: "reimbursement", Message: "reimbursement must be a decimal number"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollResponse struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	Month              string          `json:"month"`
	FeePerMonth        decimal.Decimal `json:"fee_per_month"`
	PayStructure       string          `json:"pay_structure"`
	BasePay            decimal.Decimal `json:"base_pay"`
	VariablePay        decimal.Decimal `json:"variable_pay"`
	BasePayEarned      decimal.Decimal `json:"base_pay_earned"`
	PerformCategory    string          `json:"perform_category"`
	PerformCompPayable decimal.Decimal `json:"perform_comp_payable"`
	FeeEarned          decimal.Decimal `json:"fee_earned"`
	TDS                decimal.Decimal `json:"tds"`
	Reimbursement      decimal.Decimal `json:"reimbursement"`
	NetFeeEarned       int64           `json:"net_fee_earned"`
	GeneratedOn        string          `json:"generated_on"`
}

func NewPayrollResponse(p PayrollRecord) PayrollResponse {
	return PayrollResponse{
		ID:                 p.ID,
		EmployeeID:         p.EmployeeID,
		Month:              p.Month.Format("2006-01"),
		FeePerMonth:        p.FeePerMonth,
		PayStructure:       p.PayStructure,
		BasePay:            p.BasePay,
		VariablePay:        p.VariablePay,
		BasePayEarned:      p.BasePayEarned,
		PerformCategory:    string(p.PerformCategory),
		PerformCompPayable: p.PerformCompPayable,
		FeeEarned:          p.FeeEarned,
		TDS:                p.TDS,
		Reimbursement:      p.Reimbursement,
		NetFeeEarned:       p.NetFeeEarned,
		GeneratedOn:        p.GeneratedOn.Format(time.DateOnly),
	}
}

// GenerateResult pairs the freshly recomputed rollup with the payroll
// record generated from it, for the payslip renderer and the API.
type GenerateResult struct {
	LeaveDetails leavedetails.LeaveDetailsResponse `json:"leave_details"`
	Payroll      PayrollResponse                   `json:"payroll"`
}
