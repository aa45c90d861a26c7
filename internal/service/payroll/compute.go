package payroll

import (
	"github.com/jivass-tech/payroll-backend-go/internal/domain/employee"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/leavedetails"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

var (
	variableShare  = decimal.NewFromFloat(0.25)
	baseShare      = decimal.NewFromFloat(0.75)
	absencePenalty = decimal.NewFromFloat(0.5)
	tdsRate        = decimal.NewFromFloat(0.1)
)

// Compute derives a payroll record from the employee's pay terms and
// the month's rollup. It is deterministic: the same inputs always
// produce the same record.
func Compute(
	emp employee.Employee,
	details leavedetails.LeaveDetails,
	category payroll.PerformanceCategory,
	reimbursement decimal.Decimal,
	proof *string,
) (payroll.PayrollRecord, error) {
	if details.WorkingDays.IsZero() {
		return payroll.PayrollRecord{}, payroll.ErrZeroWorkingDays
	}

	var basePay, variablePay decimal.Decimal
	if emp.PayStructure == employee.PayStructureFixed {
		basePay = emp.FeePerMonth
		variablePay = decimal.Zero
	} else {
		basePay = emp.FeePerMonth.Mul(baseShare)
		variablePay = emp.FeePerMonth.Mul(variableShare)
	}

	basePayPerDay := basePay.Div(details.WorkingDays)
	payableDays := details.DaysWorked.Add(details.PaidLeaves).Add(details.SickLeaves)

	penaltyPerAbsent := basePayPerDay.Mul(absencePenalty)
	totalAbsentPenalty := details.AbsentDays.Mul(penaltyPerAbsent)

	basePayEarned := basePayPerDay.Mul(payableDays).Sub(totalAbsentPenalty)
	performCompPayable := variablePay.Mul(category.Multiplier())

	feeEarned := basePayEarned.Add(performCompPayable)
	tds := feeEarned.Mul(tdsRate)
	netFeeEarned := feeEarned.Sub(tds).Add(reimbursement).Round(0).IntPart()

	return payroll.PayrollRecord{
		EmployeeID:         emp.ID,
		Month:              details.Month,
		FeePerMonth:        emp.FeePerMonth,
		PayStructure:       string(emp.PayStructure),
		BasePay:            basePay,
		VariablePay:        variablePay,
		BasePayEarned:      basePayEarned,
		PerformCategory:    category,
		PerformCompPayable: performCompPayable,
		FeeEarned:          feeEarned,
		TDS:                tds,
		Reimbursement:      reimbursement,
		ReimbursementProof: proof,
		NetFeeEarned:       netFeeEarned,
	}, nil
}
