package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PerformanceCategory selects the multiplier applied to the variable
// pay component.
type PerformanceCategory string

const (
	PerformExceeds       PerformanceCategory = "1" // Exceeds Expectations
	PerformMeets         PerformanceCategory = "2" // Meets Expectations
	PerformPartiallyMets PerformanceCategory = "3" // Partially Meets Expectations
	PerformBelow         PerformanceCategory = "4" // Below Expectations
	PerformNotApplicable PerformanceCategory = "NA"
)

func (c PerformanceCategory) IsValid() bool {
	switch c {
	case PerformExceeds, PerformMeets, PerformPartiallyMets, PerformBelow, PerformNotApplicable:
		return true
	}
	return false
}

// Multiplier returns the variable-pay multiplier for the category.
// Unknown categories pay nothing, matching the NA behaviour.
func (c PerformanceCategory) Multiplier() decimal.Decimal {
	switch c {
	case PerformExceeds:
		return decimal.NewFromFloat(1.10)
	case PerformMeets:
		return decimal.NewFromFloat(0.75)
	case PerformPartiallyMets:
		return decimal.NewFromFloat(0.50)
	default:
		return decimal.Zero
	}
}

// PayrollRecord is one generated payroll per (employee, month).
// FeePerMonth and PayStructure are snapshotted from the employee at
// generation time; the whole record is recomputed on every generation.
type PayrollRecord struct {
	ID           string
	EmployeeID   string
	Month        time.Time // first day of the month
	FeePerMonth  decimal.Decimal
	PayStructure string

	BasePay            decimal.Decimal
	VariablePay        decimal.Decimal
	BasePayEarned      decimal.Decimal
	PerformCategory    PerformanceCategory
	PerformCompPayable decimal.Decimal
	FeeEarned          decimal.Decimal
	TDS                decimal.Decimal
	Reimbursement      decimal.Decimal
	ReimbursementProof *string
	NetFeeEarned       int64

	GeneratedOn time.Time
}
