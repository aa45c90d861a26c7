// Package report renders the payslip read model into a spreadsheet for
// download and email attachment.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jivass-tech/payroll-backend-go/internal/domain/employee"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/leavedetails"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const payslipSheet = "Payslip"

type PayslipRenderer struct{}

func NewPayslipRenderer() *PayslipRenderer {
	return &PayslipRenderer{}
}

// RenderPayslip writes the rollup counters and payroll breakdown for
// one month into a two-column sheet.
func (r *PayslipRenderer) RenderPayslip(emp employee.Employee, details leavedetails.LeaveDetails, record payroll.PayrollRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(payslipSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	rows := []struct {
		label string
		value interface{}
	}{
		{"Payslip", record.Month.Format("January 2006")},
		{"Employee ID", emp.ID},
		{"Name", emp.Name},
		{"Designation", derefOr(emp.Designation, "-")},
		{"Date Joined", emp.DateJoined.Format(time.DateOnly)},
		{"Pay Structure", record.PayStructure},
		{"", ""},
		{"Working Days", dec(details.WorkingDays)},
		{"Days Worked", dec(details.DaysWorked)},
		{"Paid Leaves", dec(details.PaidLeaves)},
		{"Sick Leaves", dec(details.SickLeaves)},
		{"Unpaid Leaves", dec(details.UnpaidLeaves)},
		{"Absent Days", dec(details.AbsentDays)},
		{"Paid Leaves Left", dec(details.TotalPaidLeavesLeft)},
		{"Sick Leaves Left", dec(details.TotalSickLeavesLeft)},
		{"", ""},
		{"Fee Per Month", dec(record.FeePerMonth)},
		{"Base Pay", dec(record.BasePay)},
		{"Variable Pay", dec(record.VariablePay)},
		{"Base Pay Earned", dec(record.BasePayEarned)},
		{"Performance Category", string(record.PerformCategory)},
		{"Performance Component", dec(record.PerformCompPayable)},
		{"Fee Earned", dec(record.FeeEarned)},
		{"TDS", dec(record.TDS)},
		{"Reimbursement", dec(record.Reimbursement)},
		{"Net Fee Earned", record.NetFeeEarned},
	}

	for i, row := range rows {
		labelCell, _ := excelize.CoordinatesToCellName(1, i+1)
		valueCell, _ := excelize.CoordinatesToCellName(2, i+1)
		if err := f.SetCellValue(payslipSheet, labelCell, row.label); err != nil {
			return nil, fmt.Errorf("failed to set cell: %w", err)
		}
		if err := f.SetCellValue(payslipSheet, valueCell, row.value); err != nil {
			return nil, fmt.Errorf("failed to set cell: %w", err)
		}
	}

	if err := f.SetCellStyle(payslipSheet, "A1", "B1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set style: %w", err)
	}
	if err := f.SetColWidth(payslipSheet, "A", "A", 26); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(payslipSheet, "B", "B", 18); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func dec(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func derefOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
