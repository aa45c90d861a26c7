package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jivass-tech/payroll-backend-go/internal/domain/employee"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/leavedetails"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/payroll"
	"github.com/jivass-tech/payroll-backend-go/internal/pkg/database"
	"github.com/jivass-tech/payroll-backend-go/internal/pkg/email"
	detailsvc "github.com/jivass-tech/payroll-backend-go/internal/service/leavedetails"
	"github.com/shopspring/decimal"
)

// PayslipRenderer turns a generated payroll and its rollup into a
// downloadable document.
type PayslipRenderer interface {
	RenderPayslip(emp employee.Employee, details leavedetails.LeaveDetails, record payroll.PayrollRecord) ([]byte, error)
}

// Service orchestrates payroll generation: recompute the month's
// rollup, compute the payroll from it, persist both atomically, then
// deliver the payslip best-effort.
type Service struct {
	payroll.PayrollRepository
	employee.EmployeeRepository
	rollup   *detailsvc.Service
	tx       database.TxManager
	renderer PayslipRenderer
	mailer   email.EmailService
}

func NewService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	rollup *detailsvc.Service,
	tx database.TxManager,
	renderer PayslipRenderer,
	mailer email.EmailService,
) *Service {
	return &Service{
		PayrollRepository:  payrollRepo,
		EmployeeRepository: employeeRepo,
		rollup:             rollup,
		tx:                 tx,
		renderer:           renderer,
		mailer:             mailer,
	}
}

// Generate recomputes the rollup and payroll for (employee, month) and
// persists both in one transaction. A rollup failure, including
// ErrNoAttendanceRecords, persists nothing. Payslip email delivery runs
// after commit and its failure is logged, not returned.
func (s *Service) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.GenerateResult, error) {
	if err := req.Validate(); err != nil {
		return payroll.GenerateResult{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.GenerateResult{}, fmt.Errorf("failed to get employee: %w", err)
	}

	month, _ := time.Parse("2006-01", req.Month)
	month = leavedetails.MonthStart(month)

	reimbursement := decimal.Zero
	if req.Reimbursement != "" {
		reimbursement, _ = decimal.NewFromString(req.Reimbursement)
	}

	var details leavedetails.LeaveDetails
	var record payroll.PayrollRecord

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		details, err = s.rollup.Generate(ctx, emp.ID, month)
		if err != nil {
			return err
		}

		record, err = Compute(emp, details, payroll.PerformanceCategory(req.PerformCategory), reimbursement, nil)
		if err != nil {
			return err
		}

		record, err = s.PayrollRepository.Upsert(ctx, record)
		if err != nil {
			return fmt.Errorf("failed to upsert payroll: %w", err)
		}
		return nil
	})
	if err != nil {
		return payroll.GenerateResult{}, err
	}

	s.deliverPayslip(emp, details, record)

	return payroll.GenerateResult{
		LeaveDetails: leavedetails.NewLeaveDetailsResponse(details),
		Payroll:      payroll.NewPayrollResponse(record),
	}, nil
}

// GetPayslip returns the stored rollup and payroll pair for a month.
func (s *Service) GetPayslip(ctx context.Context, employeeID string, month time.Time) (payroll.GenerateResult, error) {
	month = leavedetails.MonthStart(month)

	record, err := s.PayrollRepository.GetByEmployeeAndMonth(ctx, employeeID, month)
	if err != nil {
		return payroll.GenerateResult{}, err
	}
	details, err := s.rollup.Get(ctx, employeeID, month)
	if err != nil {
		return payroll.GenerateResult{}, err
	}

	return payroll.GenerateResult{
		LeaveDetails: leavedetails.NewLeaveDetailsResponse(details),
		Payroll:      payroll.NewPayrollResponse(record),
	}, nil
}

// RenderPayslip returns the payslip document for a stored payroll.
func (s *Service) RenderPayslip(ctx context.Context, employeeID string, month time.Time) ([]byte, error) {
	month = leavedetails.MonthStart(month)

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	record, err := s.PayrollRepository.GetByEmployeeAndMonth(ctx, employeeID, month)
	if err != nil {
		return nil, err
	}
	details, err := s.rollup.Get(ctx, employeeID, month)
	if err != nil {
		return nil, err
	}

	return s.renderer.RenderPayslip(emp, details, record)
}

// ListByMonth returns every employee's payroll for a month.
func (s *Service) ListByMonth(ctx context.Context, month time.Time) ([]payroll.PayrollRecord, error) {
	return s.PayrollRepository.ListByMonth(ctx, leavedetails.MonthStart(month))
}

func (s *Service) deliverPayslip(emp employee.Employee, details leavedetails.LeaveDetails, record payroll.PayrollRecord) {
	if s.mailer == nil || s.renderer == nil || emp.Email == "" {
		return
	}

	monthLabel := record.Month.Format("January 2006")

	sheet, err := s.renderer.RenderPayslip(emp, details, record)
	if err != nil {
		slog.Error("Failed to render payslip", "employee_id", emp.ID, "month", monthLabel, "error", err)
		return
	}

	data := email.PayslipData{
		EmployeeName:  emp.Name,
		Month:         monthLabel,
		FeeEarned:     record.FeeEarned.StringFixed(2),
		TDS:           record.TDS.StringFixed(2),
		Reimbursement: record.Reimbursement.StringFixed(2),
		NetFeeEarned:  fmt.Sprintf("%d", record.NetFeeEarned),
	}
	attachmentName := fmt.Sprintf("payslip-%s-%s.xlsx", emp.ID, record.Month.Format("2006-01"))

	if err := s.mailer.SendPayslip(emp.Email, data, attachmentName, sheet); err != nil {
		slog.Error("Failed to email payslip", "employee_id", emp.ID, "month", monthLabel, "error", err)
	}
}
