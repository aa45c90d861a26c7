package payroll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jivass-tech/payroll-backend-go/internal/domain/attendance"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/employee"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/leavedetails"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/payroll"
	"github.com/jivass-tech/payroll-backend-go/internal/pkg/email"
	"github.com/jivass-tech/payroll-backend-go/internal/repository/memory"
	detailsvc "github.com/jivass-tech/payroll-backend-go/internal/service/leavedetails"
	"github.com/jivass-tech/payroll-backend-go/internal/service/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentPayslip struct {
	to             string
	data           email.PayslipData
	attachmentName string
	attachment     []byte
}

type captureMailer struct {
	sent []sentPayslip
	fail bool
}

func (m *captureMailer) SendPayslip(to string, data email.PayslipData, attachmentName string, attachment []byte) error {
	if m.fail {
		return errors.New("smtp unreachable")
	}
	m.sent = append(m.sent, sentPayslip{to: to, data: data, attachmentName: attachmentName, attachment: attachment})
	return nil
}

type payrollFixture struct {
	svc         *Service
	attendances *memory.AttendanceRepository
	payrolls    *memory.PayrollRepository
	mailer      *captureMailer
}

func newPayrollFixture(t *testing.T) *payrollFixture {
	t.Helper()
	employees := memory.NewEmployeeRepository()
	attendances := memory.NewAttendanceRepository()
	details := memory.NewLeaveDetailsRepository()
	payrolls := memory.NewPayrollRepository()
	mailer := &captureMailer{}

	_, err := employees.Create(context.Background(), employee.Employee{
		ID:           "E001",
		Name:         "Asha Rao",
		Email:        "asha@example.com",
		Role:         employee.RoleEmployee,
		DateJoined:   time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC),
		FeePerMonth:  decimal.NewFromInt(60000),
		PayStructure: employee.PayStructureFixed,
	})
	require.NoError(t, err)

	rollup := detailsvc.NewService(attendances, employees, details)
	svc := NewService(payrolls, employees, rollup, memory.NewTxManager(), report.NewPayslipRenderer(), mailer)
	return &payrollFixture{svc: svc, attendances: attendances, payrolls: payrolls, mailer: mailer}
}

func (f *payrollFixture) markPresent(t *testing.T, day time.Time) {
	t.Helper()
	_, err := f.attendances.Upsert(context.Background(), attendance.Attendance{
		EmployeeID: "E001",
		Date:       day,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)
}

func TestGenerateStoresRollupAndPayroll(t *testing.T) {
	f := newPayrollFixture(t)
	ctx := context.Background()

	for day := 1; day <= 5; day++ {
		f.markPresent(t, time.Date(2025, time.March, day+2, 0, 0, 0, 0, time.UTC))
	}

	result, err := f.svc.Generate(ctx, payroll.GeneratePayrollRequest{
		EmployeeID:      "E001",
		Month:           "2025-03",
		PerformCategory: "NA",
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-03", result.Payroll.Month)
	assert.NotEmpty(t, result.Payroll.ID)

	stored, err := f.svc.GetPayslip(ctx, "E001", time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, result.Payroll.NetFeeEarned, stored.Payroll.NetFeeEarned)
}

func TestGenerateEmailsRenderedPayslip(t *testing.T) {
	f := newPayrollFixture(t)

	f.markPresent(t, time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC))

	_, err := f.svc.Generate(context.Background(), payroll.GeneratePayrollRequest{
		EmployeeID:      "E001",
		Month:           "2025-03",
		PerformCategory: "NA",
	})
	require.NoError(t, err)

	require.Len(t, f.mailer.sent, 1)
	sent := f.mailer.sent[0]
	assert.Equal(t, "asha@example.com", sent.to)
	assert.Equal(t, "payslip-E001-2025-03.xlsx", sent.attachmentName)
	assert.NotEmpty(t, sent.attachment)
	assert.Equal(t, "March 2025", sent.data.Month)
}

func TestGenerateSucceedsWhenEmailFails(t *testing.T) {
	f := newPayrollFixture(t)
	f.mailer.fail = true

	f.markPresent(t, time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC))

	_, err := f.svc.Generate(context.Background(), payroll.GeneratePayrollRequest{
		EmployeeID:      "E001",
		Month:           "2025-03",
		PerformCategory: "NA",
	})
	assert.NoError(t, err)
}

func TestGenerateEmptyMonthStoresNothing(t *testing.T) {
	f := newPayrollFixture(t)
	ctx := context.Background()

	_, err := f.svc.Generate(ctx, payroll.GeneratePayrollRequest{
		EmployeeID:      "E001",
		Month:           "2025-03",
		PerformCategory: "NA",
	})
	assert.ErrorIs(t, err, leavedetails.ErrNoAttendanceRecords)

	_, err = f.payrolls.GetByEmployeeAndMonth(ctx, "E001", time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
	assert.Empty(t, f.mailer.sent)
}

func TestGenerateRejectsMalformedRequest(t *testing.T) {
	f := newPayrollFixture(t)

	_, err := f.svc.Generate(context.Background(), payroll.GeneratePayrollRequest{
		EmployeeID:      "E001",
		Month:           "March 2025",
		PerformCategory: "5",
	})
	assert.Error(t, err)
}

func TestRenderPayslipForStoredPayroll(t *testing.T) {
	f := newPayrollFixture(t)
	ctx := context.Background()

	f.markPresent(t, time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC))
	_, err := f.svc.Generate(ctx, payroll.GeneratePayrollRequest{
		EmployeeID:      "E001",
		Month:           "2025-03",
		PerformCategory: "NA",
	})
	require.NoError(t, err)

	sheet, err := f.svc.RenderPayslip(ctx, "E001", time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.NotEmpty(t, sheet)
}

func TestListByMonth(t *testing.T) {
	f := newPayrollFixture(t)
	ctx := context.Background()

	f.markPresent(t, time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC))
	_, err := f.svc.Generate(ctx, payroll.GeneratePayrollRequest{
		EmployeeID:      "E001",
		Month:           "2025-03",
		PerformCategory: "NA",
	})
	require.NoError(t, err)

	records, err := f.svc.ListByMonth(ctx, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "E001", records[0].EmployeeID)
}
