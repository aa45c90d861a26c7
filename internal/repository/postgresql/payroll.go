package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/payroll"
	"github.com/jivass-tech/payroll-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `
	id, employee_id, month, fee_per_month, pay_structure,
	base_pay, variable_pay, base_pay_earned, perform_category,
	perform_comp_payable, fee_earned, tds, reimbursement,
	reimbursement_proof, net_fee_earned, generated_on
`

func scanPayroll(row pgx.Row) (payroll.PayrollRecord, error) {
	var p payroll.PayrollRecord
	err := row.Scan(
		&p.ID,
		&p.EmployeeID,
		&p.Month,
		&p.FeePerMonth,
		&p.PayStructure,
		&p.BasePay,
		&p.VariablePay,
		&p.BasePayEarned,
		&p.PerformCategory,
		&p.PerformCompPayable,
		&p.FeeEarned,
		&p.TDS,
		&p.Reimbursement,
		&p.ReimbursementProof,
		&p.NetFeeEarned,
		&p.GeneratedOn,
	)
	return p, err
}

func (r *payrollRepositoryImpl) Upsert(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `
		INSERT INTO payrolls (` + payrollColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())
		ON CONFLICT (employee_id, month) DO UPDATE SET
			fee_per_month = EXCLUDED.fee_per_month,
			pay_structure = EXCLUDED.pay_structure,
			base_pay = EXCLUDED.base_pay,
			variable_pay = EXCLUDED.variable_pay,
			base_pay_earned = EXCLUDED.base_pay_earned,
			perform_category = EXCLUDED.perform_category,
			perform_comp_payable = EXCLUDED.perform_comp_payable,
			fee_earned = EXCLUDED.fee_earned,
			tds = EXCLUDED.tds,
			reimbursement = EXCLUDED.reimbursement,
			reimbursement_proof = EXCLUDED.reimbursement_proof,
			net_fee_earned = EXCLUDED.net_fee_earned,
			generated_on = NOW()
		RETURNING id, generated_on
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Month,
		record.FeePerMonth,
		record.PayStructure,
		record.BasePay,
		record.VariablePay,
		record.BasePayEarned,
		record.PerformCategory,
		record.PerformCompPayable,
		record.FeeEarned,
		record.TDS,
		record.Reimbursement,
		record.ReimbursementProof,
		record.NetFeeEarned,
	).Scan(&record.ID, &record.GeneratedOn)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	return record, nil
}

func (r *payrollRepositoryImpl) GetByEmployeeAndMonth(ctx context.Context, employeeID string, month time.Time) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payrolls WHERE employee_id = $1 AND month = $2`

	p, err := scanPayroll(q.QueryRow(ctx, query, employeeID, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollNotFound
		}
		return payroll.PayrollRecord{}, err
	}
	return p, nil
}

func (r *payrollRepositoryImpl) ListByMonth(ctx context.Context, month time.Time) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payrolls WHERE month = $1 ORDER BY employee_id ASC`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, rows.Err()
}
