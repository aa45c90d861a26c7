package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/leavedetails"
	"github.com/jivass-tech/payroll-backend-go/internal/pkg/database"
)

type leaveDetailsRepositoryImpl struct {
	db *database.DB
}

func NewLeaveDetailsRepository(db *database.DB) leavedetails.LeaveDetailsRepository {
	return &leaveDetailsRepositoryImpl{db: db}
}

const leaveDetailsColumns = `
	id, employee_id, month, working_days, paid_leaves, sick_leaves,
	applied_unpaid_leaves, sandwich_unpaid_leaves, unpaid_leaves,
	total_leaves_taken, absent_days, days_worked,
	total_paid_leaves_left, total_sick_leaves_left, generated_at
`

func scanLeaveDetails(row pgx.Row) (leavedetails.LeaveDetails, error) {
	var d leavedetails.LeaveDetails
	err := row.Scan(
		&d.ID,
		&d.EmployeeID,
		&d.Month,
		&d.WorkingDays,
		&d.PaidLeaves,
		&d.SickLeaves,
		&d.AppliedUnpaidLeaves,
		&d.SandwichUnpaidLeaves,
		&d.UnpaidLeaves,
		&d.TotalLeavesTaken,
		&d.AbsentDays,
		&d.DaysWorked,
		&d.TotalPaidLeavesLeft,
		&d.TotalSickLeavesLeft,
		&d.GeneratedAt,
	)
	return d, err
}

func (r *leaveDetailsRepositoryImpl) Upsert(ctx context.Context, details leavedetails.LeaveDetails) (leavedetails.LeaveDetails, error) {
	q := GetQuerier(ctx, r.db)

	if details.ID == "" {
		details.ID = uuid.NewString()
	}

	query := `
		INSERT INTO leave_details (` + leaveDetailsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
		ON CONFLICT (employee_id, month) DO UPDATE SET
			working_days = EXCLUDED.working_days,
			paid_leaves = EXCLUDED.paid_leaves,
			sick_leaves = EXCLUDED.sick_leaves,
			applied_unpaid_leaves = EXCLUDED.applied_unpaid_leaves,
			sandwich_unpaid_leaves = EXCLUDED.sandwich_unpaid_leaves,
			unpaid_leaves = EXCLUDED.unpaid_leaves,
			total_leaves_taken = EXCLUDED.total_leaves_taken,
			absent_days = EXCLUDED.absent_days,
			days_worked = EXCLUDED.days_worked,
			total_paid_leaves_left = EXCLUDED.total_paid_leaves_left,
			total_sick_leaves_left = EXCLUDED.total_sick_leaves_left,
			generated_at = NOW()
		RETURNING id, generated_at
	`

	err := q.QueryRow(ctx, query,
		details.ID,
		details.EmployeeID,
		details.Month,
		details.WorkingDays,
		details.PaidLeaves,
		details.SickLeaves,
		details.AppliedUnpaidLeaves,
		details.SandwichUnpaidLeaves,
		details.UnpaidLeaves,
		details.TotalLeavesTaken,
		details.AbsentDays,
		details.DaysWorked,
		details.TotalPaidLeavesLeft,
		details.TotalSickLeavesLeft,
	).Scan(&details.ID, &details.GeneratedAt)
	if err != nil {
		return leavedetails.LeaveDetails{}, err
	}

	return details, nil
}

func (r *leaveDetailsRepositoryImpl) GetByEmployeeAndMonth(ctx context.Context, employeeID string, month time.Time) (leavedetails.LeaveDetails, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveDetailsColumns + ` FROM leave_details WHERE employee_id = $1 AND month = $2`

	d, err := scanLeaveDetails(q.QueryRow(ctx, query, employeeID, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leavedetails.LeaveDetails{}, leavedetails.ErrLeaveDetailsNotFound
		}
		return leavedetails.LeaveDetails{}, err
	}
	return d, nil
}

func (r *leaveDetailsRepositoryImpl) GetLatestBefore(ctx context.Context, employeeID string, month time.Time) (*leavedetails.LeaveDetails, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveDetailsColumns + `
		FROM leave_details
		WHERE employee_id = $1 AND month < $2
		ORDER BY month DESC
		LIMIT 1
	`

	d, err := scanLeaveDetails(q.QueryRow(ctx, query, employeeID, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}
