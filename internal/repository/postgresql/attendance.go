package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/attendance"
	"github.com/jivass-tech/payroll-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	id, employee_id, date, entry_time, exit_time, work_duration_seconds,
	status, entry_latitude, entry_longitude, exit_latitude, exit_longitude,
	created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	var durationSeconds *int64
	err := row.Scan(
		&a.ID,
		&a.EmployeeID,
		&a.Date,
		&a.EntryTime,
		&a.ExitTime,
		&durationSeconds,
		&a.Status,
		&a.EntryLatitude,
		&a.EntryLongitude,
		&a.ExitLatitude,
		&a.ExitLongitude,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if durationSeconds != nil {
		d := time.Duration(*durationSeconds) * time.Second
		a.WorkDuration = &d
	}
	return a, nil
}

func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if att.ID == "" {
		att.ID = uuid.NewString()
	}

	var durationSeconds *int64
	if att.WorkDuration != nil {
		s := int64(att.WorkDuration.Seconds())
		durationSeconds = &s
	}

	query := `
		INSERT INTO attendances (` + attendanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		ON CONFLICT (employee_id, date) DO UPDATE SET
			entry_time = EXCLUDED.entry_time,
			exit_time = EXCLUDED.exit_time,
			work_duration_seconds = EXCLUDED.work_duration_seconds,
			status = EXCLUDED.status,
			entry_latitude = EXCLUDED.entry_latitude,
			entry_longitude = EXCLUDED.entry_longitude,
			exit_latitude = EXCLUDED.exit_latitude,
			exit_longitude = EXCLUDED.exit_longitude,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID,
		att.EmployeeID,
		att.Date,
		att.EntryTime,
		att.ExitTime,
		durationSeconds,
		att.Status,
		att.EntryLatitude,
		att.EntryLongitude,
		att.ExitLatitude,
		att.ExitLongitude,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, err
	}

	return att, nil
}

func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE employee_id = $1 AND date = $2`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}
	return att, nil
}

func (r *attendanceRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendances(rows)
}

func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE date = $1 ORDER BY employee_id ASC`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendances(rows)
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var attendances []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		attendances = append(attendances, a)
	}
	return attendances, rows.Err()
}
