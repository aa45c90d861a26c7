package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jivass-tech/payroll-backend-go/internal/domain/attendance"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/calendar"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/employee"
	"github.com/jivass-tech/payroll-backend-go/internal/pkg/utils"
)

// exitDistanceWarnMeters is how far a clock-out may be from the
// clock-in location before the event is logged for review.
const exitDistanceWarnMeters = 500.0

type Service struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	calendar *calendar.Policy
}

func NewService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	cal *calendar.Policy,
) *Service {
	return &Service{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		calendar:             cal,
	}
}

// RecordEntry upserts the row for (employee, date) and sets the entry
// clock time. An existing exit time on the row is kept.
func (s *Service) RecordEntry(ctx context.Context, req attendance.ClockRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to get employee: %w", err)
	}

	date, at := req.At()

	att, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		if !errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
		}
		att = attendance.Attendance{EmployeeID: req.EmployeeID, Date: date}
	}

	att.EntryTime = &at
	att.EntryLatitude = req.Latitude
	att.EntryLongitude = req.Longitude
	att.Recompute()

	saved, err := s.AttendanceRepository.Upsert(ctx, att)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return saved, nil
}

// RecordExit sets the exit clock time on an existing row. A day with no
// entry record yields ErrNoEntryRecord and no row is created.
func (s *Service) RecordExit(ctx context.Context, req attendance.ClockRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	date, at := req.At()

	att, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.Attendance{}, attendance.ErrNoEntryRecord
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	if att.EntryTime == nil {
		return attendance.Attendance{}, attendance.ErrNoEntryRecord
	}

	att.ExitTime = &at
	att.ExitLatitude = req.Latitude
	att.ExitLongitude = req.Longitude
	att.Recompute()

	s.warnOnDistantExit(&att)

	saved, err := s.AttendanceRepository.Upsert(ctx, att)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return saved, nil
}

func (s *Service) warnOnDistantExit(att *attendance.Attendance) {
	if att.EntryLatitude == nil || att.EntryLongitude == nil ||
		att.ExitLatitude == nil || att.ExitLongitude == nil {
		return
	}
	distance := utils.CalculateHaversineDistance(
		*att.EntryLatitude, *att.EntryLongitude,
		*att.ExitLatitude, *att.ExitLongitude,
	)
	if distance > exitDistanceWarnMeters {
		slog.Warn("Clock-out far from clock-in location",
			"employee_id", att.EmployeeID,
			"date", att.Date.Format(time.DateOnly),
			"distance_meters", int(distance),
		)
	}
}

// MarkStatus assigns a status explicitly. Used for holiday marking and
// admin corrections; clock times are cleared unless the caller opts out.
func (s *Service) MarkStatus(ctx context.Context, req attendance.MarkStatusRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to get employee: %w", err)
	}

	date, _ := time.Parse(time.DateOnly, req.Date)

	att, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		if !errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
		}
		att = attendance.Attendance{EmployeeID: req.EmployeeID, Date: date}
	}

	att.Status = attendance.Status(req.Status)
	if req.ClearTimes == nil || *req.ClearTimes {
		att.ClearTimes()
	}

	saved, err := s.AttendanceRepository.Upsert(ctx, att)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return saved, nil
}

// GetByEmployeeAndDate returns the row for one employee-day.
func (s *Service) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	return s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
}

// ListByDate returns every employee's row for a date.
func (s *Service) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	return s.AttendanceRepository.ListByDate(ctx, date)
}

// MonthlySummary aggregates one employee's statuses for a month.
func (s *Service) MonthlySummary(ctx context.Context, employeeID string, year int, month time.Month) (attendance.MonthlySummary, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return attendance.MonthlySummary{}, fmt.Errorf("failed to get employee: %w", err)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	rows, err := s.AttendanceRepository.ListByEmployeeAndRange(ctx, employeeID, first, last)
	if err != nil {
		return attendance.MonthlySummary{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	summary := attendance.MonthlySummary{
		EmployeeID: employeeID,
		Year:       year,
		Month:      int(month),
		Counts:     make(map[string]int),
	}
	for _, row := range rows {
		summary.Counts[string(row.Status)]++
		summary.Details = append(summary.Details, attendance.NewAttendanceResponse(row))
	}
	return summary, nil
}

// SeedHolidays creates Holiday rows for every employee on every weekend
// and public holiday of the year. Days that already have a row are left
// alone. Returns the number of rows created.
func (s *Service) SeedHolidays(ctx context.Context, year int) (int, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list employees: %w", err)
	}

	created := 0
	for day := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC); day.Year() == year; day = day.AddDate(0, 0, 1) {
		if !s.calendar.IsHoliday(day) {
			continue
		}
		for _, emp := range employees {
			_, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, day)
			if err == nil {
				continue
			}
			if !errors.Is(err, attendance.ErrAttendanceNotFound) {
				return created, fmt.Errorf("failed to get attendance: %w", err)
			}

			_, err = s.AttendanceRepository.Upsert(ctx, attendance.Attendance{
				EmployeeID: emp.ID,
				Date:       day,
				Status:     attendance.StatusHoliday,
			})
			if err != nil {
				return created, fmt.Errorf("failed to seed holiday row: %w", err)
			}
			created++
		}
	}
	return created, nil
}
