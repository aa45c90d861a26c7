package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/attendance"
)

type attendanceKey struct {
	employeeID string
	date       string
}

func newAttendanceKey(employeeID string, date time.Time) attendanceKey {
	return attendanceKey{employeeID: employeeID, date: date.Format("2006-01-02")}
}

type AttendanceRepository struct {
	mu   sync.RWMutex
	rows map[attendanceKey]attendance.Attendance
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{rows: make(map[attendanceKey]attendance.Attendance)}
}

func (r *AttendanceRepository) Upsert(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := newAttendanceKey(att.EmployeeID, att.Date)
	now := time.Now().UTC()

	if existing, ok := r.rows[key]; ok {
		att.ID = existing.ID
		att.CreatedAt = existing.CreatedAt
	} else {
		if att.ID == "" {
			att.ID = uuid.NewString()
		}
		att.CreatedAt = now
	}
	att.UpdatedAt = now

	r.rows[key] = att
	return att, nil
}

func (r *AttendanceRepository) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	att, ok := r.rows[newAttendanceKey(employeeID, date)]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (r *AttendanceRepository) ListByEmployeeAndRange(_ context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []attendance.Attendance
	for _, att := range r.rows {
		if att.EmployeeID != employeeID {
			continue
		}
		if att.Date.Before(from) || att.Date.After(to) {
			continue
		}
		result = append(result, att)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

func (r *AttendanceRepository) ListByDate(_ context.Context, date time.Time) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	day := date.Format("2006-01-02")
	var result []attendance.Attendance
	for key, att := range r.rows {
		if key.date == day {
			result = append(result, att)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].EmployeeID < result[j].EmployeeID
	})
	return result, nil
}
