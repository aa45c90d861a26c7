package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/leavedetails"
)

type monthKey struct {
	employeeID string
	month      string
}

func newMonthKey(employeeID string, month time.Time) monthKey {
	return monthKey{employeeID: employeeID, month: month.Format("2006-01")}
}

type LeaveDetailsRepository struct {
	mu   sync.RWMutex
	rows map[monthKey]leavedetails.LeaveDetails
}

func NewLeaveDetailsRepository() *LeaveDetailsRepository {
	return &LeaveDetailsRepository{rows: make(map[monthKey]leavedetails.LeaveDetails)}
}

func (r *LeaveDetailsRepository) Upsert(_ context.Context, details leavedetails.LeaveDetails) (leavedetails.LeaveDetails, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := newMonthKey(details.EmployeeID, details.Month)
	if existing, ok := r.rows[key]; ok {
		details.ID = existing.ID
	} else if details.ID == "" {
		details.ID = uuid.NewString()
	}
	details.GeneratedAt = time.Now().UTC()

	r.rows[key] = details
	return details, nil
}

func (r *LeaveDetailsRepository) GetByEmployeeAndMonth(_ context.Context, employeeID string, month time.Time) (leavedetails.LeaveDetails, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.rows[newMonthKey(employeeID, month)]
	if !ok {
		return leavedetails.LeaveDetails{}, leavedetails.ErrLeaveDetailsNotFound
	}
	return d, nil
}

func (r *LeaveDetailsRepository) GetLatestBefore(_ context.Context, employeeID string, month time.Time) (*leavedetails.LeaveDetails, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *leavedetails.LeaveDetails
	for _, d := range r.rows {
		if d.EmployeeID != employeeID || !d.Month.Before(month) {
			continue
		}
		if latest == nil || d.Month.After(latest.Month) {
			copied := d
			latest = &copied
		}
	}
	return latest, nil
}
