package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/payroll"
)

type PayrollRepository struct {
	mu   sync.RWMutex
	rows map[monthKey]payroll.PayrollRecord
}

func NewPayrollRepository() *PayrollRepository {
	return &PayrollRepository{rows: make(map[monthKey]payroll.PayrollRecord)}
}

func (r *PayrollRepository) Upsert(_ context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := newMonthKey(record.EmployeeID, record.Month)
	if existing, ok := r.rows[key]; ok {
		record.ID = existing.ID
	} else if record.ID == "" {
		record.ID = uuid.NewString()
	}
	record.GeneratedOn = time.Now().UTC()

	r.rows[key] = record
	return record, nil
}

func (r *PayrollRepository) GetByEmployeeAndMonth(_ context.Context, employeeID string, month time.Time) (payroll.PayrollRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.rows[newMonthKey(employeeID, month)]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrPayrollNotFound
	}
	return p, nil
}

func (r *PayrollRepository) ListByMonth(_ context.Context, month time.Time) ([]payroll.PayrollRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := month.Format("2006-01")
	var records []payroll.PayrollRecord
	for k, p := range r.rows {
		if k.month == key {
			records = append(records, p)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].EmployeeID < records[j].EmployeeID
	})
	return records, nil
}
