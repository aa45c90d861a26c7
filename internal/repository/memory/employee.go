// Package memory provides mutex-guarded map implementations of the
// repository interfaces. They back the service and engine tests, which
// exercise the same code paths as the PostgreSQL repositories without a
// database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jivass-tech/payroll-backend-go/internal/domain/employee"
)

type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: make(map[string]employee.Employee)}
}

func (r *EmployeeRepository) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[emp.ID]; ok {
		return employee.Employee{}, employee.ErrEmployeeIDExists
	}
	for _, existing := range r.employees {
		if existing.Email == emp.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}

	now := time.Now().UTC()
	emp.CreatedAt = now
	emp.UpdatedAt = now
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *EmployeeRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *EmployeeRepository) Update(_ context.Context, emp employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	for id, existing := range r.employees {
		if id != emp.ID && existing.Email == emp.Email {
			return employee.ErrEmailExists
		}
	}

	emp.UpdatedAt = time.Now().UTC()
	r.employees[emp.ID] = emp
	return nil
}

func (r *EmployeeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

func (r *EmployeeRepository) List(_ context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employees := make([]employee.Employee, 0, len(r.employees))
	for _, emp := range r.employees {
		employees = append(employees, emp)
	}
	sortEmployees(employees)
	return employees, nil
}

func (r *EmployeeRepository) ListByRole(_ context.Context, role employee.Role) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var employees []employee.Employee
	for _, emp := range r.employees {
		if emp.Role == role {
			employees = append(employees, emp)
		}
	}
	sortEmployees(employees)
	return employees, nil
}

func sortEmployees(employees []employee.Employee) {
	sort.Slice(employees, func(i, j int) bool {
		if !employees[i].DateJoined.Equal(employees[j].DateJoined) {
			return employees[i].DateJoined.Before(employees[j].DateJoined)
		}
		return employees[i].ID < employees[j].ID
	})
}
