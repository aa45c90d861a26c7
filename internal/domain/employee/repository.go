package employee

import "context"

// EmployeeRepository defines data access for the employee directory.
// Deleting an employee cascades to its attendance, leave request,
// leave details, and payroll rows via foreign keys.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Employee, error)
	ListByRole(ctx context.Context, role Role) ([]Employee, error)
}
