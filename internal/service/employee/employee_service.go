package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/jivass-tech/payroll-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	employee.EmployeeRepository
}

func NewService(employeeRepo employee.EmployeeRepository) *Service {
	return &Service{EmployeeRepository: employeeRepo}
}

func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	dateJoined, _ := time.Parse(time.DateOnly, req.DateJoined)

	emp := employee.Employee{
		ID:               req.ID,
		Name:             req.Name,
		Email:            req.Email,
		Gender:           req.Gender,
		AccountType:      req.AccountType,
		PANNo:            req.PANNo,
		PhoneNo:          req.PhoneNo,
		EmergencyPhoneNo: req.EmergencyPhoneNo,
		Address:          req.Address,
		EmploymentType:   employee.EmploymentType(req.EmploymentType),
		Role:             employee.Role(req.Role),
		Designation:      req.Designation,
		DateJoined:       dateJoined,
		PayStructure:     employee.PayStructure(req.PayStructure),
	}
	if emp.EmploymentType == "" {
		emp.EmploymentType = employee.EmploymentFullTime
	}
	if emp.PayStructure == "" {
		emp.PayStructure = employee.PayStructureFixed
	}
	if req.FeePerMonth != "" {
		emp.FeePerMonth, _ = decimal.NewFromString(req.FeePerMonth)
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to hash password: %w", err)
		}
		emp.PasswordHash = string(hash)
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Gender != nil {
		emp.Gender = req.Gender
	}
	if req.AccountType != nil {
		emp.AccountType = *req.AccountType
	}
	if req.PANNo != nil {
		emp.PANNo = req.PANNo
	}
	if req.PhoneNo != nil {
		emp.PhoneNo = req.PhoneNo
	}
	if req.EmergencyPhoneNo != nil {
		emp.EmergencyPhoneNo = req.EmergencyPhoneNo
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.EmploymentType != nil {
		emp.EmploymentType = employee.EmploymentType(*req.EmploymentType)
	}
	if req.Role != nil {
		emp.Role = employee.Role(*req.Role)
	}
	if req.Designation != nil {
		emp.Designation = req.Designation
	}
	if req.FeePerMonth != nil {
		emp.FeePerMonth, _ = decimal.NewFromString(*req.FeePerMonth)
	}
	if req.PayStructure != nil {
		emp.PayStructure = employee.PayStructure(*req.PayStructure)
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to hash password: %w", err)
		}
		emp.PasswordHash = string(hash)
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return emp, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return s.EmployeeRepository.GetByID(ctx, id)
}

// Delete removes the employee; attendance, leave, rollup, and payroll
// rows go with it.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.EmployeeRepository.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]employee.Employee, error) {
	return s.EmployeeRepository.List(ctx)
}

func (s *Service) ListByRole(ctx context.Context, role employee.Role) ([]employee.Employee, error) {
	return s.EmployeeRepository.ListByRole(ctx, role)
}
