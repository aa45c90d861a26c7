package employee

import (
	"time"

	"github.com/jivass-tech/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Password         string  `json:"password,omitempty"`
	Gender           *string `json:"gender,omitempty"`
	AccountType      string  `json:"account_type,omitempty"`
	PANNo            *string `json:"pan_no,omitempty"`
	PhoneNo          *string `json:"phone_no,omitempty"`
	EmergencyPhoneNo *string `json:"emergency_phone_no,omitempty"`
	Address          *string `json:"address,omitempty"`
	EmploymentType   string  `json:"employment_type,omitempty"`
	Role             string  `json:"role"`
	Designation      *string `json:"designation,omitempty"`
	DateJoined       string  `json:"date_joined"`
	FeePerMonth      string  `json:"fee_per_month,omitempty"`
	PayStructure     string  `json:"pay_structure,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if len(r.ID) > 6 {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id must not exceed 6 characters"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is invalid"})
	}
	switch Role(r.Role) {
	case RoleAdmin, RoleHR, RoleEmployee:
	default:
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be admin, hr or employee"})
	}
	if _, ok := validator.IsValidDate(r.DateJoined); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_joined", Message: "date_joined must be YYYY-MM-DD"})
	}
	if !validator.IsEmpty(r.FeePerMonth) {
		if _, err := decimal.NewFromString(r.FeePerMonth); err != nil {
			errs = append(errs, validator.ValidationError{Field: "fee_per_month", Message: "fee_per_month must be a decimal number"})
		}
	}
	if !validator.IsEmpty(r.PayStructure) {
		switch PayStructure(r.PayStructure) {
		case PayStructureFixed, PayStructureVariable:
		default:
			errs = append(errs, validator.ValidationError{Field: "pay_structure", Message: "pay_structure must be fixed or variable"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID               string  `json:"id"`
	Name             *string `json:"name,omitempty"`
	Email            *string `json:"email,omitempty"`
	Password         *string `json:"password,omitempty"`
	Gender           *string `json:"gender,omitempty"`
	AccountType      *string `json:"account_type,omitempty"`
	PANNo            *string `json:"pan_no,omitempty"`
	PhoneNo          *string `json:"phone_no,omitempty"`
	EmergencyPhoneNo *string `json:"emergency_phone_no,omitempty"`
	Address          *string `json:"address,omitempty"`
	EmploymentType   *string `json:"employment_type,omitempty"`
	Role             *string `json:"role,omitempty"`
	Designation      *string `json:"designation,omitempty"`
	FeePerMonth      *string `json:"fee_per_month,omitempty"`
	PayStructure     *string `json:"pay_structure,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is invalid"})
	}
	if r.FeePerMonth != nil {
		if _, err := decimal.NewFromString(*r.FeePerMonth); err != nil {
			errs = append(errs, validator.ValidationError{Field: "fee_per_month", Message: "fee_per_month must be a decimal number"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Gender         *string         `json:"gender,omitempty"`
	AccountType    string          `json:"account_type"`
	PANNo          *string         `json:"pan_no,omitempty"`
	PhoneNo        *string         `json:"phone_no,omitempty"`
	Address        *string         `json:"address,omitempty"`
	EmploymentType string          `json:"employment_type"`
	Role           string          `json:"role"`
	Designation    *string         `json:"designation,omitempty"`
	DateJoined     string          `json:"date_joined"`
	FeePerMonth    decimal.Decimal `json:"fee_per_month"`
	PayStructure   string          `json:"pay_structure"`
}

func NewEmployeeResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             emp.ID,
		Name:           emp.Name,
		Email:          emp.Email,
		Gender:         emp.Gender,
		AccountType:    emp.AccountType,
		PANNo:          emp.PANNo,
		PhoneNo:        emp.PhoneNo,
		Address:        emp.Address,
		EmploymentType: string(emp.EmploymentType),
		Role:           string(emp.Role),
		Designation:    emp.Designation,
		DateJoined:     emp.DateJoined.Format(time.DateOnly),
		FeePerMonth:    emp.FeePerMonth,
		PayStructure:   string(emp.PayStructure),
	}
}
