package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

// ApprovesRole returns the requester role whose leave requests and
// attendance this role manages: HR manages employees, admin manages HR.
func (r Role) ApprovesRole() (Role, bool) {
	switch r {
	case RoleAdmin:
		return RoleHR, true
	case RoleHR:
		return RoleEmployee, true
	default:
		return "", false
	}
}

type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full_time"
	EmploymentPartTime EmploymentType = "part_time"
)

type PayStructure string

const (
	PayStructureFixed    PayStructure = "fixed"
	PayStructureVariable PayStructure = "variable"
)

type Employee struct {
	ID               string
	Name             string
	Email            string
	PasswordHash     string
	Gender           *string
	AccountType      string
	PANNo            *string
	PhoneNo          *string
	EmergencyPhoneNo *string
	Address          *string
	EmploymentType   EmploymentType
	Role             Role
	Designation      *string
	DateJoined       time.Time
	FeePerMonth      decimal.Decimal
	PayStructure     PayStructure
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
