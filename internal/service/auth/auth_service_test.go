package auth

import (
	"context"
	"testing"
	"time"

	"github.com/jivass-tech/payroll-backend-go/internal/domain/auth"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/employee"
	"github.com/jivass-tech/payroll-backend-go/internal/pkg/jwt"
	"github.com/jivass-tech/payroll-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) *Service {
	t.Helper()
	employees := memory.NewEmployeeRepository()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = employees.Create(context.Background(), employee.Employee{
		ID:           "E001",
		Name:         "Asha Rao",
		Email:        "asha@example.com",
		Role:         employee.RoleHR,
		PasswordHash: string(hash),
		DateJoined:   time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	return NewService(employees, jwt.NewJWTService("test-secret", "1h"))
}

func TestLoginIssuesToken(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{EmployeeID: "E001", Password: "s3cret"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
	assert.Equal(t, "E001", resp.EmployeeID)
	assert.Equal(t, "hr", resp.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{EmployeeID: "E001", Password: "nope"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmployee(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{EmployeeID: "E999", Password: "s3cret"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginWithoutStoredPassword(t *testing.T) {
	svc := newAuthService(t)
	_, err := svc.EmployeeRepository.Create(context.Background(), employee.Employee{
		ID:    "E002",
		Name:  "No Password",
		Email: "nopass@example.com",
		Role:  employee.RoleEmployee,
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), auth.LoginRequest{EmployeeID: "E002", Password: "anything"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginValidatesInput(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{EmployeeID: "", Password: ""})
	assert.Error(t, err)
}
