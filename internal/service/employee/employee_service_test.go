package employee

import (
	"context"
	"testing"

	"github.com/jivass-tech/payroll-backend-go/internal/domain/employee"
	"github.com/jivass-tech/payroll-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newService() *Service {
	return NewService(memory.NewEmployeeRepository())
}

func createRequest(id string) employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		ID:          id,
		Name:        "Asha Rao",
		Email:       id + "@example.com",
		Role:        string(employee.RoleEmployee),
		DateJoined:  "2024-02-01",
		FeePerMonth: "60000",
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc := newService()

	emp, err := svc.Create(context.Background(), createRequest("E001"))
	require.NoError(t, err)

	assert.Equal(t, employee.EmploymentFullTime, emp.EmploymentType)
	assert.Equal(t, employee.PayStructureFixed, emp.PayStructure)
	assert.Equal(t, "60000", emp.FeePerMonth.String())
}

func TestCreateHashesPassword(t *testing.T) {
	svc := newService()

	req := createRequest("E001")
	req.Password = "s3cret"
	emp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", emp.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte("s3cret")))
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, createRequest("E001"))
	require.NoError(t, err)

	dup := createRequest("E002")
	dup.Email = "E001@example.com"
	_, err = svc.Create(ctx, dup)
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestCreateValidatesRole(t *testing.T) {
	svc := newService()

	req := createRequest("E001")
	req.Role = "manager"
	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestUpdatePatchesOnlyProvidedFields(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, createRequest("E001"))
	require.NoError(t, err)

	name := "Asha R."
	fee := "65000"
	updated, err := svc.Update(ctx, employee.UpdateEmployeeRequest{
		ID:          "E001",
		Name:        &name,
		FeePerMonth: &fee,
	})
	require.NoError(t, err)

	assert.Equal(t, "Asha R.", updated.Name)
	assert.Equal(t, "65000", updated.FeePerMonth.String())
	assert.Equal(t, "E001@example.com", updated.Email)
}

func TestUpdateUnknownEmployee(t *testing.T) {
	svc := newService()

	name := "Nobody"
	_, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{ID: "E999", Name: &name})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteRemovesEmployee(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, createRequest("E001"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "E001"))
	_, err = svc.GetByID(ctx, "E001")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListByRole(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, createRequest("E001"))
	require.NoError(t, err)
	hr := createRequest("H001")
	hr.Role = string(employee.RoleHR)
	_, err = svc.Create(ctx, hr)
	require.NoError(t, err)

	employees, err := svc.ListByRole(ctx, employee.RoleHR)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "H001", employees[0].ID)
}
