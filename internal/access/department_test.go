package access

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/internal"
	"github.com/workforcehq/workforce/internal/server/data"
	"github.com/workforcehq/workforce/internal/server/models"
)

func TestDeleteDepartment(t *testing.T) {
	db := setupDB(t)
	adminCtx, _ := setupAccessTestContext(t, db, api.RoleAdmin)

	department := &models.Department{Name: "Engineering"}
	assert.NilError(t, CreateDepartment(adminCtx, department))

	employee, _, err := CreateEmployee(adminCtx, &api.CreateEmployeeRequest{
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "jdoe@example.com",
		CompanyName:  "Acme Corp",
		DepartmentID: department.ID,
	})
	assert.NilError(t, err)

	// departments with employees cannot be removed
	err = DeleteDepartment(adminCtx, department.ID)
	assert.ErrorIs(t, err, internal.ErrBadRequest)
	assert.ErrorContains(t, err, "reassign")

	assert.NilError(t, DeleteEmployee(adminCtx, employee.ID))
	assert.NilError(t, DeleteDepartment(adminCtx, department.ID))
}

func TestDeleteDepartment_RequiresAdmin(t *testing.T) {
	db := setupDB(t)
	hrCtx, _ := setupAccessTestContext(t, db, api.RoleHR)

	department := &models.Department{Name: "Engineering"}
	assert.NilError(t, CreateDepartment(hrCtx, department))

	err := DeleteDepartment(hrCtx, department.ID)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestListDepartments_EmployeeCounts(t *testing.T) {
	db := setupDB(t)
	c, _ := setupAccessTestContext(t, db, api.RoleHR)

	department := &models.Department{Name: "Engineering"}
	assert.NilError(t, CreateDepartment(c, department))

	_, _, err := CreateEmployee(c, &api.CreateEmployeeRequest{
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "jdoe@example.com",
		CompanyName:  "Acme Corp",
		DepartmentID: department.ID,
	})
	assert.NilError(t, err)

	departments, _, err := ListDepartments(c, &api.ListDepartmentsRequest{})
	assert.NilError(t, err)
	assert.Equal(t, len(departments), 1)
	assert.Equal(t, departments[0].EmployeeCount, 1)
}

func TestCreateDepartment_DuplicateName(t *testing.T) {
	db := setupDB(t)
	c, _ := setupAccessTestContext(t, db, api.RoleAdmin)

	assert.NilError(t, CreateDepartment(c, &models.Department{Name: "Engineering"}))

	err := CreateDepartment(c, &models.Department{Name: "Engineering"})
	var ucErr data.UniqueConstraintError
	assert.Assert(t, errors.As(err, &ucErr))
}
