package access

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gotest.tools/v3/assert"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/internal"
	"github.com/workforcehq/workforce/internal/generate"
	"github.com/workforcehq/workforce/internal/server/data"
)

func TestCreateEmployee(t *testing.T) {
	db := setupDB(t)
	c, _ := setupAccessTestContext(t, db, api.RoleAdmin)
	rCtx := GetRequestContext(c)

	employee, password, err := CreateEmployee(c, &api.CreateEmployeeRequest{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "jdoe@example.com",
		CompanyName: "Acme Corp",
		Position:    "Engineer",
		HireDate:    time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
		BaseSalary:  5000,
	})
	assert.NilError(t, err)

	assert.Equal(t, employee.LoginID, "ACJODO20230001")
	assert.Equal(t, employee.EmployeeID, "EMP0001")
	assert.Equal(t, employee.Status, api.StatusActive)
	assert.Equal(t, len(password), generate.PasswordLength)

	// the credential was created in the same transaction
	credential, err := data.GetCredential(rCtx.DBTxn, data.ByEmployeeID(employee.ID))
	assert.NilError(t, err)
	assert.Equal(t, credential.LoginID, employee.LoginID)
	assert.Equal(t, credential.Email, "jdoe@example.com")
	assert.Equal(t, credential.Role, api.RoleEmployee)
	assert.NilError(t, bcrypt.CompareHashAndPassword(credential.PasswordHash, []byte(password)))
}

func TestCreateEmployee_SequentialSerials(t *testing.T) {
	db := setupDB(t)
	c, _ := setupAccessTestContext(t, db, api.RoleHR)

	req := func(email string) *api.CreateEmployeeRequest {
		return &api.CreateEmployeeRequest{
			FirstName:   "John",
			LastName:    "Doe",
			Email:       email,
			CompanyName: "Acme Corp",
			HireDate:    time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	first, _, err := CreateEmployee(c, req("jdoe@example.com"))
	assert.NilError(t, err)
	assert.Equal(t, first.LoginID, "ACJODO20230001")

	second, _, err := CreateEmployee(c, req("john.doe@example.com"))
	assert.NilError(t, err)
	assert.Equal(t, second.LoginID, "ACJODO20230002")
	assert.Equal(t, second.EmployeeID, "EMP0002")
}

func TestCreateEmployee_DistinctYearsShareNothing(t *testing.T) {
	db := setupDB(t)
	c, _ := setupAccessTestContext(t, db, api.RoleAdmin)

	first, _, err := CreateEmployee(c, &api.CreateEmployeeRequest{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "jdoe@example.com",
		CompanyName: "Acme Corp",
		HireDate:    time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.NilError(t, err)
	assert.Equal(t, first.LoginID, "ACJODO20230001")

	second, _, err := CreateEmployee(c, &api.CreateEmployeeRequest{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "jdoe2@example.com",
		CompanyName: "Acme Corp",
		HireDate:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.NilError(t, err)
	// a new hire year starts its own serial sequence
	assert.Equal(t, second.LoginID, "ACJODO20240001")
}

func TestCreateEmployee_NotAuthorized(t *testing.T) {
	db := setupDB(t)
	c, _ := setupAccessTestContext(t, db, api.RoleEmployee)

	_, _, err := CreateEmployee(c, &api.CreateEmployeeRequest{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "jdoe@example.com",
		CompanyName: "Acme Corp",
	})
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestCreateEmployee_DuplicateEmail(t *testing.T) {
	db := setupDB(t)
	c, _ := setupAccessTestContext(t, db, api.RoleAdmin)

	req := &api.CreateEmployeeRequest{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "jdoe@example.com",
		CompanyName: "Acme Corp",
	}
	_, _, err := CreateEmployee(c, req)
	assert.NilError(t, err)

	_, _, err = CreateEmployee(c, req)
	var ucErr data.UniqueConstraintError
	assert.Assert(t, errors.As(err, &ucErr))
}

func TestGetEmployee_SelfAccess(t *testing.T) {
	db := setupDB(t)
	c, self := setupAccessTestContext(t, db, api.RoleEmployee)

	// reading the own record is allowed
	employee, err := GetEmployee(c, self.ID)
	assert.NilError(t, err)
	assert.Equal(t, employee.ID, self.ID)

	// reading someone else's record is not
	_, other := createTestUser(t, db, api.RoleEmployee)
	_, err = GetEmployee(c, other.ID)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestUpdateEmployee_SyncsCredentialEmail(t *testing.T) {
	db := setupDB(t)
	c, _ := setupAccessTestContext(t, db, api.RoleHR)
	rCtx := GetRequestContext(c)

	employee, _, err := CreateEmployee(c, &api.CreateEmployeeRequest{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "jdoe@example.com",
		CompanyName: "Acme Corp",
	})
	assert.NilError(t, err)

	updated, err := UpdateEmployee(c, &api.UpdateEmployeeRequest{
		Resource: api.Resource{ID: employee.ID},
		Email:    "john.doe@example.com",
		Status:   api.StatusInactive,
	})
	assert.NilError(t, err)
	assert.Equal(t, updated.Email, "john.doe@example.com")
	assert.Equal(t, updated.Status, api.StatusInactive)

	credential, err := data.GetCredential(rCtx.DBTxn, data.ByEmployeeID(employee.ID))
	assert.NilError(t, err)
	assert.Equal(t, credential.Email, "john.doe@example.com")
}

func TestDeleteEmployee_RevokesCredential(t *testing.T) {
	db := setupDB(t)
	c, _ := setupAccessTestContext(t, db, api.RoleAdmin)
	rCtx := GetRequestContext(c)

	employee, _, err := CreateEmployee(c, &api.CreateEmployeeRequest{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "jdoe@example.com",
		CompanyName: "Acme Corp",
	})
	assert.NilError(t, err)

	assert.NilError(t, DeleteEmployee(c, employee.ID))

	_, err = data.GetEmployee(rCtx.DBTxn, data.ByID(employee.ID))
	assert.ErrorIs(t, err, internal.ErrNotFound)

	_, err = data.GetCredential(rCtx.DBTxn, data.ByEmployeeID(employee.ID))
	assert.ErrorIs(t, err, internal.ErrNotFound)
}

func TestSignup(t *testing.T) {
	db := setupDB(t)

	c := unauthenticatedContext(t, db)
	user, employee, err := Signup(c, &api.SignupRequest{
		FirstName:   "Ada",
		LastName:    "Admin",
		Email:       "ada@example.com",
		Password:    "super-secret-password",
		CompanyName: "Acme Corp",
	})
	assert.NilError(t, err)
	assert.Equal(t, user.Role, api.RoleAdmin)
	assert.Equal(t, employee.CompanyName, "Acme Corp")
	assert.Assert(t, employee.LoginID != "")

	// a second signup is rejected
	_, _, err = Signup(c, &api.SignupRequest{
		FirstName:   "Bob",
		LastName:    "Builder",
		Email:       "bob@example.com",
		Password:    "super-secret-password",
		CompanyName: "Acme Corp",
	})
	assert.ErrorIs(t, err, internal.ErrBadRequest)
}
