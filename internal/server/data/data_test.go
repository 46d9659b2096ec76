package data

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"
	"gotest.tools/v3/assert"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/internal/server/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	driver, err := NewSQLiteDriver("file::memory:")
	assert.NilError(t, err)

	db, err := NewDB(driver)
	assert.NilError(t, err)

	return db
}

func createTestEmployee(t *testing.T, db *gorm.DB, loginID, email string) *models.Employee {
	t.Helper()

	employee := &models.Employee{
		EmployeeID:  "EMP" + loginID[len(loginID)-4:],
		LoginID:     loginID,
		FirstName:   "Test",
		LastName:    "Employee",
		Email:       email,
		CompanyName: "Acme Corp",
		Status:      api.StatusActive,
		HireDate:    time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		BaseSalary:  5000,
	}
	assert.NilError(t, CreateEmployee(db, employee))
	return employee
}

func TestCreateEmployee_DuplicateLoginID(t *testing.T) {
	db := setupDB(t)

	createTestEmployee(t, db, "ACTEEM20230001", "one@example.com")

	err := CreateEmployee(db, &models.Employee{
		EmployeeID:  "EMP0002",
		LoginID:     "ACTEEM20230001",
		FirstName:   "Other",
		LastName:    "Employee",
		Email:       "two@example.com",
		CompanyName: "Acme Corp",
	})

	var ucErr UniqueConstraintError
	assert.Assert(t, err != nil)
	assert.Assert(t, errors.As(err, &ucErr))
	assert.Equal(t, ucErr.Table, "employees")
}

func TestCreateEmployee_DuplicateEmail(t *testing.T) {
	db := setupDB(t)

	createTestEmployee(t, db, "ACTEEM20230001", "same@example.com")

	err := CreateEmployee(db, &models.Employee{
		EmployeeID:  "EMP0002",
		LoginID:     "ACTEEM20230002",
		FirstName:   "Other",
		LastName:    "Employee",
		Email:       "same@example.com",
		CompanyName: "Acme Corp",
	})

	var ucErr UniqueConstraintError
	assert.Assert(t, errors.As(err, &ucErr))
	assert.Equal(t, ucErr.Column, "email")
}

func TestListEmployees_Search(t *testing.T) {
	db := setupDB(t)

	alice := &models.Employee{
		EmployeeID:  "EMP0099",
		LoginID:     "ACALWO20230001",
		FirstName:   "Alice",
		LastName:    "Wonder",
		Email:       "alice@example.com",
		CompanyName: "Acme Corp",
	}
	assert.NilError(t, CreateEmployee(db, alice))
	createTestEmployee(t, db, "ACTEEM20230001", "bob@example.com")

	found, err := ListEmployees(db, nil, ByEmployeeSearch("alice"))
	assert.NilError(t, err)
	assert.Equal(t, len(found), 1)
	assert.Equal(t, found[0].ID, alice.ID)

	found, err = ListEmployees(db, nil, ByEmployeeSearch("ACALWO"))
	assert.NilError(t, err)
	assert.Equal(t, len(found), 1)

	found, err = ListEmployees(db, nil, ByEmployeeSearch("nobody"))
	assert.NilError(t, err)
	assert.Equal(t, len(found), 0)
}

func TestListEmployees_Pagination(t *testing.T) {
	db := setupDB(t)

	for i := 1; i <= 5; i++ {
		employee := &models.Employee{
			EmployeeID:  "EMP000" + string(rune('0'+i)),
			LoginID:     "ACTEEM2023000" + string(rune('0'+i)),
			FirstName:   "Test",
			LastName:    "Employee",
			Email:       string(rune('a'+i)) + "@example.com",
			CompanyName: "Acme Corp",
		}
		assert.NilError(t, CreateEmployee(db, employee))
	}

	p := &models.Pagination{Page: 2, Limit: 2}
	found, err := ListEmployees(db, p)
	assert.NilError(t, err)
	assert.Equal(t, len(found), 2)
	assert.Equal(t, p.TotalCount, 5)
	assert.Equal(t, p.PageCount, 3)
}
