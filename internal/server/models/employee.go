package models

import (
	"time"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/uid"
)

type Employee struct {
	Model

	EmployeeID   string `gorm:"uniqueIndex:,where:deleted_at is NULL"`
	LoginID      string `gorm:"uniqueIndex:,where:deleted_at is NULL"`
	FirstName    string
	LastName     string
	Email        string `gorm:"uniqueIndex:,where:deleted_at is NULL"`
	Phone        string
	CompanyName  string
	Position     string
	Status       string
	HireDate     time.Time
	BaseSalary   float64
	DepartmentID uid.ID
}

// Name is the display name used in reports and list responses.
func (e *Employee) Name() string {
	return e.FirstName + " " + e.LastName
}

func (e *Employee) ToAPI() *api.Employee {
	return &api.Employee{
		ID:           e.ID,
		Created:      api.Time(e.CreatedAt),
		Updated:      api.Time(e.UpdatedAt),
		EmployeeID:   e.EmployeeID,
		LoginID:      e.LoginID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		Phone:        e.Phone,
		CompanyName:  e.CompanyName,
		Position:     e.Position,
		Status:       e.Status,
		HireDate:     api.Time(e.HireDate),
		BaseSalary:   e.BaseSalary,
		DepartmentID: e.DepartmentID,
	}
}
