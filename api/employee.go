package api

import (
	"time"

	"github.com/workforcehq/workforce/internal/validate"
	"github.com/workforcehq/workforce/uid"
)

// Roles assignable to a user credential.
const (
	RoleEmployee = "employee"
	RoleHR       = "hr"
	RoleAdmin    = "admin"
	RoleManager  = "manager"
)

// Employee statuses.
const (
	StatusActive     = "active"
	StatusInactive   = "inactive"
	StatusTerminated = "terminated"
)

var (
	Roles            = []string{RoleEmployee, RoleHR, RoleAdmin, RoleManager}
	EmployeeStatuses = []string{StatusActive, StatusInactive, StatusTerminated}
)

type Employee struct {
	ID           uid.ID  `json:"id"`
	Created      Time    `json:"created"`
	Updated      Time    `json:"updated"`
	EmployeeID   string  `json:"employeeId"`
	LoginID      string  `json:"loginId"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone,omitempty"`
	CompanyName  string  `json:"companyName"`
	Position     string  `json:"position,omitempty"`
	Status       string  `json:"status"`
	HireDate     Time    `json:"hireDate"`
	BaseSalary   float64 `json:"baseSalary,omitempty"`
	DepartmentID uid.ID  `json:"departmentId,omitempty"`
}

type GetEmployeeRequest struct {
	Resource
}

type ListEmployeesRequest struct {
	Status     string `form:"status"`
	Department uid.ID `form:"department"`
	Search     string `form:"search"`
	PaginationRequest
}

func (r ListEmployeesRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Enum("status", r.Status, EmployeeStatuses),
	}
}

type CreateEmployeeRequest struct {
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	CompanyName  string    `json:"companyName"`
	Position     string    `json:"position"`
	Role         string    `json:"role"`
	HireDate     time.Time `json:"hireDate"`
	BaseSalary   float64   `json:"baseSalary"`
	DepartmentID uid.ID    `json:"departmentId"`
}

func (r CreateEmployeeRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("firstName", r.FirstName),
		validate.Required("lastName", r.LastName),
		validate.Required("email", r.Email),
		validate.Email("email", r.Email),
		validate.Enum("role", r.Role, Roles),
		validate.StringRule{Name: "firstName", Value: r.FirstName, MaxLength: 100},
		validate.StringRule{Name: "lastName", Value: r.LastName, MaxLength: 100},
	}
}

// CreateEmployeeResponse includes the issued login ID and the generated
// password. The password is returned here exactly once and is not
// retrievable afterwards.
type CreateEmployeeResponse struct {
	Employee
	Password string `json:"password"`
}

type UpdateEmployeeRequest struct {
	Resource
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Position     string    `json:"position"`
	Status       string    `json:"status"`
	HireDate     time.Time `json:"hireDate"`
	BaseSalary   float64   `json:"baseSalary"`
	DepartmentID uid.ID    `json:"departmentId"`
}

func (r UpdateEmployeeRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("id", r.ID),
		validate.Email("email", r.Email),
		validate.Enum("status", r.Status, EmployeeStatuses),
	}
}
