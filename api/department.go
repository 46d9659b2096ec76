package api

import (
	"github.com/workforcehq/workforce/internal/validate"
	"github.com/workforcehq/workforce/uid"
)

type Department struct {
	ID            uid.ID `json:"id"`
	Created       Time   `json:"created"`
	Updated       Time   `json:"updated"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	ManagerID     uid.ID `json:"managerId,omitempty"`
	EmployeeCount int    `json:"employeeCount"`
}

type GetDepartmentRequest struct {
	Resource
}

type ListDepartmentsRequest struct {
	PaginationRequest
}

func (r ListDepartmentsRequest) ValidationRules() []validate.ValidationRule {
	// rules from the embedded PaginationRequest apply
	return nil
}

type CreateDepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ManagerID   uid.ID `json:"managerId"`
}

func (r CreateDepartmentRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("name", r.Name),
		validate.StringRule{Name: "name", Value: r.Name, MaxLength: 100},
	}
}

type UpdateDepartmentRequest struct {
	Resource
	Name        string `json:"name"`
	Description string `json:"description"`
	ManagerID   uid.ID `json:"managerId"`
}

func (r UpdateDepartmentRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("id", r.ID),
		validate.StringRule{Name: "name", Value: r.Name, MaxLength: 100},
	}
}
