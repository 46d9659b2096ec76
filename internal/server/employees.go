package server

import (
	"github.com/gin-gonic/gin"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/internal/access"
	"github.com/workforcehq/workforce/internal/server/models"
)

func (a *API) ListEmployees(c *gin.Context, r *api.ListEmployeesRequest) (*api.ListResponse[api.Employee], error) {
	employees, p, err := access.ListEmployees(c, r)
	if err != nil {
		return nil, err
	}

	result := api.NewListResponse(employees, models.PaginationToResponse(*p), func(employee models.Employee) api.Employee {
		return *employee.ToAPI()
	})

	return result, nil
}

func (a *API) GetEmployee(c *gin.Context, r *api.GetEmployeeRequest) (*api.Employee, error) {
	employee, err := access.GetEmployee(c, r.ID)
	if err != nil {
		return nil, err
	}

	return employee.ToAPI(), nil
}

// CreateEmployee issues the login ID and generates an initial password.
// The password is included in the response exactly once, it cannot be
// retrieved later.
func (a *API) CreateEmployee(c *gin.Context, r *api.CreateEmployeeRequest) (*api.CreateEmployeeResponse, error) {
	employee, password, err := access.CreateEmployee(c, r)
	if err != nil {
		return nil, err
	}

	return &api.CreateEmployeeResponse{
		Employee: *employee.ToAPI(),
		Password: password,
	}, nil
}

func (a *API) UpdateEmployee(c *gin.Context, r *api.UpdateEmployeeRequest) (*api.Employee, error) {
	employee, err := access.UpdateEmployee(c, r)
	if err != nil {
		return nil, err
	}

	return employee.ToAPI(), nil
}

func (a *API) DeleteEmployee(c *gin.Context, r *api.GetEmployeeRequest) error {
	return access.DeleteEmployee(c, r.ID)
}
