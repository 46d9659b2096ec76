package server

import (
	"github.com/gin-gonic/gin"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/internal/access"
	"github.com/workforcehq/workforce/internal/server/models"
)

func (a *API) ListDepartments(c *gin.Context, r *api.ListDepartmentsRequest) (*api.ListResponse[api.Department], error) {
	departments, p, err := access.ListDepartments(c, r)
	if err != nil {
		return nil, err
	}

	result := api.NewListResponse(departments, models.PaginationToResponse(*p), func(department models.Department) api.Department {
		return *department.ToAPI()
	})

	return result, nil
}

func (a *API) GetDepartment(c *gin.Context, r *api.GetDepartmentRequest) (*api.Department, error) {
	department, err := access.GetDepartment(c, r.ID)
	if err != nil {
		return nil, err
	}

	return department.ToAPI(), nil
}

func (a *API) CreateDepartment(c *gin.Context, r *api.CreateDepartmentRequest) (*api.Department, error) {
	department := &models.Department{
		Name:        r.Name,
		Description: r.Description,
		ManagerID:   r.ManagerID,
	}

	if err := access.CreateDepartment(c, department); err != nil {
		return nil, err
	}

	return department.ToAPI(), nil
}

func (a *API) UpdateDepartment(c *gin.Context, r *api.UpdateDepartmentRequest) (*api.Department, error) {
	department, err := access.UpdateDepartment(c, r)
	if err != nil {
		return nil, err
	}

	return department.ToAPI(), nil
}

func (a *API) DeleteDepartment(c *gin.Context, r *api.GetDepartmentRequest) error {
	return access.DeleteDepartment(c, r.ID)
}
