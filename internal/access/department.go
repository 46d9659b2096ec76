package access

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/internal"
	"github.com/workforcehq/workforce/internal/server/data"
	"github.com/workforcehq/workforce/internal/server/models"
	"github.com/workforcehq/workforce/uid"
)

func CreateDepartment(c *gin.Context, department *models.Department) error {
	db, err := RequireRole(c, api.RoleAdmin, api.RoleHR)
	if err != nil {
		return HandleAuthErr(err, "department", "create", api.RoleAdmin, api.RoleHR)
	}
	return data.CreateDepartment(db, department)
}

func GetDepartment(c *gin.Context, id uid.ID) (*models.Department, error) {
	rCtx := GetRequestContext(c)
	if rCtx.Authenticated.User == nil {
		return nil, internal.ErrUnauthorized
	}

	department, err := data.GetDepartment(rCtx.DBTxn, data.ByID(id))
	if err != nil {
		return nil, err
	}

	n, err := data.CountEmployees(rCtx.DBTxn, data.ByDepartment(department.ID))
	if err != nil {
		return nil, err
	}
	department.EmployeeCount = int(n)

	return department, nil
}

func ListDepartments(c *gin.Context, r *api.ListDepartmentsRequest) ([]models.Department, *models.Pagination, error) {
	rCtx := GetRequestContext(c)
	if rCtx.Authenticated.User == nil {
		return nil, nil, internal.ErrUnauthorized
	}

	p := models.RequestToPagination(r.PaginationRequest)
	departments, err := data.ListDepartments(rCtx.DBTxn, &p)
	if err != nil {
		return nil, nil, err
	}
	return departments, &p, nil
}

func UpdateDepartment(c *gin.Context, r *api.UpdateDepartmentRequest) (*models.Department, error) {
	db, err := RequireRole(c, api.RoleAdmin, api.RoleHR)
	if err != nil {
		return nil, HandleAuthErr(err, "department", "update", api.RoleAdmin, api.RoleHR)
	}

	department, err := data.GetDepartment(db, data.ByID(r.ID))
	if err != nil {
		return nil, err
	}

	if r.Name != "" {
		department.Name = r.Name
	}
	if r.Description != "" {
		department.Description = r.Description
	}
	if r.ManagerID != 0 {
		department.ManagerID = r.ManagerID
	}

	if err := data.SaveDepartment(db, department); err != nil {
		return nil, err
	}
	return department, nil
}

// DeleteDepartment removes an empty department. Departments with
// employees cannot be deleted, employees must be reassigned first.
func DeleteDepartment(c *gin.Context, id uid.ID) error {
	db, err := RequireRole(c, api.RoleAdmin)
	if err != nil {
		return HandleAuthErr(err, "department", "delete", api.RoleAdmin)
	}

	department, err := data.GetDepartment(db, data.ByID(id))
	if err != nil {
		return err
	}

	n, err := data.CountEmployees(db, data.ByDepartment(department.ID))
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: department has %d employees, reassign them first", internal.ErrBadRequest, n)
	}

	return data.DeleteDepartment(db, department.ID)
}
