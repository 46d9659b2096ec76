package server

import (
	"github.com/gin-gonic/gin"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/internal/access"
	"github.com/workforcehq/workforce/internal/server/models"
)

func (a *API) ListPayrolls(c *gin.Context, r *api.ListPayrollsRequest) (*api.ListResponse[api.Payroll], error) {
	payrolls, p, err := access.ListPayrolls(c, r)
	if err != nil {
		return nil, err
	}

	result := api.NewListResponse(payrolls, models.PaginationToResponse(*p), func(payroll models.Payroll) api.Payroll {
		return *payroll.ToAPI()
	})

	return result, nil
}

func (a *API) GetPayroll(c *gin.Context, r *api.GetPayrollRequest) (*api.Payroll, error) {
	payroll, err := access.GetPayroll(c, r.ID)
	if err != nil {
		return nil, err
	}

	return payroll.ToAPI(), nil
}

func (a *API) CreatePayroll(c *gin.Context, r *api.CreatePayrollRequest) (*api.Payroll, error) {
	payroll, err := access.CreatePayroll(c, r)
	if err != nil {
		return nil, err
	}

	return payroll.ToAPI(), nil
}

func (a *API) UpdatePayroll(c *gin.Context, r *api.UpdatePayrollRequest) (*api.Payroll, error) {
	payroll, err := access.UpdatePayroll(c, r)
	if err != nil {
		return nil, err
	}

	return payroll.ToAPI(), nil
}

func (a *API) DeletePayroll(c *gin.Context, r *api.GetPayrollRequest) error {
	return access.DeletePayroll(c, r.ID)
}
