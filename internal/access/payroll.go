package access

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/internal"
	"github.com/workforcehq/workforce/internal/server/data"
	"github.com/workforcehq/workforce/internal/server/models"
	"github.com/workforcehq/workforce/uid"
)

// CreatePayroll creates the pay record for one employee and period. The
// base salary defaults to the employee's current salary. A second
// record for the same employee and period is rejected.
func CreatePayroll(c *gin.Context, r *api.CreatePayrollRequest) (*models.Payroll, error) {
	db, err := RequireRole(c, api.RoleAdmin, api.RoleHR)
	if err != nil {
		return nil, HandleAuthErr(err, "payroll", "create", api.RoleAdmin, api.RoleHR)
	}

	employee, err := data.GetEmployee(db, data.ByID(r.EmployeeID))
	if err != nil {
		return nil, err
	}

	baseSalary := r.BaseSalary
	if baseSalary == 0 {
		baseSalary = employee.BaseSalary
	}

	payroll := &models.Payroll{
		EmployeeID:    employee.ID,
		Month:         r.Month,
		Year:          r.Year,
		BaseSalary:    baseSalary,
		Allowances:    r.Allowances,
		Deductions:    r.Deductions,
		OvertimeHours: r.OvertimeHours,
		OvertimeRate:  r.OvertimeRate,
		Bonuses:       r.Bonuses,
		Status:        api.PayrollPending,
	}
	payroll.Recalculate()

	if err := data.CreatePayroll(db, payroll); err != nil {
		return nil, err
	}
	return payroll, nil
}

func GetPayroll(c *gin.Context, id uid.ID) (*models.Payroll, error) {
	rCtx := GetRequestContext(c)
	if rCtx.Authenticated.User == nil {
		return nil, internal.ErrUnauthorized
	}

	payroll, err := data.GetPayroll(rCtx.DBTxn, data.ByID(id))
	if err != nil {
		return nil, err
	}

	roles := []string{api.RoleAdmin, api.RoleHR}
	if err := IsAuthorized(rCtx, roles...); err != nil {
		self := rCtx.Authenticated.Employee
		if self == nil || self.ID != payroll.EmployeeID {
			return nil, HandleAuthErr(err, "payroll", "get", roles...)
		}
	}

	return payroll, nil
}

// ListPayrolls returns pay records. Users without the admin or hr role
// only see their own records.
func ListPayrolls(c *gin.Context, r *api.ListPayrollsRequest) ([]models.Payroll, *models.Pagination, error) {
	rCtx := GetRequestContext(c)
	if rCtx.Authenticated.User == nil {
		return nil, nil, internal.ErrUnauthorized
	}

	employeeID := r.Employee
	if err := IsAuthorized(rCtx, api.RoleAdmin, api.RoleHR); err != nil {
		self := rCtx.Authenticated.Employee
		if self == nil {
			return nil, nil, internal.ErrUnauthorized
		}
		employeeID = self.ID
	}

	p := models.RequestToPagination(r.PaginationRequest)
	payrolls, err := data.ListPayrolls(rCtx.DBTxn, &p,
		data.ByOptionalEmployeeID(employeeID),
		data.ByOptionalStatus(r.Status),
		data.ByOptionalPeriod(r.Month, r.Year),
	)
	if err != nil {
		return nil, nil, err
	}
	return payrolls, &p, nil
}

func UpdatePayroll(c *gin.Context, r *api.UpdatePayrollRequest) (*models.Payroll, error) {
	db, err := RequireRole(c, api.RoleAdmin, api.RoleHR)
	if err != nil {
		return nil, HandleAuthErr(err, "payroll", "update", api.RoleAdmin, api.RoleHR)
	}

	payroll, err := data.GetPayroll(db, data.ByID(r.ID))
	if err != nil {
		return nil, err
	}

	if r.BaseSalary != nil {
		payroll.BaseSalary = *r.BaseSalary
	}
	if r.Allowances != nil {
		payroll.Allowances = r.Allowances
	}
	if r.Deductions != nil {
		payroll.Deductions = r.Deductions
	}
	if r.OvertimeHours != nil {
		payroll.OvertimeHours = *r.OvertimeHours
	}
	if r.OvertimeRate != nil {
		payroll.OvertimeRate = *r.OvertimeRate
	}
	if r.Bonuses != nil {
		payroll.Bonuses = *r.Bonuses
	}
	if r.Status != "" {
		payroll.Status = r.Status
	}
	if !r.PaymentDate.IsZero() {
		payroll.PaymentDate = r.PaymentDate
	}
	if payroll.Status == api.PayrollPaid && payroll.PaymentDate.IsZero() {
		payroll.PaymentDate = time.Now().UTC()
	}
	payroll.Recalculate()

	if err := data.SavePayroll(db, payroll); err != nil {
		return nil, err
	}
	return payroll, nil
}

func DeletePayroll(c *gin.Context, id uid.ID) error {
	db, err := RequireRole(c, api.RoleAdmin, api.RoleHR)
	if err != nil {
		return HandleAuthErr(err, "payroll", "delete", api.RoleAdmin, api.RoleHR)
	}

	if _, err := data.GetPayroll(db, data.ByID(id)); err != nil {
		return err
	}
	return data.DeletePayroll(db, id)
}
