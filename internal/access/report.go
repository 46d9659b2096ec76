package access

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/internal"
	"github.com/workforcehq/workforce/internal/server/data"
)

// DashboardReport is available to every authenticated user, matching
// the dashboard page which all roles can open.
func DashboardReport(c *gin.Context) (*api.DashboardReport, error) {
	rCtx := GetRequestContext(c)
	if rCtx.Authenticated.User == nil {
		return nil, internal.ErrUnauthorized
	}
	return data.DashboardReport(rCtx.DBTxn, time.Now().UTC())
}

func AttendanceReport(c *gin.Context, r *api.AttendanceReportRequest) ([]api.AttendanceReportRow, error) {
	roles := []string{api.RoleAdmin, api.RoleHR, api.RoleManager}
	db, err := RequireRole(c, roles...)
	if err != nil {
		return nil, HandleAuthErr(err, "attendance report", "get", roles...)
	}
	return data.AttendanceReport(db, r.Employee, r.StartDate, r.EndDate)
}

func LeaveReport(c *gin.Context, r *api.LeaveReportRequest) ([]api.LeaveReportRow, error) {
	roles := []string{api.RoleAdmin, api.RoleHR, api.RoleManager}
	db, err := RequireRole(c, roles...)
	if err != nil {
		return nil, HandleAuthErr(err, "leave report", "get", roles...)
	}
	return data.LeaveReport(db, r.Employee, r.Year)
}

func PayrollReport(c *gin.Context, r *api.PayrollReportRequest) ([]api.PayrollReportRow, error) {
	db, err := RequireRole(c, api.RoleAdmin, api.RoleHR)
	if err != nil {
		return nil, HandleAuthErr(err, "payroll report", "get", api.RoleAdmin, api.RoleHR)
	}
	return data.PayrollReport(db, r.Month, r.Year)
}

// DepartmentReport is available to every authenticated user.
func DepartmentReport(c *gin.Context) ([]api.DepartmentReportRow, error) {
	rCtx := GetRequestContext(c)
	if rCtx.Authenticated.User == nil {
		return nil, internal.ErrUnauthorized
	}
	return data.DepartmentReport(rCtx.DBTxn)
}
