package server

import (
	"github.com/gin-gonic/gin"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/internal/access"
)

func (a *API) DashboardReport(c *gin.Context, _ *api.EmptyRequest) (*api.DashboardReport, error) {
	return access.DashboardReport(c)
}

func (a *API) AttendanceReport(c *gin.Context, r *api.AttendanceReportRequest) (*api.ListResponse[api.AttendanceReportRow], error) {
	rows, err := access.AttendanceReport(c, r)
	if err != nil {
		return nil, err
	}

	return api.NewListResponse(rows, api.PaginationResponse{}, func(row api.AttendanceReportRow) api.AttendanceReportRow {
		return row
	}), nil
}

func (a *API) LeaveReport(c *gin.Context, r *api.LeaveReportRequest) (*api.ListResponse[api.LeaveReportRow], error) {
	rows, err := access.LeaveReport(c, r)
	if err != nil {
		return nil, err
	}

	return api.NewListResponse(rows, api.PaginationResponse{}, func(row api.LeaveReportRow) api.LeaveReportRow {
		return row
	}), nil
}

func (a *API) PayrollReport(c *gin.Context, r *api.PayrollReportRequest) (*api.ListResponse[api.PayrollReportRow], error) {
	rows, err := access.PayrollReport(c, r)
	if err != nil {
		return nil, err
	}

	return api.NewListResponse(rows, api.PaginationResponse{}, func(row api.PayrollReportRow) api.PayrollReportRow {
		return row
	}), nil
}

func (a *API) DepartmentReport(c *gin.Context, _ *api.EmptyRequest) (*api.ListResponse[api.DepartmentReportRow], error) {
	rows, err := access.DepartmentReport(c)
	if err != nil {
		return nil, err
	}

	return api.NewListResponse(rows, api.PaginationResponse{}, func(row api.DepartmentReportRow) api.DepartmentReportRow {
		return row
	}), nil
}
