package server

import (
	"github.com/gin-gonic/gin"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/internal/access"
	"github.com/workforcehq/workforce/internal/server/models"
)

func (a *API) CheckIn(c *gin.Context, _ *api.EmptyRequest) (*api.Attendance, error) {
	attendance, err := access.CheckIn(c)
	if err != nil {
		return nil, err
	}

	return attendance.ToAPI(), nil
}

func (a *API) CheckOut(c *gin.Context, _ *api.EmptyRequest) (*api.Attendance, error) {
	attendance, err := access.CheckOut(c)
	if err != nil {
		return nil, err
	}

	return attendance.ToAPI(), nil
}

func (a *API) ListAttendance(c *gin.Context, r *api.ListAttendanceRequest) (*api.ListResponse[api.Attendance], error) {
	records, p, err := access.ListAttendance(c, r)
	if err != nil {
		return nil, err
	}

	result := api.NewListResponse(records, models.PaginationToResponse(*p), func(attendance models.Attendance) api.Attendance {
		return *attendance.ToAPI()
	})

	return result, nil
}

func (a *API) GetAttendance(c *gin.Context, r *api.GetAttendanceRequest) (*api.Attendance, error) {
	attendance, err := access.GetAttendance(c, r.ID)
	if err != nil {
		return nil, err
	}

	return attendance.ToAPI(), nil
}

func (a *API) CreateAttendance(c *gin.Context, r *api.CreateAttendanceRequest) (*api.Attendance, error) {
	attendance, err := access.CreateAttendance(c, r)
	if err != nil {
		return nil, err
	}

	return attendance.ToAPI(), nil
}

func (a *API) UpdateAttendance(c *gin.Context, r *api.UpdateAttendanceRequest) (*api.Attendance, error) {
	attendance, err := access.UpdateAttendance(c, r)
	if err != nil {
		return nil, err
	}

	return attendance.ToAPI(), nil
}

func (a *API) DeleteAttendance(c *gin.Context, r *api.GetAttendanceRequest) error {
	return access.DeleteAttendance(c, r.ID)
}
