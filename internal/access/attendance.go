package access

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/internal"
	"github.com/workforcehq/workforce/internal/server/data"
	"github.com/workforcehq/workforce/internal/server/models"
	"github.com/workforcehq/workforce/uid"
)

// checkInDeadline is the time of day after which a check-in is marked
// late. All attendance times use UTC.
const checkInDeadline = 9 * time.Hour

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckIn records the authenticated employee's arrival for today. A
// second check-in on the same day is rejected.
func CheckIn(c *gin.Context) (*models.Attendance, error) {
	rCtx := GetRequestContext(c)
	self := rCtx.Authenticated.Employee
	if self == nil {
		return nil, internal.ErrUnauthorized
	}
	db := rCtx.DBTxn

	now := time.Now().UTC()
	day := startOfDay(now)

	_, err := data.GetAttendance(db, data.ByEmployeeID(self.ID), data.ByDay(day))
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: already checked in today", internal.ErrBadRequest)
	case !errors.Is(err, internal.ErrNotFound):
		return nil, err
	}

	status := api.AttendancePresent
	if now.Sub(day) > checkInDeadline {
		status = api.AttendanceLate
	}

	attendance := &models.Attendance{
		EmployeeID: self.ID,
		Date:       day,
		CheckIn:    now,
		Status:     status,
	}
	if err := data.CreateAttendance(db, attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

// CheckOut completes today's attendance record and computes the worked
// hours.
func CheckOut(c *gin.Context) (*models.Attendance, error) {
	rCtx := GetRequestContext(c)
	self := rCtx.Authenticated.Employee
	if self == nil {
		return nil, internal.ErrUnauthorized
	}
	db := rCtx.DBTxn

	now := time.Now().UTC()
	day := startOfDay(now)

	attendance, err := data.GetAttendance(db, data.ByEmployeeID(self.ID), data.ByDay(day))
	switch {
	case errors.Is(err, internal.ErrNotFound):
		return nil, fmt.Errorf("%w: not checked in today", internal.ErrBadRequest)
	case err != nil:
		return nil, err
	}

	if !attendance.CheckOut.IsZero() {
		return nil, fmt.Errorf("%w: already checked out today", internal.ErrBadRequest)
	}

	attendance.CheckOut = now
	attendance.Recalculate()

	if err := data.SaveAttendance(db, attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

// CreateAttendance records attendance on behalf of an employee, for
// corrections and backfill.
func CreateAttendance(c *gin.Context, r *api.CreateAttendanceRequest) (*models.Attendance, error) {
	db, err := RequireRole(c, api.RoleAdmin, api.RoleHR)
	if err != nil {
		return nil, HandleAuthErr(err, "attendance", "create", api.RoleAdmin, api.RoleHR)
	}

	if _, err := data.GetEmployee(db, data.ByID(r.EmployeeID)); err != nil {
		return nil, err
	}

	status := r.Status
	if status == "" {
		status = api.AttendancePresent
	}

	attendance := &models.Attendance{
		EmployeeID: r.EmployeeID,
		Date:       startOfDay(r.Date),
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		Status:     status,
		Notes:      r.Notes,
	}
	attendance.Recalculate()

	if err := data.CreateAttendance(db, attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

func GetAttendance(c *gin.Context, id uid.ID) (*models.Attendance, error) {
	rCtx := GetRequestContext(c)
	if rCtx.Authenticated.User == nil {
		return nil, internal.ErrUnauthorized
	}

	attendance, err := data.GetAttendance(rCtx.DBTxn, data.ByID(id))
	if err != nil {
		return nil, err
	}

	roles := []string{api.RoleAdmin, api.RoleHR, api.RoleManager}
	if err := IsAuthorized(rCtx, roles...); err != nil {
		self := rCtx.Authenticated.Employee
		if self == nil || self.ID != attendance.EmployeeID {
			return nil, HandleAuthErr(err, "attendance", "get", roles...)
		}
	}

	return attendance, nil
}

// ListAttendance returns attendance records. Users without a reviewer
// role only see their own records.
func ListAttendance(c *gin.Context, r *api.ListAttendanceRequest) ([]models.Attendance, *models.Pagination, error) {
	rCtx := GetRequestContext(c)
	if rCtx.Authenticated.User == nil {
		return nil, nil, internal.ErrUnauthorized
	}

	employeeID := r.Employee
	if err := IsAuthorized(rCtx, api.RoleAdmin, api.RoleHR, api.RoleManager); err != nil {
		self := rCtx.Authenticated.Employee
		if self == nil {
			return nil, nil, internal.ErrUnauthorized
		}
		employeeID = self.ID
	}

	p := models.RequestToPagination(r.PaginationRequest)
	records, err := data.ListAttendance(rCtx.DBTxn, &p,
		data.ByOptionalEmployeeID(employeeID),
		data.ByOptionalStatus(r.Status),
		data.ByDateRange("date", r.StartDate, r.EndDate),
	)
	if err != nil {
		return nil, nil, err
	}
	return records, &p, nil
}

func UpdateAttendance(c *gin.Context, r *api.UpdateAttendanceRequest) (*models.Attendance, error) {
	db, err := RequireRole(c, api.RoleAdmin, api.RoleHR)
	if err != nil {
		return nil, HandleAuthErr(err, "attendance", "update", api.RoleAdmin, api.RoleHR)
	}

	attendance, err := data.GetAttendance(db, data.ByID(r.ID))
	if err != nil {
		return nil, err
	}

	if !r.CheckIn.IsZero() {
		attendance.CheckIn = r.CheckIn
	}
	if !r.CheckOut.IsZero() {
		attendance.CheckOut = r.CheckOut
	}
	if r.Status != "" {
		attendance.Status = r.Status
	}
	if r.Notes != "" {
		attendance.Notes = r.Notes
	}
	attendance.Recalculate()

	if err := data.SaveAttendance(db, attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

func DeleteAttendance(c *gin.Context, id uid.ID) error {
	db, err := RequireRole(c, api.RoleAdmin, api.RoleHR)
	if err != nil {
		return HandleAuthErr(err, "attendance", "delete", api.RoleAdmin, api.RoleHR)
	}

	if _, err := data.GetAttendance(db, data.ByID(id)); err != nil {
		return err
	}
	return data.DeleteAttendance(db, id)
}
