package access

import (
	"errors"
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/internal"
	"github.com/workforcehq/workforce/internal/server/data"
)

func TestCheckInCheckOut(t *testing.T) {
	db := setupDB(t)
	c, self := setupAccessTestContext(t, db, api.RoleEmployee)

	attendance, err := CheckIn(c)
	assert.NilError(t, err)
	assert.Equal(t, attendance.EmployeeID, self.ID)
	assert.Assert(t, !attendance.CheckIn.IsZero())
	assert.Assert(t, attendance.CheckOut.IsZero())

	// one check-in per day
	_, err = CheckIn(c)
	assert.ErrorContains(t, err, "already checked in")

	attendance, err = CheckOut(c)
	assert.NilError(t, err)
	assert.Assert(t, !attendance.CheckOut.IsZero())
	assert.Assert(t, attendance.WorkingHours >= 0)

	_, err = CheckOut(c)
	assert.ErrorContains(t, err, "already checked out")
}

func TestCheckOut_WithoutCheckIn(t *testing.T) {
	db := setupDB(t)
	c, _ := setupAccessTestContext(t, db, api.RoleEmployee)

	_, err := CheckOut(c)
	assert.ErrorContains(t, err, "not checked in")
}

func TestCreateAttendance(t *testing.T) {
	db := setupDB(t)
	c, _ := setupAccessTestContext(t, db, api.RoleHR)
	_, worker := createTestUser(t, db, api.RoleEmployee)

	day := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	attendance, err := CreateAttendance(c, &api.CreateAttendanceRequest{
		EmployeeID: worker.ID,
		Date:       day,
		CheckIn:    day.Add(9 * time.Hour),
		CheckOut:   day.Add(19 * time.Hour),
	})
	assert.NilError(t, err)
	assert.Equal(t, attendance.WorkingHours, float64(10))
	assert.Equal(t, attendance.Overtime, float64(2))
	assert.Equal(t, attendance.Status, api.AttendancePresent)

	// one record per employee per day
	_, err = CreateAttendance(c, &api.CreateAttendanceRequest{
		EmployeeID: worker.ID,
		Date:       day,
	})
	var ucErr data.UniqueConstraintError
	assert.Assert(t, errors.As(err, &ucErr))
}

func TestListAttendance_ScopedToSelf(t *testing.T) {
	db := setupDB(t)

	otherCtx, _ := setupAccessTestContext(t, db, api.RoleEmployee)
	_, err := CheckIn(otherCtx)
	assert.NilError(t, err)

	c, self := setupAccessTestContext(t, db, api.RoleEmployee)
	_, err = CheckIn(c)
	assert.NilError(t, err)

	records, _, err := ListAttendance(c, &api.ListAttendanceRequest{})
	assert.NilError(t, err)
	assert.Equal(t, len(records), 1)
	assert.Equal(t, records[0].EmployeeID, self.ID)

	managerCtx, _ := setupAccessTestContext(t, db, api.RoleManager)
	records, _, err = ListAttendance(managerCtx, &api.ListAttendanceRequest{})
	assert.NilError(t, err)
	assert.Equal(t, len(records), 2)
}

func TestUpdateAttendance_NotAuthorized(t *testing.T) {
	db := setupDB(t)
	c, _ := setupAccessTestContext(t, db, api.RoleManager)

	_, err := UpdateAttendance(c, &api.UpdateAttendanceRequest{
		Resource: api.Resource{ID: 12345},
	})
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestDeleteAttendance_NotFound(t *testing.T) {
	db := setupDB(t)
	c, _ := setupAccessTestContext(t, db, api.RoleAdmin)

	err := DeleteAttendance(c, 12345)
	assert.ErrorIs(t, err, internal.ErrNotFound)
}
