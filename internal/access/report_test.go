package access

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/internal"
)

func TestDashboardReport_AnyAuthenticatedUser(t *testing.T) {
	db := setupDB(t)

	c, _ := setupAccessTestContext(t, db, api.RoleEmployee)
	report, err := DashboardReport(c)
	assert.NilError(t, err)
	assert.Assert(t, report.TotalEmployees >= 1)

	// without a session the report is refused
	_, err = DashboardReport(unauthenticatedContext(t, db))
	assert.ErrorIs(t, err, internal.ErrUnauthorized)
}

func TestDepartmentReport_AnyAuthenticatedUser(t *testing.T) {
	db := setupDB(t)

	c, _ := setupAccessTestContext(t, db, api.RoleEmployee)
	_, err := DepartmentReport(c)
	assert.NilError(t, err)

	_, err = DepartmentReport(unauthenticatedContext(t, db))
	assert.ErrorIs(t, err, internal.ErrUnauthorized)
}

func TestLeaveReport_RequiresRole(t *testing.T) {
	db := setupDB(t)

	c, _ := setupAccessTestContext(t, db, api.RoleEmployee)
	_, err := LeaveReport(c, &api.LeaveReportRequest{})
	assert.ErrorIs(t, err, ErrNotAuthorized)

	c, _ = setupAccessTestContext(t, db, api.RoleManager)
	_, err = LeaveReport(c, &api.LeaveReportRequest{})
	assert.NilError(t, err)
}
