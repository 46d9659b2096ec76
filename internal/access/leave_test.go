package access

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/internal"
)

func TestCreateLeave(t *testing.T) {
	db := setupDB(t)
	c, self := setupAccessTestContext(t, db, api.RoleEmployee)

	leave, err := CreateLeave(c, &api.CreateLeaveRequest{
		LeaveType: api.LeaveAnnual,
		StartDate: time.Date(2023, 7, 3, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2023, 7, 7, 0, 0, 0, 0, time.UTC),
		Reason:    "summer holiday",
	})
	assert.NilError(t, err)

	assert.Equal(t, leave.EmployeeID, self.ID)
	assert.Equal(t, leave.Status, api.LeavePending)
	assert.Equal(t, leave.Days, 5)
}

func TestReviewLeave(t *testing.T) {
	db := setupDB(t)

	employeeCtx, _ := setupAccessTestContext(t, db, api.RoleEmployee)
	leave, err := CreateLeave(employeeCtx, &api.CreateLeaveRequest{
		LeaveType: api.LeaveSick,
		StartDate: time.Date(2023, 7, 3, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2023, 7, 4, 0, 0, 0, 0, time.UTC),
	})
	assert.NilError(t, err)

	// the employee cannot review requests
	_, err = ReviewLeave(employeeCtx, &api.ReviewLeaveRequest{
		Resource: api.Resource{ID: leave.ID},
		Status:   api.LeaveApproved,
	})
	assert.ErrorIs(t, err, ErrNotAuthorized)

	managerCtx, manager := setupAccessTestContext(t, db, api.RoleManager)
	reviewed, err := ReviewLeave(managerCtx, &api.ReviewLeaveRequest{
		Resource: api.Resource{ID: leave.ID},
		Status:   api.LeaveApproved,
		Comments: "enjoy",
	})
	assert.NilError(t, err)
	assert.Equal(t, reviewed.Status, api.LeaveApproved)
	assert.Equal(t, reviewed.Comments, "enjoy")
	assert.Assert(t, manager != nil)

	// a decision is final
	_, err = ReviewLeave(managerCtx, &api.ReviewLeaveRequest{
		Resource: api.Resource{ID: leave.ID},
		Status:   api.LeaveRejected,
	})
	assert.ErrorIs(t, err, internal.ErrBadRequest)
}

func TestReviewLeave_OwnRequest(t *testing.T) {
	db := setupDB(t)
	c, _ := setupAccessTestContext(t, db, api.RoleManager)

	leave, err := CreateLeave(c, &api.CreateLeaveRequest{
		LeaveType: api.LeaveCasual,
		StartDate: time.Date(2023, 7, 3, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2023, 7, 3, 0, 0, 0, 0, time.UTC),
	})
	assert.NilError(t, err)

	_, err = ReviewLeave(c, &api.ReviewLeaveRequest{
		Resource: api.Resource{ID: leave.ID},
		Status:   api.LeaveApproved,
	})
	assert.ErrorContains(t, err, "cannot review your own leave request")
}

func TestDeleteLeave(t *testing.T) {
	db := setupDB(t)
	c, _ := setupAccessTestContext(t, db, api.RoleEmployee)

	leave, err := CreateLeave(c, &api.CreateLeaveRequest{
		LeaveType: api.LeaveCasual,
		StartDate: time.Date(2023, 7, 3, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2023, 7, 3, 0, 0, 0, 0, time.UTC),
	})
	assert.NilError(t, err)

	// pending requests can be withdrawn by their owner
	assert.NilError(t, DeleteLeave(c, leave.ID))
}

func TestListLeaves_ScopedToSelf(t *testing.T) {
	db := setupDB(t)

	otherCtx, _ := setupAccessTestContext(t, db, api.RoleEmployee)
	_, err := CreateLeave(otherCtx, &api.CreateLeaveRequest{
		LeaveType: api.LeaveSick,
		StartDate: time.Date(2023, 7, 3, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2023, 7, 3, 0, 0, 0, 0, time.UTC),
	})
	assert.NilError(t, err)

	c, self := setupAccessTestContext(t, db, api.RoleEmployee)
	mine, err := CreateLeave(c, &api.CreateLeaveRequest{
		LeaveType: api.LeaveAnnual,
		StartDate: time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2023, 8, 2, 0, 0, 0, 0, time.UTC),
	})
	assert.NilError(t, err)

	// the employee filter is ignored for non-reviewers
	leaves, _, err := ListLeaves(c, &api.ListLeavesRequest{})
	assert.NilError(t, err)
	assert.Equal(t, len(leaves), 1)
	assert.Equal(t, leaves[0].ID, mine.ID)
	assert.Assert(t, self != nil)

	hrCtx, _ := setupAccessTestContext(t, db, api.RoleHR)
	leaves, _, err = ListLeaves(hrCtx, &api.ListLeavesRequest{})
	assert.NilError(t, err)
	assert.Equal(t, len(leaves), 2)
}
