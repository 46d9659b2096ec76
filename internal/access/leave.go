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

// CreateLeave files a leave request for the authenticated employee. The
// request starts in the pending state.
func CreateLeave(c *gin.Context, r *api.CreateLeaveRequest) (*models.Leave, error) {
	rCtx := GetRequestContext(c)
	self := rCtx.Authenticated.Employee
	if self == nil {
		return nil, internal.ErrUnauthorized
	}

	leave := &models.Leave{
		EmployeeID: self.ID,
		LeaveType:  r.LeaveType,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Days:       models.InclusiveDays(r.StartDate, r.EndDate),
		Reason:     r.Reason,
		Status:     api.LeavePending,
	}

	if err := data.CreateLeave(rCtx.DBTxn, leave); err != nil {
		return nil, err
	}
	return leave, nil
}

func GetLeave(c *gin.Context, id uid.ID) (*models.Leave, error) {
	rCtx := GetRequestContext(c)
	if rCtx.Authenticated.User == nil {
		return nil, internal.ErrUnauthorized
	}

	leave, err := data.GetLeave(rCtx.DBTxn, data.ByID(id))
	if err != nil {
		return nil, err
	}

	roles := []string{api.RoleAdmin, api.RoleHR, api.RoleManager}
	if err := IsAuthorized(rCtx, roles...); err != nil {
		self := rCtx.Authenticated.Employee
		if self == nil || self.ID != leave.EmployeeID {
			return nil, HandleAuthErr(err, "leave request", "get", roles...)
		}
	}

	return leave, nil
}

// ListLeaves returns leave requests. Users without a reviewer role only
// see their own requests.
func ListLeaves(c *gin.Context, r *api.ListLeavesRequest) ([]models.Leave, *models.Pagination, error) {
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
	leaves, err := data.ListLeaves(rCtx.DBTxn, &p,
		data.ByOptionalEmployeeID(employeeID),
		data.ByOptionalStatus(r.Status),
		data.ByOptionalLeaveType(r.LeaveType),
		data.ByDateRange("start_date", r.StartDate, r.EndDate),
	)
	if err != nil {
		return nil, nil, err
	}
	return leaves, &p, nil
}

// ReviewLeave approves or rejects a pending leave request. Reviewers
// cannot review their own requests.
func ReviewLeave(c *gin.Context, r *api.ReviewLeaveRequest) (*models.Leave, error) {
	rCtx := GetRequestContext(c)
	roles := []string{api.RoleAdmin, api.RoleHR, api.RoleManager}
	if err := IsAuthorized(rCtx, roles...); err != nil {
		return nil, HandleAuthErr(err, "leave request", "review", roles...)
	}
	db := rCtx.DBTxn

	leave, err := data.GetLeave(db, data.ByID(r.ID))
	if err != nil {
		return nil, err
	}

	if leave.Status != api.LeavePending {
		return nil, fmt.Errorf("%w: leave request was already %v", internal.ErrBadRequest, leave.Status)
	}
	if self := rCtx.Authenticated.Employee; self != nil && self.ID == leave.EmployeeID {
		return nil, fmt.Errorf("%w: cannot review your own leave request", internal.ErrBadRequest)
	}

	leave.Status = r.Status
	leave.Comments = r.Comments
	leave.ReviewedBy = rCtx.Authenticated.User.ID

	if err := data.SaveLeave(db, leave); err != nil {
		return nil, err
	}
	return leave, nil
}

// DeleteLeave withdraws a leave request. Employees may withdraw their
// own requests while they are pending; admin and hr may delete any.
func DeleteLeave(c *gin.Context, id uid.ID) error {
	rCtx := GetRequestContext(c)
	if rCtx.Authenticated.User == nil {
		return internal.ErrUnauthorized
	}
	db := rCtx.DBTxn

	leave, err := data.GetLeave(db, data.ByID(id))
	if err != nil {
		return err
	}

	if err := IsAuthorized(rCtx, api.RoleAdmin, api.RoleHR); err != nil {
		self := rCtx.Authenticated.Employee
		if self == nil || self.ID != leave.EmployeeID {
			return HandleAuthErr(err, "leave request", "delete", api.RoleAdmin, api.RoleHR)
		}
		if leave.Status != api.LeavePending {
			return fmt.Errorf("%w: only pending leave requests can be withdrawn", internal.ErrBadRequest)
		}
	}

	return data.DeleteLeave(db, leave.ID)
}
