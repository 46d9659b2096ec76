package api

import (
	"time"

	"github.com/workforcehq/workforce/internal/validate"
	"github.com/workforcehq/workforce/uid"
)

// Leave types and statuses.
const (
	LeaveSick      = "sick"
	LeaveCasual    = "casual"
	LeaveAnnual    = "annual"
	LeaveMaternity = "maternity"
	LeavePaternity = "paternity"
	LeaveUnpaid    = "unpaid"

	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

var (
	LeaveTypes    = []string{LeaveSick, LeaveCasual, LeaveAnnual, LeaveMaternity, LeavePaternity, LeaveUnpaid}
	LeaveStatuses = []string{LeavePending, LeaveApproved, LeaveRejected}
)

type Leave struct {
	ID           uid.ID `json:"id"`
	Created      Time   `json:"created"`
	Updated      Time   `json:"updated"`
	EmployeeID   uid.ID `json:"employeeId"`
	EmployeeName string `json:"employeeName,omitempty"`
	LeaveType    string `json:"leaveType"`
	StartDate    Time   `json:"startDate"`
	EndDate      Time   `json:"endDate"`
	Days         int    `json:"days"`
	Reason       string `json:"reason,omitempty"`
	Status       string `json:"status"`
	Comments     string `json:"comments,omitempty"`
	ReviewedBy   uid.ID `json:"reviewedBy,omitempty"`
}

type GetLeaveRequest struct {
	Resource
}

type ListLeavesRequest struct {
	Employee  uid.ID    `form:"employee"`
	Status    string    `form:"status"`
	LeaveType string    `form:"leaveType"`
	StartDate time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate   time.Time `form:"endDate" time_format:"2006-01-02"`
	PaginationRequest
}

func (r ListLeavesRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Enum("status", r.Status, LeaveStatuses),
		validate.Enum("leaveType", r.LeaveType, LeaveTypes),
	}
}

type CreateLeaveRequest struct {
	LeaveType string    `json:"leaveType"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Reason    string    `json:"reason"`
}

func (r CreateLeaveRequest) ValidationRules() []validate.ValidationRule {
	rules := []validate.ValidationRule{
		validate.Required("leaveType", r.LeaveType),
		validate.Required("startDate", r.StartDate),
		validate.Required("endDate", r.EndDate),
		validate.Enum("leaveType", r.LeaveType, LeaveTypes),
	}
	rules = append(rules, validate.ValidatorFunc(func() *validate.Failure {
		if r.StartDate.IsZero() || r.EndDate.IsZero() {
			return nil
		}
		if r.EndDate.Before(r.StartDate) {
			return &validate.Failure{Name: "endDate", Problems: []string{"must not be before startDate"}}
		}
		return nil
	}))
	return rules
}

// ReviewLeaveRequest approves or rejects a pending leave request.
type ReviewLeaveRequest struct {
	Resource
	Status   string `json:"status"`
	Comments string `json:"comments"`
}

func (r ReviewLeaveRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("id", r.ID),
		validate.Required("status", r.Status),
		validate.Enum("status", r.Status, []string{LeaveApproved, LeaveRejected}),
	}
}
