package api

import (
	"time"

	"github.com/workforcehq/workforce/internal/validate"
	"github.com/workforcehq/workforce/uid"
)

// Attendance statuses.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceHalfDay = "half-day"
	AttendanceOnLeave = "on-leave"
)

var AttendanceStatuses = []string{
	AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceHalfDay, AttendanceOnLeave,
}

type Attendance struct {
	ID           uid.ID  `json:"id"`
	EmployeeID   uid.ID  `json:"employeeId"`
	EmployeeName string  `json:"employeeName,omitempty"`
	Date         Time    `json:"date"`
	CheckIn      Time    `json:"checkIn"`
	CheckOut     Time    `json:"checkOut"`
	WorkingHours float64 `json:"workingHours"`
	Overtime     float64 `json:"overtime"`
	Status       string  `json:"status"`
	Notes        string  `json:"notes,omitempty"`
}

type GetAttendanceRequest struct {
	Resource
}

type ListAttendanceRequest struct {
	Employee  uid.ID    `form:"employee"`
	Status    string    `form:"status"`
	StartDate time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate   time.Time `form:"endDate" time_format:"2006-01-02"`
	PaginationRequest
}

func (r ListAttendanceRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Enum("status", r.Status, AttendanceStatuses),
	}
}

type CreateAttendanceRequest struct {
	EmployeeID uid.ID    `json:"employeeId"`
	Date       time.Time `json:"date"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes"`
}

func (r CreateAttendanceRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("employeeId", r.EmployeeID),
		validate.Required("date", r.Date),
		validate.Enum("status", r.Status, AttendanceStatuses),
	}
}

type UpdateAttendanceRequest struct {
	Resource
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
	Status   string    `json:"status"`
	Notes    string    `json:"notes"`
}

func (r UpdateAttendanceRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("id", r.ID),
		validate.Enum("status", r.Status, AttendanceStatuses),
	}
}
