package models

import (
	"time"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/uid"
)

type Leave struct {
	Model

	EmployeeID uid.ID
	LeaveType  string
	StartDate  time.Time
	EndDate    time.Time
	Days       int
	Reason     string
	Status     string
	Comments   string
	ReviewedBy uid.ID

	// EmployeeName may be populated by list queries.
	EmployeeName string `gorm:"-"`
}

// InclusiveDays counts calendar days between two dates, including both
// endpoints. Time of day is ignored.
func InclusiveDays(start, end time.Time) int {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (l *Leave) ToAPI() *api.Leave {
	return &api.Leave{
		ID:           l.ID,
		Created:      api.Time(l.CreatedAt),
		Updated:      api.Time(l.UpdatedAt),
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		LeaveType:    l.LeaveType,
		StartDate:    api.Time(l.StartDate),
		EndDate:      api.Time(l.EndDate),
		Days:         l.Days,
		Reason:       l.Reason,
		Status:       l.Status,
		Comments:     l.Comments,
		ReviewedBy:   l.ReviewedBy,
	}
}
