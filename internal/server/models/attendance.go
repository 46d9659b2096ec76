package models

import (
	"math"
	"time"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/uid"
)

// StandardWorkDay is the number of hours after which time counts as
// overtime.
const StandardWorkDay = 8.0

type Attendance struct {
	Model

	EmployeeID   uid.ID    `gorm:"uniqueIndex:idx_attendance_employee_date,where:deleted_at is NULL"`
	Date         time.Time `gorm:"uniqueIndex:idx_attendance_employee_date,where:deleted_at is NULL"`
	CheckIn      time.Time
	CheckOut     time.Time
	WorkingHours float64
	Overtime     float64
	Status       string
	Notes        string

	// EmployeeName may be populated by list queries.
	EmployeeName string `gorm:"-"`
}

// Recalculate derives working hours and overtime from the check-in and
// check-out times. Records without both timestamps have zero hours.
func (a *Attendance) Recalculate() {
	if a.CheckIn.IsZero() || a.CheckOut.IsZero() || a.CheckOut.Before(a.CheckIn) {
		a.WorkingHours = 0
		a.Overtime = 0
		return
	}
	a.WorkingHours = round2(a.CheckOut.Sub(a.CheckIn).Hours())
	a.Overtime = round2(math.Max(0, a.WorkingHours-StandardWorkDay))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (a *Attendance) ToAPI() *api.Attendance {
	return &api.Attendance{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         api.Time(a.Date),
		CheckIn:      api.Time(a.CheckIn),
		CheckOut:     api.Time(a.CheckOut),
		WorkingHours: a.WorkingHours,
		Overtime:     a.Overtime,
		Status:       a.Status,
		Notes:        a.Notes,
	}
}
