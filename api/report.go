package api

import (
	"time"

	"github.com/workforcehq/workforce/internal/validate"
	"github.com/workforcehq/workforce/uid"
)

// DashboardReport is a point-in-time snapshot of headline numbers.
type DashboardReport struct {
	TotalEmployees  int     `json:"totalEmployees"`
	ActiveEmployees int     `json:"activeEmployees"`
	Departments     int     `json:"departments"`
	PresentToday    int     `json:"presentToday"`
	PendingLeaves   int     `json:"pendingLeaves"`
	MonthlyPayroll  float64 `json:"monthlyPayroll"`
}

type AttendanceReportRow struct {
	EmployeeID   uid.ID  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	PresentDays  int     `json:"presentDays"`
	AbsentDays   int     `json:"absentDays"`
	LateDays     int     `json:"lateDays"`
	TotalHours   float64 `json:"totalHours"`
	Overtime     float64 `json:"overtime"`
}

type LeaveReportRow struct {
	EmployeeID   uid.ID `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	TotalLeaves  int    `json:"totalLeaves"`
	Approved     int    `json:"approved"`
	Rejected     int    `json:"rejected"`
	Pending      int    `json:"pending"`
	DaysTaken    int    `json:"daysTaken"`
}

type PayrollReportRow struct {
	Month      int     `json:"month"`
	Year       int     `json:"year"`
	Employees  int     `json:"employees"`
	TotalGross float64 `json:"totalGross"`
	TotalNet   float64 `json:"totalNet"`
	TotalPaid  float64 `json:"totalPaid"`
}

type DepartmentReportRow struct {
	DepartmentID   uid.ID  `json:"departmentId"`
	DepartmentName string  `json:"departmentName"`
	Employees      int     `json:"employees"`
	ActiveCount    int     `json:"activeCount"`
	AverageSalary  float64 `json:"averageSalary"`
}

type AttendanceReportRequest struct {
	Employee  uid.ID    `form:"employee"`
	StartDate time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate   time.Time `form:"endDate" time_format:"2006-01-02"`
}

func (r AttendanceReportRequest) ValidationRules() []validate.ValidationRule {
	return nil
}

type LeaveReportRequest struct {
	Employee uid.ID `form:"employee"`
	Year     int    `form:"year"`
}

func (r LeaveReportRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Int("year", r.Year, 0, 2200),
	}
}

type PayrollReportRequest struct {
	Month int `form:"month"`
	Year  int `form:"year"`
}

func (r PayrollReportRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Int("month", r.Month, 0, 12),
		validate.Int("year", r.Year, 0, 2200),
	}
}
