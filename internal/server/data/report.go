package data

import (
	"time"

	"gorm.io/gorm"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/internal/server/models"
	"github.com/workforcehq/workforce/uid"
)

// DashboardReport aggregates the headline numbers for the given moment
// in time.
func DashboardReport(db *gorm.DB, now time.Time) (*api.DashboardReport, error) {
	report := &api.DashboardReport{}

	total, err := CountEmployees(db)
	if err != nil {
		return nil, err
	}
	report.TotalEmployees = int(total)

	active, err := CountEmployees(db, ByOptionalStatus(api.StatusActive))
	if err != nil {
		return nil, err
	}
	report.ActiveEmployees = int(active)

	departments, err := CountDepartments(db)
	if err != nil {
		return nil, err
	}
	report.Departments = int(departments)

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	present, err := CountAttendance(db, ByDay(day), func(db *gorm.DB) *gorm.DB {
		return db.Where("status IN ?", []string{api.AttendancePresent, api.AttendanceLate})
	})
	if err != nil {
		return nil, err
	}
	report.PresentToday = int(present)

	pending, err := CountLeaves(db, ByOptionalStatus(api.LeavePending))
	if err != nil {
		return nil, err
	}
	report.PendingLeaves = int(pending)

	err = db.Model(&models.Payroll{}).
		Select("COALESCE(SUM(net_salary), 0)").
		Where("month = ? AND year = ?", int(now.Month()), now.Year()).
		Scan(&report.MonthlyPayroll).Error
	if err != nil {
		return nil, err
	}

	return report, nil
}

type attendanceReportRow struct {
	EmployeeID   uid.ID
	EmployeeName string
	PresentDays  int
	AbsentDays   int
	LateDays     int
	TotalHours   float64
	Overtime     float64
}

// AttendanceReport aggregates attendance per employee, optionally
// restricted to one employee and a date range.
func AttendanceReport(db *gorm.DB, employeeID uid.ID, start, end time.Time) ([]api.AttendanceReportRow, error) {
	query := db.Model(&models.Attendance{}).
		Select(`attendances.employee_id AS employee_id,
			employees.first_name || ' ' || employees.last_name AS employee_name,
			SUM(CASE WHEN attendances.status = 'present' THEN 1 ELSE 0 END) AS present_days,
			SUM(CASE WHEN attendances.status = 'absent' THEN 1 ELSE 0 END) AS absent_days,
			SUM(CASE WHEN attendances.status = 'late' THEN 1 ELSE 0 END) AS late_days,
			COALESCE(SUM(attendances.working_hours), 0) AS total_hours,
			COALESCE(SUM(attendances.overtime), 0) AS overtime`).
		Joins("JOIN employees ON employees.id = attendances.employee_id").
		Where("employees.deleted_at IS NULL").
		Group("attendances.employee_id, employee_name").
		Order("employee_name ASC")

	if employeeID != 0 {
		query = query.Where("attendances.employee_id = ?", employeeID)
	}
	if !start.IsZero() {
		query = query.Where("attendances.date >= ?", start)
	}
	if !end.IsZero() {
		query = query.Where("attendances.date <= ?", end)
	}

	var rows []attendanceReportRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]api.AttendanceReportRow, len(rows))
	for i, row := range rows {
		result[i] = api.AttendanceReportRow{
			EmployeeID:   row.EmployeeID,
			EmployeeName: row.EmployeeName,
			PresentDays:  row.PresentDays,
			AbsentDays:   row.AbsentDays,
			LateDays:     row.LateDays,
			TotalHours:   row.TotalHours,
			Overtime:     row.Overtime,
		}
	}
	return result, nil
}

type leaveReportRow struct {
	EmployeeID   uid.ID
	EmployeeName string
	TotalLeaves  int
	Approved     int
	Rejected     int
	Pending      int
	DaysTaken    int
}

// LeaveReport aggregates leave requests per employee for one year.
func LeaveReport(db *gorm.DB, employeeID uid.ID, year int) ([]api.LeaveReportRow, error) {
	query := db.Model(&models.Leave{}).
		Select(`leaves.employee_id AS employee_id,
			employees.first_name || ' ' || employees.last_name AS employee_name,
			COUNT(*) AS total_leaves,
			SUM(CASE WHEN leaves.status = 'approved' THEN 1 ELSE 0 END) AS approved,
			SUM(CASE WHEN leaves.status = 'rejected' THEN 1 ELSE 0 END) AS rejected,
			SUM(CASE WHEN leaves.status = 'pending' THEN 1 ELSE 0 END) AS pending,
			COALESCE(SUM(CASE WHEN leaves.status = 'approved' THEN leaves.days ELSE 0 END), 0) AS days_taken`).
		Joins("JOIN employees ON employees.id = leaves.employee_id").
		Where("employees.deleted_at IS NULL").
		Group("leaves.employee_id, employee_name").
		Order("employee_name ASC")

	if employeeID != 0 {
		query = query.Where("leaves.employee_id = ?", employeeID)
	}
	if year != 0 {
		from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		query = query.Where("leaves.start_date >= ? AND leaves.start_date < ?", from, from.AddDate(1, 0, 0))
	}

	var rows []leaveReportRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]api.LeaveReportRow, len(rows))
	for i, row := range rows {
		result[i] = api.LeaveReportRow{
			EmployeeID:   row.EmployeeID,
			EmployeeName: row.EmployeeName,
			TotalLeaves:  row.TotalLeaves,
			Approved:     row.Approved,
			Rejected:     row.Rejected,
			Pending:      row.Pending,
			DaysTaken:    row.DaysTaken,
		}
	}
	return result, nil
}

type payrollReportRow struct {
	Month      int
	Year       int
	Employees  int
	TotalGross float64
	TotalNet   float64
	TotalPaid  float64
}

// PayrollReport aggregates payroll totals per pay period.
func PayrollReport(db *gorm.DB, month, year int) ([]api.PayrollReportRow, error) {
	query := db.Model(&models.Payroll{}).
		Select(`month, year,
			COUNT(*) AS employees,
			COALESCE(SUM(gross_salary), 0) AS total_gross,
			COALESCE(SUM(net_salary), 0) AS total_net,
			COALESCE(SUM(CASE WHEN status = 'paid' THEN net_salary ELSE 0 END), 0) AS total_paid`).
		Group("month, year").
		Order("year DESC, month DESC")

	if month != 0 {
		query = query.Where("month = ?", month)
	}
	if year != 0 {
		query = query.Where("year = ?", year)
	}

	var rows []payrollReportRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]api.PayrollReportRow, len(rows))
	for i, row := range rows {
		result[i] = api.PayrollReportRow{
			Month:      row.Month,
			Year:       row.Year,
			Employees:  row.Employees,
			TotalGross: row.TotalGross,
			TotalNet:   row.TotalNet,
			TotalPaid:  row.TotalPaid,
		}
	}
	return result, nil
}

type departmentReportRow struct {
	DepartmentID   uid.ID
	DepartmentName string
	Employees      int
	ActiveCount    int
	AverageSalary  float64
}

// DepartmentReport aggregates head counts and average salary per
// department.
func DepartmentReport(db *gorm.DB) ([]api.DepartmentReportRow, error) {
	query := db.Model(&models.Department{}).
		Select(`departments.id AS department_id,
			departments.name AS department_name,
			COUNT(employees.id) AS employees,
			COALESCE(SUM(CASE WHEN employees.status = 'active' THEN 1 ELSE 0 END), 0) AS active_count,
			COALESCE(AVG(employees.base_salary), 0) AS average_salary`).
		Joins("LEFT JOIN employees ON employees.department_id = departments.id AND employees.deleted_at IS NULL").
		Group("departments.id, departments.name").
		Order("departments.name ASC")

	var rows []departmentReportRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]api.DepartmentReportRow, len(rows))
	for i, row := range rows {
		result[i] = api.DepartmentReportRow{
			DepartmentID:   row.DepartmentID,
			DepartmentName: row.DepartmentName,
			Employees:      row.Employees,
			ActiveCount:    row.ActiveCount,
			AverageSalary:  row.AverageSalary,
		}
	}
	return result, nil
}
