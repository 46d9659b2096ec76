package data

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/internal/server/models"
)

func TestDashboardReport(t *testing.T) {
	db := setupDB(t)
	now := time.Date(2023, 6, 15, 10, 0, 0, 0, time.UTC)
	day := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)

	engineering := &models.Department{Name: "Engineering"}
	assert.NilError(t, CreateDepartment(db, engineering))

	alice := createTestEmployee(t, db, "ACALWO20230001", "alice@example.com")
	bob := createTestEmployee(t, db, "ACBOBU20230002", "bob@example.com")

	bob.Status = api.StatusTerminated
	assert.NilError(t, SaveEmployee(db, bob))

	assert.NilError(t, CreateAttendance(db, &models.Attendance{
		EmployeeID: alice.ID,
		Date:       day,
		Status:     api.AttendancePresent,
	}))

	assert.NilError(t, CreateLeave(db, &models.Leave{
		EmployeeID: bob.ID,
		LeaveType:  api.LeaveSick,
		StartDate:  day,
		EndDate:    day,
		Days:       1,
		Status:     api.LeavePending,
	}))

	payroll := &models.Payroll{
		EmployeeID: alice.ID,
		Month:      6,
		Year:       2023,
		BaseSalary: 5000,
	}
	payroll.Recalculate()
	assert.NilError(t, CreatePayroll(db, payroll))

	report, err := DashboardReport(db, now)
	assert.NilError(t, err)

	assert.Equal(t, report.TotalEmployees, 2)
	assert.Equal(t, report.ActiveEmployees, 1)
	assert.Equal(t, report.Departments, 1)
	assert.Equal(t, report.PresentToday, 1)
	assert.Equal(t, report.PendingLeaves, 1)
	assert.Equal(t, report.MonthlyPayroll, float64(5000))
}

func TestAttendanceReport(t *testing.T) {
	db := setupDB(t)
	day := func(d int) time.Time {
		return time.Date(2023, 6, d, 0, 0, 0, 0, time.UTC)
	}

	alice := createTestEmployee(t, db, "ACALWO20230001", "alice@example.com")

	records := []models.Attendance{
		{EmployeeID: alice.ID, Date: day(1), Status: api.AttendancePresent, WorkingHours: 8, Overtime: 0},
		{EmployeeID: alice.ID, Date: day(2), Status: api.AttendancePresent, WorkingHours: 9.5, Overtime: 1.5},
		{EmployeeID: alice.ID, Date: day(3), Status: api.AttendanceLate, WorkingHours: 7, Overtime: 0},
		{EmployeeID: alice.ID, Date: day(4), Status: api.AttendanceAbsent},
	}
	for i := range records {
		assert.NilError(t, CreateAttendance(db, &records[i]))
	}

	rows, err := AttendanceReport(db, 0, time.Time{}, time.Time{})
	assert.NilError(t, err)
	assert.Equal(t, len(rows), 1)

	row := rows[0]
	assert.Equal(t, row.EmployeeID, alice.ID)
	assert.Equal(t, row.EmployeeName, "Test Employee")
	assert.Equal(t, row.PresentDays, 2)
	assert.Equal(t, row.AbsentDays, 1)
	assert.Equal(t, row.LateDays, 1)
	assert.Equal(t, row.TotalHours, 24.5)
	assert.Equal(t, row.Overtime, 1.5)

	// date range excludes the absence
	rows, err = AttendanceReport(db, alice.ID, day(1), day(3))
	assert.NilError(t, err)
	assert.Equal(t, rows[0].AbsentDays, 0)
}

func TestLeaveReport(t *testing.T) {
	db := setupDB(t)
	alice := createTestEmployee(t, db, "ACALWO20230001", "alice@example.com")

	leaves := []models.Leave{
		{
			EmployeeID: alice.ID,
			LeaveType:  api.LeaveAnnual,
			StartDate:  time.Date(2023, 7, 3, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2023, 7, 7, 0, 0, 0, 0, time.UTC),
			Days:       5,
			Status:     api.LeaveApproved,
		},
		{
			EmployeeID: alice.ID,
			LeaveType:  api.LeaveSick,
			StartDate:  time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC),
			Days:       1,
			Status:     api.LeaveRejected,
		},
		{
			EmployeeID: alice.ID,
			LeaveType:  api.LeaveCasual,
			StartDate:  time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			Days:       2,
			Status:     api.LeavePending,
		},
	}
	for i := range leaves {
		assert.NilError(t, CreateLeave(db, &leaves[i]))
	}

	rows, err := LeaveReport(db, 0, 2023)
	assert.NilError(t, err)
	assert.Equal(t, len(rows), 1)

	row := rows[0]
	assert.Equal(t, row.TotalLeaves, 2)
	assert.Equal(t, row.Approved, 1)
	assert.Equal(t, row.Rejected, 1)
	assert.Equal(t, row.Pending, 0)
	assert.Equal(t, row.DaysTaken, 5)
}

func TestPayrollReport(t *testing.T) {
	db := setupDB(t)
	alice := createTestEmployee(t, db, "ACALWO20230001", "alice@example.com")
	bob := createTestEmployee(t, db, "ACBOBU20230002", "bob@example.com")

	payrolls := []models.Payroll{
		{EmployeeID: alice.ID, Month: 6, Year: 2023, BaseSalary: 5000, Status: api.PayrollPaid},
		{EmployeeID: bob.ID, Month: 6, Year: 2023, BaseSalary: 4000, Status: api.PayrollPending},
		{EmployeeID: alice.ID, Month: 7, Year: 2023, BaseSalary: 5000, Status: api.PayrollPending},
	}
	for i := range payrolls {
		payrolls[i].Recalculate()
		assert.NilError(t, CreatePayroll(db, &payrolls[i]))
	}

	rows, err := PayrollReport(db, 6, 2023)
	assert.NilError(t, err)
	assert.Equal(t, len(rows), 1)
	assert.Equal(t, rows[0].Employees, 2)
	assert.Equal(t, rows[0].TotalGross, float64(9000))
	assert.Equal(t, rows[0].TotalNet, float64(9000))
	assert.Equal(t, rows[0].TotalPaid, float64(5000))

	rows, err = PayrollReport(db, 0, 0)
	assert.NilError(t, err)
	assert.Equal(t, len(rows), 2)
	// newest period first
	assert.Equal(t, rows[0].Month, 7)
}

func TestDepartmentReport(t *testing.T) {
	db := setupDB(t)

	engineering := &models.Department{Name: "Engineering"}
	assert.NilError(t, CreateDepartment(db, engineering))
	sales := &models.Department{Name: "Sales"}
	assert.NilError(t, CreateDepartment(db, sales))

	alice := createTestEmployee(t, db, "ACALWO20230001", "alice@example.com")
	alice.DepartmentID = engineering.ID
	alice.BaseSalary = 6000
	assert.NilError(t, SaveEmployee(db, alice))

	bob := createTestEmployee(t, db, "ACBOBU20230002", "bob@example.com")
	bob.DepartmentID = engineering.ID
	bob.BaseSalary = 4000
	bob.Status = api.StatusInactive
	assert.NilError(t, SaveEmployee(db, bob))

	rows, err := DepartmentReport(db)
	assert.NilError(t, err)
	assert.Equal(t, len(rows), 2)

	assert.Equal(t, rows[0].DepartmentName, "Engineering")
	assert.Equal(t, rows[0].Employees, 2)
	assert.Equal(t, rows[0].ActiveCount, 1)
	assert.Equal(t, rows[0].AverageSalary, float64(5000))

	assert.Equal(t, rows[1].DepartmentName, "Sales")
	assert.Equal(t, rows[1].Employees, 0)
	assert.Equal(t, rows[1].AverageSalary, float64(0))
}
