package data

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/workforcehq/workforce/internal/server/models"
	"github.com/workforcehq/workforce/uid"
)

func validateAttendance(a *models.Attendance) error {
	switch {
	case a.EmployeeID == 0:
		return fmt.Errorf("employeeId is required")
	case a.Date.IsZero():
		return fmt.Errorf("date is required")
	}
	return nil
}

func CreateAttendance(db *gorm.DB, attendance *models.Attendance) error {
	if err := validateAttendance(attendance); err != nil {
		return err
	}
	return add(db, attendance)
}

func SaveAttendance(db *gorm.DB, attendance *models.Attendance) error {
	if err := validateAttendance(attendance); err != nil {
		return err
	}
	return save(db, attendance)
}

func GetAttendance(db *gorm.DB, selectors ...SelectorFunc) (*models.Attendance, error) {
	return get[models.Attendance](db, selectors...)
}

// ByDay matches the attendance record for a single calendar day.
func ByDay(day time.Time) SelectorFunc {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("date = ?", day)
	}
}

func ListAttendance(db *gorm.DB, p *models.Pagination, selectors ...SelectorFunc) ([]models.Attendance, error) {
	attendance, err := list[models.Attendance](db, p, selectors...)
	if err != nil {
		return nil, err
	}

	ids := make([]uid.ID, 0, len(attendance))
	for i := range attendance {
		ids = append(ids, attendance[i].EmployeeID)
	}
	names, err := employeeNames(db, ids)
	if err != nil {
		return nil, err
	}
	for i := range attendance {
		attendance[i].EmployeeName = names[attendance[i].EmployeeID]
	}

	return attendance, nil
}

func DeleteAttendance(db *gorm.DB, id uid.ID) error {
	return delete[models.Attendance](db, id)
}

func CountAttendance(db *gorm.DB, selectors ...SelectorFunc) (int64, error) {
	return count[models.Attendance](db, selectors...)
}

// employeeNames resolves display names for the given employee IDs.
func employeeNames(db *gorm.DB, ids []uid.ID) (map[uid.ID]string, error) {
	names := make(map[uid.ID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var employees []models.Employee
	err := db.Model(&models.Employee{}).
		Select("id", "first_name", "last_name").
		Where("id IN ?", ids).
		Find(&employees).Error
	if err != nil {
		return nil, err
	}

	for i := range employees {
		names[employees[i].ID] = employees[i].Name()
	}
	return names, nil
}
