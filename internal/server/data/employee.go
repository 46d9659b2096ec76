package data

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/workforcehq/workforce/internal/server/models"
	"github.com/workforcehq/workforce/uid"
)

func validateEmployee(e *models.Employee) error {
	switch {
	case e.FirstName == "":
		return fmt.Errorf("firstName is required")
	case e.LastName == "":
		return fmt.Errorf("lastName is required")
	case e.Email == "":
		return fmt.Errorf("email is required")
	case e.LoginID == "":
		return fmt.Errorf("loginId is required")
	case e.EmployeeID == "":
		return fmt.Errorf("employeeId is required")
	}
	return nil
}

func CreateEmployee(db *gorm.DB, employee *models.Employee) error {
	if err := validateEmployee(employee); err != nil {
		return err
	}
	return add(db, employee)
}

func SaveEmployee(db *gorm.DB, employee *models.Employee) error {
	if err := validateEmployee(employee); err != nil {
		return err
	}
	return save(db, employee)
}

func GetEmployee(db *gorm.DB, selectors ...SelectorFunc) (*models.Employee, error) {
	return get[models.Employee](db, selectors...)
}

func ListEmployees(db *gorm.DB, p *models.Pagination, selectors ...SelectorFunc) ([]models.Employee, error) {
	return list[models.Employee](db, p, selectors...)
}

func CountEmployees(db *gorm.DB, selectors ...SelectorFunc) (int64, error) {
	return count[models.Employee](db, selectors...)
}

func DeleteEmployee(db *gorm.DB, id uid.ID) error {
	return delete[models.Employee](db, id)
}

func ByOptionalDepartment(departmentID uid.ID) SelectorFunc {
	return func(db *gorm.DB) *gorm.DB {
		if departmentID == 0 {
			return db
		}
		return db.Where("department_id = ?", departmentID)
	}
}

func ByDepartment(departmentID uid.ID) SelectorFunc {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("department_id = ?", departmentID)
	}
}

// ByEmployeeSearch matches the term against names, email, and both
// identifier columns.
func ByEmployeeSearch(term string) SelectorFunc {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		pattern := "%" + term + "%"
		return db.Where(
			"first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR login_id LIKE ? OR employee_id LIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		)
	}
}
