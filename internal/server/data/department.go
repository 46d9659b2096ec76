package data

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/workforcehq/workforce/internal/server/models"
	"github.com/workforcehq/workforce/uid"
)

func CreateDepartment(db *gorm.DB, department *models.Department) error {
	if department.Name == "" {
		return fmt.Errorf("name is required")
	}
	return add(db, department)
}

func SaveDepartment(db *gorm.DB, department *models.Department) error {
	if department.Name == "" {
		return fmt.Errorf("name is required")
	}
	return save(db, department)
}

func GetDepartment(db *gorm.DB, selectors ...SelectorFunc) (*models.Department, error) {
	return get[models.Department](db, selectors...)
}

// ListDepartments returns departments with their employee head counts
// populated.
func ListDepartments(db *gorm.DB, p *models.Pagination, selectors ...SelectorFunc) ([]models.Department, error) {
	departments, err := list[models.Department](db, p, selectors...)
	if err != nil {
		return nil, err
	}

	for i := range departments {
		n, err := CountEmployees(db, ByDepartment(departments[i].ID))
		if err != nil {
			return nil, err
		}
		departments[i].EmployeeCount = int(n)
	}

	return departments, nil
}

func DeleteDepartment(db *gorm.DB, id uid.ID) error {
	return delete[models.Department](db, id)
}

func CountDepartments(db *gorm.DB) (int64, error) {
	return count[models.Department](db)
}
