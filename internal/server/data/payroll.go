package data

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/workforcehq/workforce/internal/server/models"
	"github.com/workforcehq/workforce/uid"
)

func validatePayroll(p *models.Payroll) error {
	switch {
	case p.EmployeeID == 0:
		return fmt.Errorf("employeeId is required")
	case p.Month < 1 || p.Month > 12:
		return fmt.Errorf("month must be between 1 and 12")
	case p.Year == 0:
		return fmt.Errorf("year is required")
	}
	return nil
}

func CreatePayroll(db *gorm.DB, payroll *models.Payroll) error {
	if err := validatePayroll(payroll); err != nil {
		return err
	}
	return add(db, payroll)
}

func SavePayroll(db *gorm.DB, payroll *models.Payroll) error {
	if err := validatePayroll(payroll); err != nil {
		return err
	}
	return save(db, payroll)
}

func GetPayroll(db *gorm.DB, selectors ...SelectorFunc) (*models.Payroll, error) {
	return get[models.Payroll](db, selectors...)
}

func ByOptionalPeriod(month, year int) SelectorFunc {
	return func(db *gorm.DB) *gorm.DB {
		if month != 0 {
			db = db.Where("month = ?", month)
		}
		if year != 0 {
			db = db.Where("year = ?", year)
		}
		return db
	}
}

func ListPayrolls(db *gorm.DB, p *models.Pagination, selectors ...SelectorFunc) ([]models.Payroll, error) {
	payrolls, err := list[models.Payroll](db, p, selectors...)
	if err != nil {
		return nil, err
	}

	ids := make([]uid.ID, 0, len(payrolls))
	for i := range payrolls {
		ids = append(ids, payrolls[i].EmployeeID)
	}
	names, err := employeeNames(db, ids)
	if err != nil {
		return nil, err
	}
	for i := range payrolls {
		payrolls[i].EmployeeName = names[payrolls[i].EmployeeID]
	}

	return payrolls, nil
}

func DeletePayroll(db *gorm.DB, id uid.ID) error {
	return delete[models.Payroll](db, id)
}
