package data

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/workforcehq/workforce/internal/server/models"
	"github.com/workforcehq/workforce/uid"
)

func validateLeave(l *models.Leave) error {
	switch {
	case l.EmployeeID == 0:
		return fmt.Errorf("employeeId is required")
	case l.LeaveType == "":
		return fmt.Errorf("leaveType is required")
	case l.StartDate.IsZero() || l.EndDate.IsZero():
		return fmt.Errorf("startDate and endDate are required")
	case l.EndDate.Before(l.StartDate):
		return fmt.Errorf("endDate must not be before startDate")
	}
	return nil
}

func CreateLeave(db *gorm.DB, leave *models.Leave) error {
	if err := validateLeave(leave); err != nil {
		return err
	}
	return add(db, leave)
}

func SaveLeave(db *gorm.DB, leave *models.Leave) error {
	if err := validateLeave(leave); err != nil {
		return err
	}
	return save(db, leave)
}

func GetLeave(db *gorm.DB, selectors ...SelectorFunc) (*models.Leave, error) {
	return get[models.Leave](db, selectors...)
}

func ByOptionalLeaveType(leaveType string) SelectorFunc {
	return func(db *gorm.DB) *gorm.DB {
		if leaveType == "" {
			return db
		}
		return db.Where("leave_type = ?", leaveType)
	}
}

func ListLeaves(db *gorm.DB, p *models.Pagination, selectors ...SelectorFunc) ([]models.Leave, error) {
	leaves, err := list[models.Leave](db, p, selectors...)
	if err != nil {
		return nil, err
	}

	ids := make([]uid.ID, 0, len(leaves))
	for i := range leaves {
		ids = append(ids, leaves[i].EmployeeID)
	}
	names, err := employeeNames(db, ids)
	if err != nil {
		return nil, err
	}
	for i := range leaves {
		leaves[i].EmployeeName = names[leaves[i].EmployeeID]
	}

	return leaves, nil
}

func DeleteLeave(db *gorm.DB, id uid.ID) error {
	return delete[models.Leave](db, id)
}

func CountLeaves(db *gorm.DB, selectors ...SelectorFunc) (int64, error) {
	return count[models.Leave](db, selectors...)
}
