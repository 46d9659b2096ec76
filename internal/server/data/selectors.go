package data

import (
	"time"

	"gorm.io/gorm"

	"github.com/workforcehq/workforce/internal/server/models"
	"github.com/workforcehq/workforce/uid"
)

type SelectorFunc func(db *gorm.DB) *gorm.DB

func ByID(id uid.ID) SelectorFunc {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}

func ByEmployeeID(employeeID uid.ID) SelectorFunc {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("employee_id = ?", employeeID)
	}
}

func ByOptionalEmployeeID(employeeID uid.ID) SelectorFunc {
	return func(db *gorm.DB) *gorm.DB {
		if employeeID == 0 {
			return db
		}
		return db.Where("employee_id = ?", employeeID)
	}
}

func ByOptionalStatus(status string) SelectorFunc {
	return func(db *gorm.DB) *gorm.DB {
		if status == "" {
			return db
		}
		return db.Where("status = ?", status)
	}
}

// ByDateRange filters on a date column. A zero start or end leaves that
// side unbounded.
func ByDateRange(column string, start, end time.Time) SelectorFunc {
	return func(db *gorm.DB) *gorm.DB {
		if !start.IsZero() {
			db = db.Where(column+" >= ?", start)
		}
		if !end.IsZero() {
			db = db.Where(column+" <= ?", end)
		}
		return db
	}
}

func ByPagination(p models.Pagination) SelectorFunc {
	return func(db *gorm.DB) *gorm.DB {
		if p.Page == 0 && p.Limit == 0 {
			return db
		}
		resultsForPage := p.Limit * (p.Page - 1)
		return db.Offset(resultsForPage).Limit(p.Limit)
	}
}
