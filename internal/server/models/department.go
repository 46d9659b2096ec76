package models

import (
	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/uid"
)

type Department struct {
	Model

	Name        string `gorm:"uniqueIndex:,where:deleted_at is NULL"`
	Description string
	ManagerID   uid.ID

	// EmployeeCount may be populated by list queries.
	EmployeeCount int `gorm:"-"`
}

func (d *Department) ToAPI() *api.Department {
	return &api.Department{
		ID:            d.ID,
		Created:       api.Time(d.CreatedAt),
		Updated:       api.Time(d.UpdatedAt),
		Name:          d.Name,
		Description:   d.Description,
		ManagerID:     d.ManagerID,
		EmployeeCount: d.EmployeeCount,
	}
}
