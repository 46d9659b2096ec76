package models

import (
	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/uid"
)

type Credential struct {
	Model

	EmployeeID   uid.ID `gorm:"uniqueIndex:,where:deleted_at is NULL"`
	LoginID      string `gorm:"uniqueIndex:,where:deleted_at is NULL"`
	Email        string `gorm:"uniqueIndex:,where:deleted_at is NULL"`
	PasswordHash []byte
	Role         string
}

func (c *Credential) ToAPI(employee *Employee) api.User {
	u := api.User{
		ID:         c.ID,
		EmployeeID: c.EmployeeID,
		LoginID:    c.LoginID,
		Email:      c.Email,
		Role:       c.Role,
	}
	if employee != nil {
		u.Name = employee.Name()
	}
	return u
}
