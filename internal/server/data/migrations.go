package data

import (
	"gorm.io/gorm"

	"github.com/workforcehq/workforce/internal/server/models"
)

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Settings{},
		&models.Sequence{},
		&models.Department{},
		&models.Employee{},
		&models.Credential{},
		&models.Attendance{},
		&models.Leave{},
		&models.Payroll{},
	)
}
