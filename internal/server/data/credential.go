package data

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/workforcehq/workforce/internal/server/models"
	"github.com/workforcehq/workforce/uid"
)

func validateCredential(c *models.Credential) error {
	if len(c.PasswordHash) == 0 {
		return fmt.Errorf("passwordHash is required")
	}
	if c.Role == "" {
		return fmt.Errorf("role is required")
	}
	return nil
}

func CreateCredential(db *gorm.DB, credential *models.Credential) error {
	if err := validateCredential(credential); err != nil {
		return err
	}
	return add(db, credential)
}

func SaveCredential(db *gorm.DB, credential *models.Credential) error {
	if err := validateCredential(credential); err != nil {
		return err
	}
	return save(db, credential)
}

func GetCredential(db *gorm.DB, selectors ...SelectorFunc) (*models.Credential, error) {
	return get[models.Credential](db, selectors...)
}

// ByIdentifier matches a credential on either its login ID or its email
// address, so users can sign in with whichever they remember.
func ByIdentifier(identifier string) SelectorFunc {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("login_id = ? OR email = ?", identifier, identifier)
	}
}

func CountCredentials(db *gorm.DB) (int64, error) {
	return count[models.Credential](db)
}

func DeleteCredential(db *gorm.DB, id uid.ID) error {
	return delete[models.Credential](db, id)
}
