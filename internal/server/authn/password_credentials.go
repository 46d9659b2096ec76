package authn

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/workforcehq/workforce/internal"
	"github.com/workforcehq/workforce/internal/server/data"
	"github.com/workforcehq/workforce/internal/server/models"
)

// passwordCredentialAuthn allows presenting a login ID or email with a
// password in exchange for a session token.
type passwordCredentialAuthn struct {
	Identifier string
	Password   string
}

func NewPasswordCredentialAuthentication(identifier, password string) LoginMethod {
	return &passwordCredentialAuthn{
		Identifier: identifier,
		Password:   password,
	}
}

func (a *passwordCredentialAuthn) Authenticate(_ context.Context, db *gorm.DB) (*models.Credential, error) {
	userCredential, err := data.GetCredential(db, data.ByIdentifier(a.Identifier))
	if err != nil {
		// a missing credential and a wrong password look the same to
		// the caller
		return nil, fmt.Errorf("%w: invalid credentials", internal.ErrUnauthorized)
	}

	// compare the stored hash of the user's password and the hash of the presented password
	err = bcrypt.CompareHashAndPassword(userCredential.PasswordHash, []byte(a.Password))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", internal.ErrUnauthorized)
	}

	return userCredential, nil
}

func (a *passwordCredentialAuthn) Name() string {
	return "credentials"
}
