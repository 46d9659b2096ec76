// Package authn verifies login credentials and exchanges them for
// session tokens.
package authn

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/workforcehq/workforce/internal/server/data"
	"github.com/workforcehq/workforce/internal/server/models"
)

type LoginMethod interface {
	Authenticate(ctx context.Context, db *gorm.DB) (*models.Credential, error)
	// Name returns the name of the authentication method used.
	Name() string
}

// Login challenges the user to authenticate, and on success issues a
// signed session token for the credential.
func Login(ctx context.Context, db *gorm.DB, loginMethod LoginMethod, lifetime time.Duration) (*models.Credential, string, time.Time, error) {
	user, err := loginMethod.Authenticate(ctx, db)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("failed to login: %w", err)
	}

	token, expires, err := data.CreateSessionToken(db, user, lifetime)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("failed to create session token after login: %w", err)
	}

	return user, token, expires, nil
}
