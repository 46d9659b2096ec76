package data

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/internal/server/models"
	"github.com/workforcehq/workforce/uid"
)

func TestCreateSessionToken(t *testing.T) {
	db := setupDB(t)

	user := &models.Credential{
		Model:        models.Model{ID: uid.New()},
		EmployeeID:   uid.New(),
		LoginID:      "ACTEEM20230001",
		Email:        "test@example.com",
		PasswordHash: []byte("not-a-real-hash"),
		Role:         api.RoleHR,
	}

	raw, expires, err := CreateSessionToken(db, user, time.Hour)
	assert.NilError(t, err)
	assert.Assert(t, raw != "")
	assert.Assert(t, time.Until(expires) > 59*time.Minute)

	claims, err := ValidateSessionToken(db, raw)
	assert.NilError(t, err)
	assert.Equal(t, claims.UserID, user.ID)
	assert.Equal(t, claims.Email, "test@example.com")
	assert.Equal(t, claims.Role, api.RoleHR)
}

func TestValidateSessionToken_Expired(t *testing.T) {
	db := setupDB(t)

	user := &models.Credential{
		Model:        models.Model{ID: uid.New()},
		PasswordHash: []byte("not-a-real-hash"),
		Role:         api.RoleEmployee,
	}

	raw, _, err := CreateSessionToken(db, user, -time.Hour)
	assert.NilError(t, err)

	_, err = ValidateSessionToken(db, raw)
	assert.ErrorContains(t, err, "expired")
}

func TestValidateSessionToken_Garbage(t *testing.T) {
	db := setupDB(t)

	_, err := ValidateSessionToken(db, "not.a.token")
	assert.Assert(t, err != nil)
}
