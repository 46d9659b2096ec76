package access

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/workforcehq/workforce/internal/server/authn"
	"github.com/workforcehq/workforce/internal/server/models"
)

// Login exchanges a login ID or email plus password for a session
// token. It requires no prior authentication.
func Login(c *gin.Context, loginMethod authn.LoginMethod, lifetime time.Duration) (*models.Credential, string, time.Time, error) {
	rCtx := GetRequestContext(c)
	return authn.Login(rCtx.Request.Context(), rCtx.DBTxn, loginMethod, lifetime)
}
