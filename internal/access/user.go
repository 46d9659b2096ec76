package access

import (
	"github.com/gin-gonic/gin"

	"github.com/workforcehq/workforce/internal"
	"github.com/workforcehq/workforce/internal/server/models"
)

// CurrentUser returns the authenticated credential and its employee
// record.
func CurrentUser(c *gin.Context) (*models.Credential, *models.Employee, error) {
	rCtx := GetRequestContext(c)
	if rCtx.Authenticated.User == nil {
		return nil, nil, internal.ErrUnauthorized
	}
	return rCtx.Authenticated.User, rCtx.Authenticated.Employee, nil
}
