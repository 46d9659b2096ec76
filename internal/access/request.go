package access

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/workforcehq/workforce/internal/server/models"
)

const RequestContextKey = "requestContext"

// RequestContext stores the http.Request, and values derived from the request
// like the authenticated user. It also provides a database transaction.
type RequestContext struct {
	Request       *http.Request
	DBTxn         *gorm.DB
	Authenticated Authenticated
}

// Authenticated stores data about the authenticated user. A nil User
// indicates that no user was authenticated.
type Authenticated struct {
	User     *models.Credential
	Employee *models.Employee
}

func GetRequestContext(c *gin.Context) RequestContext {
	if raw, ok := c.Get(RequestContextKey); ok {
		if rCtx, ok := raw.(RequestContext); ok {
			return rCtx
		}
	}
	return RequestContext{}
}
