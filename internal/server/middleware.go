package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/workforcehq/workforce/internal"
	"github.com/workforcehq/workforce/internal/access"
	"github.com/workforcehq/workforce/internal/logging"
	"github.com/workforcehq/workforce/internal/server/data"
)

// TimeoutMiddleware adds a timeout to the request context within the Gin
// context. To correctly abort long-running requests, this depends on the
// users of the context to stop working when the context cancels.
// Note: The goroutine for the request is never halted; if the context is
// not passed down to lower packages and long-running tasks, then the app
// will not magically stop working on the request. No effort should be
// made to write an early http response here; it's up to the users of the
// context to watch for c.Request.Context().Err() or
// <-c.Request.Context().Done()
func TimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// DatabaseMiddleware runs the rest of the request handler chain inside a
// database transaction, and injects the transaction into the Gin context.
// The transaction is rolled back when the request ends in an error
// response, so a failed request never commits partial writes.
func DatabaseMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
			c.Set("db", tx)
			c.Next()
			if last := c.Errors.Last(); last != nil {
				return fmt.Errorf("rolling back request: %w", last.Err)
			}
			return nil
		})
		if err != nil {
			logging.Debugf(err.Error())
		}
	}
}

func getDB(c *gin.Context) *gorm.DB {
	db, ok := c.MustGet("db").(*gorm.DB)
	if !ok {
		return nil
	}
	return db
}

// authenticatedMiddleware is applied to all routes that require
// authentication. It validates the session token and loads the
// credential and employee record it belongs to.
func authenticatedMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		db := getDB(c)
		authned, err := requireSessionToken(db, c.Request)
		if err != nil {
			sendAPIError(c, err)
			return
		}

		rCtx := access.RequestContext{
			Request:       c.Request,
			DBTxn:         db,
			Authenticated: authned,
		}
		c.Set(access.RequestContextKey, rCtx)
		c.Next()
	}
}

// requireSessionToken checks the bearer token is present and valid.
func requireSessionToken(db *gorm.DB, req *http.Request) (access.Authenticated, error) {
	var authned access.Authenticated

	header := req.Header.Get("Authorization")
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return authned, fmt.Errorf("%w: valid token not found in request", internal.ErrUnauthorized)
	}

	bearer := parts[1]
	if strings.TrimSpace(bearer) == "" {
		return authned, fmt.Errorf("%w: skipped validating empty token", internal.ErrUnauthorized)
	}

	claims, err := data.ValidateSessionToken(db, bearer)
	if err != nil {
		return authned, err
	}

	user, err := data.GetCredential(db, data.ByID(claims.UserID))
	if err != nil {
		return authned, fmt.Errorf("%w: credential for token: %s", internal.ErrUnauthorized, err)
	}

	employee, err := data.GetEmployee(db, data.ByID(user.EmployeeID))
	if err != nil {
		return authned, fmt.Errorf("employee for token: %w", err)
	}

	authned.User = user
	authned.Employee = employee
	return authned, nil
}

func unauthenticatedMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rCtx := access.RequestContext{
			Request: c.Request,
			DBTxn:   getDB(c),
		}
		c.Set(access.RequestContextKey, rCtx)
		c.Next()
	}
}

func getRequestContext(c *gin.Context) access.RequestContext {
	raw, ok := c.Get(access.RequestContextKey)
	if !ok {
		return access.RequestContext{}
	}
	rCtx, ok := raw.(access.RequestContext)
	if !ok {
		return access.RequestContext{}
	}
	return rCtx
}
