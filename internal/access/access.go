// Package access enforces role based authorization and orchestrates
// the operations exposed by the API.
package access

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RequireRole checks that the user in the context holds one of the roles.
func RequireRole(c *gin.Context, oneOfRoles ...string) (*gorm.DB, error) {
	rCtx := GetRequestContext(c)
	if err := IsAuthorized(rCtx, oneOfRoles...); err != nil {
		return nil, err
	}
	return rCtx.DBTxn, nil
}

var ErrNotAuthorized = errors.New("not authorized")

// AuthorizationError indicates that the user who performed the operation does
// not have the required role.
type AuthorizationError struct {
	Resource      string
	Operation     string
	RequiredRoles []string
}

func (e AuthorizationError) Error() string {
	var roles strings.Builder
	switch len(e.RequiredRoles) {
	case 1:
		roles.WriteString(e.RequiredRoles[0])
	default:
		for i, role := range e.RequiredRoles {
			roles.WriteString(role)
			switch {
			case i+1 == len(e.RequiredRoles)-1:
				roles.WriteString(", or ")
			case i+1 != len(e.RequiredRoles):
				roles.WriteString(", ")
			}
		}
	}
	return fmt.Sprintf("you do not have permission to %v %v, requires role %v",
		e.Operation, e.Resource, roles.String())
}

func (e AuthorizationError) Is(other error) bool {
	// nolint:errorlint // comparing with == is correct here, the caller uses Unwrap.
	return other == ErrNotAuthorized
}

func HandleAuthErr(err error, resource, operation string, roles ...string) error {
	if !errors.Is(err, ErrNotAuthorized) {
		return err
	}
	return AuthorizationError{
		Resource:      resource,
		Operation:     operation,
		RequiredRoles: roles,
	}
}

// IsAuthorized checks if the request has permission to perform the
// action. The request has permission if the authenticated user holds
// one of the required roles.
func IsAuthorized(rCtx RequestContext, requiredRole ...string) error {
	user := rCtx.Authenticated.User
	if user == nil {
		return fmt.Errorf("no authenticated user")
	}
	for _, role := range requiredRole {
		if user.Role == role {
			return nil
		}
	}
	return ErrNotAuthorized
}
