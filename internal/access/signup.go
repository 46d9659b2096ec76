package access

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/internal"
	"github.com/workforcehq/workforce/internal/server/data"
	"github.com/workforcehq/workforce/internal/server/models"
)

// Signup creates the first admin account. It is rejected once any
// credential exists, so it can only be used to bootstrap a fresh
// install.
func Signup(c *gin.Context, r *api.SignupRequest) (*models.Credential, *models.Employee, error) {
	rCtx := GetRequestContext(c)
	db := rCtx.DBTxn

	existing, err := data.CountCredentials(db)
	if err != nil {
		return nil, nil, err
	}
	if existing > 0 {
		return nil, nil, fmt.Errorf("%w: signup is disabled once an account exists", internal.ErrBadRequest)
	}

	hireDate := r.HireDate
	if hireDate.IsZero() {
		hireDate = time.Now().UTC()
	}

	employee := &models.Employee{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		CompanyName: r.CompanyName,
		Position:    "Administrator",
		Status:      api.StatusActive,
		HireDate:    hireDate,
	}

	credential, err := createEmployeeWithCredential(db, employee, api.RoleAdmin, r.Password)
	if err != nil {
		return nil, nil, err
	}

	return credential, employee, nil
}
