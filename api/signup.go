package api

import (
	"time"

	"github.com/workforcehq/workforce/internal/validate"
)

// SignupRequest bootstraps the first admin account. It is rejected once
// any credential exists.
type SignupRequest struct {
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	CompanyName string    `json:"companyName"`
	HireDate    time.Time `json:"hireDate"`
}

func (r SignupRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("firstName", r.FirstName),
		validate.Required("lastName", r.LastName),
		validate.Required("email", r.Email),
		validate.Required("password", r.Password),
		validate.Required("companyName", r.CompanyName),
		validate.Email("email", r.Email),
		validate.StringRule{Name: "password", Value: r.Password, MinLength: 8, MaxLength: 200},
	}
}

type SignupResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
