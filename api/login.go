package api

import (
	"github.com/workforcehq/workforce/internal/validate"
)

// LoginRequest authenticates with either a login ID or an email address
// in the identifier field.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (r LoginRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("identifier", r.Identifier),
		validate.Required("password", r.Password),
	}
}

type LoginResponse struct {
	Token   string `json:"token"`
	Expires Time   `json:"expires"`
	User    User   `json:"user"`
}
