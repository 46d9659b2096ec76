package validate

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

type createRequest struct {
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Month    int       `json:"month"`
	HireDate time.Time `json:"hireDate"`
}

func (r createRequest) ValidationRules() []ValidationRule {
	return []ValidationRule{
		Required("email", r.Email),
		Email("email", r.Email),
		Enum("role", r.Role, []string{"employee", "hr", "admin", "manager"}),
		Int("month", r.Month, 1, 12),
		Date("hireDate", r.HireDate, time.Time{}, time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
}

func TestValidate(t *testing.T) {
	t.Run("all valid", func(t *testing.T) {
		r := createRequest{Email: "jo@example.com", Role: "hr", Month: 3}
		assert.NilError(t, Validate(r))
	})

	t.Run("missing required", func(t *testing.T) {
		err := Validate(createRequest{Role: "hr"})
		assert.ErrorContains(t, err, "email: is required")
	})

	t.Run("bad email", func(t *testing.T) {
		err := Validate(createRequest{Email: "not-an-email"})
		assert.ErrorContains(t, err, "invalid email address")
	})

	t.Run("bad enum", func(t *testing.T) {
		err := Validate(createRequest{Email: "jo@example.com", Role: "root"})
		assert.ErrorContains(t, err, "must be one of (employee, hr, admin, manager)")
	})

	t.Run("out of range int", func(t *testing.T) {
		err := Validate(createRequest{Email: "jo@example.com", Month: 13})
		assert.ErrorContains(t, err, "must be at most 12")
	})

	t.Run("date too late", func(t *testing.T) {
		r := createRequest{
			Email:    "jo@example.com",
			HireDate: time.Date(2200, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		err := Validate(r)
		assert.ErrorContains(t, err, "must be before")
	})
}

func TestStringRule(t *testing.T) {
	rule := StringRule{Name: "name", Value: "ab", MinLength: 3, MaxLength: 10}
	failure := rule.Validate()
	assert.Assert(t, failure != nil)
	assert.Equal(t, failure.Name, "name")

	rule.Value = "abcd"
	assert.Assert(t, rule.Validate() == nil)

	// empty values are left to Required
	rule.Value = ""
	assert.Assert(t, rule.Validate() == nil)
}
