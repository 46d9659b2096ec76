package api

import (
	"strings"
	"time"

	"github.com/workforcehq/workforce/internal/validate"
	"github.com/workforcehq/workforce/uid"
)

// Resource identifies a single record by ID in the request URI.
type Resource struct {
	ID uid.ID `uri:"id" json:"-"`
}

func (r Resource) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("id", r.ID),
	}
}

type EmptyRequest struct{}

func (r EmptyRequest) ValidationRules() []validate.ValidationRule {
	return nil
}

type EmptyResponse struct{}

// Time marshals as RFC3339 in UTC, and treats the zero value as null.
type Time time.Time

func (t Time) MarshalJSON() ([]byte, error) {
	if time.Time(t).IsZero() {
		return []byte("null"), nil
	}
	s := time.Time(t).UTC().Format(time.RFC3339)
	return []byte(`"` + s + `"`), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*t = Time(time.Time{})
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, strings.Trim(s, `"`))
	if err != nil {
		return err
	}
	*t = Time(parsed.UTC())
	return nil
}

func (t Time) String() string {
	return time.Time(t).Format(time.RFC3339)
}

func (t Time) Equal(other Time) bool {
	return time.Time(t).Equal(time.Time(other))
}

type Version struct {
	Version string `json:"version"`
}
