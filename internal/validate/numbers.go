package validate

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

type IntRule struct {
	// Value to validate
	Value int
	// Name of the field in json.
	Name string

	Min *int
	Max *int
}

// Int returns a validation rule that checks value is within [min, max].
func Int(name string, value int, min, max int) IntRule {
	return IntRule{Name: name, Value: value, Min: &min, Max: &max}
}

func (i IntRule) Validate() *Failure {
	if i.Value == 0 {
		return nil
	}
	if i.Min != nil && i.Value < *i.Min {
		return fail(i.Name, fmt.Sprintf("must be at least %d", *i.Min))
	}
	if i.Max != nil && i.Value > *i.Max {
		return fail(i.Name, fmt.Sprintf("must be at most %d", *i.Max))
	}
	return nil
}

func (i IntRule) DescribeSchema(parent *openapi3.Schema) {
	schema := schemaForProperty(parent, i.Name)
	if i.Min != nil {
		min := float64(*i.Min)
		schema.Min = &min
	}
	if i.Max != nil {
		max := float64(*i.Max)
		schema.Max = &max
	}
}
