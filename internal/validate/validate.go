// Package validate checks API request structs against declarative rules.
package validate

import (
	"reflect"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Validate that the values in the request struct are valid according to the
// validation rules defined on the struct. If validation fails the returned
// error is of type Error.
//
// Validate traverses the fields of the struct. If any field is of a type
// that implements Request, the validation rules of that field are applied
// as well.
func Validate(req Request) error {
	reqV := reflect.Indirect(reflect.ValueOf(req))
	err := validateStruct(reqV)
	if len(err) > 0 {
		return err
	}
	return nil
}

func validateStruct(v reflect.Value) Error {
	err := make(Error)

	req, ok := v.Interface().(Request)
	if ok && (v.Kind() != reflect.Pointer || !v.IsNil()) {
		for _, rule := range req.ValidationRules() {
			if failure := rule.Validate(); failure != nil {
				err[failure.Name] = append(err[failure.Name], failure.Problems...)
			}
		}
	}

	switch v.Kind() { // nolint:exhaustive
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			f := v.Field(i)
			if v.Type().Field(i).Anonymous {
				for k, v := range validateStruct(f) {
					err[k] = append(err[k], v...)
				}
				continue
			}
			name := fieldName(v.Type().Field(i))
			for k, v := range validateStruct(f) {
				n := name
				if k != "" {
					n = name + "." + k
				}
				err[n] = append(err[n], v...)
			}
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			for k, v := range validateStruct(v.Index(i)) {
				err[k] = append(err[k], v...)
			}
		}
	}
	return err
}

// ValidationRule performs validation on one or more struct fields and can
// describe the validation for API documentation.
//
// Rules default to optional. A zero value passes every rule except Required.
type ValidationRule interface {
	// Validate returns nil if the validation passes, otherwise a Failure
	// with the field name and the list of problems.
	Validate() *Failure

	// DescribeSchema updates schema to describe the values allowed by the
	// rule. The schema is the parent schema of the request.
	DescribeSchema(schema *openapi3.Schema)
}

// Failure describes a validation failure.
type Failure struct {
	// Name of the field as visible to the user, generally the json name.
	Name string
	// Problems is a list of messages describing the failure. They become
	// part of the API response.
	Problems []string
}

// Request is implemented by all request structs.
type Request interface {
	ValidationRules() []ValidationRule
}

// Error is a map of field names to problems with those fields. Problems
// associated with the whole struct use the key "".
type Error map[string][]string

func (e Error) Error() string {
	var buf strings.Builder
	buf.WriteString("validation failed: ")
	i := 0
	for k, v := range e {
		if i != 0 {
			buf.WriteString(", ")
		}
		i++
		if k == "" {
			buf.WriteString(strings.Join(v, ", "))
			continue
		}
		buf.WriteString(k + ": " + strings.Join(v, ", "))
	}
	return buf.String()
}

func fail(name string, problems ...string) *Failure {
	return &Failure{Name: name, Problems: problems}
}

type requiredRule struct {
	name  string
	value any
}

// Required checks that the value does not have a zero value.
func Required(name string, value any) ValidationRule {
	return requiredRule{name: name, value: value}
}

func (r requiredRule) DescribeSchema(schema *openapi3.Schema) {
	schema.Required = append(schema.Required, r.name)
}

func (r requiredRule) Validate() *Failure {
	if !reflect.ValueOf(r.value).IsZero() {
		return nil
	}
	return fail(r.name, "is required")
}

func schemaForProperty(parent *openapi3.Schema, prop string) *openapi3.Schema {
	if parent.Properties == nil {
		parent.Properties = make(openapi3.Schemas)
	}
	if parent.Properties[prop] == nil {
		parent.Properties[prop] = &openapi3.SchemaRef{Value: &openapi3.Schema{}}
	}
	return parent.Properties[prop].Value
}

func fieldName(f reflect.StructField) string {
	if name, ok := f.Tag.Lookup("form"); ok {
		return name
	}

	if name, ok := f.Tag.Lookup("uri"); ok {
		return name
	}

	// json tag last, a field may have a uri or form name and a json name
	// of "-".
	if name, ok := f.Tag.Lookup("json"); ok {
		name = strings.Split(name, ",")[0]
		if name == "-" {
			return ""
		}
		return name
	}

	if f.Name == "" {
		return ""
	}

	return strings.ToLower(f.Name[:1]) + f.Name[1:]
}

// ValidatorFunc wraps a function so that it implements ValidationRule, for
// one-off validations. DescribeSchema is a no-op.
type ValidatorFunc func() *Failure

func (f ValidatorFunc) Validate() *Failure {
	return f()
}

func (f ValidatorFunc) DescribeSchema(*openapi3.Schema) {}
