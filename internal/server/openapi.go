package server

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/workforcehq/workforce/api"
	"github.com/workforcehq/workforce/internal"
	"github.com/workforcehq/workforce/internal/validate"
)

var (
	pathIDReplacer            = regexp.MustCompile(`:\w+`)
	funcPartialNameToTagNames = map[string]string{
		"Employee":   "Employees",
		"Department": "Departments",
		"Attendance": "Attendance",
		"CheckIn":    "Attendance",
		"CheckOut":   "Attendance",
		"Leave":      "Leaves",
		"Payroll":    "Payroll",
		"Report":     "Reports",
		"Dashboard":  "Reports",
		"Login":      "Authentication",
		"Signup":     "Authentication",
		"User":       "Authentication",
	}
)

// register adds an API endpoint that has both a request and response
// value to the OpenAPI document.
func register[Req, Res any](a *API, method, path string, handler ReqResHandlerFunc[Req, Res]) {
	funcName := getFuncName(handler)

	rqt := reflect.TypeOf(*new(Req))
	rst := reflect.TypeOf(*new(Res))

	a.registerRoute(method, path, funcName, rqt, rst)
}

// registerDelete adds an API endpoint that has no response value, which
// is currently only endpoints that use the DELETE method.
func registerDelete[Req any](a *API, method, path string, handler ReqHandlerFunc[Req]) {
	funcName := getFuncName(handler)

	rqt := reflect.TypeOf(*new(Req))

	a.registerRoute(method, path, funcName, rqt, nil)
}

func (a *API) registerRoute(method, path, funcName string, rqt, rst reflect.Type) {
	path = pathIDReplacer.ReplaceAllStringFunc(path, func(s string) string {
		return "{" + strings.TrimLeft(s, ":") + "}"
	})

	if a.openAPIDoc.Components.Schemas == nil {
		a.openAPIDoc.Components.Schemas = openapi3.Schemas{}
	}

	if a.openAPIDoc.Paths == nil {
		a.openAPIDoc.Paths = openapi3.Paths{}
	}

	p, ok := a.openAPIDoc.Paths[path]
	if !ok {
		p = &openapi3.PathItem{}
	}

	op := openapi3.NewOperation()
	op.OperationID = funcName
	op.Description = funcName
	op.Summary = funcName

	if rqt != nil {
		buildRequest(rqt, op)
	}

	op.Responses = buildResponse(a.openAPIDoc, rst)

tagLoop:
	for _, partialName := range orderedTagNames() {
		tagName := funcPartialNameToTagNames[partialName]
		if strings.Contains(funcName, partialName) {
			for _, tag := range op.Tags {
				if tag == tagName {
					continue tagLoop
				}
			}
			op.Tags = append(op.Tags, tagName)
		}
	}

	if len(op.Tags) == 0 {
		op.Tags = append(op.Tags, "Misc")
	}

	switch method {
	case "GET":
		p.Get = op
	case "POST":
		p.Post = op
	case "PUT":
		p.Put = op
	case "DELETE":
		p.Delete = op
	default:
		panic("unexpected http method " + method)
	}

	a.openAPIDoc.Paths[path] = p
}

func getFuncName(i interface{}) string {
	name := runtime.FuncForPC(reflect.ValueOf(i).Pointer()).Name()
	nameParts := strings.Split(name, ".")
	name = nameParts[len(nameParts)-1]
	return strings.TrimSuffix(name, "-fm")
}

func orderedTagNames() []string {
	tagNames := make([]string, 0, len(funcPartialNameToTagNames))
	for k := range funcPartialNameToTagNames {
		tagNames = append(tagNames, k)
	}

	sort.Strings(tagNames)
	return tagNames
}

func createComponent(openAPIDoc openapi3.T, rst reflect.Type) *openapi3.SchemaRef {
	if openAPIDoc.Components.Schemas == nil {
		openAPIDoc.Components.Schemas = openapi3.Schemas{}
	}

	//nolint:exhaustive
	switch rst.Kind() {
	case reflect.Pointer:
		return createComponent(openAPIDoc, rst.Elem())
	case reflect.Slice:
		schema := createComponent(openAPIDoc, rst.Elem())

		return &openapi3.SchemaRef{
			Value: &openapi3.Schema{
				Type:  "array",
				Items: schema,
			},
		}
	case reflect.Struct:
		schema := &openapi3.Schema{
			Properties: openapi3.Schemas{},
		}

		name := strings.ReplaceAll(rst.Name(), rst.PkgPath()+".", "")
		name = strings.ReplaceAll(name, "[", "_")
		name = strings.ReplaceAll(name, "]", "")

		for i := 0; i < rst.NumField(); i++ {
			f := rst.Field(i)
			if f.Anonymous {
				embedded := createComponent(openAPIDoc, f.Type)
				if embedded.Value != nil {
					for prop, ref := range embedded.Value.Properties {
						schema.Properties[prop] = ref
					}
				}
				continue
			}
			fieldName, ok := getFieldName(f)
			if !ok {
				continue
			}
			schema.Properties[fieldName] = buildProperty(f, f.Type)
		}

		if _, ok := openAPIDoc.Components.Schemas[name]; ok {
			return &openapi3.SchemaRef{
				Ref: "#/components/schemas/" + name,
			}
		}

		openAPIDoc.Components.Schemas[name] = &openapi3.SchemaRef{Value: schema}

		return &openapi3.SchemaRef{
			Ref: "#/components/schemas/" + name,
		}
	default:
		panic("unexpected component kind " + rst.Kind().String())
	}
}

func buildProperty(f reflect.StructField, t reflect.Type) *openapi3.SchemaRef {
	if t.Kind() == reflect.Pointer {
		return buildProperty(f, t.Elem())
	}

	s := &openapi3.Schema{}
	setTypeInfo(t, s)

	if s.Type == "array" {
		s.Items = buildProperty(f, t.Elem())
	}

	if s.Type == "object" && t.Kind() == reflect.Struct {
		s.Properties = openapi3.Schemas{}

		for i := 0; i < t.NumField(); i++ {
			f2 := t.Field(i)
			fieldName, ok := getFieldName(f2)
			if !ok {
				continue
			}
			s.Properties[fieldName] = buildProperty(f2, f2.Type)
		}
	}

	return &openapi3.SchemaRef{Value: s}
}

var exampleTime = time.Date(2023, 3, 14, 9, 48, 0, 0, time.UTC).Format(time.RFC3339)

// `type` can be one of the following only: "object", "array", "string",
// "number", "integer", "boolean", "null". `format` has a few defined
// types, but can be anything.
func setTypeInfo(t reflect.Type, schema *openapi3.Schema) {
	switch structNameWithPkg(t) {
	case "api.Time", "time.Time":
		schema.Type = "string"
		schema.Format = "date-time" // date-time is rfc3339
		schema.Example = exampleTime
		schema.Description = "formatted as an RFC3339 date-time"
		return

	case "uid.ID":
		schema.Type = "string"
		schema.Format = "uid"
		schema.Pattern = `[\da-zA-HJ-NP-Z]{1,11}`
		schema.Example = "4yJ3n3D8E2"
		return
	}

	//nolint:exhaustive
	switch t.Kind() {
	case reflect.Pointer:
		setTypeInfo(t.Elem(), schema)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		schema.Type = "integer"
		schema.Format = t.Kind().String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		schema.Type = "integer"
		schema.Format = t.Kind().String()
	case reflect.Float32, reflect.Float64:
		schema.Type = "number"
		schema.Format = t.Kind().String()
	case reflect.Bool:
		schema.Type = "boolean"
	case reflect.String:
		schema.Type = "string"
	case reflect.Slice:
		schema.Type = "array"
	case reflect.Map, reflect.Struct:
		schema.Type = "object"
	default:
		panic("unexpected type " + t.Kind().String())
	}
}

func pstr(s string) *string {
	return &s
}

func buildResponse(openAPIDoc openapi3.T, rst reflect.Type) openapi3.Responses {
	schema := &openapi3.SchemaRef{
		Value: &openapi3.Schema{Type: "object"},
	}

	if rst != nil {
		schema = createComponent(openAPIDoc, rst)
	}

	resp := openapi3.NewResponses()
	resp["default"] = &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: pstr("Success"),
			Content: openapi3.Content{
				"application/json": &openapi3.MediaType{
					Schema: schema,
				},
			},
		},
	}

	errComp := createComponent(openAPIDoc, reflect.TypeOf(&api.Error{}))
	content := openapi3.Content{"application/json": &openapi3.MediaType{
		Schema: errComp,
	}}

	for code, description := range map[string]string{
		"400": "Bad Request",
		"401": "Unauthorized: Requestor is not authenticated",
		"403": "Forbidden: Requestor does not have the right permissions",
		"404": "Not Found",
		"409": "Duplicate Record",
	} {
		resp[code] = &openapi3.ResponseRef{
			Value: &openapi3.Response{
				Description: pstr(description),
				Content:     content,
			},
		}
	}

	return resp
}

func buildRequest(r reflect.Type, op *openapi3.Operation) {
	if r.Kind() == reflect.Pointer {
		buildRequest(r.Elem(), op)
		return
	}
	if r.Kind() != reflect.Struct {
		panic("unexpected request type " + r.Kind().String() + "(" + r.Name() + ")")
	}

	op.Parameters = openapi3.NewParameters()

	schema := &openapi3.Schema{
		Type:       "object",
		Properties: openapi3.Schemas{},
	}

	addRequestFields(r, op, schema)

	// the validation rules annotate required fields, enums, and bounds
	if req, ok := reflect.New(r).Elem().Interface().(validate.Request); ok {
		for _, rule := range req.ValidationRules() {
			rule.DescribeSchema(schema)
		}
	}

	if len(schema.Properties) > 0 {
		op.RequestBody = &openapi3.RequestBodyRef{
			Value: &openapi3.RequestBody{
				Content: openapi3.Content{
					"application/json": &openapi3.MediaType{
						Schema: &openapi3.SchemaRef{
							Value: schema,
						},
					},
				},
			},
		}
	}
}

func addRequestFields(r reflect.Type, op *openapi3.Operation, schema *openapi3.Schema) {
	for i := 0; i < r.NumField(); i++ {
		f := r.Field(i)

		if f.Anonymous {
			addRequestFields(f.Type, op, schema)
			continue
		}

		// check first if it's a json field
		if name, ok := f.Tag.Lookup("json"); ok {
			jsonName := strings.Split(name, ",")[0]
			if jsonName != "-" {
				schema.Properties[jsonName] = buildProperty(f, f.Type)
				continue
			}
		}

		// if not, it's a query or uri parameter
		p := &openapi3.Parameter{
			Schema: buildProperty(f, f.Type),
		}

		if name, ok := f.Tag.Lookup("form"); ok {
			p.Name = name
			p.In = "query"
		}

		if name, ok := f.Tag.Lookup("uri"); ok {
			p.Name = strings.Split(name, ",")[0]
			p.In = "path"
			p.Required = true
		}

		if p.In == "" {
			// field isn't properly labelled
			panic(fmt.Sprintf("field %q of struct %q must have a tag (json, form, or uri) with a name or '-'", f.Name, r.Name()))
		}

		op.AddParameter(p)
	}
}

func structNameWithPkg(t reflect.Type) string {
	path := strings.Split(t.PkgPath(), "/")
	p := path[len(path)-1]

	if len(p) > 0 {
		return p + "." + t.Name()
	}

	return t.Name()
}

func getFieldName(f reflect.StructField) (string, bool) {
	if name, ok := f.Tag.Lookup("json"); ok {
		name = strings.Split(name, ",")[0]
		if name == "-" {
			return "", false
		}
		return name, true
	}

	if name, ok := f.Tag.Lookup("form"); ok {
		return name, true
	}

	if name, ok := f.Tag.Lookup("uri"); ok {
		return strings.Split(name, ",")[0], true
	}

	return "", false
}

func writeOpenAPISpec(spec openapi3.T, out io.Writer) error {
	spec.OpenAPI = "3.0.0"
	spec.Info = &openapi3.Info{
		Title:       "Workforce API",
		Version:     internal.FullVersion(),
		Description: "Workforce HR management API",
	}
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(spec); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	return nil
}

// WriteOpenAPIDocToFile is used by the openapi doc generator command.
func WriteOpenAPIDocToFile(openAPIDoc openapi3.T, filename string) error {
	fh, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fh.Close()
	return writeOpenAPISpec(openAPIDoc, fh)
}
