package api

// Error is the response body for failed HTTP requests.
type Error struct {
	// Code is the HTTP status of the response.
	Code int32 `json:"code"`
	// Message contains the full text of the failure as a single string.
	Message string `json:"message"`
	// FieldErrors provides a structured representation of validation
	// failures, one entry per request field.
	FieldErrors []FieldError `json:"fieldErrors,omitempty"`
}

type FieldError struct {
	FieldName string   `json:"fieldName"`
	Errors    []string `json:"errors"`
}
