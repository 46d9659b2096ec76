package internal

import (
	"fmt"
)

var (
	ErrUnauthorized   = fmt.Errorf("unauthorized")
	ErrForbidden      = fmt.Errorf("forbidden")
	ErrDuplicate      = fmt.Errorf("duplicate record")
	ErrNotFound       = fmt.Errorf("record not found")
	ErrBadRequest     = fmt.Errorf("bad request")
	ErrNotImplemented = fmt.Errorf("not implemented")
)
