package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrBlankName        = errors.New("employee name is blank")
)
