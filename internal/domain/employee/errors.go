package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrRosterNotLoaded  = errors.New("roster has not been loaded for this company")
)
