package company

import "errors"

var (
	ErrCompanyNotFound  = errors.New("company not found")
	ErrCompanyNotListed = errors.New("company has not been listed in this session")
)
