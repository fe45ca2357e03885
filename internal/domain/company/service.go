package company

import "context"

// Directory is the read side of the company list, backed by the EMS API.
type Directory interface {
	ListCompanies(ctx context.Context) ([]Company, error)
}
