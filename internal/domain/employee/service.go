package employee

import "context"

// Gateway is the slice of the EMS API the roster layer needs.
type Gateway interface {
	ListActiveEmployees(ctx context.Context, companyID string) ([]Employee, error)
}

// RosterService is the fetch-through cache over company rosters.
type RosterService interface {
	Get(ctx context.Context, companyID string) ([]Employee, error)
	Refresh(ctx context.Context, companyID string) ([]Employee, error)
	Filter(companyID, term string) ([]Employee, error)
	Find(companyID, employeeID string) (Employee, bool)
}
