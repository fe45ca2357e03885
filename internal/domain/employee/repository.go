package employee

// RosterCache stores fetched rosters keyed by company id for the lifetime of
// the session. Entries are never evicted; Put replaces wholesale.
type RosterCache interface {
	Get(companyID string) ([]Employee, bool)
	Put(companyID string, employees []Employee)
	Has(companyID string) bool
}
