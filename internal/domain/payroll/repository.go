package payroll

// ResultStore holds the latest SalaryBreakdown per employee for the selected
// company. At most one entry per employee id; Put overwrites, no history.
// Only the calculation workflow writes to it.
type ResultStore interface {
	Put(breakdown SalaryBreakdown)
	Get(employeeID string) (SalaryBreakdown, bool)
	All() []SalaryBreakdown
	Clear()
}
