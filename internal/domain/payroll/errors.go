package payroll

import "errors"

var (
	ErrNoResults           = errors.New("backend returned no payroll results")
	ErrCalculationInFlight = errors.New("a calculation for this employee is already in progress")
	ErrCompanyNotSelected  = errors.New("no company selected")
	ErrMonthNotSelected    = errors.New("no payroll month selected")
	ErrEmployeeNotInRoster = errors.New("employee is not in the selected company's roster")
	ErrNoDialogOpen        = errors.New("no calculation dialog is open for this employee")
	ErrSelectionChanged    = errors.New("selection changed while the calculation was in flight")
	ErrResultNotFound      = errors.New("no calculated salary for this employee")
)
