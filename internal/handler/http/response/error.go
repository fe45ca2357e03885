package response

import (
	"errors"
	"net/http"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/domain/company"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/domain/employee"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/domain/payroll"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/gateway/ems"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/pkg/render"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Selection and workflow preconditions
	case errors.Is(err, payroll.ErrCompanyNotSelected):
		BadRequest(w, "No company selected", nil)
	case errors.Is(err, payroll.ErrMonthNotSelected):
		BadRequest(w, "No payroll month selected", nil)
	case errors.Is(err, payroll.ErrEmployeeNotInRoster):
		NotFound(w, "Employee not in the selected company's roster")
	case errors.Is(err, payroll.ErrNoDialogOpen):
		BadRequest(w, "No calculation dialog open for this employee", nil)
	case errors.Is(err, payroll.ErrCalculationInFlight):
		Conflict(w, "A calculation for this employee is already in progress")
	case errors.Is(err, payroll.ErrSelectionChanged):
		Conflict(w, "The company selection changed, result discarded")
	case errors.Is(err, payroll.ErrNoResults):
		BadRequest(w, "Backend returned no payroll results", nil)
	case errors.Is(err, payroll.ErrResultNotFound):
		NotFound(w, "No calculated salary for this employee")

	// Roster and directory errors
	case errors.Is(err, employee.ErrRosterNotLoaded):
		Conflict(w, "Roster not loaded for the selected company")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyNotListed):
		NotFound(w, "Company is not in the directory")

	// EMS backend failures
	case errors.Is(err, ems.ErrUnauthorized):
		Unauthorized(w, "EMS backend rejected the session")
	case errors.Is(err, ems.ErrNotFound):
		NotFound(w, "EMS backend resource not found")
	case errors.Is(err, ems.ErrValidation):
		BadRequest(w, emsMessage(err, "EMS backend rejected the request"), nil)
	case errors.Is(err, ems.ErrNetwork):
		ServiceUnavailable(w, "EMS backend unreachable")
	case errors.Is(err, ems.ErrServer):
		BadGateway(w, emsMessage(err, "EMS backend failed"))

	case errors.Is(err, render.ErrRendererUnavailable):
		ServiceUnavailable(w, "PDF renderer not configured")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

func emsMessage(err error, fallback string) string {
	var apiErr *ems.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
