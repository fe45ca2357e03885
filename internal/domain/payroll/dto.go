package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/pkg/validator"
)

// AdminInput - the manual per-employee adjustments supplied before calculation.
type AdminInput struct {
	AdvanceTaken decimal.Decimal `json:"advanceTaken"`
	Bonus        decimal.Decimal `json:"bonus"`
}

// CalculationRequest carries everything the backend needs to compute one
// employee's salary for one month.
type CalculationRequest struct {
	CompanyID    string
	Month        string // YYYY-MM
	EmployeeID   string
	AdvanceTaken decimal.Decimal
	Bonus        decimal.Decimal
}

func (r CalculationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{Field: "companyId", Message: "Company is required"})
	}
	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "payrollMonth", Message: "Payroll month is required"})
	} else if !validator.IsValidPayrollMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "payrollMonth", Message: "Payroll month must be in YYYY-MM format"})
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "Employee is required"})
	}
	if r.AdvanceTaken.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "advanceTaken", Message: "Advance taken cannot be negative"})
	}
	if r.Bonus.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bonus", Message: "Bonus cannot be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SubmitRequest is the dialog form body.
type SubmitRequest struct {
	AdvanceTaken decimal.Decimal `json:"advanceTaken"`
	Bonus        decimal.Decimal `json:"bonus"`
}

// WorkflowStatusResponse reports the state machine position for one employee.
type WorkflowStatusResponse struct {
	EmployeeID string        `json:"employeeId"`
	State      WorkflowState `json:"state"`
}
