package payroll

import "github.com/shopspring/decimal"

// SalaryBreakdown - one employee's computed values for one month. Produced by
// the EMS backend; this side never recomputes it, only stores and renders it.
type SalaryBreakdown struct {
	EmployeeID      string          `json:"employeeId"`
	BasicPay        decimal.Decimal `json:"basicPay"`
	GrossSalary     decimal.Decimal `json:"grossSalary"`
	PF              decimal.Decimal `json:"pf"`
	ESIC            decimal.Decimal `json:"esic"`
	LWF             decimal.Decimal `json:"lwf"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	NetSalary       decimal.Decimal `json:"netSalary"`
	PresentDays     int             `json:"presentDays"`
	Month           string          `json:"month"` // YYYY-MM, labelled at write time
}

// Result is the canonical calculation result entry after the gateway has
// normalized the backend's nested-or-flat salary shape.
type Result struct {
	EmployeeID string          `json:"employeeId"`
	Salary     SalaryBreakdown `json:"salary"`
}

// WorkflowState enum for the per-employee calculation state machine
type WorkflowState string

const (
	StateIdle       WorkflowState = "idle"
	StateDialogOpen WorkflowState = "dialog_open"
	StateSubmitting WorkflowState = "submitting"
	StateSucceeded  WorkflowState = "succeeded"
	StateFailed     WorkflowState = "failed"
)
