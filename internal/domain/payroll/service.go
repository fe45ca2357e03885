package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

// Gateway is the slice of the EMS API the workflow needs.
type Gateway interface {
	CalculatePayroll(ctx context.Context, req CalculationRequest) ([]Result, error)
}

// Notifier surfaces transient user-visible notifications. Errors never
// propagate past the workflow boundary as anything else.
type Notifier interface {
	Success(title, message string)
	Warning(title, message string)
	Error(title, message string)
}

// WorkflowService drives the per-employee calculation state machine:
// Idle -> DialogOpen -> Submitting -> Succeeded | Failed.
type WorkflowService interface {
	OpenDialog(employeeID string) error
	Submit(ctx context.Context, employeeID string, advance, bonus decimal.Decimal) (SalaryBreakdown, error)
	Cancel(employeeID string)
	State(employeeID string) WorkflowState
}
