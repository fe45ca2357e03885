// Package workflow drives the per-employee calculation state machine:
//
//	Idle -> DialogOpen -> Submitting -> Succeeded | Failed
//
// It is the only writer of the payroll result store. Failures are converted
// into notifications and leave prior state untouched; a response that comes
// back after the company selection moved on is dropped, never applied.
package workflow

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/domain/employee"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/domain/payroll"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/service/selection"
)

type dialog struct {
	state   payroll.WorkflowState
	epoch   uint64
	advance decimal.Decimal
	bonus   decimal.Decimal
}

type Service struct {
	mu        sync.Mutex
	gateway   payroll.Gateway
	selection *selection.Service
	roster    employee.RosterService
	results   payroll.ResultStore
	notifier  payroll.Notifier
	logger    *slog.Logger
	dialogs   map[string]*dialog
}

func NewService(
	gateway payroll.Gateway,
	sel *selection.Service,
	roster employee.RosterService,
	results payroll.ResultStore,
	notifier payroll.Notifier,
	logger *slog.Logger,
) payroll.WorkflowService {
	return &Service{
		gateway:   gateway,
		selection: sel,
		roster:    roster,
		results:   results,
		notifier:  notifier,
		logger:    logger,
		dialogs:   make(map[string]*dialog),
	}
}

// OpenDialog moves an employee from Idle to DialogOpen. Company and month
// must already be selected and the employee must be in the current roster;
// these are UI-boundary preconditions, not state-machine errors.
func (s *Service) OpenDialog(employeeID string) error {
	snap := s.selection.Snapshot()
	if snap.CompanyID == "" {
		return payroll.ErrCompanyNotSelected
	}
	if snap.Month == "" {
		return payroll.ErrMonthNotSelected
	}
	if _, ok := s.roster.Find(snap.CompanyID, employeeID); !ok {
		return payroll.ErrEmployeeNotInRoster
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.dialogs[employeeID]; ok && d.state == payroll.StateSubmitting {
		return payroll.ErrCalculationInFlight
	}
	s.dialogs[employeeID] = &dialog{state: payroll.StateDialogOpen, epoch: snap.Epoch}
	return nil
}

// Submit runs DialogOpen -> Submitting -> Succeeded|Failed. A second submit
// for an employee already Submitting is rejected; dialogs for different
// employees may be in flight concurrently. On success the breakdown is
// written to the result store and the dialog closes; on failure the dialog
// stays open with its inputs retained.
func (s *Service) Submit(ctx context.Context, employeeID string, advance, bonus decimal.Decimal) (payroll.SalaryBreakdown, error) {
	s.mu.Lock()
	d, ok := s.dialogs[employeeID]
	if !ok {
		s.mu.Unlock()
		return payroll.SalaryBreakdown{}, payroll.ErrNoDialogOpen
	}
	if d.state == payroll.StateSubmitting {
		s.mu.Unlock()
		return payroll.SalaryBreakdown{}, payroll.ErrCalculationInFlight
	}

	snap := s.selection.Snapshot()
	if snap.Epoch != d.epoch {
		// The company changed since the dialog opened; its inputs belong to
		// a roster that is no longer selected.
		delete(s.dialogs, employeeID)
		s.mu.Unlock()
		return payroll.SalaryBreakdown{}, payroll.ErrSelectionChanged
	}

	d.advance, d.bonus = advance, bonus

	req := payroll.CalculationRequest{
		CompanyID:    snap.CompanyID,
		Month:        snap.Month,
		EmployeeID:   employeeID,
		AdvanceTaken: advance,
		Bonus:        bonus,
	}
	if err := req.Validate(); err != nil {
		// Refused without leaving DialogOpen; no network call is made.
		s.mu.Unlock()
		s.notifier.Error("Error", "Please select company, month & employee.")
		return payroll.SalaryBreakdown{}, err
	}

	d.state = payroll.StateSubmitting
	s.mu.Unlock()

	results, err := s.gateway.CalculatePayroll(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok = s.dialogs[employeeID]
	if !ok {
		// Cancelled while in flight; discard whatever came back.
		s.logger.Debug("dropping calculation result for cancelled dialog",
			slog.String("employee_id", employeeID))
		if err != nil {
			return payroll.SalaryBreakdown{}, err
		}
		return payroll.SalaryBreakdown{}, payroll.ErrNoDialogOpen
	}

	if err != nil {
		d.state = payroll.StateDialogOpen
		if errors.Is(err, payroll.ErrNoResults) {
			s.notifier.Warning("No results", "Backend returned no payroll results.")
		} else {
			s.notifier.Error("Error", err.Error())
		}
		return payroll.SalaryBreakdown{}, err
	}

	if !s.selection.Matches(snap) {
		// Stale response: the selection moved on while the backend was
		// computing. Drop it silently rather than mislabel the new roster.
		delete(s.dialogs, employeeID)
		s.logger.Debug("dropping stale calculation result",
			slog.String("employee_id", employeeID),
			slog.String("company_id", req.CompanyID))
		return payroll.SalaryBreakdown{}, payroll.ErrSelectionChanged
	}

	if len(results) > 1 {
		s.logger.Warn("backend returned multiple payroll results for a single-employee request, taking the first",
			slog.String("employee_id", employeeID),
			slog.Int("result_count", len(results)))
	}

	breakdown := results[0].Salary
	if breakdown.Month == "" {
		breakdown.Month = req.Month
	}

	d.state = payroll.StateSucceeded
	s.results.Put(breakdown)
	delete(s.dialogs, employeeID)

	s.notifier.Success("Success", "Salary calculated successfully")
	return breakdown, nil
}

// Cancel closes the dialog from any state, discarding uncommitted inputs.
// Nothing is ever written to the result store before Succeeded.
func (s *Service) Cancel(employeeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.dialogs, employeeID)
}

// State reports the machine position for one employee; employees without an
// open dialog are Idle.
func (s *Service) State(employeeID string) payroll.WorkflowState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.dialogs[employeeID]; ok {
		return d.state
	}
	return payroll.StateIdle
}
