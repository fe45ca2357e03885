package workflow

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/domain/employee"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/domain/payroll"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/pkg/validator"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/repository/memory"
	rosterService "github.com/bag-arunava-7/staffhub-payroll-go/internal/service/roster"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/service/selection"
)

type fakeEmployeeGateway struct{}

func (fakeEmployeeGateway) ListActiveEmployees(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return nil, nil
}

type fakePayrollGateway struct {
	calls   atomic.Int32
	started chan struct{} // closed when the first call begins
	gate    chan struct{} // when set, calls block until it closes
	lastReq payroll.CalculationRequest
	fn      func(req payroll.CalculationRequest) ([]payroll.Result, error)
}

func (g *fakePayrollGateway) CalculatePayroll(ctx context.Context, req payroll.CalculationRequest) ([]payroll.Result, error) {
	if g.calls.Add(1) == 1 && g.started != nil {
		close(g.started)
	}
	if g.gate != nil {
		<-g.gate
	}
	g.lastReq = req
	return g.fn(req)
}

type recordingNotifier struct {
	mu       sync.Mutex
	levels   []string
	messages []string
}

func (n *recordingNotifier) record(level, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.levels = append(n.levels, level)
	n.messages = append(n.messages, message)
}

func (n *recordingNotifier) Success(title, message string) { n.record("success", message) }
func (n *recordingNotifier) Warning(title, message string) { n.record("warning", message) }
func (n *recordingNotifier) Error(title, message string)   { n.record("error", message) }

func (n *recordingNotifier) last() (string, string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.levels) == 0 {
		return "", ""
	}
	return n.levels[len(n.levels)-1], n.messages[len(n.messages)-1]
}

type fixture struct {
	workflow  payroll.WorkflowService
	gateway   *fakePayrollGateway
	selection *selection.Service
	results   *memory.ResultStore
	notifier  *recordingNotifier
}

func newFixture(t *testing.T, gateway *fakePayrollGateway) *fixture {
	t.Helper()

	results := memory.NewResultStore()
	sel := selection.NewService(results)

	cache := memory.NewRosterCache()
	cache.Put("C1", []employee.Employee{
		{EmployeeID: "E107", FirstName: "Asha", LastName: "Verma", Designation: "Engineer"},
		{EmployeeID: "E201", FirstName: "Rohan", LastName: "Mehta", Designation: "Analyst"},
	})
	roster := rosterService.NewService(fakeEmployeeGateway{}, cache)

	notifier := &recordingNotifier{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		workflow:  NewService(gateway, sel, roster, results, notifier, logger),
		gateway:   gateway,
		selection: sel,
		results:   results,
		notifier:  notifier,
	}
}

func nestedResult(employeeID string, net int64) []payroll.Result {
	return []payroll.Result{{
		EmployeeID: employeeID,
		Salary: payroll.SalaryBreakdown{
			EmployeeID:  employeeID,
			BasicPay:    decimal.NewFromInt(30000),
			GrossSalary: decimal.NewFromInt(45000),
			NetSalary:   decimal.NewFromInt(net),
			PresentDays: 22,
		},
	}}
}

func TestWorkflow_SubmitSuccessStoresResult(t *testing.T) {
	gateway := &fakePayrollGateway{fn: func(req payroll.CalculationRequest) ([]payroll.Result, error) {
		return nestedResult(req.EmployeeID, 42000), nil
	}}
	f := newFixture(t, gateway)
	f.selection.SelectCompany("C1")
	_, err := f.selection.SelectMonth("2024-03")
	require.NoError(t, err)

	require.NoError(t, f.workflow.OpenDialog("E107"))
	assert.Equal(t, payroll.StateDialogOpen, f.workflow.State("E107"))

	breakdown, err := f.workflow.Submit(context.Background(), "E107", decimal.NewFromInt(500), decimal.NewFromInt(1000))
	require.NoError(t, err)

	assert.True(t, breakdown.NetSalary.Equal(decimal.NewFromInt(42000)))
	assert.Equal(t, "2024-03", breakdown.Month)

	stored, ok := f.results.Get("E107")
	require.True(t, ok)
	assert.True(t, stored.NetSalary.Equal(decimal.NewFromInt(42000)))

	// Dialog closed after success
	assert.Equal(t, payroll.StateIdle, f.workflow.State("E107"))

	level, message := f.notifier.last()
	assert.Equal(t, "success", level)
	assert.Equal(t, "Salary calculated successfully", message)

	assert.Equal(t, "C1", gateway.lastReq.CompanyID)
	assert.Equal(t, "2024-03", gateway.lastReq.Month)
	assert.True(t, gateway.lastReq.AdvanceTaken.Equal(decimal.NewFromInt(500)))
	assert.True(t, gateway.lastReq.Bonus.Equal(decimal.NewFromInt(1000)))
}

func TestWorkflow_EmptyResultKeepsDialogOpenAndStoreUntouched(t *testing.T) {
	gateway := &fakePayrollGateway{fn: func(payroll.CalculationRequest) ([]payroll.Result, error) {
		return nil, payroll.ErrNoResults
	}}
	f := newFixture(t, gateway)
	f.selection.SelectCompany("C1")
	f.selection.SelectMonth("2024-03")

	require.NoError(t, f.workflow.OpenDialog("E107"))
	_, err := f.workflow.Submit(context.Background(), "E107", decimal.Zero, decimal.Zero)

	assert.ErrorIs(t, err, payroll.ErrNoResults)
	assert.Empty(t, f.results.All())
	assert.Equal(t, payroll.StateDialogOpen, f.workflow.State("E107"))

	level, _ := f.notifier.last()
	assert.Equal(t, "warning", level)
}

func TestWorkflow_GatewayFailureKeepsDialogOpen(t *testing.T) {
	gateway := &fakePayrollGateway{fn: func(payroll.CalculationRequest) ([]payroll.Result, error) {
		return nil, assert.AnError
	}}
	f := newFixture(t, gateway)
	f.selection.SelectCompany("C1")
	f.selection.SelectMonth("2024-03")

	require.NoError(t, f.workflow.OpenDialog("E107"))
	_, err := f.workflow.Submit(context.Background(), "E107", decimal.Zero, decimal.Zero)

	require.Error(t, err)
	assert.Empty(t, f.results.All())
	assert.Equal(t, payroll.StateDialogOpen, f.workflow.State("E107"))

	level, _ := f.notifier.last()
	assert.Equal(t, "error", level)
}

func TestWorkflow_OpenDialogPreconditions(t *testing.T) {
	f := newFixture(t, &fakePayrollGateway{})

	// Nothing selected
	assert.ErrorIs(t, f.workflow.OpenDialog("E107"), payroll.ErrCompanyNotSelected)

	// Company selected, month missing
	f.selection.SelectCompany("C1")
	assert.ErrorIs(t, f.workflow.OpenDialog("E107"), payroll.ErrMonthNotSelected)

	// Unknown employee
	f.selection.SelectMonth("2024-03")
	assert.ErrorIs(t, f.workflow.OpenDialog("E999"), payroll.ErrEmployeeNotInRoster)

	assert.Equal(t, int32(0), f.gateway.calls.Load())
}

func TestWorkflow_SubmitWithoutDialogFails(t *testing.T) {
	f := newFixture(t, &fakePayrollGateway{})
	f.selection.SelectCompany("C1")
	f.selection.SelectMonth("2024-03")

	_, err := f.workflow.Submit(context.Background(), "E107", decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, payroll.ErrNoDialogOpen)
	assert.Equal(t, int32(0), f.gateway.calls.Load())
}

func TestWorkflow_NegativeInputRejectedBeforeNetwork(t *testing.T) {
	f := newFixture(t, &fakePayrollGateway{})
	f.selection.SelectCompany("C1")
	f.selection.SelectMonth("2024-03")
	require.NoError(t, f.workflow.OpenDialog("E107"))

	_, err := f.workflow.Submit(context.Background(), "E107", decimal.NewFromInt(-1), decimal.Zero)
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, int32(0), f.gateway.calls.Load())
	assert.Equal(t, payroll.StateDialogOpen, f.workflow.State("E107"))
}

func TestWorkflow_ConcurrentSubmitRejected(t *testing.T) {
	gateway := &fakePayrollGateway{
		started: make(chan struct{}),
		gate:    make(chan struct{}),
		fn: func(req payroll.CalculationRequest) ([]payroll.Result, error) {
			return nestedResult(req.EmployeeID, 42000), nil
		},
	}
	f := newFixture(t, gateway)
	f.selection.SelectCompany("C1")
	f.selection.SelectMonth("2024-03")
	require.NoError(t, f.workflow.OpenDialog("E107"))

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = f.workflow.Submit(context.Background(), "E107", decimal.Zero, decimal.Zero)
	}()

	<-gateway.started
	assert.Equal(t, payroll.StateSubmitting, f.workflow.State("E107"))

	_, err := f.workflow.Submit(context.Background(), "E107", decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, payroll.ErrCalculationInFlight)

	// Reopening the dialog is also blocked while in flight
	assert.ErrorIs(t, f.workflow.OpenDialog("E107"), payroll.ErrCalculationInFlight)

	close(gateway.gate)
	wg.Wait()

	require.NoError(t, firstErr)
	assert.Equal(t, int32(1), gateway.calls.Load())
	_, ok := f.results.Get("E107")
	assert.True(t, ok)
}

func TestWorkflow_DifferentEmployeesSubmitIndependently(t *testing.T) {
	gateway := &fakePayrollGateway{fn: func(req payroll.CalculationRequest) ([]payroll.Result, error) {
		return nestedResult(req.EmployeeID, 42000), nil
	}}
	f := newFixture(t, gateway)
	f.selection.SelectCompany("C1")
	f.selection.SelectMonth("2024-03")

	require.NoError(t, f.workflow.OpenDialog("E107"))
	require.NoError(t, f.workflow.OpenDialog("E201"))

	_, err := f.workflow.Submit(context.Background(), "E107", decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	_, err = f.workflow.Submit(context.Background(), "E201", decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	assert.Len(t, f.results.All(), 2)
}

func TestWorkflow_StaleResponseDroppedAfterCompanyChange(t *testing.T) {
	gateway := &fakePayrollGateway{
		started: make(chan struct{}),
		gate:    make(chan struct{}),
		fn: func(req payroll.CalculationRequest) ([]payroll.Result, error) {
			return nestedResult(req.EmployeeID, 42000), nil
		},
	}
	f := newFixture(t, gateway)
	f.selection.SelectCompany("C1")
	f.selection.SelectMonth("2024-03")
	require.NoError(t, f.workflow.OpenDialog("E107"))

	var wg sync.WaitGroup
	wg.Add(1)
	var submitErr error
	go func() {
		defer wg.Done()
		_, submitErr = f.workflow.Submit(context.Background(), "E107", decimal.Zero, decimal.Zero)
	}()

	// Switch companies while the calculation is in flight
	<-gateway.started
	f.selection.SelectCompany("C2")
	close(gateway.gate)
	wg.Wait()

	assert.ErrorIs(t, submitErr, payroll.ErrSelectionChanged)
	assert.Empty(t, f.results.All())
	assert.Equal(t, payroll.StateIdle, f.workflow.State("E107"))
}

func TestWorkflow_SubmitAfterCompanyChangeFailsBeforeNetwork(t *testing.T) {
	f := newFixture(t, &fakePayrollGateway{})
	f.selection.SelectCompany("C1")
	f.selection.SelectMonth("2024-03")
	require.NoError(t, f.workflow.OpenDialog("E107"))

	f.selection.SelectCompany("C2")

	_, err := f.workflow.Submit(context.Background(), "E107", decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, payroll.ErrSelectionChanged)
	assert.Equal(t, int32(0), f.gateway.calls.Load())
	assert.Equal(t, payroll.StateIdle, f.workflow.State("E107"))
}

func TestWorkflow_CancelDiscardsDialog(t *testing.T) {
	f := newFixture(t, &fakePayrollGateway{})
	f.selection.SelectCompany("C1")
	f.selection.SelectMonth("2024-03")
	require.NoError(t, f.workflow.OpenDialog("E107"))

	f.workflow.Cancel("E107")

	assert.Equal(t, payroll.StateIdle, f.workflow.State("E107"))
	_, err := f.workflow.Submit(context.Background(), "E107", decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, payroll.ErrNoDialogOpen)
}

func TestWorkflow_RecalculationOverwritesStoredResult(t *testing.T) {
	net := int64(42000)
	gateway := &fakePayrollGateway{fn: func(req payroll.CalculationRequest) ([]payroll.Result, error) {
		return nestedResult(req.EmployeeID, net), nil
	}}
	f := newFixture(t, gateway)
	f.selection.SelectCompany("C1")
	f.selection.SelectMonth("2024-03")

	require.NoError(t, f.workflow.OpenDialog("E107"))
	_, err := f.workflow.Submit(context.Background(), "E107", decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	net = 43500
	require.NoError(t, f.workflow.OpenDialog("E107"))
	_, err = f.workflow.Submit(context.Background(), "E107", decimal.NewFromInt(500), decimal.Zero)
	require.NoError(t, err)

	stored, ok := f.results.Get("E107")
	require.True(t, ok)
	assert.True(t, stored.NetSalary.Equal(decimal.NewFromInt(43500)))
	assert.Len(t, f.results.All(), 1)
}

func TestWorkflow_MultipleResultsTakesFirst(t *testing.T) {
	gateway := &fakePayrollGateway{fn: func(req payroll.CalculationRequest) ([]payroll.Result, error) {
		first := nestedResult(req.EmployeeID, 42000)
		second := nestedResult("E201", 99999)
		return append(first, second...), nil
	}}
	f := newFixture(t, gateway)
	f.selection.SelectCompany("C1")
	f.selection.SelectMonth("2024-03")

	require.NoError(t, f.workflow.OpenDialog("E107"))
	breakdown, err := f.workflow.Submit(context.Background(), "E107", decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	assert.Equal(t, "E107", breakdown.EmployeeID)
	assert.True(t, breakdown.NetSalary.Equal(decimal.NewFromInt(42000)))
	assert.Len(t, f.results.All(), 1)
}
