package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/domain/payroll"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/handler/http/response"
)

type CalculationHandler interface {
	OpenDialog(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	ListResults(w http.ResponseWriter, r *http.Request)
	GetResult(w http.ResponseWriter, r *http.Request)
}

type calculationHandlerImpl struct {
	workflow payroll.WorkflowService
	results  payroll.ResultStore
}

func NewCalculationHandler(workflow payroll.WorkflowService, results payroll.ResultStore) CalculationHandler {
	return &calculationHandlerImpl{workflow: workflow, results: results}
}

func (h *calculationHandlerImpl) OpenDialog(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	if err := h.workflow.OpenDialog(employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.WorkflowStatusResponse{
		EmployeeID: employeeID,
		State:      h.workflow.State(employeeID),
	})
}

func (h *calculationHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req payroll.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	breakdown, err := h.workflow.Submit(r.Context(), employeeID, req.AdvanceTaken, req.Bonus)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary calculated successfully", breakdown)
}

func (h *calculationHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	h.workflow.Cancel(employeeID)
	response.SuccessWithMessage(w, "Dialog closed", nil)
}

func (h *calculationHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	response.Success(w, payroll.WorkflowStatusResponse{
		EmployeeID: employeeID,
		State:      h.workflow.State(employeeID),
	})
}

func (h *calculationHandlerImpl) ListResults(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.results.All())
}

func (h *calculationHandlerImpl) GetResult(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	breakdown, ok := h.results.Get(employeeID)
	if !ok {
		response.HandleError(w, payroll.ErrResultNotFound)
		return
	}

	response.Success(w, breakdown)
}
