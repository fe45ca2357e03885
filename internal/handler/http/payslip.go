package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/handler/http/response"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/service/payslip"
)

type PayslipHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Text(w http.ResponseWriter, r *http.Request)
	PDF(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
}

type payslipHandlerImpl struct {
	payslips *payslip.Service
}

func NewPayslipHandler(payslips *payslip.Service) PayslipHandler {
	return &payslipHandlerImpl{payslips: payslips}
}

func (h *payslipHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	slip, ok := h.build(w, r)
	if !ok {
		return
	}
	response.Success(w, slip)
}

func (h *payslipHandlerImpl) Text(w http.ResponseWriter, r *http.Request) {
	slip, ok := h.build(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(h.payslips.RenderText(slip)))
}

func (h *payslipHandlerImpl) PDF(w http.ResponseWriter, r *http.Request) {
	slip, ok := h.build(w, r)
	if !ok {
		return
	}

	pdf, err := h.payslips.RenderPDF(r.Context(), slip)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="payslip-`+slip.EmployeeID+`.pdf"`)
	_, _ = w.Write(pdf)
}

func (h *payslipHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="payroll-results.csv"`)
	// Headers are already written once rows start streaming, so a mid-export
	// failure cannot be turned into an error response.
	_ = h.payslips.ExportCSV(r.Context(), w)
}

func (h *payslipHandlerImpl) build(w http.ResponseWriter, r *http.Request) (payslip.Slip, bool) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return payslip.Slip{}, false
	}

	slip, err := h.payslips.Build(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return payslip.Slip{}, false
	}
	return slip, true
}
