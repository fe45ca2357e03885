package http

import (
	"net/http"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/domain/employee"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/domain/payroll"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/handler/http/response"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/service/selection"
)

type RosterHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
}

type rosterHandlerImpl struct {
	selection *selection.Service
	roster    employee.RosterService
}

func NewRosterHandler(sel *selection.Service, roster employee.RosterService) RosterHandler {
	return &rosterHandlerImpl{selection: sel, roster: roster}
}

// List returns the selected company's active roster, fetching it on first
// use. The optional search query filters on first and last name.
func (h *rosterHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	snap := h.selection.Snapshot()
	if snap.CompanyID == "" {
		response.HandleError(w, payroll.ErrCompanyNotSelected)
		return
	}

	employees, err := h.roster.Get(r.Context(), snap.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if term := r.URL.Query().Get("search"); term != "" {
		employees, err = h.roster.Filter(snap.CompanyID, term)
		if err != nil {
			response.HandleError(w, err)
			return
		}
	}

	response.Success(w, employees)
}

func (h *rosterHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	snap := h.selection.Snapshot()
	if snap.CompanyID == "" {
		response.HandleError(w, payroll.ErrCompanyNotSelected)
		return
	}

	employees, err := h.roster.Refresh(r.Context(), snap.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}
