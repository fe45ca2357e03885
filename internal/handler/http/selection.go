package http

import (
	"encoding/json"
	"net/http"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/domain/company"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/handler/http/response"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/service/selection"
)

type SelectionHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	SelectCompany(w http.ResponseWriter, r *http.Request)
	SelectMonth(w http.ResponseWriter, r *http.Request)
}

type selectionHandlerImpl struct {
	selection *selection.Service
	companies company.Directory
}

func NewSelectionHandler(sel *selection.Service, companies company.Directory) SelectionHandler {
	return &selectionHandlerImpl{selection: sel, companies: companies}
}

type selectCompanyRequest struct {
	CompanyID string `json:"companyId"`
}

type selectMonthRequest struct {
	Month string `json:"month"`
}

func (h *selectionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.selection.Snapshot())
}

// SelectCompany switches the working company. The id must be in the
// directory; the roster is fetched lazily by the roster endpoints.
func (h *selectionHandlerImpl) SelectCompany(w http.ResponseWriter, r *http.Request) {
	var req selectCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if req.CompanyID == "" {
		response.BadRequest(w, "Company ID is required", nil)
		return
	}

	companies, err := h.companies.ListCompanies(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	listed := false
	for _, c := range companies {
		if c.ID == req.CompanyID {
			listed = true
			break
		}
	}
	if !listed {
		response.HandleError(w, company.ErrCompanyNotListed)
		return
	}

	snap := h.selection.SelectCompany(req.CompanyID)
	response.Success(w, snap)
}

func (h *selectionHandlerImpl) SelectMonth(w http.ResponseWriter, r *http.Request) {
	var req selectMonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	snap, err := h.selection.SelectMonth(req.Month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, snap)
}
