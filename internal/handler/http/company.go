package http

import (
	"encoding/json"
	"net/http"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/domain/company"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/gateway/ems"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/handler/http/response"
)

type CompanyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type companyHandlerImpl struct {
	gateway *ems.Client
}

func NewCompanyHandler(gateway *ems.Client) CompanyHandler {
	return &companyHandlerImpl{gateway: gateway}
}

func (h *companyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.gateway.ListCompanies(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, companies)
}

func (h *companyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req company.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.gateway.CreateCompany(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Company created", created)
}
