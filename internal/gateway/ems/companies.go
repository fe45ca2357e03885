package ems

import (
	"context"
	"net/http"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/domain/company"
)

type companiesData struct {
	Companies []company.Company `json:"companies"`
}

// ListCompanies fetches all companies. No retries; a failure leaves the
// caller's selection and caches untouched.
func (c *Client) ListCompanies(ctx context.Context) ([]company.Company, error) {
	var data companiesData
	if err := c.do(ctx, http.MethodGet, "/companies", nil, &data); err != nil {
		return nil, err
	}
	return data.Companies, nil
}

// CreateCompany registers a company with its salary template definition.
func (c *Client) CreateCompany(ctx context.Context, req company.CreateCompanyRequest) (company.Company, error) {
	if err := req.Validate(); err != nil {
		return company.Company{}, err
	}
	req.Normalize()

	var created company.Company
	if err := c.do(ctx, http.MethodPost, "/companies", req, &created); err != nil {
		return company.Company{}, err
	}
	return created, nil
}
