package ems

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/domain/employee"
)

// ListActiveEmployees fetches a company's roster and keeps only employees
// without a leaving date; departed employees never reach the payroll layer.
func (c *Client) ListActiveEmployees(ctx context.Context, companyID string) ([]employee.Employee, error) {
	var all []employee.Employee
	path := fmt.Sprintf("/companies/%s/employees", companyID)
	if err := c.do(ctx, http.MethodGet, path, nil, &all); err != nil {
		return nil, err
	}

	active := make([]employee.Employee, 0, len(all))
	for _, emp := range all {
		if emp.IsActive() {
			active = append(active, emp)
		}
	}
	return active, nil
}
