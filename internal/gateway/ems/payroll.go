package ems

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/domain/payroll"
)

// calculateBody is the wire shape: admin inputs are grouped in a mapping
// keyed by employee id even though the workflow submits one at a time.
// Amounts go out as plain JSON numbers, so decimals are converted to float64
// at this boundary.
type calculateBody struct {
	CompanyID    string                     `json:"companyId"`
	PayrollMonth string                     `json:"payrollMonth"`
	AdminInputs  map[string]adminInputsWire `json:"adminInputs"`
}

type adminInputsWire struct {
	AdvanceTaken float64 `json:"advanceTaken"`
	Bonus        float64 `json:"bonus"`
}

type calculateData struct {
	PayrollResults []json.RawMessage `json:"payrollResults"`
}

// rawResult covers the polymorphic result entry: salary fields either nested
// under "salary" or flat on the entry itself.
type rawResult struct {
	EmployeeID string          `json:"employeeId"`
	Salary     json.RawMessage `json:"salary"`
}

// CalculatePayroll submits one employee's admin inputs and returns the
// normalized results. An invalid request never reaches the network. An empty
// result list on HTTP success is the soft failure payroll.ErrNoResults.
func (c *Client) CalculatePayroll(ctx context.Context, req payroll.CalculationRequest) ([]payroll.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body := calculateBody{
		CompanyID:    req.CompanyID,
		PayrollMonth: req.Month,
		AdminInputs: map[string]adminInputsWire{
			req.EmployeeID: {
				AdvanceTaken: req.AdvanceTaken.InexactFloat64(),
				Bonus:        req.Bonus.InexactFloat64(),
			},
		},
	}

	var data calculateData
	if err := c.do(ctx, http.MethodPost, "/payroll/calculate-payroll", body, &data); err != nil {
		return nil, err
	}
	if len(data.PayrollResults) == 0 {
		return nil, payroll.ErrNoResults
	}

	results := make([]payroll.Result, 0, len(data.PayrollResults))
	for _, entry := range data.PayrollResults {
		result, err := normalizeResult(entry, req)
		if err != nil {
			return nil, &APIError{StatusCode: http.StatusOK, Message: "unexpected payroll result shape: " + err.Error(), Err: ErrServer}
		}
		results = append(results, result)
	}
	return results, nil
}

// normalizeResult collapses the nested-or-flat salary shape into the single
// canonical form before anything downstream sees it.
func normalizeResult(entry json.RawMessage, req payroll.CalculationRequest) (payroll.Result, error) {
	var raw rawResult
	if err := json.Unmarshal(entry, &raw); err != nil {
		return payroll.Result{}, err
	}

	var breakdown payroll.SalaryBreakdown
	if len(raw.Salary) > 0 && string(raw.Salary) != "null" {
		if err := json.Unmarshal(raw.Salary, &breakdown); err != nil {
			return payroll.Result{}, err
		}
	} else {
		if err := json.Unmarshal(entry, &breakdown); err != nil {
			return payroll.Result{}, err
		}
	}

	employeeID := raw.EmployeeID
	if employeeID == "" {
		employeeID = breakdown.EmployeeID
	}
	if employeeID == "" {
		employeeID = req.EmployeeID
	}
	breakdown.EmployeeID = employeeID
	if breakdown.Month == "" {
		breakdown.Month = req.Month
	}

	return payroll.Result{EmployeeID: employeeID, Salary: breakdown}, nil
}
