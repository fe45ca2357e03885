package employee

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Employee struct {
	EmployeeID  string          `json:"employeeId"`
	Title       string          `json:"title,omitempty"`
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	Designation string          `json:"designation,omitempty"`
	Department  string          `json:"department,omitempty"`
	Salary      decimal.Decimal `json:"salary"`
	JoiningDate string          `json:"joiningDate,omitempty"`
	LeavingDate *string         `json:"leavingDate,omitempty"`
}

// IsActive reports whether the employee is still on the payroll. Only
// employees without a leaving date are eligible for calculation.
func (e Employee) IsActive() bool {
	return e.LeavingDate == nil || strings.TrimSpace(*e.LeavingDate) == ""
}

// FullName is the display name: optional title, first name, last name.
func (e Employee) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.Title, e.FirstName, e.LastName} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// SearchName is the string the roster filter matches against.
func (e Employee) SearchName() string {
	return strings.ToLower(e.FirstName + " " + e.LastName)
}
