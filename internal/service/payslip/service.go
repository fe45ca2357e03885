// Package payslip projects stored salary breakdowns into printable payslips.
// Rendering is a pure read over the result store and roster cache; calling it
// twice for the same employee yields the same output and mutates nothing.
package payslip

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/domain/company"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/domain/employee"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/domain/payroll"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/pkg/render"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/service/selection"
)

// Slip is the fully formatted payslip view model. All amounts are already
// currency strings; rendering layers only lay them out.
type Slip struct {
	CompanyName     string `json:"companyName"`
	Month           string `json:"month"`
	EmployeeID      string `json:"employeeId"`
	EmployeeName    string `json:"employeeName"`
	Designation     string `json:"designation"`
	PresentDays     int    `json:"presentDays"`
	BasicPay        string `json:"basicPay"`
	GrossSalary     string `json:"grossSalary"`
	PF              string `json:"pf"`
	ESIC            string `json:"esic"`
	LWF             string `json:"lwf"`
	TotalDeductions string `json:"totalDeductions"`
	NetSalary       string `json:"netSalary"`
}

type Service struct {
	selection *selection.Service
	roster    employee.RosterService
	results   payroll.ResultStore
	companies company.Directory
	renderer  *render.GotenbergClient
}

func NewService(
	sel *selection.Service,
	roster employee.RosterService,
	results payroll.ResultStore,
	companies company.Directory,
	renderer *render.GotenbergClient,
) *Service {
	return &Service{
		selection: sel,
		roster:    roster,
		results:   results,
		companies: companies,
		renderer:  renderer,
	}
}

// FormatAmount renders a monetary value as the payslip shows it. The decimal
// zero value covers amounts the backend omitted, so a missing figure prints
// as "₹ 0.00" rather than failing the render.
func FormatAmount(d decimal.Decimal) string {
	return "₹ " + d.StringFixed(2)
}

// Build assembles the payslip for one employee from the stored breakdown.
// Identity fields come from the roster cache and the company directory; when
// either lookup misses, those fields render blank and the amounts still show.
func (s *Service) Build(ctx context.Context, employeeID string) (Slip, error) {
	breakdown, ok := s.results.Get(employeeID)
	if !ok {
		return Slip{}, payroll.ErrResultNotFound
	}

	slip := Slip{
		EmployeeID:      employeeID,
		Month:           displayMonth(breakdown.Month),
		PresentDays:     breakdown.PresentDays,
		BasicPay:        FormatAmount(breakdown.BasicPay),
		GrossSalary:     FormatAmount(breakdown.GrossSalary),
		PF:              FormatAmount(breakdown.PF),
		ESIC:            FormatAmount(breakdown.ESIC),
		LWF:             FormatAmount(breakdown.LWF),
		TotalDeductions: FormatAmount(breakdown.TotalDeductions),
		NetSalary:       FormatAmount(breakdown.NetSalary),
	}

	snap := s.selection.Snapshot()
	if emp, found := s.roster.Find(snap.CompanyID, employeeID); found {
		slip.EmployeeName = emp.FullName()
		slip.Designation = emp.Designation
	}
	if name, err := s.companyName(ctx, snap.CompanyID); err == nil {
		slip.CompanyName = name
	}
	return slip, nil
}

func (s *Service) companyName(ctx context.Context, companyID string) (string, error) {
	if companyID == "" {
		return "", company.ErrCompanyNotFound
	}
	companies, err := s.companies.ListCompanies(ctx)
	if err != nil {
		return "", err
	}
	for _, c := range companies {
		if c.ID == companyID {
			return c.Name, nil
		}
	}
	return "", company.ErrCompanyNotFound
}

// RenderText lays the slip out as plain text for terminal preview and tests.
func (s *Service) RenderText(slip Slip) string {
	var b strings.Builder
	line := strings.Repeat("-", 46)

	fmt.Fprintf(&b, "%s\n", slip.CompanyName)
	fmt.Fprintf(&b, "Official Payslip - %s\n", slip.Month)
	fmt.Fprintf(&b, "%s\n", line)
	fmt.Fprintf(&b, "Employee      : %s\n", slip.EmployeeName)
	fmt.Fprintf(&b, "Employee ID   : %s\n", slip.EmployeeID)
	fmt.Fprintf(&b, "Designation   : %s\n", slip.Designation)
	fmt.Fprintf(&b, "Present Days  : %d\n", slip.PresentDays)
	fmt.Fprintf(&b, "%s\n", line)
	fmt.Fprintf(&b, "Earnings\n")
	fmt.Fprintf(&b, "  Basic Pay          %s\n", slip.BasicPay)
	fmt.Fprintf(&b, "  Gross Salary       %s\n", slip.GrossSalary)
	fmt.Fprintf(&b, "Deductions\n")
	fmt.Fprintf(&b, "  PF (12%%)           %s\n", slip.PF)
	fmt.Fprintf(&b, "  ESIC (0.75%%)       %s\n", slip.ESIC)
	fmt.Fprintf(&b, "  LWF                %s\n", slip.LWF)
	fmt.Fprintf(&b, "  Total Deductions   %s\n", slip.TotalDeductions)
	fmt.Fprintf(&b, "%s\n", line)
	fmt.Fprintf(&b, "Net Salary           %s\n", slip.NetSalary)
	fmt.Fprintf(&b, "%s\n", line)
	fmt.Fprintf(&b, "This is a computer-generated payslip.\n")
	return b.String()
}

// RenderHTML produces the document fed to the PDF converter.
func (s *Service) RenderHTML(slip Slip) (string, error) {
	var buf bytes.Buffer
	if err := slipTemplate.Execute(&buf, slip); err != nil {
		return "", fmt.Errorf("render payslip html: %w", err)
	}
	return buf.String(), nil
}

// RenderPDF converts the slip to PDF through Gotenberg. It fails when the
// converter is not configured; the text and HTML renders remain available.
func (s *Service) RenderPDF(ctx context.Context, slip Slip) ([]byte, error) {
	if s.renderer == nil {
		return nil, render.ErrRendererUnavailable
	}
	html, err := s.RenderHTML(slip)
	if err != nil {
		return nil, err
	}
	return s.renderer.RenderHTML(ctx, html)
}

// ExportCSV writes every stored breakdown as one CSV row, in first-write
// order, with raw numeric amounts suitable for spreadsheet import.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	snap := s.selection.Snapshot()

	cw := csv.NewWriter(w)
	header := []string{
		"employeeId", "employeeName", "designation", "month", "presentDays",
		"basicPay", "grossSalary", "pf", "esic", "lwf", "totalDeductions", "netSalary",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, breakdown := range s.results.All() {
		var name, designation string
		if emp, found := s.roster.Find(snap.CompanyID, breakdown.EmployeeID); found {
			name = emp.FullName()
			designation = emp.Designation
		}
		row := []string{
			breakdown.EmployeeID,
			name,
			designation,
			breakdown.Month,
			fmt.Sprintf("%d", breakdown.PresentDays),
			breakdown.BasicPay.StringFixed(2),
			breakdown.GrossSalary.StringFixed(2),
			breakdown.PF.StringFixed(2),
			breakdown.ESIC.StringFixed(2),
			breakdown.LWF.StringFixed(2),
			breakdown.TotalDeductions.StringFixed(2),
			breakdown.NetSalary.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// displayMonth turns "2024-03" into "March 2024"; anything unparsable passes
// through unchanged.
func displayMonth(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.Format("January 2006")
}

var slipTemplate = template.Must(template.New("payslip").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Arial, sans-serif; margin: 40px; color: #1f2937; }
  h1 { font-size: 20px; margin-bottom: 0; }
  h2 { font-size: 14px; font-weight: normal; color: #6b7280; margin-top: 4px; }
  table { width: 100%; border-collapse: collapse; margin-top: 16px; }
  th, td { text-align: left; padding: 6px 8px; border-bottom: 1px solid #e5e7eb; }
  th { background: #f9fafb; }
  td.amount { text-align: right; }
  .net { font-weight: bold; }
  .footer { margin-top: 24px; font-size: 11px; color: #9ca3af; }
</style>
</head>
<body>
  <h1>{{.CompanyName}}</h1>
  <h2>Official Payslip - {{.Month}}</h2>
  <table>
    <tr><th>Employee</th><td>{{.EmployeeName}}</td></tr>
    <tr><th>Employee ID</th><td>{{.EmployeeID}}</td></tr>
    <tr><th>Designation</th><td>{{.Designation}}</td></tr>
    <tr><th>Present Days</th><td>{{.PresentDays}}</td></tr>
  </table>
  <table>
    <tr><th colspan="2">Earnings</th></tr>
    <tr><td>Basic Pay</td><td class="amount">{{.BasicPay}}</td></tr>
    <tr><td>Gross Salary</td><td class="amount">{{.GrossSalary}}</td></tr>
    <tr><th colspan="2">Deductions</th></tr>
    <tr><td>PF (12%)</td><td class="amount">{{.PF}}</td></tr>
    <tr><td>ESIC (0.75%)</td><td class="amount">{{.ESIC}}</td></tr>
    <tr><td>LWF</td><td class="amount">{{.LWF}}</td></tr>
    <tr><td>Total Deductions</td><td class="amount">{{.TotalDeductions}}</td></tr>
    <tr class="net"><td>Net Salary</td><td class="amount">{{.NetSalary}}</td></tr>
  </table>
  <p class="footer">This is a computer-generated payslip.</p>
</body>
</html>
`))
