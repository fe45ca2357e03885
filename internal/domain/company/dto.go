package company

import (
	"strings"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/pkg/validator"
)

type CreateCompanyRequest struct {
	Name                string           `json:"name"`
	Address             string           `json:"address"`
	ContactPersonName   string           `json:"contactPersonName"`
	ContactPersonNumber string           `json:"contactPersonNumber"`
	Status              Status           `json:"status"`
	OnboardingDate      string           `json:"companyOnboardingDate"` // DD-MM-YYYY
	SalaryTemplates     *SalaryTemplates `json:"salaryTemplates,omitempty"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Company name is required"})
	}
	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{Field: "address", Message: "Address is required"})
	}
	if validator.IsEmpty(r.ContactPersonName) {
		errs = append(errs, validator.ValidationError{Field: "contactPersonName", Message: "Contact person name is required"})
	}
	if validator.IsEmpty(r.ContactPersonNumber) {
		errs = append(errs, validator.ValidationError{Field: "contactPersonNumber", Message: "Contact person number is required"})
	}
	if r.Status != StatusActive && r.Status != StatusInactive {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "Status must be ACTIVE or INACTIVE"})
	}
	if !validator.IsEmpty(r.OnboardingDate) && !validator.IsValidOnboardingDate(r.OnboardingDate) {
		errs = append(errs, validator.ValidationError{Field: "companyOnboardingDate", Message: "Date must be in DD-MM-YYYY format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Normalize applies the upstream conventions: names uppercased, the fixed
// salary template filled in when the form did not send one.
func (r *CreateCompanyRequest) Normalize() {
	r.Name = strings.ToUpper(strings.TrimSpace(r.Name))
	r.Address = strings.ToUpper(strings.TrimSpace(r.Address))
	r.ContactPersonName = strings.ToUpper(strings.TrimSpace(r.ContactPersonName))
	if r.SalaryTemplates == nil {
		templates := DefaultSalaryTemplates()
		r.SalaryTemplates = &templates
	}
}

// DefaultSalaryTemplates returns the fixed template set the backend expects
// for a newly onboarded company.
func DefaultSalaryTemplates() SalaryTemplates {
	return SalaryTemplates{
		MandatoryFields: []TemplateField{
			{Key: "serialNumber", Label: "S.No", Type: FieldTypeNumber, Category: "MANDATORY_NO_RULES", Purpose: PurposeInformation, Enabled: true},
			{Key: "companyName", Label: "Company Name", Type: FieldTypeText, Category: "MANDATORY_NO_RULES", Purpose: PurposeInformation, Enabled: true},
			{Key: "employeeName", Label: "Employee Name", Type: FieldTypeText, Category: "MANDATORY_NO_RULES", Purpose: PurposeInformation, Enabled: true},
			{Key: "designation", Label: "Designation", Type: FieldTypeText, Category: "MANDATORY_NO_RULES", Purpose: PurposeInformation, Enabled: true},
			{Key: "monthlyPay", Label: "Monthly Pay", Type: FieldTypeNumber, Category: "MANDATORY_NO_RULES", Purpose: PurposeCalculation, Enabled: true},
			{Key: "grossSalary", Label: "Gross Salary", Type: FieldTypeNumber, Category: "MANDATORY_NO_RULES", Purpose: PurposeCalculation, Enabled: true},
			{Key: "totalDeduction", Label: "Total Deduction", Type: FieldTypeNumber, Category: "MANDATORY_NO_RULES", Purpose: PurposeCalculation, Enabled: true},
			{Key: "netSalary", Label: "Net Salary", Type: FieldTypeNumber, Category: "MANDATORY_NO_RULES", Purpose: PurposeCalculation, Enabled: true},
		},
		OptionalFields: []TemplateField{
			{Key: "pf", Label: "PF (12%)", Type: FieldTypeNumber, Category: "OPTIONAL_NO_RULES", Purpose: PurposeDeduction, Enabled: true},
			{Key: "esic", Label: "ESIC (0.75%)", Type: FieldTypeNumber, Category: "OPTIONAL_NO_RULES", Purpose: PurposeDeduction, Enabled: true},
			{Key: "fatherName", Label: "Father Name", Type: FieldTypeText, Category: "OPTIONAL_NO_RULES", Purpose: PurposeInformation, Enabled: true},
			{Key: "uanNumber", Label: "UAN No.", Type: FieldTypeText, Category: "OPTIONAL_NO_RULES", Purpose: PurposeInformation, Enabled: true},
		},
		CustomFields: []TemplateField{},
	}
}
