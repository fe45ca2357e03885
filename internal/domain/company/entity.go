package company

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

type Company struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Address             string          `json:"address,omitempty"`
	ContactPersonName   string          `json:"contactPersonName,omitempty"`
	ContactPersonNumber string          `json:"contactPersonNumber,omitempty"`
	Status              Status          `json:"status"`
	OnboardingDate      string          `json:"companyOnboardingDate,omitempty"` // DD-MM-YYYY
	SalaryTemplates     SalaryTemplates `json:"salaryTemplates"`
}

// FieldType enum for salary template fields
type FieldType string

const (
	FieldTypeNumber FieldType = "NUMBER"
	FieldTypeText   FieldType = "TEXT"
)

// FieldPurpose enum for salary template fields
type FieldPurpose string

const (
	PurposeInformation FieldPurpose = "INFORMATION"
	PurposeCalculation FieldPurpose = "CALCULATION"
	PurposeDeduction   FieldPurpose = "DEDUCTION"
)

// TemplateField describes one column of a company's salary sheet.
type TemplateField struct {
	Key      string       `json:"key"`
	Label    string       `json:"label"`
	Type     FieldType    `json:"type"`
	Category string       `json:"category"`
	Purpose  FieldPurpose `json:"purpose"`
	Enabled  bool         `json:"enabled"`
}

// SalaryTemplates - the fixed three-way partition the backend expects
type SalaryTemplates struct {
	MandatoryFields []TemplateField `json:"mandatoryFields"`
	OptionalFields  []TemplateField `json:"optionalFields"`
	CustomFields    []TemplateField `json:"customFields"`
}

// EnabledFields returns the enabled field definitions across all partitions,
// in template order.
func (t SalaryTemplates) EnabledFields() []TemplateField {
	var fields []TemplateField
	for _, group := range [][]TemplateField{t.MandatoryFields, t.OptionalFields, t.CustomFields} {
		for _, f := range group {
			if f.Enabled {
				fields = append(fields, f)
			}
		}
	}
	return fields
}
