package core

import (
	"errors"
	"fmt"
	"strings"
)

// Column names of the compliance workbook that feed a ComplianceRecord.
const (
	ColFacility  = "dd_nombre"
	ColClinic    = "ee_nombre"
	ColScheme    = "esquema_actual"
	ColYear      = "año_esquema_actual"
	ColSegment   = "segmento"
	ColPatientID = "paciente_id"
	ColCondition = "condicion"
)

// MissingValue replaces optional fields that are absent or hold a missing-cell
// marker in the source sheet.
const MissingValue = "N/A"

// NonCompliant is the compliance value that marks a row for extraction.
const NonCompliant = "NO"

// FieldType represents the expected data type for a sheet column.
type FieldType int

const (
	FieldText FieldType = iota
	FieldYear
)

// FieldSpec defines how a single sheet column maps into a record.
type FieldSpec struct {
	Name     string    // Column header name (matched after trimming)
	Type     FieldType // Expected data type
	Required bool      // Record is dropped when the value is empty
}

// RecordFields lists every column read into a ComplianceRecord.
var RecordFields = []FieldSpec{
	{Name: ColFacility, Type: FieldText, Required: true},
	{Name: ColClinic, Type: FieldText, Required: true},
	{Name: ColScheme, Type: FieldText, Required: true},
	{Name: ColYear, Type: FieldYear},
	{Name: ColSegment, Type: FieldText},
	{Name: ColPatientID, Type: FieldText, Required: true},
	{Name: ColCondition, Type: FieldText},
}

// SheetConfig describes how to read one sheet of the workbook.
type SheetConfig struct {
	Sheet            string `yaml:"sheet" json:"sheet"`                         // Physical sheet name
	SkipRows         int    `yaml:"skip_rows" json:"skip_rows"`                 // Rows before the header row
	ComplianceColumn string `yaml:"compliance_column" json:"compliance_column"` // Column holding SI/NO
	Label            string `yaml:"label" json:"label"`                         // Source-sheet tag stamped on records
}

// Validate reports configuration mistakes that would make the sheet unreadable.
func (c SheetConfig) Validate() error {
	var errs []string
	if strings.TrimSpace(c.Sheet) == "" {
		errs = append(errs, "sheet name is empty")
	}
	if c.SkipRows < 0 {
		errs = append(errs, fmt.Sprintf("skip_rows (%d) must be non-negative", c.SkipRows))
	}
	if strings.TrimSpace(c.ComplianceColumn) == "" {
		errs = append(errs, "compliance_column is empty")
	}
	if strings.TrimSpace(c.Label) == "" {
		errs = append(errs, "label is empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid sheet config %q: %s", c.Sheet, strings.Join(errs, "; "))
	}
	return nil
}

// ValidateSheetConfigs validates every config and rejects an empty list.
func ValidateSheetConfigs(configs []SheetConfig) error {
	if len(configs) == 0 {
		return errors.New("invalid sheet config: no sheets configured")
	}
	var errs []error
	for _, c := range configs {
		if err := c.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ComplianceRecord is one non-compliant row, normalized.
// Records are built once during extraction and never mutated afterwards.
type ComplianceRecord struct {
	Facility   string `json:"dd_nombre"`
	Clinic     string `json:"ee_nombre"`
	Scheme     string `json:"esquema_actual"`
	Year       int    `json:"año_esquema_actual"`
	Segment    string `json:"segmento"`
	PatientID  string `json:"paciente_id"`
	Condition  string `json:"condicion"`
	Compliance string `json:"cumplimiento"`
	SheetTag   string `json:"tipo_esquema"`
}

// SheetSummary reports what one sheet contributed to a run.
type SheetSummary struct {
	Sheet   string
	Label   string
	Matched int // Rows whose compliance value was NO
	Kept    int // Records emitted
	Dropped int // Matched rows rejected for empty required fields
}

// Result is the outcome of an extraction run.
type Result struct {
	Records []ComplianceRecord
	Errors  []SheetError
	Sheets  []SheetSummary
}
