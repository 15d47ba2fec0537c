package core

// validation.go builds records from sheet rows and rejects incomplete ones.
//
// A row that passed the compliance filter becomes a record only when every
// required field (facility, clinic, scheme, patient id) is non-empty after
// cleaning. Rejected rows are counted, not reported individually.

import (
	"fmt"
	"strings"
)

// ValidationError represents a single validation error for a field.
type ValidationError struct {
	Field   string // Field/column name
	Message string // Human-readable error message
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// RecordBuilder turns data rows of one sheet into ComplianceRecords.
type RecordBuilder struct {
	specs       []FieldSpec
	headerIdx   HeaderIndex
	label       string
	defaultYear int
}

// NewRecordBuilder creates a builder for a sheet with the given header.
func NewRecordBuilder(headerIdx HeaderIndex, label string, defaultYear int) *RecordBuilder {
	return &RecordBuilder{
		specs:       RecordFields,
		headerIdx:   headerIdx,
		label:       label,
		defaultYear: defaultYear,
	}
}

// ValidateRow checks the required fields of row and returns the first error.
func (b *RecordBuilder) ValidateRow(row []string) error {
	for _, spec := range b.specs {
		if !spec.Required {
			continue
		}
		if b.headerIdx.Cell(row, spec.Name) == "" {
			return ValidationError{Field: spec.Name, Message: "required field is empty"}
		}
	}
	return nil
}

// Build validates row and converts it into a record.
func (b *RecordBuilder) Build(row []string) (ComplianceRecord, error) {
	if err := b.ValidateRow(row); err != nil {
		return ComplianceRecord{}, err
	}

	cell := func(name string) string { return b.headerIdx.Cell(row, name) }

	return ComplianceRecord{
		Facility:   cell(ColFacility),
		Clinic:     cell(ColClinic),
		Scheme:     cell(ColScheme),
		Year:       ToYear(cell(ColYear), b.defaultYear),
		Segment:    OrMissing(cell(ColSegment)),
		PatientID:  cell(ColPatientID),
		Condition:  OrMissing(cell(ColCondition)),
		Compliance: NonCompliant,
		SheetTag:   b.label,
	}, nil
}

// ValidateRecord checks the field-completeness invariant on a finished record.
func ValidateRecord(r ComplianceRecord) error {
	required := []struct {
		field string
		value string
	}{
		{ColFacility, r.Facility},
		{ColClinic, r.Clinic},
		{ColScheme, r.Scheme},
		{ColPatientID, r.PatientID},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return ValidationError{Field: f.field, Message: "required field is empty"}
		}
	}
	if r.Compliance != NonCompliant {
		return ValidationError{Field: "cumplimiento", Message: fmt.Sprintf("must be %q", NonCompliant)}
	}
	if strings.TrimSpace(r.SheetTag) == "" {
		return ValidationError{Field: "tipo_esquema", Message: "source-sheet tag is empty"}
	}
	return nil
}
