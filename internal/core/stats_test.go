package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rec(facility, scheme, condition, tag string) ComplianceRecord {
	return ComplianceRecord{
		Facility:   facility,
		Clinic:     "EE",
		Scheme:     scheme,
		Year:       2025,
		Segment:    MissingValue,
		PatientID:  "P",
		Condition:  condition,
		Compliance: NonCompliant,
		SheetTag:   tag,
	}
}

func TestAggregate_Empty(t *testing.T) {
	stats := Aggregate(nil)

	assert.Equal(t, 0, stats.Total)
	assert.NotNil(t, stats.PorDiris)
	assert.Empty(t, stats.PorDiris)
	assert.Empty(t, stats.PorEsquema)
	assert.Empty(t, stats.PorSheet)
	assert.Empty(t, stats.PorCondicion)
	assert.Empty(t, stats.PorSheetDiris)
}

func TestAggregate_Counts(t *testing.T) {
	records := []ComplianceRecord{
		rec("DIRIS Norte", "E1", "Gestante", "esquema_vigente"),
		rec("DIRIS Norte", "E2", "Gestante", "personalizados_18"),
		rec("DIRIS Sur", "E1", MissingValue, "esquema_vigente"),
		rec("DIRIS Sur", "E1", "Adulto mayor", "esquema_vigente"),
	}

	stats := Aggregate(records)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, map[string]int{"DIRIS Norte": 2, "DIRIS Sur": 2}, stats.PorDiris)
	assert.Equal(t, map[string]int{"E1": 3, "E2": 1}, stats.PorEsquema)
	assert.Equal(t, map[string]int{"esquema_vigente": 3, "personalizados_18": 1}, stats.PorSheet)
	assert.Equal(t, map[string]int{"Gestante": 2, MissingValue: 1, "Adulto mayor": 1}, stats.PorCondicion)
	assert.Equal(t, map[string]map[string]int{
		"esquema_vigente":   {"DIRIS Norte": 1, "DIRIS Sur": 2},
		"personalizados_18": {"DIRIS Norte": 1},
	}, stats.PorSheetDiris)
}

func TestAggregate_SheetCountsSumToTotal(t *testing.T) {
	var records []ComplianceRecord
	tags := []string{"a", "b", "c", "a", "a", "c"}
	for _, tag := range tags {
		records = append(records, rec("D", "E", "C", tag))
	}

	stats := Aggregate(records)

	sum := 0
	for _, n := range stats.PorSheet {
		sum += n
	}
	assert.Equal(t, len(records), stats.Total)
	assert.Equal(t, stats.Total, sum)
}

func TestAggregateStats_Top(t *testing.T) {
	stats := Aggregate([]ComplianceRecord{
		rec("B", "E", "C", "t"),
		rec("A", "E", "C", "t"),
		rec("C", "E", "C", "t"),
		rec("C", "E", "C", "t"),
		rec("C", "E", "C", "t"),
		rec("A", "E", "C", "t"),
	})

	assert.Equal(t, []Count{{"C", 3}, {"A", 2}, {"B", 1}}, stats.Top(0))
	assert.Equal(t, []Count{{"C", 3}, {"A", 2}}, stats.Top(2))
	assert.Empty(t, Aggregate(nil).Top(10))
}
