package core

import (
	"sort"
	"strings"
)

// AllValues disables a filter, as do empty values.
const AllValues = "all"

// FilterSet narrows a record slice by exact match on facility, scheme and
// source-sheet tag. Active filters are combined with AND logic.
type FilterSet struct {
	Facility string // dd_nombre
	Scheme   string // esquema_actual
	SheetTag string // tipo_esquema
}

// Active reports whether any filter is set.
func (f FilterSet) Active() bool {
	return isActive(f.Facility) || isActive(f.Scheme) || isActive(f.SheetTag)
}

// Match reports whether r passes every active filter.
func (f FilterSet) Match(r ComplianceRecord) bool {
	if isActive(f.Facility) && r.Facility != strings.TrimSpace(f.Facility) {
		return false
	}
	if isActive(f.Scheme) && r.Scheme != strings.TrimSpace(f.Scheme) {
		return false
	}
	if isActive(f.SheetTag) && r.SheetTag != strings.TrimSpace(f.SheetTag) {
		return false
	}
	return true
}

// Apply returns the records that pass the filters, preserving order.
// The input slice is not modified.
func (f FilterSet) Apply(records []ComplianceRecord) []ComplianceRecord {
	if !f.Active() {
		return records
	}
	out := make([]ComplianceRecord, 0, len(records))
	for _, r := range records {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

func isActive(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, AllValues)
}

// FilterOptions lists the distinct values available for each filter.
type FilterOptions struct {
	Diris    []string `json:"diris"`
	Esquemas []string `json:"esquemas"`
	Tipos    []string `json:"tipos"`
}

// FilterOptionsFor collects the sorted distinct facilities, schemes and
// source-sheet tags of records.
func FilterOptionsFor(records []ComplianceRecord) FilterOptions {
	diris := make(map[string]bool)
	esquemas := make(map[string]bool)
	tipos := make(map[string]bool)

	for _, r := range records {
		diris[r.Facility] = true
		esquemas[r.Scheme] = true
		tipos[r.SheetTag] = true
	}

	return FilterOptions{
		Diris:    sortedKeys(diris),
		Esquemas: sortedKeys(esquemas),
		Tipos:    sortedKeys(tipos),
	}
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
