package core

import "sort"

// AggregateStats holds record counts grouped by category.
// It is derived from a finished record slice and never updated in place.
type AggregateStats struct {
	Total         int                       `json:"total"`
	PorDiris      map[string]int            `json:"por_diris"`
	PorEsquema    map[string]int            `json:"por_esquema"`
	PorSheet      map[string]int            `json:"por_sheet"`
	PorCondicion  map[string]int            `json:"por_condicion"`
	PorSheetDiris map[string]map[string]int `json:"por_sheet_diris"`
}

// Aggregate counts records by facility, scheme, source-sheet tag and
// condition in a single pass. An empty input yields zero total and empty maps.
func Aggregate(records []ComplianceRecord) AggregateStats {
	stats := AggregateStats{
		Total:         len(records),
		PorDiris:      make(map[string]int),
		PorEsquema:    make(map[string]int),
		PorSheet:      make(map[string]int),
		PorCondicion:  make(map[string]int),
		PorSheetDiris: make(map[string]map[string]int),
	}

	for _, r := range records {
		stats.PorDiris[OrMissing(r.Facility)]++
		stats.PorEsquema[OrMissing(r.Scheme)]++
		stats.PorSheet[OrMissing(r.SheetTag)]++
		stats.PorCondicion[OrMissing(r.Condition)]++

		tag := OrMissing(r.SheetTag)
		byFacility, ok := stats.PorSheetDiris[tag]
		if !ok {
			byFacility = make(map[string]int)
			stats.PorSheetDiris[tag] = byFacility
		}
		byFacility[OrMissing(r.Facility)]++
	}

	return stats
}

// Count is one entry of a ranked breakdown.
type Count struct {
	Name  string
	Value int
}

// Top returns up to n facilities ordered by descending count, ties by name.
// n <= 0 returns all of them.
func (s AggregateStats) Top(n int) []Count {
	return rank(s.PorDiris, n)
}

// rank sorts a count map by descending value then ascending name.
func rank(m map[string]int, n int) []Count {
	out := make([]Count, 0, len(m))
	for name, v := range m {
		out = append(out, Count{Name: name, Value: v})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Name < out[j].Name
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
