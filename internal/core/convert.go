package core

// convert.go turns raw workbook cells into record values.
//
// Workbook cells arrive as display strings. They carry the usual spreadsheet
// noise: surrounding whitespace (including non-breaking spaces), Excel
// formula prefixes, error markers such as #N/A, and numbers rendered with a
// decimal part ("2025.0") or thousands separators ("2,025").

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numericRegex validates that a string is a valid numeric format after cleanup.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// maxYear bounds the values ToYear accepts.
const maxYear = 9999

// missingMarkers are cell values that mean "no value" in Excel or in sheets
// produced by dataframe exports.
var missingMarkers = map[string]bool{
	"#n/a":    true,
	"#na":     true,
	"#null!":  true,
	"#value!": true,
	"#ref!":   true,
	"#div/0!": true,
	"nan":     true,
	"nat":     true,
	"none":    true,
	"null":    true,
	"n/a":     true,
}

// HeaderIndex maps trimmed column names to their position in a row.
// Names are case-sensitive; only surrounding whitespace is normalized.
type HeaderIndex map[string]int

// MakeHeaderIndex creates a HeaderIndex from a header row.
// When a name repeats, the first occurrence wins.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		key := strings.TrimSpace(h)
		if key == "" {
			continue
		}
		if _, dup := idx[key]; dup {
			continue
		}
		idx[key] = i
	}
	return idx
}

// Has reports whether the header contains the column (trimmed).
func (h HeaderIndex) Has(name string) bool {
	_, ok := h[strings.TrimSpace(name)]
	return ok
}

// Cell returns the cleaned value of a column in row, or "" when the column is
// absent or the row is shorter than the header.
func (h HeaderIndex) Cell(row []string, name string) string {
	pos, ok := h[strings.TrimSpace(name)]
	if !ok || pos >= len(row) {
		return ""
	}
	return CleanCell(row[pos])
}

// Raw returns the cell of a column in row exactly as read, or "" when the
// column is absent or the row is shorter than the header.
func (h HeaderIndex) Raw(row []string, name string) string {
	pos, ok := h[strings.TrimSpace(name)]
	if !ok || pos >= len(row) {
		return ""
	}
	return row[pos]
}

// CleanCell removes common spreadsheet artifacts from a cell value:
//   - Trims whitespace
//   - Removes Excel formula prefix (="...")
//   - Maps missing-value markers (#N/A, nan, ...) to ""
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") && len(s) >= 3 {
		s = strings.TrimSpace(s[2 : len(s)-1])
	}

	if IsMissing(s) {
		return ""
	}
	return s
}

// IsMissing reports whether s is empty or a missing-value marker.
func IsMissing(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	return missingMarkers[strings.ToLower(s)]
}

// IsNonCompliant reports whether a compliance cell marks the row for
// extraction: the raw value, uppercased, must equal "NO". Padded values such
// as " NO" do not match.
func IsNonCompliant(value string) bool {
	return strings.ToUpper(value) == NonCompliant
}

// OrMissing returns s, or MissingValue when s is empty.
func OrMissing(s string) string {
	if s == "" {
		return MissingValue
	}
	return s
}

// ToYear parses a year cell. Integral floats ("2025.0") and thousands
// separators ("2,025") are accepted. Anything else yields def.
func ToYear(s string, def int) int {
	s = CleanCell(s)
	if s == "" {
		return def
	}

	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")

	if !numericRegex.MatchString(s) {
		return def
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > maxYear {
			return def
		}
		return n
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return def
	}
	if f < 0 || f > maxYear {
		return def
	}
	return int(f)
}
