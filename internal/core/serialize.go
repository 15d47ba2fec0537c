package core

// serialize.go renders records and stats as JSON.
//
// Output is deterministic for a given input: struct fields keep declaration
// order, map keys are sorted by encoding/json, and nothing time-dependent is
// embedded. Non-ASCII text is written literally and HTML characters are not
// escaped.

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteRecords writes records as a JSON array followed by a newline.
// indent selects the human-readable file layout; otherwise the array is
// compact. A nil or empty slice is written as [].
func WriteRecords(w io.Writer, records []ComplianceRecord, indent bool) error {
	if records == nil {
		records = []ComplianceRecord{}
	}
	if err := encode(w, records, indent); err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	return nil
}

// WriteStats writes stats as a single JSON object.
func WriteStats(w io.Writer, stats AggregateStats, indent bool) error {
	if err := encode(w, stats, indent); err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	return nil
}

// WriteFilterOptions writes the distinct filter values as a JSON object.
func WriteFilterOptions(w io.Writer, opts FilterOptions, indent bool) error {
	if err := encode(w, opts, indent); err != nil {
		return fmt.Errorf("encode filter options: %w", err)
	}
	return nil
}

func encode(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
