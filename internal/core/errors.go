package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSheetNotFound is returned by a Workbook when the named sheet is absent.
var ErrSheetNotFound = errors.New("sheet not found")

// Reasons recorded on a SheetError.
const (
	ReasonMissingSheet  = "missing sheet"
	ReasonMissingColumn = "missing column"
	ReasonReadFailed    = "read failed"
)

// SheetError is a recoverable, per-sheet failure. The sheet contributes no
// records and the run continues with the next config.
type SheetError struct {
	Sheet  string // Physical sheet name
	Label  string // Source-sheet tag of the config
	Reason string // One of the Reason* constants
	Err    error  // Underlying cause, if any
}

func (e SheetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sheet %q: %s: %v", e.Sheet, e.Reason, e.Err)
	}
	return fmt.Sprintf("sheet %q: %s", e.Sheet, e.Reason)
}

func (e SheetError) Unwrap() error {
	return e.Err
}

// FatalInputError means the workbook could not be located or opened at all.
// It aborts the run with a non-zero exit status.
type FatalInputError struct {
	Candidates []string // Paths that were probed
	Err        error
}

func (e *FatalInputError) Error() string {
	if len(e.Candidates) > 0 {
		return fmt.Sprintf("input workbook not available (tried %s): %v",
			strings.Join(e.Candidates, ", "), e.Err)
	}
	return fmt.Sprintf("input workbook not available: %v", e.Err)
}

func (e *FatalInputError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err is (or wraps) a FatalInputError.
func IsFatal(err error) bool {
	var fe *FatalInputError
	return errors.As(err, &fe)
}
