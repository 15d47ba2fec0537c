package core

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nil error returns empty",
			err:         nil,
			wantCode:    "",
			wantMessage: "",
		},
		{
			name:        "no candidate path maps to input not found",
			err:         &FatalInputError{Candidates: []string{"a.xlsx", "b.xlsx"}, Err: os.ErrNotExist},
			wantCode:    "FILE001",
			wantMessage: "Input workbook not found",
		},
		{
			name: "open failure wins over input not available",
			err: &FatalInputError{
				Candidates: []string{"a.xlsx"},
				Err:        fmt.Errorf("open workbook a.xlsx: %w", errors.New("zip: not a valid zip file")),
			},
			wantCode:    "FILE002",
			wantMessage: "Workbook could not be opened",
		},
		{
			name:        "missing sheet maps correctly",
			err:         SheetError{Sheet: "esquema_vigente", Reason: ReasonMissingSheet, Err: ErrSheetNotFound},
			wantCode:    "SHEET001",
			wantMessage: "Configured sheet is not in the workbook",
		},
		{
			name:        "missing column maps correctly",
			err:         SheetError{Sheet: "x", Reason: ReasonMissingColumn},
			wantCode:    "SHEET002",
			wantMessage: "Compliance column not found in the header row",
		},
		{
			name:        "read failure maps correctly",
			err:         SheetError{Sheet: "x", Reason: ReasonReadFailed, Err: errors.New("boom")},
			wantCode:    "SHEET003",
			wantMessage: "Sheet could not be read",
		},
		{
			name:        "invalid sheet config maps correctly",
			err:         errors.New("invalid sheet config: sheet is required"),
			wantCode:    "CFG001",
			wantMessage: "Sheet configuration is incomplete",
		},
		{
			name:        "config validation maps correctly",
			err:         errors.New("config validation failed: DEFAULT_YEAR out of range"),
			wantCode:    "CFG002",
			wantMessage: "Invalid settings",
		},
		{
			name:        "config load maps correctly",
			err:         errors.New("config load: DEFAULT_YEAR: invalid int"),
			wantCode:    "CFG002",
			wantMessage: "Invalid settings",
		},
		{
			name:        "unknown error returns default",
			err:         errors.New("some random internal error"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
		{
			name:        "case insensitive matching",
			err:         errors.New("MISSING SHEET foo"),
			wantCode:    "SHEET001",
			wantMessage: "Configured sheet is not in the workbook",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("MapError() message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	err := SheetError{Sheet: "x", Reason: ReasonMissingColumn}
	result := FormatUserError(err)

	expected := "Compliance column not found in the header row (Code: SHEET002). Check compliance_column and skip_rows for this sheet"
	if result != expected {
		t.Errorf("FormatUserError() = %q, want %q", result, expected)
	}

	if got := FormatUserError(nil); got != "" {
		t.Errorf("FormatUserError(nil) = %q, want empty", got)
	}
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error is not user facing",
			err:  nil,
			want: false,
		},
		{
			name: "known error is user facing",
			err:  errors.New("invalid sheet config: label is required"),
			want: true,
		},
		{
			name: "unknown error is not user facing",
			err:  errors.New("random internal error xyz"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsUserFacing(tt.err)
			if got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	fatal := &FatalInputError{Err: os.ErrNotExist}

	if !IsFatal(fatal) {
		t.Error("FatalInputError should be fatal")
	}
	if !IsFatal(fmt.Errorf("run: %w", fatal)) {
		t.Error("wrapped FatalInputError should be fatal")
	}
	if IsFatal(SheetError{Sheet: "x", Reason: ReasonMissingSheet}) {
		t.Error("SheetError should not be fatal")
	}
	if !errors.Is(fatal, os.ErrNotExist) {
		t.Error("FatalInputError should unwrap to its cause")
	}
}
