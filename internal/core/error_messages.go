// Package core provides the extraction logic for compliance workbooks.
//
// # Error Codes Reference
//
// This file maps technical errors to short messages with a code, so a warning
// in the run log can be quoted without the full technical chain.
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - Input not found: no candidate workbook path exists
//	          Action: Set EXCEL_PATHS or pass --input
//	          Patterns: "input workbook not available"
//
//	FILE002 - Unreadable workbook: the file exists but is not a readable xlsx
//	          Action: Re-export the workbook from Excel as .xlsx
//	          Patterns: "open workbook"
//
// # Sheet Errors (SHEET001-SHEET099)
//
//	SHEET001 - Missing sheet: a configured sheet is not in the workbook
//	           Patterns: "missing sheet"
//
//	SHEET002 - Missing column: the compliance column is not in the header row
//	           Patterns: "missing column"
//
//	SHEET003 - Read failure: the sheet could not be scanned
//	           Patterns: "read failed"
//
// # Configuration Errors (CFG001-CFG099)
//
//	CFG001 - Invalid sheet config: a sheet entry is incomplete
//	         Patterns: "invalid sheet config"
//
//	CFG002 - Invalid settings: an environment setting failed validation
//	         Patterns: "config validation", "config load"
//
// # Default Error (ERR000)
//
// Fallback when no specific pattern matches.
//
// Patterns are matched case-insensitively with strings.Contains; the first
// match wins, so specific patterns come before general ones.
package core

import (
	"fmt"
	"strings"
)

// UserMessage provides readable error information with actionable guidance.
type UserMessage struct {
	Message string // What happened
	Action  string // What to do about it
	Code    string // Error code for reference
}

// errorPattern defines a pattern to match and its corresponding message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// File errors. FILE002 must precede FILE001: an open failure is wrapped
	// in a FatalInputError and carries both patterns.
	{
		pattern: "open workbook",
		msg: UserMessage{
			Message: "Workbook could not be opened",
			Action:  "Re-export the workbook from Excel as .xlsx",
			Code:    "FILE002",
		},
	},
	{
		pattern: "input workbook not available",
		msg: UserMessage{
			Message: "Input workbook not found",
			Action:  "Set EXCEL_PATHS or pass --input",
			Code:    "FILE001",
		},
	},

	// Sheet errors
	{
		pattern: ReasonMissingSheet,
		msg: UserMessage{
			Message: "Configured sheet is not in the workbook",
			Action:  "Check the sheet name in the sheet configuration",
			Code:    "SHEET001",
		},
	},
	{
		pattern: ReasonMissingColumn,
		msg: UserMessage{
			Message: "Compliance column not found in the header row",
			Action:  "Check compliance_column and skip_rows for this sheet",
			Code:    "SHEET002",
		},
	},
	{
		pattern: ReasonReadFailed,
		msg: UserMessage{
			Message: "Sheet could not be read",
			Action:  "Open the sheet in Excel and check for corrupted cells",
			Code:    "SHEET003",
		},
	},

	// Configuration errors
	{
		pattern: "invalid sheet config",
		msg: UserMessage{
			Message: "Sheet configuration is incomplete",
			Action:  "Every sheet needs sheet, compliance_column and label",
			Code:    "CFG001",
		},
	},
	{
		pattern: "config validation",
		msg: UserMessage{
			Message: "Invalid settings",
			Action:  "Fix the environment variables listed in the error",
			Code:    "CFG002",
		},
	},
	{
		pattern: "config load",
		msg: UserMessage{
			Message: "Invalid settings",
			Action:  "Fix the environment variables listed in the error",
			Code:    "CFG002",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the log for the technical error",
	Code:    "ERR000",
}

// MapError converts a technical error to a coded message.
// Returns the zero UserMessage for a nil error.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError renders err as "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a known pattern rather than the
// ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
