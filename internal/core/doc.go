// Package core provides the extraction logic for vaccination-schedule
// compliance workbooks.
//
// The package is independent of any transport: the CLI, tests, or another
// program can drive it with any [Workbook] implementation.
//
// # Pipeline
//
// A run is a single synchronous pass:
//
//  1. [Extract] reads each [SheetConfig] in order. The row after SkipRows is
//     the header; header names are trimmed before matching.
//  2. Rows whose raw compliance cell is "NO" in any case are kept; padded
//     values such as " NO" are not.
//  3. Each kept row becomes a [ComplianceRecord]. Missing optional values
//     become [MissingValue]; a missing year becomes Options.DefaultYear; rows
//     with an empty facility, clinic, scheme or patient id are dropped.
//  4. [Aggregate] derives [AggregateStats] from the finished records.
//  5. [WriteRecords] and [WriteStats] serialize to JSON.
//
// # Sheet Registry
//
// Built-in sheet configs are registered at init time using [Register]
// (see package sheets):
//
//	core.Register(core.SheetConfig{
//	    Sheet:            "esquema_vigente",
//	    SkipRows:         11,
//	    ComplianceColumn: "esquema_vigente",
//	    Label:            "esquema_vigente",
//	})
//
// # Error Handling
//
// A missing sheet, a missing compliance column or any failure while scanning
// one sheet is a [SheetError]: the sheet yields no records and the run goes
// on. A workbook that cannot be found or opened is a [FatalInputError].
// [MapError] assigns stable codes (FILE001, SHEET002, ...) for log output.
package core
