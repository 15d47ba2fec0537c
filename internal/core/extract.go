package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/JonMunkholm/cumplimiento/internal/logging"
)

// Workbook is the tabular source read by Extract.
type Workbook interface {
	// Rows returns every row of the named sheet, top to bottom.
	// It returns an error wrapping ErrSheetNotFound when the sheet is absent.
	Rows(sheet string) ([][]string, error)
}

// Options tune record normalization.
type Options struct {
	// DefaultYear replaces a missing or unparsable scheme year.
	DefaultYear int
}

// Extract reads each configured sheet in order and returns the normalized
// non-compliant records. Sheet-level problems never abort the run: they are
// collected in Result.Errors and the sheet contributes zero records.
//
// The only error returned is ctx.Err() when the run is cancelled between
// sheets; the partial Result is returned alongside it.
func Extract(ctx context.Context, wb Workbook, configs []SheetConfig, opts Options) (*Result, error) {
	log := logging.FromContext(ctx)
	res := &Result{Records: []ComplianceRecord{}}

	for _, cfg := range configs {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		records, summary, err := extractSheet(wb, cfg, opts)
		res.Sheets = append(res.Sheets, summary)

		if err != nil {
			var se SheetError
			if !errors.As(err, &se) {
				se = SheetError{Sheet: cfg.Sheet, Label: cfg.Label, Reason: ReasonReadFailed, Err: err}
			}
			res.Errors = append(res.Errors, se)
			log.Warn("sheet skipped",
				"sheet", cfg.Sheet,
				"reason", se.Reason,
				"code", MapError(se).Code,
				"error", se.Error(),
			)
			continue
		}

		res.Records = append(res.Records, records...)
		log.Info("sheet processed",
			"sheet", cfg.Sheet,
			"label", cfg.Label,
			"matched", summary.Matched,
			"kept", summary.Kept,
			"dropped", summary.Dropped,
		)
	}

	log.Info("extraction finished",
		"records", len(res.Records),
		"sheet_errors", len(res.Errors),
	)
	return res, nil
}

// extractSheet is the per-sheet error boundary. A panic raised while reading
// or scanning the sheet is converted to a SheetError.
func extractSheet(wb Workbook, cfg SheetConfig, opts Options) (records []ComplianceRecord, summary SheetSummary, err error) {
	summary = SheetSummary{Sheet: cfg.Sheet, Label: cfg.Label}

	defer func() {
		if r := recover(); r != nil {
			records = nil
			summary.Kept = 0
			err = SheetError{
				Sheet:  cfg.Sheet,
				Label:  cfg.Label,
				Reason: ReasonReadFailed,
				Err:    fmt.Errorf("panic: %v", r),
			}
		}
	}()

	sheetErr := func(reason string, cause error) SheetError {
		return SheetError{Sheet: cfg.Sheet, Label: cfg.Label, Reason: reason, Err: cause}
	}

	rows, err := wb.Rows(cfg.Sheet)
	if err != nil {
		if errors.Is(err, ErrSheetNotFound) {
			return nil, summary, sheetErr(ReasonMissingSheet, nil)
		}
		return nil, summary, sheetErr(ReasonReadFailed, err)
	}

	if cfg.SkipRows < 0 || len(rows) <= cfg.SkipRows {
		return nil, summary, sheetErr(ReasonMissingColumn,
			fmt.Errorf("no header row after skipping %d rows (sheet has %d)", cfg.SkipRows, len(rows)))
	}

	headerIdx := MakeHeaderIndex(rows[cfg.SkipRows])
	if !headerIdx.Has(cfg.ComplianceColumn) {
		return nil, summary, sheetErr(ReasonMissingColumn,
			fmt.Errorf("column %q not in header", cfg.ComplianceColumn))
	}

	builder := NewRecordBuilder(headerIdx, cfg.Label, opts.DefaultYear)

	for _, row := range rows[cfg.SkipRows+1:] {
		if !IsNonCompliant(headerIdx.Raw(row, cfg.ComplianceColumn)) {
			continue
		}
		summary.Matched++

		rec, err := builder.Build(row)
		if err == nil {
			err = ValidateRecord(rec)
		}
		if err != nil {
			summary.Dropped++
			continue
		}
		records = append(records, rec)
	}

	summary.Kept = len(records)
	return records, summary, nil
}
