package main

import (
	"context"
	"log/slog"

	"github.com/JonMunkholm/cumplimiento/internal/config"
	"github.com/JonMunkholm/cumplimiento/internal/core"
	"github.com/JonMunkholm/cumplimiento/internal/logging"
	"github.com/JonMunkholm/cumplimiento/internal/workbook"
)

// extraction is the outcome of one run before output.
type extraction struct {
	Source  string
	Result  *core.Result
	Records []core.ComplianceRecord // Result.Records after filters
}

// startRun tags ctx with a fresh run ID and logs it once, so every later
// entry of the run can be correlated with the mode that started it.
func startRun(ctx context.Context, mode string) context.Context {
	ctx, id := logging.WithRun(ctx)
	slog.Info("run started", "run_id", id, "mode", mode)
	return ctx
}

// runExtraction resolves sheets, opens the workbook and extracts records.
// Errors returned here are fatal; per-sheet problems stay in Result.Errors.
func runExtraction(ctx context.Context, c *config.Config, filters core.FilterSet) (*extraction, error) {
	log := logging.FromContext(ctx)

	configs, err := config.ResolveSheets(c)
	if err != nil {
		return nil, err
	}

	wb, err := workbook.OpenFirst(c.Input.Paths)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	log.Info("processing workbook", "path", wb.Path(), "sheets", len(configs))

	res, err := core.Extract(ctx, wb, configs, core.Options{DefaultYear: c.Extract.DefaultYear})
	if err != nil {
		return nil, err
	}

	records := filters.Apply(res.Records)
	if filters.Active() {
		log.Info("filters applied",
			"diris", filters.Facility,
			"esquema", filters.Scheme,
			"tipo", filters.SheetTag,
			"before", len(res.Records),
			"after", len(records),
		)
	}

	if len(res.Errors) > 0 && len(res.Errors) == len(configs) {
		log.Warn("no configured sheet could be read", "sheet_errors", len(res.Errors))
	}

	return &extraction{Source: wb.Path(), Result: res, Records: records}, nil
}

// logSummary reports where the records came from and which sheets were
// skipped. It is the last line of a successful run.
func (ex *extraction) logSummary(log *slog.Logger) {
	skipped := make([]string, 0, len(ex.Result.Errors))
	for _, se := range ex.Result.Errors {
		skipped = append(skipped, se.Sheet)
	}

	log.Info("run finished",
		"source", ex.Source,
		"sheets", len(ex.Result.Sheets),
		"skipped", skipped,
		"extracted", len(ex.Result.Records),
		"records", len(ex.Records),
	)
}
