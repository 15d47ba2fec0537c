package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/JonMunkholm/cumplimiento/internal/config"
	"github.com/JonMunkholm/cumplimiento/internal/core"
	"github.com/JonMunkholm/cumplimiento/internal/logging"
	"github.com/spf13/cobra"
)

// summaryTop is how many facilities the end-of-run summary lists.
const summaryTop = 10

var (
	exportOutput  string
	exportStats   string
	exportFilters string
	exportNoStats bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write records (and stats) as indented JSON files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if flags.Changed("output") {
			cfg.Output.RecordsPath = exportOutput
		}
		if flags.Changed("stats") {
			cfg.Output.StatsPath = exportStats
		}
		if flags.Changed("filters-out") {
			cfg.Output.FiltersPath = exportFilters
		}
		if exportNoStats {
			cfg.Output.WriteStats = false
		}

		return runExport(startRun(cmd.Context(), "export"), cfg, currentFilters())
	},
}

func init() {
	f := exportCmd.Flags()
	f.StringVarP(&exportOutput, "output", "o", "", "Records file (overrides OUTPUT_RECORDS_PATH)")
	f.StringVar(&exportStats, "stats", "", "Stats file (overrides OUTPUT_STATS_PATH)")
	f.StringVar(&exportFilters, "filters-out", "", "Filter options file (overrides OUTPUT_FILTERS_PATH)")
	f.BoolVar(&exportNoStats, "no-stats", false, "Do not write the stats file")
}

// runExport is file mode: records, then optional stats and filter options.
func runExport(ctx context.Context, c *config.Config, filters core.FilterSet) error {
	log := logging.FromContext(ctx)

	ex, err := runExtraction(ctx, c, filters)
	if err != nil {
		return err
	}

	if err := writeJSONFile(c.Output.RecordsPath, func(w io.Writer) error {
		return core.WriteRecords(w, ex.Records, true)
	}); err != nil {
		return err
	}
	log.Info("records written", "path", c.Output.RecordsPath, "records", len(ex.Records))

	stats := core.Aggregate(ex.Records)

	if c.Output.WriteStats {
		if err := writeJSONFile(c.Output.StatsPath, func(w io.Writer) error {
			return core.WriteStats(w, stats, true)
		}); err != nil {
			return err
		}
		log.Info("stats written", "path", c.Output.StatsPath, "total", stats.Total)
	}

	if c.Output.FiltersPath != "" {
		opts := core.FilterOptionsFor(ex.Records)
		if err := writeJSONFile(c.Output.FiltersPath, func(w io.Writer) error {
			return core.WriteFilterOptions(w, opts, true)
		}); err != nil {
			return err
		}
		log.Info("filter options written", "path", c.Output.FiltersPath)
	}

	for _, entry := range stats.Top(summaryTop) {
		log.Info("summary by diris", "diris", entry.Name, "cases", entry.Value)
	}
	ex.logSummary(log)
	return nil
}

// writeJSONFile writes through a temp file in the target directory and
// renames it into place, so a failed run never leaves a truncated file.
func writeJSONFile(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
