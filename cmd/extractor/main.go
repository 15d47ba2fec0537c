package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/cumplimiento/internal/config"
	"github.com/JonMunkholm/cumplimiento/internal/core"
	_ "github.com/JonMunkholm/cumplimiento/internal/core/sheets" // Register built-in sheets
	"github.com/JonMunkholm/cumplimiento/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	inputPath   string
	sheetsFile  string
	defaultYear int
	logLevel    string
	logFormat   string

	// Record filters
	filterDiris   string
	filterEsquema string
	filterTipo    string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "extractor",
	Short: "Extract non-compliant vaccination-schedule records from a workbook",
	Long: `extractor reads the compliance workbook, keeps the rows whose compliance
column is "NO" and emits them as JSON.

  export  writes indented JSON files (records, stats, filter options)
  pipe    writes one compact JSON array to stdout; logs go to stderr`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load .env file if it exists (Overload overwrites existing env vars)
		envLoaded := godotenv.Overload() == nil

		loaded, err := config.Load()
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd, loaded)
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("config validation: %w", err)
		}
		cfg = loaded

		logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
		slog.Debug("configuration loaded", "env_file", envLoaded, "config", cfg.String())
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&inputPath, "input", "i", "", "Workbook path (overrides EXCEL_PATHS)")
	pf.StringVar(&sheetsFile, "sheets", "", "YAML sheet configuration (overrides SHEETS_FILE)")
	pf.IntVar(&defaultYear, "default-year", 0, "Year used when a row has none (overrides DEFAULT_YEAR)")
	pf.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")
	pf.StringVar(&logFormat, "log-format", "", "text or json (overrides LOG_FORMAT)")
	pf.StringVar(&filterDiris, "diris", "", "Keep only records of this facility (dd_nombre)")
	pf.StringVar(&filterEsquema, "esquema", "", "Keep only records of this scheme (esquema_actual)")
	pf.StringVar(&filterTipo, "tipo", "", "Keep only records of this sheet tag (tipo_esquema)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(pipeCmd)
	rootCmd.AddCommand(sheetsCmd)
}

// applyFlagOverrides copies explicitly set flags over environment values.
func applyFlagOverrides(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("input") {
		c.Input.Paths = []string{inputPath}
	}
	if flags.Changed("sheets") {
		c.Extract.SheetsFile = sheetsFile
	}
	if flags.Changed("default-year") {
		c.Extract.DefaultYear = defaultYear
	}
	if flags.Changed("log-level") {
		c.Logging.Level = logLevel
	}
	if flags.Changed("log-format") {
		c.Logging.Format = logFormat
	}
}

func currentFilters() core.FilterSet {
	return core.FilterSet{
		Facility: filterDiris,
		Scheme:   filterEsquema,
		SheetTag: filterTipo,
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if core.IsUserFacing(err) {
			fmt.Fprintln(os.Stderr, core.FormatUserError(err))
		}
		os.Exit(1)
	}
}
