package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/JonMunkholm/cumplimiento/internal/config"
	"github.com/JonMunkholm/cumplimiento/internal/core"
	"github.com/JonMunkholm/cumplimiento/internal/logging"
	"github.com/spf13/cobra"
)

var pipeCmd = &cobra.Command{
	Use:   "pipe",
	Short: "Write one compact JSON array of records to stdout",
	Long: `pipe is meant to be spawned by another process that parses stdout.
Standard output carries only the JSON array; all diagnostics go to stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipe(startRun(cmd.Context(), "pipe"), cfg, currentFilters(), os.Stdout)
	},
}

// runPipe is pipe mode: the compact record array is the only thing on out.
func runPipe(ctx context.Context, c *config.Config, filters core.FilterSet, out io.Writer) error {
	ex, err := runExtraction(ctx, c, filters)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(out)
	if err := core.WriteRecords(bw, ex.Records, false); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush stdout: %w", err)
	}

	log := logging.FromContext(ctx)
	log.Info("total non-compliance records found", "records", len(ex.Records))
	ex.logSummary(log)
	return nil
}
