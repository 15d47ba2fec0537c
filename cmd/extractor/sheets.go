package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/JonMunkholm/cumplimiento/internal/config"
	"github.com/JonMunkholm/cumplimiento/internal/core"
	"github.com/JonMunkholm/cumplimiento/internal/core/sheets"
	"github.com/JonMunkholm/cumplimiento/internal/workbook"
	"github.com/spf13/cobra"
)

var sheetsCheck bool

var sheetsCmd = &cobra.Command{
	Use:   "sheets",
	Short: "List the active sheet configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configs, err := config.ResolveSheets(cfg)
		if err != nil {
			return err
		}

		var present map[string]bool
		if sheetsCheck {
			wb, err := workbook.OpenFirst(cfg.Input.Paths)
			if err != nil {
				return err
			}
			defer wb.Close()

			present = make(map[string]bool)
			for _, name := range wb.SheetNames() {
				present[name] = true
			}
		}

		return printSheets(cmd.OutOrStdout(), configs, present)
	},
}

func init() {
	sheetsCmd.Flags().BoolVar(&sheetsCheck, "check", false, "Open the workbook and report which sheets exist")
}

// printSheets renders configs as an aligned table. present is nil when the
// workbook was not checked.
func printSheets(w io.Writer, configs []core.SheetConfig, present map[string]bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := "SHEET\tSKIP\tCOMPLIANCE COLUMN\tLABEL\tNAME"
	if present != nil {
		header += "\tPRESENT"
	}
	fmt.Fprintln(tw, header)

	for _, c := range configs {
		line := fmt.Sprintf("%s\t%d\t%s\t%s\t%s", c.Sheet, c.SkipRows, c.ComplianceColumn, c.Label, sheets.DisplayName(c.Label))
		if present != nil {
			mark := "no"
			if present[c.Sheet] {
				mark = "yes"
			}
			line += "\t" + mark
		}
		fmt.Fprintln(tw, line)
	}

	return tw.Flush()
}
