package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cukereport",
		Short:         "Cukereport turns cucumber JSON results into an HTML report",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	persistent := cmd.PersistentFlags()
	persistent.String("source", "", "cucumber JSON result document")
	persistent.StringArray("tag", nil, "include scenarios tagged with a matching tag (repeatable)")
	persistent.StringArray("skip-tag", nil, "exclude scenarios tagged with a matching tag (repeatable)")
	persistent.StringArray("scenario", nil, "include only matching scenario names (repeatable)")
	persistent.String("format", "pretty", "console output format (pretty|json)")
	persistent.Bool("fail-on-failure", false, "exit non-zero when any scenario failed")
	persistent.String("log-level", "info", "log level (debug|info|warn|error)")
	persistent.String("log-format", "console", "log encoding (console|json)")

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newSummaryCmd())

	return cmd
}
