package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bgricker/cukereport/internal/runner"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the HTML report and images into the destination directory",
		RunE:  runGenerate,
	}

	flags := cmd.Flags()
	flags.String("template", "", "alternate report template")
	flags.String("name", "index.html", "report file name")
	flags.String("dest", "./reports", "destination directory")
	flags.String("logo", "", "logo image embedded in the report (default bundled logo)")
	flags.String("screenshots", "", "directory of extra images to embed")
	flags.String("metrics", "", "write a Prometheus text file with run metrics")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, root, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)
	defer func() { _ = logger.Sync() }()

	result, err := runner.New(runner.Options{Root: root, Config: cfg, Logger: logger}).Run()
	if err != nil {
		return err
	}

	if err := renderSummary(cmd, cfg, result.Report); err != nil {
		return err
	}
	if isPretty(cfg) {
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", result.ReportPath)
	}

	return checkFailures(cfg, result.Report)
}
