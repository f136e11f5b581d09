package main

import (
	"github.com/spf13/cobra"

	"github.com/bgricker/cukereport/internal/runner"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Aggregate the results and print a summary without writing files",
		RunE:  runSummary,
	}
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, root, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)
	defer func() { _ = logger.Sync() }()

	rep, err := runner.New(runner.Options{Root: root, Config: cfg, Logger: logger}).Aggregate()
	if err != nil {
		return err
	}

	if err := renderSummary(cmd, cfg, rep); err != nil {
		return err
	}
	return checkFailures(cfg, rep)
}
