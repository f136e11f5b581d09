package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bgricker/cukereport/internal/config"
	"github.com/bgricker/cukereport/internal/logging"
	"github.com/bgricker/cukereport/internal/output"
	"github.com/bgricker/cukereport/internal/report"
)

// errScenariosFailed is returned with --fail-on-failure when the run failed.
var errScenariosFailed = errors.New("one or more scenarios failed")

func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	root, err := os.Getwd()
	if err != nil {
		return config.Config{}, "", fmt.Errorf("determine working directory: %w", err)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return config.Config{}, "", err
	}
	cfg, err = config.LoadEnv(cfg, root)
	if err != nil {
		return config.Config{}, "", err
	}

	flags, err := gatherFlags(cmd)
	if err != nil {
		return config.Config{}, "", err
	}
	config.ApplyFlags(&cfg, flags)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, "", err
	}
	return cfg, root, nil
}

func newLogger(cmd *cobra.Command, cfg config.Config) *zap.Logger {
	return logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
}

func isPretty(cfg config.Config) bool {
	return strings.ToLower(cfg.Format) == config.FormatPretty
}

func renderSummary(cmd *cobra.Command, cfg config.Config, rep report.Report) error {
	switch strings.ToLower(cfg.Format) {
	case config.FormatPretty:
		renderer := output.NewPretty(cmd.OutOrStdout())
		if err := renderer.Render(rep); err != nil {
			return err
		}
		for _, msg := range collapseWarnings(rep.Warnings) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", msg)
		}
	case config.FormatJSON:
		renderer := output.NewJSON(cmd.OutOrStdout())
		if err := renderer.Render(rep); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q", cfg.Format)
	}
	return nil
}

func collapseWarnings(warnings []report.Warning) []string {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]string, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, fmt.Sprintf("%s:%s: %s", w.Feature, w.Element, w.Message))
	}
	return out
}

func checkFailures(cfg config.Config, rep report.Report) error {
	if cfg.FailOnFailure && rep.Summary.Status == report.StatusFailed {
		return errScenariosFailed
	}
	return nil
}
