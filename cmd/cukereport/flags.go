package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bgricker/cukereport/internal/config"
)

func gatherFlags(cmd *cobra.Command) (config.FlagValues, error) {
	flags := cmd.Flags()
	var values config.FlagValues
	var err error

	stringFlags := []struct {
		name string
		dst  *config.StringFlag
	}{
		{"source", &values.Source},
		{"template", &values.Template},
		{"name", &values.Name},
		{"dest", &values.Dest},
		{"logo", &values.Logo},
		{"screenshots", &values.Screenshots},
		{"metrics", &values.Metrics},
		{"format", &values.Format},
		{"log-level", &values.LogLevel},
		{"log-format", &values.LogFormat},
	}
	for _, f := range stringFlags {
		if *f.dst, err = stringFlag(flags, f.name); err != nil {
			return values, err
		}
	}

	sliceFlags := []struct {
		name string
		dst  *config.SliceFlag
	}{
		{"tag", &values.Tags},
		{"skip-tag", &values.SkipTags},
		{"scenario", &values.Scenarios},
	}
	for _, f := range sliceFlags {
		if *f.dst, err = sliceFlag(flags, f.name); err != nil {
			return values, err
		}
	}

	if flags.Changed("fail-on-failure") {
		v, err := flags.GetBool("fail-on-failure")
		if err != nil {
			return values, fmt.Errorf("parse --fail-on-failure: %w", err)
		}
		values.FailOnFailure = config.BoolFlag{Value: v, Set: true}
	}

	return values, nil
}

// stringFlag reads name only when it was set explicitly. Flags a subcommand
// does not define are reported as unset.
func stringFlag(flags *pflag.FlagSet, name string) (config.StringFlag, error) {
	if flags.Lookup(name) == nil || !flags.Changed(name) {
		return config.StringFlag{}, nil
	}
	v, err := flags.GetString(name)
	if err != nil {
		return config.StringFlag{}, fmt.Errorf("parse --%s: %w", name, err)
	}
	return config.StringFlag{Value: v, Set: true}, nil
}

func sliceFlag(flags *pflag.FlagSet, name string) (config.SliceFlag, error) {
	if flags.Lookup(name) == nil || !flags.Changed(name) {
		return config.SliceFlag{}, nil
	}
	v, err := flags.GetStringArray(name)
	if err != nil {
		return config.SliceFlag{}, fmt.Errorf("parse --%s: %w", name, err)
	}
	return config.SliceFlag{Values: append([]string{}, v...)}, nil
}
