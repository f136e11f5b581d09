//go:build cucumber

package aggregate

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/bgricker/cukereport/internal/provider"
	"github.com/bgricker/cukereport/internal/report"
)

// TestAggregationScenarios runs the aggregation feature scenarios.
func TestAggregationScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "testdata", "features", "aggregation.feature")
	suite := godog.TestSuite{
		Name:                "aggregation",
		ScenarioInitializer: InitializeAggregationScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{featurePath},
			Strict:   true,
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeAggregationScenario wires steps for aggregation scenarios.
func InitializeAggregationScenario(ctx *godog.ScenarioContext) {
	state := &aggregationState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.Step(`^a feature "([^"]*)" tagged "([^"]*)"$`, state.givenFeature)
	ctx.Step(`^a scenario "([^"]*)" with steps:$`, state.givenScenario)
	ctx.Step(`^the run is aggregated$`, state.whenAggregated)
	ctx.Step(`^the feature "([^"]*)" is "([^"]*)"$`, state.thenFeatureStatus)
	ctx.Step(`^the feature "([^"]*)" counts (\d+) steps with (\d+) passed, (\d+) skipped and (\d+) failed$`, state.thenFeatureSteps)
	ctx.Step(`^the tag "([^"]*)" counts (\d+) scenarios with (\d+) failed$`, state.thenTagScenarios)
	ctx.Step(`^the tag "([^"]*)" took "([^"]*)"$`, state.thenTagDuration)
	ctx.Step(`^the run is "([^"]*)"$`, state.thenRunStatus)
	ctx.Step(`^the features are ordered "([^"]*)"$`, state.thenFeatureOrder)
}

type aggregationState struct {
	run    provider.Run
	report report.Report
}

func (s *aggregationState) reset() {
	s.run = provider.Run{}
	s.report = report.Report{}
}

func (s *aggregationState) givenFeature(name, tag string) error {
	feature := provider.Feature{Name: name, Keyword: "Feature"}
	if tag != "" {
		feature.Tags = []provider.Tag{{Name: tag}}
	}
	s.run.Features = append(s.run.Features, feature)
	return nil
}

func (s *aggregationState) givenScenario(name string, table *godog.Table) error {
	if len(s.run.Features) == 0 {
		return fmt.Errorf("no feature declared before scenario %q", name)
	}
	element := provider.Element{Name: name, Keyword: "Scenario", Type: provider.ElementTypeScenario}
	for i, row := range table.Rows {
		if i == 0 {
			continue
		}
		if len(row.Cells) != 3 {
			return fmt.Errorf("row %d: want 3 cells, got %d", i, len(row.Cells))
		}
		step := provider.Step{
			Name:   row.Cells[0].Value,
			Result: provider.Result{Status: row.Cells[1].Value},
		}
		if raw := row.Cells[2].Value; raw != "" {
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("row %d duration: %w", i, err)
			}
			step.Result.Duration = &n
		}
		element.Steps = append(element.Steps, step)
	}
	last := &s.run.Features[len(s.run.Features)-1]
	last.Elements = append(last.Elements, element)
	return nil
}

func (s *aggregationState) whenAggregated() error {
	s.report = Build(s.run)
	return nil
}

func (s *aggregationState) feature(name string) (report.Feature, error) {
	for _, f := range s.report.Features {
		if f.Name == name {
			return f, nil
		}
	}
	return report.Feature{}, fmt.Errorf("feature %q not in report", name)
}

func (s *aggregationState) tag(name string) (report.TagSummary, error) {
	for _, tag := range s.report.Tags {
		if tag.Name == name {
			return tag, nil
		}
	}
	return report.TagSummary{}, fmt.Errorf("tag %q not in report", name)
}

func (s *aggregationState) thenFeatureStatus(name, status string) error {
	f, err := s.feature(name)
	if err != nil {
		return err
	}
	if f.Status != status {
		return fmt.Errorf("feature %q status = %q, want %q", name, f.Status, status)
	}
	return nil
}

func (s *aggregationState) thenFeatureSteps(name string, all, passed, skipped, failed int) error {
	f, err := s.feature(name)
	if err != nil {
		return err
	}
	want := report.StepCounts{All: all, Passed: passed, Skipped: skipped, Failed: failed}
	if f.StepSummary != want {
		return fmt.Errorf("feature %q steps = %+v, want %+v", name, f.StepSummary, want)
	}
	return nil
}

func (s *aggregationState) thenTagScenarios(name string, all, failed int) error {
	tag, err := s.tag(name)
	if err != nil {
		return err
	}
	if tag.Scenarios.All != all || tag.Scenarios.Failed != failed {
		return fmt.Errorf("tag %q scenarios = %+v, want all=%d failed=%d", name, tag.Scenarios, all, failed)
	}
	return nil
}

func (s *aggregationState) thenTagDuration(name, want string) error {
	tag, err := s.tag(name)
	if err != nil {
		return err
	}
	if tag.ConvertedDuration != want {
		return fmt.Errorf("tag %q duration = %q, want %q", name, tag.ConvertedDuration, want)
	}
	return nil
}

func (s *aggregationState) thenRunStatus(status string) error {
	if s.report.Summary.Status != status {
		return fmt.Errorf("run status = %q, want %q", s.report.Summary.Status, status)
	}
	return nil
}

func (s *aggregationState) thenFeatureOrder(order string) error {
	got := make([]string, 0, len(s.report.Features))
	for _, f := range s.report.Features {
		got = append(got, f.Name)
	}
	if strings.Join(got, ", ") != order {
		return fmt.Errorf("feature order = %q, want %q", strings.Join(got, ", "), order)
	}
	return nil
}
