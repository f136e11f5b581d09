package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bgricker/cukereport/internal/provider"
	"github.com/bgricker/cukereport/internal/report"
)

func stepsWithStatuses(statuses ...string) []provider.Step {
	steps := make([]provider.Step, 0, len(statuses))
	for i, status := range statuses {
		steps = append(steps, provider.Step{Name: "step", Line: i + 1, Result: provider.Result{Status: status}})
	}
	return steps
}

func TestScenarioStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     string
	}{
		{"no steps", nil, report.StatusPassed},
		{"all passed", []string{"passed", "passed"}, report.StatusPassed},
		{"skipped alone does not fail", []string{"passed", "skipped"}, report.StatusPassed},
		{"only skipped", []string{"skipped"}, report.StatusPassed},
		{"failed", []string{"passed", "failed", "skipped"}, report.StatusFailed},
		{"undefined counts as failed", []string{"undefined"}, report.StatusFailed},
		{"pending counts as failed", []string{"passed", "pending"}, report.StatusFailed},
		{"missing status counts as failed", []string{""}, report.StatusFailed},
		{"case sensitive", []string{"Passed"}, report.StatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScenarioStatus(stepsWithStatuses(tt.statuses...)))
		})
	}
}

func TestFeatureStatus(t *testing.T) {
	scenario := func(status string) report.Element {
		return report.Element{Type: provider.ElementTypeScenario, Status: status}
	}

	assert.Equal(t, report.StatusPassed, FeatureStatus(nil))
	assert.Equal(t, report.StatusPassed, FeatureStatus([]report.Element{scenario(report.StatusPassed)}))
	assert.Equal(t, report.StatusFailed, FeatureStatus([]report.Element{
		scenario(report.StatusPassed),
		scenario(report.StatusFailed),
	}))
	assert.Equal(t, report.StatusPassed, FeatureStatus([]report.Element{
		{Type: "background", Status: report.StatusFailed},
		scenario(report.StatusPassed),
	}), "non-scenario elements never fail a feature")
}

func TestStepCountsInvariant(t *testing.T) {
	var counts report.StepCounts
	for _, status := range []string{"passed", "skipped", "failed", "undefined", "", "ambiguous", "passed"} {
		counts.Add(status)
	}
	assert.Equal(t, report.StepCounts{All: 7, Passed: 2, Skipped: 1, Failed: 4}, counts)
	assert.Equal(t, counts.All, counts.Passed+counts.Skipped+counts.Failed)
}
