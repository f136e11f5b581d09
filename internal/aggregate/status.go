package aggregate

import (
	"github.com/bgricker/cukereport/internal/provider"
	"github.com/bgricker/cukereport/internal/report"
)

// ScenarioStatus is failed when any step ended outside passed or skipped.
func ScenarioStatus(steps []provider.Step) string {
	for _, step := range steps {
		switch step.Result.Status {
		case report.StatusPassed, report.StatusSkipped:
		default:
			return report.StatusFailed
		}
	}
	return report.StatusPassed
}

// FeatureStatus is failed when any scenario element failed.
func FeatureStatus(elements []report.Element) string {
	for _, element := range elements {
		if element.Type == provider.ElementTypeScenario && element.Status == report.StatusFailed {
			return report.StatusFailed
		}
	}
	return report.StatusPassed
}
