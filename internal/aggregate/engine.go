// Package aggregate turns a parsed cucumber run into a summarized report.
//
// Build is a single synchronous pass. It never modifies its input: every
// derived field (statuses, display durations, artifact names, summaries,
// tag rollups) lives on the returned report values.
package aggregate

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/bgricker/cukereport/internal/provider"
	"github.com/bgricker/cukereport/internal/report"
)

// Build aggregates run into a report.
func Build(run provider.Run) report.Report {
	rep := report.Report{
		Source:   run.Source,
		Features: make([]report.Feature, 0, len(run.Features)),
	}

	for _, in := range run.Features {
		feature, images, warnings := buildFeature(in)
		rep.Features = append(rep.Features, feature)
		rep.Images = append(rep.Images, images...)
		rep.Warnings = append(rep.Warnings, warnings...)
	}

	// Tag buckets follow document order, so roll up before sorting features.
	rep.Tags = rollupTags(rep.Features)
	SortFeatures(rep.Features)
	rep.Summary = summarizeRun(rep.Features)
	return rep
}

func buildFeature(in provider.Feature) (report.Feature, []report.ImageWrite, []report.Warning) {
	feature := report.Feature{
		ID:          in.ID,
		URI:         in.URI,
		Keyword:     in.Keyword,
		Name:        in.Name,
		Description: in.Description,
		Line:        in.Line,
		Tags:        tagNames(in.Tags),
		Elements:    make([]report.Element, 0, len(in.Elements)),
	}
	feature.TagsDisplay = strings.Join(feature.Tags, ", ")

	var images []report.ImageWrite
	var warnings []report.Warning
	for _, el := range in.Elements {
		element := report.Element{
			ID:          el.ID,
			Keyword:     el.Keyword,
			Name:        el.Name,
			Description: el.Description,
			Line:        el.Line,
			Type:        el.Type,
		}
		if !el.IsScenario() {
			element.Steps = convertSteps(el.Steps)
			feature.Elements = append(feature.Elements, element)
			continue
		}

		artifacts := extractArtifacts(el)
		element.ImageNames = artifacts.imageNames
		element.PlainTextMetadata = artifacts.plainText
		element.Logs = artifacts.logs
		images = append(images, artifacts.images...)
		for _, problem := range artifacts.problems {
			warnings = append(warnings, report.Warning{Feature: in.Name, Element: el.Name, Message: problem})
		}

		element.Status = ScenarioStatus(el.Steps)
		element.Steps = convertSteps(namedSteps(el.Steps))
		feature.Elements = append(feature.Elements, element)
	}

	feature.Status = FeatureStatus(feature.Elements)
	SortElements(feature.Elements)
	feature.StepSummary, feature.ScenarioSummary = summarizeScenarios(feature.Elements)
	feature.Duration = totalDuration(feature.Elements)
	feature.ConvertedDuration = FormatDuration(feature.Duration)
	return feature, images, warnings
}

// SortElements orders elements by status then name. Equal keys keep their order.
func SortElements(elements []report.Element) {
	slices.SortStableFunc(elements, func(a, b report.Element) int {
		return compareStatusName(a.Status, a.Name, b.Status, b.Name)
	})
}

// SortFeatures orders features by status then name, so failed sorts before passed.
func SortFeatures(features []report.Feature) {
	slices.SortStableFunc(features, func(a, b report.Feature) int {
		return compareStatusName(a.Status, a.Name, b.Status, b.Name)
	})
}

func compareStatusName(statusA, nameA, statusB, nameB string) int {
	if c := cmp.Compare(statusA, statusB); c != 0 {
		return c
	}
	return cmp.Compare(nameA, nameB)
}

func tagNames(tags []provider.Tag) []string {
	if len(tags) == 0 {
		return nil
	}
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}

func namedSteps(steps []provider.Step) []provider.Step {
	out := make([]provider.Step, 0, len(steps))
	for _, step := range steps {
		if step.Name == "" {
			continue
		}
		out = append(out, step)
	}
	return out
}

func convertSteps(steps []provider.Step) []report.Step {
	out := make([]report.Step, 0, len(steps))
	for _, in := range steps {
		step := report.Step{
			Keyword:      in.Keyword,
			Name:         in.Name,
			Line:         in.Line,
			Status:       in.Result.Status,
			ErrorMessage: in.Result.ErrorMessage,
			Duration:     stepDuration(in.Result.Duration),
		}
		if step.Duration != nil {
			step.ConvertedDuration = FormatDuration(*step.Duration)
		}
		out = append(out, step)
	}
	return out
}

// summarizeScenarios counts steps and scenarios across scenario elements only.
func summarizeScenarios(elements []report.Element) (report.StepCounts, report.ScenarioCounts) {
	var steps report.StepCounts
	var scenarios report.ScenarioCounts
	for _, element := range elements {
		if element.Type != provider.ElementTypeScenario {
			continue
		}
		scenarios.Add(element.Status)
		for _, step := range element.Steps {
			steps.Add(step.Status)
		}
	}
	return steps, scenarios
}

// totalDuration sums every step of every element, backgrounds included.
func totalDuration(elements []report.Element) time.Duration {
	var total time.Duration
	for _, element := range elements {
		total += sumSteps(element.Steps)
	}
	return total
}

func scenarioDuration(elements []report.Element) time.Duration {
	var total time.Duration
	for _, element := range elements {
		if element.Type == provider.ElementTypeScenario {
			total += sumSteps(element.Steps)
		}
	}
	return total
}

func sumSteps(steps []report.Step) time.Duration {
	var total time.Duration
	for _, step := range steps {
		if step.Duration != nil {
			total += *step.Duration
		}
	}
	return total
}

func summarizeRun(features []report.Feature) report.Summary {
	summary := report.Summary{Status: report.StatusPassed}
	for _, feature := range features {
		summary.Features.Add(feature.Status)
		summary.Scenarios.Merge(feature.ScenarioSummary)
		summary.Steps.Merge(feature.StepSummary)
		summary.Duration += feature.Duration
	}
	if summary.Features.Failed > 0 {
		summary.Status = report.StatusFailed
	}
	summary.DurationMS = summary.Duration.Milliseconds()
	summary.ConvertedDuration = FormatDuration(summary.Duration)
	return summary
}
