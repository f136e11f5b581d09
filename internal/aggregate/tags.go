package aggregate

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/bgricker/cukereport/internal/report"
)

// rollupTags accumulates every feature into each of its tag buckets.
// Buckets come out in first-encounter order; features without tags add nothing.
func rollupTags(features []report.Feature) []report.TagSummary {
	buckets := orderedmap.New[string, *report.TagSummary]()
	for _, feature := range features {
		if len(feature.Tags) == 0 {
			continue
		}
		duration := scenarioDuration(feature.Elements)
		for _, name := range feature.Tags {
			bucket, ok := buckets.Get(name)
			if !ok {
				bucket = &report.TagSummary{Name: name, Status: report.StatusPassed}
				buckets.Set(name, bucket)
			}
			bucket.Scenarios.Merge(feature.ScenarioSummary)
			bucket.Steps.Merge(feature.StepSummary)
			bucket.Duration += duration
			if feature.ScenarioSummary.Failed > 0 {
				bucket.Status = report.StatusFailed
			}
		}
	}

	out := make([]report.TagSummary, 0, buckets.Len())
	for pair := buckets.Oldest(); pair != nil; pair = pair.Next() {
		bucket := *pair.Value
		bucket.ConvertedDuration = FormatDuration(bucket.Duration)
		out = append(out, bucket)
	}
	return out
}
