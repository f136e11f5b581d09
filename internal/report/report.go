package report

import "time"

// Status values assigned to steps, scenarios, features, tags and runs.
const (
	StatusPassed  = "passed"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// Report is the fully aggregated view of a cucumber run.
type Report struct {
	Source   string       `json:"source"`
	Features []Feature    `json:"features"`
	Tags     []TagSummary `json:"tags"`
	Summary  Summary      `json:"summary"`
	Images   []ImageWrite `json:"-"`
	Warnings []Warning    `json:"warnings,omitempty"`
}

// Feature is a feature with derived status, summaries and sorted elements.
type Feature struct {
	ID                string         `json:"id"`
	URI               string         `json:"uri"`
	Keyword           string         `json:"keyword"`
	Name              string         `json:"name"`
	Description       string         `json:"description,omitempty"`
	Line              int            `json:"line"`
	Tags              []string       `json:"tags"`
	TagsDisplay       string         `json:"tagsDisplay"`
	Status            string         `json:"status"`
	Duration          time.Duration  `json:"-"`
	ConvertedDuration string         `json:"convertedDuration"`
	Elements          []Element      `json:"elements"`
	StepSummary       StepCounts     `json:"stepSummary"`
	ScenarioSummary   ScenarioCounts `json:"scenarioSummary"`
}

// Element is a scenario or background after artifact extraction.
type Element struct {
	ID                string   `json:"id,omitempty"`
	Keyword           string   `json:"keyword"`
	Name              string   `json:"name"`
	Description       string   `json:"description,omitempty"`
	Line              int      `json:"line"`
	Type              string   `json:"type"`
	Status            string   `json:"status,omitempty"`
	Steps             []Step   `json:"steps"`
	ImageNames        []string `json:"imageName,omitempty"`
	PlainTextMetadata []string `json:"plainTextMetadata,omitempty"`
	Logs              []string `json:"logs,omitempty"`
}

// Step is a displayable step. ConvertedDuration is empty when no duration was reported.
type Step struct {
	Keyword           string         `json:"keyword"`
	Name              string         `json:"name"`
	Line              int            `json:"line"`
	Status            string         `json:"status"`
	ErrorMessage      string         `json:"errorMessage,omitempty"`
	Duration          *time.Duration `json:"-"`
	ConvertedDuration string         `json:"convertedDuration,omitempty"`
}

// StepCounts buckets steps by outcome. Any status other than passed or skipped counts as failed.
type StepCounts struct {
	All     int `json:"all"`
	Passed  int `json:"passed"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// Add records one step with the given status.
func (c *StepCounts) Add(status string) {
	c.All++
	switch status {
	case StatusPassed:
		c.Passed++
	case StatusSkipped:
		c.Skipped++
	default:
		c.Failed++
	}
}

// Merge adds other into c.
func (c *StepCounts) Merge(other StepCounts) {
	c.All += other.All
	c.Passed += other.Passed
	c.Skipped += other.Skipped
	c.Failed += other.Failed
}

// ScenarioCounts buckets scenarios by derived status.
type ScenarioCounts struct {
	All    int `json:"all"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Add records one scenario with the given derived status.
func (c *ScenarioCounts) Add(status string) {
	c.All++
	if status == StatusFailed {
		c.Failed++
		return
	}
	c.Passed++
}

// Merge adds other into c.
func (c *ScenarioCounts) Merge(other ScenarioCounts) {
	c.All += other.All
	c.Passed += other.Passed
	c.Failed += other.Failed
}

// TagSummary rolls up every scenario under features carrying a tag.
type TagSummary struct {
	Name              string         `json:"name"`
	Scenarios         ScenarioCounts `json:"scenarios"`
	Steps             StepCounts     `json:"steps"`
	Duration          time.Duration  `json:"-"`
	ConvertedDuration string         `json:"convertedDuration"`
	Status            string         `json:"status"`
}

// Summary aggregates the whole run.
type Summary struct {
	Features          ScenarioCounts `json:"features"`
	Scenarios         ScenarioCounts `json:"scenarios"`
	Steps             StepCounts     `json:"steps"`
	Duration          time.Duration  `json:"-"`
	DurationMS        int64          `json:"duration_ms"`
	ConvertedDuration string         `json:"convertedDuration"`
	Status            string         `json:"status"`
}

// ImageWrite is a decoded image that must be persisted next to the report.
type ImageWrite struct {
	Name string
	Data []byte
}

// Warning captures a non-fatal issue found while extracting artifacts.
type Warning struct {
	Feature string `json:"feature"`
	Element string `json:"element"`
	Message string `json:"message"`
}
