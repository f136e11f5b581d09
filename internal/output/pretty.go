package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/bgricker/cukereport/internal/report"
)

// PrettyRenderer renders an aggregated report in a human-friendly format.
type PrettyRenderer struct {
	out io.Writer
}

// NewPretty creates a PrettyRenderer writing to the provided writer.
func NewPretty(out io.Writer) *PrettyRenderer {
	return &PrettyRenderer{out: out}
}

// Render lists features with their status and duration, failed scenarios
// under their feature, the tag rollups and a closing summary.
func (p *PrettyRenderer) Render(rep report.Report) error {
	var buffer bytes.Buffer

	for _, feature := range rep.Features {
		fmt.Fprintf(&buffer, "%s %s (%s)\n", statusGlyph(feature.Status), decorateName(feature.Name, feature.URI), feature.ConvertedDuration)
		for _, element := range feature.Elements {
			if element.Status != report.StatusFailed {
				continue
			}
			fmt.Fprintf(&buffer, "    %s %s\n", statusGlyph(element.Status), element.Name)
			for _, step := range element.Steps {
				if step.Status == report.StatusPassed || step.Status == report.StatusSkipped {
					continue
				}
				fmt.Fprintf(&buffer, "      %s %s%s\n", statusGlyph(step.Status), step.Keyword, step.Name)
				if msg := indent(step.ErrorMessage, "        "); msg != "" {
					fmt.Fprintf(&buffer, "%s\n", msg)
				}
			}
		}
	}

	if len(rep.Tags) > 0 {
		buffer.WriteString("Tags\n")
		for _, tag := range rep.Tags {
			fmt.Fprintf(&buffer, "  %s %s %d/%d scenarios passed (%s)\n", statusGlyph(tag.Status), tag.Name, tag.Scenarios.Passed, tag.Scenarios.All, tag.ConvertedDuration)
		}
	}

	s := rep.Summary
	fmt.Fprintf(&buffer, "FEATURES: %d passed, %d failed\n", s.Features.Passed, s.Features.Failed)
	fmt.Fprintf(&buffer, "SCENARIOS: %d passed, %d failed\n", s.Scenarios.Passed, s.Scenarios.Failed)
	fmt.Fprintf(&buffer, "SUMMARY: %d passed, %d failed, %d skipped (%s)\n", s.Steps.Passed, s.Steps.Failed, s.Steps.Skipped, s.ConvertedDuration)

	_, err := buffer.WriteTo(p.out)
	return err
}

func decorateName(name, path string) string {
	if path == "" || name == path {
		return name
	}
	if name == "" {
		return path
	}
	return fmt.Sprintf("%s (%s)", name, path)
}

func statusGlyph(status string) string {
	switch status {
	case report.StatusPassed:
		return "✓"
	case report.StatusFailed:
		return "✗"
	case report.StatusSkipped:
		return "-"
	default:
		return "?"
	}
}

func indent(s, pad string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
