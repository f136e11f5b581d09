package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bgricker/cukereport/internal/provider"
)

// Pattern represents a compiled filter condition supporting substring and regex matching.
type Pattern struct {
	raw   string
	regex *regexp.Regexp
	lower string
}

// Compile transforms raw pattern strings into Pattern values.
func Compile(patterns []string) ([]Pattern, error) {
	result := make([]Pattern, 0, len(patterns))
	for _, raw := range patterns {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if strings.HasPrefix(raw, "/") && strings.HasSuffix(raw, "/") && len(raw) >= 2 {
			expr := raw[1 : len(raw)-1]
			re, err := regexp.Compile(expr)
			if err != nil {
				return nil, fmt.Errorf("compile regexp %q: %w", raw, err)
			}
			result = append(result, Pattern{raw: raw, regex: re})
			continue
		}
		result = append(result, Pattern{raw: raw, lower: strings.ToLower(raw)})
	}
	return result, nil
}

// String returns the pattern as written.
func (p Pattern) String() string {
	return p.raw
}

// Match reports whether the pattern matches the supplied string.
func (p Pattern) Match(s string) bool {
	if s == "" {
		return false
	}
	if p.regex != nil {
		return p.regex.MatchString(s)
	}
	return strings.Contains(strings.ToLower(s), p.lower)
}

// Set groups the patterns applied to a run.
type Set struct {
	Tags      []Pattern
	SkipTags  []Pattern
	Scenarios []Pattern
}

// Empty reports whether the set filters nothing.
func (s Set) Empty() bool {
	return len(s.Tags) == 0 && len(s.SkipTags) == 0 && len(s.Scenarios) == 0
}

// CompileSet compiles raw include, exclude and scenario-name patterns.
func CompileSet(tags, skipTags, scenarios []string) (Set, error) {
	var set Set
	var err error
	if set.Tags, err = Compile(tags); err != nil {
		return Set{}, err
	}
	if set.SkipTags, err = Compile(skipTags); err != nil {
		return Set{}, err
	}
	if set.Scenarios, err = Compile(scenarios); err != nil {
		return Set{}, err
	}
	return set, nil
}

// FilterRun keeps scenarios whose feature or own tags match an include
// pattern, match no exclude pattern and whose name matches a scenario pattern.
// Features left without scenarios are dropped. Other elements such as
// backgrounds stay with any feature that keeps a scenario. The input is not modified.
func FilterRun(run provider.Run, set Set) provider.Run {
	if set.Empty() {
		return run
	}

	out := provider.Run{Source: run.Source, Features: make([]provider.Feature, 0, len(run.Features))}
	for _, feature := range run.Features {
		elements := make([]provider.Element, 0, len(feature.Elements))
		kept := 0
		for _, element := range feature.Elements {
			if !element.IsScenario() {
				elements = append(elements, element)
				continue
			}
			if !keepScenario(feature, element, set) {
				continue
			}
			elements = append(elements, element)
			kept++
		}
		if kept == 0 {
			continue
		}
		featureCopy := feature
		featureCopy.Elements = elements
		out.Features = append(out.Features, featureCopy)
	}
	return out
}

func keepScenario(feature provider.Feature, element provider.Element, set Set) bool {
	tags := make([]provider.Tag, 0, len(feature.Tags)+len(element.Tags))
	tags = append(tags, feature.Tags...)
	tags = append(tags, element.Tags...)

	if len(set.Tags) > 0 && !matchesTags(tags, set.Tags) {
		return false
	}
	if len(set.SkipTags) > 0 && matchesTags(tags, set.SkipTags) {
		return false
	}
	if len(set.Scenarios) > 0 && !matchesAny(element.Name, set.Scenarios) {
		return false
	}
	return true
}

func matchesTags(tags []provider.Tag, patterns []Pattern) bool {
	for _, tag := range tags {
		if matchesAny(tag.Name, patterns) {
			return true
		}
	}
	return false
}

func matchesAny(s string, patterns []Pattern) bool {
	for _, pattern := range patterns {
		if pattern.Match(s) {
			return true
		}
	}
	return false
}
