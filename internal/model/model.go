// Package model assembles an aggregated report and caller options into the
// flat structure handed to a template.
package model

import (
	_ "embed"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/bgricker/cukereport/internal/config"
	"github.com/bgricker/cukereport/internal/discovery"
	cerrors "github.com/bgricker/cukereport/internal/errors"
	"github.com/bgricker/cukereport/internal/provider"
	"github.com/bgricker/cukereport/internal/report"
)

//go:embed assets/logo.svg
var defaultLogo []byte

// DefaultLogoName is the file name reported for the bundled logo.
const DefaultLogoName = "logo.svg"

// Files reads logo and screenshot bytes on behalf of Assemble.
type Files interface {
	ReadFile(path string) ([]byte, error)
	Screenshots(dir string) ([]string, error)
}

// OSFiles reads from the local filesystem, resolving relative paths against Root.
type OSFiles struct {
	Root string
}

// ReadFile reads path relative to Root.
func (f OSFiles) ReadFile(path string) ([]byte, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(f.Root, path)
	}
	return os.ReadFile(path)
}

// Screenshots lists the non-hidden files of dir.
func (f OSFiles) Screenshots(dir string) ([]string, error) {
	return discovery.Screenshots(f.Root, dir)
}

// Model is everything a report template can reference.
type Model struct {
	Options  config.Config
	Source   string
	Features []report.Feature
	Tags     []report.TagSummary
	Summary  report.Summary
	Warnings []report.Warning

	ScenarioNames    template.JS
	ScenarioSummary  template.JS
	StepSummary      template.JS
	TagSummary       template.JS
	Logo             template.URL
	Screenshots      []template.URL
	ScreenshotsNames []string
}

// Assemble merges rep with cfg. The only I/O is reading the logo and screenshots through files.
func Assemble(cfg config.Config, rep report.Report, files Files) (Model, error) {
	m := Model{
		Options:  cfg,
		Source:   rep.Source,
		Features: rep.Features,
		Tags:     rep.Tags,
		Summary:  rep.Summary,
		Warnings: rep.Warnings,
	}

	scenarioNames := make([]string, 0)
	scenarioSummaries := make([]report.ScenarioCounts, 0, len(rep.Features))
	stepSummaries := make([]report.StepCounts, 0, len(rep.Features))
	for _, feature := range rep.Features {
		for _, element := range feature.Elements {
			if element.Type == provider.ElementTypeScenario {
				scenarioNames = append(scenarioNames, element.Name)
			}
		}
		scenarioSummaries = append(scenarioSummaries, feature.ScenarioSummary)
		stepSummaries = append(stepSummaries, feature.StepSummary)
	}
	tags := rep.Tags
	if tags == nil {
		tags = []report.TagSummary{}
	}

	projections := []struct {
		name string
		dst  *template.JS
		v    any
	}{
		{"scenario names", &m.ScenarioNames, scenarioNames},
		{"scenario summary", &m.ScenarioSummary, scenarioSummaries},
		{"step summary", &m.StepSummary, stepSummaries},
		{"tag summary", &m.TagSummary, tags},
	}
	for _, p := range projections {
		js, err := toJS(p.v)
		if err != nil {
			return Model{}, fmt.Errorf("encode %s: %w", p.name, err)
		}
		*p.dst = js
	}

	logo, err := logoURI(cfg.Logo, files)
	if err != nil {
		return Model{}, err
	}
	m.Logo = logo

	if cfg.Screenshots != "" {
		paths, err := files.Screenshots(cfg.Screenshots)
		if err != nil {
			return Model{}, err
		}
		for _, path := range paths {
			data, err := files.ReadFile(path)
			if err != nil {
				return Model{}, cerrors.IO("read screenshot", path, err)
			}
			m.Screenshots = append(m.Screenshots, DataURI(path, data))
			m.ScreenshotsNames = append(m.ScreenshotsNames, filepath.Base(path))
		}
	}

	return m, nil
}

func logoURI(path string, files Files) (template.URL, error) {
	if path == "" {
		return DataURI(DefaultLogoName, defaultLogo), nil
	}
	data, err := files.ReadFile(path)
	if err != nil {
		return "", cerrors.IO("read logo", path, err)
	}
	return DataURI(path, data), nil
}

// DataURI encodes data as an image data URI whose subtype is the file extension of name.
func DataURI(name string, data []byte) template.URL {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "svg" {
		ext = "svg+xml"
	}
	return template.URL("data:image/" + ext + ";base64," + base64.StdEncoding.EncodeToString(data))
}

func toJS(v any) (template.JS, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(data), nil
}
