// Package runner drives one report generation from source document to files on disk.
package runner

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/bgricker/cukereport/internal/aggregate"
	"github.com/bgricker/cukereport/internal/artifacts"
	"github.com/bgricker/cukereport/internal/config"
	"github.com/bgricker/cukereport/internal/discovery"
	cerrors "github.com/bgricker/cukereport/internal/errors"
	"github.com/bgricker/cukereport/internal/metrics"
	"github.com/bgricker/cukereport/internal/model"
	"github.com/bgricker/cukereport/internal/output"
	"github.com/bgricker/cukereport/internal/provider/cucumber"
	"github.com/bgricker/cukereport/internal/provider/filter"
	"github.com/bgricker/cukereport/internal/report"
)

// Options configure a generation.
type Options struct {
	Root   string
	Config config.Config
	Logger *zap.Logger
	Files  model.Files
	Now    func() time.Time
}

// Result describes what a generation produced.
type Result struct {
	Report      report.Report
	ReportPath  string
	ImagePaths  []string
	MetricsPath string
	Elapsed     time.Duration
}

// Runner generates reports sequentially.
type Runner struct {
	opts Options
}

// New creates a runner with the supplied options.
func New(opts Options) *Runner {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Files == nil {
		opts.Files = model.OSFiles{Root: opts.Root}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Runner{opts: opts}
}

// Aggregate parses and filters the source document and builds the report.
// Nothing is written to disk.
func (r *Runner) Aggregate() (report.Report, error) {
	cfg := r.opts.Config
	log := r.opts.Logger

	source, err := discovery.Source(r.opts.Root, cfg.Source)
	if err != nil {
		return report.Report{}, err
	}
	set, err := filter.CompileSet(cfg.Tags, cfg.SkipTags, cfg.Scenarios)
	if err != nil {
		return report.Report{}, cerrors.Configf("compile filters: %v", err)
	}

	run, err := cucumber.NewParser(r.opts.Root).Parse(source)
	if err != nil {
		return report.Report{}, err
	}
	log.Debug("parsed source", zap.String("path", source), zap.Int("features", len(run.Features)))

	if !set.Empty() {
		before := len(run.Features)
		run = filter.FilterRun(run, set)
		log.Debug("applied filters", zap.Int("features_before", before), zap.Int("features_after", len(run.Features)))
	}

	rep := aggregate.Build(run)
	for _, w := range rep.Warnings {
		log.Warn("artifact skipped", zap.String("feature", w.Feature), zap.String("element", w.Element), zap.String("reason", w.Message))
	}
	log.Info("aggregated run",
		zap.Int("features", rep.Summary.Features.All),
		zap.Int("scenarios", rep.Summary.Scenarios.All),
		zap.Int("steps", rep.Summary.Steps.All),
		zap.String("status", rep.Summary.Status),
		zap.String("duration", rep.Summary.ConvertedDuration),
	)
	return rep, nil
}

// Run aggregates the source, writes decoded images and the rendered report
// into the destination directory and optionally exports metrics.
func (r *Runner) Run() (Result, error) {
	start := r.opts.Now()
	cfg := r.opts.Config
	log := r.opts.Logger

	templatePath, err := discovery.Template(r.opts.Root, cfg.Template)
	if err != nil {
		return Result{}, err
	}
	if _, err := discovery.Logo(r.opts.Root, cfg.Logo); err != nil {
		return Result{}, err
	}
	if _, err := discovery.Screenshots(r.opts.Root, cfg.Screenshots); err != nil {
		return Result{}, err
	}

	rep, err := r.Aggregate()
	if err != nil {
		return Result{}, err
	}

	dest := discovery.Dest(r.opts.Root, cfg.Dest)
	writer, err := artifacts.NewWriter(dest)
	if err != nil {
		return Result{}, err
	}

	result := Result{Report: rep}
	for _, img := range rep.Images {
		path, err := writer.WriteBytes(img.Name, img.Data)
		if err != nil {
			return Result{}, err
		}
		result.ImagePaths = append(result.ImagePaths, path)
	}
	log.Debug("wrote images", zap.String("dest", dest), zap.Int("count", len(result.ImagePaths)))

	m, err := model.Assemble(cfg, rep, r.opts.Files)
	if err != nil {
		return Result{}, err
	}

	var text string
	if templatePath != "" {
		data, err := r.opts.Files.ReadFile(templatePath)
		if err != nil {
			return Result{}, cerrors.IO("read template", templatePath, err)
		}
		text = string(data)
	}
	var buf bytes.Buffer
	if err := output.NewHTML(&buf, text).Render(m); err != nil {
		return Result{}, &cerrors.Error{Kind: cerrors.KindConfig, Message: "render template", Path: templatePath, Cause: err}
	}
	result.ReportPath, err = writer.WriteBytes(cfg.Name, buf.Bytes())
	if err != nil {
		return Result{}, err
	}
	log.Info("wrote report", zap.String("path", result.ReportPath))

	if cfg.Metrics != "" {
		path := cfg.Metrics
		if !filepath.IsAbs(path) {
			path = filepath.Join(r.opts.Root, path)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return Result{}, cerrors.IO("create metrics directory", filepath.Dir(path), err)
		}
		collector := metrics.NewCollector()
		collector.Observe(rep)
		if err := collector.Write(path); err != nil {
			return Result{}, fmt.Errorf("export metrics: %w", err)
		}
		result.MetricsPath = path
		log.Info("wrote metrics", zap.String("path", path))
	}

	result.Elapsed = r.opts.Now().Sub(start)
	log.Debug("generation finished", zap.Duration("elapsed", result.Elapsed))
	return result, nil
}
