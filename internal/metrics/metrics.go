package metrics

import (
	"bytes"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	cerrors "github.com/bgricker/cukereport/internal/errors"
	"github.com/bgricker/cukereport/internal/report"
)

// Collector exports the outcome of one aggregated run.
type Collector struct {
	registry        *prometheus.Registry
	featuresTotal   *prometheus.GaugeVec
	scenariosTotal  *prometheus.GaugeVec
	stepsTotal      *prometheus.GaugeVec
	featureDuration *prometheus.HistogramVec
	tagScenarios    *prometheus.GaugeVec
	runDuration     prometheus.Gauge
	runFailed       prometheus.Gauge
}

// NewCollector initializes a new metrics registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	c := &Collector{
		registry: registry,
		featuresTotal: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "cukereport_features", Help: "Features by derived status"},
			[]string{"status"},
		),
		scenariosTotal: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "cukereport_scenarios", Help: "Scenarios by derived status"},
			[]string{"status"},
		),
		stepsTotal: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "cukereport_steps", Help: "Named scenario steps by status bucket"},
			[]string{"status"},
		),
		featureDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cukereport_feature_duration_seconds",
				Help:    "Feature duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"status"},
		),
		tagScenarios: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "cukereport_tag_scenarios", Help: "Scenarios per tag by derived status"},
			[]string{"tag", "status"},
		),
		runDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cukereport_run_duration_seconds",
			Help: "Sum of every step duration in the run",
		}),
		runFailed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cukereport_run_failed",
			Help: "1 when any feature failed",
		}),
	}

	registry.MustRegister(c.featuresTotal, c.scenariosTotal, c.stepsTotal, c.featureDuration, c.tagScenarios, c.runDuration, c.runFailed)
	return c
}

// Observe records the summaries of rep.
func (c *Collector) Observe(rep report.Report) {
	s := rep.Summary
	c.featuresTotal.WithLabelValues(report.StatusPassed).Set(float64(s.Features.Passed))
	c.featuresTotal.WithLabelValues(report.StatusFailed).Set(float64(s.Features.Failed))
	c.scenariosTotal.WithLabelValues(report.StatusPassed).Set(float64(s.Scenarios.Passed))
	c.scenariosTotal.WithLabelValues(report.StatusFailed).Set(float64(s.Scenarios.Failed))
	c.stepsTotal.WithLabelValues(report.StatusPassed).Set(float64(s.Steps.Passed))
	c.stepsTotal.WithLabelValues(report.StatusSkipped).Set(float64(s.Steps.Skipped))
	c.stepsTotal.WithLabelValues(report.StatusFailed).Set(float64(s.Steps.Failed))

	for _, feature := range rep.Features {
		c.featureDuration.WithLabelValues(feature.Status).Observe(feature.Duration.Seconds())
	}
	for _, tag := range rep.Tags {
		c.tagScenarios.WithLabelValues(tag.Name, report.StatusPassed).Set(float64(tag.Scenarios.Passed))
		c.tagScenarios.WithLabelValues(tag.Name, report.StatusFailed).Set(float64(tag.Scenarios.Failed))
	}

	c.runDuration.Set(s.Duration.Seconds())
	if s.Status == report.StatusFailed {
		c.runFailed.Set(1)
	} else {
		c.runFailed.Set(0)
	}
}

// Write writes all metrics to a Prometheus text file.
func (c *Collector) Write(path string) error {
	metricFamilies, err := c.registry.Gather()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range metricFamilies {
		if err := enc.Encode(family); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return cerrors.IO("write metrics", path, err)
	}
	return nil
}
