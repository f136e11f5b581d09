package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	cerrors "github.com/bgricker/cukereport/internal/errors"
)

// Config captures report options sourced from config files, the environment or flags.
type Config struct {
	Source      string `yaml:"source"`
	Template    string `yaml:"template"`
	Name        string `yaml:"name"`
	Dest        string `yaml:"dest"`
	Logo        string `yaml:"logo"`
	Screenshots string `yaml:"screenshots"`
	Format      string `yaml:"format"`

	Tags      []string `yaml:"tags"`
	SkipTags  []string `yaml:"skip_tags"`
	Scenarios []string `yaml:"scenarios"`

	Metrics       string `yaml:"metrics"`
	FailOnFailure bool   `yaml:"fail_on_failure"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

const (
	// FileName is the optional config file read from the working directory.
	FileName = ".cukereport.yml"
	// EnvFileName is the optional dotenv file read from the working directory.
	EnvFileName = ".env"
	// EnvPrefix prefixes every environment variable understood by the tool.
	EnvPrefix = "CUKEREPORT_"

	// DefaultName is the report file written into Dest.
	DefaultName = "index.html"
	// DefaultDest is the directory receiving the report and images.
	DefaultDest = "./reports"

	// FormatPretty renders human readable output.
	FormatPretty = "pretty"
	// FormatJSON renders machine readable output.
	FormatJSON = "json"

	// LogFormatConsole selects zap's console encoder.
	LogFormatConsole = "console"
	// LogFormatJSON selects zap's JSON encoder.
	LogFormatJSON = "json"
)

// Default returns the baseline configuration used when no other source specifies values.
func Default() Config {
	return Config{
		Name:      DefaultName,
		Dest:      DefaultDest,
		Format:    FormatPretty,
		LogLevel:  "info",
		LogFormat: LogFormatConsole,
	}
}

// Load reads .cukereport.yml from root when present. Missing files are ignored.
func Load(root string) (Config, error) {
	cfg := Default()
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, cerrors.IO("read config", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg, cerrors.Configf("parse config %q: %v", path, err)
	}
	var explicit struct {
		FailOnFailure *bool `yaml:"fail_on_failure"`
	}
	if err := yaml.Unmarshal(data, &explicit); err != nil {
		return cfg, cerrors.Configf("parse config %q: %v", path, err)
	}

	return merge(cfg, fileCfg, explicit.FailOnFailure), nil
}

// LoadEnv overlays cfg with CUKEREPORT_* values from root/.env and then the
// process environment. Process variables win over the file.
func LoadEnv(cfg Config, root string) (Config, error) {
	values := map[string]string{}
	path := filepath.Join(root, EnvFileName)
	fileValues, err := godotenv.Read(path)
	switch {
	case err == nil:
		for k, v := range fileValues {
			values[k] = v
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return cfg, cerrors.Configf("parse env file %q: %v", path, err)
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, EnvPrefix) {
			values[k] = v
		}
	}

	env := Config{
		Source:      values[EnvPrefix+"SOURCE"],
		Template:    values[EnvPrefix+"TEMPLATE"],
		Name:        values[EnvPrefix+"NAME"],
		Dest:        values[EnvPrefix+"DEST"],
		Logo:        values[EnvPrefix+"LOGO"],
		Screenshots: values[EnvPrefix+"SCREENSHOTS"],
		Format:      values[EnvPrefix+"FORMAT"],
		Tags:        splitList(values[EnvPrefix+"TAGS"]),
		SkipTags:    splitList(values[EnvPrefix+"SKIP_TAGS"]),
		Scenarios:   splitList(values[EnvPrefix+"SCENARIOS"]),
		Metrics:     values[EnvPrefix+"METRICS"],
		LogLevel:    values[EnvPrefix+"LOG_LEVEL"],
		LogFormat:   values[EnvPrefix+"LOG_FORMAT"],
	}
	var failOnFailure *bool
	if raw, ok := values[EnvPrefix+"FAIL_ON_FAILURE"]; ok && raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return cfg, cerrors.Configf("parse %sFAIL_ON_FAILURE %q: %v", EnvPrefix, raw, err)
		}
		failOnFailure = &v
	}

	return merge(cfg, env, failOnFailure), nil
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// merge overlays the non-empty fields of override onto base. Booleans cannot
// be told apart from their zero value, so the caller passes failOnFailure only
// when the source set it.
func merge(base, override Config, failOnFailure *bool) Config {
	out := base

	if override.Source != "" {
		out.Source = override.Source
	}
	if override.Template != "" {
		out.Template = override.Template
	}
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Dest != "" {
		out.Dest = override.Dest
	}
	if override.Logo != "" {
		out.Logo = override.Logo
	}
	if override.Screenshots != "" {
		out.Screenshots = override.Screenshots
	}
	if override.Format != "" {
		out.Format = override.Format
	}
	if len(override.Tags) > 0 {
		out.Tags = append([]string{}, override.Tags...)
	}
	if len(override.SkipTags) > 0 {
		out.SkipTags = append([]string{}, override.SkipTags...)
	}
	if len(override.Scenarios) > 0 {
		out.Scenarios = append([]string{}, override.Scenarios...)
	}
	if override.Metrics != "" {
		out.Metrics = override.Metrics
	}
	if failOnFailure != nil {
		out.FailOnFailure = *failOnFailure
	}
	if override.LogLevel != "" {
		out.LogLevel = override.LogLevel
	}
	if override.LogFormat != "" {
		out.LogFormat = override.LogFormat
	}

	return out
}

// ApplyFlags mutates cfg by applying values from CLI flags when they are present.
func ApplyFlags(cfg *Config, flags FlagValues) {
	if flags.Source.Set {
		cfg.Source = flags.Source.Value
	}
	if flags.Template.Set {
		cfg.Template = flags.Template.Value
	}
	if flags.Name.Set {
		cfg.Name = flags.Name.Value
	}
	if flags.Dest.Set {
		cfg.Dest = flags.Dest.Value
	}
	if flags.Logo.Set {
		cfg.Logo = flags.Logo.Value
	}
	if flags.Screenshots.Set {
		cfg.Screenshots = flags.Screenshots.Value
	}
	if flags.Format.Set {
		cfg.Format = flags.Format.Value
	}
	if len(flags.Tags.Values) > 0 {
		cfg.Tags = append([]string{}, flags.Tags.Values...)
	}
	if len(flags.SkipTags.Values) > 0 {
		cfg.SkipTags = append([]string{}, flags.SkipTags.Values...)
	}
	if len(flags.Scenarios.Values) > 0 {
		cfg.Scenarios = append([]string{}, flags.Scenarios.Values...)
	}
	if flags.Metrics.Set {
		cfg.Metrics = flags.Metrics.Value
	}
	if flags.FailOnFailure.Set {
		cfg.FailOnFailure = flags.FailOnFailure.Value
	}
	if flags.LogLevel.Set {
		cfg.LogLevel = flags.LogLevel.Value
	}
	if flags.LogFormat.Set {
		cfg.LogFormat = flags.LogFormat.Value
	}
}

// Validate checks option values that do not depend on the filesystem.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return cerrors.Config("source is required; pass --source or set source in "+FileName, "")
	}
	if strings.TrimSpace(c.Name) == "" {
		return cerrors.Config("report name must not be empty", "")
	}
	if strings.ContainsAny(c.Name, `/\`) {
		return cerrors.Config("report name must be a file name, not a path", c.Name)
	}
	if strings.TrimSpace(c.Dest) == "" {
		return cerrors.Config("destination directory must not be empty", "")
	}
	switch strings.ToLower(c.Format) {
	case FormatPretty, FormatJSON:
	default:
		return cerrors.Configf("unsupported format %q", c.Format)
	}
	switch strings.ToLower(c.LogFormat) {
	case LogFormatConsole, LogFormatJSON:
	default:
		return cerrors.Configf("unsupported log format %q", c.LogFormat)
	}
	return nil
}

// FlagValues captures CLI flag state with knowledge of whether each flag was set explicitly.
type FlagValues struct {
	Source        StringFlag
	Template      StringFlag
	Name          StringFlag
	Dest          StringFlag
	Logo          StringFlag
	Screenshots   StringFlag
	Format        StringFlag
	Tags          SliceFlag
	SkipTags      SliceFlag
	Scenarios     SliceFlag
	Metrics       StringFlag
	FailOnFailure BoolFlag
	LogLevel      StringFlag
	LogFormat     StringFlag
}

// StringFlag represents a string flag and whether it was set.
type StringFlag struct {
	Value string
	Set   bool
}

// SliceFlag represents a slice flag and whether it captured values via CLI.
type SliceFlag struct {
	Values []string
}

// BoolFlag represents a bool flag and whether it was set.
type BoolFlag struct {
	Value bool
	Set   bool
}
