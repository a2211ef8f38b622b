// SPDX-License-Identifier: MIT
// Package config loads the lvroad application configuration.
//
// Sources, lowest precedence first:
//  1. built-in defaults (kdtree index, info/text logging);
//  2. a YAML document (gopkg.in/yaml.v3, unknown keys rejected);
//  3. a .env file (github.com/joho/godotenv; never overrides the process env);
//  4. LVROAD_* environment variables;
//  5. overrides registered with WithOverride (command-line flags).
//
// Example document:
//
//	space:
//	  bounds: [[0, 1], [0, 1]]
//	roadmap:
//	  params:
//	    num_per_batch: 10
//	    radius_first_batch: 0.5
//	    seed: 42
//	index: kdtree
//	run:
//	  batches: 5
//	log:
//	  level: debug
//	  format: json
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroad/driver"
	"github.com/katalvlaran/lvroad/space"
)

// ErrInvalid marks a configuration that cannot drive a run.
var ErrInvalid = errors.New("config: invalid")

// Index kinds.
const (
	IndexLinear = "linear"
	IndexKDTree = "kdtree"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Environment overrides.
const (
	EnvSeed             = "LVROAD_SEED"
	EnvNumPerBatch      = "LVROAD_NUM_PER_BATCH"
	EnvRadiusFirstBatch = "LVROAD_RADIUS_FIRST_BATCH"
	EnvBatches          = "LVROAD_BATCHES"
	EnvMaxVertices      = "LVROAD_MAX_VERTICES"
	EnvIndex            = "LVROAD_INDEX"
	EnvLogLevel         = "LVROAD_LOG_LEVEL"
	EnvLogFormat        = "LVROAD_LOG_FORMAT"
)

// DefaultEnvFile is loaded by Load when no env files are named. A missing
// default file is not an error.
const DefaultEnvFile = ".env"

// Config is the whole application configuration.
type Config struct {
	Space   SpaceConfig   `yaml:"space" json:"space"`
	Roadmap RoadmapConfig `yaml:"roadmap" json:"roadmap"`
	Index   string        `yaml:"index" json:"index"`
	Run     RunConfig     `yaml:"run" json:"run"`
	Log     LogConfig     `yaml:"log" json:"log"`
}

// SpaceConfig describes a bounded real vector space, one [low, high] pair per axis.
type SpaceConfig struct {
	Bounds [][]float64 `yaml:"bounds" json:"bounds"`
}

// RoadmapConfig carries generator parameters by name, as strings, so they
// can be fed to a param.Set unchanged.
type RoadmapConfig struct {
	Params map[string]Scalar `yaml:"params" json:"params"`
}

// RunConfig is the run budget.
type RunConfig struct {
	Batches     int `yaml:"batches" json:"batches"`
	MaxVertices int `yaml:"max_vertices" json:"max_vertices"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// Scalar is a YAML scalar kept verbatim, whatever its resolved tag.
type Scalar string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: parameter must be a scalar: %w", node.Line, ErrInvalid)
	}
	*s = Scalar(node.Value)

	return nil
}

// Default returns the configuration used before any source is applied.
func Default() *Config {
	return &Config{
		Roadmap: RoadmapConfig{Params: map[string]Scalar{}},
		Index:   IndexKDTree,
		Log:     LogConfig{Level: "info", Format: FormatText},
	}
}

// LoadOption adjusts how Load assembles a Config.
type LoadOption func(*loadOptions)

type loadOptions struct {
	envFiles  []string
	overrides []func(*Config)
}

// WithEnvFiles loads the named env files instead of DefaultEnvFile. Missing
// named files are errors.
func WithEnvFiles(files ...string) LoadOption {
	return func(o *loadOptions) { o.envFiles = append(o.envFiles, files...) }
}

// WithOverride applies fn after every other source and before Validate.
// Command-line flags use it to take precedence over file and environment.
func WithOverride(fn func(*Config)) LoadOption {
	return func(o *loadOptions) {
		if fn != nil {
			o.overrides = append(o.overrides, fn)
		}
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), env files, the process environment and overrides, then
// validates it.
func Load(path string, opts ...LoadOption) (*Config, error) {
	var lo loadOptions
	for _, opt := range opts {
		opt(&lo)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("Load: %w", err)
		}
		if err = cfg.Decode(data); err != nil {
			return nil, fmt.Errorf("Load %s: %w", path, err)
		}
	}

	if err := loadEnvFiles(lo.envFiles); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	for _, fn := range lo.overrides {
		fn(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	return cfg, nil
}

// loadEnvFiles loads files with godotenv, or DefaultEnvFile when none are
// named. Variables already present in the process are never overwritten.
func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		err := godotenv.Load(DefaultEnvFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("env file %s: %w: %w", DefaultEnvFile, ErrInvalid, err)
		}
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("env files %v: %w", files, err)
	}

	return nil
}

// Decode merges a YAML document into c. Unknown keys are rejected; an empty
// document leaves c unchanged.
func (c *Config) Decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Roadmap.Params == nil {
		c.Roadmap.Params = map[string]Scalar{}
	}

	return nil
}

// LookupFunc reads one environment variable; os.LookupEnv is the usual one.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides c with every non-empty LVROAD_* variable lookup reports.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		return v, ok && v != ""
	}
	if c.Roadmap.Params == nil {
		c.Roadmap.Params = map[string]Scalar{}
	}

	for key, name := range map[string]string{
		EnvSeed:             "seed",
		EnvNumPerBatch:      "num_per_batch",
		EnvRadiusFirstBatch: "radius_first_batch",
	} {
		if v, ok := get(key); ok {
			c.Roadmap.Params[name] = Scalar(v)
		}
	}
	for key, dst := range map[string]*int{
		EnvBatches:     &c.Run.Batches,
		EnvMaxVertices: &c.Run.MaxVertices,
	} {
		if v, ok := get(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("ApplyEnv: %s=%q: %w", key, v, ErrInvalid)
			}
			*dst = n
		}
	}
	for key, dst := range map[string]*string{
		EnvIndex:     &c.Index,
		EnvLogLevel:  &c.Log.Level,
		EnvLogFormat: &c.Log.Format,
	} {
		if v, ok := get(key); ok {
			*dst = v
		}
	}

	return nil
}

// Validate checks the configuration can build a space, an index, a budget
// and a logger. Errors wrap ErrInvalid.
func (c *Config) Validate() error {
	if _, err := c.SpaceBounds(); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	switch c.Index {
	case IndexLinear, IndexKDTree:
	default:
		return fmt.Errorf("Validate: index %q: %w", c.Index, ErrInvalid)
	}
	if err := c.Budget().Validate(); err != nil {
		return fmt.Errorf("Validate: %w: %w", ErrInvalid, err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	switch c.Log.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("Validate: log format %q: %w", c.Log.Format, ErrInvalid)
	}

	return nil
}

// SpaceBounds converts space.bounds into space.Bounds.
func (c *Config) SpaceBounds() (space.Bounds, error) {
	if len(c.Space.Bounds) == 0 {
		return space.Bounds{}, fmt.Errorf("space.bounds empty: %w", ErrInvalid)
	}
	b := space.Bounds{
		Low:  make([]float64, len(c.Space.Bounds)),
		High: make([]float64, len(c.Space.Bounds)),
	}
	for i, axis := range c.Space.Bounds {
		if len(axis) != 2 {
			return space.Bounds{}, fmt.Errorf("space.bounds[%d]: want [low, high], got %v: %w", i, axis, ErrInvalid)
		}
		b.Low[i], b.High[i] = axis[0], axis[1]
	}
	if err := b.Validate(); err != nil {
		return space.Bounds{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return b, nil
}

// Params returns roadmap.params as a plain map for param.Set.Apply.
func (c *Config) Params() map[string]string {
	out := make(map[string]string, len(c.Roadmap.Params))
	for k, v := range c.Roadmap.Params {
		out[k] = string(v)
	}

	return out
}

// Budget returns the run budget.
func (c *Config) Budget() driver.Budget {
	return driver.Budget{Batches: c.Run.Batches, MaxVertices: c.Run.MaxVertices}
}

// Level parses log.level (debug, info, warn, error).
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.Log.Level, ErrInvalid)
	}

	return lvl, nil
}
