// Package config loads the graph, display and output settings from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"surface-graph/internal/surface"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Resolution bounds exposed to users. The sampler itself accepts any
// resolution >= 1.
const (
	MinResolution = 10
	MaxResolution = 200
)

// ErrInvalid reports a configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all runtime settings.
type Config struct {
	Graph   GraphConfig   `yaml:"graph"`
	Display DisplayConfig `yaml:"display"`
	Output  OutputConfig  `yaml:"output"`
}

// GraphConfig selects what is sampled and how the function changes over time.
type GraphConfig struct {
	Resolution         int     `yaml:"resolution"`
	Function           string  `yaml:"function"`
	Transition         string  `yaml:"transition"`          // none, cycle or random
	FunctionDuration   float64 `yaml:"function_duration"`   // Seconds a function is shown before switching
	TransitionDuration float64 `yaml:"transition_duration"` // Seconds spent morphing between functions
	TimeScale          float64 `yaml:"time_scale"`          // Multiplier applied to elapsed time
	Seed               int64   `yaml:"seed"`
}

// DisplayConfig holds viewer settings.
type DisplayConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	Scale     int `yaml:"scale"`
	TPS       int `yaml:"tps"`
	PointSize int `yaml:"point_size"`
}

// OutputConfig holds headless export settings.
type OutputConfig struct {
	Dir     string `yaml:"dir"`
	Frames  int    `yaml:"frames"`
	Workers int    `yaml:"workers"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load reads configuration from path merged over the embedded defaults.
// An empty path yields the defaults alone.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate clamps the resolution into [MinResolution, MaxResolution] and
// rejects values the graph cannot run with.
func (c *Config) Validate() error {
	c.Graph.Resolution = ClampResolution(c.Graph.Resolution)

	if _, err := surface.ParseFunctionName(c.Graph.Function); err != nil {
		return fmt.Errorf("%w: graph.function: %w", ErrInvalid, err)
	}
	switch c.Graph.Transition {
	case "none", "cycle", "random":
	default:
		return fmt.Errorf("%w: graph.transition %q (want none, cycle or random)", ErrInvalid, c.Graph.Transition)
	}
	if c.Graph.FunctionDuration <= 0 {
		return fmt.Errorf("%w: graph.function_duration must be positive", ErrInvalid)
	}
	if c.Graph.TransitionDuration < 0 {
		return fmt.Errorf("%w: graph.transition_duration must not be negative", ErrInvalid)
	}
	if c.Graph.TimeScale < 0 {
		return fmt.Errorf("%w: graph.time_scale must not be negative", ErrInvalid)
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("%w: display size %dx%d", ErrInvalid, c.Display.Width, c.Display.Height)
	}
	if c.Display.Scale <= 0 {
		c.Display.Scale = 1
	}
	if c.Display.TPS <= 0 {
		c.Display.TPS = 60
	}
	if c.Display.PointSize <= 0 {
		c.Display.PointSize = 1
	}
	if c.Output.Frames < 0 {
		return fmt.Errorf("%w: output.frames must not be negative", ErrInvalid)
	}
	return nil
}

// ClampResolution limits n to [MinResolution, MaxResolution].
func ClampResolution(n int) int {
	return max(MinResolution, min(n, MaxResolution))
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
