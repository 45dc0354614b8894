package app

import (
	"flag"

	"surface-graph/internal/config"
)

// Flags holds command-line overrides. Zero values leave the loaded
// configuration untouched.
type Flags struct {
	ConfigPath string
	Function   string
	Transition string
	Resolution int
	Scale      int
	TPS        int
	Seed       int64
	Workers    int
	Frames     int
	OutputDir  string
	Verbose    bool
}

// NewFlags returns empty overrides.
func NewFlags() *Flags { return &Flags{} }

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", f.ConfigPath, "path to config.yaml (empty = embedded defaults)")
	fs.StringVar(&f.Function, "function", f.Function, "surface function: wave, multiwave or ripple")
	fs.StringVar(&f.Transition, "transition", f.Transition, "function transition: none, cycle or random")
	fs.IntVar(&f.Resolution, "resolution", f.Resolution, "points per grid side")
	fs.IntVar(&f.Scale, "scale", f.Scale, "pixel scale multiplier")
	fs.IntVar(&f.TPS, "tps", f.TPS, "ticks per second")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "seed for random transitions")
	fs.IntVar(&f.Workers, "workers", f.Workers, "goroutines used to sample the grid")
	fs.IntVar(&f.Frames, "frames", f.Frames, "frames to sample in headless runs")
	fs.StringVar(&f.OutputDir, "output-dir", f.OutputDir, "directory for CSV output")
	fs.BoolVar(&f.Verbose, "v", f.Verbose, "enable debug logging")
}

// Load reads the configuration named by ConfigPath and applies the
// overrides on top of it.
func (f *Flags) Load() (*config.Config, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	f.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply copies every non-zero override into cfg.
func (f *Flags) Apply(cfg *config.Config) {
	if f.Function != "" {
		cfg.Graph.Function = f.Function
	}
	if f.Transition != "" {
		cfg.Graph.Transition = f.Transition
	}
	if f.Resolution != 0 {
		cfg.Graph.Resolution = f.Resolution
	}
	if f.Seed != 0 {
		cfg.Graph.Seed = f.Seed
	}
	if f.Scale != 0 {
		cfg.Display.Scale = f.Scale
	}
	if f.TPS != 0 {
		cfg.Display.TPS = f.TPS
	}
	if f.Workers != 0 {
		cfg.Output.Workers = f.Workers
	}
	if f.Frames != 0 {
		cfg.Output.Frames = f.Frames
	}
	if f.OutputDir != "" {
		cfg.Output.Dir = f.OutputDir
	}
}
