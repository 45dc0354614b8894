// Package graph animates a grid of points over the surface function library,
// switching and morphing between functions as time passes.
package graph

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"surface-graph/internal/config"
	"surface-graph/internal/core"
	"surface-graph/internal/sampler"
	"surface-graph/internal/scene"
	"surface-graph/internal/surface"
)

var (
	_ core.Sim                       = (*Graph)(nil)
	_ core.ParameterControlsProvider = (*Graph)(nil)
)

// ErrInvalidOptions reports unusable timing options.
var ErrInvalidOptions = errors.New("graph: invalid options")

// Graph owns the point scene and the animation state driving it.
type Graph struct {
	opts   Options
	logger *slog.Logger

	scene *scene.Scene
	grid  *core.PointGrid
	rng   *core.RNG

	function      surface.FunctionName
	target        surface.FunctionName
	transitioning bool
	duration      float64
	time          float64

	points []core.Vec3
}

// New builds a Graph and samples its first frame at time zero.
func New(opts Options) (*Graph, error) {
	if opts.Resolution < 1 {
		return nil, fmt.Errorf("%w: got %d", sampler.ErrInvalidResolution, opts.Resolution)
	}
	if !opts.Function.Valid() {
		return nil, fmt.Errorf("%w: %d", surface.ErrInvalidFunction, opts.Function)
	}
	if opts.FunctionDuration <= 0 || opts.TransitionDuration < 0 || opts.TimeScale < 0 {
		return nil, fmt.Errorf("%w: durations %v/%v, time scale %v",
			ErrInvalidOptions, opts.FunctionDuration, opts.TransitionDuration, opts.TimeScale)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	g := &Graph{
		opts:     opts,
		logger:   logger,
		scene:    scene.New(opts.Resolution),
		grid:     core.NewPointGrid(opts.Resolution),
		rng:      core.NewRNG(opts.Seed),
		function: opts.Function,
	}
	if err := g.sample(); err != nil {
		return nil, err
	}
	return g, nil
}

// Name returns the simulation identifier.
func (g *Graph) Name() string { return "graph" }

// Resolution returns the number of points per side.
func (g *Graph) Resolution() int { return g.scene.Resolution() }

// Function returns the function currently shown, or the one being morphed
// away from during a transition.
func (g *Graph) Function() surface.FunctionName { return g.function }

// Target returns the function being morphed towards and whether a
// transition is in progress.
func (g *Graph) Target() (surface.FunctionName, bool) { return g.target, g.transitioning }

// Time returns the scaled time value passed to the surface functions.
func (g *Graph) Time() float64 { return g.time }

// Scene exposes the point entities.
func (g *Graph) Scene() *scene.Scene { return g.scene }

// Points returns the positions of the last sampled frame in index order.
// The slice is reused by the next Step.
func (g *Graph) Points() []core.Vec3 { return g.points }

// Reset rewinds time and returns to the configured function. A zero seed
// reuses the configured seed for random transitions.
func (g *Graph) Reset(seed int64) {
	if seed == 0 {
		seed = g.opts.Seed
	}
	g.rng = core.NewRNG(seed)
	g.function = g.opts.Function
	g.transitioning = false
	g.duration = 0
	g.time = 0
	if err := g.sample(); err != nil {
		g.logger.Error("resampling after reset", "error", err)
	}
}

// Step advances the animation by dt seconds and resamples every point.
func (g *Graph) Step(dt float64) error {
	if dt < 0 {
		dt = 0
	}
	g.duration += dt
	if g.transitioning {
		if g.duration >= g.opts.TransitionDuration {
			g.duration -= g.opts.TransitionDuration
			g.transitioning = false
			g.function = g.target
		}
	} else if g.opts.Transition != TransitionNone && g.duration >= g.opts.FunctionDuration {
		g.duration -= g.opts.FunctionDuration
		g.pickNextFunction()
	}
	g.time += dt * g.opts.TimeScale
	return g.sample()
}

func (g *Graph) pickNextFunction() {
	next := surface.NextFunction(g.function)
	if g.opts.Transition == TransitionRandom {
		next = surface.RandomFunctionOtherThan(g.function, g.rng)
	}
	g.logger.Debug("switching function", "from", g.function.String(), "to", next.String(), "time", g.time)
	if g.opts.TransitionDuration > 0 {
		g.target = next
		g.transitioning = true
		return
	}
	g.function = next
}

// SetResolution rebuilds the point scene with n points per side.
func (g *Graph) SetResolution(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", sampler.ErrInvalidResolution, n)
	}
	if n == g.scene.Resolution() {
		return nil
	}
	g.logger.Info("resolution changed", "from", g.scene.Resolution(), "to", n)
	g.scene.Resize(n)
	g.grid.Resize(n)
	return g.sample()
}

// SetFunction switches immediately to name, cancelling any transition.
func (g *Graph) SetFunction(name surface.FunctionName) error {
	if !name.Valid() {
		return fmt.Errorf("%w: %d", surface.ErrInvalidFunction, name)
	}
	g.function = name
	g.transitioning = false
	g.duration = 0
	return g.sample()
}

// NextFunction switches immediately to the following library function.
func (g *Graph) NextFunction() error {
	return g.SetFunction(surface.NextFunction(g.function))
}

// sample evaluates the active function into the scene.
func (g *Graph) sample() error {
	res := g.scene.Resolution()
	parallel := g.opts.Workers > 1
	var sink core.PointSink = g.scene
	if parallel {
		sink = g.grid
	}

	var err error
	switch {
	case g.transitioning:
		f, ferr := g.morph()
		if ferr != nil {
			return ferr
		}
		if parallel {
			err = sampler.EvaluateFuncParallel(context.Background(), res, f, g.time, sink, g.opts.Workers)
		} else {
			sampler.EvaluateFunc(res, f, g.time, sink)
		}
	case parallel:
		err = sampler.EvaluateParallel(context.Background(), res, g.function, g.time, sink, g.opts.Workers)
	default:
		err = sampler.Evaluate(res, g.function, g.time, sink)
	}
	if err != nil {
		return fmt.Errorf("sampling %s: %w", g.function, err)
	}

	if parallel {
		g.scene.Load(g.grid.Points())
	}
	g.points = g.scene.Positions(g.points)
	return nil
}

func (g *Graph) morph() (surface.Function, error) {
	from, err := surface.Resolve(g.function)
	if err != nil {
		return nil, err
	}
	to, err := surface.Resolve(g.target)
	if err != nil {
		return nil, err
	}
	progress := 1.0
	if g.opts.TransitionDuration > 0 {
		progress = g.duration / g.opts.TransitionDuration
	}
	return surface.Morph(from, to, progress), nil
}

// Parameters implements core.ParameterProvider.
func (g *Graph) Parameters() core.ParameterSnapshot {
	target := "-"
	if g.transitioning {
		target = g.target.String()
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Graph",
			Params: []core.Parameter{
				core.IntParam("resolution", "Resolution", g.scene.Resolution()),
				core.StringParam("function", "Function", g.function.String()),
				core.IntParam("function_index", "Function index", int(g.function)),
				core.StringParam("target", "Morphing to", target),
				core.StringParam("transition", "Transition", g.opts.Transition.String()),
				core.FloatParam("time", "Time", g.time),
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				core.FloatParam("function_duration", "Function duration", g.opts.FunctionDuration),
				core.FloatParam("transition_duration", "Transition duration", g.opts.TransitionDuration),
				core.FloatParam("time_scale", "Time scale", g.opts.TimeScale),
			},
		},
	}}
}

// ParameterControls implements core.ParameterControlsProvider.
func (g *Graph) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "resolution", Label: "Resolution", Type: core.ParamTypeInt, Step: 10,
			Min: config.MinResolution, Max: config.MaxResolution, HasMin: true, HasMax: true},
		{Key: "function_index", Label: "Function", Type: core.ParamTypeInt, Step: 1,
			Min: 0, Max: float64(surface.FunctionCount - 1), HasMin: true, HasMax: true},
		{Key: "function_duration", Label: "Function duration", Type: core.ParamTypeFloat, Step: 0.5,
			Min: 0.5, HasMin: true},
		{Key: "transition_duration", Label: "Transition duration", Type: core.ParamTypeFloat, Step: 0.25,
			Min: 0, HasMin: true},
		{Key: "time_scale", Label: "Time scale", Type: core.ParamTypeFloat, Step: 0.1,
			Min: 0, Max: 4, HasMin: true, HasMax: true},
	}
}

// SetIntParameter implements core.IntParameterSetter.
func (g *Graph) SetIntParameter(key string, value int) bool {
	switch key {
	case "resolution":
		return g.SetResolution(config.ClampResolution(value)) == nil
	case "function_index":
		return g.SetFunction(surface.FunctionName(value)) == nil
	}
	return false
}

// SetFloatParameter implements core.FloatParameterSetter.
func (g *Graph) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "function_duration":
		if value <= 0 {
			return false
		}
		g.opts.FunctionDuration = value
	case "transition_duration":
		if value < 0 {
			return false
		}
		g.opts.TransitionDuration = value
	case "time_scale":
		if value < 0 {
			return false
		}
		g.opts.TimeScale = value
	default:
		return false
	}
	return true
}
