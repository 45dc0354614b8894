package graph

import (
	"fmt"
	"log/slog"
	"strings"

	"surface-graph/internal/config"
	"surface-graph/internal/surface"
)

// TransitionMode controls how the graph moves on from the current function.
type TransitionMode uint8

const (
	// TransitionNone keeps the selected function forever.
	TransitionNone TransitionMode = iota
	// TransitionCycle steps through the library in order.
	TransitionCycle
	// TransitionRandom jumps to a random different function.
	TransitionRandom
)

var transitionNames = [...]string{
	TransitionNone:   "none",
	TransitionCycle:  "cycle",
	TransitionRandom: "random",
}

func (m TransitionMode) String() string {
	if int(m) >= len(transitionNames) {
		return fmt.Sprintf("TransitionMode(%d)", uint8(m))
	}
	return transitionNames[m]
}

// ParseTransitionMode resolves "none", "cycle" or "random".
func ParseTransitionMode(s string) (TransitionMode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, n := range transitionNames {
		if n == key {
			return TransitionMode(i), nil
		}
	}
	return 0, fmt.Errorf("graph: unknown transition mode %q", s)
}

// Options configures a Graph.
type Options struct {
	Resolution         int
	Function           surface.FunctionName
	Transition         TransitionMode
	FunctionDuration   float64
	TransitionDuration float64
	TimeScale          float64
	Seed               int64

	// Workers > 1 samples rows concurrently.
	Workers int

	Logger *slog.Logger
}

// DefaultOptions mirrors the embedded configuration defaults.
func DefaultOptions() Options {
	return Options{
		Resolution:         50,
		Function:           surface.Wave,
		Transition:         TransitionCycle,
		FunctionDuration:   1,
		TransitionDuration: 1,
		TimeScale:          1,
		Seed:               42,
		Workers:            1,
	}
}

// OptionsFromConfig converts loaded settings into Options.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	name, err := surface.ParseFunctionName(cfg.Graph.Function)
	if err != nil {
		return Options{}, err
	}
	mode, err := ParseTransitionMode(cfg.Graph.Transition)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Resolution:         cfg.Graph.Resolution,
		Function:           name,
		Transition:         mode,
		FunctionDuration:   cfg.Graph.FunctionDuration,
		TransitionDuration: cfg.Graph.TransitionDuration,
		TimeScale:          cfg.Graph.TimeScale,
		Seed:               cfg.Graph.Seed,
		Workers:            cfg.Output.Workers,
	}, nil
}
