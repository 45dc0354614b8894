// Package sampler evaluates a surface function over an N×N grid of cell
// centers covering [-1, 1]² and hands each position to a PointSink.
package sampler

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"surface-graph/internal/core"
	"surface-graph/internal/surface"
)

// ErrInvalidResolution reports a grid resolution below 1.
var ErrInvalidResolution = errors.New("sampler: resolution must be at least 1")

// Step returns the spacing between neighbouring cell centers.
func Step(resolution int) float64 { return 2 / float64(resolution) }

// CellUV maps linear index i to its domain coordinates.
func CellUV(i, resolution int) (u, v float64) {
	step := Step(resolution)
	x, z := i%resolution, i/resolution
	return (float64(x)+0.5)*step - 1, (float64(z)+0.5)*step - 1
}

// Evaluate samples the named function at time t and calls sink once for
// every cell in increasing index order. Nothing is written when the
// resolution or name is invalid.
func Evaluate(resolution int, name surface.FunctionName, t float64, sink core.PointSink) error {
	if resolution < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidResolution, resolution)
	}
	f, err := surface.Resolve(name)
	if err != nil {
		return err
	}
	EvaluateFunc(resolution, f, t, sink)
	return nil
}

// EvaluateFunc is Evaluate for an already resolved function. The caller
// guarantees resolution >= 1.
func EvaluateFunc(resolution int, f surface.Function, t float64, sink core.PointSink) {
	sampleRows(0, resolution, resolution, f, t, sink)
}

// EvaluateParallel splits the grid into row bands sampled concurrently by up
// to workers goroutines (GOMAXPROCS when workers <= 0). Every index is still
// written exactly once but calls from different bands interleave, so sink
// must accept concurrent writes to distinct indices.
func EvaluateParallel(ctx context.Context, resolution int, name surface.FunctionName, t float64, sink core.PointSink, workers int) error {
	if resolution < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidResolution, resolution)
	}
	f, err := surface.Resolve(name)
	if err != nil {
		return err
	}
	return EvaluateFuncParallel(ctx, resolution, f, t, sink, workers)
}

// EvaluateFuncParallel is EvaluateParallel for an already resolved function.
func EvaluateFuncParallel(ctx context.Context, resolution int, f surface.Function, t float64, sink core.PointSink, workers int) error {
	if resolution < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidResolution, resolution)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > resolution {
		workers = resolution
	}
	band := (resolution + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for z0 := 0; z0 < resolution; z0 += band {
		z1 := min(z0+band, resolution)
		g.Go(func() error {
			for z := z0; z < z1; z++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				sampleRows(z, z+1, resolution, f, t, sink)
			}
			return nil
		})
	}
	return g.Wait()
}

// sampleRows walks rows [z0, z1) of the grid.
func sampleRows(z0, z1, resolution int, f surface.Function, t float64, sink core.PointSink) {
	step := Step(resolution)
	for z := z0; z < z1; z++ {
		v := (float64(z)+0.5)*step - 1
		base := z * resolution
		for x := 0; x < resolution; x++ {
			u := (float64(x)+0.5)*step - 1
			sink.SetPosition(base+x, f(u, v, t))
		}
	}
}
