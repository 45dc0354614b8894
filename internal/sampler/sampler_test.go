package sampler_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"surface-graph/internal/core"
	"surface-graph/internal/sampler"
	"surface-graph/internal/surface"
)

type call struct {
	index int
	p     core.Vec3
}

type recordingSink struct {
	calls []call
}

func (r *recordingSink) SetPosition(i int, p core.Vec3) {
	r.calls = append(r.calls, call{index: i, p: p})
}

func TestEvaluateCallsEveryIndexOnceInOrder(t *testing.T) {
	for _, n := range []int{1, 2, 7, 10, 33} {
		sink := &recordingSink{}
		require.NoError(t, sampler.Evaluate(n, surface.Ripple, 0.4, sink))
		require.Len(t, sink.calls, n*n)
		for i, c := range sink.calls {
			require.Equal(t, i, c.index, "resolution %d", n)
		}
	}
}

func TestEvaluateCellCenters(t *testing.T) {
	const n = 10
	grid := core.NewPointGrid(n)
	require.NoError(t, sampler.Evaluate(n, surface.Wave, 0, grid))

	first := grid.At(0, 0)
	require.InDelta(t, -0.9, first.X, 1e-9)
	require.InDelta(t, -0.9, first.Z, 1e-9)

	last := grid.At(9, 9)
	require.InDelta(t, 0.9, last.X, 1e-9)
	require.InDelta(t, 0.9, last.Z, 1e-9)

	// x varies fastest.
	require.InDelta(t, -0.7, grid.At(1, 0).X, 1e-9)
	require.InDelta(t, -0.9, grid.At(1, 0).Z, 1e-9)
	require.InDelta(t, -0.7, grid.At(0, 1).Z, 1e-9)

	for i, p := range grid.Points() {
		u, v := sampler.CellUV(i, n)
		require.Equal(t, u, p.X, "index %d", i)
		require.Equal(t, v, p.Z, "index %d", i)
	}
}

func TestCellUVAndStep(t *testing.T) {
	require.Equal(t, 2.0, sampler.Step(1))
	u, v := sampler.CellUV(0, 1)
	require.Equal(t, 0.0, u)
	require.Equal(t, 0.0, v)

	u, v = sampler.CellUV(23, 10)
	require.True(t, scalar.EqualWithinAbs(u, -0.3, 1e-12), "u=%v", u)
	require.True(t, scalar.EqualWithinAbs(v, -0.5, 1e-12), "v=%v", v)
}

func TestEvaluateIdempotent(t *testing.T) {
	for _, name := range surface.FunctionNames() {
		a, b := &recordingSink{}, &recordingSink{}
		require.NoError(t, sampler.Evaluate(12, name, 2.5, a))
		require.NoError(t, sampler.Evaluate(12, name, 2.5, b))
		require.Equal(t, a.calls, b.calls, name.String())
	}
}

func TestEvaluateMatchesResolvedFunction(t *testing.T) {
	const n, tm = 8, 1.3
	f, err := surface.Resolve(surface.MultiWave)
	require.NoError(t, err)

	grid := core.NewPointGrid(n)
	require.NoError(t, sampler.Evaluate(n, surface.MultiWave, tm, grid))
	for i, p := range grid.Points() {
		u, v := sampler.CellUV(i, n)
		require.Equal(t, f(u, v, tm), p)
	}
}

func TestEvaluateInvalidFunctionWritesNothing(t *testing.T) {
	sink := &recordingSink{}
	err := sampler.Evaluate(10, surface.FunctionName(99), 0, sink)
	require.ErrorIs(t, err, surface.ErrInvalidFunction)
	require.Empty(t, sink.calls)
}

func TestEvaluateInvalidResolutionWritesNothing(t *testing.T) {
	for _, n := range []int{0, -4} {
		sink := &recordingSink{}
		err := sampler.Evaluate(n, surface.Wave, 0, sink)
		require.ErrorIs(t, err, sampler.ErrInvalidResolution)
		require.Empty(t, sink.calls)
	}
}

func TestEvaluateParallelMatchesSerial(t *testing.T) {
	for _, workers := range []int{0, 1, 3, 8, 64} {
		serial := core.NewPointGrid(37)
		parallel := core.NewPointGrid(37)
		require.NoError(t, sampler.Evaluate(37, surface.Ripple, 0.8, serial))
		require.NoError(t, sampler.EvaluateParallel(context.Background(), 37, surface.Ripple, 0.8, parallel, workers))
		require.Equal(t, serial.Points(), parallel.Points(), "workers=%d", workers)
	}
}

func TestEvaluateParallelEachIndexOnce(t *testing.T) {
	const n = 25
	var mu sync.Mutex
	counts := make([]int, n*n)
	sink := core.SinkFunc(func(i int, _ core.Vec3) {
		mu.Lock()
		counts[i]++
		mu.Unlock()
	})
	require.NoError(t, sampler.EvaluateParallel(context.Background(), n, surface.Wave, 0, sink, 4))
	for i, c := range counts {
		require.Equal(t, 1, c, "index %d", i)
	}
}

func TestEvaluateParallelErrors(t *testing.T) {
	sink := &recordingSink{}
	err := sampler.EvaluateParallel(context.Background(), 0, surface.Wave, 0, sink, 2)
	require.ErrorIs(t, err, sampler.ErrInvalidResolution)

	err = sampler.EvaluateParallel(context.Background(), 4, surface.FunctionName(7), 0, sink, 2)
	require.ErrorIs(t, err, surface.ErrInvalidFunction)
	require.Empty(t, sink.calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = sampler.EvaluateParallel(ctx, 16, surface.Wave, 0, core.NewPointGrid(16), 2)
	require.ErrorIs(t, err, context.Canceled)
}
