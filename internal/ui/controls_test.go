package ui

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"surface-graph/internal/graph"
	"surface-graph/internal/surface"
)

func newGraph(t *testing.T) *graph.Graph {
	t.Helper()
	opts := graph.DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	g, err := graph.New(opts)
	require.NoError(t, err)
	return g
}

func TestSelectWraps(t *testing.T) {
	p := NewControlPanel(newGraph(t))
	n := len(p.Controls())
	require.Greater(t, n, 1)
	p.Select(-1)
	require.Equal(t, n-1, p.Selected())
	p.Select(2)
	require.Equal(t, 1, p.Selected())
}

func TestAdjustResolution(t *testing.T) {
	g := newGraph(t)
	p := NewControlPanel(g)
	require.Equal(t, "resolution", p.Controls()[0].Key)

	require.True(t, p.Adjust(1))
	require.Equal(t, 60, g.Resolution())
	require.True(t, p.Adjust(-1))
	require.True(t, p.Adjust(-1))
	require.Equal(t, 40, g.Resolution())
}

func TestAdjustFunctionIndexStopsAtBounds(t *testing.T) {
	g := newGraph(t)
	p := NewControlPanel(g)
	p.Select(1)
	require.Equal(t, "function_index", p.Controls()[1].Key)

	require.False(t, p.Adjust(-1), "already at the first function")
	require.True(t, p.Adjust(1))
	require.True(t, p.Adjust(1))
	require.Equal(t, surface.Ripple, g.Function())
	require.False(t, p.Adjust(1), "already at the last function")
}

func TestAdjustFloat(t *testing.T) {
	g := newGraph(t)
	p := NewControlPanel(g)
	for i, c := range p.Controls() {
		if c.Key == "time_scale" {
			p.Select(i)
		}
	}
	require.True(t, p.Adjust(1))
	param, ok := g.Parameters().Lookup("time_scale")
	require.True(t, ok)
	require.Equal(t, "1.1", param.Value)
}

func TestPanelWithoutProviders(t *testing.T) {
	p := NewControlPanel(struct{}{})
	require.Empty(t, p.Controls())
	require.False(t, p.Adjust(1))
	require.Nil(t, p.Lines())
	p.Select(1)
	require.Equal(t, 0, p.Selected())
}

func TestLines(t *testing.T) {
	lines := NewControlPanel(newGraph(t)).Lines()
	require.Contains(t, lines, "Graph")
	require.Contains(t, lines, "  Function: wave")
	require.Contains(t, lines, "  Time scale: 1.00")
}
