package export

import (
	"bufio"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/require"

	"surface-graph/internal/config"
	"surface-graph/internal/core"
	"surface-graph/internal/sampler"
	"surface-graph/internal/surface"
)

func TestSummarize(t *testing.T) {
	pts := []core.Vec3{{Y: -1}, {Y: 1}, {Y: 1}, {Y: -1}}
	s := Summarize(pts)
	require.Equal(t, -1.0, s.Min)
	require.Equal(t, 1.0, s.Max)
	require.InDelta(t, 0, s.Mean, 1e-12)
	require.InDelta(t, 1, s.StdDev, 1e-12)

	require.Equal(t, HeightStats{}, Summarize(nil))
}

func TestSummarizeRippleWithinUnitRange(t *testing.T) {
	grid := core.NewPointGrid(40)
	require.NoError(t, sampler.Evaluate(40, surface.Ripple, 0.3, grid))
	s := Summarize(grid.Points())
	require.GreaterOrEqual(t, s.Min, -1.0)
	require.LessOrEqual(t, s.Max, 1.0)
	require.False(t, math.IsNaN(s.StdDev))
}

func TestNilWriterIsNoop(t *testing.T) {
	w, err := NewWriter("")
	require.NoError(t, err)
	require.Nil(t, w)

	stats, err := w.WriteFrame(Frame{Points: []core.Vec3{{Y: 2}}})
	require.NoError(t, err)
	require.Equal(t, 2.0, stats.Max)
	require.NoError(t, w.WriteConfig(config.Default()))
	require.NoError(t, w.Close())
	require.Equal(t, "", w.Dir())
}

func TestWriterWritesFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	w, err := NewWriter(dir)
	require.NoError(t, err)

	const n = 4
	grid := core.NewPointGrid(n)
	for frame := 0; frame < 3; frame++ {
		tm := float64(frame) * 0.5
		require.NoError(t, sampler.Evaluate(n, surface.Wave, tm, grid))
		_, err := w.WriteFrame(Frame{
			Index:      frame,
			Time:       tm,
			Function:   surface.Wave.String(),
			Resolution: n,
			Points:     grid.Points(),
		})
		require.NoError(t, err)
	}
	require.NoError(t, w.WriteConfig(config.Default()))
	require.NoError(t, w.Close())

	require.Equal(t, 1+3*n*n, countLines(t, filepath.Join(dir, "points.csv")))
	require.Equal(t, 4, countLines(t, filepath.Join(dir, "summary.csv")))
	require.FileExists(t, filepath.Join(dir, "config.yaml"))

	f, err := os.Open(filepath.Join(dir, "points.csv"))
	require.NoError(t, err)
	defer f.Close()
	var rows []PointRecord
	require.NoError(t, gocsv.Unmarshal(f, &rows))
	require.Len(t, rows, 3*n*n)

	last := rows[len(rows)-1]
	require.Equal(t, 2, last.Frame)
	require.Equal(t, n*n-1, last.Index)
	require.Equal(t, grid.Points()[n*n-1], core.V3(last.X, last.Y, last.Z))

	sf, err := os.Open(filepath.Join(dir, "summary.csv"))
	require.NoError(t, err)
	defer sf.Close()
	var summaries []SummaryRecord
	require.NoError(t, gocsv.Unmarshal(sf, &summaries))
	require.Len(t, summaries, 3)
	require.Equal(t, "wave", summaries[1].Function)
	require.Equal(t, n, summaries[1].Resolution)
}

func countLines(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	n := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			n++
		}
	}
	require.NoError(t, sc.Err())
	return n
}
