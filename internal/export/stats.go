package export

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"surface-graph/internal/core"
)

// HeightStats summarizes the y components of one sampled frame.
type HeightStats struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Summarize computes height statistics for points. An empty slice yields
// the zero value.
func Summarize(points []core.Vec3) HeightStats {
	if len(points) == 0 {
		return HeightStats{}
	}
	ys := make([]float64, len(points))
	for i, p := range points {
		ys[i] = p.Y
	}
	mean, std := stat.PopMeanStdDev(ys, nil)
	return HeightStats{
		Min:    floats.Min(ys),
		Max:    floats.Max(ys),
		Mean:   mean,
		StdDev: std,
	}
}
