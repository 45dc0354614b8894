package core

// Vec3 is a point or offset in graph space.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a Vec3.
func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Lerp interpolates between a and b without clamping w. Weights 0 and 1
// return a and b exactly.
func Lerp(a, b Vec3, w float64) Vec3 {
	inv := 1 - w
	return Vec3{
		X: a.X*inv + b.X*w,
		Y: a.Y*inv + b.Y*w,
		Z: a.Z*inv + b.Z*w,
	}
}

// PointSink receives sampled grid positions. Index is the row-major cell
// index z*resolution + x.
type PointSink interface {
	SetPosition(index int, p Vec3)
}

// SinkFunc adapts a plain function to PointSink.
type SinkFunc func(index int, p Vec3)

// SetPosition calls f(index, p).
func (f SinkFunc) SetPosition(index int, p Vec3) { f(index, p) }

// Sim is the contract the viewer and HUD drive once per tick.
type Sim interface {
	Name() string
	Resolution() int
	Reset(seed int64)
	Step(dt float64) error
	Points() []Vec3
}
