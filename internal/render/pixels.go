package render

import (
	"image/color"
	"math"

	"surface-graph/internal/core"
)

// Camera orbits the origin and projects orthographically.
type Camera struct {
	Yaw   float64 // rotation around the y axis, radians
	Pitch float64 // downward tilt, radians
	Zoom  float64 // fraction of the half viewport covered by one world unit
}

// DefaultCamera looks at the [-1, 1]² domain slightly from above.
func DefaultCamera() Camera {
	return Camera{Yaw: math.Pi / 6, Pitch: math.Pi / 7, Zoom: 0.6}
}

// Project maps p into a w×h viewport. Smaller depth is closer to the viewer.
func (c Camera) Project(p core.Vec3, w, h int) (sx, sy int, depth float64) {
	sinYaw, cosYaw := math.Sincos(c.Yaw)
	x := p.X*cosYaw - p.Z*sinYaw
	z := p.X*sinYaw + p.Z*cosYaw

	sinPitch, cosPitch := math.Sincos(c.Pitch)
	y := p.Y*cosPitch + z*sinPitch
	depth = z*cosPitch - p.Y*sinPitch

	unit := c.Zoom * float64(min(w, h)) / 2
	sx = w/2 + int(math.Round(x*unit))
	sy = h/2 - int(math.Round(y*unit))
	return sx, sy, depth
}

// PointColor tints a point by its position: each channel is the matching
// coordinate mapped from [-1, 1] to [0, 1] and saturated.
func PointColor(p core.Vec3) color.RGBA {
	return color.RGBA{R: channel(p.X), G: channel(p.Y), B: channel(p.Z), A: 255}
}

func channel(v float64) uint8 {
	v = v*0.5 + 0.5
	v = math.Max(0, math.Min(1, v))
	return uint8(v*255 + 0.5)
}

// Rasterizer splats points as squares into an RGBA buffer with a depth test.
type Rasterizer struct {
	w, h  int
	buf   []byte
	depth []float64

	Background color.RGBA
}

// NewRasterizer allocates buffers for a w×h viewport.
func NewRasterizer(w, h int) *Rasterizer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Rasterizer{
		w:          w,
		h:          h,
		buf:        make([]byte, 4*w*h),
		depth:      make([]float64, w*h),
		Background: color.RGBA{R: 16, G: 16, B: 24, A: 255},
	}
}

// Size returns the viewport dimensions.
func (r *Rasterizer) Size() (int, int) { return r.w, r.h }

// Pixels exposes the RGBA buffer, row-major, 4 bytes per pixel.
func (r *Rasterizer) Pixels() []byte { return r.buf }

// Draw clears the viewport and renders points as size×size squares.
func (r *Rasterizer) Draw(points []core.Vec3, cam Camera, size int) {
	if size <= 0 {
		size = 1
	}
	r.clear()
	half := size / 2
	for _, p := range points {
		sx, sy, d := cam.Project(p, r.w, r.h)
		col := PointColor(p)
		for dy := 0; dy < size; dy++ {
			y := sy - half + dy
			if y < 0 || y >= r.h {
				continue
			}
			for dx := 0; dx < size; dx++ {
				x := sx - half + dx
				if x < 0 || x >= r.w {
					continue
				}
				idx := y*r.w + x
				if d >= r.depth[idx] {
					continue
				}
				r.depth[idx] = d
				r.set(idx, col)
			}
		}
	}
}

func (r *Rasterizer) clear() {
	for i := range r.depth {
		r.depth[i] = math.Inf(1)
		r.set(i, r.Background)
	}
}

func (r *Rasterizer) set(idx int, c color.RGBA) {
	base := idx * 4
	r.buf[base+0] = c.R
	r.buf[base+1] = c.G
	r.buf[base+2] = c.B
	r.buf[base+3] = c.A
}
