package render

import (
	"image/color"
	"testing"

	"surface-graph/internal/core"
)

func pixel(r *Rasterizer, x, y int) color.RGBA {
	w, _ := r.Size()
	base := (y*w + x) * 4
	buf := r.Pixels()
	return color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
}

func TestPointColor(t *testing.T) {
	if got := PointColor(core.V3(0, 0, 0)); got != (color.RGBA{R: 128, G: 128, B: 128, A: 255}) {
		t.Fatalf("origin color = %+v", got)
	}
	if got := PointColor(core.V3(-1, 1, 3)); got != (color.RGBA{R: 0, G: 255, B: 255, A: 255}) {
		t.Fatalf("saturated color = %+v", got)
	}
}

func TestProjectOriginToCenter(t *testing.T) {
	sx, sy, _ := DefaultCamera().Project(core.Vec3{}, 40, 30)
	if sx != 20 || sy != 15 {
		t.Fatalf("origin projected to (%d,%d)", sx, sy)
	}

	flat := Camera{Zoom: 1}
	sx, sy, d := flat.Project(core.V3(1, 1, 0.25), 20, 20)
	if sx != 20 || sy != 0 || d != 0.25 {
		t.Fatalf("flat projection = (%d,%d,%v)", sx, sy, d)
	}
}

func TestDrawSinglePoint(t *testing.T) {
	r := NewRasterizer(11, 11)
	r.Draw([]core.Vec3{{}}, DefaultCamera(), 1)

	if got := pixel(r, 5, 5); got != PointColor(core.Vec3{}) {
		t.Fatalf("center pixel = %+v", got)
	}
	for y := 0; y < 11; y++ {
		for x := 0; x < 11; x++ {
			if x == 5 && y == 5 {
				continue
			}
			if got := pixel(r, x, y); got != r.Background {
				t.Fatalf("pixel (%d,%d) = %+v, expected background", x, y, got)
			}
		}
	}
}

func TestDrawDepthTest(t *testing.T) {
	r := NewRasterizer(9, 9)
	cam := Camera{Zoom: 0.5}
	near := core.V3(0, 0, -0.5)
	far := core.V3(0, 0, 0.5)

	r.Draw([]core.Vec3{near, far}, cam, 3)
	if got := pixel(r, 4, 4); got != PointColor(near) {
		t.Fatalf("near point hidden: %+v", got)
	}
	r.Draw([]core.Vec3{far, near}, cam, 3)
	if got := pixel(r, 4, 4); got != PointColor(near) {
		t.Fatalf("draw order changed visibility: %+v", got)
	}
	if got := pixel(r, 3, 3); got != PointColor(near) {
		t.Fatalf("3x3 splat missing corner: %+v", got)
	}
}

func TestDrawClipsOffscreen(t *testing.T) {
	r := NewRasterizer(4, 4)
	r.Draw([]core.Vec3{core.V3(50, 50, 0), core.V3(-50, -50, 0)}, Camera{Zoom: 1}, 5)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := pixel(r, x, y); got != r.Background {
				t.Fatalf("offscreen point drew at (%d,%d)", x, y)
			}
		}
	}
}
