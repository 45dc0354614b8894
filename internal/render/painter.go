//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"surface-graph/internal/core"
)

// PointPainter rasterizes points into an offscreen image and scales it onto
// the screen.
type PointPainter struct {
	ras *Rasterizer
	img *ebiten.Image
}

// NewPointPainter allocates a painter with a w×h offscreen viewport.
func NewPointPainter(w, h int) *PointPainter {
	ras := NewRasterizer(w, h)
	w, h = ras.Size()
	return &PointPainter{ras: ras, img: ebiten.NewImage(w, h)}
}

// Blit renders points and draws the result onto dst at the given scale.
func (pp *PointPainter) Blit(dst *ebiten.Image, points []core.Vec3, cam Camera, pointSize, scale int) {
	pp.ras.Draw(points, cam, pointSize)
	pp.img.WritePixels(pp.ras.Pixels())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(pp.img, op)
}

// Size returns the dimensions of the offscreen viewport.
func (pp *PointPainter) Size() (int, int) { return pp.ras.Size() }
