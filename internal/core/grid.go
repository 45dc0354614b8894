package core

// PointGrid stores one position per cell of an N×N grid in row-major order.
// Distinct indices may be written concurrently.
type PointGrid struct {
	N    int
	data []Vec3
}

// NewPointGrid allocates a grid with n cells per side.
func NewPointGrid(n int) *PointGrid {
	if n <= 0 {
		n = 1
	}
	return &PointGrid{N: n, data: make([]Vec3, n*n)}
}

// Points exposes the backing slice.
func (g *PointGrid) Points() []Vec3 { return g.data }

// Len returns the number of cells.
func (g *PointGrid) Len() int { return len(g.data) }

// Index returns the linear index for cell (x, z).
func (g *PointGrid) Index(x, z int) int { return z*g.N + x }

// At returns the position stored for cell (x, z).
func (g *PointGrid) At(x, z int) Vec3 { return g.data[g.Index(x, z)] }

// SetPosition implements PointSink. Out-of-range indices are ignored.
func (g *PointGrid) SetPosition(index int, p Vec3) {
	if index < 0 || index >= len(g.data) {
		return
	}
	g.data[index] = p
}

// Resize changes the side length, reusing the backing array when it is large
// enough. Contents are zeroed.
func (g *PointGrid) Resize(n int) {
	if n <= 0 {
		n = 1
	}
	total := n * n
	if cap(g.data) >= total {
		g.data = g.data[:total]
	} else {
		g.data = make([]Vec3, total)
	}
	g.N = n
	g.Clear()
}

// Clear zeroes every cell.
func (g *PointGrid) Clear() {
	for i := range g.data {
		g.data[i] = Vec3{}
	}
}
