// Package scene keeps one ECS entity per displayed grid point, mirroring the
// point objects a graph instantiates once and then moves every frame.
package scene

import (
	"github.com/mlange-42/ark/ecs"

	"surface-graph/internal/core"
)

// Position is the world position of a point entity.
type Position struct {
	X, Y, Z float64
}

// Scale is the uniform size of a point entity, equal to the grid step.
type Scale struct {
	S float64
}

// Scene owns the point entities for a single graph.
type Scene struct {
	world      *ecs.World
	mapper     *ecs.Map2[Position, Scale]
	positions  *ecs.Map1[Position]
	filter     *ecs.Filter2[Position, Scale]
	points     []ecs.Entity
	resolution int
}

// New creates resolution² point entities laid out on the flat grid.
func New(resolution int) *Scene {
	s := &Scene{}
	s.Resize(resolution)
	return s
}

// Resize discards the current entities and instantiates a fresh set in index
// order. Points start at their cell center with y = 0.
func (s *Scene) Resize(resolution int) {
	if resolution <= 0 {
		resolution = 1
	}
	world := ecs.NewWorld()
	s.world = world
	s.mapper = ecs.NewMap2[Position, Scale](world)
	s.positions = ecs.NewMap1[Position](world)
	s.filter = ecs.NewFilter2[Position, Scale](world)
	s.resolution = resolution

	total := resolution * resolution
	s.points = make([]ecs.Entity, total)
	step := 2 / float64(resolution)
	scale := Scale{S: step}
	for i := range s.points {
		x, z := i%resolution, i/resolution
		pos := Position{
			X: (float64(x)+0.5)*step - 1,
			Z: (float64(z)+0.5)*step - 1,
		}
		s.points[i] = s.mapper.NewEntity(&pos, &scale)
	}
}

// Resolution returns the number of points per side.
func (s *Scene) Resolution() int { return s.resolution }

// Len returns the number of point entities.
func (s *Scene) Len() int { return len(s.points) }

// SetPosition implements core.PointSink. Out-of-range indices are ignored.
func (s *Scene) SetPosition(index int, p core.Vec3) {
	if index < 0 || index >= len(s.points) {
		return
	}
	pos := s.positions.Get(s.points[index])
	pos.X, pos.Y, pos.Z = p.X, p.Y, p.Z
}

// Load copies points into the entities in index order.
func (s *Scene) Load(points []core.Vec3) {
	for i, p := range points {
		s.SetPosition(i, p)
	}
}

// Position returns the position of the point at index.
func (s *Scene) Position(index int) core.Vec3 {
	pos := s.positions.Get(s.points[index])
	return core.Vec3{X: pos.X, Y: pos.Y, Z: pos.Z}
}

// Positions appends every point position to dst[:0] in index order.
func (s *Scene) Positions(dst []core.Vec3) []core.Vec3 {
	dst = dst[:0]
	for _, e := range s.points {
		pos := s.positions.Get(e)
		dst = append(dst, core.Vec3{X: pos.X, Y: pos.Y, Z: pos.Z})
	}
	return dst
}

// PointScale returns the uniform scale shared by all points.
func (s *Scene) PointScale() float64 { return 2 / float64(s.resolution) }

// Count iterates the world and reports how many point entities are alive.
func (s *Scene) Count() int {
	n := 0
	query := s.filter.Query()
	for query.Next() {
		n++
	}
	return n
}
