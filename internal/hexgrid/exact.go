package hexgrid

import (
	"github.com/paulmach/orb"

	"github.com/talgya/hexgrid/internal/planar"
)

// PlanarGeometry implements Geometry on top of the planar package.
type PlanarGeometry struct{}

func (PlanarGeometry) Bounds(ring []Point) (lo, hi Point) {
	b := planar.Bound(toRing(ring))
	return Point{X: b.Min.X(), Y: b.Min.Y()}, Point{X: b.Max.X(), Y: b.Max.Y()}
}

func (PlanarGeometry) Intersects(a, b []Point) bool {
	return planar.RingsIntersect(toRing(a), toRing(b))
}

func toRing(points []Point) orb.Ring {
	ring := make(orb.Ring, len(points))
	for i, p := range points {
		ring[i] = orb.Point{p.X, p.Y}
	}
	return ring
}
