package hexgrid

import "github.com/golang/geo/r2"

// Rasterizer decides which candidate cells a polygon covers.
type Rasterizer interface {
	// Name identifies the strategy ("approximate" or "exact").
	Name() string
	// Bounds returns the axis-aligned bounding box of ring.
	Bounds(ring []Point) (lo, hi Point)
	// Covers reports whether the hexagon with the given corners is part of
	// the region of ring.
	Covers(cell, ring []Point) bool
}

// Geometry is an exact planar geometry service.
type Geometry interface {
	Bounds(ring []Point) (lo, hi Point)
	// Intersects reports whether the two polygons share any point;
	// touching boundaries intersect.
	Intersects(a, b []Point) bool
}

// ApproximateRasterizer includes a cell when one of its corners lies inside
// the polygon or one of the polygon's vertices lies inside the cell. Thin
// slivers where edges cross without either shape containing a vertex of the
// other are missed.
type ApproximateRasterizer struct{}

func (ApproximateRasterizer) Name() string { return "approximate" }

func (ApproximateRasterizer) Bounds(ring []Point) (lo, hi Point) {
	points := make([]r2.Point, len(ring))
	for i, p := range ring {
		points[i] = r2.Point{X: p.X, Y: p.Y}
	}
	rect := r2.RectFromPoints(points...)
	return Point{X: rect.X.Lo, Y: rect.Y.Lo}, Point{X: rect.X.Hi, Y: rect.Y.Hi}
}

func (ApproximateRasterizer) Covers(cell, ring []Point) bool {
	return anyPointInPolygon(cell, ring) || anyPointInPolygon(ring, cell)
}

// ExactRasterizer includes a cell when the vertex test of
// ApproximateRasterizer passes or Geometry reports an intersection.
type ExactRasterizer struct {
	Geometry Geometry
}

func (ExactRasterizer) Name() string { return "exact" }

func (e ExactRasterizer) Bounds(ring []Point) (lo, hi Point) {
	return e.Geometry.Bounds(ring)
}

func (e ExactRasterizer) Covers(cell, ring []Point) bool {
	if (ApproximateRasterizer{}).Covers(cell, ring) {
		return true
	}
	return e.Geometry.Intersects(cell, ring)
}
