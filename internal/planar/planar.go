// Package planar provides exact polygon predicates on the plane.
//
// Rings are orb.Ring values; a ring need not repeat its first vertex at the
// end, the closing edge is always implied. Boundaries are inclusive:
// polygons that only touch still intersect.
package planar

import (
	"github.com/paulmach/orb"
	orbplanar "github.com/paulmach/orb/planar"
)

// Bound returns the axis-aligned bounding box of ring.
func Bound(ring orb.Ring) orb.Bound {
	return ring.Bound()
}

// RingsIntersect reports whether the polygons bounded by a and b share at
// least one point.
func RingsIntersect(a, b orb.Ring) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	if !a.Bound().Intersects(b.Bound()) {
		return false
	}

	for i := range a {
		a1, a2 := edge(a, i)
		for j := range b {
			b1, b2 := edge(b, j)
			if SegmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}

	// No edges cross: either one polygon is inside the other or they are
	// disjoint.
	return RingContains(b, a[0]) || RingContains(a, b[0])
}

// RingContains reports whether point is inside ring or on its boundary.
func RingContains(ring orb.Ring, point orb.Point) bool {
	if len(ring) < 3 {
		return false
	}
	return orbplanar.RingContains(ring, point)
}

// SegmentsIntersect reports whether segments p1-p2 and q1-q2 share a point,
// collinear overlaps and touching endpoints included.
func SegmentsIntersect(p1, p2, q1, q2 orb.Point) bool {
	d1 := orientation(q1, q2, p1)
	d2 := orientation(q1, q2, p2)
	d3 := orientation(p1, p2, q1)
	d4 := orientation(p1, p2, q2)

	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}

	switch {
	case d1 == 0 && withinBox(q1, q2, p1):
		return true
	case d2 == 0 && withinBox(q1, q2, p2):
		return true
	case d3 == 0 && withinBox(p1, p2, q1):
		return true
	case d4 == 0 && withinBox(p1, p2, q2):
		return true
	}
	return false
}

// edge returns the i-th edge of ring, wrapping back to the first vertex.
func edge(ring orb.Ring, i int) (orb.Point, orb.Point) {
	return ring[i], ring[(i+1)%len(ring)]
}

// orientation returns the sign of the cross product (b-a) x (c-a).
func orientation(a, b, c orb.Point) int {
	v := (b.X()-a.X())*(c.Y()-a.Y()) - (b.Y()-a.Y())*(c.X()-a.X())
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func withinBox(a, b, p orb.Point) bool {
	return min(a.X(), b.X()) <= p.X() && p.X() <= max(a.X(), b.X()) &&
		min(a.Y(), b.Y()) <= p.Y() && p.Y() <= max(a.Y(), b.Y())
}
