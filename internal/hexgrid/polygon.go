package hexgrid

import "math"

// rayNudge shifts a ray off a vertex it would otherwise pass through exactly.
const rayNudge = 0.00001

// PointInPolygon reports whether point lies strictly inside the polygon
// described by ring, using horizontal ray casting. The ring closes
// implicitly from its last vertex back to the first. Points on an edge are
// not contained.
//
// Several closed sub-rings may be concatenated into one ring by repeating
// the joining vertices; containment then follows crossing parity, so an inner
// sub-ring acts as a hole. Zero-length edges never register a crossing.
func PointInPolygon(point Point, ring []Point) bool {
	n := len(ring)
	if n == 0 {
		return false
	}

	for i := 1; i < n; i++ {
		if onSegment(point, ring[i-1], ring[i]) {
			return false
		}
	}
	if onSegment(point, ring[0], ring[n-1]) {
		return false
	}

	contains := rayIntersectsSegment(point, ring[n-1], ring[0])
	for i := 1; i < n; i++ {
		if rayIntersectsSegment(point, ring[i-1], ring[i]) {
			contains = !contains
		}
	}
	return contains
}

// onSegment reports whether point is collinear with start-end and inside
// the segment's span.
func onSegment(point, start, end Point) bool {
	if point.X < math.Min(start.X, end.X) || point.X > math.Max(start.X, end.X) {
		return false
	}
	if point.Y < math.Min(start.Y, end.Y) || point.Y > math.Max(start.Y, end.Y) {
		return false
	}
	se := end.Sub(start)
	sp := point.Sub(start)
	return sp.X*se.Y-sp.Y*se.X == 0
}

// rayIntersectsSegment reports whether a ray cast from point toward +x
// crosses the segment start-end.
func rayIntersectsSegment(point, start, end Point) bool {
	if start.Y > end.Y {
		start, end = end, start
	}

	if point.Y == start.Y || point.Y == end.Y {
		point.Y += rayNudge
	}

	if point.Y > end.Y || point.Y < start.Y || point.X > math.Max(start.X, end.X) {
		return false
	}
	if point.X < math.Min(start.X, end.X) {
		return true
	}

	mPoint := math.MaxFloat64
	if point.X != start.X {
		mPoint = (point.Y - start.Y) / (point.X - start.X)
	}
	mEdge := math.MaxFloat64
	if start.X != end.X {
		mEdge = (end.Y - start.Y) / (end.X - start.X)
	}
	return mPoint >= mEdge
}

// anyPointInPolygon reports whether at least one of points is inside ring.
func anyPointInPolygon(points, ring []Point) bool {
	for _, p := range points {
		if PointInPolygon(p, ring) {
			return true
		}
	}
	return false
}
