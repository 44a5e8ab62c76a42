package hexgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var probePoints = []Point{
	{5, 5}, {5, 8},
	{-10, 5}, {0, 5},
	{10, 5}, {8, 5},
	{10, 10},
}

func TestPointInPolygonFixtures(t *testing.T) {
	cases := []struct {
		name string
		ring []Point
		want []bool
	}{
		{
			name: "square",
			ring: []Point{
				{0, 0}, {10, 0},
				{10, 0}, {10, 10},
				{10, 10}, {0, 10},
				{0, 10}, {0, 0},
			},
			want: []bool{true, true, false, false, false, true, false},
		},
		{
			name: "square with hole",
			ring: []Point{
				{0, 0}, {10, 0},
				{10, 0}, {10, 10},
				{10, 10}, {0, 10},
				{0, 10}, {0, 0},
				{2.5, 2.5}, {7.5, 2.5},
				{7.5, 2.5}, {7.5, 7.5},
				{7.5, 7.5}, {2.5, 7.5},
				{2.5, 7.5}, {2.5, 2.5},
			},
			want: []bool{false, true, false, false, false, true, false},
		},
		{
			name: "concave",
			ring: []Point{
				{0, 0}, {2.5, 2.5},
				{2.5, 2.5}, {0, 10},
				{0, 10}, {2.5, 7.5},
				{2.5, 7.5}, {7.5, 7.5},
				{7.5, 7.5}, {10, 10},
				{10, 10}, {10, 0},
				{10, 0}, {2.5, 2.5},
			},
			want: []bool{true, false, false, false, false, true, false},
		},
		{
			name: "hexagon",
			ring: []Point{
				{3, 0}, {7, 0},
				{7, 0}, {10, 5},
				{10, 5}, {7, 10},
				{7, 10}, {3, 10},
				{3, 10}, {0, 5},
				{0, 5}, {3, 0},
			},
			want: []bool{true, true, false, false, false, true, false},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for i, p := range probePoints {
				assert.Equal(t, tc.want[i], PointInPolygon(p, tc.ring), "point %v", p)
			}
		})
	}
}

func TestPointInPolygonUnitSquare(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	assert.True(t, PointInPolygon(Pt(5, 5), square))
	assert.False(t, PointInPolygon(Pt(10, 5), square), "right edge")
	assert.False(t, PointInPolygon(Pt(-10, 5), square))
	assert.False(t, PointInPolygon(Pt(5, 0), square), "bottom edge")
	assert.False(t, PointInPolygon(Pt(0, 10), square), "vertex")
	assert.False(t, PointInPolygon(Pt(10, 20), square))
}

func TestPointInPolygonThroughVertex(t *testing.T) {
	diamond := []Point{{5, 0}, {10, 5}, {5, 10}, {0, 5}}
	// The ray from these points passes exactly through the vertex (10, 5).
	assert.True(t, PointInPolygon(Pt(5, 5), diamond))
	assert.True(t, PointInPolygon(Pt(1, 5), diamond))
	assert.False(t, PointInPolygon(Pt(-1, 5), diamond))
}

func TestPointInPolygonCollinearBeyondEdge(t *testing.T) {
	// (10, 5) lies on the line through the inner vertical edge x=10,
	// y in [10, 20], but not on the edge itself.
	l := []Point{{0, 0}, {20, 0}, {20, 10}, {10, 10}, {10, 20}, {0, 20}}
	assert.True(t, PointInPolygon(Pt(10, 5), l))
	assert.True(t, PointInPolygon(Pt(15, 5), l))
	assert.True(t, PointInPolygon(Pt(5, 15), l))
	assert.False(t, PointInPolygon(Pt(15, 15), l))
}

func TestPointInPolygonDegenerate(t *testing.T) {
	assert.False(t, PointInPolygon(Pt(0, 0), nil))
	assert.False(t, PointInPolygon(Pt(1, 1), []Point{{1, 1}}))
	assert.False(t, PointInPolygon(Pt(2, 2), []Point{{1, 1}}))
	assert.NotPanics(t, func() {
		PointInPolygon(Pt(1, 1), []Point{{0, 0}, {0, 0}, {3, 0}, {3, 0}, {3, 3}, {0, 3}})
	})
	assert.True(t, PointInPolygon(Pt(1, 1), []Point{{0, 0}, {0, 0}, {3, 0}, {3, 0}, {3, 3}, {0, 3}}))
}
