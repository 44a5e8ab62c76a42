package shapes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/hexgrid/internal/hexgrid"
)

func TestRectangle(t *testing.T) {
	ring := Rectangle(hexgrid.Pt(1, 2), hexgrid.Pt(5, 7))
	assert.Equal(t, []hexgrid.Point{{X: 1, Y: 2}, {X: 5, Y: 2}, {X: 5, Y: 7}, {X: 1, Y: 7}}, ring)
	assert.True(t, hexgrid.PointInPolygon(hexgrid.Pt(3, 3), ring))
}

func TestRegular(t *testing.T) {
	center := hexgrid.Pt(10, -4)
	ring := Regular(center, 6, 6)
	require.Len(t, ring, 6)
	assert.InDelta(t, 16, ring[0].X, 1e-9)
	assert.InDelta(t, -4, ring[0].Y, 1e-9)
	for _, p := range ring {
		assert.InDelta(t, 6, math.Hypot(p.X-center.X, p.Y-center.Y), 1e-9)
	}
	assert.True(t, hexgrid.PointInPolygon(center, ring))
	assert.Nil(t, Regular(center, 6, 2))
}

func TestBlobDeterministic(t *testing.T) {
	cfg := DefaultBlobConfig()
	a := Blob(cfg)
	b := Blob(cfg)
	assert.Equal(t, a, b)

	cfg.Seed++
	assert.NotEqual(t, a, Blob(cfg))
}

func TestBlobRadiusBounds(t *testing.T) {
	cfg := BlobConfig{Center: hexgrid.Pt(50, 50), Radius: 20, Vertices: 64, Seed: 7, Roughness: 0.4}
	ring := Blob(cfg)
	require.Len(t, ring, cfg.Vertices)
	for _, p := range ring {
		d := math.Hypot(p.X-cfg.Center.X, p.Y-cfg.Center.Y)
		assert.GreaterOrEqual(t, d, cfg.Radius*(1-cfg.Roughness)-1e-9)
		assert.LessOrEqual(t, d, cfg.Radius*(1+cfg.Roughness)+1e-9)
	}
	assert.True(t, hexgrid.PointInPolygon(cfg.Center, ring))
}

func TestBlobSmoothWithoutRoughness(t *testing.T) {
	cfg := BlobConfig{Radius: 10, Vertices: 12, Seed: 3}
	for _, p := range Blob(cfg) {
		assert.InDelta(t, 10, math.Hypot(p.X, p.Y), 1e-9)
	}
	cfg.Vertices = 2
	assert.Nil(t, Blob(cfg))
}
