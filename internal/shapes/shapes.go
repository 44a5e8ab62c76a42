// Package shapes builds polygon rings for rasterizing onto a hex grid:
// rectangles, regular polygons and noise-perturbed blobs.
package shapes

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/hexgrid/internal/hexgrid"
)

// Rectangle returns the counter-clockwise ring of the axis-aligned box
// spanned by lo and hi.
func Rectangle(lo, hi hexgrid.Point) []hexgrid.Point {
	return []hexgrid.Point{
		{X: lo.X, Y: lo.Y},
		{X: hi.X, Y: lo.Y},
		{X: hi.X, Y: hi.Y},
		{X: lo.X, Y: hi.Y},
	}
}

// Regular returns a regular polygon with the given number of sides whose
// vertices lie on a circle of radius around center. The first vertex is at
// angle zero.
func Regular(center hexgrid.Point, radius float64, sides int) []hexgrid.Point {
	if sides < 3 {
		return nil
	}
	ring := make([]hexgrid.Point, sides)
	for i := range ring {
		angle := 2.0 * math.Pi * float64(i) / float64(sides)
		ring[i] = hexgrid.Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return ring
}

// BlobConfig holds parameters for a noise-perturbed polygon.
type BlobConfig struct {
	Center    hexgrid.Point
	Radius    float64 // Mean distance of vertices from Center
	Vertices  int     // Ring size, at least 3
	Seed      int64
	Roughness float64 // 0.0 (circle) to 1.0 (radius may reach 0 or 2x)
}

// DefaultBlobConfig returns a moderately irregular blob at the origin.
func DefaultBlobConfig() BlobConfig {
	return BlobConfig{
		Radius:    100,
		Vertices:  48,
		Seed:      42,
		Roughness: 0.35,
	}
}

// Blob returns a star-shaped ring whose vertex radii follow layered simplex
// noise sampled around a circle, so the outline is closed and seamless.
// The same config always produces the same ring.
func Blob(cfg BlobConfig) []hexgrid.Point {
	if cfg.Vertices < 3 {
		return nil
	}
	roughness := math.Max(0, math.Min(1, cfg.Roughness))
	noise := opensimplex.NewNormalized(cfg.Seed)

	ring := make([]hexgrid.Point, cfg.Vertices)
	for i := range ring {
		angle := 2.0 * math.Pi * float64(i) / float64(cfg.Vertices)
		cos, sin := math.Cos(angle), math.Sin(angle)

		// Normalized noise is in [0, 1]; recenter to [-1, 1].
		n := octaveNoise(noise, cos, sin, 3, 1.2, 0.5)*2 - 1
		r := cfg.Radius * (1 + roughness*n)

		ring[i] = hexgrid.Point{
			X: cfg.Center.X + r*cos,
			Y: cfg.Center.Y + r*sin,
		}
	}
	return ring
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
