package hexgrid

import "github.com/talgya/hexgrid/internal/morton"

// Codec maps a cell to a single comparable integer and back.
// Pack and Unpack must be exact inverses over the supported range.
type Codec interface {
	Pack(q, r int) int64
	Unpack(code int64) (q, r int)
}

// Grid places hexagons of one orientation on the plane. Origin is the plane
// position of the center of Hex{0, 0}; Size scales the unit hexagon on each
// axis independently, so non-regular hexagons are allowed.
//
// A Grid is immutable after construction and safe for concurrent use.
type Grid struct {
	orientation *Orientation
	origin      Point
	size        Point
	codec       Codec
	rasterizer  Rasterizer
}

// Option configures a Grid at construction.
type Option func(*Grid)

// WithCodec replaces the default Morton codec.
func WithCodec(c Codec) Option {
	return func(g *Grid) {
		if c != nil {
			g.codec = c
		}
	}
}

// WithGeometry rasterizes regions with the exact strategy backed by geom.
// A nil geom selects the approximate strategy.
func WithGeometry(geom Geometry) Option {
	return func(g *Grid) {
		if geom == nil {
			g.rasterizer = ApproximateRasterizer{}
			return
		}
		g.rasterizer = ExactRasterizer{Geometry: geom}
	}
}

// WithRasterizer sets the region rasterization strategy directly.
func WithRasterizer(r Rasterizer) Option {
	return func(g *Grid) {
		if r != nil {
			g.rasterizer = r
		}
	}
}

// NewGrid creates a grid. Without options it uses the Morton codec and the
// exact rasterization strategy over planar geometry.
func NewGrid(orientation *Orientation, origin, size Point, opts ...Option) *Grid {
	g := &Grid{
		orientation: orientation,
		origin:      origin,
		size:        size,
		codec:       morton.New(),
		rasterizer:  ExactRasterizer{Geometry: PlanarGeometry{}},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Orientation returns the grid's orientation.
func (g *Grid) Orientation() *Orientation { return g.orientation }

// Origin returns the plane position of the center of Hex{0, 0}.
func (g *Grid) Origin() Point { return g.origin }

// Size returns the per-axis hexagon scale.
func (g *Grid) Size() Point { return g.size }

// Rasterizer returns the active region rasterization strategy.
func (g *Grid) Rasterizer() Rasterizer { return g.rasterizer }

// HexToCode packs h into its integer code.
func (g *Grid) HexToCode(h Hex) int64 {
	return g.codec.Pack(h.Q, h.R)
}

// HexFromCode unpacks a code produced by HexToCode.
func (g *Grid) HexFromCode(code int64) Hex {
	q, r := g.codec.Unpack(code)
	return Hex{Q: q, R: r}
}

// HexAt returns the cell containing point.
func (g *Grid) HexAt(point Point) Hex {
	x := (point.X - g.origin.X) / g.size.X
	y := (point.Y - g.origin.Y) / g.size.Y
	b := g.orientation.B
	return FractionalHex{
		Q: b[0]*x + b[1]*y,
		R: b[2]*x + b[3]*y,
	}.Round()
}

// HexCenter returns the plane position of the center of h.
func (g *Grid) HexCenter(h Hex) Point {
	f := g.orientation.F
	q, r := float64(h.Q), float64(h.R)
	return Point{
		X: (f[0]*q+f[1]*r)*g.size.X + g.origin.X,
		Y: (f[2]*q+f[3]*r)*g.size.Y + g.origin.Y,
	}
}

// HexCorners returns the six corners of h. Corner order depends only on
// the orientation.
func (g *Grid) HexCorners(h Hex) [6]Point {
	var corners [6]Point
	center := g.HexCenter(h)
	for i := range corners {
		corners[i] = Point{
			X: g.size.X*g.orientation.cos[i] + center.X,
			Y: g.size.Y*g.orientation.sin[i] + center.Y,
		}
	}
	return corners
}

// HexNeighbors returns every cell within layers steps of h, h excluded,
// ordered by q then r. There are 3*layers*(layers+1) of them.
func (g *Grid) HexNeighbors(h Hex, layers int) []Hex {
	if layers <= 0 {
		return nil
	}
	neighbors := make([]Hex, 0, 3*layers*(layers+1))
	for q := -layers; q <= layers; q++ {
		r1 := max(-layers, -q-layers)
		r2 := min(layers, -q+layers)
		for r := r1; r <= r2; r++ {
			if q == 0 && r == 0 {
				continue
			}
			neighbors = append(neighbors, Hex{Q: q + h.Q, R: r + h.R})
		}
	}
	return neighbors
}

// MakeRegion rasterizes the polygon ring into the cells it covers, using
// the grid's rasterization strategy. Cells are ordered by q then r.
func (g *Grid) MakeRegion(ring []Point) *Region {
	region := newRegion(g, 0)
	if len(ring) == 0 {
		return region
	}

	lo, hi := g.rasterizer.Bounds(ring)
	corners := [4]Hex{
		g.HexAt(Point{X: lo.X, Y: lo.Y}),
		g.HexAt(Point{X: lo.X, Y: hi.Y}),
		g.HexAt(Point{X: hi.X, Y: hi.Y}),
		g.HexAt(Point{X: hi.X, Y: lo.Y}),
	}
	qMin, qMax := corners[0].Q, corners[0].Q
	rMin, rMax := corners[0].R, corners[0].R
	for _, c := range corners[1:] {
		qMin, qMax = min(qMin, c.Q), max(qMax, c.Q)
		rMin, rMax = min(rMin, c.R), max(rMax, c.R)
	}

	// One extra cell on every side absorbs rounding at the box edges.
	for q := qMin - 1; q <= qMax+1; q++ {
		for r := rMin - 1; r <= rMax+1; r++ {
			h := Hex{Q: q, R: r}
			cell := g.HexCorners(h)
			if g.rasterizer.Covers(cell[:], ring) {
				region.add(h)
			}
		}
	}
	return region
}
