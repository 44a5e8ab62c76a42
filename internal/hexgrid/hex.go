// Package hexgrid maps the continuous plane onto a hexagonal cell grid.
//
// Cells use axial coordinates (q, r). The third cube coordinate s is derived
// as s = -q - r and never stored, so q + r + s == 0 holds for every Hex.
// A Grid couples an Orientation with an origin and a per-axis size and
// converts between plane points, cells and integer cell codes. Polygons are
// rasterized into a Region, an immutable set of cells bound to its Grid.
package hexgrid

import (
	"fmt"
	"math"
)

// Hex is a cell position in axial coordinates.
type Hex struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit third cube coordinate.
func (h Hex) S() int {
	return -h.Q - h.R
}

// Add returns the component-wise sum of two hexes.
func (h Hex) Add(other Hex) Hex {
	return Hex{Q: h.Q + other.Q, R: h.R + other.R}
}

func (h Hex) String() string {
	return fmt.Sprintf("Hex(%d, %d)", h.Q, h.R)
}

// Directions defines the six neighbor offsets in axial coordinates.
var Directions = [6]Hex{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbor returns the adjacent hex in the given direction (0..5, wrapping).
func (h Hex) Neighbor(direction int) Hex {
	direction %= 6
	if direction < 0 {
		direction += 6
	}
	return h.Add(Directions[direction])
}

// Distance returns the hex distance between two cells.
func Distance(a, b Hex) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	// Max of the three absolute differences in cube coordinates.
	return max(dq, dr, ds)
}

// FractionalHex is a real-valued hex position, produced while converting
// a plane point before it is snapped to a cell.
type FractionalHex struct {
	Q float64
	R float64
}

// S returns the implicit third cube coordinate.
func (h FractionalHex) S() float64 {
	return -h.Q - h.R
}

// Round snaps h to the nearest cell. Each coordinate is rounded on its own,
// then the one with the largest rounding error is recomputed from the other
// two so the result keeps q + r + s == 0.
func (h FractionalHex) Round() Hex {
	q := math.Round(h.Q)
	r := math.Round(h.R)
	s := math.Round(h.S())

	dq := math.Abs(q - h.Q)
	dr := math.Abs(r - h.R)
	ds := math.Abs(s - h.S())

	if dq > dr && dq > ds {
		q = -(r + s)
	} else if dr > ds {
		r = -(q + s)
	}
	return Hex{Q: int(q), R: int(r)}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
