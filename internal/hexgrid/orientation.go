package hexgrid

import (
	"fmt"
	"math"
	"strings"

	"github.com/quasilyte/gmath"
)

// Orientation holds the linear transforms between axial and plane
// coordinates and the corner angle table of a hexagon layout.
type Orientation struct {
	name string

	// F maps (q, r) to plane units, B is its inverse.
	F [4]float64
	B [4]float64

	// StartAngle is the first corner angle in sixths of a full turn.
	StartAngle float64

	sin [6]float64
	cos [6]float64
}

// NewOrientation builds an orientation and precomputes its corner directions.
func NewOrientation(name string, f, b [4]float64, startAngle float64) *Orientation {
	o := &Orientation{name: name, F: f, B: b, StartAngle: startAngle}
	for i := 0; i < 6; i++ {
		angle := gmath.Rad(2.0 * math.Pi * (float64(i) + startAngle) / 6.0)
		o.sin[i] = angle.Sin()
		o.cos[i] = angle.Cos()
	}
	return o
}

var (
	// OrientationPointy has a corner at the top of every hexagon.
	OrientationPointy = NewOrientation("pointy",
		[4]float64{math.Sqrt(3.0), math.Sqrt(3.0) / 2.0, 0.0, 3.0 / 2.0},
		[4]float64{math.Sqrt(3.0) / 3.0, -1.0 / 3.0, 0.0, 2.0 / 3.0},
		0.5)

	// OrientationFlat has an edge at the top of every hexagon.
	OrientationFlat = NewOrientation("flat",
		[4]float64{3.0 / 2.0, 0.0, math.Sqrt(3.0) / 2.0, math.Sqrt(3.0)},
		[4]float64{2.0 / 3.0, 0.0, -1.0 / 3.0, math.Sqrt(3.0) / 3.0},
		0.0)
)

// OrientationByName resolves "pointy" or "flat" (case-insensitive).
func OrientationByName(name string) (*Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pointy":
		return OrientationPointy, nil
	case "flat":
		return OrientationFlat, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOrientation, name)
	}
}

// Name returns the orientation's name.
func (o *Orientation) Name() string { return o.name }

// Corner returns the unit direction (cos, sin) of corner i.
func (o *Orientation) Corner(i int) (cos, sin float64) {
	return o.cos[i], o.sin[i]
}

func (o *Orientation) String() string { return o.name }
