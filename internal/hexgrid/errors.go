package hexgrid

import "errors"

var (
	// ErrGridMismatch is returned when combining regions of different grids;
	// cell codes are not comparable across grids.
	ErrGridMismatch = errors.New("grid is different")

	// ErrUnknownOrientation is returned for an unrecognized orientation name.
	ErrUnknownOrientation = errors.New("unknown orientation")
)
