package hexgrid

import "fmt"

// Region is a set of cells of one Grid, in insertion order, with O(1)
// membership by cell code. Regions are immutable once returned; operations
// that change the set return a new Region.
type Region struct {
	grid   *Grid
	hexes  []Hex
	lookup map[int64]struct{}
}

func newRegion(g *Grid, capacity int) *Region {
	return &Region{
		grid:   g,
		hexes:  make([]Hex, 0, capacity),
		lookup: make(map[int64]struct{}, capacity),
	}
}

// add appends h unless already present. Only used while building a Region.
func (r *Region) add(h Hex) {
	code := r.grid.HexToCode(h)
	if _, ok := r.lookup[code]; ok {
		return
	}
	r.hexes = append(r.hexes, h)
	r.lookup[code] = struct{}{}
}

// Grid returns the grid the region belongs to.
func (r *Region) Grid() *Grid { return r.grid }

// Len returns the number of cells.
func (r *Region) Len() int { return len(r.hexes) }

// Hexes returns a copy of the cells in insertion order.
func (r *Region) Hexes() []Hex {
	out := make([]Hex, len(r.hexes))
	copy(out, r.hexes)
	return out
}

// Codes returns the cell codes in insertion order.
func (r *Region) Codes() []int64 {
	codes := make([]int64, len(r.hexes))
	for i, h := range r.hexes {
		codes[i] = r.grid.HexToCode(h)
	}
	return codes
}

// Contains reports whether h is one of the region's cells.
func (r *Region) Contains(h Hex) bool {
	_, ok := r.lookup[r.grid.HexToCode(h)]
	return ok
}

// Union returns a new region holding the cells of r followed by the cells of
// other not already in r. Both regions must share the same Grid.
func (r *Region) Union(other *Region) (*Region, error) {
	if r.grid != other.grid {
		return nil, fmt.Errorf("union: %w", ErrGridMismatch)
	}

	merged := newRegion(r.grid, len(r.hexes)+len(other.hexes))
	for _, h := range r.hexes {
		merged.add(h)
	}
	for _, h := range other.hexes {
		merged.add(h)
	}
	return merged, nil
}

func (r *Region) String() string {
	return fmt.Sprintf("Region(cells=%d)", len(r.hexes))
}
