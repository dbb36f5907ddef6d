// Package visit records the grid cells agents have stood on.
package visit

import "github.com/vinser/presents/internal/grid"

// Tracker is an insert-only set of positions.
type Tracker struct {
	cells map[grid.Position]struct{}
	min   grid.Position
	max   grid.Position
}

// New returns an empty tracker.
func New() *Tracker {
	return &Tracker{
		cells: make(map[grid.Position]struct{}),
	}
}

// Record adds p to the set and reports whether it was not there before.
func (t *Tracker) Record(p grid.Position) bool {
	if _, ok := t.cells[p]; ok {
		return false
	}
	if len(t.cells) == 0 {
		t.min, t.max = p, p
	} else {
		t.min.X = min(t.min.X, p.X)
		t.min.Y = min(t.min.Y, p.Y)
		t.max.X = max(t.max.X, p.X)
		t.max.Y = max(t.max.Y, p.Y)
	}
	t.cells[p] = struct{}{}
	return true
}

// DistinctCount returns the number of distinct positions recorded.
func (t *Tracker) DistinctCount() int {
	return len(t.cells)
}

// Contains reports whether p was recorded.
func (t *Tracker) Contains(p grid.Position) bool {
	_, ok := t.cells[p]
	return ok
}

// Bounds returns the corners of the smallest rectangle holding every
// recorded position. ok is false while the tracker is empty.
func (t *Tracker) Bounds() (lo, hi grid.Position, ok bool) {
	if len(t.cells) == 0 {
		return grid.Position{}, grid.Position{}, false
	}
	return t.min, t.max, true
}
