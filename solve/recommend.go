package solve

import (
	"sort"

	"github.com/katalvlaran/voltflip/board"
)

// Recommend returns the safest hidden cell to flip next: the one with
// the lowest special (bomb) probability, ties broken by higher expected
// value, remaining ties by lowest row-major coordinate. Both comparisons
// use the exact integer counts, so the choice never depends on
// floating-point rounding.
//
// ErrNoCells is returned when the analysis has no hidden cells left
// (or the receiver is nil).
// Complexity: O(C log C) over C hidden cells.
func (a *Analysis) Recommend() (Recommendation, error) {
	ranked := a.Safest(1)
	if len(ranked) == 0 {
		return Recommendation{}, ErrNoCells
	}

	return ranked[0], nil
}

// Safest returns the hidden cells ranked from safest to riskiest under
// the same ordering Recommend uses. A non-positive n, or n beyond the
// number of hidden cells, returns the full ranking; otherwise the first
// n entries.
// Complexity: O(C log C) over C hidden cells.
func (a *Analysis) Safest(n int) []Recommendation {
	if a == nil || len(a.Cells) == 0 {
		return nil
	}

	// Collect in row-major order, then sort stably: equal Stats keep
	// their collection order, which is exactly the documented tie-break.
	out := make([]Recommendation, 0, len(a.Cells))
	for idx := 0; idx < board.Size*board.Size; idx++ {
		at := board.CoordAt(idx)
		if s, ok := a.Cells[at]; ok {
			out = append(out, Recommendation{Coord: at, Stats: s})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return safer(out[i].Stats, out[j].Stats)
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}

	return out
}

// safer reports whether x is strictly preferable to y: fewer boards with
// a special in the cell, then more expected points. Exact integers only.
func safer(x, y Stats) bool {
	if x.Counts[board.Special] != y.Counts[board.Special] {
		return x.Counts[board.Special] < y.Counts[board.Special]
	}

	return x.points() > y.points()
}
