package solve

import "github.com/katalvlaran/voltflip/board"

// Posterior enumerates every board satisfying cons and the revealed
// cells and folds the set into per-cell posteriors: for each hidden
// coordinate, the exact count of boards per value, the probabilities
// P(0..3), and the expected point value.
//
// The fold is single-pass: boards are counted into fixed accumulators
// and discarded immediately, so memory stays O(Size²) however large the
// solution set grows. Zero satisfying boards yields (nil, ErrNoSolution);
// no probability is ever derived from an empty set.
//
// Complexity: the enumeration cost plus O(Size²) per visited board.
func Posterior(cons board.Constraints, rev board.Revealed, opts ...Option) (*Analysis, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var counts [board.Size * board.Size][board.NumValues]int
	n, err := Enumerate(cons, rev, func(b board.Board) bool {
		for idx := range counts {
			at := board.CoordAt(idx)
			if !rev.Has(at) {
				counts[idx][b[at.Row][at.Col]]++
			}
		}

		return true
	}, opts...)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNoSolution
	}

	a := &Analysis{
		Boards:    n,
		Cells:     make(map[board.Coord]Stats, len(counts)-len(rev)),
		Truncated: o.MaxBoards > 0 && n >= o.MaxBoards,
	}
	for idx := range counts {
		at := board.CoordAt(idx)
		if !rev.Has(at) {
			a.Cells[at] = newStats(counts[idx], n)
		}
	}

	return a, nil
}

// newStats derives the probability vector and expected value from exact
// counts over boards enumerated boards.
func newStats(counts [board.NumValues]int, boards int) Stats {
	s := Stats{Counts: counts}
	for v := range counts {
		s.Prob[v] = float64(counts[v]) / float64(boards)
	}
	s.EV = float64(s.points()) / float64(boards)

	return s
}
