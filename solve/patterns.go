package solve

import "github.com/katalvlaran/voltflip/board"

// RowPatterns returns every length-5 row realizing the line: exactly
// line.Specials cells hold 0 and the remaining cells hold values in
// {1..3} summing to line.Sum.
//
// Patterns are emitted in lexicographic order of their cell values
// (0 < 1 < 2 < 3 position by position), so the output is deterministic.
// An unachievable line yields an empty slice; that is the normal
// "no patterns" signal, not an error.
//
// Complexity: O(P·Size) for P emitted patterns; the interval prune cuts
// every branch that cannot reach the targets.
func RowPatterns(line board.Line) []board.Row {
	var (
		out []board.Row
		cur board.Row
	)
	var rec func(idx, sumLeft, specialsLeft int)
	rec = func(idx, sumLeft, specialsLeft int) {
		if !fits(board.Size-idx, sumLeft, specialsLeft) {
			return
		}
		if idx == board.Size {
			out = append(out, cur)

			return
		}

		cur[idx] = board.Special
		rec(idx+1, sumLeft, specialsLeft-1)
		for v := board.MinPoints; v <= board.MaxPoints; v++ {
			cur[idx] = v
			rec(idx+1, sumLeft-v, specialsLeft)
		}
	}
	rec(0, line.Sum, line.Specials)

	return out
}

// fits reports whether cells positions can still absorb exactly specials
// zeros and a non-special total of sum. With cells == 0 it degenerates to
// the exact terminal check (specials == 0 and sum == 0).
func fits(cells, sum, specials int) bool {
	if specials < 0 || specials > cells {
		return false
	}
	open := cells - specials

	return sum >= open*board.MinPoints && sum <= open*board.MaxPoints
}
