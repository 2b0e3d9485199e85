package board

import (
	"sort"
	"strconv"
	"strings"
)

// RowLine derives the realized Line of row r: the sum of its non-special
// cells and its special-cell count.
// Complexity: O(Size).
func (b Board) RowLine(r int) Line {
	var l Line
	for c := 0; c < Size; c++ {
		if b[r][c] == Special {
			l.Specials++
		} else {
			l.Sum += b[r][c]
		}
	}

	return l
}

// ColLine derives the realized Line of column c.
// Complexity: O(Size).
func (b Board) ColLine(c int) Line {
	var l Line
	for r := 0; r < Size; r++ {
		if b[r][c] == Special {
			l.Specials++
		} else {
			l.Sum += b[r][c]
		}
	}

	return l
}

// Satisfies reports whether every row and every column of the board meets
// its target Line exactly.
// Complexity: O(Size²).
func (b Board) Satisfies(cons Constraints) bool {
	for i := 0; i < Size; i++ {
		if b.RowLine(i) != cons.Rows[i] || b.ColLine(i) != cons.Cols[i] {
			return false
		}
	}

	return true
}

// Matches reports whether the board agrees with every revealed cell.
// A revealed coordinate outside the grid can never agree, so it makes
// Matches false rather than panic.
// Complexity: O(len(rev)).
func (b Board) Matches(rev Revealed) bool {
	for at, v := range rev {
		if !at.InBounds() || b[at.Row][at.Col] != v {
			return false
		}
	}

	return true
}

// Specials counts the board's special cells.
// Complexity: O(Size²).
func (b Board) Specials() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == Special {
				n++
			}
		}
	}

	return n
}

// String renders the board as five space-separated rows.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(b[r][c]))
		}
	}

	return sb.String()
}

// Clone returns an independent copy of the revealed set, so a caller can
// speculate on a turn without disturbing the original.
// Complexity: O(len(rev)).
func (rev Revealed) Clone() Revealed {
	out := make(Revealed, len(rev))
	for at, v := range rev {
		out[at] = v
	}

	return out
}

// Has reports whether the cell at the coordinate has been revealed.
// Complexity: O(1).
func (rev Revealed) Has(at Coord) bool {
	_, ok := rev[at]

	return ok
}

// Coords returns the revealed coordinates in row-major order. Map iteration
// order is not deterministic; every consumer that prints or folds over the
// set goes through this instead.
// Complexity: O(n log n).
func (rev Revealed) Coords() []Coord {
	out := make([]Coord, 0, len(rev))
	for at := range rev {
		out = append(out, at)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index() < out[j].Index() })

	return out
}
