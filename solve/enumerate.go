package solve

import "github.com/katalvlaran/voltflip/board"

// Enumerate walks every board that satisfies cons and agrees with the
// revealed cells, invoking visit for each one in lexicographic order.
// It returns the number of boards visited.
//
// Zero is the normal result for contradictory or over-constrained inputs;
// the only error condition is a nil visitor (ErrNilVisitor). The visitor
// stopping the walk (returning false) and the WithMaxBoards cap both end
// the enumeration early without error.
//
// Complexity: worst case exponential in the grid area (exact search);
// the column interval prune keeps realistic puzzles to a few thousand
// node events. Memory is O(Size²) beyond the precomputed row patterns.
func Enumerate(cons board.Constraints, rev board.Revealed, visit Visitor, opts ...Option) (int, error) {
	if visit == nil {
		return 0, ErrNilVisitor
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &engine{cons: cons, visit: visit, opts: o}
	if !e.prepare(rev) || !e.colsFeasible(0) {
		return 0, nil
	}
	e.walk(0)

	return e.count, nil
}

// Solutions collects every satisfying board eagerly. It is a convenience
// wrapper over Enumerate for callers that want the full solution set
// rather than a streaming fold; the set is small for real puzzles.
func Solutions(cons board.Constraints, rev board.Revealed, opts ...Option) ([]board.Board, error) {
	var out []board.Board
	_, err := Enumerate(cons, rev, func(b board.Board) bool {
		out = append(out, b)

		return true
	}, opts...)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// engine holds all search data for one enumeration. A dedicated struct
// (instead of closures over shared slices) keeps the hot-path state
// explicit and the placement/rollback pair symmetric.
type engine struct {
	cons  board.Constraints
	visit Visitor
	opts  Options

	// rows[r] is the precomputed candidate pattern list for row r,
	// already filtered against the revealed cells of that row.
	rows [board.Size][]board.Row

	// Running column state over the placed prefix of rows.
	colSum [board.Size]int
	colSp  [board.Size]int

	cur   board.Board
	count int
}

// prepare precomputes per-row candidates and filters them against the
// revealed cells. It reports false when the revealed set itself is
// unsatisfiable (a coordinate outside the grid or a value outside the
// alphabet) or when some row has no candidate left; either already
// proves the puzzle has zero solutions.
func (e *engine) prepare(rev board.Revealed) bool {
	for at, v := range rev {
		if !at.InBounds() || !board.ValidValue(v) {
			return false
		}
	}
	for r := 0; r < board.Size; r++ {
		all := RowPatterns(e.cons.Rows[r])
		kept := all[:0]
		for _, p := range all {
			if rowMatches(p, r, rev) {
				kept = append(kept, p)
			}
		}
		if len(kept) == 0 {
			return false
		}
		e.rows[r] = kept
	}

	return true
}

// rowMatches reports whether pattern p agrees with every revealed cell
// in row r.
func rowMatches(p board.Row, r int, rev board.Revealed) bool {
	for c := 0; c < board.Size; c++ {
		if v, ok := rev[board.Coord{Row: r, Col: c}]; ok && p[c] != v {
			return false
		}
	}

	return true
}

// colsFeasible checks, after the first done rows are placed, that every
// column can still reach its targets with the rows that remain: the
// outstanding specials must fit, and the outstanding sum must lie in the
// interval the open cells can produce. With done == Size the interval
// collapses to a point, so the final call enforces exact equality and no
// separate acceptance check is needed.
func (e *engine) colsFeasible(done int) bool {
	rowsLeft := board.Size - done
	for c := 0; c < board.Size; c++ {
		spLeft := e.cons.Cols[c].Specials - e.colSp[c]
		if spLeft < 0 || spLeft > rowsLeft {
			return false
		}
		open := rowsLeft - spLeft
		sumLeft := e.cons.Cols[c].Sum - e.colSum[c]
		if sumLeft < open*board.MinPoints || sumLeft > open*board.MaxPoints {
			return false
		}
	}

	return true
}

// place writes pattern p into row r and folds it into the column state.
func (e *engine) place(r int, p board.Row) {
	for c := 0; c < board.Size; c++ {
		e.cur[r][c] = p[c]
		if p[c] == board.Special {
			e.colSp[c]++
		} else {
			e.colSum[c] += p[c]
		}
	}
}

// unplace rolls back place(r, p).
func (e *engine) unplace(r int, p board.Row) {
	for c := 0; c < board.Size; c++ {
		if p[c] == board.Special {
			e.colSp[c]--
		} else {
			e.colSum[c] -= p[c]
		}
	}
}

// walk tries every candidate pattern for row r and recurses. It returns
// false when the visitor or the board cap stopped the enumeration, which
// unwinds the whole search.
func (e *engine) walk(r int) bool {
	if r == board.Size {
		return e.accept()
	}
	for _, p := range e.rows[r] {
		e.place(r, p)
		ok := true
		if e.colsFeasible(r + 1) {
			ok = e.walk(r + 1)
		}
		e.unplace(r, p)
		if !ok {
			return false
		}
	}

	return true
}

// accept records a completed board and streams it out.
func (e *engine) accept() bool {
	e.count++
	if e.opts.OnBoard != nil {
		e.opts.OnBoard(e.cur)
	}
	if !e.visit(e.cur) {
		return false
	}

	return e.opts.MaxBoards <= 0 || e.count < e.opts.MaxBoards
}
