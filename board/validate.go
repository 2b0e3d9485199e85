package board

import "fmt"

// Validate checks the consistency preconditions the solver assumes:
//
//   - every row and column Line has Specials in [0,5] and an achievable Sum;
//   - the row sums and column sums total the same value;
//   - the row special-counts and column special-counts total the same value;
//   - every revealed coordinate is inside the grid and holds a value in {0..3}.
//
// It reports the first violation found, wrapping the matching sentinel so
// callers can branch with errors.Is. A nil return only means the inputs
// are individually well-formed, not that the puzzle has a solution;
// jointly contradictory inputs still enumerate to zero boards.
// Complexity: O(Size + len(rev)).
func Validate(cons Constraints, rev Revealed) error {
	var sumRows, sumCols, spRows, spCols int
	for i := 0; i < Size; i++ {
		if err := checkLine("row", i, cons.Rows[i]); err != nil {
			return err
		}
		if err := checkLine("column", i, cons.Cols[i]); err != nil {
			return err
		}
		sumRows += cons.Rows[i].Sum
		sumCols += cons.Cols[i].Sum
		spRows += cons.Rows[i].Specials
		spCols += cons.Cols[i].Specials
	}
	if sumRows != sumCols {
		return fmt.Errorf("rows total %d, columns total %d: %w", sumRows, sumCols, ErrSumMismatch)
	}
	if spRows != spCols {
		return fmt.Errorf("rows hold %d specials, columns hold %d: %w", spRows, spCols, ErrSpecialsMismatch)
	}

	for _, at := range rev.Coords() {
		if !at.InBounds() {
			return fmt.Errorf("revealed cell (%d,%d): %w", at.Row, at.Col, ErrCoordRange)
		}
		if v := rev[at]; !ValidValue(v) {
			return fmt.Errorf("revealed cell (%d,%d) holds %d: %w", at.Row, at.Col, v, ErrValueRange)
		}
	}

	return nil
}

// checkLine validates a single published Line.
func checkLine(kind string, i int, l Line) error {
	if l.Specials < 0 || l.Specials > Size {
		return fmt.Errorf("%s %d: %d specials: %w", kind, i, l.Specials, ErrSpecialsRange)
	}
	if !l.Achievable() {
		return fmt.Errorf("%s %d: sum %d with %d specials: %w", kind, i, l.Sum, l.Specials, ErrLineUnreachable)
	}

	return nil
}
