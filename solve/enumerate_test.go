package solve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voltflip/board"
	"github.com/katalvlaran/voltflip/solve"
)

// Shared fixtures. Each is a Constraints value whose full solution set
// is known by hand; the board/posterior/recommend tests all build on
// these.

// uniformLines sets every row and column to the same Line.
func uniformLines(l board.Line) board.Constraints {
	var cons board.Constraints
	for i := 0; i < board.Size; i++ {
		cons.Rows[i] = l
		cons.Cols[i] = l
	}

	return cons
}

// uniformBoard fills the whole grid with v.
func uniformBoard(v int) board.Board {
	var b board.Board
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			b[r][c] = v
		}
	}

	return b
}

// consUnique admits exactly one board: all ones.
func consUnique() board.Constraints {
	return uniformLines(board.Line{Sum: 5, Specials: 0})
}

// consTwin admits exactly two boards: all ones except the top-left 2×2
// block, which is either [[1,2],[2,1]] or [[2,1],[1,2]].
func consTwin() board.Constraints {
	cons := uniformLines(board.Line{Sum: 5, Specials: 0})
	cons.Rows[0] = board.Line{Sum: 6, Specials: 0}
	cons.Rows[1] = board.Line{Sum: 6, Specials: 0}
	cons.Cols[0] = board.Line{Sum: 6, Specials: 0}
	cons.Cols[1] = board.Line{Sum: 6, Specials: 0}

	return cons
}

// twinBoards returns consTwin's solution set in enumeration order.
func twinBoards() []board.Board {
	first := uniformBoard(1)
	first[0][1] = 2
	first[1][0] = 2
	second := uniformBoard(1)
	second[0][0] = 2
	second[1][1] = 2

	return []board.Board{first, second}
}

// consPairedBombs admits exactly two boards: all ones except two bombs
// placed diagonally in the top-left 2×2 block, either at (0,0),(1,1) or
// at (0,1),(1,0).
func consPairedBombs() board.Constraints {
	cons := uniformLines(board.Line{Sum: 5, Specials: 0})
	cons.Rows[0] = board.Line{Sum: 4, Specials: 1}
	cons.Rows[1] = board.Line{Sum: 4, Specials: 1}
	cons.Cols[0] = board.Line{Sum: 4, Specials: 1}
	cons.Cols[1] = board.Line{Sum: 4, Specials: 1}

	return cons
}

// consBombPermutations admits 5! = 120 boards: every cell holds 3
// except one bomb per row and per column.
func consBombPermutations() board.Constraints {
	return uniformLines(board.Line{Sum: 12, Specials: 1})
}

// consContradictory passes board.Validate (every line achievable, totals
// conserved) yet admits no board: row 0 is forced all-special, so every
// column holds a bomb, while column 3 claims none.
func consContradictory() board.Constraints {
	var cons board.Constraints
	cons.Rows[0] = board.Line{Sum: 0, Specials: 5}
	for r := 1; r < board.Size; r++ {
		cons.Rows[r] = board.Line{Sum: 5, Specials: 0}
	}
	cons.Cols[0] = board.Line{Sum: 4, Specials: 1}
	cons.Cols[1] = board.Line{Sum: 4, Specials: 1}
	cons.Cols[2] = board.Line{Sum: 4, Specials: 1}
	cons.Cols[3] = board.Line{Sum: 5, Specials: 0}
	cons.Cols[4] = board.Line{Sum: 3, Specials: 2}

	return cons
}

func TestEnumerate_NilVisitor(t *testing.T) {
	n, err := solve.Enumerate(consUnique(), nil, nil)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, solve.ErrNilVisitor)
}

func TestEnumerate_UniqueBoard(t *testing.T) {
	var seen []board.Board
	n, err := solve.Enumerate(consUnique(), nil, func(b board.Board) bool {
		seen = append(seen, b)

		return true
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, seen, 1)
	assert.Equal(t, uniformBoard(1), seen[0])
}

func TestEnumerate_EveryBoardSatisfiesAndMatches(t *testing.T) {
	cons := consPairedBombs()
	rev := board.Revealed{{Row: 0, Col: 0}: board.Special}
	n, err := solve.Enumerate(cons, rev, func(b board.Board) bool {
		assert.True(t, b.Satisfies(cons))
		assert.True(t, b.Matches(rev))

		return true
	})
	require.NoError(t, err)
	// Revealing the (0,0) bomb eliminates the other diagonal.
	assert.Equal(t, 1, n)
}

func TestEnumerate_CountsAllPermutations(t *testing.T) {
	n, err := solve.Enumerate(consBombPermutations(), nil, func(board.Board) bool { return true })
	require.NoError(t, err)
	assert.Equal(t, 120, n)
}

func TestEnumerate_SpecialsConservation(t *testing.T) {
	cons := consBombPermutations()
	spRows := 0
	for i := 0; i < board.Size; i++ {
		spRows += cons.Rows[i].Specials
	}
	_, err := solve.Enumerate(cons, nil, func(b board.Board) bool {
		assert.Equal(t, spRows, b.Specials())

		return true
	})
	require.NoError(t, err)
}

func TestEnumerate_VisitorStops(t *testing.T) {
	n, err := solve.Enumerate(consBombPermutations(), nil, func(board.Board) bool {
		return false
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	calls := 0
	n, err = solve.Enumerate(consBombPermutations(), nil, func(board.Board) bool {
		calls++

		return calls < 7
	})
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, 7, calls)
}

func TestEnumerate_MaxBoards(t *testing.T) {
	n, err := solve.Enumerate(consBombPermutations(), nil,
		func(board.Board) bool { return true },
		solve.WithMaxBoards(10))
	require.NoError(t, err)
	assert.Equal(t, 10, n)
}

func TestEnumerate_OnBoardHook(t *testing.T) {
	hooked := 0
	n, err := solve.Enumerate(consTwin(), nil,
		func(board.Board) bool { return true },
		solve.WithOnBoard(func(board.Board) { hooked++ }))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, hooked)
}

func TestEnumerate_ZeroSolutions(t *testing.T) {
	t.Run("ContradictoryButValid", func(t *testing.T) {
		cons := consContradictory()
		require.NoError(t, board.Validate(cons, nil))
		n, err := solve.Enumerate(cons, nil, func(board.Board) bool { return true })
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("UnreachableRow", func(t *testing.T) {
		cons := consUnique()
		cons.Rows[2] = board.Line{Sum: 16, Specials: 0}
		n, err := solve.Enumerate(cons, nil, func(board.Board) bool { return true })
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("RevealedContradictsForcedRow", func(t *testing.T) {
		rev := board.Revealed{{Row: 2, Col: 2}: 3}
		n, err := solve.Enumerate(consUnique(), rev, func(board.Board) bool { return true })
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("RevealedOutsideGrid", func(t *testing.T) {
		rev := board.Revealed{{Row: 7, Col: 0}: 1}
		n, err := solve.Enumerate(consUnique(), rev, func(board.Board) bool { return true })
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("RevealedValueOutsideAlphabet", func(t *testing.T) {
		rev := board.Revealed{{Row: 0, Col: 0}: 9}
		n, err := solve.Enumerate(consUnique(), rev, func(board.Board) bool { return true })
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestSolutions_TwinLexicographic(t *testing.T) {
	got, err := solve.Solutions(consTwin(), nil)
	require.NoError(t, err)
	assert.Equal(t, twinBoards(), got)

	cons := consTwin()
	for _, b := range got {
		assert.True(t, b.Satisfies(cons))
	}
}

func TestSolutions_NilVisitorUnreachable(t *testing.T) {
	// Solutions always supplies its own visitor; a contradictory puzzle
	// therefore yields an empty set and no error.
	got, err := solve.Solutions(consContradictory(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
