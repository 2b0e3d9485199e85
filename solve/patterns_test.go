package solve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voltflip/board"
	"github.com/katalvlaran/voltflip/solve"
)

// bruteRows filters all 4^5 value assignments down to those realizing
// the line. The independent oracle the generator is checked against.
func bruteRows(line board.Line) []board.Row {
	var out []board.Row
	total := 1
	for i := 0; i < board.Size; i++ {
		total *= board.NumValues
	}
	for code := 0; code < total; code++ {
		var row board.Row
		c := code
		for i := board.Size - 1; i >= 0; i-- {
			row[i] = c % board.NumValues
			c /= board.NumValues
		}
		sum, specials := 0, 0
		for _, v := range row {
			if v == board.Special {
				specials++
			} else {
				sum += v
			}
		}
		if sum == line.Sum && specials == line.Specials {
			out = append(out, row)
		}
	}

	return out
}

func TestRowPatterns_MatchesBruteForce(t *testing.T) {
	// Every feasible line, and a margin of infeasible ones around them.
	for specials := 0; specials <= board.Size; specials++ {
		for sum := 0; sum <= board.Size*board.MaxPoints+1; sum++ {
			line := board.Line{Sum: sum, Specials: specials}
			want := bruteRows(line)
			got := solve.RowPatterns(line)
			require.Len(t, got, len(want), "line %+v", line)
			// bruteRows ascends in row-major value order, matching the
			// generator's documented emission order exactly.
			assert.Equal(t, want, got, "line %+v", line)
		}
	}
}

func TestRowPatterns_EveryPatternRealizesLine(t *testing.T) {
	line := board.Line{Sum: 7, Specials: 2}
	pats := solve.RowPatterns(line)
	require.NotEmpty(t, pats)
	for _, p := range pats {
		sum, specials := 0, 0
		for _, v := range p {
			require.True(t, board.ValidValue(v))
			if v == board.Special {
				specials++
			} else {
				sum += v
			}
		}
		assert.Equal(t, line.Sum, sum)
		assert.Equal(t, line.Specials, specials)
	}
}

func TestRowPatterns_KnownSmallCases(t *testing.T) {
	cases := []struct {
		name string
		line board.Line
		want int
	}{
		{"AllSpecials", board.Line{Sum: 0, Specials: 5}, 1},
		{"AllOnes", board.Line{Sum: 5, Specials: 0}, 1},
		{"AllThrees", board.Line{Sum: 15, Specials: 0}, 1},
		{"OneBombRestOnes", board.Line{Sum: 4, Specials: 1}, 5},
		{"TwoOpenSummingFive", board.Line{Sum: 5, Specials: 3}, 20},
		{"SumTooHigh", board.Line{Sum: 16, Specials: 0}, 0},
		{"SumTooLowForOpenCells", board.Line{Sum: 2, Specials: 2}, 0},
		{"NegativeSpecials", board.Line{Sum: 5, Specials: -1}, 0},
		{"TooManySpecials", board.Line{Sum: 0, Specials: 6}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, solve.RowPatterns(tc.line), tc.want)
		})
	}
}

func TestRowPatterns_DeterministicOrder(t *testing.T) {
	want := []board.Row{
		{0, 1, 1, 1, 1},
		{1, 0, 1, 1, 1},
		{1, 1, 0, 1, 1},
		{1, 1, 1, 0, 1},
		{1, 1, 1, 1, 0},
	}
	assert.Equal(t, want, solve.RowPatterns(board.Line{Sum: 4, Specials: 1}))
}
