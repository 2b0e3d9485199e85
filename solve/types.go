// Package solve defines types, options, and sentinel errors for the
// exact flip-puzzle solver.
package solve

import (
	"errors"

	"github.com/katalvlaran/voltflip/board"
)

var (
	// ErrNoSolution is returned by Posterior when no board satisfies the
	// constraints together with the revealed cells. It is the designated
	// contradiction signal; probabilities are never fabricated for an
	// empty solution set.
	ErrNoSolution = errors.New("solve: no board satisfies the constraints")

	// ErrNoCells is returned by Recommend when every cell is already
	// revealed and nothing remains to rank.
	ErrNoCells = errors.New("solve: no unopened cells remain")

	// ErrNilVisitor is returned by Enumerate when the visitor callback
	// is nil.
	ErrNilVisitor = errors.New("solve: nil visitor")
)

// Visitor receives each constraint-satisfying board during enumeration.
// The board argument is a value copy; retaining it is safe. Returning
// false stops the enumeration after the current board.
type Visitor func(board.Board) bool

// Option configures optional behavior of the enumeration.
// Use with Enumerate(cons, rev, visit, opts...) or Posterior(cons, rev, opts...).
type Option func(*Options)

// Options holds configurable parameters for enumeration and aggregation.
// The zero configuration (via DefaultOptions) enumerates everything and
// observes nothing.
type Options struct {
	// MaxBoards, if positive, stops the enumeration once that many boards
	// have been visited. 0 means unlimited. A run that hits the cap may be
	// incomplete; Posterior reports this through Analysis.Truncated.
	MaxBoards int

	// OnBoard, if non-nil, is invoked for every accepted board before the
	// visitor sees it. Intended for observation (logging, counting); it
	// cannot stop the walk.
	OnBoard func(board.Board)
}

// DefaultOptions returns an Options struct with:
//   - No enumeration cap (MaxBoards = 0)
//   - No observation hook
func DefaultOptions() Options {
	return Options{
		MaxBoards: 0,
		OnBoard:   nil,
	}
}

// WithMaxBoards returns an Option that caps the enumeration at n boards.
// Non-positive n means unlimited.
func WithMaxBoards(n int) Option {
	return func(o *Options) {
		o.MaxBoards = n
	}
}

// WithOnBoard returns an Option that installs fn as a per-board
// observation hook.
func WithOnBoard(fn func(board.Board)) Option {
	return func(o *Options) {
		o.OnBoard = fn
	}
}

// Stats aggregates one hidden cell's outcomes across every enumerated
// board. Counts is exact; Prob and EV are the derived ratios.
type Stats struct {
	// Counts[v] is the number of enumerated boards in which the cell
	// holds value v. The counts always total Analysis.Boards.
	Counts [board.NumValues]int

	// Prob[v] is Counts[v] divided by the board total. The entries sum
	// to 1 up to floating-point rounding.
	Prob [board.NumValues]float64

	// EV is the expected point value of flipping the cell,
	// Σ v·Prob[v] over v in 1..3. Specials contribute zero.
	EV float64
}

// PSpecial returns the probability that the cell hides a special (bomb).
// Complexity: O(1).
func (s Stats) PSpecial() float64 {
	return s.Prob[board.Special]
}

// points is the exact integer numerator of EV: Σ v·Counts[v].
// Recommend compares points instead of EV so ties never depend on
// floating-point rounding.
func (s Stats) points() int {
	var sum int
	for v := board.MinPoints; v <= board.MaxPoints; v++ {
		sum += v * s.Counts[v]
	}

	return sum
}

// Analysis is the posterior over every hidden cell, produced by Posterior.
type Analysis struct {
	// Boards is the number of constraint-satisfying boards the analysis
	// is built from. Always positive; zero boards yields ErrNoSolution
	// instead of an Analysis.
	Boards int

	// Cells maps each unopened coordinate to its Stats. Revealed
	// coordinates do not appear.
	Cells map[board.Coord]Stats

	// Truncated reports that the MaxBoards cap stopped the enumeration,
	// so the analysis may cover only a prefix of the solution set.
	Truncated bool
}

// Recommendation pairs the cell to flip next with its posterior Stats,
// so callers can display the bomb probability and expected value behind
// the advice.
type Recommendation struct {
	Coord board.Coord
	Stats Stats
}
