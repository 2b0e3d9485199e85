// Package board models the fixed 5×5 flip-puzzle grid: cell values,
// coordinates, per-line (sum, special-count) constraints, revealed cells,
// and full board assignments.
//
// What:
//
//   - Board is a complete 5×5 assignment of values in {0,1,2,3}, where 0 is
//     the "special" (bomb) value and 1–3 are ordinary point values.
//   - Line pairs a target sum with a target special-count for one row or
//     column; Constraints carries the five row Lines and five column Lines.
//   - Revealed is the sparse set of cells the player has already flipped.
//   - Validate checks a puzzle's constraints and revealed cells for the
//     consistency preconditions the solver assumes.
//
// Why:
//
//   - Deduction assistants: every solver stage (pattern generation, board
//     enumeration, posterior aggregation) speaks in these types.
//   - The data model is deliberately value-typed: Board and Row are arrays,
//     so handing a board to a callback copies it and no aliasing escapes
//     the enumeration engine.
//
// Invariants:
//
//   - Cell values lie in [Special, MaxPoints]; coordinates lie in the 5×5
//     grid; Board.Satisfies is the single source of truth for "valid board".
//   - A Line is achievable iff Specials ∈ [0,5] and Sum ∈ [MinSum, MaxSum],
//     every non-special cell contributing at least 1 and at most 3.
//
// Errors:
//
//   - ErrValueRange: a cell value outside {0..3}.
//   - ErrCoordRange: a coordinate outside the grid.
//   - ErrSpecialsRange: a line's special-count outside [0,5].
//   - ErrLineUnreachable: a line's sum not achievable for its special-count.
//   - ErrSumMismatch / ErrSpecialsMismatch: row vs column totals disagree.
package board
