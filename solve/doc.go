// Package solve computes exact per-cell posteriors for 5×5 flip puzzles:
// which boards remain possible given the published line constraints and the
// cells already revealed, and how likely each hidden cell is to hold each
// value.
//
// What:
//
//   - RowPatterns generates every length-5 row realizing one (sum,
//     special-count) Line.
//   - Enumerate walks every full board consistent with all ten Lines and
//     the revealed cells, streaming each one to a visitor callback;
//     Solutions collects them eagerly.
//   - Posterior folds the enumeration into an Analysis: per hidden cell,
//     exact counts, probabilities P(0..3), and the expected point value.
//   - Analysis.Recommend and Analysis.Safest rank hidden cells by safety.
//
// How:
//
//   - Per-row candidate patterns are precomputed and filtered against the
//     revealed cells, then a row-by-row depth-first search places one
//     pattern per row, pruning on running column sums and special counts:
//     a partial stack survives only while every column can still reach its
//     targets with the rows that remain.
//   - Enumeration is exhaustive and exact. No sampling, no heuristics, no
//     caching across calls, no internal concurrency; every call stands
//     alone, so identical inputs always produce identical results.
//
// Determinism:
//
//   - Boards are visited in lexicographic order of their cell values
//     (row-major, with 0 < 1 < 2 < 3), and ties in the safety ranking
//     break toward the lowest row-major coordinate. Callers can rely on
//     byte-identical output across runs.
//
// Errors:
//
//   - ErrNoSolution: no board satisfies the inputs (contradictory or
//     over-constrained puzzles; Posterior only).
//   - ErrNoCells: every cell is already revealed, so there is nothing to
//     recommend.
//   - ErrNilVisitor: Enumerate was handed a nil callback.
//
// Zero boards is the designated contradiction signal: probabilities are
// never fabricated and nothing divides by the board count before checking
// it. Input validation (value ranges, line achievability, totals
// conservation) is the caller's job via board.Validate; the solver treats
// unvalidated garbage as just another puzzle with zero solutions.
package solve
