// Package voltflip is an exact-probability assistant for 5×5 flip
// puzzles: boards of hidden cells worth 0–3 points, where 0 is a bomb,
// published only through per-row and per-column (sum, bomb-count) pairs.
//
// 🚀 What is voltflip?
//
//	A library plus CLI that answers one question precisely: given the
//	constraints and the cells already flipped, what are the odds?
//		• board/ — the data model: values, coordinates, lines, boards,
//		  revealed cells, puzzle validation, plain-text rendering
//		• solve/ — the core: row-pattern generation, pruned exhaustive
//		  board enumeration, per-cell posteriors, safest-flip ranking
//		• cmd/voltflip — the assistant: interactive play and one-shot
//		  analyze commands
//
// ✨ Why choose voltflip?
//
//   - Exact, not estimated – every consistent board is enumerated, so the
//     probabilities are true posteriors, never samples or heuristics
//   - Deterministic – identical inputs give identical output, down to the
//     enumeration order and tie-breaks
//   - Library-first – the solver is pure Go with no dependencies; the CLI
//     layers color, config, and logging on top without touching the core
//
// Quick ASCII example:
//
//	· · · · ·   row 0: sum 4, bombs 1
//	· · · · ·   ...
//	· · 2 · ·   a revealed 2 at (2,2) reshapes every cell's odds
//	· · · · ·
//	· · · · ·
//
// Start with solve.Posterior for analysis, Analysis.Recommend for the
// safest next flip, or run the assistant:
//
//	go get github.com/katalvlaran/voltflip
//	voltflip play
package voltflip
