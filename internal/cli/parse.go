package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/voltflip/board"
)

var (
	// ErrVectorShape indicates a constraint vector without exactly five
	// comma-separated integers.
	ErrVectorShape = errors.New("cli: expected five comma-separated integers")
	// ErrOpenShape indicates a revealed-cell argument not of the form
	// "row,col=value".
	ErrOpenShape = errors.New("cli: expected row,col=value")
)

// ParseVector5 parses "8,5,5,9,5" into its five integers. Spaces around
// the numbers are tolerated.
func ParseVector5(s string) ([board.Size]int, error) {
	var out [board.Size]int
	parts := strings.Split(s, ",")
	if len(parts) != board.Size {
		return out, fmt.Errorf("%q: %w", s, ErrVectorShape)
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return out, fmt.Errorf("%q: %w", s, ErrVectorShape)
		}
		out[i] = n
	}

	return out, nil
}

// ParseOpen parses one revealed-cell argument, "row,col=value", into its
// coordinate and value. Ranges are left to board.Validate.
func ParseOpen(s string) (board.Coord, int, error) {
	at, val, ok := strings.Cut(s, "=")
	if !ok {
		return board.Coord{}, 0, fmt.Errorf("%q: %w", s, ErrOpenShape)
	}
	rc := strings.Split(at, ",")
	if len(rc) != 2 {
		return board.Coord{}, 0, fmt.Errorf("%q: %w", s, ErrOpenShape)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rc[0]))
	if err != nil {
		return board.Coord{}, 0, fmt.Errorf("%q: %w", s, ErrOpenShape)
	}
	c, err := strconv.Atoi(strings.TrimSpace(rc[1]))
	if err != nil {
		return board.Coord{}, 0, fmt.Errorf("%q: %w", s, ErrOpenShape)
	}
	v, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return board.Coord{}, 0, fmt.Errorf("%q: %w", s, ErrOpenShape)
	}

	return board.Coord{Row: r, Col: c}, v, nil
}

// Constraints assembles a board.Constraints from the four parsed vectors.
func Constraints(rowSums, rowSpecials, colSums, colSpecials [board.Size]int) board.Constraints {
	var cons board.Constraints
	for i := 0; i < board.Size; i++ {
		cons.Rows[i] = board.Line{Sum: rowSums[i], Specials: rowSpecials[i]}
		cons.Cols[i] = board.Line{Sum: colSums[i], Specials: colSpecials[i]}
	}

	return cons
}
