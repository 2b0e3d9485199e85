package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/voltflip/board"
)

// ErrInputClosed indicates the input ended before the constraints were
// fully entered.
var ErrInputClosed = errors.New("cli: input closed")

// PromptConstraints interactively collects the four constraint vectors
// and validates them as a whole, re-prompting until the puzzle passes
// board.Validate. The reader is shared with the session that follows, so
// it must be the process's single buffering layer over stdin.
func PromptConstraints(in *bufio.Reader, out io.Writer) (board.Constraints, error) {
	for {
		rowSums, err := promptVector(in, out, "row sums")
		if err != nil {
			return board.Constraints{}, err
		}
		rowSpecials, err := promptVector(in, out, "row specials")
		if err != nil {
			return board.Constraints{}, err
		}
		colSums, err := promptVector(in, out, "column sums")
		if err != nil {
			return board.Constraints{}, err
		}
		colSpecials, err := promptVector(in, out, "column specials")
		if err != nil {
			return board.Constraints{}, err
		}

		cons := Constraints(rowSums, rowSpecials, colSums, colSpecials)
		if err := board.Validate(cons, nil); err != nil {
			fmt.Fprintf(out, "invalid puzzle: %v; start over\n", err)

			continue
		}

		return cons, nil
	}
}

// promptVector asks for one five-number vector until it parses.
func promptVector(in *bufio.Reader, out io.Writer, name string) ([board.Size]int, error) {
	for {
		fmt.Fprintf(out, "%s (five comma-separated numbers): ", name)
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) {
				return [board.Size]int{}, ErrInputClosed
			}

			return [board.Size]int{}, err
		}
		v, parseErr := ParseVector5(line)
		if parseErr != nil {
			fmt.Fprintf(out, "%v\n", parseErr)

			continue
		}

		return v, nil
	}
}
