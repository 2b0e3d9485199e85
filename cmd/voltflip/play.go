package main

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/voltflip/board"
	"github.com/katalvlaran/voltflip/internal/cli"
)

var (
	playRows        string
	playRowSpecials string
	playCols        string
	playColSpecials string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive assistant: flip, report, repeat",
	Long: `Play a puzzle with the assistant. Enter the row and column
constraints (or pass them as flags), then follow the advice: each turn
shows the board, the number of possible solutions, the safest cells, and
asks what the recommended flip revealed.

Examples:
  voltflip play
  voltflip play --rows 8,5,5,9,5 --row-specials 0,1,2,1,1 \
                --cols 7,6,9,6,4 --col-specials 1,1,1,1,1`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playRows, "rows", "", "five row sums, comma-separated")
	playCmd.Flags().StringVar(&playRowSpecials, "row-specials", "", "five row special counts, comma-separated")
	playCmd.Flags().StringVar(&playCols, "cols", "", "five column sums, comma-separated")
	playCmd.Flags().StringVar(&playColSpecials, "col-specials", "", "five column special counts, comma-separated")
}

func runPlay(cmd *cobra.Command, args []string) error {
	in := bufio.NewReader(os.Stdin)
	out := cmd.OutOrStdout()

	var (
		cons board.Constraints
		err  error
	)
	if playRows != "" || playRowSpecials != "" || playCols != "" || playColSpecials != "" {
		cons, err = flagConstraints(playRows, playRowSpecials, playCols, playColSpecials)
		if err != nil {
			return err
		}
		if err = board.Validate(cons, nil); err != nil {
			return err
		}
	} else {
		cons, err = cli.PromptConstraints(in, out)
		if err != nil {
			return err
		}
	}

	logger.Debug("starting session")

	return cli.New(cons, cfg, logger, in, out).Run()
}

// flagConstraints assembles Constraints from the four vector flags; all
// four must be present together.
func flagConstraints(rows, rowSpecials, cols, colSpecials string) (board.Constraints, error) {
	rs, err := cli.ParseVector5(rows)
	if err != nil {
		return board.Constraints{}, err
	}
	rsp, err := cli.ParseVector5(rowSpecials)
	if err != nil {
		return board.Constraints{}, err
	}
	cs, err := cli.ParseVector5(cols)
	if err != nil {
		return board.Constraints{}, err
	}
	csp, err := cli.ParseVector5(colSpecials)
	if err != nil {
		return board.Constraints{}, err
	}

	return cli.Constraints(rs, rsp, cs, csp), nil
}
