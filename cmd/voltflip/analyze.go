package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/voltflip/board"
	"github.com/katalvlaran/voltflip/internal/cli"
	"github.com/katalvlaran/voltflip/solve"
)

var (
	analyzeRows        string
	analyzeRowSpecials string
	analyzeCols        string
	analyzeColSpecials string
	analyzeOpens       []string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "One-shot analysis of a position",
	Long: `Analyze a position without starting a session: print the number of
possible boards, the full safety ranking of the hidden cells, and the
recommended flip. Exits non-zero when no board satisfies the inputs.

Examples:
  voltflip analyze --rows 8,5,5,9,5 --row-specials 0,1,2,1,1 \
                   --cols 7,6,9,6,4 --col-specials 1,1,1,1,1
  voltflip analyze --rows 4,4,5,5,5 --row-specials 1,1,0,0,0 \
                   --cols 4,4,5,5,5 --col-specials 1,1,0,0,0 \
                   --open 0,0=0 --open 0,1=1`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeRows, "rows", "", "five row sums, comma-separated")
	analyzeCmd.Flags().StringVar(&analyzeRowSpecials, "row-specials", "", "five row special counts, comma-separated")
	analyzeCmd.Flags().StringVar(&analyzeCols, "cols", "", "five column sums, comma-separated")
	analyzeCmd.Flags().StringVar(&analyzeColSpecials, "col-specials", "", "five column special counts, comma-separated")
	analyzeCmd.Flags().StringArrayVar(&analyzeOpens, "open", nil, "revealed cell as row,col=value (repeatable)")
	_ = analyzeCmd.MarkFlagRequired("rows")
	_ = analyzeCmd.MarkFlagRequired("row-specials")
	_ = analyzeCmd.MarkFlagRequired("cols")
	_ = analyzeCmd.MarkFlagRequired("col-specials")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cons, err := flagConstraints(analyzeRows, analyzeRowSpecials, analyzeCols, analyzeColSpecials)
	if err != nil {
		return err
	}

	rev := make(board.Revealed, len(analyzeOpens))
	for _, open := range analyzeOpens {
		at, v, parseErr := cli.ParseOpen(open)
		if parseErr != nil {
			return parseErr
		}
		rev[at] = v
	}

	if err = board.Validate(cons, rev); err != nil {
		return err
	}

	a, err := solve.Posterior(cons, rev, solve.WithMaxBoards(cfg.MaxBoards))
	if err != nil {
		if errors.Is(err, solve.ErrNoSolution) {
			return fmt.Errorf("inputs are jointly contradictory: %w", err)
		}

		return err
	}
	logger.Debug("analyzed position",
		zap.Int("boards", a.Boards),
		zap.Bool("truncated", a.Truncated),
		zap.Int("revealed", len(rev)))

	out := cmd.OutOrStdout()
	rd := cli.Renderer{Color: !cfg.NoColor}
	if len(rev) > 0 {
		fmt.Fprintf(out, "%s\n\n", rd.Grid(rev))
	}
	fmt.Fprintf(out, "boards: %d\n", a.Boards)
	if a.Truncated {
		fmt.Fprintln(out, rd.Dim("enumeration capped; statistics cover a prefix of the solutions"))
	}

	fmt.Fprintln(out, rd.Title("cells, safest first:"))
	fmt.Fprintln(out, rd.SafestList(a.Safest(0)))

	rec, err := a.Recommend()
	if errors.Is(err, solve.ErrNoCells) {
		fmt.Fprintln(out, "every cell is already revealed")

		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "recommended flip: %s\n", rd.CellLine(rec))

	return nil
}
