package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/voltflip/board"
	"github.com/katalvlaran/voltflip/internal/config"
	"github.com/katalvlaran/voltflip/solve"
)

// Session drives one interactive game: analyze the position, list the
// safest cells, ask what the recommended flip revealed, repeat. Reader
// and writer are injected so the loop is testable with a scripted
// transcript.
type Session struct {
	cons board.Constraints
	rev  board.Revealed
	cfg  config.Config
	log  *zap.Logger
	sc   *bufio.Scanner
	out  io.Writer
	rd   Renderer
}

// New builds a session over validated constraints. A nil logger is
// replaced with a no-op one.
func New(cons board.Constraints, cfg config.Config, log *zap.Logger, in io.Reader, out io.Writer) *Session {
	if log == nil {
		log = zap.NewNop()
	}

	return &Session{
		cons: cons,
		rev:  make(board.Revealed),
		cfg:  cfg,
		log:  log,
		sc:   bufio.NewScanner(in),
		out:  out,
		rd:   Renderer{Color: !cfg.NoColor},
	}
}

// Reveal seeds the session with already-known cells, for resuming a game
// in progress.
func (s *Session) Reveal(at board.Coord, v int) {
	s.rev[at] = v
}

// Run loops until the player quits, hits a bomb, clears the board, or
// the inputs turn out contradictory. Only I/O failures return an error.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, s.rd.Title("voltflip assistant"))
	for {
		fmt.Fprintf(s.out, "\n%s\n", s.rd.Grid(s.rev))

		start := time.Now()
		a, err := solve.Posterior(s.cons, s.rev, solve.WithMaxBoards(s.cfg.MaxBoards))
		if errors.Is(err, solve.ErrNoSolution) {
			fmt.Fprintln(s.out, "no board fits these constraints and reveals; check the inputs")

			return nil
		}
		if err != nil {
			return err
		}
		s.log.Debug("analyzed position",
			zap.Int("boards", a.Boards),
			zap.Bool("truncated", a.Truncated),
			zap.Int("revealed", len(s.rev)),
			zap.Duration("elapsed", time.Since(start)))

		fmt.Fprintln(s.out, s.rd.Dim(fmt.Sprintf("%d possible board(s)", a.Boards)))
		if a.Truncated {
			fmt.Fprintln(s.out, s.rd.Dim("enumeration capped; statistics cover a prefix of the solutions"))
		}

		rec, err := a.Recommend()
		if errors.Is(err, solve.ErrNoCells) {
			fmt.Fprintln(s.out, "board cleared, nothing left to flip")

			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(s.out, s.rd.Title("safest cells"))
		fmt.Fprintln(s.out, s.rd.SafestList(a.Safest(s.cfg.TopSafest)))
		fmt.Fprintf(s.out, "flip (%d,%d) — value [0-3], or q to quit: ", rec.Coord.Row, rec.Coord.Col)

		v, quit, err := s.readValue()
		if err != nil {
			return err
		}
		if quit {
			fmt.Fprintln(s.out, "bye")

			return nil
		}

		s.rev[rec.Coord] = v
		if v == board.Special {
			fmt.Fprintf(s.out, "\n%s\n", s.rd.Grid(s.rev))
			fmt.Fprintln(s.out, "bomb — game over")

			return nil
		}
		if len(s.rev) == board.Size*board.Size {
			fmt.Fprintf(s.out, "\n%s\n", s.rd.Grid(s.rev))
			fmt.Fprintln(s.out, "board cleared, nothing left to flip")

			return nil
		}
	}
}

// readValue reads lines until one is a valid cell value or a quit. EOF
// counts as quitting, so piped transcripts end cleanly.
func (s *Session) readValue() (v int, quit bool, err error) {
	for {
		if !s.sc.Scan() {
			if err := s.sc.Err(); err != nil {
				return 0, false, err
			}

			return 0, true, nil
		}
		t := strings.TrimSpace(s.sc.Text())
		if strings.EqualFold(t, "q") {
			return 0, true, nil
		}
		if n, convErr := strconv.Atoi(t); convErr == nil && board.ValidValue(n) {
			return n, false, nil
		}
		fmt.Fprint(s.out, "enter 0, 1, 2, 3, or q: ")
	}
}
