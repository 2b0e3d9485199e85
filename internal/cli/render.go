// Package cli implements the interactive assistant behind "voltflip play":
// prompt parsing, the turn loop, and the terminal rendering of boards and
// per-cell statistics.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/voltflip/board"
	"github.com/katalvlaran/voltflip/solve"
)

var (
	// Title style - bold bright cyan
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)

	// Hidden cell - dim gray
	hiddenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	// Revealed point cell - bright green
	pointStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)

	// Revealed special (bomb) cell - bright red
	bombStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	// Safe verdict - green
	safeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	// Risky verdict - yellow
	riskyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226"))

	// Dim secondary info
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// riskyThreshold is the bomb probability above which a listed cell is
// tinted as risky rather than safe.
const riskyThreshold = 0.25

// Renderer draws boards and statistics for the terminal. With Color off
// every method returns plain text, which is also what the tests assert
// against.
type Renderer struct {
	Color bool
}

// Grid renders the player's view of the board, styled when Color is on.
func (rd Renderer) Grid(rev board.Revealed) string {
	if !rd.Color {
		return board.Render(rev)
	}

	var sb strings.Builder
	for r := 0; r < board.Size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < board.Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			v, ok := rev[board.Coord{Row: r, Col: c}]
			switch {
			case !ok:
				sb.WriteString(hiddenStyle.Render("·"))
			case v == board.Special:
				sb.WriteString(bombStyle.Render("0"))
			default:
				sb.WriteString(pointStyle.Render(fmt.Sprintf("%d", v)))
			}
		}
	}

	return sb.String()
}

// Title renders a section heading.
func (rd Renderer) Title(s string) string {
	if !rd.Color {
		return s
	}

	return titleStyle.Render(s)
}

// Dim renders secondary information.
func (rd Renderer) Dim(s string) string {
	if !rd.Color {
		return s
	}

	return dimStyle.Render(s)
}

// CellLine formats one ranked cell as "(r,c) bomb 12.5%  ev 1.75",
// tinted by its risk when Color is on.
func (rd Renderer) CellLine(rec solve.Recommendation) string {
	line := fmt.Sprintf("(%d,%d)  bomb %5.1f%%  ev %.2f",
		rec.Coord.Row, rec.Coord.Col, 100*rec.Stats.PSpecial(), rec.Stats.EV)
	if !rd.Color {
		return line
	}
	if rec.Stats.PSpecial() > riskyThreshold {
		return riskyStyle.Render(line)
	}

	return safeStyle.Render(line)
}

// SafestList renders the ranked listing, one cell per line.
func (rd Renderer) SafestList(list []solve.Recommendation) string {
	lines := make([]string, len(list))
	for i, rec := range list {
		lines[i] = fmt.Sprintf("%2d. %s", i+1, rd.CellLine(rec))
	}

	return strings.Join(lines, "\n")
}
