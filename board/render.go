package board

import (
	"strconv"
	"strings"
)

// hiddenCell marks an unopened position in the plain-text rendering.
const hiddenCell = "·"

// Render draws the player's current view of the grid: revealed values where
// known, hiddenCell elsewhere. The colored CLI view builds on top of this
// plain form, which is also what the tests assert against.
// Complexity: O(Size²).
func Render(rev Revealed) string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if v, ok := rev[Coord{Row: r, Col: c}]; ok {
				sb.WriteString(strconv.Itoa(v))
			} else {
				sb.WriteString(hiddenCell)
			}
		}
	}

	return sb.String()
}
