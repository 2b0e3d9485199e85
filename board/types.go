// Package board defines core types and sentinel errors for the 5×5
// flip-puzzle data model.
package board

import "errors"

// Grid geometry and the cell value alphabet. The puzzle is fixed at 5×5;
// other sizes are out of scope by design.
const (
	// Size is the number of rows, the number of columns, and the length of
	// every row pattern.
	Size = 5

	// Special is the bomb value. It contributes 0 to a line's sum and 1 to
	// its special-count.
	Special = 0

	// MinPoints and MaxPoints bound the ordinary (non-special) cell values.
	MinPoints = 1
	MaxPoints = 3

	// NumValues is the size of the cell value alphabet {0..3}; arrays
	// indexed by cell value have this length.
	NumValues = MaxPoints + 1
)

// Sentinel errors for puzzle validation.
var (
	// ErrValueRange indicates a cell value outside {0..3}.
	ErrValueRange = errors.New("board: cell value out of range")
	// ErrCoordRange indicates a coordinate outside the 5×5 grid.
	ErrCoordRange = errors.New("board: coordinate outside the grid")
	// ErrSpecialsRange indicates a line's special-count outside [0,5].
	ErrSpecialsRange = errors.New("board: line special count out of range")
	// ErrLineUnreachable indicates a line's sum cannot be met by its
	// non-special cells.
	ErrLineUnreachable = errors.New("board: line sum not achievable")
	// ErrSumMismatch indicates the row sums and column sums total differently.
	ErrSumMismatch = errors.New("board: row and column sums disagree")
	// ErrSpecialsMismatch indicates the row and column special counts total
	// differently.
	ErrSpecialsMismatch = errors.New("board: row and column special counts disagree")
)

// ValidValue reports whether v is a legal cell value.
// Complexity: O(1).
func ValidValue(v int) bool {
	return v >= Special && v <= MaxPoints
}

// Coord addresses one cell by 0-based row and column.
type Coord struct {
	Row, Col int
}

// InBounds reports whether the coordinate lies within the grid.
// Complexity: O(1).
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Index maps the coordinate to its row-major index: Row*Size + Col.
// Complexity: O(1).
func (c Coord) Index() int {
	return c.Row*Size + c.Col
}

// CoordAt converts a row-major index back to a Coord.
// Complexity: O(1).
func CoordAt(idx int) Coord {
	return Coord{Row: idx / Size, Col: idx % Size}
}

// Line is the published constraint of one row or column: the sum of its
// non-special cells and the count of its special cells.
type Line struct {
	Sum      int
	Specials int
}

// NonSpecials returns the number of ordinary cells the line must hold.
// Complexity: O(1).
func (l Line) NonSpecials() int {
	return Size - l.Specials
}

// MinSum returns the smallest sum the line's non-special cells can produce
// (each contributes at least MinPoints).
// Complexity: O(1).
func (l Line) MinSum() int {
	return l.NonSpecials() * MinPoints
}

// MaxSum returns the largest sum the line's non-special cells can produce
// (each contributes at most MaxPoints).
// Complexity: O(1).
func (l Line) MaxSum() int {
	return l.NonSpecials() * MaxPoints
}

// Achievable reports whether any assignment of the line's cells can meet it:
// Specials must fit in the line, and Sum must lie in [MinSum, MaxSum].
// Complexity: O(1).
func (l Line) Achievable() bool {
	if l.Specials < 0 || l.Specials > Size {
		return false
	}

	return l.Sum >= l.MinSum() && l.Sum <= l.MaxSum()
}

// Constraints carries one puzzle instance's published targets: a Line per
// row and a Line per column. It is constant for the lifetime of a puzzle.
type Constraints struct {
	Rows [Size]Line
	Cols [Size]Line
}

// Row is one horizontal slice of a board: five cell values.
type Row [Size]int

// Board is a complete 5×5 assignment. The zero value is the all-special
// board. Boards are plain arrays: passing one copies it.
type Board [Size][Size]int

// Revealed maps already-flipped cells to their known values. The solver
// treats it as read-only; callers own mutation between turns.
type Revealed map[Coord]int
