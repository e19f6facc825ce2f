// Package board implements the letter grid a single generation attempt
// works on. The grid is scratch state: the engine fills it during
// backtracking and throws it away once the finished layout has been read
// back out as entries.
package board

import "strings"

// Empty marks a cell with no letter on it.
const Empty byte = 0

// Grid is a rows x cols matrix of letters.
type Grid struct {
	rows, cols int
	cells      []byte
}

func New(rows, cols int) *Grid {
	return &Grid{rows: rows, cols: cols, cells: make([]byte, rows*cols)}
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// PosExists reports whether row/col is on the board.
func (g *Grid) PosExists(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) Letter(row, col int) byte {
	return g.cells[row*g.cols+col]
}

func (g *Grid) SetLetter(row, col int, letter byte) {
	g.cells[row*g.cols+col] = letter
}

func (g *Grid) ClearLetter(row, col int) {
	g.cells[row*g.cols+col] = Empty
}

// IsEmpty reports whether the cell at row/col holds no letter.
// Out-of-bounds cells count as empty, which keeps the adjacency checks in
// the engine free of border special cases.
func (g *Grid) IsEmpty(row, col int) bool {
	return !g.PosExists(row, col) || g.cells[row*g.cols+col] == Empty
}

// String renders the grid with dots for empty cells. Debug display only.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			letter := g.Letter(r, c)
			if letter == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(letter)
			}
			if c < g.cols-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
