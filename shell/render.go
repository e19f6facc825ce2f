package shell

import (
	"strings"

	"github.com/palabrota/crucigrama/gen"
)

// renderGrid draws the layout with '#' for cells outside the puzzle.
// letters supplies the character shown in a puzzle cell; zero means the
// cell is still blank and renders as '.'.
func renderGrid(l *gen.Layout, letters func(gen.Cell) byte) string {
	inPuzzle := make(map[gen.Cell]bool)
	for _, e := range l.Entries {
		for _, cell := range e.Cells() {
			inPuzzle[cell] = true
		}
	}
	var sb strings.Builder
	for r := 0; r < l.Rows; r++ {
		for c := 0; c < l.Cols; c++ {
			cell := gen.Cell{Row: r, Col: c}
			switch {
			case !inPuzzle[cell]:
				sb.WriteByte('#')
			case letters(cell) == 0:
				sb.WriteByte('.')
			default:
				sb.WriteByte(letters(cell))
			}
			if c < l.Cols-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
