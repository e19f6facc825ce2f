// Package gen implements the crossword layout generator: a randomized
// backtracking search that places a word set on a rectangular grid so
// that every word beyond the first crosses an earlier one, with bounded
// restarts. Generation either yields a layout covering the full word set
// or reports that the budget ran out; the caller decides whether to retry
// with a different word subset.
package gen

import (
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/palabrota/crucigrama/board"
	"github.com/palabrota/crucigrama/word"
)

// MaxRestarts bounds how many times Generate reshuffles the word order
// and starts over from an empty grid before giving up.
const MaxRestarts = 600

// seedOffsets are the perturbations tried around the board center when
// placing the first word, applied independently to row and column.
var seedOffsets = [5]int{0, -1, 1, -2, 2}

// Rand is the slice of randomness the engine needs: everything here is
// driven by shuffles. Both *frand.RNG and *math/rand.Rand satisfy it;
// tests inject a seeded source to pin down layouts.
type Rand interface {
	Shuffle(n int, swap func(i, j int))
}

// Generator places word sets on grids. It carries no state between calls
// other than its random source, so a single Generator is safe to reuse
// sequentially; for concurrent generation give each goroutine its own.
type Generator struct {
	rng Rand
}

func New() *Generator {
	return &Generator{rng: frand.New()}
}

func NewWithRand(rng Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate attempts to place every word on a rows x cols grid. All
// answers must be distinct, non-empty and no longer than max(rows, cols);
// the selection driver guarantees that. It returns (nil, false) once the
// restart budget is spent without a full placement, which is an expected
// outcome for word sets that simply do not pack.
func (g *Generator) Generate(words []word.Word, rows, cols int) (*Layout, bool) {
	if len(words) == 0 {
		return nil, false
	}
	perm := make([]word.Word, len(words))
	for restart := 0; restart < MaxRestarts; restart++ {
		copy(perm, words)
		g.rng.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
		if layout, ok := g.tryOnce(perm, rows, cols); ok {
			log.Debug().Int("restart", restart).Int("words", len(words)).
				Msg("layout placed")
			return layout, true
		}
	}
	log.Debug().Int("restarts", MaxRestarts).Int("words", len(words)).
		Msg("restart budget exhausted")
	return nil, false
}

// tryOnce runs a single restart over an already-shuffled permutation:
// seed the first word near center, then extend by backtracking.
func (g *Generator) tryOnce(perm []word.Word, rows, cols int) (*Layout, bool) {
	grid := board.New(rows, cols)
	placed := make([]Placement, 0, len(perm))
	if !g.placeSeed(grid, &placed, perm[0]) {
		return nil, false
	}
	if !g.extend(grid, &placed, perm, 1) {
		return nil, false
	}
	return finalize(rows, cols, placed), true
}

// directionAt assigns directions by position in the shuffled order:
// Across, Down, Across, ... This looks arbitrary but which layouts are
// reachable depends on it; do not tie it to word properties.
func directionAt(idx int) Direction {
	if idx%2 == 0 {
		return Across
	}
	return Down
}

// placeSeed puts the first word near the grid center, straddling it along
// the word's own axis, trying the offset perturbations row-major and
// accepting the first that fits.
func (g *Generator) placeSeed(grid *board.Grid, placed *[]Placement, w word.Word) bool {
	dir := directionAt(0)
	row, col := grid.Rows()/2, grid.Cols()/2
	if dir == Across {
		col -= len(w.Answer) / 2
	} else {
		row -= len(w.Answer) / 2
	}
	for _, dr := range seedOffsets {
		for _, dc := range seedOffsets {
			p := Placement{Word: w, Direction: dir, Row: row + dr, Col: col + dc}
			if legal(grid, p) {
				place(grid, p)
				*placed = append(*placed, p)
				return true
			}
		}
	}
	return false
}

// extend places perm[idx:] depth-first. Candidates are every start cell
// that routes the word through an existing matching letter, tried in
// shuffled order; a failed candidate is unplaced before the next is
// tried, so siblings never see its letters.
func (g *Generator) extend(grid *board.Grid, placed *[]Placement, perm []word.Word, idx int) bool {
	if idx == len(perm) {
		return true
	}
	w := perm[idx]
	dir := directionAt(idx)
	cands := candidates(grid, w, dir)
	if len(cands) == 0 {
		// nothing on the grid shares a letter with this word
		return false
	}
	g.rng.Shuffle(len(cands), func(i, j int) { cands[i], cands[j] = cands[j], cands[i] })
	for _, start := range cands {
		p := Placement{Word: w, Direction: dir, Row: start.Row, Col: start.Col}
		if !legal(grid, p) {
			continue
		}
		if countOverlaps(grid, p) == 0 {
			// every word beyond the seed must cross something
			continue
		}
		touched := place(grid, p)
		*placed = append(*placed, p)
		if g.extend(grid, placed, perm, idx+1) {
			return true
		}
		*placed = (*placed)[:len(*placed)-1]
		unplace(grid, touched)
	}
	return false
}

// candidates scans every occupied cell whose letter occurs somewhere in
// the word and walks back to the start cell that would route the word
// through it. The same start cell can show up more than once when
// several letters match; the duplicates are harmless retries.
func candidates(grid *board.Grid, w word.Word, dir Direction) []Cell {
	var out []Cell
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			letter := grid.Letter(r, c)
			if letter == board.Empty {
				continue
			}
			for j := 0; j < len(w.Answer); j++ {
				if w.Answer[j] != letter {
					continue
				}
				if dir == Across {
					out = append(out, Cell{Row: r, Col: c - j})
				} else {
					out = append(out, Cell{Row: r - j, Col: c})
				}
			}
		}
	}
	return out
}

// legal applies the placement rules: the word stays in bounds, keeps a
// gap before and after its span, agrees with every letter already on the
// grid, and never lays a fresh letter directly alongside a parallel word.
func legal(grid *board.Grid, p Placement) bool {
	n := len(p.Word.Answer)
	dr, dc := p.Direction.deltas()
	endR, endC := p.Row+dr*(n-1), p.Col+dc*(n-1)
	if !grid.PosExists(p.Row, p.Col) || !grid.PosExists(endR, endC) {
		return false
	}
	if !grid.IsEmpty(p.Row-dr, p.Col-dc) || !grid.IsEmpty(endR+dr, endC+dc) {
		return false
	}
	for j := 0; j < n; j++ {
		r, c := p.Row+dr*j, p.Col+dc*j
		letter := grid.Letter(r, c)
		if letter != board.Empty {
			if letter != p.Word.Answer[j] {
				return false
			}
			continue
		}
		// a fresh letter with an occupied perpendicular neighbor would
		// create an unintended word fragment
		if !grid.IsEmpty(r-dc, c-dr) || !grid.IsEmpty(r+dc, c+dr) {
			return false
		}
	}
	return true
}

func countOverlaps(grid *board.Grid, p Placement) int {
	dr, dc := p.Direction.deltas()
	overlaps := 0
	for j := 0; j < len(p.Word.Answer); j++ {
		if grid.Letter(p.Row+dr*j, p.Col+dc*j) != board.Empty {
			overlaps++
		}
	}
	return overlaps
}

// place writes the word's letters and returns the cells it actually
// introduced; cells already holding the (matching) letter are left alone
// so unplace never erases another word's letters.
func place(grid *board.Grid, p Placement) []Cell {
	dr, dc := p.Direction.deltas()
	var touched []Cell
	for j := 0; j < len(p.Word.Answer); j++ {
		r, c := p.Row+dr*j, p.Col+dc*j
		if grid.Letter(r, c) == board.Empty {
			grid.SetLetter(r, c, p.Word.Answer[j])
			touched = append(touched, Cell{Row: r, Col: c})
		}
	}
	return touched
}

func unplace(grid *board.Grid, touched []Cell) {
	for _, cell := range touched {
		grid.ClearLetter(cell.Row, cell.Col)
	}
}
