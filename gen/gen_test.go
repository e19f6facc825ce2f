package gen

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"

	"github.com/palabrota/crucigrama/board"
	"github.com/palabrota/crucigrama/word"
)

// both the default and the seeded test source must keep satisfying Rand
var (
	_ Rand = (*frand.RNG)(nil)
	_ Rand = (*rand.Rand)(nil)
)

func wordsFrom(answers ...string) []word.Word {
	ws := make([]word.Word, len(answers))
	for i, a := range answers {
		ws[i] = word.Word{Answer: a, Clue: "clue for " + a}
	}
	return ws
}

func seeded(seed int64) *Generator {
	return NewWithRand(rand.New(rand.NewSource(seed)))
}

// validateLayout replays the layout placement by placement and checks
// every structural property a valid puzzle must have: full coverage,
// bounds, crossings, span gaps, no parallel adjacency, and numbering.
func validateLayout(t *testing.T, layout *Layout, want []word.Word) {
	t.Helper()
	is := is.New(t)

	// coverage: every requested word exactly once
	is.Equal(len(layout.Entries), len(want))
	seen := map[string]int{}
	for _, e := range layout.Entries {
		seen[e.Word.Answer]++
	}
	for _, w := range want {
		is.Equal(seen[w.Answer], 1)
	}

	grid := board.New(layout.Rows, layout.Cols)
	for i, e := range layout.Entries {
		cells := e.Cells()
		for _, cell := range cells {
			is.True(grid.PosExists(cell.Row, cell.Col)) // bounds
		}

		// gap before and after the span along the entry's own axis
		dr, dc := e.Direction.deltas()
		last := cells[len(cells)-1]
		is.True(grid.IsEmpty(e.Row-dr, e.Col-dc))
		is.True(grid.IsEmpty(last.Row+dr, last.Col+dc))

		overlaps := 0
		for j, cell := range cells {
			letter := grid.Letter(cell.Row, cell.Col)
			if letter != board.Empty {
				is.Equal(letter, e.Word.Answer[j]) // crossing letters agree
				overlaps++
				continue
			}
			// fresh letters may not sit beside a parallel word
			is.True(grid.IsEmpty(cell.Row-dc, cell.Col-dr))
			is.True(grid.IsEmpty(cell.Row+dc, cell.Col+dr))
			grid.SetLetter(cell.Row, cell.Col, e.Word.Answer[j])
		}
		if i > 0 {
			is.True(overlaps >= 1) // non-seed entries cross earlier ones
		}

		// directions alternate by placement position
		is.Equal(e.Direction, directionAt(i))
	}

	validateNumbering(t, layout)
}

// validateNumbering checks that numbers follow the row-major scan order
// of distinct start cells and are shared across directions.
func validateNumbering(t *testing.T, layout *Layout) {
	t.Helper()
	is := is.New(t)
	byStart := map[Cell]int{}
	for _, e := range layout.Entries {
		start := Cell{Row: e.Row, Col: e.Col}
		if prev, ok := byStart[start]; ok {
			is.Equal(e.Number, prev) // shared start cell, shared number
		} else {
			byStart[start] = e.Number
		}
		is.Equal(e.Label, e.Direction.prefix()+strconv.Itoa(e.Number))
	}
	prev := 0
	for r := 0; r < layout.Rows; r++ {
		for c := 0; c < layout.Cols; c++ {
			if n, ok := byStart[Cell{Row: r, Col: c}]; ok {
				is.Equal(n, prev+1) // strictly increasing in scan order
				prev = n
			}
		}
	}
}

func TestTwoCrossingWords(t *testing.T) {
	is := is.New(t)
	words := wordsFrom("CAT", "CAR")
	layout, ok := seeded(42).Generate(words, 5, 5)
	is.True(ok)
	validateLayout(t, layout, words)

	// exactly one crossing cell, with a letter both words share
	counts := map[Cell]int{}
	for _, e := range layout.Entries {
		for _, cell := range e.Cells() {
			counts[cell]++
		}
	}
	crossings := 0
	letters := layout.Letters()
	for cell, n := range counts {
		if n == 2 {
			crossings++
			is.True(strings.ContainsRune("CA", rune(letters[cell])))
		}
	}
	is.Equal(crossings, 1)
}

func TestSingleWord(t *testing.T) {
	is := is.New(t)
	words := wordsFrom("CAT")
	layout, ok := seeded(1).Generate(words, 5, 5)
	is.True(ok)
	validateLayout(t, layout, words)
	e := layout.Entries[0]
	is.Equal(e.Direction, Across)
	is.Equal(e.Row, 2) // seed straddles the center row
}

func TestLargerLayout(t *testing.T) {
	words := wordsFrom("CASA", "SALA", "MESA", "SOPA", "PESO", "ROSA", "OSO", "PALA")
	layout, ok := seeded(7).Generate(words, 15, 15)
	if !ok {
		t.Fatal("expected a layout for a richly overlapping word set")
	}
	validateLayout(t, layout, words)
}

func TestDisjointWordsFindNoLayout(t *testing.T) {
	is := is.New(t)
	// no shared letters anywhere, so nothing beyond the seed can cross
	words := wordsFrom("AAAA", "BBBB", "CCCC")
	layout, ok := seeded(3).Generate(words, 9, 9)
	is.True(!ok)
	is.Equal(layout, (*Layout)(nil))
}

func TestEmptyWordList(t *testing.T) {
	is := is.New(t)
	_, ok := seeded(1).Generate(nil, 9, 9)
	is.True(!ok)
}

func TestWordTooLongForBoard(t *testing.T) {
	is := is.New(t)
	// the driver filters these out, but the engine must still fail
	// cleanly rather than place out of bounds
	_, ok := seeded(1).Generate(wordsFrom("ABCDEFGHIJK"), 5, 5)
	is.True(!ok)
}

func TestSeededGenerationIsDeterministic(t *testing.T) {
	is := is.New(t)
	words := wordsFrom("CASA", "SALA", "MESA", "SOPA", "PESO")
	a, ok := seeded(99).Generate(words, 12, 12)
	is.True(ok)
	b, ok := seeded(99).Generate(words, 12, 12)
	is.True(ok)
	is.Equal(a, b)
}

func TestGenerateParallel(t *testing.T) {
	words := wordsFrom("CASA", "SALA", "MESA", "SOPA", "PESO", "ROSA")
	layout, ok := GenerateParallel(context.Background(), words, 12, 12, 4)
	if !ok {
		t.Fatal("expected a layout")
	}
	validateLayout(t, layout, words)
}

func TestParallelGenerator(t *testing.T) {
	words := wordsFrom("CASA", "SALA", "MESA", "SOPA", "PESO")
	layout, ok := ParallelGenerator{Workers: 2}.Generate(words, 12, 12)
	if !ok {
		t.Fatal("expected a layout")
	}
	validateLayout(t, layout, words)
}
