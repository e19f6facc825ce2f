package shell

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/palabrota/crucigrama/gen"
	"github.com/palabrota/crucigrama/pick"
	"github.com/palabrota/crucigrama/session"
	"github.com/palabrota/crucigrama/tier"
	"github.com/palabrota/crucigrama/word"
)

func testController(t *testing.T) (*ShellController, *bytes.Buffer, *gen.Layout) {
	t.Helper()
	is := is.New(t)
	words := []word.Word{
		{Answer: "CAT", Clue: "feline"},
		{Answer: "CAR", Clue: "vehicle"},
	}
	layout, ok := gen.NewWithRand(rand.New(rand.NewSource(42))).Generate(words, 5, 5)
	is.True(ok)
	var buf bytes.Buffer
	sc := &ShellController{
		out:    &buf,
		tier:   tier.Basic,
		result: &pick.Result{Tier: tier.Basic, Layout: layout},
		sess:   session.New(layout, tier.Basic),
	}
	return sc, &buf, layout
}

func TestAnswerFillsEntry(t *testing.T) {
	is := is.New(t)
	sc, buf, layout := testController(t)
	e := layout.Entries[0]
	sc.answer([]string{strings.ToLower(e.Label), e.Word.Answer})
	for j, cell := range e.Cells() {
		letter, ok := sc.sess.Letter(cell.Row, cell.Col)
		is.True(ok)
		is.Equal(letter, e.Word.Answer[j])
	}
	is.True(strings.Contains(buf.String(), "#")) // grid re-rendered
}

func TestAnswerRejectsBadInput(t *testing.T) {
	is := is.New(t)
	sc, buf, layout := testController(t)
	sc.answer([]string{"Z9", "CAT"})
	is.True(strings.Contains(buf.String(), "no entry Z9"))
	buf.Reset()
	e := layout.Entries[0]
	sc.answer([]string{e.Label, "TOOLONGWORD"})
	is.True(strings.Contains(buf.String(), "needs"))
}

func TestAnswerShowsGridWhenSolveLandsMidWord(t *testing.T) {
	is := is.New(t)
	sc, buf, layout := testController(t)

	// fill everything except the first entry's start cell, so answering
	// that entry completes the puzzle before its last letter is set
	first := layout.Entries[0]
	solution := layout.Letters()
	for cell, letter := range solution {
		if cell.Row == first.Row && cell.Col == first.Col {
			continue
		}
		is.NoErr(sc.sess.SetCell(cell.Row, cell.Col, letter))
	}

	buf.Reset()
	sc.answer([]string{first.Label, first.Word.Answer})
	is.Equal(sc.sess.State(), session.Finished)

	want := renderGrid(layout, func(c gen.Cell) byte { return solution[c] })
	is.True(strings.Contains(buf.String(), want)) // solved grid rendered
}
