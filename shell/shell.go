// Package shell implements the interactive play loop: generate a puzzle
// for the loaded word pool, show the grid, and accept answers against a
// running session.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/palabrota/crucigrama/gen"
	"github.com/palabrota/crucigrama/loader"
	"github.com/palabrota/crucigrama/pick"
	"github.com/palabrota/crucigrama/session"
	"github.com/palabrota/crucigrama/tier"
)

type ShellController struct {
	l      *readline.Instance
	out    io.Writer
	pool   *loader.Pool
	tier   tier.Tier
	picker *pick.Picker
	result *pick.Result
	sess   *session.Session
}

// NewShellController wires a shell around the caller's picker, so the
// binary decides whether generation runs serial or parallel.
func NewShellController(pool *loader.Pool, t tier.Tier, picker *pick.Picker) (*ShellController, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "crucigrama> ",
		HistoryFile:     "/tmp/crucigrama_readline.history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}
	return &ShellController{
		l:      l,
		out:    l.Stderr(),
		pool:   pool,
		tier:   t,
		picker: picker,
	}, nil
}

// Loop reads commands until exit. A puzzle is generated up front so the
// player can start immediately.
func (sc *ShellController) Loop() {
	defer sc.l.Close()
	if err := sc.newPuzzle(); err != nil {
		sc.printf("could not build a puzzle: %v\n", err)
		return
	}
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			return
		}
		if done := sc.dispatch(strings.Fields(strings.TrimSpace(line))); done {
			return
		}
	}
}

func (sc *ShellController) dispatch(fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "new":
		if err := sc.newPuzzle(); err != nil {
			sc.printf("could not build a puzzle: %v\n", err)
		}
	case "show":
		sc.printf("%s", renderGrid(sc.result.Layout, sc.playerLetter))
		sc.printf("time left: %ds  correct: %d/%d\n",
			sc.sess.Remaining(), sc.sess.CorrectCells(), sc.sess.TotalCells())
	case "solution":
		letters := sc.result.Layout.Letters()
		sc.printf("%s", renderGrid(sc.result.Layout, func(c gen.Cell) byte { return letters[c] }))
	case "clues":
		sc.printClues()
	case "answer":
		sc.answer(args)
	case "tick":
		sc.tick(args)
	case "pause":
		sc.sess.Pause()
		sc.printf("paused\n")
	case "resume":
		sc.sess.Resume()
		sc.printf("resumed\n")
	case "score":
		sc.printf("score: %d  state: %s\n", sc.sess.Score(), sc.sess.State())
	case "help":
		sc.printf("%s", usage)
	case "exit", "quit":
		return true
	default:
		sc.printf("unknown command %q; try help\n", cmd)
	}
	return false
}

const usage = `commands:
  new             generate a fresh puzzle
  show            print the grid with your letters
  solution        print the solved grid
  clues           list clues by entry label
  answer A3 WORD  fill an entry with a word
  tick [n]        advance the clock n seconds (default 1)
  pause / resume  stop and restart the clock
  score           show score and session state
  exit            leave
`

func (sc *ShellController) newPuzzle() error {
	res, err := sc.picker.Select(sc.pool.Words, sc.tier)
	if err != nil {
		return err
	}
	sc.result = res
	sc.sess = session.New(res.Layout, sc.tier,
		session.OnSolved(func() { sc.printf("solved! congratulations\n") }),
		session.OnTimeUp(func() { sc.printf("time is up\n") }),
	)
	log.Info().Stringer("tier", sc.tier).Int("entries", len(res.Layout.Entries)).
		Msg("puzzle ready")
	sc.printf("%s", renderGrid(res.Layout, sc.playerLetter))
	sc.printClues()
	return nil
}

func (sc *ShellController) printClues() {
	for _, e := range sc.result.Layout.NumberOrder() {
		sc.printf("%-4s (%d letters, %s) %s\n",
			e.Label, len(e.Word.Answer), e.Direction, e.Word.Clue)
	}
}

func (sc *ShellController) answer(args []string) {
	if len(args) != 2 {
		sc.printf("usage: answer <label> <word>\n")
		return
	}
	label := strings.ToUpper(args[0])
	guess := strings.ToUpper(args[1])
	entry, ok := sc.result.Layout.FindEntry(label)
	if !ok {
		sc.printf("no entry %s\n", label)
		return
	}
	if len(guess) != len(entry.Word.Answer) {
		sc.printf("%s needs %d letters\n", label, len(entry.Word.Answer))
		return
	}
	for i, cell := range entry.Cells() {
		if err := sc.sess.SetCell(cell.Row, cell.Col, guess[i]); err != nil {
			// the last missing letter may land before the loop ends;
			// fall through so the solved grid still gets shown
			if errors.Is(err, session.ErrFinished) {
				break
			}
			sc.printf("%s: %v\n", label, err)
			return
		}
	}
	sc.printf("%s\n", renderGrid(sc.result.Layout, sc.playerLetter))
}

func (sc *ShellController) tick(args []string) {
	n := 1
	if len(args) == 1 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed < 1 {
			sc.printf("usage: tick [n]\n")
			return
		}
		n = parsed
	}
	for i := 0; i < n; i++ {
		sc.sess.Tick()
	}
	sc.printf("time left: %ds\n", sc.sess.Remaining())
}

func (sc *ShellController) playerLetter(c gen.Cell) byte {
	letter, ok := sc.sess.Letter(c.Row, c.Col)
	if !ok {
		return 0
	}
	return letter
}

func (sc *ShellController) printf(format string, args ...interface{}) {
	fmt.Fprintf(sc.out, format, args...)
}
