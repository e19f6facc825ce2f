package gen

import (
	"sort"
	"strconv"

	"github.com/palabrota/crucigrama/word"
)

type Direction uint8

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	}
	return "down"
}

// prefix is the letter used in entry labels: A3, D7.
func (d Direction) prefix() string {
	if d == Across {
		return "A"
	}
	return "D"
}

// deltas is the per-letter step along the direction's own axis.
func (d Direction) deltas() (dr, dc int) {
	if d == Across {
		return 0, 1
	}
	return 1, 0
}

// Cell addresses a single grid square.
type Cell struct {
	Row, Col int
}

// Placement pins a word to a start cell and direction. Every letter cell
// of a placement lies on the board it was generated for.
type Placement struct {
	Word      word.Word
	Direction Direction
	Row, Col  int
}

// Cells lists every cell the placement covers, in word order.
func (p Placement) Cells() []Cell {
	dr, dc := p.Direction.deltas()
	out := make([]Cell, len(p.Word.Answer))
	for j := range out {
		out[j] = Cell{Row: p.Row + dr*j, Col: p.Col + dc*j}
	}
	return out
}

// Entry is a placement plus the display identifier it gets once the whole
// grid is known. Numbers are shared between an Across and a Down entry
// starting on the same cell.
type Entry struct {
	Placement
	Number int
	Label  string
}

// Layout is a finished puzzle. Entries appear in the order the engine
// placed them, so Entries[0] is always the seed word and every later
// entry crosses at least one earlier one.
type Layout struct {
	Rows, Cols int
	Entries    []Entry
}

// Letters returns the solution letters keyed by cell. Overlapping entries
// agree on their shared cells by construction.
func (l *Layout) Letters() map[Cell]byte {
	out := make(map[Cell]byte)
	for _, e := range l.Entries {
		for j, cell := range e.Cells() {
			out[cell] = e.Word.Answer[j]
		}
	}
	return out
}

// NumberOrder returns the entries sorted for display: by number, with
// Across before Down on a shared start cell.
func (l *Layout) NumberOrder() []Entry {
	out := make([]Entry, len(l.Entries))
	copy(out, l.Entries)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Number != out[j].Number {
			return out[i].Number < out[j].Number
		}
		return out[i].Direction < out[j].Direction
	})
	return out
}

// FindEntry looks an entry up by its display label.
func (l *Layout) FindEntry(label string) (Entry, bool) {
	for _, e := range l.Entries {
		if e.Label == label {
			return e, true
		}
	}
	return Entry{}, false
}

// finalize numbers the placements and wraps them into a Layout. Distinct
// start cells are numbered in row-major scan order over the finished
// grid; both entries starting on the same cell share that number.
func finalize(rows, cols int, placed []Placement) *Layout {
	starts := make(map[Cell]bool, len(placed))
	for _, p := range placed {
		starts[Cell{Row: p.Row, Col: p.Col}] = true
	}
	number := make(map[Cell]int, len(starts))
	n := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if starts[Cell{Row: r, Col: c}] {
				n++
				number[Cell{Row: r, Col: c}] = n
			}
		}
	}
	entries := make([]Entry, len(placed))
	for i, p := range placed {
		num := number[Cell{Row: p.Row, Col: p.Col}]
		entries[i] = Entry{
			Placement: p,
			Number:    num,
			Label:     p.Direction.prefix() + strconv.Itoa(num),
		}
	}
	return &Layout{Rows: rows, Cols: cols, Entries: entries}
}
