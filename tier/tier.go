// Package tier defines the difficulty levels a caller can request. A tier
// fixes the board size and word count the generator works with, plus the
// scoring and time-limit parameters the session layer applies on top.
package tier

import (
	"fmt"
	"strings"
)

type Tier int

const (
	Basic Tier = iota
	Intermediate
	Advanced
)

// Params are the fixed settings bound to a tier. Rows, Cols and
// WordCount drive generation; Points and TimeLimitSeconds are only
// consumed by the session layer.
type Params struct {
	Rows             int
	Cols             int
	WordCount        int
	Points           int
	TimeLimitSeconds int
}

var params = map[Tier]Params{
	Basic:        {Rows: 9, Cols: 9, WordCount: 5, Points: 100, TimeLimitSeconds: 300},
	Intermediate: {Rows: 12, Cols: 12, WordCount: 10, Points: 250, TimeLimitSeconds: 600},
	Advanced:     {Rows: 15, Cols: 15, WordCount: 15, Points: 500, TimeLimitSeconds: 900},
}

func (t Tier) Params() Params {
	return params[t]
}

// MaxWordLength is the longest answer that can fit on this tier's board.
func (t Tier) MaxWordLength() int {
	p := params[t]
	if p.Cols > p.Rows {
		return p.Cols
	}
	return p.Rows
}

func (t Tier) String() string {
	switch t {
	case Basic:
		return "basic"
	case Intermediate:
		return "intermediate"
	case Advanced:
		return "advanced"
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

// Parse accepts English and Spanish tier names, case-insensitively.
func Parse(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic", "basico", "básico":
		return Basic, nil
	case "intermediate", "intermedio":
		return Intermediate, nil
	case "advanced", "avanzado":
		return Advanced, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}
