// Package pick is the selection driver: given a word pool and a
// difficulty tier it filters out words that cannot fit the tier's board,
// then repeatedly samples a tier-sized subset and asks the placement
// engine for a layout until one covers the full subset or the attempt
// budget runs out.
package pick

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/palabrota/crucigrama/gen"
	"github.com/palabrota/crucigrama/tier"
	"github.com/palabrota/crucigrama/word"
)

// MaxAttempts bounds how many word subsets are tried before giving up.
const MaxAttempts = 300

// Engine generates layouts. Satisfied by *gen.Generator; tests swap in
// counting or canned implementations.
type Engine interface {
	Generate(words []word.Word, rows, cols int) (*gen.Layout, bool)
}

// Result is a successful selection: the layout plus the bookkeeping of
// which pool words were selected for it, which were usable at all, and
// which were omitted as too long for the board.
type Result struct {
	Tier     tier.Tier
	Layout   *gen.Layout
	Selected []word.Word
	Omitted  []word.Word
	Usable   []word.Word
}

// InsufficientWordsError reports a pool too small for the tier. Not
// recoverable without more words or a lower tier; no generation is
// attempted.
type InsufficientWordsError struct {
	Tier     tier.Tier
	Required int
	Usable   int
}

func (e *InsufficientWordsError) Error() string {
	return fmt.Sprintf("not enough usable words for %s: need %d, have %d",
		e.Tier, e.Required, e.Usable)
}

// LayoutNotFoundError reports an exhausted attempt budget. Expected for
// word pools that resist packing; retrying or dropping a tier may work.
type LayoutNotFoundError struct {
	Tier     tier.Tier
	Required int
	Attempts int
}

func (e *LayoutNotFoundError) Error() string {
	return fmt.Sprintf("could not build a %d-word layout for %s after %d attempts",
		e.Required, e.Tier, e.Attempts)
}

type Picker struct {
	engine Engine
	rng    gen.Rand
}

func New() *Picker {
	return &Picker{engine: gen.New(), rng: frand.New()}
}

// NewParallel is like New but spreads each generation attempt's restart
// budget across workers goroutines; workers <= 0 means one per CPU.
func NewParallel(workers int) *Picker {
	return &Picker{engine: gen.ParallelGenerator{Workers: workers}, rng: frand.New()}
}

// NewWithEngine wires a custom engine and random source, mainly for
// deterministic tests.
func NewWithEngine(engine Engine, rng gen.Rand) *Picker {
	return &Picker{engine: engine, rng: rng}
}

// Select picks a tier-sized subset of pool and generates a layout for
// it. Failures come back as *InsufficientWordsError or
// *LayoutNotFoundError values.
func (p *Picker) Select(pool []word.Word, t tier.Tier) (*Result, error) {
	params := t.Params()
	maxLen := t.MaxWordLength()
	usable := lo.Filter(pool, func(w word.Word, _ int) bool { return len(w.Answer) <= maxLen })
	omitted := lo.Filter(pool, func(w word.Word, _ int) bool { return len(w.Answer) > maxLen })
	if len(usable) < params.WordCount {
		return nil, &InsufficientWordsError{Tier: t, Required: params.WordCount, Usable: len(usable)}
	}

	sample := make([]word.Word, len(usable))
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		copy(sample, usable)
		p.rng.Shuffle(len(sample), func(i, j int) { sample[i], sample[j] = sample[j], sample[i] })
		selected := sample[:params.WordCount]

		layout, ok := p.engine.Generate(selected, params.Rows, params.Cols)
		if !ok || len(layout.Entries) != params.WordCount {
			continue
		}
		log.Debug().Int("attempt", attempt).Stringer("tier", t).Msg("selection placed")
		return &Result{
			Tier:     t,
			Layout:   layout,
			Selected: append([]word.Word(nil), selected...),
			Omitted:  omitted,
			Usable:   usable,
		}, nil
	}
	return nil, &LayoutNotFoundError{Tier: t, Required: params.WordCount, Attempts: MaxAttempts}
}
