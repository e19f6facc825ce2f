package gen

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/palabrota/crucigrama/word"
)

// used to stop sibling workers early through the errgroup context
var errLayoutFound = errors.New("layout found")

// ParallelGenerator adapts GenerateParallel to the one-shot Generate
// shape the selection driver consumes. Zero Workers means one per CPU.
type ParallelGenerator struct {
	Workers int
}

func (p ParallelGenerator) Generate(words []word.Word, rows, cols int) (*Layout, bool) {
	return GenerateParallel(context.Background(), words, rows, cols, p.Workers)
}

// GenerateParallel splits the restart budget across workers and returns
// the first full layout any of them finds. A restart only touches its own
// grid and permutation, so workers share nothing but the context; each
// gets its own Generator and random stream.
func GenerateParallel(ctx context.Context, words []word.Word, rows, cols, workers int) (*Layout, bool) {
	if len(words) == 0 {
		return nil, false
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	perWorker := (MaxRestarts + workers - 1) / workers

	var mu sync.Mutex
	var found *Layout

	eg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		eg.Go(func() error {
			g := New()
			perm := make([]word.Word, len(words))
			for restart := 0; restart < perWorker; restart++ {
				if ctx.Err() != nil {
					return nil
				}
				copy(perm, words)
				g.rng.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
				if layout, ok := g.tryOnce(perm, rows, cols); ok {
					mu.Lock()
					if found == nil {
						found = layout
					}
					mu.Unlock()
					return errLayoutFound
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil && !errors.Is(err, errLayoutFound) {
		return nil, false
	}
	mu.Lock()
	defer mu.Unlock()
	return found, found != nil
}
