package movegen

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jensanjo/wordfeud-solver/move"
	"github.com/jensanjo/wordfeud-solver/tilemapping"
)

// GenAllConcurrent generates all legal plays for this rack using several
// workers, each owning a copy of the board and sharding the rows. The
// lexicon and letter distribution are shared; they are read-only during
// generation.
func (gen *TrieGenerator) GenAllConcurrent(ctx context.Context,
	rack *tilemapping.Rack, workers int) ([]*move.Move, error) {

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	dim := gen.board.Dim()
	if workers > dim {
		workers = dim
	}
	if workers == 1 {
		return gen.GenAll(rack), nil
	}
	gen.plays = gen.plays[:0]

	gens := make([]*TrieGenerator, workers)
	for i := range gens {
		gens[i] = gen.copyForWorker()
	}
	g, ctx := errgroup.WithContext(ctx)
	var mu sync.Mutex
	for i, wg := range gens {
		i, wg := i, wg
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			wrack := rack.Copy()
			rowStart, rowEnd := shard(dim, workers, i)
			// Horizontal pass, then vertical on this worker's own
			// transposed board.
			wg.genByOrientation(wrack, rowStart, rowEnd)
			wg.board.Transpose()
			wg.vertical = true
			wg.genByOrientation(wrack, rowStart, rowEnd)
			wg.board.Transpose()
			wg.vertical = false

			mu.Lock()
			defer mu.Unlock()
			if gen.topPlays != nil {
				gen.topPlays.Merge(wg.topPlays)
			} else {
				gen.plays = append(gen.plays, wg.plays...)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return gen.plays, nil
}

// shard returns the half-open row range belonging to worker i.
func shard(dim, workers, i int) (int, int) {
	per := dim / workers
	extra := dim % workers
	start := i*per + min(i, extra)
	end := start + per
	if i < extra {
		end++
	}
	return start, end
}
