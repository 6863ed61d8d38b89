package phenotype

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"honnef.co/go/tender/genome"
)

// Generator describes a batch of random individuals.
type Generator struct {
	// Seed and the individual's index determine its genome.
	Seed     uint64
	NumGenes int
	// Workers limits concurrent builds; 0 means GOMAXPROCS.
	Workers int
	Logger  *zap.Logger
}

// Population builds n individuals in parallel. Individual i is built from
// a genome drawn from [genome.NewRand](gen.Seed, i), so results depend
// only on the seed and not on scheduling. The first error cancels the
// remaining work and is returned.
func Population[T any](ctx context.Context, gen Generator, n int, build func(*genome.Genome) (T, error)) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative population size %d", ErrInvalidConfig, n)
	}
	log := gen.Logger
	if log == nil {
		log = zap.NewNop()
	}
	workers := gen.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log.Debug("generating population",
		zap.Int("size", n),
		zap.Int("genes", gen.NumGenes),
		zap.Int("workers", workers),
		zap.Uint64("seed", gen.Seed))

	out := make([]T, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range n {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			gm := genome.Random(genome.NewRand(gen.Seed, uint64(i)), gen.NumGenes)
			v, err := build(gm)
			if err != nil {
				return fmt.Errorf("individual %d: %w", i, err)
			}
			out[i] = v
			log.Debug("built individual", zap.Int("index", i))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Cancellation before any goroutine failed leaves holes in out.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
