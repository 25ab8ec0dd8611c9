package mapper

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// MapBatch solves independent transitions concurrently, at most
// Options.Workers at a time. results[i] belongs to batch[i].
//
// The first failing transition cancels the rest and its error is returned,
// prefixed with its index. If ctx is cancelled, ctx.Err() is returned.
// On any error the partial results are discarded.
func MapBatch(ctx context.Context, batch []Transition, opts ...Option) ([]Result, error) {
	o := gatherOptions(opts...)
	log := o.Logger.WithObjective(o.Objective)
	start := time.Now()

	results := make([]Result, len(batch))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)

	for i, tr := range batch {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t0 := time.Now()
			res, err := solve(tr.Source, tr.Target, o)
			log.LogMap(gctx, len(tr.Source), res.Cost, time.Since(t0), err)
			if err != nil {
				return fmt.Errorf("mapper: transition %d: %w", i, err)
			}
			results[i] = res

			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	log.LogBatch(ctx, len(batch), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	return results, nil
}
