package poker

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ClassifyAll evaluates many raw hands in parallel using at most workers
// goroutines (GOMAXPROCS when workers <= 0). Results are returned in input
// order. The first failing hand cancels the rest and its error is returned.
func ClassifyAll(ctx context.Context, hands [][]RawCard, workers int) ([]Evaluation, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Evaluation, len(hands))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, hand := range hands {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ev, err := EvaluateRaw(hand)
			if err != nil {
				return &BatchError{Hand: i, Err: err}
			}
			results[i] = ev
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// BatchError identifies which hand of a batch failed.
type BatchError struct {
	Hand int
	Err  error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("hand %d: %v", e.Hand, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }
