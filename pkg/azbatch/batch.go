// Package azbatch runs the aozora pipeline concurrently over many
// documents, per spec.md §5 "Parallel use": each worker holds exclusive
// ownership of its own input text, its own scratch state, and its own
// output, and only the already-built, read-only *gaiji.Table is shared.
// Adapted from the teacher's ingest.WorkerPool (fixed goroutine count,
// context-aware shutdown) fused directly with job and result types typed
// to this package's own pipeline output, plus the index-keyed reordering
// buffer from ingest.Ingester.Ingest that restores document order from
// results finishing out of order.
package azbatch

import (
	"context"
	"sync"

	"github.com/japaniel/aozora/pkg/aozora"
	"github.com/japaniel/aozora/pkg/azretok"
	"github.com/japaniel/aozora/pkg/errbag"
	"github.com/japaniel/aozora/pkg/gaiji"
)

// job is one document queued for transformation.
type job struct {
	index int
	text  string
}

// result pairs a document's index with its finished bag, so the consumer
// can restore input order from what workers finish out of order.
type result struct {
	index int
	bag   errbag.Bag[[]azretok.Element]
	err   error
}

// Run transforms every document in docs against table, using workers
// goroutines, each running the full aozora.Transform pipeline over one
// document at a time. The returned slice has one bag per document, in the
// same order as docs, regardless of the order workers finish in. It
// returns an error only if ctx is cancelled, or a worker's Transform call
// itself fails, before every document finishes.
func Run(ctx context.Context, docs []string, table *gaiji.Table, workers int) ([]errbag.Bag[[]azretok.Element], error) {
	if len(docs) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan job, workers*2)
	results := make(chan result, workers*2)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					bag, err := aozora.Transform(j.text, table)
					select {
					case results <- result{index: j.index, bag: bag, err: err}:
					case <-ctx.Done():
					}
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, doc := range docs {
			select {
			case jobs <- job{index: i, text: doc}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]errbag.Bag[[]azretok.Element], len(docs))
	received := 0
	for received < len(docs) {
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		case res, ok := <-results:
			if !ok {
				// Every worker exited (cancellation raced ahead of the
				// last few results) before all documents were accounted
				// for.
				return out, ctx.Err()
			}
			if res.err != nil {
				cancel()
				return out, res.err
			}
			out[res.index] = res.bag
			received++
		}
	}
	return out, nil
}
