// Package workerpool fans a bounded range of indices out across
// GOMAXPROCS goroutines, each given its own scratch buffer and contiguous
// chunk of indices, and propagates the first error via errgroup.
//
// This is the one concurrency primitive shared by package distance (the
// pairwise fill and per-row core-distance sort) and package mst (the
// per-iteration relaxation scan) — the only two places spec.md's
// concurrency model permits parallel fan-out. Every other stage of the
// pipeline stays strictly sequential.
package workerpool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Run splits [0, n) into contiguous chunks, one per worker (bounded by
// GOMAXPROCS), and calls fn(scratch, lo, hi) for each chunk concurrently.
// scratch is a []float64 of length scratchLen allocated once per worker
// and reused across its whole chunk — never shared across goroutines.
//
// If ctx is canceled between chunk dispatches, Run returns ctx.Err()
// without starting further chunks; chunks already running are not
// interrupted mid-flight (spec.md: fan-out loops never yield mid-batch).
// Complexity: O(n) total work split into O(workers) goroutines.
func Run(ctx context.Context, n, scratchLen int, fn func(scratch []float64, lo, hi int) error) error {
	if n <= 0 {
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := lo + chunk
		if hi > n {
			hi = n
		}

		select {
		case <-gctx.Done():
			return gctx.Err()
		default:
		}

		g.Go(func() error {
			scratch := make([]float64, scratchLen)
			return fn(scratch, lo, hi)
		})
	}

	return g.Wait()
}
