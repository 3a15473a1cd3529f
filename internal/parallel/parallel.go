//go:build !sequential

// Package parallel is the fan-out-fan-in abstraction of §4.G: the das
// package's direct per-cell proof loop (computeAllProofs without
// precomputation) goes through ParallelFor instead of a raw goroutine
// loop; its other loops run sequentially. This follows the way
// go-ethereum's own worker pools lean on golang.org/x/sync/errgroup for
// bounded concurrency with first-error propagation and cancellation.
//
// This file is the default build; the "sequential" build tag swaps in a
// plain-loop implementation with the same signatures, for callers that
// want reproducible single-threaded execution (deterministic benchmarking,
// debugging a suspected data race) without touching call sites.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelFor calls fn(i) for every i in [0, n), across up to
// GOMAXPROCS(0) goroutines, and returns the first error any call
// returns (cancelling the rest via the shared errgroup context: once it
// is cancelled, no further calls are started).
func ParallelFor(n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			return fn(i)
		})
	}
	return g.Wait()
}

// ParallelMap applies fn to every element of items concurrently,
// returning the results in input order, or the first error encountered.
func ParallelMap[T any, R any](items []T, fn func(T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	err := ParallelFor(len(items), func(i int) error {
		r, err := fn(items[i])
		if err != nil {
			return err
		}
		out[i] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
