// File: parallelfor.go
// Role: bounded data-parallel loop over a dense integer range.
package parallelfor

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Body is invoked once per index in [0, n). Implementations that never
// fail can simply return nil; a non-nil error cancels the remaining work
// and is returned from Range.
type Body func(i int) error

// Range calls body(i) for every i in [0, n), splitting the range into
// contiguous chunks and running one chunk per worker goroutine. workers <=
// 0 selects runtime.GOMAXPROCS(0).
//
// Range does not guarantee any ordering between indices — spec §5 is
// explicit that a single iteration has no inter-vertex ordering
// guarantee — only that every index is visited exactly once before Range
// returns (barring an early error).
func Range(ctx context.Context, n, workers int, body Body) error {
	if n <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	g, gCtx := errgroup.WithContext(ctx)
	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		start, end := start, end // capture

		g.Go(func() error {
			for i := start; i < end; i++ {
				select {
				case <-gCtx.Done():
					return gCtx.Err()
				default:
				}
				if err := body(i); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}
