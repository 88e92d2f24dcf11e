// Package workers fans batch work out over a bounded number of goroutines.
//
// The index range [0, n) is cut into a fixed number of contiguous chunks that
// depends only on n, never on the worker count. Callers give every chunk its
// own accumulator and reduce them in chunk order afterwards, so floating-point
// sums come out bit-identical no matter how many workers ran them.
package workers

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MaxChunks caps the number of chunks (and so per-chunk accumulators).
const MaxChunks = 64

// Range is a half-open index interval [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Chunks splits [0, n) into at most parts non-empty contiguous ranges of
// near-equal size. parts ≤ 0 means MaxChunks. n ≤ 0 yields no chunks.
func Chunks(n, parts int) []Range {
	if n <= 0 {
		return nil
	}
	if parts <= 0 || parts > MaxChunks {
		parts = MaxChunks
	}
	if parts > n {
		parts = n
	}

	out := make([]Range, parts)
	size, rem := n/parts, n%parts
	lo := 0
	for i := 0; i < parts; i++ {
		hi := lo + size
		if i < rem {
			hi++
		}
		out[i] = Range{Lo: lo, Hi: hi}
		lo = hi
	}

	return out
}

// Limit resolves a requested worker count: ≤ 0 means GOMAXPROCS.
func Limit(requested int) int {
	if requested <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return requested
}

// Run calls fn once per chunk with at most limit concurrent goroutines.
// The first error cancels the context handed to the remaining calls and is
// returned after every started call has finished.
func Run(chunks []Range, limit int, fn func(ctx context.Context, chunk int, r Range) error) error {
	if len(chunks) == 0 {
		return nil
	}
	limit = Limit(limit)

	// A single chunk or a single worker runs inline.
	if len(chunks) == 1 || limit == 1 {
		ctx := context.Background()
		for i, r := range chunks {
			if err := fn(ctx, i, r); err != nil {
				return err
			}
		}

		return nil
	}

	g, gctx := errgroup.WithContext(context.Background())
	g.SetLimit(limit)
	for i, r := range chunks {
		i, r := i, r
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			return fn(gctx, i, r)
		})
	}

	return g.Wait()
}
