// SPDX-License-Identifier: MIT

package assignment

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bimatch/matrix"
)

// SolveBatch solves every matrix in costs concurrently and returns the
// results in input order.
//
// At most GOMAXPROCS solves run at once. The first failure cancels the
// remaining solves and is returned wrapped with its batch index; no partial
// result slice is returned in that case. opts apply to every solve; any
// context given through WithContext is replaced by the batch context.
func SolveBatch(ctx context.Context, costs []matrix.Matrix, opts ...Option) ([]Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]Result, len(costs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	// Full-slice expression so appends below never alias the caller's array.
	base := opts[:len(opts):len(opts)]
	for i, cost := range costs {
		g.Go(func() error {
			res, err := Solve(cost, append(base, WithContext(gctx))...)
			if err != nil {
				return fmt.Errorf("batch[%d]: %w", i, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
