// SPDX-License-Identifier: MIT

package svd

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsvd/matrix"
)

// DecomposeAll decomposes independent inputs concurrently.
// MAIN DESCRIPTION:
//   - Runs Decompose for each input on an errgroup bounded by workers.
//
// Behavior highlights:
//   - workers <= 0 uses runtime.GOMAXPROCS(0).
//   - The first failure (or ctx cancellation) stops scheduling new inputs;
//     decompositions already running finish, since a single Decompose is not
//     interruptible.
//   - Errors carry the failing input index; sentinels still match via errors.Is.
//   - results[i] corresponds to inputs[i].
//
// Errors:
//   - Any Decompose error, ctx.Err() on cancellation.
func DecomposeAll(ctx context.Context, inputs []matrix.Matrix, mode Mode, workers int, opts ...Option) ([]*Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]*Result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, in := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := Decompose(in, mode, opts...)
			if err != nil {
				return fmt.Errorf("%s: input %d: %w", opDecomposeAll, i, err)
			}
			out[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, svdErrorf(opDecomposeAll, err)
	}

	return out, nil
}
