package async

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/fluentrop/pkg/rop"
	"github.com/ib-77/fluentrop/pkg/rop/future"
	"github.com/ib-77/fluentrop/pkg/rop/solo"
)

// Combine waits for all inputs concurrently and aggregates them like
// solo.Combine. Reasons and values follow input order, not completion order.
// A panic of any input is raised again when the output is awaited.
func Combine[T any](ctx context.Context, inputs ...Future[T]) Future[[]T] {
	return future.Spawn(func() rop.Result[[]T] {
		results := make([]rop.Result[T], len(inputs))

		var g errgroup.Group
		for i, in := range inputs {
			g.Go(func() (err error) {
				defer func() {
					if rec := recover(); rec != nil {
						err = &rop.PanicError{Value: rec}
					}
				}()
				results[i] = Await(ctx, in)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			var pe *rop.PanicError
			if errors.As(err, &pe) {
				panic(pe.Value)
			}
			panic(err)
		}
		return solo.Combine(results...)
	})
}
